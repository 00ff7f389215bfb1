package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
)

// Cookie names carrying the seller's eBay tokens.
const (
	AccessTokenCookie  = "ebay_user_access_token"
	RefreshTokenCookie = "ebay_user_refresh_token"
)

// Authenticator is the eBay OAuth surface used by the handlers.
type Authenticator interface {
	AuthorizationURL() string
	ApplicationToken(ctx context.Context) (ebay.AppToken, error)
	ExchangeAuthorizationCode(ctx context.Context, code string) (*ebay.UserGrant, error)
	RefreshUserToken(ctx context.Context, refreshToken string) (*ebay.UserGrant, error)
}

// CookieOptions scopes the token cookies.
type CookieOptions struct {
	Path   string
	Domain string
}

// AuthHandler serves the eBay OAuth endpoints.
type AuthHandler struct {
	auth    Authenticator
	cookies CookieOptions
	now     func() time.Time
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth Authenticator, cookies CookieOptions) *AuthHandler {
	if cookies.Path == "" {
		cookies.Path = "/"
	}
	return &AuthHandler{auth: auth, cookies: cookies, now: time.Now}
}

// tokenCookie builds a Secure, HttpOnly, SameSite=Lax cookie living ttl.
func (h *AuthHandler) tokenCookie(name, value string, ttl time.Duration) http.Cookie {
	return http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookies.Path,
		Domain:   h.cookies.Domain,
		MaxAge:   int(ttl / time.Second),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// --- Input/Output types ---

// ApplicationTokenOutput is the response for the application token endpoint.
type ApplicationTokenOutput struct {
	Body struct {
		AccessToken string `json:"access_token" doc:"Client-credentials access token"`
		TokenType   string `json:"token_type"   doc:"Token type"                      example:"Application Access Token"`
		ExpiresIn   int64  `json:"expires_in"   doc:"Seconds until the token expires" example:"7200"`
	}
}

// UserTokenInput carries the consent code returned by eBay.
type UserTokenInput struct {
	Body struct {
		Code string `json:"code" doc:"Authorization code from the eBay consent redirect" minLength:"1"`
	}
}

// SetCookieOutput sets token cookies and returns no content.
type SetCookieOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
}

// RedirectOutput sends the browser elsewhere.
type RedirectOutput struct {
	Status   int
	Location string `header:"Location"`
}

// RefreshInput reads the refresh token cookie.
type RefreshInput struct {
	RefreshToken string `cookie:"ebay_user_refresh_token"`
}

// --- Handlers ---

// ApplicationToken returns the cached client-credentials token.
func (h *AuthHandler) ApplicationToken(ctx context.Context, _ *struct{}) (*ApplicationTokenOutput, error) {
	tok, err := h.auth.ApplicationToken(ctx)
	if err != nil {
		return nil, toHTTPError(err, h.auth.AuthorizationURL())
	}

	resp := &ApplicationTokenOutput{}
	resp.Body.AccessToken = tok.AccessToken
	resp.Body.TokenType = tok.TokenType
	resp.Body.ExpiresIn = int64(max(tok.ExpiresAt.Sub(h.now()), 0) / time.Second)
	return resp, nil
}

// ExchangeUserToken trades the consent code for a token pair and stores
// both tokens in cookies.
func (h *AuthHandler) ExchangeUserToken(ctx context.Context, input *UserTokenInput) (*SetCookieOutput, error) {
	grant, err := h.auth.ExchangeAuthorizationCode(ctx, input.Body.Code)
	if err != nil {
		return nil, toHTTPError(err, h.auth.AuthorizationURL())
	}

	return &SetCookieOutput{SetCookie: []http.Cookie{
		h.tokenCookie(AccessTokenCookie, grant.AccessToken, grant.AccessTTL),
		h.tokenCookie(RefreshTokenCookie, grant.RefreshToken, grant.RefreshTTL),
	}}, nil
}

// Redirect sends the browser to the eBay consent page.
func (h *AuthHandler) Redirect(_ context.Context, _ *struct{}) (*RedirectOutput, error) {
	return &RedirectOutput{Status: http.StatusFound, Location: h.auth.AuthorizationURL()}, nil
}

// RefreshUserToken mints a new access token cookie from the refresh cookie.
func (h *AuthHandler) RefreshUserToken(ctx context.Context, input *RefreshInput) (*SetCookieOutput, error) {
	if input.RefreshToken == "" {
		return nil, reauthError(h.auth.AuthorizationURL())
	}

	grant, err := h.auth.RefreshUserToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, toHTTPError(err, h.auth.AuthorizationURL())
	}

	return &SetCookieOutput{SetCookie: []http.Cookie{
		h.tokenCookie(AccessTokenCookie, grant.AccessToken, grant.AccessTTL),
	}}, nil
}

// RegisterAuthRoutes registers the eBay OAuth endpoints with the Huma API.
func RegisterAuthRoutes(api huma.API, h *AuthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-application-token",
		Method:      http.MethodGet,
		Path:        "/ebay/auth/application/token",
		Summary:     "Get the eBay application token",
		Description: "Returns the client-credentials token, fetching a new one when the cached token is near expiry.",
		Tags:        []string{"auth"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ApplicationToken)

	huma.Register(api, huma.Operation{
		OperationID:   "put-user-token",
		Method:        http.MethodPut,
		Path:          "/ebay/auth/user/token",
		Summary:       "Exchange an authorization code",
		Description:   "Exchanges the eBay consent code and stores the access and refresh tokens in secure cookies.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusBadGateway},
	}, h.ExchangeUserToken)

	huma.Register(api, huma.Operation{
		OperationID:   "get-user-redirect",
		Method:        http.MethodGet,
		Path:          "/ebay/auth/user/redirect",
		Summary:       "Redirect to eBay consent",
		Description:   "Redirects the browser to the eBay authorization page.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusFound,
	}, h.Redirect)

	huma.Register(api, huma.Operation{
		OperationID:   "put-user-refresh",
		Method:        http.MethodPut,
		Path:          "/ebay/auth/user/refresh",
		Summary:       "Refresh the user access token",
		Description:   "Uses the refresh token cookie to mint a new access token cookie.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusBadGateway},
	}, h.RefreshUserToken)
}
