package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	"github.com/donaldgifford/shop-inventory/internal/metrics"
)

const (
	defaultTokenURL     = "https://api.sandbox.ebay.com/identity/v1/oauth2/token" //nolint:gosec // not a credential
	defaultAuthorizeURL = "https://auth.sandbox.ebay.com/oauth2/authorize"
	refreshBuffer       = 60 * time.Second

	scopePrefix = "https://api.ebay.com/oauth/api_scope"
)

// applicationScopes is the client-credentials scope set (buy side).
var applicationScopes = scopes(
	"", "buy.guest.order", "buy.item.feed", "buy.marketing", "buy.product.feed",
	"buy.marketplace.insights", "buy.proxy.guest.order", "buy.item.bulk", "buy.deal",
)

// userScopes is the consent scope set requested from the seller.
var userScopes = scopes(
	"", "buy.order.readonly", "buy.guest.order",
	"sell.marketing.readonly", "sell.marketing",
	"sell.inventory.readonly", "sell.inventory",
	"sell.account.readonly", "sell.account",
	"sell.fulfillment.readonly", "sell.fulfillment",
	"sell.analytics.readonly", "sell.marketplace.insights.readonly",
	"commerce.catalog.readonly", "buy.shopping.cart", "buy.offer.auction",
	"commerce.identity.readonly", "commerce.identity.email.readonly",
	"commerce.identity.phone.readonly", "commerce.identity.address.readonly",
	"commerce.identity.name.readonly", "commerce.identity.status.readonly",
	"sell.finances", "sell.payment.dispute", "sell.item.draft", "sell.item",
	"sell.reputation", "sell.reputation.readonly",
	"commerce.notification.subscription", "commerce.notification.subscription.readonly",
	"sell.stores", "sell.stores.readonly",
)

func scopes(names ...string) string {
	full := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			full = append(full, scopePrefix)
			continue
		}
		full = append(full, scopePrefix+"/"+n)
	}
	return strings.Join(full, " ")
}

// UserToken is the seller's token pair as carried by the browser cookies.
// A zero ExpiresAt means the expiry is unknown; the cookie's own Max-Age
// already dropped it when it lapsed, so the token is treated as live.
type UserToken struct {
	AccessToken      string
	ExpiresAt        time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// UserGrant is a token endpoint answer for the seller.
type UserGrant struct {
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken string
	RefreshTTL   time.Duration
}

// AppToken is the cached client-credentials token.
type AppToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// TokenError is a non-2xx answer from the OAuth token endpoint.
type TokenError struct {
	Grant       string
	StatusCode  int
	Code        string
	Description string
	Err         error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token request failed (status %d): %s - %s", e.StatusCode, e.Code, e.Description)
}

func (e *TokenError) Unwrap() error { return e.Err }

// TokenManager obtains eBay OAuth2 tokens. The application token is cached
// and refreshed when expired or within 60 seconds of expiry; user tokens
// are never cached. Thread-safe via mutex.
type TokenManager struct {
	clientID     string
	clientSecret string
	ruName       string
	tokenURL     string
	authorizeURL string
	client       *httpclient.Client
	logger       *slog.Logger

	mu      sync.Mutex
	app     AppToken
	nowFunc func() time.Time // for testing
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithTokenURL overrides the default eBay token endpoint.
func WithTokenURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.tokenURL = u
	}
}

// WithAuthorizeURL overrides the consent page the seller is sent to.
func WithAuthorizeURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.authorizeURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *httpclient.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// WithTokenLogger sets the logger.
func WithTokenLogger(l *slog.Logger) TokenOption {
	return func(m *TokenManager) {
		m.logger = l
	}
}

// NewTokenManager creates a token manager for the given application keys.
// ruName is the redirect URL name registered with eBay.
func NewTokenManager(clientID, clientSecret, ruName string, opts ...TokenOption) *TokenManager {
	m := &TokenManager{
		clientID:     clientID,
		clientSecret: clientSecret,
		ruName:       ruName,
		tokenURL:     defaultTokenURL,
		authorizeURL: defaultAuthorizeURL,
		logger:       slog.Default(),
		nowFunc:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.client == nil {
		m.client = httpclient.New()
	}
	return m
}

// AuthorizationURL returns the seller consent URL. It is identical on
// every call.
func (m *TokenManager) AuthorizationURL() string {
	q := url.Values{
		"client_id":     {m.clientID},
		"response_type": {"code"},
		"redirect_uri":  {m.ruName},
		"scope":         {userScopes},
	}
	return m.authorizeURL + "?" + q.Encode()
}

// Token returns a valid application access token, refreshing if necessary.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	tok, err := m.ApplicationToken(ctx)
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}

// ApplicationToken returns the cached client-credentials token, fetching a
// new one when the cached token is within refreshBuffer of expiry. Fetches
// are serialized; a failed or canceled fetch leaves the cache untouched.
func (m *TokenManager) ApplicationToken(ctx context.Context) (AppToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.app.AccessToken != "" && m.nowFunc().Before(m.app.ExpiresAt.Add(-refreshBuffer)) {
		return m.app, nil
	}

	form := url.Values{
		"grant_type": {"client_credentials"},
		"scope":      {applicationScopes},
	}
	resp, err := m.requestToken(ctx, "client_credentials", form)
	if err != nil {
		return AppToken{}, err
	}

	m.app = AppToken{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresAt:   m.nowFunc().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	return m.app, nil
}

// ExchangeAuthorizationCode trades the consent code for a user token pair.
func (m *TokenManager) ExchangeAuthorizationCode(ctx context.Context, code string) (*UserGrant, error) {
	if code == "" {
		return nil, &ReauthRequiredError{AuthorizeURL: m.AuthorizationURL(), Reason: "empty authorization code"}
	}

	form := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {m.ruName},
	}
	resp, err := m.requestToken(ctx, "authorization_code", form)
	if err != nil {
		return nil, err
	}
	if resp.RefreshToken == "" {
		return nil, fmt.Errorf("%w: authorization code grant without refresh_token", ErrBadResponse)
	}

	return &UserGrant{
		AccessToken:  resp.AccessToken,
		AccessTTL:    time.Duration(resp.ExpiresIn) * time.Second,
		RefreshToken: resp.RefreshToken,
		RefreshTTL:   time.Duration(resp.RefreshTokenExpiresIn) * time.Second,
	}, nil
}

// RefreshUserToken mints a new access token from refreshToken. The
// returned grant carries refreshToken unchanged. A 4xx from eBay means the
// refresh token is no longer usable and yields *ReauthRequiredError.
func (m *TokenManager) RefreshUserToken(ctx context.Context, refreshToken string) (*UserGrant, error) {
	if refreshToken == "" {
		return nil, &ReauthRequiredError{AuthorizeURL: m.AuthorizationURL(), Reason: "no refresh token"}
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"scope":         {userScopes},
	}
	resp, err := m.requestToken(ctx, "refresh_token", form)
	if err != nil {
		var te *TokenError
		if errors.As(err, &te) && te.StatusCode < http.StatusInternalServerError {
			return nil, &ReauthRequiredError{
				AuthorizeURL: m.AuthorizationURL(),
				Reason:       "refresh token rejected",
				Err:          err,
			}
		}
		return nil, err
	}

	return &UserGrant{
		AccessToken:  resp.AccessToken,
		AccessTTL:    time.Duration(resp.ExpiresIn) * time.Second,
		RefreshToken: refreshToken,
	}, nil
}

// EnsureUserToken returns tok unchanged while its access token is live.
// Otherwise it refreshes and returns the new access token with the
// original refresh token. Without a usable refresh token the result is
// *ReauthRequiredError.
func (m *TokenManager) EnsureUserToken(ctx context.Context, tok UserToken) (UserToken, error) {
	now := m.nowFunc()
	if tok.AccessToken != "" && (tok.ExpiresAt.IsZero() || now.Before(tok.ExpiresAt)) {
		return tok, nil
	}
	if tok.RefreshToken == "" ||
		(!tok.RefreshExpiresAt.IsZero() && !now.Before(tok.RefreshExpiresAt)) {
		return UserToken{}, &ReauthRequiredError{
			AuthorizeURL: m.AuthorizationURL(),
			Reason:       "access token expired and no usable refresh token",
		}
	}

	grant, err := m.RefreshUserToken(ctx, tok.RefreshToken)
	if err != nil {
		return UserToken{}, err
	}

	m.logger.DebugContext(ctx, "refreshed eBay user token", "expires_in", grant.AccessTTL)
	return UserToken{
		AccessToken:      grant.AccessToken,
		ExpiresAt:        now.Add(grant.AccessTTL),
		RefreshToken:     tok.RefreshToken,
		RefreshExpiresAt: tok.RefreshExpiresAt,
	}, nil
}

type tokenResponse struct {
	AccessToken           string `json:"access_token"`
	ExpiresIn             int    `json:"expires_in"`
	TokenType             string `json:"token_type"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int    `json:"refresh_token_expires_in"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (m *TokenManager) requestToken(ctx context.Context, grant string, form url.Values) (*tokenResponse, error) {
	req, err := httpclient.NewFormRequest(ctx, m.tokenURL, form)
	if err != nil {
		return nil, fmt.Errorf("creating token request: %w", err)
	}
	httpclient.Basic(req, m.clientID, m.clientSecret)

	resp, err := m.client.Execute(req)
	if err != nil {
		metrics.TokenRequestsTotal.WithLabelValues(grant, "error").Inc()
		var se *httpclient.StatusError
		if errors.As(err, &se) {
			var errResp tokenErrorResponse
			_ = json.Unmarshal([]byte(se.Body), &errResp) //nolint:errcheck // best-effort error parsing
			m.logger.WarnContext(ctx, "eBay token request failed",
				"grant", grant, "status", se.Code, "request_id", se.RequestID, "error_code", errResp.Error)
			return nil, &TokenError{
				Grant:       grant,
				StatusCode:  se.Code,
				Code:        errResp.Error,
				Description: errResp.ErrorDescription,
				Err:         err,
			}
		}
		return nil, fmt.Errorf("executing token request: %w", err)
	}

	var tr tokenResponse
	if err := resp.DecodeJSON(&tr); err != nil {
		metrics.TokenRequestsTotal.WithLabelValues(grant, "error").Inc()
		return nil, fmt.Errorf("%w: parsing token response: %w", ErrBadResponse, err)
	}
	if tr.AccessToken == "" {
		metrics.TokenRequestsTotal.WithLabelValues(grant, "error").Inc()
		return nil, fmt.Errorf("%w: token response without access_token", ErrBadResponse)
	}

	metrics.TokenRequestsTotal.WithLabelValues(grant, "ok").Inc()
	return &tr, nil
}
