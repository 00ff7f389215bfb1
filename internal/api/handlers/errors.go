package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/publish"
)

const invalidTokenMessage = "Invalid eBay access token"

// reauthError is a 401 pointing the browser at the eBay consent page.
func reauthError(authorizeURL string) error {
	return huma.ErrorWithHeaders(
		huma.Error401Unauthorized(invalidTokenMessage),
		http.Header{"Location": {authorizeURL}},
	)
}

// toHTTPError maps an orchestration or adapter error onto its HTTP status.
// Reauthorization falls back to fallbackURL when the error carries none.
func toHTTPError(err error, fallbackURL string) error {
	switch publish.Kind(err) {
	case publish.KindReauthRequired:
		u := fallbackURL
		if r, ok := ebay.AsReauthRequired(err); ok && r.AuthorizeURL != "" {
			u = r.AuthorizeURL
		}
		return reauthError(u)
	case publish.KindInvalidListing, publish.KindNoCategory:
		return huma.Error400BadRequest(err.Error())
	case publish.KindNotFound:
		return huma.Error404NotFound(err.Error())
	case publish.KindTransport, publish.KindHTTPStatus, publish.KindBadResponse:
		return huma.Error502BadGateway("eBay request failed", err)
	default:
		return huma.Error500InternalServerError("internal error")
	}
}

// parseID validates a path identifier.
func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, huma.Error400BadRequest("malformed " + what + " id: " + raw)
	}
	return id, nil
}
