package publish

import (
	"context"
	"errors"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	"github.com/donaldgifford/shop-inventory/internal/secret"
	"github.com/donaldgifford/shop-inventory/internal/store"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

// ErrInvalidListing is returned when a listing fails a publication
// precondition: wrong status or wrong marketplace.
var ErrInvalidListing = errors.New("invalid listing")

// ErrorKind names a class of failure for logs, metrics and HTTP mapping.
type ErrorKind string

// Error kinds. KindInternal covers anything unclassified.
const (
	KindTransport      ErrorKind = "transport"
	KindHTTPStatus     ErrorKind = "http_status"
	KindReauthRequired ErrorKind = "reauth_required"
	KindInvalidListing ErrorKind = "invalid_listing"
	KindNotFound       ErrorKind = "not_found"
	KindNoCategory     ErrorKind = "no_category"
	KindBadResponse    ErrorKind = "bad_response"
	KindSchemaMismatch ErrorKind = "schema_mismatch"
	KindSecret         ErrorKind = "secret"
	KindInternal       ErrorKind = "internal"
)

// Kind classifies err. A nil error has an empty kind.
//
// Order matters: a reauthorization wraps the 401 status error it came
// from, and a bad response may wrap a decode error.
func Kind(err error) ErrorKind {
	if err == nil {
		return ""
	}
	if _, ok := ebay.AsReauthRequired(err); ok {
		return KindReauthRequired
	}

	var (
		te *httpclient.TransportError
		se *httpclient.StatusError
	)
	switch {
	case errors.Is(err, ErrInvalidListing), errors.Is(err, domain.ErrInvalidTransition):
		return KindInvalidListing
	case errors.Is(err, ebay.ErrNoCategory):
		return KindNoCategory
	case errors.Is(err, store.ErrNotFound):
		return KindNotFound
	case errors.Is(err, domain.ErrSchemaMismatch):
		return KindSchemaMismatch
	case errors.Is(err, ebay.ErrBadResponse):
		return KindBadResponse
	case errors.Is(err, secret.ErrSecretUnknown), errors.Is(err, secret.ErrSecretCorrupt):
		return KindSecret
	case errors.As(err, &se):
		return KindHTTPStatus
	case errors.As(err, &te),
		errors.Is(err, ebay.ErrDailyLimitReached),
		errors.Is(err, context.DeadlineExceeded):
		return KindTransport
	default:
		return KindInternal
	}
}

// retryable reports whether a publication step may be attempted again.
// Only transport failures and 5xx responses qualify.
func retryable(err error) bool {
	if _, ok := ebay.AsReauthRequired(err); ok {
		return false
	}
	return httpclient.Retryable(err)
}
