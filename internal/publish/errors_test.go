package publish_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	"github.com/donaldgifford/shop-inventory/internal/publish"
	"github.com/donaldgifford/shop-inventory/internal/secret"
	"github.com/donaldgifford/shop-inventory/internal/store"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

func TestKind(t *testing.T) {
	t.Parallel()

	status := func(code int) error {
		return &httpclient.StatusError{Method: "PUT", URL: "https://api.test", Code: code}
	}

	tests := []struct {
		name string
		err  error
		want publish.ErrorKind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "transport", err: &httpclient.TransportError{Err: errors.New("connection refused")}, want: publish.KindTransport},
		{name: "daily limit", err: fmt.Errorf("op: %w", ebay.ErrDailyLimitReached), want: publish.KindTransport},
		{name: "deadline", err: context.DeadlineExceeded, want: publish.KindTransport},
		{name: "4xx", err: fmt.Errorf("create_offer: %w", status(400)), want: publish.KindHTTPStatus},
		{name: "5xx", err: status(503), want: publish.KindHTTPStatus},
		{
			name: "reauth wrapping 401",
			err:  &ebay.ReauthRequiredError{AuthorizeURL: "https://auth.test", Err: status(401)},
			want: publish.KindReauthRequired,
		},
		{name: "invalid listing", err: fmt.Errorf("x: %w", publish.ErrInvalidListing), want: publish.KindInvalidListing},
		{name: "invalid transition", err: domain.ErrInvalidTransition, want: publish.KindInvalidListing},
		{name: "not found", err: fmt.Errorf("listing: %w", store.ErrNotFound), want: publish.KindNotFound},
		{name: "no category", err: ebay.ErrNoCategory, want: publish.KindNoCategory},
		{name: "bad response", err: fmt.Errorf("%w: missing offerId", ebay.ErrBadResponse), want: publish.KindBadResponse},
		{name: "schema mismatch", err: domain.ErrSchemaMismatch, want: publish.KindSchemaMismatch},
		{name: "secret unknown", err: secret.ErrSecretUnknown, want: publish.KindSecret},
		{name: "secret corrupt", err: secret.ErrSecretCorrupt, want: publish.KindSecret},
		{name: "other", err: errors.New("boom"), want: publish.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, publish.Kind(tt.err))
		})
	}
}
