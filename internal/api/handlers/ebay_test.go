package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shop-inventory/internal/api/handlers"
	"github.com/donaldgifford/shop-inventory/internal/ebay"
	ebayMocks "github.com/donaldgifford/shop-inventory/internal/ebay/mocks"
	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	"github.com/donaldgifford/shop-inventory/internal/publish"
	"github.com/donaldgifford/shop-inventory/internal/store"
	storeMocks "github.com/donaldgifford/shop-inventory/internal/store/mocks"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const (
	authorizeURL = "https://auth.sandbox.ebay.com/oauth2/authorize?client_id=test"
	tokenCookie  = "Cookie: ebay_user_access_token=user-token"
)

// mockPublisher records calls and returns a canned error.
type mockPublisher struct {
	err error

	published []uuid.UUID
	withdrawn []uuid.UUID
	statuses  []domain.ListingStatus
	synced    int
	tokens    []string
}

func (m *mockPublisher) Publish(_ context.Context, token string, l *domain.Listing) error {
	m.tokens = append(m.tokens, token)
	m.published = append(m.published, l.ID)
	return m.err
}

func (m *mockPublisher) PublishAllWithStatus(_ context.Context, token string, s domain.ListingStatus) error {
	m.tokens = append(m.tokens, token)
	m.statuses = append(m.statuses, s)
	return m.err
}

func (m *mockPublisher) SyncAllLocations(_ context.Context, token string) error {
	m.tokens = append(m.tokens, token)
	m.synced++
	return m.err
}

func (m *mockPublisher) Withdraw(_ context.Context, token string, l *domain.Listing) error {
	m.tokens = append(m.tokens, token)
	m.withdrawn = append(m.withdrawn, l.ID)
	return m.err
}

func newEbayAPI(
	t *testing.T,
	s store.Store,
	p handlers.Publisher,
	remote handlers.RemoteInventory,
) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterEbayRoutes(api, handlers.NewEbayHandler(s, p, remote, authorizeURL, nil))
	return api
}

func draftListing() *domain.Listing {
	return &domain.Listing{
		ID:            uuid.MustParse("7a1d3f5e-2b4c-4d6e-8f90-a1b2c3d4e5f6"),
		ItemID:        uuid.MustParse("0b8f7c6e-5d4c-4b3a-9f8e-7d6c5b4a3f2e"),
		MarketplaceID: uuid.MustParse("e1e1e1e1-0000-4000-8000-000000000001"),
		Status:        domain.ListingDraft,
	}
}

func TestPublishListing(t *testing.T) {
	t.Parallel()

	listing := draftListing()
	reauth := &ebay.ReauthRequiredError{
		AuthorizeURL: "https://auth.example.test/consent",
		Reason:       "user token rejected",
		Err:          &httpclient.StatusError{Code: http.StatusUnauthorized},
	}

	tests := []struct {
		name         string
		path         string
		headers      []any
		setupStore   func(*storeMocks.MockStore)
		publishErr   error
		wantStatus   int
		wantBody     string
		wantLocation string
		wantCalls    int
	}{
		{
			name:    "publishes draft listing",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			wantStatus: http.StatusNoContent,
			wantCalls:  1,
		},
		{
			name:         "missing cookie returns 401 with consent location",
			path:         "/ebay/listing/" + listing.ID.String(),
			setupStore:   func(_ *storeMocks.MockStore) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     "Invalid eBay access token",
			wantLocation: authorizeURL,
		},
		{
			name:       "malformed id returns 400",
			path:       "/ebay/listing/not-a-uuid",
			headers:    []any{tokenCookie},
			setupStore: func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "malformed listing id",
		},
		{
			name:    "absent listing returns 404",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).
					Return(nil, fmt.Errorf("getting listing: %w", store.ErrNotFound)).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:    "rejected token returns 401 with adapter location",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			publishErr:   reauth,
			wantStatus:   http.StatusUnauthorized,
			wantBody:     "Invalid eBay access token",
			wantLocation: "https://auth.example.test/consent",
			wantCalls:    1,
		},
		{
			name:    "invalid listing returns 400",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			publishErr: fmt.Errorf("%w: listing is published", publish.ErrInvalidListing),
			wantStatus: http.StatusBadRequest,
			wantCalls:  1,
		},
		{
			name:    "no category returns 400",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			publishErr: ebay.ErrNoCategory,
			wantStatus: http.StatusBadRequest,
			wantCalls:  1,
		},
		{
			name:    "remote 5xx returns 502",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			publishErr: &httpclient.StatusError{Code: http.StatusServiceUnavailable},
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
		{
			name:    "stored enum mismatch returns 500",
			path:    "/ebay/listing/" + listing.ID.String(),
			headers: []any{tokenCookie},
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			publishErr: fmt.Errorf("%w: item condition 9", domain.ErrSchemaMismatch),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := storeMocks.NewMockStore(t)
			tt.setupStore(s)
			p := &mockPublisher{err: tt.publishErr}
			api := newEbayAPI(t, s, p, ebayMocks.NewMockInventoryAPI(t))

			resp := api.Put(tt.path, tt.headers...)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, resp.Header().Get("Location"))
			}
			assert.Len(t, p.published, tt.wantCalls)
			for _, tok := range p.tokens {
				assert.Equal(t, "user-token", tok)
			}
		})
	}
}

func TestPublishAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		headers    []any
		publishErr error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "draft status publishes all",
			query:      "?status=0",
			headers:    []any{tokenCookie},
			wantStatus: http.StatusNoContent,
			wantCalls:  1,
		},
		{
			name:       "published status is rejected",
			query:      "?status=1",
			headers:    []any{tokenCookie},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing status is rejected",
			headers:    []any{tokenCookie},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing cookie returns 401",
			query:      "?status=0",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "failure in the batch surfaces",
			query:      "?status=0",
			headers:    []any{tokenCookie},
			publishErr: &httpclient.TransportError{Method: http.MethodPut, Err: context.DeadlineExceeded},
			wantStatus: http.StatusBadGateway,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := &mockPublisher{err: tt.publishErr}
			api := newEbayAPI(t, storeMocks.NewMockStore(t), p, ebayMocks.NewMockInventoryAPI(t))

			resp := api.Put("/ebay/listing"+tt.query, tt.headers...)

			assert.Equal(t, tt.wantStatus, resp.Code)
			require.Len(t, p.statuses, tt.wantCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, domain.ListingDraft, p.statuses[0])
			}
		})
	}
}

func TestWithdrawListing(t *testing.T) {
	t.Parallel()

	listing := draftListing()
	listing.Status = domain.ListingPublished

	tests := []struct {
		name       string
		setupStore func(*storeMocks.MockStore)
		withdraw   error
		wantStatus int
	}{
		{
			name: "withdraws published listing",
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "no remote offer returns 404",
			setupStore: func(m *storeMocks.MockStore) {
				m.EXPECT().GetListing(mock.Anything, listing.ID).Return(listing, nil).Once()
			},
			withdraw:   fmt.Errorf("no offer for sku: %w", store.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := storeMocks.NewMockStore(t)
			tt.setupStore(s)
			p := &mockPublisher{err: tt.withdraw}
			api := newEbayAPI(t, s, p, ebayMocks.NewMockInventoryAPI(t))

			resp := api.Delete("/ebay/listing/"+listing.ID.String(), tokenCookie)

			assert.Equal(t, tt.wantStatus, resp.Code)
			assert.Equal(t, []uuid.UUID{listing.ID}, p.withdrawn)
		})
	}
}

func TestWithdrawListing_Unauthorized(t *testing.T) {
	t.Parallel()

	p := &mockPublisher{}
	api := newEbayAPI(t, storeMocks.NewMockStore(t), p, ebayMocks.NewMockInventoryAPI(t))

	resp := api.Delete("/ebay/listing/" + uuid.NewString())

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, authorizeURL, resp.Header().Get("Location"))
	assert.Empty(t, p.withdrawn)
}

func TestGetInventoryItem(t *testing.T) {
	t.Parallel()

	itemID := uuid.MustParse("0b8f7c6e-5d4c-4b3a-9f8e-7d6c5b4a3f2e")

	tests := []struct {
		name       string
		path       string
		setupMock  func(*ebayMocks.MockInventoryAPI)
		wantStatus int
		wantBody   string
	}{
		{
			name: "passes through remote item",
			path: "/ebay/listing/" + itemID.String(),
			setupMock: func(m *ebayMocks.MockInventoryAPI) {
				m.EXPECT().GetInventoryItem(mock.Anything, "user-token", itemID.String()).
					Return(json.RawMessage(`{"sku":"`+itemID.String()+`","condition":"NEW"}`), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"condition":"NEW"`,
		},
		{
			name: "absent remote item returns 404",
			path: "/ebay/listing/" + itemID.String(),
			setupMock: func(m *ebayMocks.MockInventoryAPI) {
				m.EXPECT().GetInventoryItem(mock.Anything, "user-token", itemID.String()).
					Return(nil, nil).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed id returns 400",
			path:       "/ebay/listing/sku-1",
			setupMock:  func(_ *ebayMocks.MockInventoryAPI) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "remote failure returns 502",
			path: "/ebay/listing/" + itemID.String(),
			setupMock: func(m *ebayMocks.MockInventoryAPI) {
				m.EXPECT().GetInventoryItem(mock.Anything, "user-token", itemID.String()).
					Return(nil, &httpclient.StatusError{Code: http.StatusInternalServerError}).Once()
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			remote := ebayMocks.NewMockInventoryAPI(t)
			tt.setupMock(remote)
			api := newEbayAPI(t, storeMocks.NewMockStore(t), &mockPublisher{}, remote)

			resp := api.Get(tt.path, tokenCookie)

			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestLocations(t *testing.T) {
	t.Parallel()

	t.Run("list passes through", func(t *testing.T) {
		t.Parallel()

		remote := ebayMocks.NewMockInventoryAPI(t)
		remote.EXPECT().ListLocations(mock.Anything, "user-token").
			Return(json.RawMessage(`{"total":1,"locations":[{"merchantLocationKey":"loc-1"}]}`), nil).Once()
		api := newEbayAPI(t, storeMocks.NewMockStore(t), &mockPublisher{}, remote)

		resp := api.Get("/ebay/location", tokenCookie)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.JSONEq(t, `{"total":1,"locations":[{"merchantLocationKey":"loc-1"}]}`, resp.Body.String())
	})

	t.Run("sync returns 204", func(t *testing.T) {
		t.Parallel()

		p := &mockPublisher{}
		api := newEbayAPI(t, storeMocks.NewMockStore(t), p, ebayMocks.NewMockInventoryAPI(t))

		resp := api.Put("/ebay/location", tokenCookie)

		assert.Equal(t, http.StatusNoContent, resp.Code)
		assert.Equal(t, 1, p.synced)
	})

	t.Run("sync without cookie returns 401", func(t *testing.T) {
		t.Parallel()

		p := &mockPublisher{}
		api := newEbayAPI(t, storeMocks.NewMockStore(t), p, ebayMocks.NewMockInventoryAPI(t))

		resp := api.Put("/ebay/location")

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
		assert.Zero(t, p.synced)
	})

	t.Run("sync daily limit returns 502", func(t *testing.T) {
		t.Parallel()

		p := &mockPublisher{err: fmt.Errorf("get_location: %w", ebay.ErrDailyLimitReached)}
		api := newEbayAPI(t, storeMocks.NewMockStore(t), p, ebayMocks.NewMockInventoryAPI(t))

		resp := api.Put("/ebay/location", tokenCookie)

		assert.Equal(t, http.StatusBadGateway, resp.Code)
	})
}
