package ebay_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

var testPolicies = ebay.Policies{
	FulfillmentPolicyID: "6209442000",
	PaymentPolicyID:     "6209443000",
	ReturnPolicyID:      "6209449000",
}

func testCategories() []domain.RemoteCategory {
	return []domain.RemoteCategory{
		{ID: uuid.New(), CategoryID: "139973", TreeID: "0", Name: "Video Games"},
		{ID: uuid.New(), CategoryID: "54968", TreeID: "0", Name: "Video Game Accessories"},
	}
}

func TestAdapter_GetOffers(t *testing.T) {
	t.Parallel()

	t.Run("offers found", func(t *testing.T) {
		t.Parallel()

		adapter, fake := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{
				"total": 1,
				"offers": [{
					"offerId": "9001",
					"sku": "abc",
					"marketplaceId": "EBAY_US",
					"status": "PUBLISHED",
					"listing": {"listingId": "110553", "listingStatus": "ACTIVE"}
				}]
			}`))
		})

		page, err := adapter.GetOffers(context.Background(), "tok", "abc")
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Len(t, page.Offers, 1)
		assert.Equal(t, "9001", page.Offers[0].OfferID)
		require.NotNil(t, page.Offers[0].Listing)
		assert.Equal(t, "110553", page.Offers[0].Listing.ListingID)

		req := fake.all()[0]
		assert.Equal(t, http.MethodGet, req.Method)
		assert.Equal(t, "/sell/inventory/v1/offer", req.Path)
		q, err := url.ParseQuery(req.Query)
		require.NoError(t, err)
		assert.Equal(t, "EBAY_US", q.Get("marketplace_id"))
		assert.Equal(t, "abc", q.Get("sku"))
		assert.Equal(t, "FIXED_PRICE", q.Get("format"))
	})

	t.Run("404 is an empty page", func(t *testing.T) {
		t.Parallel()

		adapter, _ := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		page, err := adapter.GetOffers(context.Background(), "tok", "abc")
		require.NoError(t, err)
		assert.Zero(t, page.Total)
		assert.Empty(t, page.Offers)
	})

	t.Run("bad body", func(t *testing.T) {
		t.Parallel()

		adapter, _ := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"total": "many"}`))
		})

		_, err := adapter.GetOffers(context.Background(), "tok", "abc")
		require.ErrorIs(t, err, ebay.ErrBadResponse)
	})
}

func TestAdapter_CreateOffer(t *testing.T) {
	t.Parallel()

	item := testItem()
	adapter, fake := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"offerId": "9001"}`))
	})

	offerID, err := adapter.CreateOffer(context.Background(), "tok", item, testCategories(), testPolicies)
	require.NoError(t, err)
	assert.Equal(t, "9001", offerID)

	req := fake.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/sell/inventory/v1/offer", req.Path)

	want := `{
		"categoryId": "139973",
		"format": "FIXED_PRICE",
		"hideBuyerDetails": false,
		"includeCatalogProductDetails": true,
		"listingDuration": "GTC",
		"listingPolicies": {
			"bestOfferTerms": {
				"autoDeclinePrice": {"currency": "USD", "value": "9.99"},
				"bestOfferEnabled": true
			},
			"fulfillmentPolicyId": "6209442000",
			"paymentPolicyId": "6209443000",
			"returnPolicyId": "6209449000"
		},
		"marketplaceId": "EBAY_US",
		"merchantLocationKey": "` + item.InventoryLocationID.String() + `",
		"pricingSummary": {"price": {"currency": "USD", "value": "19.99"}},
		"sku": "` + item.ID.String() + `",
		"tax": {"applyTax": false}
	}`
	assert.JSONEq(t, want, string(req.Body))
}

func TestAdapter_CreateOffer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		categories []domain.RemoteCategory
		body       string
		wantErr    error
		wantCalls  int
	}{
		{
			name:       "no categories",
			categories: nil,
			wantErr:    ebay.ErrNoCategory,
			wantCalls:  0,
		},
		{
			name:       "missing offer id",
			categories: testCategories(),
			body:       `{"warnings": []}`,
			wantErr:    ebay.ErrBadResponse,
			wantCalls:  1,
		},
		{
			name:       "numeric offer id",
			categories: testCategories(),
			body:       `{"offerId": 9001}`,
			wantErr:    ebay.ErrBadResponse,
			wantCalls:  1,
		},
		{
			name:       "not json",
			categories: testCategories(),
			body:       `ok`,
			wantErr:    ebay.ErrBadResponse,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			adapter, fake := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := adapter.CreateOffer(context.Background(), "tok", testItem(), tt.categories, testPolicies)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, fake.all(), tt.wantCalls)
		})
	}
}

func TestAdapter_PublishOffer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "listing id returned", body: `{"listingId": "110553"}`, want: "110553"},
		{name: "empty body", body: ``, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			adapter, fake := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			listingID, err := adapter.PublishOffer(context.Background(), "tok", "9001")
			require.NoError(t, err)
			assert.Equal(t, tt.want, listingID)

			req := fake.all()[0]
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/sell/inventory/v1/offer/9001/publish", req.Path)
		})
	}
}

func TestAdapter_PublishOffer_Unauthorized(t *testing.T) {
	t.Parallel()

	adapter, _ := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := adapter.PublishOffer(context.Background(), "tok", "9001")
	reauth, ok := ebay.AsReauthRequired(err)
	require.True(t, ok)
	assert.Equal(t, testReauthURL, reauth.AuthorizeURL)
}

func TestAdapter_WithdrawOffer(t *testing.T) {
	t.Parallel()

	adapter, fake := newAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"listingId": "110553"}`))
	})

	require.NoError(t, adapter.WithdrawOffer(context.Background(), "tok", "9001"))

	req := fake.all()[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/sell/inventory/v1/offer/9001/withdraw", req.Path)
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
}
