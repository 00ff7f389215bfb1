package ebay_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/ebay/mocks"
)

// inventoryQuotaResponse mirrors the shape of an eBay Analytics API
// rate_limit response for the Sell Inventory API.
const inventoryQuotaResponse = `{
	"rateLimits": [{
		"apiContext": "sell",
		"apiName": "Inventory",
		"apiVersion": "v1",
		"resources": [
			{
				"name": "sell.inventory",
				"rates": [{
					"count": 110,
					"limit": 2000000,
					"remaining": 1999890,
					"reset": "2026-02-17T08:00:00.000Z",
					"timeWindow": 86400
				}]
			},
			{
				"name": "sell.inventory.bulk",
				"rates": [{
					"count": 0,
					"limit": 5000,
					"remaining": 5000,
					"reset": "2026-02-17T08:00:00.000Z",
					"timeWindow": 86400
				}]
			}
		]
	}]
}`

func TestAnalyticsClient_GetInventoryQuota(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		tokenErr   error
		wantErr    bool
		errContain string
		errIs      error
		want       []ebay.QuotaState
	}{
		{
			name: "successful response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				assert.Equal(t, "sell", r.URL.Query().Get("api_context"))
				assert.Equal(t, "inventory", r.URL.Query().Get("api_name"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(inventoryQuotaResponse))
			},
			want: []ebay.QuotaState{
				{
					Resource:   "sell.inventory",
					Count:      110,
					Limit:      2000000,
					Remaining:  1999890,
					ResetAt:    time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC),
					TimeWindow: 86400 * time.Second,
				},
				{
					Resource:   "sell.inventory.bulk",
					Count:      0,
					Limit:      5000,
					Remaining:  5000,
					ResetAt:    time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC),
					TimeWindow: 86400 * time.Second,
				},
			},
		},
		{
			name: "other APIs only",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{
					"rateLimits": [{
						"apiContext": "buy",
						"apiName": "Browse",
						"resources": [{
							"name": "buy.browse",
							"rates": [{"count": 0, "limit": 5000, "remaining": 5000, "reset": "2026-02-17T08:00:00.000Z", "timeWindow": 86400}]
						}]
					}]
				}`))
			},
			wantErr:    true,
			errIs:      ebay.ErrBadResponse,
			errContain: "no sell.inventory resources",
		},
		{
			name: "empty rate limits",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"rateLimits": []}`))
			},
			wantErr: true,
			errIs:   ebay.ErrBadResponse,
		},
		{
			name: "401 unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"errors": [{"message": "Invalid access token"}]}`))
			},
			wantErr:    true,
			errContain: "status 401",
		},
		{
			name: "500 server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:    true,
			errContain: "status 500",
		},
		{
			name:       "token provider error",
			handler:    func(_ http.ResponseWriter, _ *http.Request) {},
			tokenErr:   assert.AnError,
			wantErr:    true,
			errContain: "getting auth token",
		},
		{
			name: "invalid JSON response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not valid json"))
			},
			wantErr:    true,
			errIs:      ebay.ErrBadResponse,
			errContain: "parsing response body",
		},
		{
			name: "malformed reset timestamp",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{
					"rateLimits": [{
						"apiContext": "sell",
						"apiName": "inventory",
						"resources": [{
							"name": "sell.inventory",
							"rates": [{"count": 10, "limit": 5000, "remaining": 4990, "reset": "not-a-time", "timeWindow": 86400}]
						}]
					}]
				}`))
			},
			wantErr:    true,
			errContain: "parsing reset time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			mockTokens := mocks.NewMockTokenProvider(t)
			if tt.tokenErr != nil {
				mockTokens.EXPECT().
					Token(mock.Anything).
					Return("", tt.tokenErr)
			} else {
				mockTokens.EXPECT().
					Token(mock.Anything).
					Return("test-token", nil)
			}

			client := ebay.NewAnalyticsClient(
				mockTokens,
				ebay.WithAnalyticsURL(srv.URL),
			)

			quotas, err := client.GetInventoryQuota(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContain != "" {
					assert.Contains(t, err.Error(), tt.errContain)
				}
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				return
			}

			require.NoError(t, err)
			require.Len(t, quotas, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Resource, quotas[i].Resource)
				assert.Equal(t, tt.want[i].Count, quotas[i].Count)
				assert.Equal(t, tt.want[i].Limit, quotas[i].Limit)
				assert.Equal(t, tt.want[i].Remaining, quotas[i].Remaining)
				assert.True(t, tt.want[i].ResetAt.Equal(quotas[i].ResetAt))
				assert.Equal(t, tt.want[i].TimeWindow, quotas[i].TimeWindow)
			}
		})
	}
}
