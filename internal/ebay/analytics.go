package ebay

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/donaldgifford/shop-inventory/internal/httpclient"
)

const defaultAnalyticsURL = "https://api.sandbox.ebay.com/developer/analytics/v1_beta/rate_limit/"

// rateLimitResponse is the top-level Analytics API response.
type rateLimitResponse struct {
	RateLimits []rateLimitEntry `json:"rateLimits"`
}

// rateLimitEntry represents one API context in the Analytics response.
type rateLimitEntry struct {
	APIContext string     `json:"apiContext"`
	APIName    string     `json:"apiName"`
	APIVersion string     `json:"apiVersion"`
	Resources  []resource `json:"resources"`
}

type resource struct {
	Name  string      `json:"name"`
	Rates []quotaRate `json:"rates"`
}

type quotaRate struct {
	Count      int64  `json:"count"`
	Limit      int64  `json:"limit"`
	Remaining  int64  `json:"remaining"`
	Reset      string `json:"reset"`
	TimeWindow int64  `json:"timeWindow"`
}

// QuotaState holds the rate limit state of one eBay API resource.
type QuotaState struct {
	Resource   string        `json:"resource"`
	Count      int64         `json:"count"`
	Limit      int64         `json:"limit"`
	Remaining  int64         `json:"remaining"`
	ResetAt    time.Time     `json:"reset_at"`
	TimeWindow time.Duration `json:"time_window"`
}

// AnalyticsClient queries the eBay Developer Analytics API for rate limit state.
type AnalyticsClient struct {
	tokens       TokenProvider
	analyticsURL string
	client       *httpclient.Client
}

// AnalyticsOption configures the AnalyticsClient.
type AnalyticsOption func(*AnalyticsClient)

// WithAnalyticsURL overrides the default Analytics API endpoint.
func WithAnalyticsURL(u string) AnalyticsOption {
	return func(c *AnalyticsClient) {
		c.analyticsURL = u
	}
}

// WithAnalyticsHTTPClient overrides the default HTTP client.
func WithAnalyticsHTTPClient(hc *httpclient.Client) AnalyticsOption {
	return func(c *AnalyticsClient) {
		c.client = hc
	}
}

// NewAnalyticsClient creates a new eBay Analytics API client authenticated
// with the application token.
func NewAnalyticsClient(tokens TokenProvider, opts ...AnalyticsOption) *AnalyticsClient {
	c := &AnalyticsClient{
		tokens:       tokens,
		analyticsURL: defaultAnalyticsURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = httpclient.New()
	}
	return c
}

// GetInventoryQuota returns the rate limit state of every Sell Inventory
// API resource (api_context=sell, api_name=inventory).
func (c *AnalyticsClient) GetInventoryQuota(ctx context.Context) ([]QuotaState, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	u, err := url.Parse(c.analyticsURL)
	if err != nil {
		return nil, fmt.Errorf("parsing analytics URL: %w", err)
	}
	q := u.Query()
	q.Set("api_context", "sell")
	q.Set("api_name", "inventory")
	u.RawQuery = q.Encode()

	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Execute(httpclient.Bearer(req, token))
	if err != nil {
		return nil, fmt.Errorf("querying analytics API: %w", err)
	}

	var apiResp rateLimitResponse
	if err := resp.DecodeJSON(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadResponse, err)
	}

	return extractQuotas(apiResp, "sell", "inventory")
}

// extractQuotas flattens the resources of the matching API into one state
// per resource, taking each resource's first rate window.
func extractQuotas(resp rateLimitResponse, apiContext, apiName string) ([]QuotaState, error) {
	var states []QuotaState
	for _, entry := range resp.RateLimits {
		if !strings.EqualFold(entry.APIContext, apiContext) || !strings.EqualFold(entry.APIName, apiName) {
			continue
		}
		for _, res := range entry.Resources {
			if len(res.Rates) == 0 {
				continue
			}
			r := res.Rates[0]

			resetAt, err := time.Parse(time.RFC3339, r.Reset)
			if err != nil {
				return nil, fmt.Errorf("%w: parsing reset time %q: %w", ErrBadResponse, r.Reset, err)
			}

			states = append(states, QuotaState{
				Resource:   res.Name,
				Count:      r.Count,
				Limit:      r.Limit,
				Remaining:  r.Remaining,
				ResetAt:    resetAt,
				TimeWindow: time.Duration(r.TimeWindow) * time.Second,
			})
		}
	}

	if len(states) == 0 {
		return nil, fmt.Errorf("%w: no %s.%s resources in analytics response", ErrBadResponse, apiContext, apiName)
	}
	return states, nil
}
