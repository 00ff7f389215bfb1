package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	"github.com/donaldgifford/shop-inventory/internal/metrics"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const (
	defaultBaseURL         = "https://api.sandbox.ebay.com"
	defaultMarketplace     = "EBAY_US"
	defaultContentLanguage = "en-US"

	inventoryPath = "/sell/inventory/v1"
)

// Adapter implements InventoryAPI against the eBay Sell Inventory API.
type Adapter struct {
	client          *httpclient.Client
	baseURL         string
	authorizeURL    string
	marketplace     string
	contentLanguage string
	imageBaseURL    string
	imageSubpath    string
	rateLimiter     *RateLimiter
	logger          *slog.Logger
}

// AdapterOption configures the Adapter.
type AdapterOption func(*Adapter)

// WithBaseURL overrides the API host.
func WithBaseURL(u string) AdapterOption {
	return func(a *Adapter) {
		a.baseURL = strings.TrimRight(u, "/")
	}
}

// WithReauthURL sets the consent URL carried by *ReauthRequiredError when
// eBay rejects a user token.
func WithReauthURL(u string) AdapterOption {
	return func(a *Adapter) {
		a.authorizeURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) AdapterOption {
	return func(a *Adapter) {
		a.marketplace = m
	}
}

// WithContentLanguage overrides the Content-Language sent on every call.
func WithContentLanguage(lang string) AdapterOption {
	return func(a *Adapter) {
		a.contentLanguage = lang
	}
}

// WithImageHost sets where item image URLs point.
func WithImageHost(baseURL, subpath string) AdapterOption {
	return func(a *Adapter) {
		a.imageBaseURL = baseURL
		a.imageSubpath = subpath
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) AdapterOption {
	return func(a *Adapter) {
		a.rateLimiter = r
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) AdapterOption {
	return func(a *Adapter) {
		a.logger = l
	}
}

// NewAdapter creates a Sell Inventory API adapter sending requests through
// client.
func NewAdapter(client *httpclient.Client, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		client:          client,
		baseURL:         defaultBaseURL,
		authorizeURL:    defaultAuthorizeURL,
		marketplace:     defaultMarketplace,
		contentLanguage: defaultContentLanguage,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RateLimiter returns the limiter in use, or nil.
func (a *Adapter) RateLimiter() *RateLimiter {
	return a.rateLimiter
}

// CreateOrReplaceInventoryItem PUTs the inventory item whose SKU is the
// item id. eBay replaces the whole resource, so repeating the call with the
// same input leaves the remote state unchanged.
func (a *Adapter) CreateOrReplaceInventoryItem(
	ctx context.Context,
	token string,
	item *domain.Item,
	product *domain.Product,
	images []domain.ItemImage,
) error {
	body, err := a.inventoryItemBody(item, product, images)
	if err != nil {
		return err
	}

	sku := item.ID.String()
	req, err := httpclient.NewJSONRequest(ctx, http.MethodPut, a.inventoryURL("inventory_item", sku), body)
	if err != nil {
		return err
	}

	_, err = a.do(ctx, "create_or_replace_inventory_item", token, req, false)
	return err
}

func (a *Adapter) inventoryItemBody(
	item *domain.Item,
	product *domain.Product,
	images []domain.ItemImage,
) (*inventoryItemRequest, error) {
	condition, err := Condition(item.Condition)
	if err != nil {
		return nil, err
	}

	details := productDetails{
		Title:       product.DisplayName,
		Description: product.DisplayName,
		ImageURLs:   imageURLs(a.imageBaseURL, a.imageSubpath, images),
	}
	if product.UPC != nil && *product.UPC != "" {
		details.UPC = []string{*product.UPC}
	}

	return &inventoryItemRequest{
		Availability: availability{
			ShipToLocationAvailability: shipToLocationAvailability{
				AvailabilityDistributions: []availabilityDistribution{{
					MerchantLocationKey: item.InventoryLocationID.String(),
					Quantity:            1,
				}},
				Quantity: 1,
			},
		},
		Condition: condition,
		Product:   details,
	}, nil
}

// GetInventoryItem returns the raw inventory item resource, or nil when eBay
// has none for sku.
func (a *Adapter) GetInventoryItem(ctx context.Context, token, sku string) (json.RawMessage, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, a.inventoryURL("inventory_item", sku), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(ctx, "get_inventory_item", token, req, true)
	if err != nil || resp == nil {
		return nil, err
	}
	return rawJSON(resp)
}

// inventoryURL joins escaped path segments under the Inventory API root.
func (a *Adapter) inventoryURL(segments ...string) string {
	var b strings.Builder
	b.WriteString(a.baseURL)
	b.WriteString(inventoryPath)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// do sends req with the user token after passing the rate limiter. A 401
// becomes *ReauthRequiredError; with optional set a 404 yields (nil, nil).
func (a *Adapter) do(
	ctx context.Context,
	operation, token string,
	req *http.Request,
	optional bool,
) (*httpclient.Response, error) {
	if a.rateLimiter != nil {
		if err := a.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("%s: rate limit: %w", operation, err)
		}
		metrics.EbayDailyUsage.Set(float64(a.rateLimiter.DailyCount()))
	}

	httpclient.Bearer(req, token)
	req.Header.Set("Content-Language", a.contentLanguage)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", a.marketplace)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	var (
		resp *httpclient.Response
		err  error
	)
	if optional {
		resp, err = a.client.ExecuteOptional(req)
	} else {
		resp, err = a.client.Execute(req)
	}
	metrics.EbayAPIDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.EbayAPICallsTotal.WithLabelValues(operation, statusLabel(resp, err)).Inc()

	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) {
			a.logger.WarnContext(ctx, "eBay API call failed",
				"operation", operation,
				"status", se.Code,
				"request_id", se.RequestID,
			)
			if se.Code == http.StatusUnauthorized {
				return nil, &ReauthRequiredError{
					AuthorizeURL: a.authorizeURL,
					Reason:       "eBay rejected the user access token",
					Err:          err,
				}
			}
		}
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	if resp == nil {
		a.logger.DebugContext(ctx, "eBay resource absent", "operation", operation)
		return nil, nil
	}
	a.logger.DebugContext(ctx, "eBay API call",
		"operation", operation,
		"status", resp.StatusCode,
		"request_id", resp.RequestID(),
	)
	return resp, nil
}

func statusLabel(resp *httpclient.Response, err error) string {
	var se *httpclient.StatusError
	switch {
	case errors.As(err, &se):
		return strconv.Itoa(se.Code)
	case err != nil:
		return "transport_error"
	case resp == nil:
		return strconv.Itoa(http.StatusNotFound)
	default:
		return strconv.Itoa(resp.StatusCode)
	}
}

// rawJSON returns the body as raw JSON, rejecting bodies that are not JSON.
func rawJSON(resp *httpclient.Response) (json.RawMessage, error) {
	if !json.Valid(resp.Body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrBadResponse)
	}
	return json.RawMessage(resp.Body), nil
}
