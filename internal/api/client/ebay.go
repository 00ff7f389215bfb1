package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

// QuotaState is one Sell Inventory API resource limit reported by eBay.
type QuotaState struct {
	Resource  string    `json:"resource"`
	Count     int64     `json:"count"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// LocalUsage is the server's own daily call budget.
type LocalUsage struct {
	Used      int64     `json:"used"`
	Limit     int64     `json:"limit"`
	Remaining int64     `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// QuotaResponse is the body of GET /ebay/quota.
type QuotaResponse struct {
	Inventory []QuotaState `json:"inventory"`
	Local     LocalUsage   `json:"local"`
}

// PublishListing publishes one draft listing on eBay.
func (c *Client) PublishListing(ctx context.Context, id string) error {
	return c.put(ctx, "/ebay/listing/"+url.PathEscape(id), nil, nil)
}

// PublishAll publishes every listing with the given status.
func (c *Client) PublishAll(ctx context.Context, status domain.ListingStatus) error {
	q := url.Values{"status": {strconv.Itoa(int(status))}}
	return c.put(ctx, "/ebay/listing?"+q.Encode(), nil, nil)
}

// WithdrawListing withdraws a published listing from eBay.
func (c *Client) WithdrawListing(ctx context.Context, id string) error {
	return c.del(ctx, "/ebay/listing/"+url.PathEscape(id), nil)
}

// GetInventoryItem returns the raw eBay inventory item of an item.
func (c *Client) GetInventoryItem(ctx context.Context, itemID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/ebay/listing/"+url.PathEscape(itemID), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ListLocations returns the raw eBay inventory locations.
func (c *Client) ListLocations(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/ebay/location", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SyncLocations creates missing inventory locations on eBay.
func (c *Client) SyncLocations(ctx context.Context) error {
	return c.put(ctx, "/ebay/location", nil, nil)
}

// Quota returns the eBay API quota and the server's call budget.
func (c *Client) Quota(ctx context.Context) (*QuotaResponse, error) {
	var resp QuotaResponse
	if err := c.get(ctx, "/ebay/quota", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
