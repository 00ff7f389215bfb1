package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

// ListingsResponse wraps a listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Status      domain.ListingStatus
	Marketplace string
}

// CreateListing creates a draft listing for an item. An empty marketplace
// means eBay.
func (c *Client) CreateListing(ctx context.Context, itemID, marketplace string) (*domain.Listing, error) {
	body := map[string]any{"item_id": itemID}
	if marketplace != "" {
		body["marketplace"] = marketplace
	}

	var l domain.Listing
	if err := c.post(ctx, "/api/v1/listings", body, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListListings returns the listings with one status on one marketplace.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	q.Set("status", strconv.Itoa(int(params.Status)))
	if params.Marketplace != "" {
		q.Set("marketplace", params.Marketplace)
	}

	var resp ListingsResponse
	if err := c.get(ctx, "/api/v1/listings?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}
