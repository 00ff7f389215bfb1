package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const (
	formatFixedPrice   = "FIXED_PRICE"
	durationGoodTilCxl = "GTC"
)

// GetOffers looks up the fixed-price offers for sku on the marketplace.
// A 404 from eBay means no offer and yields an empty page.
func (a *Adapter) GetOffers(ctx context.Context, token, sku string) (*OfferPage, error) {
	q := url.Values{
		"marketplace_id": {a.marketplace},
		"sku":            {sku},
		"format":         {formatFixedPrice},
	}
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, a.inventoryURL("offer")+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(ctx, "get_offers", token, req, true)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return &OfferPage{}, nil
	}

	var page OfferPage
	if err := resp.DecodeJSON(&page); err != nil {
		return nil, fmt.Errorf("%w: offer lookup: %w", ErrBadResponse, err)
	}
	return &page, nil
}

// CreateOffer creates an unpublished fixed-price offer for item and returns
// its offer id. The first remote category is used; an empty categories
// slice fails with ErrNoCategory before any call is made.
func (a *Adapter) CreateOffer(
	ctx context.Context,
	token string,
	item *domain.Item,
	categories []domain.RemoteCategory,
	policies Policies,
) (string, error) {
	if len(categories) == 0 {
		return "", fmt.Errorf("creating offer for item %s: %w", item.ID, ErrNoCategory)
	}

	body := offerRequest{
		CategoryID:                   categories[0].CategoryID,
		Format:                       formatFixedPrice,
		HideBuyerDetails:             false,
		IncludeCatalogProductDetails: true,
		ListingDuration:              durationGoodTilCxl,
		ListingPolicies: listingPolicies{
			BestOfferTerms: bestOfferTerms{
				AutoDeclinePrice: usd(item.PriceCents / 2),
				BestOfferEnabled: true,
			},
			FulfillmentPolicyID: policies.FulfillmentPolicyID,
			PaymentPolicyID:     policies.PaymentPolicyID,
			ReturnPolicyID:      policies.ReturnPolicyID,
		},
		MarketplaceID:       a.marketplace,
		MerchantLocationKey: item.InventoryLocationID.String(),
		PricingSummary:      pricingSummary{Price: usd(item.PriceCents)},
		SKU:                 item.ID.String(),
		Tax:                 tax{ApplyTax: false},
	}

	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, a.inventoryURL("offer"), body)
	if err != nil {
		return "", err
	}

	resp, err := a.do(ctx, "create_offer", token, req, false)
	if err != nil {
		return "", err
	}

	// offerId is read untyped so a number or null is reported, not coerced.
	var out map[string]any
	if err := resp.DecodeJSON(&out); err != nil {
		return "", fmt.Errorf("%w: create offer: %w", ErrBadResponse, err)
	}
	offerID, ok := out["offerId"].(string)
	if !ok || offerID == "" {
		return "", fmt.Errorf("%w: create offer response has no string offerId", ErrBadResponse)
	}
	return offerID, nil
}

// PublishOffer turns an offer into a live listing and returns the listing
// id, which may be empty if eBay omits it.
func (a *Adapter) PublishOffer(ctx context.Context, token, offerID string) (string, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, a.inventoryURL("offer", offerID, "publish"), nil)
	if err != nil {
		return "", err
	}

	resp, err := a.do(ctx, "publish_offer", token, req, false)
	if err != nil {
		return "", err
	}

	var out publishOfferResponse
	if len(resp.Body) > 0 && json.Valid(resp.Body) {
		_ = resp.DecodeJSON(&out) //nolint:errcheck // listingId is informational
	}
	return out.ListingID, nil
}

// WithdrawOffer ends the live listing of a published offer.
func (a *Adapter) WithdrawOffer(ctx context.Context, token, offerID string) error {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, a.inventoryURL("offer", offerID, "withdraw"), nil)
	if err != nil {
		return err
	}

	_, err = a.do(ctx, "withdraw_offer", token, req, false)
	return err
}
