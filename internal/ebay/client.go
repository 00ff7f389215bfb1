// Package ebay provides the eBay OAuth token manager and a Sell Inventory
// API adapter, abstracted behind interfaces for testability.
package ebay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

var (
	// ErrBadResponse is returned when eBay answers 2xx with a body that does
	// not have the expected shape.
	ErrBadResponse = errors.New("unexpected eBay response")

	// ErrNoCategory is returned when a product has no eBay category binding.
	ErrNoCategory = errors.New("product has no eBay category")
)

// ReauthRequiredError means the seller must grant consent again: the user
// token is missing, expired beyond refresh, or rejected by eBay.
type ReauthRequiredError struct {
	AuthorizeURL string
	Reason       string
	Err          error
}

func (e *ReauthRequiredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("eBay reauthorization required: %s: %v", e.Reason, e.Err)
	}
	return "eBay reauthorization required: " + e.Reason
}

func (e *ReauthRequiredError) Unwrap() error { return e.Err }

// AsReauthRequired extracts a *ReauthRequiredError from err's chain.
func AsReauthRequired(err error) (*ReauthRequiredError, bool) {
	var re *ReauthRequiredError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// TokenProvider defines the interface for obtaining application OAuth2 tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Policies are the seller business policy ids attached to every offer.
type Policies struct {
	FulfillmentPolicyID string
	PaymentPolicyID     string
	ReturnPolicyID      string
}

// InventoryAPI is the part of the Sell Inventory API the publication
// orchestrator drives. Every call takes the seller's user access token.
type InventoryAPI interface {
	CreateOrReplaceInventoryItem(
		ctx context.Context,
		token string,
		item *domain.Item,
		product *domain.Product,
		images []domain.ItemImage,
	) error
	GetInventoryItem(ctx context.Context, token, sku string) (json.RawMessage, error)

	GetOffers(ctx context.Context, token, sku string) (*OfferPage, error)
	CreateOffer(
		ctx context.Context,
		token string,
		item *domain.Item,
		categories []domain.RemoteCategory,
		policies Policies,
	) (string, error)
	PublishOffer(ctx context.Context, token, offerID string) (string, error)
	WithdrawOffer(ctx context.Context, token, offerID string) error

	GetLocation(ctx context.Context, token, key string) (json.RawMessage, error)
	CreateLocation(ctx context.Context, token string, loc *domain.InventoryLocation) error
	ListLocations(ctx context.Context, token string) (json.RawMessage, error)
}

var _ InventoryAPI = (*Adapter)(nil)
