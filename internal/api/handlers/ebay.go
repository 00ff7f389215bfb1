package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shop-inventory/internal/store"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

// Publisher is the publication orchestrator as seen by the handlers.
type Publisher interface {
	Publish(ctx context.Context, token string, listing *domain.Listing) error
	PublishAllWithStatus(ctx context.Context, token string, status domain.ListingStatus) error
	SyncAllLocations(ctx context.Context, token string) error
	Withdraw(ctx context.Context, token string, listing *domain.Listing) error
}

// RemoteInventory reads eBay resources on behalf of the seller.
type RemoteInventory interface {
	GetInventoryItem(ctx context.Context, token, sku string) (json.RawMessage, error)
	ListLocations(ctx context.Context, token string) (json.RawMessage, error)
}

// EbayHandler serves the publication, passthrough and location endpoints.
// Every operation needs the seller's access token cookie.
type EbayHandler struct {
	store        store.Store
	publisher    Publisher
	remote       RemoteInventory
	authorizeURL string
	log          *slog.Logger
}

// NewEbayHandler creates a new EbayHandler. authorizeURL is where a
// request without a usable access token is sent.
func NewEbayHandler(
	s store.Store,
	p Publisher,
	remote RemoteInventory,
	authorizeURL string,
	log *slog.Logger,
) *EbayHandler {
	if log == nil {
		log = slog.Default()
	}
	return &EbayHandler{store: s, publisher: p, remote: remote, authorizeURL: authorizeURL, log: log}
}

// --- Input/Output types ---

// TokenInput reads the access token cookie.
type TokenInput struct {
	AccessToken string `cookie:"ebay_user_access_token"`
}

// ListingIDInput addresses one listing.
type ListingIDInput struct {
	TokenInput
	ID string `path:"id" doc:"Listing UUID"`
}

// PublishAllInput selects which listings to publish.
type PublishAllInput struct {
	TokenInput
	Status uint8 `query:"status" required:"true" doc:"Listing status to publish; only 0 (draft) is accepted"`
}

// InventoryItemInput addresses one remote inventory item by item id.
type InventoryItemInput struct {
	TokenInput
	ID string `path:"id" doc:"Item UUID, used as the eBay SKU"`
}

// RawOutput passes an eBay resource through unchanged.
type RawOutput struct {
	Body json.RawMessage
}

// --- Handlers ---

func (h *EbayHandler) token(in *TokenInput) (string, error) {
	if in.AccessToken == "" {
		return "", reauthError(h.authorizeURL)
	}
	return in.AccessToken, nil
}

func (h *EbayHandler) loadListing(ctx context.Context, raw string) (*domain.Listing, error) {
	id, err := parseID(raw, "listing")
	if err != nil {
		return nil, err
	}
	listing, err := h.store.GetListing(ctx, id)
	if err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	return listing, nil
}

// PublishListing publishes one draft listing.
func (h *EbayHandler) PublishListing(ctx context.Context, input *ListingIDInput) (*struct{}, error) {
	token, err := h.token(&input.TokenInput)
	if err != nil {
		return nil, err
	}
	listing, err := h.loadListing(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.publisher.Publish(ctx, token, listing); err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	return nil, nil
}

// PublishAll publishes every listing with the requested status.
func (h *EbayHandler) PublishAll(ctx context.Context, input *PublishAllInput) (*struct{}, error) {
	token, err := h.token(&input.TokenInput)
	if err != nil {
		return nil, err
	}

	status := domain.ListingStatus(input.Status)
	if status != domain.ListingDraft {
		return nil, huma.Error400BadRequest("only draft listings (status=0) can be published")
	}
	if err := h.publisher.PublishAllWithStatus(ctx, token, status); err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	return nil, nil
}

// WithdrawListing ends the eBay listing and cancels it locally.
func (h *EbayHandler) WithdrawListing(ctx context.Context, input *ListingIDInput) (*struct{}, error) {
	token, err := h.token(&input.TokenInput)
	if err != nil {
		return nil, err
	}
	listing, err := h.loadListing(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.publisher.Withdraw(ctx, token, listing); err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	return nil, nil
}

// GetInventoryItem passes through the eBay inventory item of an item.
func (h *EbayHandler) GetInventoryItem(ctx context.Context, input *InventoryItemInput) (*RawOutput, error) {
	token, err := h.token(&input.TokenInput)
	if err != nil {
		return nil, err
	}
	id, err := parseID(input.ID, "item")
	if err != nil {
		return nil, err
	}

	raw, err := h.remote.GetInventoryItem(ctx, token, id.String())
	if err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	if raw == nil {
		return nil, huma.Error404NotFound("no eBay inventory item for " + id.String())
	}
	return &RawOutput{Body: raw}, nil
}

// ListLocations passes through the seller's eBay inventory locations.
func (h *EbayHandler) ListLocations(ctx context.Context, input *TokenInput) (*RawOutput, error) {
	token, err := h.token(input)
	if err != nil {
		return nil, err
	}

	raw, err := h.remote.ListLocations(ctx, token)
	if err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	return &RawOutput{Body: raw}, nil
}

// SyncLocations creates missing inventory locations on eBay.
func (h *EbayHandler) SyncLocations(ctx context.Context, input *TokenInput) (*struct{}, error) {
	token, err := h.token(input)
	if err != nil {
		return nil, err
	}

	if err := h.publisher.SyncAllLocations(ctx, token); err != nil {
		return nil, toHTTPError(err, h.authorizeURL)
	}
	return nil, nil
}

// RegisterEbayRoutes registers publication and location endpoints with the
// Huma API.
func RegisterEbayRoutes(api huma.API, h *EbayHandler) {
	publishErrors := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusNotFound,
		http.StatusBadGateway,
	}

	huma.Register(api, huma.Operation{
		OperationID:   "publish-listing",
		Method:        http.MethodPut,
		Path:          "/ebay/listing/{id}",
		Summary:       "Publish a listing",
		Description:   "Creates the eBay inventory item and offer for a draft listing and publishes it.",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusNoContent,
		Errors:        publishErrors,
	}, h.PublishListing)

	huma.Register(api, huma.Operation{
		OperationID:   "publish-all-listings",
		Method:        http.MethodPut,
		Path:          "/ebay/listing",
		Summary:       "Publish all listings with a status",
		Description:   "Publishes every draft listing on eBay, one at a time.",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusNoContent,
		Errors:        publishErrors,
	}, h.PublishAll)

	huma.Register(api, huma.Operation{
		OperationID:   "withdraw-listing",
		Method:        http.MethodDelete,
		Path:          "/ebay/listing/{id}",
		Summary:       "Withdraw a listing",
		Description:   "Withdraws the eBay offer of a published or held listing and cancels it.",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusNoContent,
		Errors:        publishErrors,
	}, h.WithdrawListing)

	huma.Register(api, huma.Operation{
		OperationID: "get-inventory-item",
		Method:      http.MethodGet,
		Path:        "/ebay/listing/{id}",
		Summary:     "Get the eBay inventory item of an item",
		Description: "Returns the eBay inventory item resource whose SKU is the item id.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound, http.StatusBadGateway},
	}, h.GetInventoryItem)

	huma.Register(api, huma.Operation{
		OperationID: "list-ebay-locations",
		Method:      http.MethodGet,
		Path:        "/ebay/location",
		Summary:     "List eBay inventory locations",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusUnauthorized, http.StatusBadGateway},
	}, h.ListLocations)

	huma.Register(api, huma.Operation{
		OperationID:   "sync-ebay-locations",
		Method:        http.MethodPut,
		Path:          "/ebay/location",
		Summary:       "Sync inventory locations",
		Description:   "Creates every local inventory location that eBay does not know yet.",
		Tags:          []string{"ebay"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusUnauthorized, http.StatusBadGateway},
	}, h.SyncLocations)
}
