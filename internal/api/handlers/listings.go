package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"

	"github.com/donaldgifford/shop-inventory/internal/store"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

// ListingsHandler handles the local listing endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// CreateListingInput is the request body for creating a draft listing.
type CreateListingInput struct {
	Body struct {
		ItemID      string `json:"item_id"               doc:"Item UUID"                        format:"uuid"`
		Marketplace string `json:"marketplace,omitempty" doc:"Marketplace internal name"        example:"ebay" required:"false"`
	}
}

// ListingOutput is the response body for a single listing.
type ListingOutput struct {
	Body domain.Listing
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing UUID"`
}

// ListListingsInput filters listings by status on one marketplace.
type ListListingsInput struct {
	Status      uint8  `query:"status"      doc:"Listing status (0 draft, 1 published, 2 hold, 3 fulfilled, 4 cancelled)" maximum:"4"`
	Marketplace string `query:"marketplace" doc:"Marketplace internal name (default ebay)"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
	}
}

// --- Handlers ---

func (h *ListingsHandler) marketplace(ctx context.Context, name string) (*domain.Marketplace, error) {
	if name == "" {
		name = domain.MarketplaceEbay
	}
	m, err := h.store.GetMarketplaceByInternalName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error400BadRequest("unknown marketplace: " + name)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to load marketplace")
	}
	return m, nil
}

// CreateListing creates a draft listing for an item on a marketplace.
func (h *ListingsHandler) CreateListing(ctx context.Context, input *CreateListingInput) (*ListingOutput, error) {
	itemID, err := uuid.Parse(input.Body.ItemID)
	if err != nil {
		return nil, huma.Error400BadRequest("malformed item id: " + input.Body.ItemID)
	}
	m, err := h.marketplace(ctx, input.Body.Marketplace)
	if err != nil {
		return nil, err
	}

	l := &domain.Listing{
		ItemID:        itemID,
		MarketplaceID: m.ID,
		Status:        domain.ListingDraft,
	}
	switch err := h.store.CreateListing(ctx, l); {
	case errors.Is(err, store.ErrConflict):
		return nil, huma.Error409Conflict("item already has an active listing on " + m.InternalName)
	case errors.Is(err, store.ErrNotFound):
		return nil, huma.Error404NotFound("item not found: " + itemID.String())
	case err != nil:
		return nil, huma.Error500InternalServerError("failed to create listing")
	}
	return &ListingOutput{Body: *l}, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(ctx context.Context, input *GetListingInput) (*ListingOutput, error) {
	id, err := parseID(input.ID, "listing")
	if err != nil {
		return nil, err
	}

	l, err := h.store.GetListing(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("listing not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get listing")
	}
	return &ListingOutput{Body: *l}, nil
}

// ListListings returns the listings with one status on one marketplace.
func (h *ListingsHandler) ListListings(ctx context.Context, input *ListListingsInput) (*ListListingsOutput, error) {
	m, err := h.marketplace(ctx, input.Marketplace)
	if err != nil {
		return nil, err
	}

	listings, err := h.store.GetAllListingsByStatusAndMarketplace(ctx, domain.ListingStatus(input.Status), m.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list listings")
	}
	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = len(listings)
	return resp, nil
}

// RegisterListingRoutes registers the local listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create a draft listing",
		Description:   "Creates a draft listing for an item. Fails with 409 while the item has an active listing on the marketplace.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, h.CreateListing)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get listing by ID",
		Description: "Returns a single listing.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns the listings with a status on a marketplace. Defaults to draft listings on eBay.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadRequest},
	}, h.ListListings)
}
