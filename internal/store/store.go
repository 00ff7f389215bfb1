// Package store defines the datastore abstraction for the shop inventory.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

// Errors returned by Store implementations.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write would violate a uniqueness rule,
	// e.g. a second active listing for the same item and marketplace.
	ErrConflict = errors.New("conflict")
)

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	Status        *domain.ListingStatus
	MarketplaceID *uuid.UUID
	ItemID        *uuid.UUID
	Limit         int // default 50
	Offset        int
	OrderBy       string // "created", "updated"
}

// Store defines all data access operations used by the shop inventory.
// Reads validate stored values; an enum outside its range surfaces as
// domain.ErrSchemaMismatch.
type Store interface {
	// Catalog
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetProductCategories(ctx context.Context, productID uuid.UUID) ([]domain.Category, error)
	GetRemoteCategory(ctx context.Context, id uuid.UUID) (*domain.RemoteCategory, error)

	// Items
	GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetAllItemImages(ctx context.Context, itemID uuid.UUID) ([]domain.ItemImage, error)

	// Inventory locations
	GetInventoryLocation(ctx context.Context, id uuid.UUID) (*domain.InventoryLocation, error)
	ListInventoryLocations(ctx context.Context) ([]domain.InventoryLocation, error)

	// Marketplaces
	GetMarketplaceByInternalName(ctx context.Context, name string) (*domain.Marketplace, error)

	// Listings
	CreateListing(ctx context.Context, l *domain.Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, int, error)
	GetAllListingsByStatusAndMarketplace(
		ctx context.Context,
		status domain.ListingStatus,
		marketplaceID uuid.UUID,
	) ([]domain.Listing, error)
	UpdateListing(ctx context.Context, l *domain.Listing) error
	GetItemAndProductForListing(ctx context.Context, l *domain.Listing) (*domain.Item, *domain.Product, error)

	// System
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
}
