// Package domain defines the core business types for the shop inventory
// back office: catalog entities, inventory, and marketplace listings.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MarketplaceEbay is the internal name of the seeded eBay marketplace row.
const MarketplaceEbay = "ebay"

// Product is a catalog entry. Items are physical units of a product.
type Product struct {
	ID           uuid.UUID  `json:"id"`
	DisplayName  string     `json:"display_name"`
	InternalName string     `json:"internal_name"`
	UPC          *string    `json:"upc,omitempty"`
	ReleaseDate  *time.Time `json:"release_date,omitempty"`
	Created      time.Time  `json:"created"`
	Updated      time.Time  `json:"updated"`
}

// Item is a single physical unit held at an inventory location.
type Item struct {
	ID                    uuid.UUID     `json:"id"`
	ProductID             uuid.UUID     `json:"product_id"`
	InventoryLocationID   uuid.UUID     `json:"inventory_location_id"`
	Condition             ItemCondition `json:"condition"`
	Status                ItemStatus    `json:"status"`
	PriceCents            int64         `json:"price_cents"`
	Priority              int32         `json:"priority"`
	Note                  string        `json:"note"`
	AcquisitionDatetime   *time.Time    `json:"acquisition_datetime,omitempty"`
	AcquisitionPriceCents *int64        `json:"acquisition_price_cents,omitempty"`
	AcquisitionLocation   *string       `json:"acquisition_location,omitempty"`
	Created               time.Time     `json:"created"`
	Updated               time.Time     `json:"updated"`
}

// Validate checks the invariants a stored item must satisfy before use.
func (i *Item) Validate() error {
	if i.PriceCents < 0 {
		return fmt.Errorf("%w: item %s has negative price %d", ErrSchemaMismatch, i.ID, i.PriceCents)
	}
	if i.AcquisitionPriceCents != nil && *i.AcquisitionPriceCents < 0 {
		return fmt.Errorf(
			"%w: item %s has negative acquisition price %d",
			ErrSchemaMismatch, i.ID, *i.AcquisitionPriceCents,
		)
	}
	return nil
}

// ItemImage describes one photo of an item. The bytes live in the image
// file store under FileName.
type ItemImage struct {
	ID               uuid.UUID `json:"id"`
	ItemID           uuid.UUID `json:"item_id"`
	AltText          string    `json:"alt_text"`
	Priority         int32     `json:"priority"`
	OriginalFileName string    `json:"original_file_name"`
	Created          time.Time `json:"created"`
	Updated          time.Time `json:"updated"`
}

// FileName returns the key of the image in the file store.
func (img *ItemImage) FileName() string {
	return fmt.Sprintf("%s_%s_%s", img.ItemID, img.ID, img.OriginalFileName)
}

// Category is a node in the category forest. RemoteCategoryID points at a
// cached eBay category row when the category is bound to one.
type Category struct {
	ID               uuid.UUID  `json:"id"`
	DisplayName      string     `json:"display_name"`
	InternalName     string     `json:"internal_name"`
	ParentID         *uuid.UUID `json:"parent_id,omitempty"`
	RemoteCategoryID *uuid.UUID `json:"ebay_category_id,omitempty"`
	Created          time.Time  `json:"created"`
	Updated          time.Time  `json:"updated"`
}

// RemoteCategory is a cached eBay category.
type RemoteCategory struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  string    `json:"ebay_category_id"`
	TreeID      string    `json:"ebay_category_tree_id"`
	TreeVersion string    `json:"ebay_category_tree_version"`
	Name        string    `json:"ebay_category_name"`
	Created     time.Time `json:"created"`
	Updated     time.Time `json:"updated"`
}

// InventoryLocation is a warehouse holding items. Its ID doubles as the
// eBay merchant location key.
type InventoryLocation struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   string    `json:"display_name"`
	InternalName  string    `json:"internal_name"`
	StreetAddress string    `json:"street_address"`
	Municipality  string    `json:"municipality"`
	District      string    `json:"district"`
	PostalArea    string    `json:"postal_area"`
	TimeZoneID    string    `json:"time_zone_id"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

// Marketplace is a sales channel. Rows are seeded and referenced by
// InternalName.
type Marketplace struct {
	ID           uuid.UUID `json:"id"`
	DisplayName  string    `json:"display_name"`
	InternalName string    `json:"internal_name"`
	URI          *string   `json:"uri,omitempty"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
}

// Listing offers one item on one marketplace.
type Listing struct {
	ID            uuid.UUID     `json:"id"`
	ItemID        uuid.UUID     `json:"item_id"`
	MarketplaceID uuid.UUID     `json:"marketplace_id"`
	URI           *string       `json:"uri,omitempty"`
	Status        ListingStatus `json:"status"`
	Created       time.Time     `json:"created"`
	Updated       time.Time     `json:"updated"`
}

// Transition moves the listing to next, stamping Updated with now.
func (l *Listing) Transition(next ListingStatus, now time.Time) error {
	if !l.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, l.Status, next)
	}
	l.Status = next
	l.Updated = now
	return nil
}

// Purchase records a sale against a listing. Costs are in minor units.
type Purchase struct {
	ID                   uuid.UUID      `json:"id"`
	MarketplaceID        uuid.UUID      `json:"marketplace_id"`
	ExternalID           *string        `json:"external_id,omitempty"`
	CustomerID           *uuid.UUID     `json:"customer_id,omitempty"`
	ContactEmailAddress  string         `json:"contact_email_address"`
	ListingID            uuid.UUID      `json:"listing_id"`
	Status               PurchaseStatus `json:"status"`
	CostSubtotalCents    int64          `json:"cost_subtotal_cents"`
	CostTaxCents         int64          `json:"cost_tax_cents"`
	CostShippingCents    int64          `json:"cost_shipping_cents"`
	CostDiscountCents    int64          `json:"cost_discount_cents"`
	SellerCostTotalCents int64          `json:"seller_cost_total_cents"`
	ShippingMethod       ShippingMethod `json:"shipping_method"`
	PaymentMethod        PaymentMethod  `json:"payment_method"`
	Note                 *string        `json:"note,omitempty"`
	Created              time.Time      `json:"created"`
	Updated              time.Time      `json:"updated"`
}

// Customer is a buyer or staff account.
type Customer struct {
	ID           uuid.UUID      `json:"id"`
	EmailAddress string         `json:"email_address"`
	PhoneNumber  *string        `json:"phone_number,omitempty"`
	DisplayName  string         `json:"display_name"`
	Role         CustomerRole   `json:"role"`
	Status       CustomerStatus `json:"status"`
	Created      time.Time      `json:"created"`
	Updated      time.Time      `json:"updated"`
}
