package domain

import (
	"errors"
	"fmt"
)

// ErrSchemaMismatch is returned when a stored value cannot be mapped onto
// its domain type, e.g. an enum integer outside the defined range.
var ErrSchemaMismatch = errors.New("schema mismatch")

// ErrInvalidTransition is returned when a listing status change is not
// allowed by the listing state machine.
var ErrInvalidTransition = errors.New("invalid listing status transition")

// All enums below are stored as their wire integer and translated at the
// persistence and JSON boundaries. The integer values are part of the
// schema and must not be reordered.

func parseEnum[T ~uint8](name string, v int, last T) (T, error) {
	if v < 0 || v > int(last) {
		return 0, fmt.Errorf("%w: %s value %d out of range [0,%d]", ErrSchemaMismatch, name, v, last)
	}
	return T(v), nil
}

// ItemCondition is the physical condition of an item.
type ItemCondition uint8

// Item conditions.
const (
	ConditionInapplicable ItemCondition = iota
	ConditionBrandNew
	ConditionLikeNew
	ConditionVeryGood
	ConditionGood
	ConditionAcceptable
	ConditionDigital
)

var itemConditionNames = [...]string{
	"inapplicable", "brand_new", "like_new", "very_good", "good", "acceptable", "digital",
}

// ParseItemCondition maps a stored integer onto an ItemCondition.
func ParseItemCondition(v int) (ItemCondition, error) {
	return parseEnum("item condition", v, ConditionDigital)
}

// AllItemConditions returns every defined condition in wire order.
func AllItemConditions() []ItemCondition {
	out := make([]ItemCondition, 0, len(itemConditionNames))
	for i := range itemConditionNames {
		out = append(out, ItemCondition(i))
	}
	return out
}

func (c ItemCondition) String() string {
	if int(c) < len(itemConditionNames) {
		return itemConditionNames[c]
	}
	return fmt.Sprintf("condition(%d)", uint8(c))
}

// ItemStatus tracks where an item is in its sales lifecycle.
type ItemStatus uint8

// Item statuses.
const (
	ItemIncomplete ItemStatus = iota
	ItemCompleteUnlisted
	ItemCompleteListed
	ItemCustomerHoldListed
	ItemCustomerHoldDelisted
	ItemPurchaseListed
	ItemPurchasedDelisted
	ItemShipped
	ItemReceived
)

// ParseItemStatus maps a stored integer onto an ItemStatus.
func ParseItemStatus(v int) (ItemStatus, error) {
	return parseEnum("item status", v, ItemReceived)
}

// ListingStatus is the state of a listing on its marketplace.
type ListingStatus uint8

// Listing statuses.
const (
	ListingDraft ListingStatus = iota
	ListingPublished
	ListingHold
	ListingFulfilled
	ListingCancelled
)

var listingStatusNames = [...]string{"draft", "published", "hold", "fulfilled", "cancelled"}

// ParseListingStatus maps a stored integer onto a ListingStatus.
func ParseListingStatus(v int) (ListingStatus, error) {
	return parseEnum("listing status", v, ListingCancelled)
}

func (s ListingStatus) String() string {
	if int(s) < len(listingStatusNames) {
		return listingStatusNames[s]
	}
	return fmt.Sprintf("listing_status(%d)", uint8(s))
}

// Active reports whether a listing in this status occupies its
// (item, marketplace) slot.
func (s ListingStatus) Active() bool {
	return s == ListingDraft || s == ListingPublished || s == ListingHold
}

// Terminal reports whether no further transitions are possible.
func (s ListingStatus) Terminal() bool {
	return s == ListingFulfilled || s == ListingCancelled
}

// CanTransitionTo reports whether s -> next is an edge of the listing
// state machine:
//
//	Draft -> Published -> (Hold | Fulfilled | Cancelled)
//	Hold  -> Published | Cancelled
func (s ListingStatus) CanTransitionTo(next ListingStatus) bool {
	switch s {
	case ListingDraft:
		return next == ListingPublished
	case ListingPublished:
		return next == ListingHold || next == ListingFulfilled || next == ListingCancelled
	case ListingHold:
		return next == ListingPublished || next == ListingCancelled
	default:
		return false
	}
}

// PurchaseStatus is the outcome of a purchase.
type PurchaseStatus uint8

// Purchase statuses.
const (
	PurchaseFulfilled PurchaseStatus = iota
	PurchaseCancelled
)

// ParsePurchaseStatus maps a stored integer onto a PurchaseStatus.
func ParsePurchaseStatus(v int) (PurchaseStatus, error) {
	return parseEnum("purchase status", v, PurchaseCancelled)
}

// ShippingMethod is how a purchase reaches the customer.
type ShippingMethod uint8

// Shipping methods.
const (
	ShippingPickup ShippingMethod = iota
	ShippingShipped
)

// ParseShippingMethod maps a stored integer onto a ShippingMethod.
func ParseShippingMethod(v int) (ShippingMethod, error) {
	return parseEnum("shipping method", v, ShippingShipped)
}

// PaymentMethod is how a purchase was paid.
type PaymentMethod uint8

// Payment methods.
const (
	PaymentCash PaymentMethod = iota
	PaymentCheck
	PaymentCredit
	PaymentDebit
)

// ParsePaymentMethod maps a stored integer onto a PaymentMethod.
func ParsePaymentMethod(v int) (PaymentMethod, error) {
	return parseEnum("payment method", v, PaymentDebit)
}

// CustomerRole is the permission level of a customer account.
type CustomerRole uint8

// Customer roles.
const (
	RoleGuest CustomerRole = iota
	RoleUser
	RoleAdministrator
	RoleDeveloper
)

// ParseCustomerRole maps a stored integer onto a CustomerRole.
func ParseCustomerRole(v int) (CustomerRole, error) {
	return parseEnum("customer role", v, RoleDeveloper)
}

// CustomerStatus enables or disables a customer account.
type CustomerStatus uint8

// Customer statuses.
const (
	CustomerDisabled CustomerStatus = iota
	CustomerEnabled
)

// ParseCustomerStatus maps a stored integer onto a CustomerStatus.
func ParseCustomerStatus(v int) (CustomerStatus, error) {
	return parseEnum("customer status", v, CustomerEnabled)
}
