package ebay

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/donaldgifford/shop-inventory/internal/httpclient"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const (
	// locationCountry is fixed; every warehouse is in the US.
	locationCountry = "US"
	// locationPhone is a placeholder; eBay requires a phone on warehouses.
	locationPhone = "+10000000000"
)

// GetLocation returns the raw inventory location resource for key, or nil
// when eBay has none.
func (a *Adapter) GetLocation(ctx context.Context, token, key string) (json.RawMessage, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, a.inventoryURL("location", key), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(ctx, "get_location", token, req, true)
	if err != nil || resp == nil {
		return nil, err
	}
	return rawJSON(resp)
}

// ListLocations returns the raw page of the seller's inventory locations.
func (a *Adapter) ListLocations(ctx context.Context, token string) (json.RawMessage, error) {
	req, err := httpclient.NewJSONRequest(ctx, http.MethodGet, a.inventoryURL("location"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.do(ctx, "list_locations", token, req, false)
	if err != nil {
		return nil, err
	}
	return rawJSON(resp)
}

// CreateLocation registers loc as a warehouse keyed by its id.
func (a *Adapter) CreateLocation(ctx context.Context, token string, loc *domain.InventoryLocation) error {
	body := locationRequest{
		Location: locationDetails{Address: address{
			AddressLine1:    loc.StreetAddress,
			City:            loc.Municipality,
			StateOrProvince: loc.District,
			PostalCode:      loc.PostalArea,
			Country:         locationCountry,
		}},
		LocationTypes: []string{"WAREHOUSE"},
		Name:          loc.DisplayName,
		Phone:         locationPhone,
		TimeZoneID:    loc.TimeZoneID,
	}

	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost, a.inventoryURL("location", loc.ID.String()), body)
	if err != nil {
		return err
	}

	_, err = a.do(ctx, "create_location", token, req, false)
	return err
}

// UpdateLocation changes the name, phone and time zone of an existing
// location. eBay's update_location_details endpoint rejects warehouse
// payloads, so location sync does not call it.
func (a *Adapter) UpdateLocation(ctx context.Context, token string, loc *domain.InventoryLocation) error {
	body := locationUpdateRequest{
		Name:       loc.DisplayName,
		Phone:      locationPhone,
		TimeZoneID: loc.TimeZoneID,
	}

	req, err := httpclient.NewJSONRequest(ctx, http.MethodPost,
		a.inventoryURL("location", loc.ID.String(), "update_location_details"), body)
	if err != nil {
		return err
	}

	_, err = a.do(ctx, "update_location", token, req, false)
	return err
}
