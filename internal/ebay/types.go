package ebay

// Wire shapes of the Sell Inventory API. Field order follows the eBay
// reference so request bodies diff cleanly against captured traffic.

// Amount is a currency value rendered as a decimal string.
type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

type inventoryItemRequest struct {
	Availability availability   `json:"availability"`
	Condition    string         `json:"condition"`
	Product      productDetails `json:"product"`
}

type availability struct {
	ShipToLocationAvailability shipToLocationAvailability `json:"shipToLocationAvailability"`
}

type shipToLocationAvailability struct {
	AvailabilityDistributions []availabilityDistribution `json:"availabilityDistributions"`
	Quantity                  int                        `json:"quantity"`
}

type availabilityDistribution struct {
	MerchantLocationKey string `json:"merchantLocationKey"`
	Quantity            int    `json:"quantity"`
}

type productDetails struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	UPC         []string `json:"upc,omitempty"`
	ImageURLs   []string `json:"imageUrls"`
}

type offerRequest struct {
	CategoryID                   string          `json:"categoryId"`
	Format                       string          `json:"format"`
	HideBuyerDetails             bool            `json:"hideBuyerDetails"`
	IncludeCatalogProductDetails bool            `json:"includeCatalogProductDetails"`
	ListingDuration              string          `json:"listingDuration"`
	ListingPolicies              listingPolicies `json:"listingPolicies"`
	MarketplaceID                string          `json:"marketplaceId"`
	MerchantLocationKey          string          `json:"merchantLocationKey"`
	PricingSummary               pricingSummary  `json:"pricingSummary"`
	SKU                          string          `json:"sku"`
	Tax                          tax             `json:"tax"`
}

type listingPolicies struct {
	BestOfferTerms      bestOfferTerms `json:"bestOfferTerms"`
	FulfillmentPolicyID string         `json:"fulfillmentPolicyId"`
	PaymentPolicyID     string         `json:"paymentPolicyId"`
	ReturnPolicyID      string         `json:"returnPolicyId"`
}

type bestOfferTerms struct {
	AutoDeclinePrice Amount `json:"autoDeclinePrice"`
	BestOfferEnabled bool   `json:"bestOfferEnabled"`
}

type pricingSummary struct {
	Price Amount `json:"price"`
}

type tax struct {
	ApplyTax bool `json:"applyTax"`
}

// OfferPage is the response of the offer lookup by SKU.
type OfferPage struct {
	Total  int     `json:"total"`
	Offers []Offer `json:"offers"`
}

// Offer is one eBay offer as returned by the offer lookup.
type Offer struct {
	OfferID       string        `json:"offerId"`
	SKU           string        `json:"sku"`
	MarketplaceID string        `json:"marketplaceId"`
	Status        string        `json:"status"`
	Listing       *OfferListing `json:"listing,omitempty"`
}

// OfferListing identifies the live listing of a published offer.
type OfferListing struct {
	ListingID     string `json:"listingId"`
	ListingStatus string `json:"listingStatus"`
}

type publishOfferResponse struct {
	ListingID string `json:"listingId"`
}

type locationRequest struct {
	Location      locationDetails `json:"location"`
	LocationTypes []string        `json:"locationTypes"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	TimeZoneID    string          `json:"timeZoneId"`
}

type locationDetails struct {
	Address address `json:"address"`
}

type address struct {
	AddressLine1    string `json:"addressLine1"`
	City            string `json:"city"`
	StateOrProvince string `json:"stateOrProvince"`
	PostalCode      string `json:"postalCode"`
	Country         string `json:"country"`
}

type locationUpdateRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	TimeZoneID string `json:"timeZoneId"`
}
