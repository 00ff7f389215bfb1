// Package main implements a mock eBay API server for local development.
// It keeps inventory items, offers and locations in memory so the publish
// flow can run end to end without real eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// expiredToken is a bearer token the server always rejects, for exercising
// the reauthorization path.
const expiredToken = "expired"

const (
	accessTokenTTL  = 7200
	refreshTokenTTL = 47304000
)

type offer struct {
	OfferID       string        `json:"offerId"`
	SKU           string        `json:"sku"`
	MarketplaceID string        `json:"marketplaceId"`
	Format        string        `json:"format"`
	Status        string        `json:"status"`
	Listing       *offerListing `json:"listing,omitempty"`
}

type offerListing struct {
	ListingID     string `json:"listingId"`
	ListingStatus string `json:"listingStatus"`
}

// fakeEbay is the in-memory state behind the mock endpoints.
type fakeEbay struct {
	log *slog.Logger

	mu        sync.Mutex
	seq       int
	items     map[string]json.RawMessage
	offers    map[string]*offer
	locations map[string]json.RawMessage
}

func newFakeEbay(logger *slog.Logger) *fakeEbay {
	return &fakeEbay{
		log:       logger,
		items:     map[string]json.RawMessage{},
		offers:    map[string]*offer{},
		locations: map[string]json.RawMessage{},
	}
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock eBay server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newFakeEbay(logger).routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func (f *fakeEbay) routes() *http.ServeMux {
	const inv = "/sell/inventory/v1"

	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", f.token)
	mux.HandleFunc("GET /developer/analytics/v1_beta/rate_limit/", f.authed(f.rateLimit))

	mux.HandleFunc("PUT "+inv+"/inventory_item/{sku}", f.authed(f.putItem))
	mux.HandleFunc("GET "+inv+"/inventory_item/{sku}", f.authed(f.getItem))

	mux.HandleFunc("GET "+inv+"/offer", f.authed(f.getOffers))
	mux.HandleFunc("POST "+inv+"/offer", f.authed(f.createOffer))
	mux.HandleFunc("POST "+inv+"/offer/{offerId}/publish", f.authed(f.publishOffer))
	mux.HandleFunc("POST "+inv+"/offer/{offerId}/withdraw", f.authed(f.withdrawOffer))

	mux.HandleFunc("GET "+inv+"/location", f.authed(f.listLocations))
	mux.HandleFunc("GET "+inv+"/location/{key}", f.authed(f.getLocation))
	mux.HandleFunc("POST "+inv+"/location/{key}", f.authed(f.createLocation))
	mux.HandleFunc("POST "+inv+"/location/{key}/update_location_details", f.authed(f.updateLocation))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeEbayError(w http.ResponseWriter, status, errorID int, message string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{
			"errorId":  errorID,
			"domain":   "API_INVENTORY",
			"category": "REQUEST",
			"message":  message,
		}},
	})
}

// authed rejects requests without a usable bearer token the way eBay does.
func (f *fakeEbay) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" || token == expiredToken {
			f.log.Warn("rejected bearer token", "path", r.URL.Path)
			writeEbayError(w, http.StatusUnauthorized, 1001, "Invalid access token")
			return
		}
		next(w, r)
	}
}

func (f *fakeEbay) nextID() string {
	f.seq++
	return strconv.Itoa(100000 + f.seq)
}

func (f *fakeEbay) token(w http.ResponseWriter, r *http.Request) {
	// Validate Basic Auth header is present (don't verify creds).
	if _, _, ok := r.BasicAuth(); !ok {
		f.log.Warn("token request missing Basic Auth header")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	stamp := strconv.FormatInt(time.Now().UnixNano(), 16)
	switch grant := r.PostForm.Get("grant_type"); grant {
	case "client_credentials":
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-app-" + stamp,
			"expires_in":   accessTokenTTL,
			"token_type":   "Application Access Token",
		})
	case "authorization_code":
		if r.PostForm.Get("code") == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "the provided authorization grant code is invalid",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":             "mock-user-" + stamp,
			"expires_in":               accessTokenTTL,
			"refresh_token":            "mock-refresh-" + stamp,
			"refresh_token_expires_in": refreshTokenTTL,
			"token_type":               "User Access Token",
		})
	case "refresh_token":
		if r.PostForm.Get("refresh_token") == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "the provided authorization refresh token is invalid",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "mock-user-" + stamp,
			"expires_in":   accessTokenTTL,
			"token_type":   "User Access Token",
		})
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "unsupported_grant_type",
			"error_description": fmt.Sprintf("grant type %q is not supported", grant),
		})
		return
	}
	f.log.Info("issued mock token", "grant_type", r.PostForm.Get("grant_type"))
}

func (f *fakeEbay) rateLimit(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	used := int64(f.seq)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"rateLimits": []map[string]any{{
			"apiContext": "sell",
			"apiName":    "inventory",
			"apiVersion": "v1",
			"resources": []map[string]any{{
				"name": "sell.inventory",
				"rates": []map[string]any{{
					"count":      used,
					"limit":      2000000,
					"remaining":  2000000 - used,
					"reset":      time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour).Format(time.RFC3339),
					"timeWindow": 86400,
				}},
			}},
		}},
	})
}

func (f *fakeEbay) putItem(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeEbayError(w, http.StatusBadRequest, 2004, "Invalid request body")
		return
	}

	sku := r.PathValue("sku")
	f.mu.Lock()
	_, existed := f.items[sku]
	f.items[sku] = body
	f.mu.Unlock()

	f.log.Info("stored inventory item", "sku", sku, "replaced", existed)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeEbay) getItem(w http.ResponseWriter, r *http.Request) {
	sku := r.PathValue("sku")
	f.mu.Lock()
	item, ok := f.items[sku]
	f.mu.Unlock()

	if !ok {
		writeEbayError(w, http.StatusNotFound, 25710, "We didn't find the resource/entity you are requesting.")
		return
	}

	var doc map[string]any
	//nolint:errcheck,gosec // stored bodies were validated on write
	json.Unmarshal(item, &doc)
	doc["sku"] = sku
	writeJSON(w, http.StatusOK, doc)
}

func (f *fakeEbay) getOffers(w http.ResponseWriter, r *http.Request) {
	sku := r.URL.Query().Get("sku")
	marketplace := r.URL.Query().Get("marketplace_id")

	f.mu.Lock()
	var matched []offer
	for _, o := range f.offers {
		if o.SKU == sku && (marketplace == "" || o.MarketplaceID == marketplace) {
			matched = append(matched, *o)
		}
	}
	f.mu.Unlock()

	if len(matched) == 0 {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":  len(matched),
		"offers": matched,
	})
}

func (f *fakeEbay) createOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU           string `json:"sku"`
		MarketplaceID string `json:"marketplaceId"`
		Format        string `json:"format"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SKU == "" {
		writeEbayError(w, http.StatusBadRequest, 25709, "Invalid value for sku")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.items[req.SKU]; !ok {
		writeEbayError(w, http.StatusBadRequest, 25702, "The SKU "+req.SKU+" is not available in the system.")
		return
	}
	for _, o := range f.offers {
		if o.SKU == req.SKU && o.MarketplaceID == req.MarketplaceID {
			writeEbayError(w, http.StatusBadRequest, 25002, "Offer entity already exists.")
			return
		}
	}

	o := &offer{
		OfferID:       f.nextID(),
		SKU:           req.SKU,
		MarketplaceID: req.MarketplaceID,
		Format:        req.Format,
		Status:        "UNPUBLISHED",
	}
	f.offers[o.OfferID] = o
	f.log.Info("created offer", "offer_id", o.OfferID, "sku", o.SKU)
	writeJSON(w, http.StatusCreated, map[string]string{"offerId": o.OfferID})
}

func (f *fakeEbay) publishOffer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("offerId")

	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.offers[id]
	if !ok {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available.")
		return
	}
	if o.Listing == nil || o.Listing.ListingStatus != "ACTIVE" {
		o.Listing = &offerListing{ListingID: "11" + f.nextID(), ListingStatus: "ACTIVE"}
	}
	o.Status = "PUBLISHED"
	f.log.Info("published offer", "offer_id", id, "listing_id", o.Listing.ListingID)
	writeJSON(w, http.StatusOK, map[string]string{"listingId": o.Listing.ListingID})
}

func (f *fakeEbay) withdrawOffer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("offerId")

	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.offers[id]
	if !ok {
		writeEbayError(w, http.StatusNotFound, 25713, "This Offer is not available.")
		return
	}
	if o.Status != "PUBLISHED" {
		writeEbayError(w, http.StatusBadRequest, 25014, "The offer is not published.")
		return
	}
	o.Status = "UNPUBLISHED"
	o.Listing.ListingStatus = "ENDED"
	f.log.Info("withdrew offer", "offer_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"listingId": o.Listing.ListingID})
}

func (f *fakeEbay) listLocations(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	locations := make([]json.RawMessage, 0, len(f.locations))
	for key, loc := range f.locations {
		var doc map[string]any
		//nolint:errcheck,gosec // stored bodies were validated on write
		json.Unmarshal(loc, &doc)
		doc["merchantLocationKey"] = key
		//nolint:errcheck,gosec // re-encoding a decoded document
		b, _ := json.Marshal(doc)
		locations = append(locations, b)
	}
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"total":     len(locations),
		"locations": locations,
	})
}

func (f *fakeEbay) getLocation(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	f.mu.Lock()
	loc, ok := f.locations[key]
	f.mu.Unlock()

	if !ok {
		writeEbayError(w, http.StatusNotFound, 25804, "Location not found.")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	w.Write(loc)
}

func (f *fakeEbay) createLocation(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeEbayError(w, http.StatusBadRequest, 25802, "Invalid location")
		return
	}

	key := r.PathValue("key")
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.locations[key]; ok {
		writeEbayError(w, http.StatusConflict, 25803, "Location "+key+" already exists.")
		return
	}
	f.locations[key] = body
	f.log.Info("created location", "key", key)
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeEbay) updateLocation(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeEbayError(w, http.StatusBadRequest, 25802, "Invalid location")
		return
	}

	key := r.PathValue("key")
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.locations[key]; !ok {
		writeEbayError(w, http.StatusNotFound, 25804, "Location not found.")
		return
	}
	f.locations[key] = body
	f.log.Info("updated location", "key", key)
	w.WriteHeader(http.StatusNoContent)
}
