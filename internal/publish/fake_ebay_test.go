package publish_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Call keys counted by fakeEbay.
const (
	callPutItem      = "PUT inventory_item"
	callGetOffers    = "GET offer"
	callCreateOffer  = "POST offer"
	callPublish      = "POST publish"
	callWithdraw     = "POST withdraw"
	callGetLocation  = "GET location"
	callPostLocation = "POST location"
)

type fakeOffer struct {
	ID        string
	SKU       string
	Published bool
}

// fakeEbay is an in-memory Sell Inventory API. Responses can be forced per
// call key with fail; each forced status is consumed once.
type fakeEbay struct {
	*httptest.Server

	mu        sync.Mutex
	calls     map[string]int
	bodies    map[string][][]byte
	items     map[string][]byte
	offers    []fakeOffer
	locations map[string][]byte
	fail      map[string][]int
}

func newFakeEbay(t *testing.T) *fakeEbay {
	t.Helper()

	f := &fakeEbay{
		calls:     make(map[string]int),
		bodies:    make(map[string][][]byte),
		items:     make(map[string][]byte),
		locations: make(map[string][]byte),
		fail:      make(map[string][]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /sell/inventory/v1/inventory_item/{sku}", f.handle(callPutItem, f.putItem))
	mux.HandleFunc("GET /sell/inventory/v1/offer", f.handle(callGetOffers, f.getOffers))
	mux.HandleFunc("POST /sell/inventory/v1/offer", f.handle(callCreateOffer, f.createOffer))
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/publish", f.handle(callPublish, f.publishOffer))
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/withdraw", f.handle(callWithdraw, f.withdrawOffer))
	mux.HandleFunc("GET /sell/inventory/v1/location/{key}", f.handle(callGetLocation, f.getLocation))
	mux.HandleFunc("POST /sell/inventory/v1/location/{key}", f.handle(callPostLocation, f.postLocation))

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeEbay) handle(
	key string,
	next func(http.ResponseWriter, *http.Request, []byte),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		defer f.mu.Unlock()

		f.calls[key]++
		f.bodies[key] = append(f.bodies[key], body)
		if q := f.fail[key]; len(q) > 0 {
			f.fail[key] = q[1:]
			w.WriteHeader(q[0])
			_, _ = w.Write([]byte(`{"errors":[{"errorId":25001,"message":"forced"}]}`))
			return
		}
		next(w, r, body)
	}
}

func (f *fakeEbay) failWith(key string, statuses ...int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[key] = append(f.fail[key], statuses...)
}

func (f *fakeEbay) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

func (f *fakeEbay) lastBody(t *testing.T, key string) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	bodies := f.bodies[key]
	if len(bodies) == 0 {
		t.Fatalf("no %s request recorded", key)
	}
	var out map[string]any
	if err := json.Unmarshal(bodies[len(bodies)-1], &out); err != nil {
		t.Fatalf("decoding %s body: %v", key, err)
	}
	return out
}

func (f *fakeEbay) offersFor(sku string) []fakeOffer {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []fakeOffer
	for _, o := range f.offers {
		if o.SKU == sku {
			out = append(out, o)
		}
	}
	return out
}

func (f *fakeEbay) seedOffer(sku string, published bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("%d", 9000+len(f.offers)+1)
	f.offers = append(f.offers, fakeOffer{ID: id, SKU: sku, Published: published})
	return id
}

func (f *fakeEbay) seedLocation(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locations[key] = []byte(`{"merchantLocationKey":"` + key + `"}`)
}

func (f *fakeEbay) putItem(w http.ResponseWriter, r *http.Request, body []byte) {
	f.items[r.PathValue("sku")] = body
	w.WriteHeader(http.StatusNoContent)
}

func (f *fakeEbay) getOffers(w http.ResponseWriter, r *http.Request, _ []byte) {
	sku := r.URL.Query().Get("sku")
	var offers []map[string]any
	for _, o := range f.offers {
		if o.SKU == sku {
			offers = append(offers, map[string]any{"offerId": o.ID, "sku": o.SKU})
		}
	}
	if len(offers) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]any{"total": len(offers), "offers": offers})
}

func (f *fakeEbay) createOffer(w http.ResponseWriter, _ *http.Request, body []byte) {
	var req struct {
		SKU string `json:"sku"`
	}
	_ = json.Unmarshal(body, &req)
	id := fmt.Sprintf("%d", 9000+len(f.offers)+1)
	f.offers = append(f.offers, fakeOffer{ID: id, SKU: req.SKU})
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]any{"offerId": id})
}

func (f *fakeEbay) publishOffer(w http.ResponseWriter, r *http.Request, _ []byte) {
	id := r.PathValue("id")
	for i := range f.offers {
		if f.offers[i].ID == id {
			f.offers[i].Published = true
			writeJSON(w, map[string]any{"listingId": "11" + id})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *fakeEbay) withdrawOffer(w http.ResponseWriter, r *http.Request, _ []byte) {
	id := r.PathValue("id")
	for i := range f.offers {
		if f.offers[i].ID == id {
			f.offers[i].Published = false
			writeJSON(w, map[string]any{"listingId": "11" + id})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (f *fakeEbay) getLocation(w http.ResponseWriter, r *http.Request, _ []byte) {
	loc, ok := f.locations[r.PathValue("key")]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = w.Write(loc)
}

func (f *fakeEbay) postLocation(w http.ResponseWriter, r *http.Request, body []byte) {
	f.locations[r.PathValue("key")] = body
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
