package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
)

// QuotaSource reports the eBay Inventory API rate limits.
type QuotaSource interface {
	GetInventoryQuota(ctx context.Context) ([]ebay.QuotaState, error)
}

// UsageReporter reports the local daily call budget.
type UsageReporter interface {
	Usage() ebay.Usage
}

// QuotaHandler provides the eBay API quota status endpoint.
type QuotaHandler struct {
	quota QuotaSource
	usage UsageReporter
}

// NewQuotaHandler creates a new QuotaHandler. Either source may be nil.
func NewQuotaHandler(quota QuotaSource, usage UsageReporter) *QuotaHandler {
	return &QuotaHandler{quota: quota, usage: usage}
}

// QuotaOutput is the response body for the quota endpoint.
type QuotaOutput struct {
	Body struct {
		Inventory []ebay.QuotaState `json:"inventory" doc:"Sell Inventory API rate limits reported by eBay"`
		Local     ebay.Usage        `json:"local"     doc:"Daily call budget enforced by this server"`
	}
}

// GetQuota returns the eBay Inventory API quota and the local call budget.
func (h *QuotaHandler) GetQuota(ctx context.Context, _ *struct{}) (*QuotaOutput, error) {
	resp := &QuotaOutput{}
	resp.Body.Inventory = []ebay.QuotaState{}

	if h.usage != nil {
		resp.Body.Local = h.usage.Usage()
	}
	if h.quota == nil {
		return resp, nil
	}

	states, err := h.quota.GetInventoryQuota(ctx)
	if err != nil {
		return nil, huma.Error502BadGateway("querying eBay analytics", err)
	}
	if states != nil {
		resp.Body.Inventory = states
	}
	return resp, nil
}

// RegisterQuotaRoutes registers the quota endpoint with the Huma API.
func RegisterQuotaRoutes(api huma.API, h *QuotaHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-quota",
		Method:      http.MethodGet,
		Path:        "/ebay/quota",
		Summary:     "Get eBay API quota status",
		Description: "Returns the Sell Inventory API rate limits from the eBay Developer Analytics API and the local daily call budget.",
		Tags:        []string{"ebay"},
		Errors:      []int{http.StatusBadGateway},
	}, h.GetQuota)
}
