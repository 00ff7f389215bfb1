package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/donaldgifford/shop-inventory/internal/api/middleware"
	"github.com/donaldgifford/shop-inventory/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records 404 response",
			method: http.MethodGet,
			route:  "/api/v1/listings/:id",
			target: "/api/v1/listings/7a1d3f5e-2b4c-4d6e-8f90-a1b2c3d4e5f6",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "records PUT by route template",
			method: http.MethodPut,
			route:  "/ebay/listing/:id",
			target: "/ebay/listing/0b8f7c6e-5d4c-4b3a-9f8e-7d6c5b4a3f2e",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/listings",
			target: "/api/v1/listings",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	ready := true

	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/readyz", func(c echo.Context) error {
		if ready {
			return c.NoContent(http.StatusOK)
		}
		return c.NoContent(http.StatusServiceUnavailable)
	})

	serve := func(path string) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	serve("/healthz")
	serve("/readyz")
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.HealthzUp), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReadyzUp), 0)

	ready = false
	serve("/readyz")
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.ReadyzUp), 0)
}

func TestMetricsMiddleware_ReauthRedirects(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.PUT("/ebay/location", func(c echo.Context) error {
		if c.Request().Header.Get("Cookie") == "" {
			c.Response().Header().Set(echo.HeaderLocation, "https://auth.example.test/consent")
		}
		return c.NoContent(http.StatusUnauthorized)
	})

	before := testutil.ToFloat64(metrics.ReauthRequiredTotal)

	req := httptest.NewRequest(http.MethodPut, "/ebay/location", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.ReauthRequiredTotal), 0)

	// A 401 without a consent location is not a redirect.
	req = httptest.NewRequest(http.MethodPut, "/ebay/location", http.NoBody)
	req.Header.Set("Cookie", "ebay_user_access_token=x")
	e.ServeHTTP(httptest.NewRecorder(), req)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.ReauthRequiredTotal), 0)
}
