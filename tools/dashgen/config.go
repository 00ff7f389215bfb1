package main

import "errors"

// KnownMetrics is the set of metric names exported by shop-inventory plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"shop_http_request_duration_seconds": true,
	"shop_http_requests_total":           true,

	// Health metrics.
	"shop_healthz_up": true,
	"shop_readyz_up":  true,

	// Publication metrics.
	"shop_publish_total":           true,
	"shop_withdraw_total":          true,
	"shop_publish_retries_total":   true,
	"shop_locations_created_total": true,

	// eBay API metrics.
	"shop_ebay_api_calls_total":        true,
	"shop_ebay_api_duration_seconds":   true,
	"shop_ebay_daily_usage":            true,
	"shop_ebay_daily_limit_hits_total": true,

	// eBay quota metrics (from Analytics API).
	"shop_ebay_quota_remaining": true,
	"shop_ebay_quota_limit":     true,

	// OAuth and scheduler metrics.
	"shop_oauth_token_requests_total":  true,
	"shop_oauth_reauth_required_total": true,
	"shop_scheduler_job_runs_total":    true,

	// Recording rules.
	"shop:http_requests:rate5m":   true,
	"shop:http_errors:rate5m":     true,
	"shop:publish:rate5m":         true,
	"shop:publish_errors:rate5m":  true,
	"shop:ebay_api_calls:rate5m":  true,
	"shop:ebay_api_errors:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
