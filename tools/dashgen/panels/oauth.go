package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenRequests returns a timeseries panel of OAuth token endpoint calls
// by grant and result.
func TokenRequests() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Requests").
		Description("eBay OAuth token endpoint calls per grant type").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (grant, result) (increase(shop_oauth_token_requests_total`+jobSelector+`[5m]))`,
			"{{grant}} {{result}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// ReauthRequired returns a stat panel counting consent redirects in the
// last 24 hours.
func ReauthRequired() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Reauth Required (24h)").
		Description("Requests answered with a redirect to the eBay consent page").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`increase(shop_oauth_reauth_required_total`+jobSelector+`[24h])`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SchedulerFailures returns a stat panel of failed background jobs in the
// last 24 hours.
func SchedulerFailures() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Job Failures (24h)").
		Description("Token warm and quota refresh runs that failed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (task) (increase(shop_scheduler_job_runs_total{result="error"}[24h]))`,
			"{{task}}", "A",
		)).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone)
}
