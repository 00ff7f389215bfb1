package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// PublishOutcomes returns a timeseries panel of listing publications per
// minute, split by outcome.
func PublishOutcomes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Publications / min").
		Description("Listing publications by outcome (published or error kind)").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum by (outcome) (rate(shop_publish_total`+jobSelector+`[5m])) * 60`,
			"{{outcome}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("sum")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// PublishErrorRatio returns a stat panel with the share of failed
// publications over the last five minutes.
func PublishErrorRatio() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Publish Errors %").
		Description("Failed publications as a percentage of attempts").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`shop:publish_errors:rate5m / shop:publish:rate5m * 100`,
			"", "A",
		)).
		Unit("percent").
		Thresholds(ThresholdsGreenYellowRed(5, 25)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// RetriesByStep returns a timeseries panel of retried publication steps.
func RetriesByStep() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Retried Steps").
		Description("Publication steps retried after a transient eBay failure").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum by (step) (increase(shop_publish_retries_total`+jobSelector+`[5m]))`,
			"{{step}}", "A",
		)).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleBars)
}

// Withdrawals returns a stat panel of listings withdrawn and locations
// created in the last 24 hours.
func Withdrawals() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Withdrawals / Locations (24h)").
		Description("Listings withdrawn from eBay and inventory locations created").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(StatWidth).
		WithTarget(PromQuery(
			`sum(increase(shop_withdraw_total{outcome="withdrawn"}[24h]))`,
			"withdrawn", "A",
		)).
		WithTarget(PromQuery(
			`sum(increase(shop_locations_created_total[24h]))`,
			"locations", "B",
		)).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
