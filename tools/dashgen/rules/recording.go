package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "shop-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "shop-recording",
					Rules: []Rule{
						{
							Record: "shop:http_requests:rate5m",
							Expr:   `sum(rate(shop_http_requests_total[5m]))`,
						},
						{
							Record: "shop:http_errors:rate5m",
							Expr:   `sum(rate(shop_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "shop:publish:rate5m",
							Expr:   `sum(rate(shop_publish_total[5m]))`,
						},
						{
							Record: "shop:publish_errors:rate5m",
							Expr:   `sum(rate(shop_publish_total{outcome!="published"}[5m]))`,
						},
						{
							Record: "shop:ebay_api_calls:rate5m",
							Expr:   `sum(rate(shop_ebay_api_calls_total[5m]))`,
						},
						{
							Record: "shop:ebay_api_errors:rate5m",
							Expr:   `sum(rate(shop_ebay_api_calls_total{status=~"5..|transport_error"}[5m]))`,
						},
					},
				},
			},
		},
	}
}
