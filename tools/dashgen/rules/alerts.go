package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// shop-inventory operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "shop-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "shop-alerts",
					Rules: []Rule{
						{
							Alert: "ShopDown",
							Expr:  `absent(up{job="shop-inventory"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Shop Inventory is down",
								"description": "The shop-inventory job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "ShopReadinessDown",
							Expr:  `shop_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Shop Inventory cannot reach its database",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert: "ShopHighErrorRate",
							Expr:  `shop:http_errors:rate5m / shop:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on Shop Inventory",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "ShopPublishFailures",
							Expr:  `shop:publish_errors:rate5m / shop:publish:rate5m > 0.25`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Listing publications are failing",
								"description": "More than a quarter of publication attempts failed over the last 10 minutes.",
							},
						},
						{
							Alert: "ShopEbayErrors",
							Expr:  `shop:ebay_api_errors:rate5m > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay API calls are failing",
								"description": "eBay answered with 5xx or could not be reached at more than 0.1/s for 5 minutes.",
							},
						},
						{
							Alert: "ShopEbayQuotaLow",
							Expr:  `min(shop_ebay_quota_remaining / shop_ebay_quota_limit) < 0.1`,
							For:   "15m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay Inventory API quota is nearly exhausted",
								"description": "Less than 10% of the Sell Inventory API quota remains according to the Analytics API.",
							},
						},
						{
							Alert: "ShopEbayLimitReached",
							Expr:  `increase(shop_ebay_daily_limit_hits_total[5m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Local eBay daily call budget has been reached",
								"description": "Publication calls are refused until the rolling 24-hour window resets.",
							},
						},
						{
							Alert: "ShopTokenWarmFailing",
							Expr:  `increase(shop_scheduler_job_runs_total{task="token_warm",result="error"}[1h]) > 2`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "eBay application token refresh is failing",
								"description": "The token warm job failed more than twice in the last hour; check the client credentials.",
							},
						},
					},
				},
			},
		},
	}
}
