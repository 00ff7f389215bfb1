package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, PublishTotal)
	assert.NotNil(t, WithdrawTotal)
	assert.NotNil(t, PublishRetriesTotal)
	assert.NotNil(t, LocationsCreatedTotal)
	assert.NotNil(t, EbayAPICallsTotal)
	assert.NotNil(t, EbayAPIDuration)
	assert.NotNil(t, EbayDailyUsage)
	assert.NotNil(t, EbayDailyLimitHits)
	assert.NotNil(t, EbayQuotaRemaining)
	assert.NotNil(t, EbayQuotaLimit)
	assert.NotNil(t, TokenRequestsTotal)
	assert.NotNil(t, ReauthRequiredTotal)
	assert.NotNil(t, SchedulerJobRunsTotal)
}

func TestQuotaGauges(t *testing.T) {
	t.Parallel()

	EbayQuotaRemaining.WithLabelValues("sell.inventory.test").Set(1234)
	EbayQuotaLimit.WithLabelValues("sell.inventory.test").Set(2000)

	assert.InDelta(t, 1234, testutil.ToFloat64(EbayQuotaRemaining.WithLabelValues("sell.inventory.test")), 0)
	assert.InDelta(t, 2000, testutil.ToFloat64(EbayQuotaLimit.WithLabelValues("sell.inventory.test")), 0)
}
