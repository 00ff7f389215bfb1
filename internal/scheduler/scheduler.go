// Package scheduler runs the periodic background jobs of the server:
// keeping the eBay application token warm and refreshing quota gauges.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/metrics"
)

const jobTimeout = 30 * time.Second

// TokenWarmer fetches the application token, populating its cache.
type TokenWarmer interface {
	ApplicationToken(ctx context.Context) (ebay.AppToken, error)
}

// QuotaSource reports the eBay Sell Inventory API quota.
type QuotaSource interface {
	GetInventoryQuota(ctx context.Context) ([]ebay.QuotaState, error)
}

// Scheduler manages the periodic jobs. Job failures are logged and
// counted, never fatal.
type Scheduler struct {
	cron   *cron.Cron
	tokens TokenWarmer
	quota  QuotaSource
	log    *slog.Logger
}

// New creates a Scheduler. A nil dependency or a non-positive interval
// leaves the corresponding job unregistered.
func New(
	tokens TokenWarmer,
	quota QuotaSource,
	tokenInterval time.Duration,
	quotaInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{
		cron:   cron.New(),
		tokens: tokens,
		quota:  quota,
		log:    log,
	}

	if tokens != nil && tokenInterval > 0 {
		if _, err := s.cron.AddFunc("@every "+tokenInterval.String(), s.runTokenWarm); err != nil {
			return nil, err
		}
	}
	if quota != nil && quotaInterval > 0 {
		if _, err := s.cron.AddFunc("@every "+quotaInterval.String(), s.runQuotaRefresh); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once running
// jobs finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runTokenWarm() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.warmToken(ctx)
}

func (s *Scheduler) runQuotaRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	s.refreshQuota(ctx)
}

func (s *Scheduler) warmToken(ctx context.Context) {
	tok, err := s.tokens.ApplicationToken(ctx)
	if err != nil {
		metrics.SchedulerJobRunsTotal.WithLabelValues("token_warm", "error").Inc()
		s.log.ErrorContext(ctx, "warming application token failed", "err", err)
		return
	}
	metrics.SchedulerJobRunsTotal.WithLabelValues("token_warm", "success").Inc()
	s.log.DebugContext(ctx, "application token warm", "expires_at", tok.ExpiresAt)
}

func (s *Scheduler) refreshQuota(ctx context.Context) {
	quotas, err := s.quota.GetInventoryQuota(ctx)
	if err != nil {
		metrics.SchedulerJobRunsTotal.WithLabelValues("quota_refresh", "error").Inc()
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		s.log.Log(ctx, level, "refreshing eBay quota failed", "err", err)
		return
	}

	for _, q := range quotas {
		metrics.EbayQuotaRemaining.WithLabelValues(q.Resource).Set(float64(q.Remaining))
		metrics.EbayQuotaLimit.WithLabelValues(q.Resource).Set(float64(q.Limit))
	}
	metrics.SchedulerJobRunsTotal.WithLabelValues("quota_refresh", "success").Inc()
	s.log.DebugContext(ctx, "eBay quota refreshed", "resources", len(quotas))
}
