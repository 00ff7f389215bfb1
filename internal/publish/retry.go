package publish

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/shop-inventory/internal/metrics"
)

// step runs one remote call in its own span, retrying transport failures
// and 5xx responses up to maxAttempts times with linearly growing delay.
func (p *Publisher) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := p.tracer.Start(ctx, "ebay."+name)
	defer span.End()

	var err error
	for attempt := 1; ; attempt++ {
		err = fn(ctx)
		if err == nil || attempt >= p.maxAttempts || !retryable(err) {
			break
		}

		metrics.PublishRetriesTotal.WithLabelValues(name).Inc()
		wait := p.retryDelay * time.Duration(attempt)
		p.log.WarnContext(ctx, "remote step failed, retrying",
			"step", name,
			"attempt", attempt,
			"wait", wait,
			"error_kind", string(Kind(err)),
			"err", err,
		)

		if !sleep(ctx, wait) {
			break
		}
	}

	span.SetAttributes(attribute.String("step", name))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// sleep waits for d or until ctx ends, reporting whether it waited fully.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
