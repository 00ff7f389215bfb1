// Package publish drives listings from the local store onto the eBay
// marketplace: inventory item, offer, publication and local status, plus
// location sync and offer withdrawal.
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/shop-inventory/internal/ebay"
	"github.com/donaldgifford/shop-inventory/internal/metrics"
	"github.com/donaldgifford/shop-inventory/internal/store"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const (
	instrumentationName = "github.com/donaldgifford/shop-inventory/internal/publish"

	defaultMaxAttempts = 3
	defaultRetryDelay  = 500 * time.Millisecond
)

// Publisher is the publication orchestrator. The marketplace id and the
// policy ids are bound once in NewPublisher and never change.
type Publisher struct {
	store       store.Store
	inventory   ebay.InventoryAPI
	policies    ebay.Policies
	marketplace uuid.UUID
	itemURLBase string

	maxAttempts int
	retryDelay  time.Duration

	log      *slog.Logger
	now      func() time.Time
	tracer   trace.Tracer
	duration metric.Float64Histogram
}

// Option configures the Publisher.
type Option func(*Publisher)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		p.log = l
	}
}

// WithRetry bounds the linear retry of each remote step. The n-th retry
// waits n times delay.
func WithRetry(maxAttempts int, delay time.Duration) Option {
	return func(p *Publisher) {
		p.maxAttempts = max(maxAttempts, 1)
		p.retryDelay = delay
	}
}

// WithItemURLBase sets the prefix of the public listing URI stored on
// publication.
func WithItemURLBase(u string) Option {
	return func(p *Publisher) {
		p.itemURLBase = strings.TrimRight(u, "/")
	}
}

// WithNowFunc overrides the clock used to stamp listing updates.
func WithNowFunc(f func() time.Time) Option {
	return func(p *Publisher) {
		p.now = f
	}
}

// NewPublisher binds the eBay marketplace row and returns a Publisher.
// It fails when the marketplace row is absent.
func NewPublisher(
	ctx context.Context,
	s store.Store,
	inventory ebay.InventoryAPI,
	policies ebay.Policies,
	opts ...Option,
) (*Publisher, error) {
	mp, err := s.GetMarketplaceByInternalName(ctx, domain.MarketplaceEbay)
	if err != nil {
		return nil, fmt.Errorf("binding marketplace %q: %w", domain.MarketplaceEbay, err)
	}

	p := &Publisher{
		store:       s,
		inventory:   inventory,
		policies:    policies,
		marketplace: mp.ID,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
		log:         slog.Default(),
		now:         time.Now,
		tracer:      otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.duration, err = otel.Meter(instrumentationName).Float64Histogram(
		"shop.publish.duration",
		metric.WithDescription("Duration of a single listing publication."),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating publish duration histogram: %w", err)
	}
	return p, nil
}

// MarketplaceID returns the bound marketplace id.
func (p *Publisher) MarketplaceID() uuid.UUID {
	return p.marketplace
}

// Publish puts one draft listing on eBay and marks it Published.
//
// When eBay already holds an offer for the item's SKU the call succeeds
// without creating one and the listing keeps its status. Remote writes are
// not transactional; a failure after the inventory item PUT leaves the
// remote ahead of the local status, which the next call tolerates.
func (p *Publisher) Publish(ctx context.Context, token string, listing *domain.Listing) (err error) {
	ctx, span := p.tracer.Start(ctx, "publish.Publish", trace.WithAttributes(
		attribute.String("listing.id", listing.ID.String()),
		attribute.String("item.id", listing.ItemID.String()),
	))
	start := time.Now()
	outcome := "published"
	defer func() {
		if err != nil {
			outcome = string(Kind(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			p.log.ErrorContext(ctx, "publishing listing failed",
				"listing_id", listing.ID,
				"item_id", listing.ItemID,
				"error_kind", outcome,
				"err", err,
			)
		}
		metrics.PublishTotal.WithLabelValues(outcome).Inc()
		p.duration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.String("outcome", outcome)))
		span.End()
	}()

	if err := p.validate(listing, domain.ListingDraft); err != nil {
		return err
	}

	item, product, err := p.store.GetItemAndProductForListing(ctx, listing)
	if err != nil {
		return fmt.Errorf("loading item for listing %s: %w", listing.ID, err)
	}
	images, err := p.store.GetAllItemImages(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("loading images for item %s: %w", item.ID, err)
	}
	categories, err := p.remoteCategories(ctx, product)
	if err != nil {
		return err
	}

	err = p.step(ctx, "create_or_replace_inventory_item", func(ctx context.Context) error {
		return p.inventory.CreateOrReplaceInventoryItem(ctx, token, item, product, images)
	})
	if err != nil {
		return err
	}

	sku := item.ID.String()
	var page *ebay.OfferPage
	err = p.step(ctx, "get_offers", func(ctx context.Context) error {
		var err error
		page, err = p.inventory.GetOffers(ctx, token, sku)
		return err
	})
	if err != nil {
		return err
	}
	if page != nil && page.Total > 0 {
		outcome = "already_published"
		p.log.InfoContext(ctx, "offer already exists, skipping publication",
			"listing_id", listing.ID,
			"item_id", item.ID,
			"offers", page.Total,
		)
		return nil
	}

	var offerID string
	err = p.step(ctx, "create_offer", func(ctx context.Context) error {
		var err error
		offerID, err = p.inventory.CreateOffer(ctx, token, item, categories, p.policies)
		return err
	})
	if err != nil {
		return err
	}

	var remoteListingID string
	err = p.step(ctx, "publish_offer", func(ctx context.Context) error {
		var err error
		remoteListingID, err = p.inventory.PublishOffer(ctx, token, offerID)
		return err
	})
	if err != nil {
		return err
	}

	if err := listing.Transition(domain.ListingPublished, p.now()); err != nil {
		return err
	}
	if remoteListingID != "" && p.itemURLBase != "" {
		uri := p.itemURLBase + "/" + remoteListingID
		listing.URI = &uri
	}
	if err := p.store.UpdateListing(ctx, listing); err != nil {
		return fmt.Errorf("updating listing %s: %w", listing.ID, err)
	}

	p.log.InfoContext(ctx, "listing published",
		"listing_id", listing.ID,
		"item_id", item.ID,
		"offer_id", offerID,
		"remote_listing_id", remoteListingID,
	)
	return nil
}

// PublishAllWithStatus publishes every listing with status on the bound
// marketplace, one at a time. Only Draft is accepted. The first failure
// stops the run.
func (p *Publisher) PublishAllWithStatus(ctx context.Context, token string, status domain.ListingStatus) error {
	if status != domain.ListingDraft {
		return fmt.Errorf("%w: can only publish %s listings, got %s",
			ErrInvalidListing, domain.ListingDraft, status)
	}

	listings, err := p.store.GetAllListingsByStatusAndMarketplace(ctx, status, p.marketplace)
	if err != nil {
		return fmt.Errorf("listing %s listings: %w", status, err)
	}

	p.log.InfoContext(ctx, "publishing listings", "status", status.String(), "count", len(listings))
	for i := range listings {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Publish(ctx, token, &listings[i]); err != nil {
			return fmt.Errorf("publishing listing %s: %w", listings[i].ID, err)
		}
	}
	return nil
}

// SyncAllLocations creates on eBay every inventory location it does not
// know yet. Existing locations are left untouched.
func (p *Publisher) SyncAllLocations(ctx context.Context, token string) error {
	ctx, span := p.tracer.Start(ctx, "publish.SyncAllLocations")
	defer span.End()

	locations, err := p.store.ListInventoryLocations(ctx)
	if err != nil {
		return fmt.Errorf("listing inventory locations: %w", err)
	}

	var created int
	for i := range locations {
		loc := &locations[i]

		var remote []byte
		err := p.step(ctx, "get_location", func(ctx context.Context) error {
			var err error
			remote, err = p.inventory.GetLocation(ctx, token, loc.ID.String())
			return err
		})
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("probing location %s: %w", loc.ID, err)
		}
		if remote != nil {
			continue
		}

		err = p.step(ctx, "create_location", func(ctx context.Context) error {
			return p.inventory.CreateLocation(ctx, token, loc)
		})
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("creating location %s: %w", loc.ID, err)
		}
		created++
		metrics.LocationsCreatedTotal.Inc()
		p.log.InfoContext(ctx, "inventory location created", "location_id", loc.ID, "name", loc.DisplayName)
	}

	span.SetAttributes(attribute.Int("locations.total", len(locations)), attribute.Int("locations.created", created))
	p.log.InfoContext(ctx, "inventory locations synced", "total", len(locations), "created", created)
	return nil
}

// Withdraw ends the eBay listing of a Published or Held listing and marks
// it Cancelled. It fails with store.ErrNotFound when eBay has no offer for
// the item.
func (p *Publisher) Withdraw(ctx context.Context, token string, listing *domain.Listing) (err error) {
	ctx, span := p.tracer.Start(ctx, "publish.Withdraw", trace.WithAttributes(
		attribute.String("listing.id", listing.ID.String()),
	))
	defer func() {
		outcome := "withdrawn"
		if err != nil {
			outcome = string(Kind(err))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.WithdrawTotal.WithLabelValues(outcome).Inc()
		span.End()
	}()

	if err := p.validate(listing, domain.ListingPublished, domain.ListingHold); err != nil {
		return err
	}

	sku := listing.ItemID.String()
	var page *ebay.OfferPage
	err = p.step(ctx, "get_offers", func(ctx context.Context) error {
		var err error
		page, err = p.inventory.GetOffers(ctx, token, sku)
		return err
	})
	if err != nil {
		return err
	}
	if page == nil || len(page.Offers) == 0 {
		return fmt.Errorf("offer for item %s: %w", sku, store.ErrNotFound)
	}

	offerID := page.Offers[0].OfferID
	err = p.step(ctx, "withdraw_offer", func(ctx context.Context) error {
		return p.inventory.WithdrawOffer(ctx, token, offerID)
	})
	if err != nil {
		return err
	}

	if err := listing.Transition(domain.ListingCancelled, p.now()); err != nil {
		return err
	}
	if err := p.store.UpdateListing(ctx, listing); err != nil {
		return fmt.Errorf("updating listing %s: %w", listing.ID, err)
	}

	p.log.InfoContext(ctx, "listing withdrawn", "listing_id", listing.ID, "offer_id", offerID)
	return nil
}

// validate checks the listing belongs to the bound marketplace and has one
// of the allowed statuses. It makes no calls.
func (p *Publisher) validate(listing *domain.Listing, allowed ...domain.ListingStatus) error {
	if listing.MarketplaceID != p.marketplace {
		return fmt.Errorf("%w: listing %s is on marketplace %s, not eBay",
			ErrInvalidListing, listing.ID, listing.MarketplaceID)
	}
	for _, s := range allowed {
		if listing.Status == s {
			return nil
		}
	}
	return fmt.Errorf("%w: listing %s has status %s", ErrInvalidListing, listing.ID, listing.Status)
}

// remoteCategories resolves the eBay category of every category of the
// product. An unbound category fails with ebay.ErrNoCategory.
func (p *Publisher) remoteCategories(ctx context.Context, product *domain.Product) ([]domain.RemoteCategory, error) {
	categories, err := p.store.GetProductCategories(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("loading categories of product %s: %w", product.ID, err)
	}

	remote := make([]domain.RemoteCategory, 0, len(categories))
	for i := range categories {
		c := &categories[i]
		if c.RemoteCategoryID == nil {
			return nil, fmt.Errorf("category %s of product %s: %w", c.ID, product.ID, ebay.ErrNoCategory)
		}
		rc, err := p.store.GetRemoteCategory(ctx, *c.RemoteCategoryID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("category %s of product %s: %w", c.ID, product.ID, ebay.ErrNoCategory)
		}
		if err != nil {
			return nil, fmt.Errorf("loading remote category %s: %w", *c.RemoteCategoryID, err)
		}
		remote = append(remote, *rc)
	}
	return remote, nil
}
