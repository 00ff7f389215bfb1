package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const (
	defaultPoolSize = 16

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PoolOption configures the pgxpool before it is opened.
type PoolOption func(*pgxpool.Config)

// WithMaxConns bounds the number of pooled connections.
func WithMaxConns(n int32) PoolOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = n
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PoolOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// GetProduct retrieves a product by ID.
func (s *PostgresStore) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var p domain.Product
	if err := s.pool.QueryRow(ctx, queryGetProduct, id).Scan(productTargets(&p)...); err != nil {
		return nil, notFound(err, "getting product %s", id)
	}
	return &p, nil
}

// GetProductCategories returns the categories associated with a product.
func (s *PostgresStore) GetProductCategories(ctx context.Context, productID uuid.UUID) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, queryGetProductCategories, productID)
	if err != nil {
		return nil, fmt.Errorf("querying product categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(
			&c.ID, &c.DisplayName, &c.InternalName, &c.ParentID, &c.RemoteCategoryID,
			&c.Created, &c.Updated,
		); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

// GetRemoteCategory retrieves a cached eBay category by its row ID.
func (s *PostgresStore) GetRemoteCategory(ctx context.Context, id uuid.UUID) (*domain.RemoteCategory, error) {
	var rc domain.RemoteCategory
	err := s.pool.QueryRow(ctx, queryGetRemoteCategory, id).Scan(
		&rc.ID, &rc.CategoryID, &rc.TreeID, &rc.TreeVersion, &rc.Name, &rc.Created, &rc.Updated,
	)
	if err != nil {
		return nil, notFound(err, "getting remote category %s", id)
	}
	return &rc, nil
}

// GetItem retrieves an item by ID.
func (s *PostgresStore) GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var r itemRow
	if err := s.pool.QueryRow(ctx, queryGetItem, id).Scan(r.targets()...); err != nil {
		return nil, notFound(err, "getting item %s", id)
	}
	return r.toDomain()
}

// GetAllItemImages returns an item's images in priority order.
func (s *PostgresStore) GetAllItemImages(ctx context.Context, itemID uuid.UUID) ([]domain.ItemImage, error) {
	rows, err := s.pool.Query(ctx, queryGetItemImages, itemID)
	if err != nil {
		return nil, fmt.Errorf("querying item images: %w", err)
	}
	defer rows.Close()

	var images []domain.ItemImage
	for rows.Next() {
		var img domain.ItemImage
		if err := rows.Scan(
			&img.ID, &img.ItemID, &img.AltText, &img.Priority, &img.OriginalFileName,
			&img.Created, &img.Updated,
		); err != nil {
			return nil, fmt.Errorf("scanning item image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating item images: %w", err)
	}

	return images, nil
}

// GetInventoryLocation retrieves an inventory location by ID.
func (s *PostgresStore) GetInventoryLocation(ctx context.Context, id uuid.UUID) (*domain.InventoryLocation, error) {
	var loc domain.InventoryLocation
	if err := s.pool.QueryRow(ctx, queryGetInventoryLocation, id).Scan(locationTargets(&loc)...); err != nil {
		return nil, notFound(err, "getting inventory location %s", id)
	}
	return &loc, nil
}

// ListInventoryLocations returns all inventory locations.
func (s *PostgresStore) ListInventoryLocations(ctx context.Context) ([]domain.InventoryLocation, error) {
	rows, err := s.pool.Query(ctx, queryListInventoryLocations)
	if err != nil {
		return nil, fmt.Errorf("querying inventory locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.InventoryLocation
	for rows.Next() {
		var loc domain.InventoryLocation
		if err := rows.Scan(locationTargets(&loc)...); err != nil {
			return nil, fmt.Errorf("scanning inventory location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventory locations: %w", err)
	}

	return locations, nil
}

// GetMarketplaceByInternalName retrieves a seeded marketplace by slug.
func (s *PostgresStore) GetMarketplaceByInternalName(ctx context.Context, name string) (*domain.Marketplace, error) {
	var m domain.Marketplace
	err := s.pool.QueryRow(ctx, queryGetMarketplaceByInternalName, name).Scan(
		&m.ID, &m.DisplayName, &m.InternalName, &m.URI, &m.Created, &m.Updated,
	)
	if err != nil {
		return nil, notFound(err, "getting marketplace %q", name)
	}
	return &m, nil
}

// CreateListing inserts a listing and fills in its ID and timestamps.
// A second active listing for the same (item, marketplace) is ErrConflict.
func (s *PostgresStore) CreateListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"item_id":        l.ItemID,
		"marketplace_id": l.MarketplaceID,
		"uri":            l.URI,
		"status":         int16(l.Status),
	}

	err := s.pool.QueryRow(ctx, queryInsertListing, args).Scan(&l.ID, &l.Created, &l.Updated)
	if err != nil {
		return writeErr(err, "creating listing for item %s", l.ItemID)
	}
	return nil
}

// GetListing retrieves a listing by ID.
func (s *PostgresStore) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	var r listingRow
	if err := s.pool.QueryRow(ctx, queryGetListing, id).Scan(r.targets()...); err != nil {
		return nil, notFound(err, "getting listing %s", id)
	}
	return r.toDomain()
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	listings, err := s.queryListings(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// GetAllListingsByStatusAndMarketplace returns every listing in status on
// the given marketplace, oldest first.
func (s *PostgresStore) GetAllListingsByStatusAndMarketplace(
	ctx context.Context,
	status domain.ListingStatus,
	marketplaceID uuid.UUID,
) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryGetListingsByStatusAndMarketplace, int16(status), marketplaceID)
}

// UpdateListing writes every mutable listing column in a single-row
// transaction. A missing row is ErrNotFound.
func (s *PostgresStore) UpdateListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"id":             l.ID,
		"item_id":        l.ItemID,
		"marketplace_id": l.MarketplaceID,
		"uri":            l.URI,
		"status":         int16(l.Status),
		"updated":        l.Updated,
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, queryUpdateListing, args)
		if err != nil {
			return writeErr(err, "updating listing %s", l.ID)
		}
		if tag.RowsAffected() != 1 {
			return fmt.Errorf("updating listing %s: %w", l.ID, ErrNotFound)
		}
		return nil
	})
}

// GetItemAndProductForListing loads the listing's item and its owning
// product in one round trip.
func (s *PostgresStore) GetItemAndProductForListing(
	ctx context.Context,
	l *domain.Listing,
) (*domain.Item, *domain.Product, error) {
	var (
		r itemRow
		p domain.Product
	)
	targets := append(r.targets(), productTargets(&p)...)
	if err := s.pool.QueryRow(ctx, queryGetItemAndProduct, l.ItemID).Scan(targets...); err != nil {
		return nil, nil, notFound(err, "getting item %s for listing %s", l.ItemID, l.ID)
	}

	item, err := r.toDomain()
	if err != nil {
		return nil, nil, err
	}
	return item, &p, nil
}

func (s *PostgresStore) queryListings(ctx context.Context, sql string, args ...any) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var r listingRow
		if err := rows.Scan(r.targets()...); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		l, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// itemRow holds the wire form of an item row before enum coercion.
type itemRow struct {
	item      domain.Item
	condition int16
	status    int16
}

func (r *itemRow) targets() []any {
	return []any{
		&r.item.ID, &r.item.ProductID, &r.item.InventoryLocationID, &r.condition, &r.status,
		&r.item.PriceCents, &r.item.Priority, &r.item.Note, &r.item.AcquisitionDatetime,
		&r.item.AcquisitionPriceCents, &r.item.AcquisitionLocation, &r.item.Created, &r.item.Updated,
	}
}

func (r *itemRow) toDomain() (*domain.Item, error) {
	condition, err := domain.ParseItemCondition(int(r.condition))
	if err != nil {
		return nil, fmt.Errorf("reading item %s: %w", r.item.ID, err)
	}
	status, err := domain.ParseItemStatus(int(r.status))
	if err != nil {
		return nil, fmt.Errorf("reading item %s: %w", r.item.ID, err)
	}

	item := r.item
	item.Condition = condition
	item.Status = status
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return &item, nil
}

// listingRow holds the wire form of a listing row before enum coercion.
type listingRow struct {
	listing domain.Listing
	status  int16
}

func (r *listingRow) targets() []any {
	return []any{
		&r.listing.ID, &r.listing.ItemID, &r.listing.MarketplaceID, &r.listing.URI,
		&r.status, &r.listing.Created, &r.listing.Updated,
	}
}

func (r *listingRow) toDomain() (*domain.Listing, error) {
	status, err := domain.ParseListingStatus(int(r.status))
	if err != nil {
		return nil, fmt.Errorf("reading listing %s: %w", r.listing.ID, err)
	}
	l := r.listing
	l.Status = status
	return &l, nil
}

func productTargets(p *domain.Product) []any {
	return []any{&p.ID, &p.DisplayName, &p.InternalName, &p.UPC, &p.ReleaseDate, &p.Created, &p.Updated}
}

func locationTargets(loc *domain.InventoryLocation) []any {
	return []any{
		&loc.ID, &loc.DisplayName, &loc.InternalName, &loc.StreetAddress, &loc.Municipality,
		&loc.District, &loc.PostalArea, &loc.TimeZoneID, &loc.Created, &loc.Updated,
	}
}

// notFound wraps err with context, translating pgx.ErrNoRows to ErrNotFound.
func notFound(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// writeErr wraps err with context, translating constraint violations.
func writeErr(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w: %s", msg, ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %s", msg, ErrNotFound, pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
