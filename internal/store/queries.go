package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Product and category queries.
const (
	queryGetProduct = `
		SELECT id, display_name, internal_name, upc, release_date, created, updated
		FROM product
		WHERE id = $1`

	queryGetProductCategories = `
		SELECT c.id, c.display_name, c.internal_name, c.parent_id, c.ebay_category_id,
			c.created, c.updated
		FROM category c
		JOIN product_category_association pca ON pca.category_id = c.id
		WHERE pca.product_id = $1
		ORDER BY c.internal_name, c.id`

	queryGetRemoteCategory = `
		SELECT id, ebay_category_id, ebay_category_tree_id, ebay_category_tree_version,
			ebay_category_name, created, updated
		FROM ebay.category
		WHERE id = $1`
)

// Item queries.
const (
	itemColumns = `i.id, i.product_id, i.inventory_location_id, i.condition, i.status,
		i.price_cents, i.priority, i.note, i.acquisition_datetime,
		i.acquisition_price_cents, i.acquisition_location, i.created, i.updated`

	queryGetItem = `
		SELECT ` + itemColumns + `
		FROM item i
		WHERE i.id = $1`

	queryGetItemImages = `
		SELECT id, item_id, alt_text, priority, original_file_name, created, updated
		FROM item_image
		WHERE item_id = $1
		ORDER BY priority ASC, id ASC`

	queryGetItemAndProduct = `
		SELECT ` + itemColumns + `,
			p.id, p.display_name, p.internal_name, p.upc, p.release_date, p.created, p.updated
		FROM item i
		JOIN product p ON p.id = i.product_id
		WHERE i.id = $1`
)

// Inventory location queries.
const (
	locationColumns = `id, display_name, internal_name, street_address, municipality,
		district, postal_area, time_zone_id, created, updated`

	queryGetInventoryLocation = `
		SELECT ` + locationColumns + `
		FROM inventory_location
		WHERE id = $1`

	queryListInventoryLocations = `
		SELECT ` + locationColumns + `
		FROM inventory_location
		ORDER BY internal_name, id`
)

// Marketplace queries.
const (
	queryGetMarketplaceByInternalName = `
		SELECT id, display_name, internal_name, uri, created, updated
		FROM marketplace
		WHERE internal_name = $1`
)

// Listing queries.
const (
	listingColumns = `id, item_id, marketplace_id, uri, status, created, updated`

	queryInsertListing = `
		INSERT INTO listing (item_id, marketplace_id, uri, status, created, updated)
		VALUES (@item_id, @marketplace_id, @uri, @status, now(), now())
		RETURNING id, created, updated`

	queryGetListing = `
		SELECT ` + listingColumns + `
		FROM listing
		WHERE id = $1`

	queryGetListingsByStatusAndMarketplace = `
		SELECT ` + listingColumns + `
		FROM listing
		WHERE status = $1 AND marketplace_id = $2
		ORDER BY created ASC, id ASC`

	queryUpdateListing = `
		UPDATE listing SET
			item_id = @item_id,
			marketplace_id = @marketplace_id,
			uri = @uri,
			status = @status,
			updated = @updated
		WHERE id = @id`
)
