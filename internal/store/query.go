package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created"
	orderByUpdated = "updated"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created DESC, id ASC",
	orderByUpdated: "updated DESC, id ASC",
}

const defaultOrderBy = "created DESC, id ASC"

const baseListingsSelect = "SELECT " + listingColumns + " FROM listing"

const countListingsSelect = "SELECT COUNT(*) FROM listing"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string
	paramIdx := 1

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, int16(*q.Status))
		paramIdx++
	}

	if q.MarketplaceID != nil {
		conditions = append(conditions, fmt.Sprintf("marketplace_id = $%d", paramIdx))
		args = append(args, *q.MarketplaceID)
		paramIdx++
	}

	if q.ItemID != nil {
		conditions = append(conditions, fmt.Sprintf("item_id = $%d", paramIdx))
		args = append(args, *q.ItemID)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}
