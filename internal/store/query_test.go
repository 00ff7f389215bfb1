package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestListingQuery_ToSQL(t *testing.T) {
	t.Parallel()

	marketplace := uuid.MustParse("7f1c2d3e-0000-4000-8000-000000000001")
	item := uuid.MustParse("7f1c2d3e-0000-4000-8000-000000000002")

	tests := []struct {
		name          string
		query         ListingQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: ListingQuery{},
			wantDataHas: []string{
				"FROM listing",
				"ORDER BY created DESC, id ASC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantDataNotIn: []string{"WHERE"},
			wantCountSQL:  "SELECT COUNT(*) FROM listing",
		},
		{
			name:         "status filter stores the wire integer",
			query:        ListingQuery{Status: ptr(domain.ListingPublished)},
			wantDataHas:  []string{"WHERE status = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listing WHERE status = $1",
			wantArgs:     []any{int16(1)},
		},
		{
			name:         "marketplace filter",
			query:        ListingQuery{MarketplaceID: &marketplace},
			wantDataHas:  []string{"WHERE marketplace_id = $1"},
			wantCountSQL: "SELECT COUNT(*) FROM listing WHERE marketplace_id = $1",
			wantArgs:     []any{marketplace},
		},
		{
			name: "all filters with correct parameter numbering",
			query: ListingQuery{
				Status:        ptr(domain.ListingDraft),
				MarketplaceID: &marketplace,
				ItemID:        &item,
			},
			wantDataHas: []string{
				"status = $1",
				"marketplace_id = $2",
				"item_id = $3",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM listing WHERE status = $1 AND marketplace_id = $2 AND item_id = $3",
			wantArgs:     []any{int16(0), marketplace, item},
		},
		{
			name:        "order by updated",
			query:       ListingQuery{OrderBy: "updated"},
			wantDataHas: []string{"ORDER BY updated DESC, id ASC"},
		},
		{
			name:          "invalid order by falls back to default",
			query:         ListingQuery{OrderBy: "DROP TABLE listing; --"},
			wantDataHas:   []string{"ORDER BY created DESC, id ASC"},
			wantDataNotIn: []string{"DROP TABLE"},
		},
		{
			name:        "custom limit and offset",
			query:       ListingQuery{Limit: 25, Offset: 100},
			wantDataHas: []string{"LIMIT 25", "OFFSET 100"},
		},
		{
			name:        "negative limit defaults to 50",
			query:       ListingQuery{Limit: -10},
			wantDataHas: []string{"LIMIT 50"},
		},
		{
			name:        "limit exceeding max is capped",
			query:       ListingQuery{Limit: 1000},
			wantDataHas: []string{"LIMIT 500"},
		},
		{
			name:        "negative offset defaults to 0",
			query:       ListingQuery{Offset: -5},
			wantDataHas: []string{"OFFSET 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := tt.query
			dataSQL, countSQL, args := q.ToSQL()

			for _, s := range tt.wantDataHas {
				assert.Contains(t, dataSQL, s, "dataSQL should contain %q", s)
			}

			for _, s := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, s, "dataSQL should not contain %q", s)
			}

			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}

			if tt.wantArgs != nil {
				require.Len(t, args, len(tt.wantArgs))
				assert.Equal(t, tt.wantArgs, args)
			} else {
				assert.Empty(t, args)
			}
		})
	}
}
