package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	apiclient "github.com/donaldgifford/shop-inventory/internal/api/client"
	domain "github.com/donaldgifford/shop-inventory/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tITEM\tSTATUS\tURI\tUPDATED\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.ItemID,
			l.Status,
			listingURI(l),
			formatTime(l.Updated),
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Item:\t%s\n", l.ItemID)
	tw.writef("Marketplace:\t%s\n", l.MarketplaceID)
	tw.writef("Status:\t%s\n", l.Status)
	tw.writef("URI:\t%s\n", listingURI(l))
	tw.writef("Created:\t%s\n", formatTime(l.Created))
	tw.writef("Updated:\t%s\n", formatTime(l.Updated))
	return tw.finish()
}

func printQuota(w io.Writer, q *apiclient.QuotaResponse) error {
	tw := newTabWriter(w)
	tw.writef("RESOURCE\tCOUNT\tLIMIT\tREMAINING\tRESETS\n")
	for i := range q.Inventory {
		s := &q.Inventory[i]
		tw.writef("%s\t%d\t%d\t%d\t%s\n",
			s.Resource, s.Count, s.Limit, s.Remaining, formatTime(s.ResetAt))
	}
	tw.writef("local\t%d\t%d\t%d\t%s\n",
		q.Local.Used, q.Local.Limit, q.Local.Remaining, formatTime(q.Local.ResetAt))
	return tw.finish()
}

func listingURI(l *domain.Listing) string {
	if l.URI == nil {
		return "-"
	}
	return *l.URI
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputRaw pretty-prints a JSON document passed through from eBay.
func outputRaw(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		_, err = os.Stdout.Write(raw)
		return err
	}
	return outputJSON(v)
}
