package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/domain"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMigrations(w io.Writer, statuses []postgres.MigrationStatus) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(tw, "%05d\t%s\t%s\n", s.Version, state, s.Path)
	}
	tw.Flush() //nolint:errcheck
}

// printReport summarizes a validation run and lists rejected rows.
func printReport(w io.Writer, imp *domain.Import) {
	fmt.Fprintf(w, "import %d: %s\n", imp.ID, imp.Status)
	r := imp.ValidationReport
	if r == nil {
		return
	}
	fmt.Fprintf(w, "rows: %d total, %d accepted, %d rejected\n", r.Total, r.Accepted, r.Rejected)
	if !r.Complete {
		fmt.Fprintln(w, "report is partial: validation was interrupted")
	}
	for _, f := range r.Failures {
		fmt.Fprintf(w, "failure: %s\n", f)
	}
	if r.Rejected == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tSERIES\tPERIOD\tVALUE\tREASON")
	for _, row := range r.Rows {
		if row.Outcome != domain.RowRejected {
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", row.Line, row.SeriesCode, row.PeriodDate, row.Value, row.Reason)
	}
	tw.Flush() //nolint:errcheck
}
