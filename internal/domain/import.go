package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// Import is one ingestion attempt of an externally supplied file.
type Import struct {
	ID               int64             `json:"id"`
	IndicatorID      *int64            `json:"indicator_id,omitempty"`
	FileName         string            `json:"file_name"`
	Format           ImportFormat      `json:"format"`
	Content          []byte            `json:"-"`
	Status           ImportStatus      `json:"status"`
	ValidationReport *ValidationReport `json:"validation_report,omitempty"`
	UploadedBy       *int64            `json:"uploaded_by,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	ProcessedAt      *time.Time        `json:"processed_at,omitempty"`
}

// Snapshot returns the audit representation of the import (content excluded).
func (i Import) Snapshot() map[string]any {
	m := map[string]any{
		"id":           i.ID,
		"indicator_id": i.IndicatorID,
		"file_name":    i.FileName,
		"format":       string(i.Format),
		"status":       string(i.Status),
		"size_bytes":   len(i.Content),
	}
	if i.ValidationReport != nil {
		m["accepted"] = i.ValidationReport.Accepted
		m["rejected"] = i.ValidationReport.Rejected
		m["total"] = i.ValidationReport.Total
	}
	return m
}

// FormatFromFileName derives the import format from the file extension.
func FormatFromFileName(name string) (ImportFormat, bool) {
	f := ImportFormat(strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), "."))
	return f, f.IsValid()
}

// RowOutcome is the validation verdict of one import row.
type RowOutcome string

const (
	RowAccepted RowOutcome = "accepted"
	RowRejected RowOutcome = "rejected"
)

// ReportRow records the outcome of one input row.
type ReportRow struct {
	Line       int        `json:"line"`
	SeriesCode string     `json:"series_code"`
	SeriesID   *int64     `json:"series_id,omitempty"`
	PeriodDate string     `json:"period_date"`
	Value      string     `json:"value"`
	Outcome    RowOutcome `json:"outcome"`
	Reason     string     `json:"reason,omitempty"`
}

// ValidationReport is the structured result of validating an import.
type ValidationReport struct {
	Total       int         `json:"total"`
	Accepted    int         `json:"accepted"`
	Rejected    int         `json:"rejected"`
	Complete    bool        `json:"complete"`
	Rows        []ReportRow `json:"rows"`
	Failures    []string    `json:"failures,omitempty"`
	ValidatedAt *time.Time  `json:"validated_at,omitempty"`
}

// Accept appends an accepted row.
func (r *ValidationReport) Accept(row ReportRow) {
	row.Outcome = RowAccepted
	row.Reason = ""
	r.Rows = append(r.Rows, row)
	r.Total++
	r.Accepted++
}

// Reject appends a rejected row with a reason.
func (r *ValidationReport) Reject(row ReportRow, reason string) {
	row.Outcome = RowRejected
	row.Reason = reason
	r.Rows = append(r.Rows, row)
	r.Total++
	r.Rejected++
}

// AcceptedRows returns the rows that passed validation, in input order.
func (r *ValidationReport) AcceptedRows() []ReportRow {
	rows := make([]ReportRow, 0, r.Accepted)
	for _, row := range r.Rows {
		if row.Outcome == RowAccepted {
			rows = append(rows, row)
		}
	}
	return rows
}

// AddFailure records a batch-level failure reason.
func (r *ValidationReport) AddFailure(reason string) {
	r.Failures = append(r.Failures, reason)
}

// ImportFilter selects imports for listings.
type ImportFilter struct {
	IndicatorID *int64
	Status      *ImportStatus
	Limit       int
	Offset      int
}
