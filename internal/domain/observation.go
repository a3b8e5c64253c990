package domain

import "time"

// DateLayout is the wire format of period dates.
const DateLayout = "2006-01-02"

// Observation is one revision of a value for a series at a period.
// Rows are never updated except for publication; corrections append a new revision.
type Observation struct {
	ID             int64         `db:"id"              json:"id"`
	SeriesID       int64         `db:"series_id"       json:"series_id"`
	PeriodDate     time.Time     `db:"period_date"     json:"period_date"`
	Value          Decimal       `db:"value"           json:"value"`
	RevisionNumber int32         `db:"revision_number" json:"revision_number"`
	IsPublished    bool          `db:"is_published"    json:"is_published"`
	Status         WorkflowState `db:"status"          json:"status"`
	CreatedAt      time.Time     `db:"created_at"      json:"created_at"`
}

// Snapshot returns the audit representation of the observation.
func (o Observation) Snapshot() map[string]any {
	return map[string]any{
		"id":              o.ID,
		"series_id":       o.SeriesID,
		"period_date":     o.PeriodDate.Format(DateLayout),
		"value":           o.Value.String(),
		"revision_number": o.RevisionNumber,
		"is_published":    o.IsPublished,
		"status":          string(o.Status),
	}
}

// NewObservation holds the input of a revision append.
type NewObservation struct {
	SeriesID   int64
	PeriodDate time.Time
	Value      Decimal
	Status     WorkflowState
}

// Point is one resolved (period, current value) pair of a range read.
type Point struct {
	PeriodDate     time.Time `json:"period_date"`
	Value          Decimal   `json:"value"`
	RevisionNumber int32     `json:"revision_number"`
	IsPublished    bool      `json:"is_published"`
}

// SeriesPoint is a Point tagged with its series, used by indicator-wide reads.
type SeriesPoint struct {
	SeriesID int64 `json:"series_id"`
	Point
}

// ParsePeriodDate parses a YYYY-MM-DD date as a UTC calendar day.
func ParsePeriodDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// IsAlignedTo reports whether a period date is the canonical start of a period
// of the given frequency. Periods are identified by their first day; weeks start on Monday.
func IsAlignedTo(d time.Time, f Frequency) bool {
	switch f {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return d.Weekday() == time.Monday
	case FrequencyMonthly:
		return d.Day() == 1
	case FrequencyQuarterly:
		return d.Day() == 1 && (d.Month()-1)%3 == 0
	case FrequencySemiannual:
		return d.Day() == 1 && (d.Month() == time.January || d.Month() == time.July)
	case FrequencyAnnual:
		return d.Day() == 1 && d.Month() == time.January
	}
	return false
}

// AlignmentHint describes the expected period date for a frequency, for rejection reasons.
func AlignmentHint(f Frequency) string {
	switch f {
	case FrequencyWeekly:
		return "a Monday"
	case FrequencyMonthly:
		return "the first day of a month"
	case FrequencyQuarterly:
		return "the first day of a quarter"
	case FrequencySemiannual:
		return "January 1 or July 1"
	case FrequencyAnnual:
		return "January 1"
	}
	return "any date"
}
