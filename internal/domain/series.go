package domain

import "time"

// DataSeries is one concrete time series of an indicator.
type DataSeries struct {
	ID          int64     `db:"id"           json:"id"`
	IndicatorID int64     `db:"indicator_id" json:"indicator_id"`
	Code        string    `db:"code"         json:"code"`
	Name        string    `db:"name"         json:"name"`
	Decimals    int32     `db:"decimals"     json:"decimals"`
	IsActive    bool      `db:"is_active"    json:"is_active"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
}

// Snapshot returns the audit representation of the series.
func (s DataSeries) Snapshot() map[string]any {
	return map[string]any{
		"id":           s.ID,
		"indicator_id": s.IndicatorID,
		"code":         s.Code,
		"name":         s.Name,
		"decimals":     s.Decimals,
		"is_active":    s.IsActive,
	}
}

// SeriesUpdateParams holds a partial update of a series.
type SeriesUpdateParams struct {
	Name     *string
	Decimals *int32
	IsActive *bool
}

// SeriesFilter selects series for listings.
type SeriesFilter struct {
	IndicatorID *int64
	ActiveOnly  bool
	Limit       int
	Offset      int
}

// SeriesTarget is the write context of a series: the series itself plus the
// state of its owning indicator, read under lock before an append.
type SeriesTarget struct {
	Series         DataSeries
	IndicatorState WorkflowState
}
