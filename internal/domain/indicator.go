package domain

import "time"

// Indicator is a named statistical measure tracked over time.
type Indicator struct {
	ID             int64         `db:"id"              json:"id"`
	Code           string        `db:"code"            json:"code"`
	Name           string        `db:"name"            json:"name"`
	Description    *string       `db:"description"     json:"description,omitempty"`
	Frequency      Frequency     `db:"frequency"       json:"frequency"`
	Unit           string        `db:"unit"            json:"unit"`
	BaseYear       *int32        `db:"base_year"       json:"base_year,omitempty"`
	Source         string        `db:"source"          json:"source"`
	Methodology    *string       `db:"methodology"     json:"methodology,omitempty"`
	CategoryID     *int64        `db:"category_id"     json:"category_id,omitempty"`
	SectorID       *int64        `db:"sector_id"       json:"sector_id,omitempty"`
	WorkflowState  WorkflowState `db:"workflow_state"  json:"workflow_state"`
	CurrentVersion int32         `db:"current_version" json:"current_version"`
	IsArchived     bool          `db:"is_archived"     json:"is_archived"`
	PublishedAt    *time.Time    `db:"published_at"    json:"published_at,omitempty"`
	CreatedAt      time.Time     `db:"created_at"      json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"      json:"updated_at"`
}

// Snapshot returns the audit representation of the indicator.
func (i Indicator) Snapshot() map[string]any {
	m := map[string]any{
		"id":              i.ID,
		"code":            i.Code,
		"name":            i.Name,
		"description":     i.Description,
		"frequency":       string(i.Frequency),
		"unit":            i.Unit,
		"base_year":       i.BaseYear,
		"source":          i.Source,
		"methodology":     i.Methodology,
		"category_id":     i.CategoryID,
		"sector_id":       i.SectorID,
		"workflow_state":  string(i.WorkflowState),
		"current_version": i.CurrentVersion,
		"is_archived":     i.IsArchived,
		"published_at":    nil,
	}
	if i.PublishedAt != nil {
		m["published_at"] = i.PublishedAt.UTC().Format(time.RFC3339Nano)
	}
	return m
}

// IndicatorUpdateParams holds a partial update of descriptive fields.
// Workflow fields are changed only through workflow transitions.
type IndicatorUpdateParams struct {
	Name        *string
	Description *string // ptr("") clears
	Unit        *string
	BaseYear    *int32
	Source      *string
	Methodology *string // ptr("") clears
	CategoryID  *int64  // ptr(0) clears
	SectorID    *int64  // ptr(0) clears
}

// IsEmpty reports whether no field is set.
func (p IndicatorUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Unit == nil && p.BaseYear == nil &&
		p.Source == nil && p.Methodology == nil && p.CategoryID == nil && p.SectorID == nil
}

// IndicatorFilter selects indicators for catalog listings.
type IndicatorFilter struct {
	// Query matches code or name case-insensitively as a substring.
	Query         string
	Frequency     *Frequency
	SectorID      *int64
	CategoryID    *int64
	PublishedOnly bool
	Limit         int
	Offset        int
}

// Category is a thematic grouping of indicators.
type Category struct {
	ID   int64  `db:"id"   json:"id"`
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// Sector is the economic sector an indicator describes.
type Sector struct {
	ID   int64  `db:"id"   json:"id"`
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}
