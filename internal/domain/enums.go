package domain

import "strings"

// Frequency is the declared periodicity of an indicator.
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

func (f Frequency) String() string { return string(f) }

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// Code returns the single-letter frequency code used by data providers (D, W, M, Q, S, A).
func (f Frequency) Code() string {
	switch f {
	case FrequencyDaily:
		return "D"
	case FrequencyWeekly:
		return "W"
	case FrequencyMonthly:
		return "M"
	case FrequencyQuarterly:
		return "Q"
	case FrequencySemiannual:
		return "S"
	case FrequencyAnnual:
		return "A"
	}
	return ""
}

// ParseFrequency accepts either the full name ("monthly") or the provider code ("M"),
// case-insensitively.
func ParseFrequency(s string) (Frequency, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "d":
		return FrequencyDaily, true
	case "w":
		return FrequencyWeekly, true
	case "m":
		return FrequencyMonthly, true
	case "q":
		return FrequencyQuarterly, true
	case "s":
		return FrequencySemiannual, true
	case "a":
		return FrequencyAnnual, true
	}
	f := Frequency(s)
	return f, f.IsValid()
}

// ImportStatus is the lifecycle state of an import batch.
type ImportStatus string

const (
	ImportStatusUploaded   ImportStatus = "uploaded"
	ImportStatusValidating ImportStatus = "validating"
	ImportStatusRejected   ImportStatus = "rejected"
	ImportStatusApproved   ImportStatus = "approved"
	ImportStatusProcessed  ImportStatus = "processed"
)

func (s ImportStatus) String() string { return string(s) }

func (s ImportStatus) IsValid() bool {
	switch s {
	case ImportStatusUploaded, ImportStatusValidating, ImportStatusRejected,
		ImportStatusApproved, ImportStatusProcessed:
		return true
	}
	return false
}

// ImportFormat is the encoding of an uploaded import file.
type ImportFormat string

const (
	ImportFormatCSV  ImportFormat = "csv"
	ImportFormatJSON ImportFormat = "json"
)

func (f ImportFormat) String() string { return string(f) }

func (f ImportFormat) IsValid() bool {
	return f == ImportFormatCSV || f == ImportFormatJSON
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeIndicator   EntityType = "indicator"
	EntityTypeCategory    EntityType = "category"
	EntityTypeSector      EntityType = "sector"
	EntityTypeSeries      EntityType = "data_series"
	EntityTypeObservation EntityType = "observation"
	EntityTypeImport      EntityType = "import"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeIndicator, EntityTypeCategory, EntityTypeSector,
		EntityTypeSeries, EntityTypeObservation, EntityTypeImport:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionTransition AuditAction = "transition"
	AuditActionMerge      AuditAction = "merge"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionTransition, AuditActionMerge:
		return true
	}
	return false
}

// Visibility selects which observation revisions a reader may see.
type Visibility string

const (
	// VisibilityAny sees every revision regardless of workflow status.
	VisibilityAny Visibility = "any"
	// VisibilityPublished sees only revisions whose status is published.
	VisibilityPublished Visibility = "published"
)

func (v Visibility) String() string { return string(v) }

func (v Visibility) IsValid() bool {
	return v == VisibilityAny || v == VisibilityPublished
}
