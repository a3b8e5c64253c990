package catalog

import (
	"regexp"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
)

var codePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,49}$`)

const (
	maxNameLen        = 255
	maxUnitLen        = 50
	maxDescriptionLen = 5000
	minBaseYear       = 1800
	maxBaseYear       = 2200
	defaultDecimals   = 2
	maxDecimals       = 6
)

func validateCode(errs []domain.FieldError, code string) []domain.FieldError {
	code = strings.TrimSpace(code)
	switch {
	case code == "":
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	case !codePattern.MatchString(code):
		errs = append(errs, domain.FieldError{Field: "code", Message: "letters, digits, '.', '_' or '-', max 50 characters"})
	}
	return errs
}

func validateName(errs []domain.FieldError, field, name string, maxLen int) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(name) > maxLen {
		errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// CreateIndicatorInput holds the parameters for creating an indicator.
type CreateIndicatorInput struct {
	Code        string
	Name        string
	Description *string
	// Frequency accepts the full name or the single-letter provider code.
	Frequency   string
	Unit        string
	BaseYear    *int32
	Source      string
	Methodology *string
	CategoryID  *int64
	SectorID    *int64
}

// Validate checks all fields and collects all errors.
func (i CreateIndicatorInput) Validate() error {
	var errs []domain.FieldError

	errs = validateCode(errs, i.Code)
	errs = validateName(errs, "name", i.Name, maxNameLen)
	errs = validateName(errs, "unit", i.Unit, maxUnitLen)
	errs = validateName(errs, "source", i.Source, maxNameLen)

	if _, ok := domain.ParseFrequency(i.Frequency); !ok {
		errs = append(errs, domain.FieldError{Field: "frequency", Message: "must be one of daily, weekly, monthly, quarterly, semiannual, annual"})
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Methodology != nil && len(*i.Methodology) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "methodology", Message: "too long"})
	}
	if i.BaseYear != nil && (*i.BaseYear < minBaseYear || *i.BaseYear > maxBaseYear) {
		errs = append(errs, domain.FieldError{Field: "base_year", Message: "out of range"})
	}
	if i.CategoryID != nil && *i.CategoryID <= 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must be positive"})
	}
	if i.SectorID != nil && *i.SectorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "sector_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateIndicatorInput holds a partial update of an indicator's descriptive fields.
type UpdateIndicatorInput struct {
	ID          int64
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	Unit        *string
	BaseYear    *int32
	Source      *string
	Methodology *string // nil = don't change; ptr("") = clear
	CategoryID  *int64  // ptr(0) = clear
	SectorID    *int64  // ptr(0) = clear
}

func (i UpdateIndicatorInput) params() domain.IndicatorUpdateParams {
	return domain.IndicatorUpdateParams{
		Name:        trimOrNil(i.Name),
		Description: trimPtr(i.Description),
		Unit:        trimOrNil(i.Unit),
		BaseYear:    i.BaseYear,
		Source:      trimOrNil(i.Source),
		Methodology: trimPtr(i.Methodology),
		CategoryID:  i.CategoryID,
		SectorID:    i.SectorID,
	}
}

// Validate checks all fields and collects all errors.
func (i UpdateIndicatorInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.params().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, "name", *i.Name, maxNameLen)
	}
	if i.Unit != nil {
		errs = validateName(errs, "unit", *i.Unit, maxUnitLen)
	}
	if i.Source != nil {
		errs = validateName(errs, "source", *i.Source, maxNameLen)
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}
	if i.Methodology != nil && len(*i.Methodology) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "methodology", Message: "too long"})
	}
	if i.BaseYear != nil && (*i.BaseYear < minBaseYear || *i.BaseYear > maxBaseYear) {
		errs = append(errs, domain.FieldError{Field: "base_year", Message: "out of range"})
	}
	if i.CategoryID != nil && *i.CategoryID < 0 {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "must not be negative"})
	}
	if i.SectorID != nil && *i.SectorID < 0 {
		errs = append(errs, domain.FieldError{Field: "sector_id", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateTermInput holds the parameters for creating a category or a sector.
type CreateTermInput struct {
	Code string
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateTermInput) Validate() error {
	var errs []domain.FieldError
	errs = validateCode(errs, i.Code)
	errs = validateName(errs, "name", i.Name, maxNameLen)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSeriesInput holds the parameters for creating a data series.
type CreateSeriesInput struct {
	IndicatorID int64
	Code        string
	Name        string
	Decimals    *int32 // nil = 2
	IsActive    *bool  // nil = true
}

// Validate checks all fields and collects all errors.
func (i CreateSeriesInput) Validate() error {
	var errs []domain.FieldError

	if i.IndicatorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "indicator_id", Message: "required"})
	}
	errs = validateCode(errs, i.Code)
	errs = validateName(errs, "name", i.Name, maxNameLen)
	if i.Decimals != nil && (*i.Decimals < 0 || *i.Decimals > maxDecimals) {
		errs = append(errs, domain.FieldError{Field: "decimals", Message: "must be between 0 and 6"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSeriesInput holds a partial update of a data series.
type UpdateSeriesInput struct {
	ID       int64
	Name     *string
	Decimals *int32
	IsActive *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateSeriesInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Decimals == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, "name", *i.Name, maxNameLen)
	}
	if i.Decimals != nil && (*i.Decimals < 0 || *i.Decimals > maxDecimals) {
		errs = append(errs, domain.FieldError{Field: "decimals", Message: "must be between 0 and 6"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePage(limit, offset int) error {
	var errs []domain.FieldError
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
