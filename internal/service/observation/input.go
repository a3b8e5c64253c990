package observation

import (
	"time"

	"github.com/pgic/pgic-backend/internal/domain"
)

// AppendInput holds one new value for a series period.
type AppendInput struct {
	SeriesID   int64
	PeriodDate time.Time
	Value      domain.Decimal
}

// Validate checks all fields and collects all errors.
func (i AppendInput) Validate() error {
	var errs []domain.FieldError

	if i.SeriesID <= 0 {
		errs = append(errs, domain.FieldError{Field: "series_id", Message: "required"})
	}
	if i.PeriodDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "period_date", Message: "required"})
	}
	if err := i.Value.CheckPrecision(domain.StoreScale); err != nil {
		errs = append(errs, domain.FieldError{Field: "value", Message: err.Error()})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RangeInput selects a window of periods. ID is a series id for Range and an
// indicator id for IndicatorData. Nil bounds are open.
type RangeInput struct {
	ID         int64
	Start      *time.Time
	End        *time.Time
	Visibility domain.Visibility
}

// Validate checks all fields and collects all errors.
func (i RangeInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if !i.Visibility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be any or published"})
	}
	if i.Start != nil && i.End != nil && i.End.Before(*i.Start) {
		errs = append(errs, domain.FieldError{Field: "end", Message: "must not be before start"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
