package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pgic/pgic-backend/internal/domain"
)

// Constraint names referenced by error mapping. They must match migrations/.
const (
	ConstraintObservationRevision = "uq_observation_revision"
	ConstraintIndicatorCode       = "uq_indicators_code"
	ConstraintSeriesCode          = "uq_data_series_indicator_code"
	ConstraintCategoryCode        = "uq_categories_code"
	ConstraintSectorCode          = "uq_sectors_code"
)

var duplicateCodeConstraints = map[string]bool{
	ConstraintIndicatorCode: true,
	ConstraintSeriesCode:    true,
	ConstraintCategoryCode:  true,
	ConstraintSectorCode:    true,
}

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			switch {
			case pgErr.ConstraintName == ConstraintObservationRevision:
				return fmt.Errorf("%s %v: %w", entity, id, domain.ErrConcurrencyConflict)
			case duplicateCodeConstraints[pgErr.ConstraintName]:
				return fmt.Errorf("%s %v: %w", entity, id, domain.ErrDuplicateCode)
			}
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrConcurrencyConflict)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
