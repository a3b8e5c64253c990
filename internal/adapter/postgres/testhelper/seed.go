package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgic/pgic-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// IndicatorOption customizes a seeded indicator.
type IndicatorOption func(*domain.Indicator)

// WithFrequency sets the seeded indicator frequency.
func WithFrequency(f domain.Frequency) IndicatorOption {
	return func(i *domain.Indicator) { i.Frequency = f }
}

// WithState writes the indicator directly in the given workflow state,
// keeping the published_at and is_archived invariants.
func WithState(s domain.WorkflowState) IndicatorOption {
	return func(i *domain.Indicator) { i.WorkflowState = s }
}

// SeedIndicator inserts a monthly draft indicator with a unique code.
func SeedIndicator(t *testing.T, pool *pgxpool.Pool, opts ...IndicatorOption) domain.Indicator {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	ind := domain.Indicator{
		Code:          "IND-" + suffix,
		Name:          "Indicator " + suffix,
		Frequency:     domain.FrequencyMonthly,
		Unit:          "index",
		Source:        "test",
		WorkflowState: domain.WorkflowDraft,
	}
	for _, opt := range opts {
		opt(&ind)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO indicators (code, name, frequency, unit, source, workflow_state, is_archived, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $6 = 'archived', CASE WHEN $6 = 'published' THEN now() END)
		 RETURNING id, current_version, is_archived, published_at, created_at, updated_at`,
		ind.Code, ind.Name, string(ind.Frequency), ind.Unit, ind.Source, string(ind.WorkflowState),
	).Scan(&ind.ID, &ind.CurrentVersion, &ind.IsArchived, &ind.PublishedAt, &ind.CreatedAt, &ind.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedIndicator: %v", err)
	}

	return ind
}

// SeedSeries inserts an active series with two decimals under indicatorID.
func SeedSeries(t *testing.T, pool *pgxpool.Pool, indicatorID int64) domain.DataSeries {
	t.Helper()
	ctx := context.Background()

	suffix := UniqueSuffix()
	s := domain.DataSeries{
		IndicatorID: indicatorID,
		Code:        "S-" + suffix,
		Name:        "Series " + suffix,
		Decimals:    2,
		IsActive:    true,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO data_series (indicator_id, code, name, decimals, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		s.IndicatorID, s.Code, s.Name, s.Decimals, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSeries: %v", err)
	}

	return s
}

// SeedObservation inserts an observation revision directly, bypassing the
// append path. Used to arrange revision histories.
func SeedObservation(t *testing.T, pool *pgxpool.Pool, seriesID int64, period, value string, revision int32, status domain.WorkflowState) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO observations (series_id, period_date, value, revision_number, status, is_published)
		 VALUES ($1, $2::date, $3::numeric, $4, $5, $5 = 'published')`,
		seriesID, period, value, revision, string(status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedObservation: %v", err)
	}
}
