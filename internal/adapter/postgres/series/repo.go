// Package series implements the DataSeries repository using PostgreSQL.
package series

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/adapter/postgres/indicator"
	"github.com/pgic/pgic-backend/internal/domain"
)

// Repo provides series persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new series repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `id, indicator_id, code, name, decimals, is_active, created_at`

const createSQL = `
INSERT INTO data_series (indicator_id, code, name, decimals, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM data_series WHERE id = $1`

const listByIndicatorSQL = `SELECT ` + columns + ` FROM data_series WHERE indicator_id = $1 ORDER BY id`

// The series row is locked exclusively so appends to one series serialize;
// the indicator is share-locked so a concurrent transition waits for the append.
const lockTargetSQL = `
SELECT s.id, s.indicator_id, s.code, s.name, s.decimals, s.is_active, s.created_at,
       i.workflow_state
FROM data_series s
JOIN indicators i ON i.id = s.indicator_id
WHERE s.id = $1
FOR UPDATE OF s
FOR SHARE OF i`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a series by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.DataSeries, error) {
	var s domain.DataSeries
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "data_series", id)
	}
	return &s, nil
}

// ListByIndicator returns every series of an indicator ordered by id,
// inactive ones included. Used by import validation to resolve codes.
func (r *Repo) ListByIndicator(ctx context.Context, indicatorID int64) ([]domain.DataSeries, error) {
	result := make([]domain.DataSeries, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &result, listByIndicatorSQL, indicatorID); err != nil {
		return nil, fmt.Errorf("list data_series of indicator %d: %w", indicatorID, err)
	}
	return result, nil
}

// List returns series matching filter, ordered by id.
func (r *Repo) List(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error) {
	q := psql.Select(columns).From("data_series").OrderBy("id")
	if filter.IndicatorID != nil {
		q = q.Where(sq.Eq{"indicator_id": *filter.IndicatorID})
	}
	if filter.ActiveOnly {
		q = q.Where(sq.Eq{"is_active": true})
	}
	q = q.Limit(uint64(indicator.ClampLimit(filter.Limit))).Offset(uint64(max(filter.Offset, 0)))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list data_series query: %w", err)
	}

	result := make([]domain.DataSeries, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &result, query, args...); err != nil {
		return nil, fmt.Errorf("list data_series: %w", err)
	}
	return result, nil
}

// LockTarget locks a series for writing and returns it with the workflow
// state of its indicator. Must be called inside TxManager.RunInTx.
// Returns domain.ErrNotFound if the series does not exist.
func (r *Repo) LockTarget(ctx context.Context, seriesID int64) (*domain.SeriesTarget, error) {
	var target domain.SeriesTarget
	var state string
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, lockTargetSQL, seriesID).Scan(
		&target.Series.ID, &target.Series.IndicatorID, &target.Series.Code, &target.Series.Name,
		&target.Series.Decimals, &target.Series.IsActive, &target.Series.CreatedAt,
		&state,
	)
	if err != nil {
		return nil, postgres.MapError(err, "data_series", seriesID)
	}
	target.IndicatorState = domain.WorkflowState(state)
	return &target, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new series.
// Returns domain.ErrDuplicateCode if the code is taken within the indicator
// and domain.ErrNotFound if the indicator does not exist.
func (r *Repo) Create(ctx context.Context, s domain.DataSeries) (*domain.DataSeries, error) {
	var created domain.DataSeries
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, createSQL,
		s.IndicatorID, s.Code, s.Name, s.Decimals, s.IsActive,
	)
	if err != nil {
		return nil, postgres.MapError(err, "data_series", s.Code)
	}
	return &created, nil
}

// Update applies a partial update. Returns domain.ErrNotFound if the series does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.SeriesUpdateParams) (*domain.DataSeries, error) {
	if params.Name == nil && params.Decimals == nil && params.IsActive == nil {
		return r.GetByID(ctx, id)
	}

	u := psql.Update("data_series").Where(sq.Eq{"id": id}).Suffix("RETURNING " + columns)
	if params.Name != nil {
		u = u.Set("name", *params.Name)
	}
	if params.Decimals != nil {
		u = u.Set("decimals", *params.Decimals)
	}
	if params.IsActive != nil {
		u = u.Set("is_active", *params.IsActive)
	}

	query, args, err := u.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update data_series query: %w", err)
	}

	var updated domain.DataSeries
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, "data_series", id)
	}
	return &updated, nil
}
