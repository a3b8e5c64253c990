// Package observation implements the revisioned observation store on PostgreSQL.
// Rows are append-only; the only UPDATE is publication.
package observation

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/domain"
)

// Repo provides observation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new observation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `id, series_id, period_date, value::text AS value, revision_number, is_published, status, created_at`

// Next revision and insert in one statement. A concurrent writer that slips
// past the series lock hits uq_observation_revision.
const appendSQL = `
INSERT INTO observations (series_id, period_date, value, revision_number, is_published, status)
SELECT $1::bigint, $2::date, $3::numeric, COALESCE(MAX(revision_number) + 1, 0), false, $4::text
FROM observations
WHERE series_id = $1::bigint AND period_date = $2::date
RETURNING ` + columns

// $3 = 'any' disables the status filter.
const currentValueSQL = `
SELECT ` + columns + `
FROM observations
WHERE series_id = $1 AND period_date = $2::date
  AND ($3::text = 'any' OR status = 'published')
ORDER BY revision_number DESC
LIMIT 1`

const rangeSQL = `
SELECT DISTINCT ON (period_date)
    period_date, value::text, revision_number, is_published
FROM observations
WHERE series_id = $1
  AND ($2::date IS NULL OR period_date >= $2::date)
  AND ($3::date IS NULL OR period_date <= $3::date)
  AND ($4::text = 'any' OR status = 'published')
ORDER BY period_date, revision_number DESC`

const indicatorRangeSQL = `
SELECT DISTINCT ON (o.series_id, o.period_date)
    o.series_id, o.period_date, o.value::text, o.revision_number, o.is_published
FROM observations o
JOIN data_series s ON s.id = o.series_id
WHERE s.indicator_id = $1
  AND ($2::date IS NULL OR o.period_date >= $2::date)
  AND ($3::date IS NULL OR o.period_date <= $3::date)
  AND ($4::text = 'any' OR o.status = 'published')
ORDER BY o.series_id, o.period_date, o.revision_number DESC`

const revisionsSQL = `
SELECT ` + columns + `
FROM observations
WHERE series_id = $1 AND period_date = $2::date
ORDER BY revision_number`

const promoteSQL = `
UPDATE observations o
SET is_published = true, status = 'published'
FROM data_series s
WHERE s.id = o.series_id
  AND s.indicator_id = $1
  AND o.status = 'validated'
  AND NOT o.is_published`

const countSQL = `SELECT count(*) FROM observations WHERE series_id = $1`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts the next revision for (series, period). The caller holds the
// series lock (series.Repo.LockTarget) inside the same transaction.
// Returns domain.ErrConcurrencyConflict when another writer took the revision.
func (r *Repo) Append(ctx context.Context, in domain.NewObservation) (*domain.Observation, error) {
	var obs domain.Observation
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &obs, appendSQL,
		in.SeriesID, in.PeriodDate.Format(domain.DateLayout), in.Value.String(), string(in.Status),
	)
	if err != nil {
		return nil, postgres.MapError(err, "observation", periodKey(in.SeriesID, in.PeriodDate))
	}
	return &obs, nil
}

// PromoteValidated publishes every not-yet-published validated observation of
// every series of an indicator and returns how many rows changed.
func (r *Repo) PromoteValidated(ctx context.Context, indicatorID int64) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, promoteSQL, indicatorID)
	if err != nil {
		return 0, postgres.MapError(err, "indicator", indicatorID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CurrentValue returns the highest revision of (series, period) visible under
// vis. ok is false when no revision qualifies.
func (r *Repo) CurrentValue(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error) {
	var obs domain.Observation
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &obs, currentValueSQL,
		seriesID, period.Format(domain.DateLayout), string(vis),
	)
	if pgxscan.NotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "observation", periodKey(seriesID, period))
	}
	return &obs, true, nil
}

// Revisions returns the full revision history of (series, period) in
// ascending revision order.
func (r *Repo) Revisions(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error) {
	result := make([]domain.Observation, 0)
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &result, revisionsSQL,
		seriesID, period.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("revisions of %s: %w", periodKey(seriesID, period), err)
	}
	return result, nil
}

// Count returns the number of stored revisions of a series.
func (r *Repo) Count(ctx context.Context, seriesID int64) (int64, error) {
	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, seriesID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "data_series", seriesID)
	}
	return n, nil
}

// Range yields the current value of each period of a series in
// [start, end] (nil bounds are open), ascending by period. Each iteration
// runs a fresh query, so the sequence can be ranged over repeatedly.
// A query or scan failure is yielded once as the final element.
func (r *Repo) Range(ctx context.Context, seriesID int64, start, end *time.Time, vis domain.Visibility) iter.Seq2[domain.Point, error] {
	return func(yield func(domain.Point, error) bool) {
		rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, rangeSQL,
			seriesID, dateArg(start), dateArg(end), string(vis),
		)
		if err != nil {
			yield(domain.Point{}, fmt.Errorf("range data_series %d: %w", seriesID, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanPoint(rows)
			if err != nil {
				yield(domain.Point{}, fmt.Errorf("range data_series %d: %w", seriesID, err))
				return
			}
			if !yield(p, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.Point{}, fmt.Errorf("range data_series %d: %w", seriesID, err))
		}
	}
}

// IndicatorRange is Range over every series of an indicator, ordered by
// series then period.
func (r *Repo) IndicatorRange(ctx context.Context, indicatorID int64, start, end *time.Time, vis domain.Visibility) iter.Seq2[domain.SeriesPoint, error] {
	return func(yield func(domain.SeriesPoint, error) bool) {
		rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, indicatorRangeSQL,
			indicatorID, dateArg(start), dateArg(end), string(vis),
		)
		if err != nil {
			yield(domain.SeriesPoint{}, fmt.Errorf("range indicator %d: %w", indicatorID, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var sp domain.SeriesPoint
			if err := rows.Scan(&sp.SeriesID, &sp.PeriodDate, &sp.Value, &sp.RevisionNumber, &sp.IsPublished); err != nil {
				yield(domain.SeriesPoint{}, fmt.Errorf("range indicator %d: %w", indicatorID, err))
				return
			}
			if !yield(sp, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.SeriesPoint{}, fmt.Errorf("range indicator %d: %w", indicatorID, err))
		}
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanPoint(rows pgx.Rows) (domain.Point, error) {
	var p domain.Point
	err := rows.Scan(&p.PeriodDate, &p.Value, &p.RevisionNumber, &p.IsPublished)
	return p, err
}

func dateArg(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func periodKey(seriesID int64, period time.Time) string {
	return fmt.Sprintf("%d@%s", seriesID, period.Format(domain.DateLayout))
}
