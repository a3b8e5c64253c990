// Package indicator implements the Indicator repository using PostgreSQL.
// Workflow columns are written only by ApplyTransition.
package indicator

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/domain"
)

const (
	// DefaultLimit is applied when a filter has no limit.
	DefaultLimit = 100
	// MaxLimit caps every listing.
	MaxLimit = 1000
)

// Repo provides indicator persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new indicator repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const columns = `id, code, name, description, frequency, unit, base_year, source, methodology,
    category_id, sector_id, workflow_state, current_version, is_archived, published_at,
    created_at, updated_at`

const createSQL = `
INSERT INTO indicators (code, name, description, frequency, unit, base_year, source, methodology, category_id, sector_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + columns

const getByIDSQL = `SELECT ` + columns + ` FROM indicators WHERE id = $1`

const getForUpdateSQL = `SELECT ` + columns + ` FROM indicators WHERE id = $1 FOR UPDATE`

const applyTransitionSQL = `
UPDATE indicators SET
    workflow_state  = $2::text,
    published_at    = CASE WHEN $2::text = 'published' THEN now() END,
    current_version = current_version + CASE WHEN $2::text = 'published' THEN 1 ELSE 0 END,
    is_archived     = ($2::text = 'archived')
WHERE id = $1
RETURNING ` + columns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an indicator by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Indicator, error) {
	var ind domain.Indicator
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ind, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "indicator", id)
	}
	return &ind, nil
}

// GetForUpdate returns an indicator and locks its row until the enclosing
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (*domain.Indicator, error) {
	var ind domain.Indicator
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &ind, getForUpdateSQL, id); err != nil {
		return nil, postgres.MapError(err, "indicator", id)
	}
	return &ind, nil
}

// List returns indicators matching filter, ordered by code.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error) {
	query, args, err := listQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list indicators query: %w", err)
	}

	result := make([]domain.Indicator, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &result, query, args...); err != nil {
		return nil, fmt.Errorf("list indicators: %w", err)
	}
	return result, nil
}

func listQuery(filter domain.IndicatorFilter) sq.SelectBuilder {
	q := psql.Select(columns).From("indicators").OrderBy("code")

	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"
		q = q.Where(sq.Or{sq.ILike{"code": pattern}, sq.ILike{"name": pattern}})
	}
	if filter.Frequency != nil {
		q = q.Where(sq.Eq{"frequency": string(*filter.Frequency)})
	}
	if filter.SectorID != nil {
		q = q.Where(sq.Eq{"sector_id": *filter.SectorID})
	}
	if filter.CategoryID != nil {
		q = q.Where(sq.Eq{"category_id": *filter.CategoryID})
	}
	if filter.PublishedOnly {
		q = q.Where(sq.Eq{"workflow_state": string(domain.WorkflowPublished)})
	}

	return q.Limit(uint64(ClampLimit(filter.Limit))).Offset(uint64(max(filter.Offset, 0)))
}

// ClampLimit applies DefaultLimit and MaxLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}

// escapeLike escapes LIKE wildcards so free text matches literally.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new draft indicator.
// Returns domain.ErrDuplicateCode if the code is taken and domain.ErrNotFound
// if a referenced category or sector does not exist.
func (r *Repo) Create(ctx context.Context, ind domain.Indicator) (*domain.Indicator, error) {
	var created domain.Indicator
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &created, createSQL,
		ind.Code, ind.Name, ind.Description, string(ind.Frequency), ind.Unit, ind.BaseYear,
		ind.Source, ind.Methodology, ind.CategoryID, ind.SectorID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "indicator", ind.Code)
	}
	return &created, nil
}

// Update applies a partial update of descriptive fields.
// Returns domain.ErrNotFound if the indicator does not exist.
func (r *Repo) Update(ctx context.Context, id int64, params domain.IndicatorUpdateParams) (*domain.Indicator, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	query, args, err := updateQuery(id, params).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update indicator query: %w", err)
	}

	var updated domain.Indicator
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, query, args...); err != nil {
		return nil, postgres.MapError(err, "indicator", id)
	}
	return &updated, nil
}

func updateQuery(id int64, p domain.IndicatorUpdateParams) sq.UpdateBuilder {
	u := psql.Update("indicators").Where(sq.Eq{"id": id}).Suffix("RETURNING " + columns)

	if p.Name != nil {
		u = u.Set("name", *p.Name)
	}
	if p.Description != nil {
		u = u.Set("description", nullIfEmpty(*p.Description))
	}
	if p.Unit != nil {
		u = u.Set("unit", *p.Unit)
	}
	if p.BaseYear != nil {
		u = u.Set("base_year", *p.BaseYear)
	}
	if p.Source != nil {
		u = u.Set("source", *p.Source)
	}
	if p.Methodology != nil {
		u = u.Set("methodology", nullIfEmpty(*p.Methodology))
	}
	if p.CategoryID != nil {
		u = u.Set("category_id", nullIfZero(*p.CategoryID))
	}
	if p.SectorID != nil {
		u = u.Set("sector_id", nullIfZero(*p.SectorID))
	}
	return u
}

// ApplyTransition writes a new workflow state together with its side effects
// on published_at, current_version and is_archived. Transition validity is
// checked by the caller.
func (r *Repo) ApplyTransition(ctx context.Context, id int64, to domain.WorkflowState) (*domain.Indicator, error) {
	var updated domain.Indicator
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &updated, applyTransitionSQL, id, string(to)); err != nil {
		return nil, postgres.MapError(err, "indicator", id)
	}
	return &updated, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
