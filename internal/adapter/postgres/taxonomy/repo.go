// Package taxonomy implements persistence of the indicator classification
// tables: categories and sectors.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/pgic/pgic-backend/internal/adapter/postgres"
	"github.com/pgic/pgic-backend/internal/domain"
)

// Repo provides category and sector persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new taxonomy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	createCategorySQL = `INSERT INTO categories (code, name) VALUES ($1, $2) RETURNING id, code, name`
	getCategorySQL    = `SELECT id, code, name FROM categories WHERE id = $1`
	listCategoriesSQL = `SELECT id, code, name FROM categories ORDER BY code`

	createSectorSQL = `INSERT INTO sectors (code, name) VALUES ($1, $2) RETURNING id, code, name`
	getSectorSQL    = `SELECT id, code, name FROM sectors WHERE id = $1`
	listSectorsSQL  = `SELECT id, code, name FROM sectors ORDER BY code`
)

// CreateCategory inserts a category. Returns domain.ErrDuplicateCode on a taken code.
func (r *Repo) CreateCategory(ctx context.Context, code, name string) (*domain.Category, error) {
	var c domain.Category
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, createCategorySQL, code, name); err != nil {
		return nil, postgres.MapError(err, "category", code)
	}
	return &c, nil
}

// GetCategory returns a category by primary key.
func (r *Repo) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, getCategorySQL, id); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return &c, nil
}

// ListCategories returns every category ordered by code.
func (r *Repo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	result := make([]domain.Category, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &result, listCategoriesSQL); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return result, nil
}

// CreateSector inserts a sector. Returns domain.ErrDuplicateCode on a taken code.
func (r *Repo) CreateSector(ctx context.Context, code, name string) (*domain.Sector, error) {
	var s domain.Sector
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, createSectorSQL, code, name); err != nil {
		return nil, postgres.MapError(err, "sector", code)
	}
	return &s, nil
}

// GetSector returns a sector by primary key.
func (r *Repo) GetSector(ctx context.Context, id int64) (*domain.Sector, error) {
	var s domain.Sector
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, getSectorSQL, id); err != nil {
		return nil, postgres.MapError(err, "sector", id)
	}
	return &s, nil
}

// ListSectors returns every sector ordered by code.
func (r *Repo) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	result := make([]domain.Sector, 0)
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &result, listSectorsSQL); err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	return result, nil
}
