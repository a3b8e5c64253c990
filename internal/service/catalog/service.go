// Package catalog manages indicators, their taxonomy and their data series.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
)

type indicatorRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Indicator, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Indicator, error)
	List(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error)
	Create(ctx context.Context, ind domain.Indicator) (*domain.Indicator, error)
	Update(ctx context.Context, id int64, params domain.IndicatorUpdateParams) (*domain.Indicator, error)
}

type taxonomyRepo interface {
	CreateCategory(ctx context.Context, code, name string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateSector(ctx context.Context, code, name string) (*domain.Sector, error)
	ListSectors(ctx context.Context) ([]domain.Sector, error)
}

type seriesRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.DataSeries, error)
	List(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error)
	Create(ctx context.Context, s domain.DataSeries) (*domain.DataSeries, error)
	Update(ctx context.Context, id int64, params domain.SeriesUpdateParams) (*domain.DataSeries, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog management operations.
type Service struct {
	indicators indicatorRepo
	taxonomy   taxonomyRepo
	series     seriesRepo
	audit      auditLogger
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	indicators indicatorRepo,
	taxonomy taxonomyRepo,
	series seriesRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		indicators: indicators,
		taxonomy:   taxonomy,
		series:     series,
		audit:      audit,
		tx:         tx,
		log:        log.With("service", "catalog"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace but keeps an explicit empty string, which clears the field.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
