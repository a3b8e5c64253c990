// Package importer runs the upload, validate and process stages of an
// observation import batch.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/observation"
)

type importRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Import, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.Import, error)
	List(ctx context.Context, filter domain.ImportFilter) ([]domain.Import, error)
	Create(ctx context.Context, imp domain.Import) (*domain.Import, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ImportStatus, report *domain.ValidationReport) (*domain.Import, error)
}

type indicatorRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Indicator, error)
}

type seriesRepo interface {
	ListByIndicator(ctx context.Context, indicatorID int64) ([]domain.DataSeries, error)
}

type observationWriter interface {
	AppendInTx(ctx context.Context, input observation.AppendInput, action domain.AuditAction) (*domain.Observation, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config bounds the size of accepted files.
type Config struct {
	MaxFileSize int64
	MaxRows     int
}

// Service drives imports through uploaded, validating, approved or rejected, and processed.
type Service struct {
	imports    importRepo
	indicators indicatorRepo
	series     seriesRepo
	writer     observationWriter
	audit      auditLogger
	tx         txManager
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new import service.
func NewService(
	log *slog.Logger,
	imports importRepo,
	indicators indicatorRepo,
	series seriesRepo,
	writer observationWriter,
	audit auditLogger,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		imports:    imports,
		indicators: indicators,
		series:     series,
		writer:     writer,
		audit:      audit,
		tx:         tx,
		cfg:        cfg,
		log:        log.With("service", "importer"),
	}
}

// GetImport returns one import with its validation report.
func (s *Service) GetImport(ctx context.Context, id int64) (*domain.Import, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	imp, err := s.imports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("import %d: %w", id, err)
	}
	return imp, nil
}

// ListImports returns imports newest first. File contents are not loaded.
func (s *Service) ListImports(ctx context.Context, filter domain.ImportFilter) ([]domain.Import, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown import status")
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, domain.NewValidationError("limit", "limit and offset must not be negative")
	}
	list, err := s.imports.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list imports: %w", err)
	}
	return list, nil
}

// setStatus moves an import to status under a row lock and records the
// transition. The lock re-checks the status so concurrent stages cannot
// both succeed.
func (s *Service) setStatus(ctx context.Context, id int64, status domain.ImportStatus, report *domain.ValidationReport) (*domain.Import, error) {
	var updated *domain.Import
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.imports.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("import %d: %w", id, err)
		}
		if !domain.CanTransitionImport(current.Status, status) {
			return domain.NewInvalidTransition(domain.EntityTypeImport, id, string(current.Status), string(status))
		}

		updated, err = s.imports.UpdateStatus(txCtx, id, status, report)
		if err != nil {
			return fmt.Errorf("update import %d: %w", id, err)
		}

		return s.logTransition(txCtx, current, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) logTransition(ctx context.Context, from, to *domain.Import) error {
	err := s.audit.Log(ctx, domain.AuditEntry{
		EntityType: domain.EntityTypeImport,
		EntityID:   strconv.FormatInt(to.ID, 10),
		Action:     domain.AuditActionTransition,
		OldData:    from.Snapshot(),
		NewData:    to.Snapshot(),
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
