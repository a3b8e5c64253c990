// Package audit records and reads the append-only change history of
// catalog entities, observations and imports.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/pkg/ctxutil"
)

type auditRepo interface {
	Create(ctx context.Context, e domain.AuditEntry) (*domain.AuditEntry, error)
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditEntry, error)
	ListByCorrelation(ctx context.Context, correlationID uuid.UUID) ([]domain.AuditEntry, error)
}

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Service writes audit entries inside the caller's transaction and serves history reads.
type Service struct {
	repo auditRepo
	log  *slog.Logger
}

// NewService creates a new audit service.
func NewService(log *slog.Logger, repo auditRepo) *Service {
	return &Service{
		repo: repo,
		log:  log.With("service", "audit"),
	}
}

// Log persists one audit entry. Actor, client IP and correlation id are taken
// from ctx when the entry does not set them. Call it with the transaction
// context of the mutation it describes so both commit or roll back together.
func (s *Service) Log(ctx context.Context, e domain.AuditEntry) error {
	if err := validateEntry(e); err != nil {
		return err
	}

	if e.ActorUserID == nil {
		if actorID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
			e.ActorUserID = &actorID
		}
	}
	if e.IPAddress == nil {
		if ip := ctxutil.ClientIPFromCtx(ctx); ip != "" {
			e.IPAddress = &ip
		}
	}
	if e.CorrelationID == nil {
		if id, ok := ctxutil.CorrelationIDFromCtx(ctx); ok {
			e.CorrelationID = &id
		}
	}

	if _, err := s.repo.Create(ctx, e); err != nil {
		return fmt.Errorf("create audit entry: %w", err)
	}
	return nil
}

// History returns the change history of one entity, newest first.
func (s *Service) History(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditEntry, error) {
	var errs []domain.FieldError
	if !entityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if strings.TrimSpace(entityID) == "" {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}

	entries, err := s.repo.ListByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit history: %w", err)
	}
	return entries, nil
}

// Correlated returns every entry written by one logical operation, such as an import merge.
func (s *Service) Correlated(ctx context.Context, correlationID uuid.UUID) ([]domain.AuditEntry, error) {
	if correlationID == uuid.Nil {
		return nil, domain.NewValidationError("correlation_id", "required")
	}
	entries, err := s.repo.ListByCorrelation(ctx, correlationID)
	if err != nil {
		return nil, fmt.Errorf("list correlated audit entries: %w", err)
	}
	return entries, nil
}

func validateEntry(e domain.AuditEntry) error {
	var errs []domain.FieldError
	if !e.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if e.EntityID == "" {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if !e.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Message: "unknown action"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
