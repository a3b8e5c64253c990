// Package workflow moves indicators through the editorial lifecycle and
// publishes their validated observations.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/pgic/pgic-backend/internal/domain"
)

type indicatorRepo interface {
	GetForUpdate(ctx context.Context, id int64) (*domain.Indicator, error)
	ApplyTransition(ctx context.Context, id int64, to domain.WorkflowState) (*domain.Indicator, error)
}

type observationRepo interface {
	PromoteValidated(ctx context.Context, indicatorID int64) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies workflow transitions.
type Service struct {
	indicators   indicatorRepo
	observations observationRepo
	audit        auditLogger
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new workflow service.
func NewService(
	log *slog.Logger,
	indicators indicatorRepo,
	observations observationRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		indicators:   indicators,
		observations: observations,
		audit:        audit,
		tx:           tx,
		log:          log.With("service", "workflow"),
	}
}

// Transition moves an indicator to target. The indicator row is locked for
// the whole transaction; an invalid move returns *domain.InvalidTransitionError
// and writes nothing. Publishing also promotes every validated, unpublished
// observation of the indicator.
func (s *Service) Transition(ctx context.Context, indicatorID int64, target domain.WorkflowState) (*domain.Indicator, error) {
	if indicatorID <= 0 {
		return nil, domain.NewValidationError("indicator_id", "required")
	}
	if !target.IsValid() {
		return nil, domain.NewValidationError("target_state", "unknown workflow state")
	}

	var (
		from     domain.WorkflowState
		updated  *domain.Indicator
		promoted int64
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.indicators.GetForUpdate(txCtx, indicatorID)
		if err != nil {
			return fmt.Errorf("indicator %d: %w", indicatorID, err)
		}
		from = current.WorkflowState

		if !domain.CanTransition(from, target) {
			return domain.NewInvalidTransition(domain.EntityTypeIndicator, indicatorID, string(from), string(target))
		}

		updated, err = s.indicators.ApplyTransition(txCtx, indicatorID, target)
		if err != nil {
			return fmt.Errorf("apply transition on indicator %d: %w", indicatorID, err)
		}

		if target == domain.WorkflowPublished {
			promoted, err = s.observations.PromoteValidated(txCtx, indicatorID)
			if err != nil {
				return fmt.Errorf("promote observations of indicator %d: %w", indicatorID, err)
			}
		}

		newData := updated.Snapshot()
		if target == domain.WorkflowPublished {
			newData["promoted_observations"] = promoted
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeIndicator,
			EntityID:   strconv.FormatInt(indicatorID, 10),
			Action:     domain.AuditActionTransition,
			OldData:    current.Snapshot(),
			NewData:    newData,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "indicator transitioned",
		slog.Int64("indicator_id", indicatorID),
		slog.String("from", string(from)),
		slog.String("to", string(target)),
		slog.Int64("promoted_observations", promoted),
	)

	return updated, nil
}
