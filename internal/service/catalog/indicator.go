package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
)

// CreateIndicator registers a new indicator in the draft state.
func (s *Service) CreateIndicator(ctx context.Context, input CreateIndicatorInput) (*domain.Indicator, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	freq, _ := domain.ParseFrequency(input.Frequency)
	draft := domain.Indicator{
		Code:        strings.TrimSpace(input.Code),
		Name:        strings.TrimSpace(input.Name),
		Description: trimOrNil(input.Description),
		Frequency:   freq,
		Unit:        strings.TrimSpace(input.Unit),
		BaseYear:    input.BaseYear,
		Source:      strings.TrimSpace(input.Source),
		Methodology: trimOrNil(input.Methodology),
		CategoryID:  input.CategoryID,
		SectorID:    input.SectorID,
	}

	var created *domain.Indicator
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.indicators.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create indicator: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeIndicator,
			EntityID:   strconv.FormatInt(created.ID, 10),
			Action:     domain.AuditActionCreate,
			NewData:    created.Snapshot(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "indicator created",
		slog.Int64("indicator_id", created.ID),
		slog.String("code", created.Code),
		slog.String("frequency", string(created.Frequency)),
	)

	return created, nil
}

// UpdateIndicator changes descriptive and taxonomy fields of an indicator.
// Workflow fields are only changed by workflow transitions.
func (s *Service) UpdateIndicator(ctx context.Context, input UpdateIndicatorInput) (*domain.Indicator, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Indicator
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.indicators.GetForUpdate(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("indicator %d: %w", input.ID, err)
		}
		if old.IsArchived {
			return fmt.Errorf("indicator %d: %w", input.ID, domain.ErrArchived)
		}

		updated, err = s.indicators.Update(txCtx, input.ID, input.params())
		if err != nil {
			return fmt.Errorf("update indicator %d: %w", input.ID, err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeIndicator,
			EntityID:   strconv.FormatInt(input.ID, 10),
			Action:     domain.AuditActionUpdate,
			OldData:    old.Snapshot(),
			NewData:    updated.Snapshot(),
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "indicator updated", slog.Int64("indicator_id", updated.ID))

	return updated, nil
}

// GetIndicator returns one indicator.
func (s *Service) GetIndicator(ctx context.Context, id int64) (*domain.Indicator, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	ind, err := s.indicators.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("indicator %d: %w", id, err)
	}
	return ind, nil
}

// ListIndicators returns the indicators matching filter, ordered by code.
func (s *Service) ListIndicators(ctx context.Context, filter domain.IndicatorFilter) ([]domain.Indicator, error) {
	if err := validatePage(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}
	if filter.Frequency != nil && !filter.Frequency.IsValid() {
		return nil, domain.NewValidationError("frequency", "unknown frequency")
	}
	filter.Query = strings.TrimSpace(filter.Query)

	list, err := s.indicators.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list indicators: %w", err)
	}
	return list, nil
}
