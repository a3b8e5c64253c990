package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
)

// CreateSeries adds a data series to an indicator that is not archived.
func (s *Service) CreateSeries(ctx context.Context, input CreateSeriesInput) (*domain.DataSeries, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft := domain.DataSeries{
		IndicatorID: input.IndicatorID,
		Code:        strings.TrimSpace(input.Code),
		Name:        strings.TrimSpace(input.Name),
		Decimals:    defaultDecimals,
		IsActive:    true,
	}
	if input.Decimals != nil {
		draft.Decimals = *input.Decimals
	}
	if input.IsActive != nil {
		draft.IsActive = *input.IsActive
	}

	var created *domain.DataSeries
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureEditable(txCtx, input.IndicatorID); err != nil {
			return err
		}

		var err error
		created, err = s.series.Create(txCtx, draft)
		if err != nil {
			return fmt.Errorf("create series: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeSeries,
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

	s.log.InfoContext(ctx, "series created",
		slog.Int64("series_id", created.ID),
		slog.Int64("indicator_id", created.IndicatorID),
		slog.String("code", created.Code),
	)

	return created, nil
}

// UpdateSeries changes the name, precision or active flag of a series.
func (s *Service) UpdateSeries(ctx context.Context, input UpdateSeriesInput) (*domain.DataSeries, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.DataSeries
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.series.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("series %d: %w", input.ID, err)
		}
		if err := s.ensureEditable(txCtx, old.IndicatorID); err != nil {
			return err
		}

		updated, err = s.series.Update(txCtx, input.ID, domain.SeriesUpdateParams{
			Name:     trimOrNil(input.Name),
			Decimals: input.Decimals,
			IsActive: input.IsActive,
		})
		if err != nil {
			return fmt.Errorf("update series %d: %w", input.ID, err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeSeries,
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

	s.log.InfoContext(ctx, "series updated", slog.Int64("series_id", updated.ID))

	return updated, nil
}

// GetSeries returns one series.
func (s *Service) GetSeries(ctx context.Context, id int64) (*domain.DataSeries, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	ds, err := s.series.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("series %d: %w", id, err)
	}
	return ds, nil
}

// ListSeries returns the series matching filter, ordered by id.
func (s *Service) ListSeries(ctx context.Context, filter domain.SeriesFilter) ([]domain.DataSeries, error) {
	if err := validatePage(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}
	list, err := s.series.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list series: %w", err)
	}
	return list, nil
}

// ensureEditable locks the indicator and rejects edits below an archived one.
func (s *Service) ensureEditable(ctx context.Context, indicatorID int64) error {
	ind, err := s.indicators.GetForUpdate(ctx, indicatorID)
	if err != nil {
		return fmt.Errorf("indicator %d: %w", indicatorID, err)
	}
	if ind.IsArchived {
		return fmt.Errorf("indicator %d: %w", indicatorID, domain.ErrArchived)
	}
	return nil
}
