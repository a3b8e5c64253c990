package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
)

// CreateCategory adds a thematic category.
func (s *Service) CreateCategory(ctx context.Context, input CreateTermInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.taxonomy.CreateCategory(txCtx, strings.TrimSpace(input.Code), strings.TrimSpace(input.Name))
		if err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return s.logTerm(txCtx, domain.EntityTypeCategory, created.ID, created.Code, created.Name)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created", slog.Int64("category_id", created.ID), slog.String("code", created.Code))
	return created, nil
}

// ListCategories returns all categories ordered by code.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	list, err := s.taxonomy.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// CreateSector adds an economic sector.
func (s *Service) CreateSector(ctx context.Context, input CreateTermInput) (*domain.Sector, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Sector
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.taxonomy.CreateSector(txCtx, strings.TrimSpace(input.Code), strings.TrimSpace(input.Name))
		if err != nil {
			return fmt.Errorf("create sector: %w", err)
		}
		return s.logTerm(txCtx, domain.EntityTypeSector, created.ID, created.Code, created.Name)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "sector created", slog.Int64("sector_id", created.ID), slog.String("code", created.Code))
	return created, nil
}

// ListSectors returns all sectors ordered by code.
func (s *Service) ListSectors(ctx context.Context) ([]domain.Sector, error) {
	list, err := s.taxonomy.ListSectors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}
	return list, nil
}

func (s *Service) logTerm(ctx context.Context, entity domain.EntityType, id int64, code, name string) error {
	err := s.audit.Log(ctx, domain.AuditEntry{
		EntityType: entity,
		EntityID:   strconv.FormatInt(id, 10),
		Action:     domain.AuditActionCreate,
		NewData:    map[string]any{"id": id, "code": code, "name": name},
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}
