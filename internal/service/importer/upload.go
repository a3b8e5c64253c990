package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/pkg/ctxutil"
)

// UploadInput holds an uploaded file destined for one indicator.
type UploadInput struct {
	IndicatorID int64
	FileName    string
	Content     []byte
}

// Validate checks all fields and collects all errors.
func (i UploadInput) Validate(maxSize int64) error {
	var errs []domain.FieldError

	if i.IndicatorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "indicator_id", Message: "required"})
	}
	name := strings.TrimSpace(i.FileName)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	case len(name) > 255:
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "max 255 characters"})
	default:
		if _, ok := domain.FormatFromFileName(name); !ok {
			errs = append(errs, domain.FieldError{Field: "file_name", Message: "extension must be .csv or .json"})
		}
	}
	if len(i.Content) == 0 {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if maxSize > 0 && int64(len(i.Content)) > maxSize {
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d bytes", maxSize)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Upload stores a file as a new import in the uploaded status.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Import, error) {
	if err := input.Validate(s.cfg.MaxFileSize); err != nil {
		return nil, err
	}

	name := filepath.Base(strings.TrimSpace(input.FileName))
	format, _ := domain.FormatFromFileName(name)

	draft := domain.Import{
		IndicatorID: &input.IndicatorID,
		FileName:    name,
		Format:      format,
		Content:     input.Content,
	}
	if actorID, ok := ctxutil.ActorIDFromCtx(ctx); ok {
		draft.UploadedBy = &actorID
	}

	var created *domain.Import
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ind, err := s.indicators.GetByID(txCtx, input.IndicatorID)
		if err != nil {
			return fmt.Errorf("indicator %d: %w", input.IndicatorID, err)
		}
		if ind.IsArchived {
			return fmt.Errorf("indicator %d: %w", input.IndicatorID, domain.ErrArchived)
		}

		created, err = s.imports.Create(txCtx, draft)
		if err != nil {
			return fmt.Errorf("create import: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditEntry{
			EntityType: domain.EntityTypeImport,
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

	s.log.InfoContext(ctx, "import uploaded",
		slog.Int64("import_id", created.ID),
		slog.Int64("indicator_id", input.IndicatorID),
		slog.String("file_name", created.FileName),
		slog.Int("size_bytes", len(input.Content)),
	)

	return created, nil
}
