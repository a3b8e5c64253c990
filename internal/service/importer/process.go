package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/observation"
	"github.com/pgic/pgic-backend/pkg/ctxutil"
)

// Process merges every accepted row of an approved import as new observation
// revisions in one transaction. All audit entries of the merge share one
// correlation id. If the merge fails the transaction rolls back and the
// import becomes rejected with the reason added to its report.
func (s *Service) Process(ctx context.Context, id int64) (*domain.Import, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	correlationID := uuid.New()
	ctx = ctxutil.WithCorrelationID(ctx, correlationID)

	var (
		processed *domain.Import
		merged    int
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		merged = 0

		imp, err := s.imports.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("import %d: %w", id, err)
		}
		if imp.Status == domain.ImportStatusProcessed {
			return fmt.Errorf("import %d: %w", id, domain.ErrAlreadyProcessed)
		}
		if imp.Status != domain.ImportStatusApproved {
			return domain.NewInvalidTransition(domain.EntityTypeImport, id, string(imp.Status), string(domain.ImportStatusProcessed))
		}
		if imp.ValidationReport == nil {
			return fmt.Errorf("import %d has no validation report: %w", id, domain.ErrConflict)
		}

		for _, row := range imp.ValidationReport.AcceptedRows() {
			input, err := appendInput(row)
			if err != nil {
				return fmt.Errorf("merge line %d: %w", row.Line, err)
			}
			if _, err := s.writer.AppendInTx(txCtx, input, domain.AuditActionMerge); err != nil {
				return fmt.Errorf("merge line %d: %w", row.Line, err)
			}
			merged++
		}

		processed, err = s.imports.UpdateStatus(txCtx, id, domain.ImportStatusProcessed, imp.ValidationReport)
		if err != nil {
			return fmt.Errorf("update import %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		if isPrecondition(err) || ctx.Err() != nil {
			return nil, err
		}
		if rejectErr := s.reject(context.WithoutCancel(ctx), id, err); rejectErr != nil {
			s.log.ErrorContext(ctx, "failed to reject import after merge failure",
				slog.Int64("import_id", id),
				slog.String("error", rejectErr.Error()),
			)
			return nil, errors.Join(fmt.Errorf("process import %d: %w", id, err), rejectErr)
		}
		s.log.WarnContext(ctx, "import merge failed, import rejected",
			slog.Int64("import_id", id),
			slog.String("correlation_id", correlationID.String()),
			slog.String("reason", err.Error()),
		)
		return nil, fmt.Errorf("process import %d: %w", id, err)
	}

	s.log.InfoContext(ctx, "import processed",
		slog.Int64("import_id", id),
		slog.Int("merged", merged),
		slog.String("correlation_id", correlationID.String()),
	)

	return processed, nil
}

// reject marks an approved import as rejected after a failed merge.
func (s *Service) reject(ctx context.Context, id int64, cause error) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.imports.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("import %d: %w", id, err)
		}
		if current.Status != domain.ImportStatusApproved {
			return nil
		}

		report := &domain.ValidationReport{}
		if current.ValidationReport != nil {
			cp := *current.ValidationReport
			report = &cp
		}
		report.AddFailure("merge failed: " + cause.Error())

		updated, err := s.imports.UpdateStatus(txCtx, id, domain.ImportStatusRejected, report)
		if err != nil {
			return fmt.Errorf("update import %d: %w", id, err)
		}
		return s.logTransition(txCtx, current, updated)
	})
}

func appendInput(row domain.ReportRow) (observation.AppendInput, error) {
	if row.SeriesID == nil {
		return observation.AppendInput{}, fmt.Errorf("series %q: %w", row.SeriesCode, domain.ErrUnknownSeries)
	}
	period, err := domain.ParsePeriodDate(row.PeriodDate)
	if err != nil {
		return observation.AppendInput{}, domain.NewValidationError("period_date", err.Error())
	}
	value, err := domain.ParseDecimal(row.Value)
	if err != nil {
		return observation.AppendInput{}, domain.NewValidationError("value", err.Error())
	}
	return observation.AppendInput{SeriesID: *row.SeriesID, PeriodDate: period, Value: value}, nil
}

// isPrecondition reports errors raised before anything was written, which
// leave the import untouched.
func isPrecondition(err error) bool {
	return errors.Is(err, domain.ErrAlreadyProcessed) ||
		errors.Is(err, domain.ErrInvalidTransition) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict)
}
