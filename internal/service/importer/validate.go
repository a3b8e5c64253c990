package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/importfile"
)

// staleValidationAfter is how long a run may hold an import in validating
// without saving a report before another caller may take it over.
const staleValidationAfter = 15 * time.Minute

// Validate checks every row of an import against its indicator and series.
// The import is first moved to validating, which claims it against concurrent
// runs. Any rejected row rejects the whole batch. If the run stops early
// (ctx cancelled between rows, or a storage error) the partial report is
// saved under validating and the error is returned; calling Validate again
// starts over.
func (s *Service) Validate(ctx context.Context, id int64) (*domain.Import, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}

	imp, err := s.claimValidation(ctx, id)
	if err != nil {
		return nil, err
	}

	report, err := s.buildReport(ctx, imp)
	if err != nil {
		if _, saveErr := s.setStatus(context.WithoutCancel(ctx), id, domain.ImportStatusValidating, report); saveErr != nil {
			return nil, errors.Join(fmt.Errorf("validate import %d: %w", id, err), saveErr)
		}
		s.log.WarnContext(ctx, "import validation interrupted",
			slog.Int64("import_id", id),
			slog.Int("rows_checked", report.Total),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("validate import %d: %w", id, err)
	}

	status := domain.ImportStatusApproved
	if report.Rejected > 0 || len(report.Failures) > 0 || report.Total == 0 {
		status = domain.ImportStatusRejected
	}

	updated, err := s.setStatus(ctx, id, status, report)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "import validated",
		slog.Int64("import_id", id),
		slog.String("status", string(status)),
		slog.Int("total", report.Total),
		slog.Int("accepted", report.Accepted),
		slog.Int("rejected", report.Rejected),
	)

	return updated, nil
}

// claimValidation moves an import to validating with an empty report and
// records the transition. An import already in validating is taken over only
// when its last run saved an incomplete report or went stale; otherwise a run
// is in progress and ErrConflict is returned.
func (s *Service) claimValidation(ctx context.Context, id int64) (*domain.Import, error) {
	var claimed *domain.Import
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.imports.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("import %d: %w", id, err)
		}
		if !domain.CanTransitionImport(current.Status, domain.ImportStatusValidating) {
			return domain.NewInvalidTransition(domain.EntityTypeImport, id, string(current.Status), string(domain.ImportStatusValidating))
		}
		if current.Status == domain.ImportStatusValidating && !resumable(current) {
			return fmt.Errorf("import %d: validation already running: %w", id, domain.ErrConflict)
		}

		claimed, err = s.imports.UpdateStatus(txCtx, id, domain.ImportStatusValidating, nil)
		if err != nil {
			return fmt.Errorf("update import %d: %w", id, err)
		}
		return s.logTransition(txCtx, current, claimed)
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// resumable reports whether a validating import is not held by a live run.
func resumable(imp *domain.Import) bool {
	if imp.ValidationReport != nil && !imp.ValidationReport.Complete {
		return true
	}
	return time.Since(imp.UpdatedAt) > staleValidationAfter
}

// buildReport classifies every row. Batch-level problems (missing indicator,
// undecodable file, too many rows) are recorded as failures, not errors.
// A non-nil error is either ctx's error, with the partial report, or a
// storage error.
func (s *Service) buildReport(ctx context.Context, imp *domain.Import) (*domain.ValidationReport, error) {
	report := &domain.ValidationReport{Rows: make([]domain.ReportRow, 0)}
	defer func() {
		now := time.Now().UTC()
		report.ValidatedAt = &now
	}()

	if imp.IndicatorID == nil {
		report.AddFailure("indicator no longer exists")
		report.Complete = true
		return report, nil
	}

	ind, err := s.indicators.GetByID(ctx, *imp.IndicatorID)
	if errors.Is(err, domain.ErrNotFound) {
		report.AddFailure(fmt.Sprintf("indicator %d no longer exists", *imp.IndicatorID))
		report.Complete = true
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("indicator %d: %w", *imp.IndicatorID, err)
	}
	if ind.IsArchived {
		report.AddFailure(fmt.Sprintf("indicator %s is archived", ind.Code))
		report.Complete = true
		return report, nil
	}

	series, err := s.series.ListByIndicator(ctx, ind.ID)
	if err != nil {
		return report, fmt.Errorf("series of indicator %d: %w", ind.ID, err)
	}

	rows, err := importfile.Parse(imp.Format, imp.Content)
	if err != nil {
		report.AddFailure(err.Error())
		report.Complete = true
		return report, nil
	}
	switch {
	case len(rows) == 0:
		report.AddFailure("file contains no rows")
		report.Complete = true
		return report, nil
	case s.cfg.MaxRows > 0 && len(rows) > s.cfg.MaxRows:
		report.AddFailure(fmt.Sprintf("file has %d rows, max %d", len(rows), s.cfg.MaxRows))
		report.Complete = true
		return report, nil
	}

	v := newRowValidator(ind.Frequency, series)
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		v.check(report, row)
	}

	report.Complete = true
	return report, nil
}

type periodKey struct {
	seriesID int64
	period   time.Time
}

// rowValidator applies the per-row rules of one batch.
type rowValidator struct {
	frequency domain.Frequency
	series    map[string]domain.DataSeries
	seen      map[periodKey]int
}

func newRowValidator(frequency domain.Frequency, series []domain.DataSeries) *rowValidator {
	byCode := make(map[string]domain.DataSeries, len(series))
	for _, ds := range series {
		byCode[ds.Code] = ds
	}
	return &rowValidator{
		frequency: frequency,
		series:    byCode,
		seen:      make(map[periodKey]int),
	}
}

// check appends row to report as accepted or rejected.
func (v *rowValidator) check(report *domain.ValidationReport, row importfile.Row) {
	out := domain.ReportRow{
		Line:       row.Line,
		SeriesCode: strings.TrimSpace(row.SeriesCode),
		PeriodDate: strings.TrimSpace(row.PeriodDate),
		Value:      strings.TrimSpace(row.Value),
	}

	if out.SeriesCode == "" {
		report.Reject(out, "series_code is required")
		return
	}
	ds, ok := v.series[out.SeriesCode]
	if !ok {
		report.Reject(out, fmt.Sprintf("unknown series %q", out.SeriesCode))
		return
	}
	out.SeriesID = &ds.ID
	if !ds.IsActive {
		report.Reject(out, fmt.Sprintf("series %q is inactive", out.SeriesCode))
		return
	}

	period, err := domain.ParsePeriodDate(out.PeriodDate)
	if err != nil {
		report.Reject(out, fmt.Sprintf("invalid period_date %q: expected YYYY-MM-DD", out.PeriodDate))
		return
	}
	if !domain.IsAlignedTo(period, v.frequency) {
		report.Reject(out, fmt.Sprintf("period_date %s is not aligned to %s frequency: expected %s",
			out.PeriodDate, v.frequency, domain.AlignmentHint(v.frequency)))
		return
	}

	if out.Value == "" {
		report.Reject(out, "value is required")
		return
	}
	value, err := domain.ParseDecimal(out.Value)
	if err != nil {
		report.Reject(out, fmt.Sprintf("invalid value %q", out.Value))
		return
	}
	if err := value.CheckPrecision(int(ds.Decimals)); err != nil {
		report.Reject(out, err.Error())
		return
	}

	key := periodKey{seriesID: ds.ID, period: period}
	if first, dup := v.seen[key]; dup {
		report.Reject(out, fmt.Sprintf("duplicate of line %d", first))
		return
	}
	v.seen[key] = row.Line

	report.Accept(out)
}
