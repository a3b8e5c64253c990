// Package observation appends revisions to data series and resolves their
// current values for readers.
package observation

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"time"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/pkg/retry"
)

type seriesRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.DataSeries, error)
	LockTarget(ctx context.Context, seriesID int64) (*domain.SeriesTarget, error)
}

type indicatorRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Indicator, error)
}

type observationRepo interface {
	Append(ctx context.Context, in domain.NewObservation) (*domain.Observation, error)
	CurrentValue(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error)
	Revisions(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error)
	Range(ctx context.Context, seriesID int64, start, end *time.Time, vis domain.Visibility) iter.Seq2[domain.Point, error]
	IndicatorRange(ctx context.Context, indicatorID int64, start, end *time.Time, vis domain.Visibility) iter.Seq2[domain.SeriesPoint, error]
}

type auditLogger interface {
	Log(ctx context.Context, entry domain.AuditEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the revisioned observation store.
type Service struct {
	series       seriesRepo
	indicators   indicatorRepo
	observations observationRepo
	audit        auditLogger
	tx           txManager
	retry        retry.Config
	log          *slog.Logger
}

// NewService creates a new observation service. retryCfg bounds the
// re-execution of an append that lost a revision-number race.
func NewService(
	log *slog.Logger,
	series seriesRepo,
	indicators indicatorRepo,
	observations observationRepo,
	audit auditLogger,
	tx txManager,
	retryCfg retry.Config,
) *Service {
	return &Service{
		series:       series,
		indicators:   indicators,
		observations: observations,
		audit:        audit,
		tx:           tx,
		retry:        retryCfg,
		log:          log.With("service", "observation"),
	}
}

// Append stores the next revision of (series, period) in its own transaction.
// A lost race on the revision number is retried with a fresh transaction.
func (s *Service) Append(ctx context.Context, input AppendInput) (*domain.Observation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	attempts := 0
	obs, err := retry.DoIf(ctx, s.retry, isConflict, func() (*domain.Observation, error) {
		attempts++
		var written *domain.Observation
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var err error
			written, err = s.AppendInTx(txCtx, input, domain.AuditActionCreate)
			return err
		})
		return written, err
	})
	if err != nil {
		if isConflict(err) {
			s.log.WarnContext(ctx, "append gave up after revision conflicts",
				slog.Int64("series_id", input.SeriesID),
				slog.String("period_date", input.PeriodDate.Format(domain.DateLayout)),
				slog.Int("attempts", attempts),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "observation appended",
		slog.Int64("series_id", obs.SeriesID),
		slog.String("period_date", obs.PeriodDate.Format(domain.DateLayout)),
		slog.Int("revision", int(obs.RevisionNumber)),
		slog.Int("attempts", attempts),
	)
	return obs, nil
}

// AppendInTx appends one revision using the transaction carried by ctx and
// writes one audit entry with the given action. Callers merging a batch use
// it to keep every row in a single transaction.
func (s *Service) AppendInTx(ctx context.Context, input AppendInput, action domain.AuditAction) (*domain.Observation, error) {
	target, err := s.series.LockTarget(ctx, input.SeriesID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("series %d: %w", input.SeriesID, domain.ErrUnknownSeries)
	}
	if err != nil {
		return nil, fmt.Errorf("lock series %d: %w", input.SeriesID, err)
	}
	if !target.Series.IsActive {
		return nil, fmt.Errorf("series %d is inactive: %w", input.SeriesID, domain.ErrUnknownSeries)
	}
	if target.IndicatorState == domain.WorkflowArchived {
		return nil, fmt.Errorf("indicator %d: %w", target.Series.IndicatorID, domain.ErrArchived)
	}
	if err := input.Value.CheckPrecision(int(target.Series.Decimals)); err != nil {
		return nil, domain.NewValidationError("value", err.Error())
	}

	obs, err := s.observations.Append(ctx, domain.NewObservation{
		SeriesID:   input.SeriesID,
		PeriodDate: input.PeriodDate,
		Value:      input.Value,
		Status:     target.IndicatorState,
	})
	if err != nil {
		return nil, fmt.Errorf("append observation: %w", err)
	}

	auditErr := s.audit.Log(ctx, domain.AuditEntry{
		EntityType: domain.EntityTypeObservation,
		EntityID:   strconv.FormatInt(obs.ID, 10),
		Action:     action,
		NewData:    obs.Snapshot(),
	})
	if auditErr != nil {
		return nil, fmt.Errorf("audit log: %w", auditErr)
	}
	return obs, nil
}

// CurrentValue returns the highest revision of (series, period) visible under
// vis. ok is false when none qualifies.
func (s *Service) CurrentValue(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error) {
	if err := validateRead(seriesID, vis); err != nil {
		return nil, false, err
	}
	obs, ok, err := s.observations.CurrentValue(ctx, seriesID, period, vis)
	if err != nil {
		return nil, false, fmt.Errorf("current value: %w", err)
	}
	return obs, ok, nil
}

// Revisions returns every stored revision of (series, period), oldest first.
func (s *Service) Revisions(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error) {
	if seriesID <= 0 {
		return nil, domain.NewValidationError("series_id", "required")
	}
	if _, err := s.series.GetByID(ctx, seriesID); err != nil {
		return nil, fmt.Errorf("series %d: %w", seriesID, err)
	}
	list, err := s.observations.Revisions(ctx, seriesID, period)
	if err != nil {
		return nil, fmt.Errorf("revisions: %w", err)
	}
	return list, nil
}

// Range returns a restartable sequence of the current value of every period
// of a series within the input bounds, ascending by period.
func (s *Service) Range(ctx context.Context, input RangeInput) (iter.Seq2[domain.Point, error], error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.series.GetByID(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("series %d: %w", input.ID, err)
	}
	return s.observations.Range(ctx, input.ID, input.Start, input.End, input.Visibility), nil
}

// IndicatorData returns the published current values of every series of an
// indicator within the input bounds.
func (s *Service) IndicatorData(ctx context.Context, input RangeInput) (iter.Seq2[domain.SeriesPoint, error], error) {
	input.Visibility = domain.VisibilityPublished
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.indicators.GetByID(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("indicator %d: %w", input.ID, err)
	}
	return s.observations.IndicatorRange(ctx, input.ID, input.Start, input.End, input.Visibility), nil
}

func isConflict(err error) bool {
	return errors.Is(err, domain.ErrConcurrencyConflict)
}

func validateRead(seriesID int64, vis domain.Visibility) error {
	var errs []domain.FieldError
	if seriesID <= 0 {
		errs = append(errs, domain.FieldError{Field: "series_id", Message: "required"})
	}
	if !vis.IsValid() {
		errs = append(errs, domain.FieldError{Field: "visibility", Message: "must be any or published"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
