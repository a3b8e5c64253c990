package rest

import (
	"context"
	"iter"
	"log/slog"
	"net/http"
	"time"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/observation"
)

type observationService interface {
	Append(ctx context.Context, input observation.AppendInput) (*domain.Observation, error)
	CurrentValue(ctx context.Context, seriesID int64, period time.Time, vis domain.Visibility) (*domain.Observation, bool, error)
	Revisions(ctx context.Context, seriesID int64, period time.Time) ([]domain.Observation, error)
	Range(ctx context.Context, input observation.RangeInput) (iter.Seq2[domain.Point, error], error)
	IndicatorData(ctx context.Context, input observation.RangeInput) (iter.Seq2[domain.SeriesPoint, error], error)
}

// ObservationHandler serves revision appends and time-series reads.
type ObservationHandler struct {
	svc observationService
	log *slog.Logger
}

// NewObservationHandler creates an ObservationHandler.
func NewObservationHandler(svc observationService, logger *slog.Logger) *ObservationHandler {
	return &ObservationHandler{svc: svc, log: logger.With("handler", "observation")}
}

type appendRequest struct {
	PeriodDate string          `json:"period_date"`
	Value      *domain.Decimal `json:"value"`
}

// Append handles POST /api/series/{id}/observations.
// Every call stores a new revision; earlier ones are kept.
func (h *ObservationHandler) Append(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	var req appendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var errs []domain.FieldError
	period, err := domain.ParsePeriodDate(req.PeriodDate)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "period_date", Message: "must be YYYY-MM-DD"})
	}
	if req.Value == nil {
		errs = append(errs, domain.FieldError{Field: "value", Message: "required"})
	}
	if len(errs) > 0 {
		writeServiceError(w, r, h.log, domain.NewValidationErrors(errs))
		return
	}

	obs, err := h.svc.Append(r.Context(), observation.AppendInput{
		SeriesID:   id,
		PeriodDate: period,
		Value:      *req.Value,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, obs)
}

// Current handles GET /api/series/{id}/current?period_date&visibility.
func (h *ObservationHandler) Current(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	q := newQueryParser(r)
	period := q.dateValue("period_date")
	if period == nil {
		q.fail("period_date", "required")
	}
	vis := visibility(q)
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	obs, found, err := h.svc.CurrentValue(r.Context(), id, *period, vis)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "no value for period")
		return
	}
	writeJSON(w, http.StatusOK, obs)
}

// Revisions handles GET /api/series/{id}/revisions?period_date.
func (h *ObservationHandler) Revisions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	q := newQueryParser(r)
	period := q.dateValue("period_date")
	if period == nil {
		q.fail("period_date", "required")
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	revs, err := h.svc.Revisions(r.Context(), id, *period)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, revs)
}

// SeriesData handles GET /api/series/{id}/data?start&end&visibility.
// Visibility defaults to published.
func (h *ObservationHandler) SeriesData(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	q := newQueryParser(r)
	in := observation.RangeInput{
		ID:         id,
		Start:      q.dateValue("start"),
		End:        q.dateValue("end"),
		Visibility: visibility(q),
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	points, err := h.svc.Range(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	streamJSON(w, r, h.log, points)
}

// IndicatorData handles GET /api/data?indicator_id&start&end: published
// values of every series of one indicator.
func (h *ObservationHandler) IndicatorData(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	var id int64
	if p := q.int64Value("indicator_id"); p != nil {
		id = *p
	}
	in := observation.RangeInput{
		ID:         id,
		Start:      q.dateValue("start"),
		End:        q.dateValue("end"),
		Visibility: domain.VisibilityPublished,
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	points, err := h.svc.IndicatorData(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	streamJSON(w, r, h.log, points)
}

func visibility(q *queryParser) domain.Visibility {
	v := domain.Visibility(q.stringValue("visibility"))
	if v == "" {
		return domain.VisibilityPublished
	}
	if !v.IsValid() {
		q.fail("visibility", "must be any or published")
	}
	return v
}
