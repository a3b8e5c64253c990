package rest

import (
	"encoding/json"
	"errors"
	"io"
	"iter"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pgic/pgic-backend/internal/domain"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps domain errors to HTTP statuses. Anything unmapped
// is logged and reported as 500 without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validation *domain.ValidationError
		transition *domain.InvalidTransitionError
	)
	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation failed"}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.As(err, &transition):
		writeError(w, http.StatusConflict, transition.Error())
	case errors.Is(err, domain.ErrUnknownSeries):
		writeError(w, http.StatusNotFound, "unknown series")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateCode):
		writeError(w, http.StatusConflict, "code already in use")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrArchived):
		writeError(w, http.StatusConflict, "indicator is archived")
	case errors.Is(err, domain.ErrAlreadyProcessed):
		writeError(w, http.StatusConflict, "import already processed")
	case errors.Is(err, domain.ErrConcurrencyConflict):
		writeError(w, http.StatusConflict, "concurrent write, retry")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// streamJSON writes seq as a JSON array without buffering it. An error on the
// first element still produces a normal error response; a later one aborts
// the connection because the status line is already sent.
func streamJSON[T any](w http.ResponseWriter, r *http.Request, log *slog.Logger, seq iter.Seq2[T, error]) {
	next, stop := iter.Pull2(seq)
	defer stop()

	item, err, ok := next()
	if ok && err != nil {
		writeServiceError(w, r, log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)

	io.WriteString(w, "[") //nolint:errcheck
	for n := 0; ok; n++ {
		if n > 0 {
			io.WriteString(w, ",") //nolint:errcheck
		}
		if err := enc.Encode(item); err != nil {
			return
		}
		item, err, ok = next()
		if ok && err != nil {
			log.ErrorContext(r.Context(), "stream aborted",
				slog.String("path", r.URL.Path),
				slog.Int("written", n+1),
				slog.String("error", err.Error()),
			)
			panic(http.ErrAbortHandler)
		}
	}
	io.WriteString(w, "]") //nolint:errcheck
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// pathID parses a positive int64 URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryParser collects query-string conversion errors into one validation error.
type queryParser struct {
	r    *http.Request
	errs []domain.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (p *queryParser) fail(field, msg string) {
	p.errs = append(p.errs, domain.FieldError{Field: field, Message: msg})
}

func (p *queryParser) intValue(name string, def int) int {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, "must be an integer")
		return def
	}
	return n
}

func (p *queryParser) int64Value(name string) *int64 {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(name, "must be an integer")
		return nil
	}
	return &n
}

func (p *queryParser) boolValue(name string) bool {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, "must be a boolean")
	}
	return b
}

func (p *queryParser) dateValue(name string) *time.Time {
	v := p.r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	d, err := domain.ParsePeriodDate(v)
	if err != nil {
		p.fail(name, "must be YYYY-MM-DD")
		return nil
	}
	return &d
}

func (p *queryParser) stringValue(name string) string {
	return p.r.URL.Query().Get(name)
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return domain.NewValidationErrors(p.errs)
}
