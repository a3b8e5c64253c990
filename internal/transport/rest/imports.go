package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/pgic/pgic-backend/internal/domain"
	"github.com/pgic/pgic-backend/internal/service/importer"
)

type importService interface {
	Upload(ctx context.Context, input importer.UploadInput) (*domain.Import, error)
	GetImport(ctx context.Context, id int64) (*domain.Import, error)
	ListImports(ctx context.Context, filter domain.ImportFilter) ([]domain.Import, error)
	Validate(ctx context.Context, id int64) (*domain.Import, error)
	Process(ctx context.Context, id int64) (*domain.Import, error)
}

// ImportHandler serves the import pipeline stages.
type ImportHandler struct {
	svc         importService
	maxFileSize int64
	log         *slog.Logger
}

// NewImportHandler creates an ImportHandler. Request bodies above maxFileSize
// are refused with 413 before reaching the service.
func NewImportHandler(svc importService, maxFileSize int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, maxFileSize: maxFileSize, log: logger.With("handler", "import")}
}

// Upload handles POST /api/imports?indicator_id&file_name with the raw file as body.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	var indicatorID int64
	if p := q.int64Value("indicator_id"); p != nil {
		indicatorID = *p
	}
	fileName := q.stringValue("file_name")
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxFileSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	imp, err := h.svc.Upload(r.Context(), importer.UploadInput{
		IndicatorID: indicatorID,
		FileName:    fileName,
		Content:     content,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, imp)
}

// GetImport handles GET /api/imports/{id}.
func (h *ImportHandler) GetImport(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.GetImport, http.StatusOK)
}

// ListImports handles GET /api/imports?indicator_id&status&limit&offset.
func (h *ImportHandler) ListImports(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	filter := domain.ImportFilter{
		IndicatorID: q.int64Value("indicator_id"),
		Limit:       q.intValue("limit", 0),
		Offset:      q.intValue("offset", 0),
	}
	if v := q.stringValue("status"); v != "" {
		status := domain.ImportStatus(v)
		filter.Status = &status
	}
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.svc.ListImports(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Validate handles POST /api/imports/{id}/validate.
func (h *ImportHandler) Validate(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Validate, http.StatusOK)
}

// Process handles POST /api/imports/{id}/process.
func (h *ImportHandler) Process(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Process, http.StatusOK)
}

func (h *ImportHandler) byID(w http.ResponseWriter, r *http.Request, fn func(context.Context, int64) (*domain.Import, error), status int) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid import id")
		return
	}
	imp, err := fn(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, status, imp)
}
