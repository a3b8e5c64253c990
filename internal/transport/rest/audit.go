package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pgic/pgic-backend/internal/domain"
)

type auditService interface {
	History(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditEntry, error)
	Correlated(ctx context.Context, correlationID uuid.UUID) ([]domain.AuditEntry, error)
}

// AuditHandler serves read access to the audit trail.
type AuditHandler struct {
	svc auditService
	log *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditService, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{svc: svc, log: logger.With("handler", "audit")}
}

// History handles GET /api/audit?entity_type&entity_id&limit, newest first.
func (h *AuditHandler) History(w http.ResponseWriter, r *http.Request) {
	q := newQueryParser(r)
	entityType := domain.EntityType(q.stringValue("entity_type"))
	entityID := q.stringValue("entity_id")
	limit := q.intValue("limit", 0)
	if err := q.err(); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.History(r.Context(), entityType, entityID, limit)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Correlated handles GET /api/audit/correlations/{id}: every entry written
// by one logical operation, such as an import merge.
func (h *AuditHandler) Correlated(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid correlation id")
		return
	}

	entries, err := h.svc.Correlated(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
