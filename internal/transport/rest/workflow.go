package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pgic/pgic-backend/internal/domain"
)

type workflowService interface {
	Transition(ctx context.Context, indicatorID int64, target domain.WorkflowState) (*domain.Indicator, error)
}

type indicatorReader interface {
	GetIndicator(ctx context.Context, id int64) (*domain.Indicator, error)
}

// WorkflowHandler serves indicator lifecycle transitions.
type WorkflowHandler struct {
	svc     workflowService
	catalog indicatorReader
	log     *slog.Logger
}

// NewWorkflowHandler creates a WorkflowHandler.
func NewWorkflowHandler(svc workflowService, catalog indicatorReader, logger *slog.Logger) *WorkflowHandler {
	return &WorkflowHandler{svc: svc, catalog: catalog, log: logger.With("handler", "workflow")}
}

type transitionRequest struct {
	TargetState string `json:"target_state"`
}

type allowedTransition struct {
	To         domain.WorkflowState `json:"to"`
	Capability domain.Capability    `json:"capability"`
}

type transitionsResponse struct {
	Current domain.WorkflowState `json:"current"`
	Allowed []allowedTransition  `json:"allowed"`
}

// Transition handles POST /api/indicators/{id}/transitions.
func (h *WorkflowHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid indicator id")
		return
	}
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ind, err := h.svc.Transition(r.Context(), id, domain.WorkflowState(req.TargetState))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ind)
}

// Allowed handles GET /api/indicators/{id}/transitions: the states reachable
// from the current one and the capability each move requires.
func (h *WorkflowHandler) Allowed(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid indicator id")
		return
	}

	ind, err := h.catalog.GetIndicator(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := transitionsResponse{Current: ind.WorkflowState, Allowed: []allowedTransition{}}
	for _, next := range domain.NextStates(ind.WorkflowState) {
		capability, _ := domain.RequiredCapability(ind.WorkflowState, next)
		resp.Allowed = append(resp.Allowed, allowedTransition{To: next, Capability: capability})
	}
	writeJSON(w, http.StatusOK, resp)
}
