package handler

import (
	"log/slog"
	"net/http"

	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/service"
)

type ApprovalHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewApprovalHandler(svc *service.Service, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{svc: svc, logger: logger}
}

// List handles GET /api/approvals
func (h *ApprovalHandler) List(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.svc.PendingApprovals()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list approvals")
		return
	}
	if approvals == nil {
		approvals = []model.PendingApproval{}
	}
	writeJSON(w, http.StatusOK, approvals)
}

// Get handles GET /api/approvals/{id}
func (h *ApprovalHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Approval(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get approval")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "approval not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Approve handles POST /api/approvals/{id}/approve
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	achieved, err := h.svc.Approve(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if achieved == nil {
		achieved = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rewards_achieved": achieved})
}

// Reject handles POST /api/approvals/{id}/reject
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	decodeJSON(r, &req)

	if err := h.svc.Reject(r.PathValue("id"), req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetRejected handles POST /api/approvals/reset-rejected. Every
// rejected chore goes back to pending for another attempt.
func (h *ApprovalHandler) ResetRejected(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ResetRejected()
	if err != nil {
		h.logger.Error("reset rejected", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reset rejected chores")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"reset": n})
}
