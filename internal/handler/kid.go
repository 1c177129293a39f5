package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/service"
)

type KidHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewKidHandler(svc *service.Service, logger *slog.Logger) *KidHandler {
	return &KidHandler{svc: svc, logger: logger}
}

type kidRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Create handles POST /api/kids. Re-posting an existing id is a no-op.
func (h *KidHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req kidRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.ID = strings.TrimSpace(req.ID)
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	if err := h.svc.EnsureKid(req.ID, req.Name); err != nil {
		h.logger.Error("ensure kid", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create kid")
		return
	}

	kid, err := h.svc.Kid(req.ID)
	if err != nil || kid == nil {
		writeError(w, http.StatusInternalServerError, "failed to load kid")
		return
	}
	writeJSON(w, http.StatusCreated, kid)
}

// List handles GET /api/kids
func (h *KidHandler) List(w http.ResponseWriter, r *http.Request) {
	kids, err := h.svc.Kids()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list kids")
		return
	}
	if kids == nil {
		kids = []model.Kid{}
	}
	writeJSON(w, http.StatusOK, kids)
}

// Get handles GET /api/kids/{id}
func (h *KidHandler) Get(w http.ResponseWriter, r *http.Request) {
	kid, err := h.svc.Kid(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get kid")
		return
	}
	if kid == nil {
		writeError(w, http.StatusNotFound, "kid not found")
		return
	}
	writeJSON(w, http.StatusOK, kid)
}

// Balance handles GET /api/kids/{id}/points
func (h *KidHandler) Balance(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	balance, err := h.svc.Balance(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get balance")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"kid_id": id, "points": balance})
}

// Ledger handles GET /api/kids/{id}/ledger
func (h *KidHandler) Ledger(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Ledger(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list ledger")
		return
	}
	if entries == nil {
		entries = []model.LedgerEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

type pointsRequest struct {
	Amount int    `json:"amount"`
	Reason string `json:"reason"`
	Kind   string `json:"kind"`
}

// AddPoints handles POST /api/kids/{id}/points
func (h *KidHandler) AddPoints(w http.ResponseWriter, r *http.Request) {
	h.adjustPoints(w, r, h.svc.AddPoints)
}

// RemovePoints handles POST /api/kids/{id}/points/remove. The amount is
// a positive magnitude to subtract.
func (h *KidHandler) RemovePoints(w http.ResponseWriter, r *http.Request) {
	h.adjustPoints(w, r, h.svc.RemovePoints)
}

func (h *KidHandler) adjustPoints(w http.ResponseWriter, r *http.Request, op func(string, int, string, model.LedgerKind) (int, error)) {
	id := r.PathValue("id")

	var req pointsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Kind == "" {
		req.Kind = string(model.KindAdjust)
	}

	balance, err := op(id, req.Amount, req.Reason, model.LedgerKind(req.Kind))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"kid_id": id, "points": balance})
}
