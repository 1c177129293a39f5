package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/service"
)

type ChoreHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewChoreHandler(svc *service.Service, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{svc: svc, logger: logger}
}

type choreRequest struct {
	KidID     string `json:"kid_id"`
	Title     string `json:"title"`
	Points    int    `json:"points"`
	ChoreType string `json:"chore_type"`
}

// Create handles POST /api/chores
func (h *ChoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req choreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.KidID == "" {
		writeError(w, http.StatusBadRequest, "kid_id is required")
		return
	}

	c, err := h.svc.CreatePendingChore(req.KidID, req.Title, req.Points, req.ChoreType)
	if err != nil {
		h.logger.Error("create chore", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create chore")
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// List handles GET /api/chores, optionally filtered with ?kid_id=
func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	chores, err := h.svc.PendingChores(r.URL.Query().Get("kid_id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list chores")
		return
	}
	if chores == nil {
		chores = []model.PendingChore{}
	}
	writeJSON(w, http.StatusOK, chores)
}

// Get handles GET /api/chores/{id}
func (h *ChoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.PendingChore(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get chore")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "chore not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Claim handles POST /api/chores/{id}/claim. The chore moves to
// completed and an approval is queued for a parent.
func (h *ChoreHandler) Claim(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.RequestApproval(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Complete handles POST /api/chores/{id}/complete. Points are awarded
// immediately without a parent sign-off.
func (h *ChoreHandler) Complete(w http.ResponseWriter, r *http.Request) {
	achieved, err := h.svc.CompleteChore(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if achieved == nil {
		achieved = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"rewards_achieved": achieved})
}

type recurringRequest struct {
	KidID     string `json:"kid_id"`
	Title     string `json:"title"`
	Points    int    `json:"points"`
	ChoreType string `json:"chore_type"`
	Schedule  string `json:"schedule"`
	DayOfWeek *int   `json:"day_of_week"`
}

// CreateRecurring handles POST /api/recurring-chores
func (h *ChoreHandler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req recurringRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.KidID == "" {
		writeError(w, http.StatusBadRequest, "kid_id is required")
		return
	}

	c, err := h.svc.CreateRecurringChore(req.KidID, req.Title, req.Points, req.ChoreType, model.Schedule(req.Schedule), req.DayOfWeek)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ListRecurring handles GET /api/recurring-chores
func (h *ChoreHandler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	chores, err := h.svc.RecurringChores()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list recurring chores")
		return
	}
	if chores == nil {
		chores = []model.RecurringChore{}
	}
	writeJSON(w, http.StatusOK, chores)
}

// SetRecurringEnabled handles PUT /api/recurring-chores/{id}/enabled
func (h *ChoreHandler) SetRecurringEnabled(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.svc.SetRecurringEnabled(r.PathValue("id"), req.Enabled); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteRecurring handles DELETE /api/recurring-chores/{id}
func (h *ChoreHandler) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRecurringChore(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateDaily handles POST /api/recurring-chores/generate/daily.
// Every call hands out a fresh round of instances; the scheduler is the
// normal once-per-day caller.
func (h *ChoreHandler) GenerateDaily(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.GenerateDaily()
	if err != nil {
		h.logger.Error("generate daily chores", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate chores")
		return
	}
	if created == nil {
		created = []model.PendingChore{}
	}
	writeJSON(w, http.StatusOK, created)
}

// GenerateWeekly handles POST /api/recurring-chores/generate/weekly.
// The target day defaults to today and can be overridden with ?day=
// (0=Monday..6=Sunday).
func (h *ChoreHandler) GenerateWeekly(w http.ResponseWriter, r *http.Request) {
	day := model.MondayIndex(time.Now().Weekday())
	if d := r.URL.Query().Get("day"); d != "" {
		if len(d) != 1 || !isDigits(d) || d[0] > '6' {
			writeError(w, http.StatusBadRequest, "day must be 0..6")
			return
		}
		day = int(d[0] - '0')
	}

	created, err := h.svc.GenerateWeekly(day)
	if err != nil {
		h.logger.Error("generate weekly chores", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to generate chores")
		return
	}
	if created == nil {
		created = []model.PendingChore{}
	}
	writeJSON(w, http.StatusOK, created)
}
