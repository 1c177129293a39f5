package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/tmackenzie/chorekeeper/internal/model"
	"github.com/tmackenzie/chorekeeper/internal/service"
)

type RewardHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewRewardHandler(svc *service.Service, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{svc: svc, logger: logger}
}

type rewardRequest struct {
	Kind                  string `json:"kind"`
	Title                 string `json:"title"`
	Description           string `json:"description"`
	Cost                  int    `json:"cost"`
	RequiredCompletions   int    `json:"required_completions"`
	RequiredStreakDays    int    `json:"required_streak_days"`
	RequiredChoreType     string `json:"required_chore_type"`
	CreateCalendarEvent   bool   `json:"create_calendar_event"`
	CalendarDurationHours int    `json:"calendar_duration_hours"`
}

// Create handles POST /api/rewards. The kind decides which threshold
// field is honored.
func (h *RewardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req rewardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	var (
		reward *model.Reward
		err    error
	)
	switch model.RewardKind(req.Kind) {
	case model.RewardPoints:
		reward, err = h.svc.AddPointReward(req.Title, req.Description, req.Cost, req.CreateCalendarEvent, req.CalendarDurationHours)
	case model.RewardCompletions:
		reward, err = h.svc.AddCompletionReward(req.Title, req.Description, req.RequiredCompletions, req.RequiredChoreType, req.CreateCalendarEvent, req.CalendarDurationHours)
	case model.RewardStreak:
		reward, err = h.svc.AddStreakReward(req.Title, req.Description, req.RequiredStreakDays, req.RequiredChoreType, req.CreateCalendarEvent, req.CalendarDurationHours)
	default:
		writeError(w, http.StatusBadRequest, "kind must be points, completions, or streak")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, reward)
}

// List handles GET /api/rewards
func (h *RewardHandler) List(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.svc.Rewards()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list rewards")
		return
	}
	if rewards == nil {
		rewards = []model.Reward{}
	}
	writeJSON(w, http.StatusOK, rewards)
}

// Get handles GET /api/rewards/{id}
func (h *RewardHandler) Get(w http.ResponseWriter, r *http.Request) {
	reward, err := h.svc.Reward(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get reward")
		return
	}
	if reward == nil {
		writeError(w, http.StatusNotFound, "reward not found")
		return
	}
	writeJSON(w, http.StatusOK, reward)
}

// Delete handles DELETE /api/rewards/{id}
func (h *RewardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteReward(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Claim handles POST /api/rewards/{id}/claim
func (h *RewardHandler) Claim(w http.ResponseWriter, r *http.Request) {
	var req struct {
		KidID string `json:"kid_id"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.KidID == "" {
		writeError(w, http.StatusBadRequest, "kid_id is required")
		return
	}

	balance, err := h.svc.ClaimReward(req.KidID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"kid_id": req.KidID, "points": balance})
}

// Progress handles GET /api/kids/{id}/progress
func (h *RewardHandler) Progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.ProgressByKid(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list progress")
		return
	}
	if progress == nil {
		progress = []model.RewardProgress{}
	}
	writeJSON(w, http.StatusOK, progress)
}
