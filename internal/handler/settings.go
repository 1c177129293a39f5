package handler

import (
	"log/slog"
	"net/http"

	"github.com/tmackenzie/chorekeeper/internal/middleware"
	"github.com/tmackenzie/chorekeeper/internal/store"
)

type SettingsHandler struct {
	settings *store.SettingsStore
	logger   *slog.Logger
}

func NewSettingsHandler(settings *store.SettingsStore, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

// SetPIN handles PUT /api/settings/pin. Changing an existing PIN
// requires the old one, enforced by the PIN middleware on the route.
func (h *SettingsHandler) SetPIN(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PIN string `json:"pin"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if len(req.PIN) != 4 || !isDigits(req.PIN) {
		writeError(w, http.StatusBadRequest, "PIN must be exactly 4 digits")
		return
	}

	hash, err := middleware.HashPIN(req.PIN)
	if err != nil {
		h.logger.Error("hash PIN", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to hash PIN")
		return
	}

	if err := h.settings.Set(store.SettingParentPIN, hash); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save PIN")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearPIN handles DELETE /api/settings/pin
func (h *SettingsHandler) ClearPIN(w http.ResponseWriter, r *http.Request) {
	if err := h.settings.Delete(store.SettingParentPIN); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear PIN")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PINStatus handles GET /api/settings/pin
func (h *SettingsHandler) PINStatus(w http.ResponseWriter, r *http.Request) {
	hash, err := h.settings.Get(store.SettingParentPIN)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check PIN")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"pin_set": hash != ""})
}
