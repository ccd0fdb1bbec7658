package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/settings"
)

// SettingsHandler handles dashboard settings HTTP requests.
type SettingsHandler struct {
	settingsService *settings.Service
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settings.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the current settings. The AlphaVantage API key is masked so
// the plaintext never leaves the server.
//
// Endpoint: GET /api/settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.settingsService.Get()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	if current.AlphaVantageKey != "" {
		current.AlphaVantageKey = maskKey(current.AlphaVantageKey)
	}
	response.RespondJSON(w, http.StatusOK, current)
}

// Update validates and persists new settings.
//
// Endpoint: PUT /api/settings
// Error: 400 Bad Request when validation fails
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.settingsService.Update(req); err != nil {
		if errors.Is(err, apperrors.ErrInvalidSettings) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidSettings.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// maskKey keeps the last four characters of an API key visible.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
