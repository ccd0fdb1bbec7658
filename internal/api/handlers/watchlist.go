package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/validation"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

// WatchlistHandler handles watchlist and alert HTTP requests.
type WatchlistHandler struct {
	watchlistService *watchlist.Service
}

// NewWatchlistHandler creates a new WatchlistHandler
func NewWatchlistHandler(watchlistService *watchlist.Service) *WatchlistHandler {
	return &WatchlistHandler{watchlistService: watchlistService}
}

func listName(r *http.Request) string {
	if list := chi.URLParam(r, "list"); list != "" {
		return list
	}
	return watchlist.DefaultList
}

// Items returns the symbols on a watchlist.
//
// Endpoint: GET /api/watchlist/{list}
func (h *WatchlistHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.watchlistService.Items(listName(r))
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]any{
		"list":  listName(r),
		"items": items,
	})
}

// AddItemRequest is the add-to-watchlist payload.
type AddItemRequest struct {
	Symbol string `json:"symbol"`
}

// AddItem puts a symbol on a watchlist.
//
// Endpoint: POST /api/watchlist/{list}
// Error: 400 Bad Request when the symbol is missing
func (h *WatchlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Symbol == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrMissingSymbol.Error(), "")
		return
	}
	if err := validation.ValidateSymbol(req.Symbol); err != nil {
		response.RespondError(w, http.StatusBadRequest, validation.ErrInvalidSymbol.Error(), err.Error())
		return
	}

	if err := h.watchlistService.Add(listName(r), req.Symbol); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, map[string]string{
		"list":   listName(r),
		"symbol": req.Symbol,
	})
}

// RemoveItem takes a symbol off a watchlist.
//
// Endpoint: DELETE /api/watchlist/{list}/{symbol}
// Error: 404 Not Found when the symbol is not on the list
func (h *WatchlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	removed, err := h.watchlistService.Remove(listName(r), symbol)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	if !removed {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrWatchlistItemNotFound.Error(), symbol)
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}

// Alerts returns alerts, optionally only the active ones.
//
// Endpoint: GET /api/alerts?active=true
func (h *WatchlistHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	alerts, err := h.watchlistService.Alerts(activeOnly)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, map[string]any{"alerts": alerts})
}

// CreateAlertRequest is the alert creation payload.
type CreateAlertRequest struct {
	Symbol    string  `json:"symbol"`
	Type      string  `json:"type"`
	Condition float64 `json:"condition"`
	Message   string  `json:"message"`
}

// CreateAlert registers a new alert.
//
// Endpoint: POST /api/alerts
// Error: 400 Bad Request for a missing symbol or unknown alert type
func (h *WatchlistHandler) CreateAlert(w http.ResponseWriter, r *http.Request) {
	var req CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Symbol == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrMissingSymbol.Error(), "")
		return
	}
	if err := validation.ValidateSymbol(req.Symbol); err != nil {
		response.RespondError(w, http.StatusBadRequest, validation.ErrInvalidSymbol.Error(), err.Error())
		return
	}

	alertType := model.AlertType(req.Type)
	switch alertType {
	case model.AlertPriceAbove, model.AlertPriceBelow, model.AlertVolumeSpike:
	default:
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidAlertType.Error(), req.Type)
		return
	}

	alert, err := h.watchlistService.CreateAlert(req.Symbol, alertType, req.Condition, req.Message)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusCreated, alert)
}

// DeleteAlert removes an alert by ID.
//
// Endpoint: DELETE /api/alerts/{alertId}
// Error: 404 Not Found for an unknown alert ID
func (h *WatchlistHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	alertID := chi.URLParam(r, "alertId")

	deleted, err := h.watchlistService.DeleteAlert(alertID)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrDatabaseOperation.Error(), err.Error())
		return
	}
	if !deleted {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrAlertNotFound.Error(), alertID)
		return
	}
	response.RespondJSON(w, http.StatusNoContent, nil)
}
