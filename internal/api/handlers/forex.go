package handlers

import (
	"net/http"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// ForexHandler handles exchange rate requests.
type ForexHandler struct {
	chain *forex.Chain
}

// NewForexHandler creates a new ForexHandler
func NewForexHandler(chain *forex.Chain) *ForexHandler {
	return &ForexHandler{chain: chain}
}

// Rates returns the current rate set for the base currency.
//
// Endpoint: GET /api/forex?base=EUR
// Error: 400 Bad Request for an unsupported base
func (h *ForexHandler) Rates(w http.ResponseWriter, r *http.Request) {
	base := model.Currency(r.URL.Query().Get("base"))
	if base == "" {
		base = model.EUR
	}
	switch base {
	case model.EUR, model.USD, model.GBP:
	default:
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidBase.Error(), string(base))
		return
	}

	result := h.chain.Fetch(r.Context(), base)
	response.RespondJSON(w, http.StatusOK, result)
}
