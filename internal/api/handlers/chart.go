package handlers

import (
	"net/http"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/chart"
	"github.com/RahulAr0x/Investment-pro/internal/model"
)

// ChartHandler handles historical series requests.
type ChartHandler struct {
	chartService *chart.Service
}

// NewChartHandler creates a new ChartHandler
func NewChartHandler(chartService *chart.Service) *ChartHandler {
	return &ChartHandler{chartService: chartService}
}

// Series returns the price series for one symbol and timeframe.
//
// Endpoint: GET /api/chart?symbol=AAPL&timeframe=1M
// Error: 400 Bad Request when symbol is missing or timeframe unsupported
func (h *ChartHandler) Series(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrMissingSymbol.Error(), "")
		return
	}

	timeframe := model.Timeframe(r.URL.Query().Get("timeframe"))
	if timeframe == "" {
		timeframe = model.Timeframe1D
	}
	if !model.ValidTimeframe(timeframe) {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidTimeframe.Error(), string(timeframe))
		return
	}

	result := h.chartService.Fetch(r.Context(), symbol, timeframe)
	response.RespondJSON(w, http.StatusOK, result)
}
