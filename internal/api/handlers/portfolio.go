package handlers

import (
	"net/http"
	"strconv"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/portfolio"
)

// PortfolioHandler handles portfolio valuation requests.
type PortfolioHandler struct {
	portfolioService *portfolio.Service
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// Holdings returns every computed holding row plus portfolio totals.
//
// Endpoint: GET /api/portfolio/holdings
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Holdings())
}

// Summary returns the headline totals with formatted display strings.
//
// Endpoint: GET /api/portfolio/summary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Summary())
}

// Metrics returns portfolio and per-asset risk metrics.
//
// Endpoint: GET /api/portfolio/metrics
func (h *PortfolioHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.portfolioService.Metrics())
}

// Growth returns growth metrics for an initial deposit over a horizon.
// Defaults mirror the reference snapshot of the default portfolio.
//
// Endpoint: GET /api/portfolio/growth?initialValue=12184.06&years=4
// Error: 400 Bad Request when a parameter fails to parse
func (h *PortfolioHandler) Growth(w http.ResponseWriter, r *http.Request) {
	initialValue := model.DefaultSnapshot.InitialDepositEUR
	years := 4.0

	if raw := r.URL.Query().Get("initialValue"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidNumber.Error(), "initialValue")
			return
		}
		initialValue = parsed
	}
	if raw := r.URL.Query().Get("years"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidNumber.Error(), "years")
			return
		}
		years = parsed
	}

	response.RespondJSON(w, http.StatusOK, h.portfolioService.Growth(initialValue, years))
}
