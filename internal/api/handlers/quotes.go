package handlers

import (
	"net/http"
	"strings"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/apperrors"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
)

// QuotesHandler handles live quote requests.
type QuotesHandler struct {
	chain *quotes.Chain
}

// NewQuotesHandler creates a new QuotesHandler
func NewQuotesHandler(chain *quotes.Chain) *QuotesHandler {
	return &QuotesHandler{chain: chain}
}

// Quotes returns current quotes for the requested symbols.
//
// Endpoint: GET /api/quotes?symbols=AAPL,MSFT
// Error: 400 Bad Request when symbols is missing or empty
func (h *QuotesHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	symbols := splitSymbols(r.URL.Query().Get("symbols"))
	if len(symbols) == 0 {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrMissingSymbols.Error(), "")
		return
	}

	result, err := h.chain.Fetch(r.Context(), symbols)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, apperrors.ErrProviderUnavailable.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, result)
}

// splitSymbols parses a comma-separated symbol list, dropping empty entries.
func splitSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			symbols = append(symbols, trimmed)
		}
	}
	return symbols
}
