package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RahulAr0x/Investment-pro/internal/api/response"
	"github.com/RahulAr0x/Investment-pro/internal/validation"
)

// ValidateAlertIDMiddleware validates that the alertId URL parameter is present and is a valid UUID.
// Returns 400 Bad Request if the alert ID is missing or invalid.
// This middleware should be applied to routes that require a valid alert ID in the URL path.
//
// Example usage in router:
//
//	r.Route("/{alertId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateAlertIDMiddleware)
//	    r.Delete("/", handler.DeleteAlert)
//	})
func ValidateAlertIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		alertID := chi.URLParam(r, "alertId")

		if alertID == "" {
			response.RespondError(w, http.StatusBadRequest, "valid alert ID is required", "")
			return
		}

		if err := validation.ValidateAlertID(alertID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid alert ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
