package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/RahulAr0x/Investment-pro/internal/api/middleware"
)

func requestWithAlertID(alertID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/test", nil)
	rctx := chi.NewRouteContext()
	if alertID != "" {
		rctx.URLParams.Add("alertId", alertID)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestValidateAlertIDMiddleware(t *testing.T) {
	t.Run("passes through valid alert ID", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
			w.WriteHeader(http.StatusOK)
		})

		mw := middleware.ValidateAlertIDMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithAlertID("550e8400-e29b-41d4-a716-446655440000"))

		if !handlerCalled {
			t.Error("Expected next handler to be called")
		}
		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}
	})

	t.Run("returns 400 for invalid alert ID", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
		})

		mw := middleware.ValidateAlertIDMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithAlertID("invalid-id"))

		if handlerCalled {
			t.Error("Expected next handler NOT to be called")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 for missing alert ID", func(t *testing.T) {
		handlerCalled := false
		next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			handlerCalled = true
		})

		mw := middleware.ValidateAlertIDMiddleware(next)

		w := httptest.NewRecorder()
		mw.ServeHTTP(w, requestWithAlertID(""))

		if handlerCalled {
			t.Error("Expected next handler NOT to be called")
		}
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}
