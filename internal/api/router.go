package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/RahulAr0x/Investment-pro/internal/api/handlers"
	custommiddleware "github.com/RahulAr0x/Investment-pro/internal/api/middleware"
	"github.com/RahulAr0x/Investment-pro/internal/chart"
	"github.com/RahulAr0x/Investment-pro/internal/config"
	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/portfolio"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
	"github.com/RahulAr0x/Investment-pro/internal/service"
	"github.com/RahulAr0x/Investment-pro/internal/settings"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

// Services bundles everything the router exposes over HTTP.
type Services struct {
	System    *service.SystemService
	Quotes    *quotes.Chain
	Forex     *forex.Chain
	Chart     *chart.Service
	Portfolio *portfolio.Service
	Watchlist *watchlist.Service
	Settings  *settings.Service
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		quotesHandler := handlers.NewQuotesHandler(svcs.Quotes)
		r.Get("/quotes", quotesHandler.Quotes)

		forexHandler := handlers.NewForexHandler(svcs.Forex)
		r.Get("/forex", forexHandler.Rates)

		chartHandler := handlers.NewChartHandler(svcs.Chart)
		r.Get("/chart", chartHandler.Series)

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(svcs.Portfolio)
			r.Get("/holdings", portfolioHandler.Holdings)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/metrics", portfolioHandler.Metrics)
			r.Get("/growth", portfolioHandler.Growth)
		})

		watchlistHandler := handlers.NewWatchlistHandler(svcs.Watchlist)
		r.Route("/watchlist", func(r chi.Router) {
			r.Get("/{list}", watchlistHandler.Items)
			r.Post("/{list}", watchlistHandler.AddItem)
			r.Delete("/{list}/{symbol}", watchlistHandler.RemoveItem)
		})
		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", watchlistHandler.Alerts)
			r.Post("/", watchlistHandler.CreateAlert)
			r.Route("/{alertId}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateAlertIDMiddleware)
				r.Delete("/", watchlistHandler.DeleteAlert)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			settingsHandler := handlers.NewSettingsHandler(svcs.Settings)
			r.Get("/", settingsHandler.Get)
			r.Put("/", settingsHandler.Update)
		})
	})

	return r
}
