package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RahulAr0x/Investment-pro/internal/api"
	"github.com/RahulAr0x/Investment-pro/internal/chart"
	"github.com/RahulAr0x/Investment-pro/internal/config"
	"github.com/RahulAr0x/Investment-pro/internal/database"
	"github.com/RahulAr0x/Investment-pro/internal/forex"
	"github.com/RahulAr0x/Investment-pro/internal/model"
	"github.com/RahulAr0x/Investment-pro/internal/portfolio"
	"github.com/RahulAr0x/Investment-pro/internal/quotes"
	"github.com/RahulAr0x/Investment-pro/internal/refresh"
	"github.com/RahulAr0x/Investment-pro/internal/repository"
	"github.com/RahulAr0x/Investment-pro/internal/service"
	"github.com/RahulAr0x/Investment-pro/internal/settings"
	"github.com/RahulAr0x/Investment-pro/internal/watchlist"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	snapshotRepo := repository.NewSnapshotRepository(db)
	watchlistRepo := repository.NewWatchlistRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Create services
	systemService := service.NewSystemService(db)

	settingsService, err := settings.NewService(settingsRepo, cfg.Secrets.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to create settings service: %v", err)
	}

	quoteChain := quotes.DefaultChain(cfg.Secrets.AlphaVantageKey)
	forexChain := forex.DefaultChain()
	chartService := chart.NewService(chart.NewYahooProvider())
	watchlistService := watchlist.NewService(watchlistRepo)

	holdings := model.DefaultHoldings
	refreshService := refresh.NewService(
		quoteChain,
		forexChain,
		snapshotRepo,
		watchlistService,
		model.HoldingSymbols(holdings),
		cfg.Refresh.Interval,
	)
	if err := refreshService.Start(); err != nil {
		log.Fatalf("Failed to start refresh scheduler: %v", err)
	}
	defer refreshService.Stop()

	portfolioService := portfolio.NewService(
		refreshService,
		snapshotRepo,
		holdings,
		model.DefaultSnapshot,
	)

	// Create router
	router := api.NewRouter(api.Services{
		System:    systemService,
		Quotes:    quoteChain,
		Forex:     forexChain,
		Chart:     chartService,
		Portfolio: portfolioService,
		Watchlist: watchlistService,
		Settings:  settingsService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
