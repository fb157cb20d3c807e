// tradeboard serves portfolio, trade and watchlist data for the trading dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/tradeboard/internal/clients/yahoo"
	"github.com/example/tradeboard/internal/config"
	"github.com/example/tradeboard/internal/modules/portfolio"
	"github.com/example/tradeboard/internal/modules/prices"
	"github.com/example/tradeboard/internal/modules/settings"
	"github.com/example/tradeboard/internal/modules/trades"
	"github.com/example/tradeboard/internal/modules/watchlist"
	"github.com/example/tradeboard/internal/scheduler"
	"github.com/example/tradeboard/internal/server"
	"github.com/example/tradeboard/internal/store"
	"github.com/example/tradeboard/pkg/logger"
)

func main() {
	// .env is optional; real deployments set variables in the environment
	_ = godotenv.Load()

	cfg, err := config.Load()

	log := logger.New(logger.Config{
		Level:  envOr("LOG_LEVEL", "info"),
		Pretty: cfg != nil && cfg.DevMode,
	})

	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().
		Str("database", cfg.DatabaseName).
		Int("port", cfg.Port).
		Dur("quote_cache_ttl", cfg.QuoteCacheTTL).
		Msg("Starting tradeboard")

	// Database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Connect(ctx, cfg.MongoURI, cfg.DatabaseName, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	db := st.Database()

	// Price resolution
	yahooClient := yahoo.NewClient(cfg.QuoteFetchTimeout, log)
	quoteCache := prices.NewQuoteCache(cfg.QuoteCacheTTL)
	priceService := prices.NewService(quoteCache, prices.NewYahooSource(yahooClient), log)

	// Repositories
	tradesRepo := trades.NewRepository(db, log)
	portfolioRepo := portfolio.NewRepository(db, log)
	watchlistRepo := watchlist.NewRepository(db, log)
	settingsRepo := settings.NewRepository(db, log)

	// Services
	valuator := portfolio.NewValuator(priceService, tradesRepo, log)
	enricher := watchlist.NewEnricher(priceService, log)

	// HTTP server
	srv := server.New(server.Config{
		Port:             cfg.Port,
		Log:              log,
		DevMode:          cfg.DevMode,
		WatchlistHandler: watchlist.NewHandler(watchlistRepo, enricher, log),
		TradesHandler:    trades.NewHandler(tradesRepo, log),
		SettingsHandler:  settings.NewHandler(settingsRepo, log),
		PortfolioHandler: portfolio.NewHandler(portfolioRepo, valuator, log),
		PricesHandler:    prices.NewHandler(priceService, log),
	})

	// Background jobs
	sched := scheduler.New(log)
	warmJob := scheduler.NewPriceWarmJob(watchlistRepo, priceService, cfg.QuoteFetchTimeout, log)
	if err := sched.AddJob(fmt.Sprintf("@every %s", cfg.QuoteCacheTTL), warmJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register price warm job")
	}
	sched.Start()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
	}

	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("MongoDB disconnect failed")
	}

	log.Info().Msg("Shutdown complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
