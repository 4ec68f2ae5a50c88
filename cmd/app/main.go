package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/api"
	"github.com/AMRENE5435/marrakech.reviews/internal/config"
	"github.com/AMRENE5435/marrakech.reviews/internal/logging"
	"github.com/AMRENE5435/marrakech.reviews/internal/service"
	"github.com/AMRENE5435/marrakech.reviews/internal/stats"
	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
	"github.com/AMRENE5435/marrakech.reviews/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client := tripadvisor.NewClient(cfg.TripAdvisor, logger)
	logger.Info("Content API client ready",
		zap.String("base_url", cfg.TripAdvisor.BaseURL),
		zap.Duration("timeout", cfg.TripAdvisor.Timeout),
		zap.Bool("circuit_breaker", cfg.TripAdvisor.BreakerEnabled),
	)

	validator, err := validation.New(logger)
	if err != nil {
		logger.Fatal("Failed to initialize validator", zap.Error(err))
	}

	svc := service.NewService(client, logger)
	statsCollector := stats.NewCollector(prometheus.DefaultGatherer)
	router := api.NewRouter(svc, validator, statsCollector, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.TripAdvisor.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
