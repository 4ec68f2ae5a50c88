package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/service"
	"github.com/AMRENE5435/marrakech.reviews/internal/stats"
	"github.com/AMRENE5435/marrakech.reviews/internal/validation"
)

// NewRouter creates a new HTTP router
func NewRouter(service service.ServiceInterface, validator *validation.Validator, statsCollector *stats.Collector, logger *zap.Logger) *mux.Router {
	logger = logger.Named("api")
	handler := NewHandler(service, validator, logger)
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()
	router.Use(RequestID, Instrument(logger))

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/search", handler.Search).Methods("GET")
	v1.HandleFunc("/locations/{id}", handler.GetLocation).Methods("GET")
	v1.HandleFunc("/locations/{id}/photos", handler.GetLocationPhotos).Methods("GET")
	v1.HandleFunc("/locations/{id}/reviews", handler.GetLocationReviews).Methods("GET")
	v1.HandleFunc("/nearby", handler.Nearby).Methods("GET")
	v1.HandleFunc("/categories/{category}", handler.GetCategory).Methods("GET")
	v1.HandleFunc("/highlights", handler.GetHighlights).Methods("GET")
	v1.HandleFunc("/featured-review", handler.GetFeaturedReview).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
