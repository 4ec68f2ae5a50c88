package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/stats"
)

// StatsHandler handles statistics requests
type StatsHandler struct {
	collector *stats.Collector
	logger    *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(collector *stats.Collector, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{collector: collector, logger: logger}
}

// GetStats handles GET /api/v1/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.collector.Collect(r.Context())
	if err != nil {
		h.logger.Error("Error collecting statistics", zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
		http.Error(w, "failed to collect statistics", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("Error encoding statistics", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
}
