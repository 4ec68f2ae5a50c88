package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/service"
	"github.com/AMRENE5435/marrakech.reviews/internal/tripadvisor"
)

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Error encoding response", zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeServiceError maps a service failure to a status code
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	fields := []zap.Field{zap.String("request_id", RequestIDFromContext(r.Context())), zap.Error(err)}

	var (
		upstreamErr *tripadvisor.UpstreamRequestError
		aggErr      *service.AggregationError
	)
	switch {
	case errors.Is(err, tripadvisor.ErrMissingLocationID):
		http.Error(w, "location id is required", http.StatusBadRequest)
	case errors.As(err, &aggErr):
		h.logger.Warn(msg, fields...)
		http.Error(w, "upstream service unavailable", http.StatusBadGateway)
	case errors.As(err, &upstreamErr):
		if upstreamErr.StatusCode == http.StatusNotFound {
			http.Error(w, "location not found", http.StatusNotFound)
			return
		}
		h.logger.Warn(msg, fields...)
		http.Error(w, "upstream service unavailable", http.StatusBadGateway)
	default:
		h.logger.Error(msg, fields...)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
