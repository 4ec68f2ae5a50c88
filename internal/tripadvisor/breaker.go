package tripadvisor

import (
	"context"
	"errors"
	"net/http"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/metrics"
)

const breakerName = "tripadvisor-api"

// newBreaker opens after a 60% failure rate over at least 10 requests and
// probes again after 2 minutes. It short-circuits calls but never retries them.
func newBreaker(logger *zap.Logger) *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		IsSuccessful: isBreakerSuccess,
		IsExcluded:   isBreakerExcluded,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state transition",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

// isBreakerSuccess reports whether err leaves the upstream looking healthy.
// Client errors other than 429 are the caller's fault, not the upstream's.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var upstreamErr *UpstreamRequestError
	if !errors.As(err, &upstreamErr) {
		return false
	}
	status := upstreamErr.StatusCode
	return status >= 400 && status < 500 && status != http.StatusTooManyRequests
}

// isBreakerExcluded drops requests abandoned by their caller from the counts
func isBreakerExcluded(err error) bool {
	return errors.Is(err, context.Canceled)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
