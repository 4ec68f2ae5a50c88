package tripadvisor

import (
	"errors"
	"fmt"
)

// ErrMissingLocationID is returned when a per-location call is given an empty id
var ErrMissingLocationID = errors.New("location id is required")

// UpstreamRequestError is the single failure type of every content API call.
// StatusCode is set for non-2xx responses; Err is set for transport, decode
// and circuit breaker failures.
type UpstreamRequestError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *UpstreamRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("TripAdvisor API request %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("TripAdvisor API error on %s: %s", e.Endpoint, e.Status)
}

func (e *UpstreamRequestError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err wraps an UpstreamRequestError
func IsUpstreamError(err error) bool {
	var upstreamErr *UpstreamRequestError
	return errors.As(err, &upstreamErr)
}
