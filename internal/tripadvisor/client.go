package tripadvisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/config"
	"github.com/AMRENE5435/marrakech.reviews/internal/metrics"
	"github.com/AMRENE5435/marrakech.reviews/internal/model"
)

// ContentAPI defines the content API operations used by the service layer
type ContentAPI interface {
	SearchLocations(ctx context.Context, params SearchParams) (*model.Envelope[model.Location], error)
	GetLocationDetails(ctx context.Context, locationID, language string) (*model.Location, error)
	GetLocationPhotos(ctx context.Context, locationID, language string) (*model.Envelope[model.Photo], error)
	GetLocationReviews(ctx context.Context, locationID, language string, limit int) (*model.Envelope[model.Review], error)
	SearchRestaurants(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error)
	SearchHotels(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error)
	SearchAttractions(ctx context.Context, query string, limit int) (*model.Envelope[model.Location], error)
	GetNearbyLocations(ctx context.Context, params NearbyParams) (*model.Envelope[model.Location], error)
}

// Client talks to the TripAdvisor Content API. It never retries: every
// failure is returned to the caller as an *UpstreamRequestError.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	logger     *zap.Logger
}

// NewClient creates a content API client from configuration
func NewClient(cfg config.TripAdvisorConfig, logger *zap.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		language:   language,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("tripadvisor"),
	}
	if cfg.BreakerEnabled {
		c.breaker = newBreaker(c.logger)
	}
	return c
}

// fetch issues the request, through the circuit breaker when one is configured
func (c *Client) fetch(ctx context.Context, req *apiRequest) ([]byte, error) {
	reqURL := req.buildURL(c.baseURL, c.apiKey)
	start := time.Now()

	var (
		body []byte
		err  error
	)
	if c.breaker != nil {
		body, err = c.breaker.Execute(func() ([]byte, error) {
			return executeRequest(ctx, c.httpClient, req.endpoint, reqURL)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = &UpstreamRequestError{Endpoint: req.endpoint, Err: fmt.Errorf("circuit breaker open: %w", err)}
		}
	} else {
		body, err = executeRequest(ctx, c.httpClient, req.endpoint, reqURL)
	}

	elapsed := time.Since(start)
	metrics.UpstreamDuration.WithLabelValues(req.route).Observe(elapsed.Seconds())
	metrics.UpstreamRequests.WithLabelValues(req.route, outcome(err)).Inc()

	if err != nil {
		c.logger.Warn("content API request failed",
			zap.String("endpoint", req.endpoint),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug("content API request",
		zap.String("endpoint", req.endpoint),
		zap.String("params", req.params.Encode()),
		zap.Duration("elapsed", elapsed),
	)
	return body, nil
}

// getJSON fetches and decodes a response into T
func getJSON[T any](ctx context.Context, c *Client, req *apiRequest) (*T, error) {
	body, err := c.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &UpstreamRequestError{Endpoint: req.endpoint, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return &result, nil
}

// getEnvelope fetches a {data: [...]} response; a missing data field becomes an empty list
func getEnvelope[T any](ctx context.Context, c *Client, req *apiRequest) (*model.Envelope[T], error) {
	env, err := getJSON[model.Envelope[T]](ctx, c, req)
	if err != nil {
		return nil, err
	}
	env.Data = env.Items()
	return env, nil
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var upstreamErr *UpstreamRequestError
	if errors.As(err, &upstreamErr) {
		switch {
		case upstreamErr.StatusCode != 0:
			return "http_error"
		case errors.Is(upstreamErr.Err, gobreaker.ErrOpenState), errors.Is(upstreamErr.Err, gobreaker.ErrTooManyRequests):
			return "rejected"
		}
	}
	return "transport_error"
}
