package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when TRIPADVISOR_API_KEY is not set
var ErrMissingAPIKey = errors.New("configuration error: TRIPADVISOR_API_KEY is required")

// DefaultBaseURL is the content API root
const DefaultBaseURL = "https://api.content.tripadvisor.com/api/v1"

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	TripAdvisor TripAdvisorConfig
	Search      SearchConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string
	Development bool
}

// TripAdvisorConfig holds content API client settings
type TripAdvisorConfig struct {
	APIKey         string
	BaseURL        string
	Language       string
	Timeout        time.Duration
	BreakerEnabled bool
}

// SearchConfig holds interactive search box settings
type SearchConfig struct {
	Debounce    time.Duration
	InlineLimit int
	Categories  []string
}

// Load loads configuration from environment variables. A missing API key is
// reported as ErrMissingAPIKey so callers can fail at startup.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
		TripAdvisor: TripAdvisorConfig{
			APIKey:         strings.TrimSpace(os.Getenv("TRIPADVISOR_API_KEY")),
			BaseURL:        strings.TrimRight(getEnv("TRIPADVISOR_BASE_URL", DefaultBaseURL), "/"),
			Language:       getEnv("TRIPADVISOR_LANGUAGE", "en"),
			Timeout:        getEnvAsDuration("TRIPADVISOR_TIMEOUT", 15*time.Second),
			BreakerEnabled: getEnvAsBool("TRIPADVISOR_BREAKER_ENABLED", false),
		},
		Search: SearchConfig{
			Debounce:    getEnvAsDuration("SEARCH_DEBOUNCE", 500*time.Millisecond),
			InlineLimit: getEnvAsInt("SEARCH_INLINE_LIMIT", 8),
			Categories:  getEnvAsSlice("SEARCH_CATEGORIES"),
		},
	}

	if config.TripAdvisor.APIKey == "" {
		return config, ErrMissingAPIKey
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	var result []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
