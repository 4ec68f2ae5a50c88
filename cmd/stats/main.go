package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/AMRENE5435/marrakech.reviews/internal/stats"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	statsURL := os.Getenv("STATS_URL")
	if statsURL == "" {
		port := os.Getenv("APP_PORT")
		if port == "" {
			port = "8080"
		}
		statsURL = "http://localhost:" + port + "/api/v1/stats"
	}

	logger.Info("Collecting statistics...", zap.String("url", statsURL))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	statistics, err := fetchStats(ctx, statsURL)
	if err != nil {
		logger.Fatal("Failed to collect statistics", zap.Error(err))
	}

	outputFormat := os.Getenv("OUTPUT_FORMAT")
	if outputFormat == "" {
		outputFormat = "json"
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(statistics); err != nil {
			logger.Fatal("Failed to encode statistics", zap.Error(err))
		}
	case "text", "human":
		printHumanReadable(statistics)
	default:
		logger.Fatal("Unknown output format", zap.String("format", outputFormat))
	}
}

func fetchStats(ctx context.Context, url string) (*stats.Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var s stats.Stats
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode statistics: %w", err)
	}
	return &s, nil
}

func printHumanReadable(s *stats.Stats) {
	fmt.Println("=== Application Statistics ===")
	fmt.Printf("Timestamp: %s\n", s.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Println()

	fmt.Println("--- Memory Statistics ---")
	fmt.Printf("Allocated:        %s\n", formatBytes(s.Memory.Alloc))
	fmt.Printf("Total Allocated:  %s\n", formatBytes(s.Memory.TotalAlloc))
	fmt.Println()

	fmt.Println("--- Content API Statistics ---")
	fmt.Printf("Total Requests:  %d\n", s.Upstream.TotalRequests)
	for outcome, count := range s.Upstream.Outcomes {
		fmt.Printf("  %-23s: %10d\n", outcome, count)
	}
	if s.Upstream.BreakerState != "" {
		fmt.Printf("Circuit Breaker: %s\n", s.Upstream.BreakerState)
	}
	fmt.Println()
	fmt.Println("Endpoint Statistics:")
	for _, ep := range s.Upstream.Endpoints {
		fmt.Printf("  %-25s: %10d requests, %d failed\n", ep.Name, ep.Requests, ep.Failures)
	}
	fmt.Println()

	fmt.Println("--- Aggregation Statistics ---")
	for aggregate, count := range s.Aggregation.Fallbacks {
		fmt.Printf("  %-25s: %10d fallbacks\n", aggregate, count)
	}
	fmt.Println()

	fmt.Println("--- Runtime Statistics ---")
	fmt.Printf("Goroutines:      %d\n", s.Runtime.NumGoroutines)
	fmt.Printf("Uptime:          %ds\n", s.Runtime.UptimeSeconds)
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
