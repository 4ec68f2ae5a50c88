package tripadvisor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// maxErrorBodySize limits how much of an error response is kept for diagnostics
const maxErrorBodySize = 64 * 1024

// apiRequest holds the endpoint and query parameters of one content API call.
// route is the endpoint template used for logs and metric labels.
type apiRequest struct {
	route    string
	endpoint string
	params   url.Values
}

func newAPIRequest(route, endpoint string) *apiRequest {
	return &apiRequest{
		route:    route,
		endpoint: endpoint,
		params:   url.Values{},
	}
}

// addParam adds a parameter, omitting empty values
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// addIntParam adds an integer parameter, omitting non-positive values
func (r *apiRequest) addIntParam(key string, value int) *apiRequest {
	if value > 0 {
		r.params.Set(key, strconv.Itoa(value))
	}
	return r
}

// buildURL constructs the full URL with the API key appended
func (r *apiRequest) buildURL(baseURL, apiKey string) string {
	params := url.Values{}
	for key, values := range r.params {
		params[key] = values
	}
	params.Set("key", apiKey)
	return fmt.Sprintf("%s%s?%s", baseURL, r.endpoint, params.Encode())
}

// readBodyForError reads at most maxErrorBodySize bytes of an error response
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return string(body)
}

// executeRequest performs the GET and returns the body of a 2xx response
func executeRequest(ctx context.Context, client *http.Client, endpoint, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &UpstreamRequestError{Endpoint: endpoint, Err: fmt.Errorf("create request failed: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &UpstreamRequestError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamRequestError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       readBodyForError(resp.Body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamRequestError{Endpoint: endpoint, Err: fmt.Errorf("read body failed: %w", err)}
	}
	return body, nil
}
