package apiclient

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/feedline-dev/feedline/internal/middleware/metrics"
)

// APIClient handles all communication with the remote post/comment service.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// New creates a new client for interacting with the remote service.
func New(baseURL string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		HttpClient: &http.Client{},
	}
}

// do is the single, unified helper for making API requests. endpoint is the
// route shape used for metrics labels; path is the concrete request path.
func (c *APIClient) do(ctx context.Context, method, endpoint, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveRemote(method, endpoint, err, 0)
		return nil, fmt.Errorf("remote service unavailable: %w", err)
	}
	metrics.ObserveRemote(method, endpoint, nil, resp.StatusCode)
	return resp, nil
}
