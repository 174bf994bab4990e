// Package imagery provides an HTTP client for the external image-lookup
// service. The scheduling engine never calls it; only the image-attachment
// use case does.
package imagery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"taskpath/internal/domain"
)

// Ensure Client implements domain.ImageLookup.
var _ domain.ImageLookup = (*Client)(nil)

// Client queries the image-lookup service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// searchResponse is the service's search payload.
type searchResponse struct {
	Results []struct {
		URL string `json:"url"`
	} `json:"results"`
}

// New creates a new Client for the given service base URL.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Search returns the URL of the first image matching the query.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", domain.ErrEmptyQuery
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	u = u.JoinPath("search")
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search request: unexpected status %s", resp.Status)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Results) == 0 {
		return "", fmt.Errorf("%w: %q", domain.ErrImageNotFound, query)
	}

	return payload.Results[0].URL, nil
}
