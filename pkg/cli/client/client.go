package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the scanner API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client. A timeout of zero leaves requests
// unbounded on the client side; the scanner enforces its own limits.
func NewClient(baseURL string, timeout time.Duration) *Client {
	// Remove trailing slash from base URL
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the scanner base URL the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// buildRequest creates an HTTP request with proper headers
func (c *Client) buildRequest(ctx context.Context, method, path string, query url.Values) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// doRequest performs an HTTP request and decodes a JSON body into result.
// Every failure is returned as a *ScanError.
func (c *Client) doRequest(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(req.Context(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return classifyTransportError(req.Context(), err)
	}

	// Check for HTTP errors
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errorResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &errorResp); err == nil && errorResp.Error != "" {
			return newServerError(resp.StatusCode, errorResp.Error)
		}
		errorMsg := strings.TrimSpace(string(body))
		if errorMsg == "" {
			errorMsg = resp.Status
		}
		return newServerError(resp.StatusCode, errorMsg)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return newMalformedResponseError("response is not valid JSON", err)
		}
	}

	return nil
}

// doGetRequest performs a GET request
func (c *Client) doGetRequest(ctx context.Context, path string, query url.Values, result interface{}) error {
	req, err := c.buildRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return newNetworkError(err, false)
	}

	return c.doRequest(req, result)
}

func classifyTransportError(ctx context.Context, err error) *ScanError {
	if errors.Is(ctx.Err(), context.Canceled) {
		return newCancelledError(err)
	}
	var netErr net.Error
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
	return newNetworkError(err, timeout)
}
