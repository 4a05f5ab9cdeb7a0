// ABOUTME: HTTP client for the Wayfarer backend API
// ABOUTME: Shapes requests with bearer auth, request IDs, and optional SOCKS5 transport

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is the API client for the Wayfarer backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL.
// If WAYFARER_ALL_PROXY is set, requests are routed through an SSH+SOCKS5
// proxy (format: ssh+socks5://user@host:port?private-key=/path/to/key).
func New(baseURL string) *Client {
	transport := &http.Transport{}

	if allProxy := os.Getenv("WAYFARER_ALL_PROXY"); allProxy != "" {
		if dialContextFunc := createSOCKS5DialContextFunc(allProxy); dialContextFunc != nil {
			transport.DialContext = dialContextFunc
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// SetTimeout overrides the default per-request timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// HealthResponse represents the /health endpoint response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Health calls the /health endpoint
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", "", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// do issues one request and decodes a 2xx JSON response into out.
// A non-empty token is sent as a bearer Authorization header. Non-2xx
// responses come back as *Error; transport failures keep their own type so
// callers can tell "server said no" from "no response".
func (c *Client) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeErrorResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// decodeErrorResponse parses the backend's {"detail": "..."} error body
func decodeErrorResponse(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}

	return apiErr
}
