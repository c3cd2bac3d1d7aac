// Package client implements the authenticated HTTP transport for the
// Nevent REST API. One outbound call per invocation, no retries, no cache:
// non-2xx responses are normalized into errors and everything else is
// returned verbatim.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iamsamuelfraga/mcp-nevent/internal/common"
)

// maxResponseSize caps response bodies to prevent OOM from unexpectedly
// large exports.
const maxResponseSize = 50 << 20 // 50MB

// Params maps query-parameter names to scalar values. Nil values and empty
// strings are omitted from the query string entirely.
type Params map[string]any

// RequestOptions carries the optional parts of a request.
type RequestOptions struct {
	Body   any
	Params Params
}

// Response is the normalized result of one HTTP exchange.
type Response struct {
	Data   []byte
	Status int
	OK     bool
}

// Client performs authenticated requests against the Nevent API.
// It is immutable after construction: the same token and tenant are carried
// on every request for the process lifetime, which makes it safe to share
// across concurrent tool invocations.
type Client struct {
	baseURL    string
	apiKey     string
	tenantID   string
	httpClient *http.Client
	logger     *common.Logger
}

// New creates a client targeting the given Nevent API base URL. A single
// trailing slash is stripped; the token is stored as-is without validation.
func New(baseURL, apiKey, tenantID string, logger *common.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiKey:   apiKey,
		tenantID: tenantID,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs one authenticated round trip. The query string is built from
// opts.Params (absent/nil/empty values omitted); the body is JSON-marshalled
// for non-GET methods when non-nil. GET requests never carry a body.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (*Response, error) {
	fullURL := c.baseURL + path
	if query := encodeParams(opts.Params); query != "" {
		fullURL += "?" + query
	}

	var bodyReader io.Reader
	if method != http.MethodGet && opts.Body != nil {
		jsonData, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tenantID != "" {
		req.Header.Set("X-Tenant-ID", c.tenantID)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("api request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("api request failed")
		return nil, fmt.Errorf("api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("api response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	return &Response{Data: body, Status: resp.StatusCode, OK: true}, nil
}

// Get performs a GET request and returns the response body.
func (c *Client) Get(ctx context.Context, path string, params Params) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Post performs a POST request with a JSON body and returns the response body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodPost, path, RequestOptions{Body: body})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Put performs a PUT request with a JSON body and returns the response body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodPut, path, RequestOptions{Body: body})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Patch performs a PATCH request with a JSON body and returns the response body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodPatch, path, RequestOptions{Body: body})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Delete performs a DELETE request and returns the response body.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.Do(ctx, http.MethodDelete, path, RequestOptions{})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// encodeParams builds a URL-encoded query string. Nil values and empty
// strings never appear; numbers and booleans render in their native form.
func encodeParams(params Params) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for key, val := range params {
		if val == nil {
			continue
		}
		strVal := fmt.Sprint(val)
		if strVal == "" {
			continue
		}
		values.Set(key, strVal)
	}
	return values.Encode()
}

// parseErrorResponse extracts a meaningful error message from a non-2xx
// response: the body's "message" field when present, otherwise a synthesized
// "HTTP <status>: <status text>" string. 4xx and 5xx are treated identically.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
		return fmt.Errorf("%s", errResp.Message)
	}
	return fmt.Errorf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
}
