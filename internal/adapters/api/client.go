package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

const requestIDHeader = "X-Request-ID"

// Client talks to the HyperFocus stats service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient creates a new stats service client.
func NewClient(cfg Config, logger ports.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("stats service URL not configured")
	}
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("parsing stats service URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Fetch issues a GET for path with the given query parameters.
func (c *Client) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &domain.FetchError{Path: path, Err: fmt.Errorf("creating request: %w", err)}
	}
	return c.do(req, path)
}

// Submit issues a write. A nil body sends no payload.
func (c *Client) Submit(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.FetchError{Path: path, Err: fmt.Errorf("encoding body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &domain.FetchError{Path: path, Err: fmt.Errorf("creating request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) (json.RawMessage, error) {
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("api request", "method", req.Method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Path: path, Err: describeTransportError(err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{Path: path, Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("api response", "path", path, "status", resp.StatusCode, "request_id", requestID)
		return nil, &domain.FetchError{Status: resp.StatusCode, Path: path}
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(data) {
		return nil, &domain.FetchError{Path: path, Err: errors.New("decoding response: invalid JSON")}
	}

	return json.RawMessage(data), nil
}

func describeTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("request timed out: %w", err)
	}
	return fmt.Errorf("executing request: %w", err)
}
