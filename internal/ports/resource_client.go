package ports

import (
	"context"
	"encoding/json"
	"net/url"
)

// ResourceClient issues single HTTP calls against the stats service.
// Failures are returned as *domain.FetchError; nothing is retried.
type ResourceClient interface {
	// Fetch issues a GET and returns the raw JSON body.
	Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	// Submit issues a write with an optional JSON body and returns the raw JSON response.
	Submit(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}
