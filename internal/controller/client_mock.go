package controller

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
)

// Call is one request observed by MockClient.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// MockClient is a mock implementation of ports.ResourceClient for testing.
// Unset funcs answer with a JSON null.
type MockClient struct {
	FetchFunc  func(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	SubmitFunc func(ctx context.Context, method, path string, body any) (json.RawMessage, error)

	mu    sync.Mutex
	calls []Call
}

func (m *MockClient) Fetch(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	m.record(Call{Method: "GET", Path: path, Query: query})
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, path, query)
	}
	return json.RawMessage("null"), nil
}

func (m *MockClient) Submit(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	m.record(Call{Method: method, Path: path, Body: body})
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, method, path, body)
	}
	return json.RawMessage("null"), nil
}

func (m *MockClient) record(c Call) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, c)
}

// Calls returns every request seen so far.
func (m *MockClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount returns how many requests hit path.
func (m *MockClient) CallCount(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c.Path == path {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
