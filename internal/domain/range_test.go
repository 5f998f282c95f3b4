package domain

import (
	"errors"
	"testing"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		input    string
		expected Range
		wantErr  bool
	}{
		{"", Range7d, false},
		{"7d", Range7d, false},
		{"30d", Range30d, false},
		{"90d", Range90d, false},
		{"14d", "", true},
		{"7", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestParseInterruptionType(t *testing.T) {
	for _, it := range InterruptionTypes() {
		got, err := ParseInterruptionType(string(it))
		if err != nil || got != it {
			t.Errorf("ParseInterruptionType(%q) = %q, %v", it, got, err)
		}
	}

	if _, err := ParseInterruptionType("meeting"); !IsValidation(err) {
		t.Errorf("expected validation error for unknown type, got %v", err)
	}
}

func TestFetchError(t *testing.T) {
	cause := errors.New("connection refused")
	tests := []struct {
		name     string
		err      *FetchError
		expected string
		status   int
	}{
		{"status", &FetchError{Status: 404, Path: "/users/1"}, "/users/1: unexpected status 404", 404},
		{"network", &FetchError{Path: "/users/1", Err: cause}, "/users/1: connection refused", NoStatus},
		{"bare", &FetchError{Path: "/users/1"}, "/users/1: request failed", NoStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.expected)
			}
			wrapped := errors.Join(errors.New("context"), tt.err)
			if StatusOf(wrapped) != tt.status {
				t.Errorf("StatusOf() = %d, want %d", StatusOf(wrapped), tt.status)
			}
		})
	}

	if !errors.Is(&FetchError{Path: "/x", Err: cause}, cause) {
		t.Error("FetchError should unwrap to its cause")
	}
}
