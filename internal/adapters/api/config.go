package api

import "time"

const defaultTimeout = 10 * time.Second

// Config holds stats service client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}
