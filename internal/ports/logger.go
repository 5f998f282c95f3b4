package ports

// Logger defines the interface for logging
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}
