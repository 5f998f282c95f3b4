package otel

// Config holds OTLP metric exporter settings. The CLI builds it from the
// otel_* keys of the hyperfocus config file and HYPERFOCUS_OTEL_* variables.
type Config struct {
	Endpoint string
	Enabled  bool
	Insecure bool
}

// Active reports whether metrics should be exported at all.
func (c Config) Active() bool {
	return c.Enabled && c.Endpoint != ""
}
