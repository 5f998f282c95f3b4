package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000" {
		t.Errorf("unexpected API URL %q", cfg.APIURL)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Errorf("unexpected timeout %v", cfg.APITimeout)
	}
	if cfg.DatabaseURL != "file:/data/hyperfocus/hyperfocus.db" {
		t.Errorf("unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.Range() != domain.Range7d {
		t.Errorf("unexpected range %q", cfg.Range())
	}
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
api_url: http://file.example:9000
api_timeout: 3s
default_range: 30d
log_level: debug
`)
	t.Setenv("HYPERFOCUS_API_URL", "http://env.example:7000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIURL != "http://env.example:7000" {
		t.Errorf("env should override file, got %q", cfg.APIURL)
	}
	if cfg.APITimeout != 3*time.Second {
		t.Errorf("file should override default timeout, got %v", cfg.APITimeout)
	}
	if cfg.Range() != domain.Range30d {
		t.Errorf("file range not applied, got %q", cfg.Range())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("file log level not applied, got %q", cfg.LogLevel)
	}
}

func TestLoad_OTEL(t *testing.T) {
	type otelSettings struct {
		enabled  bool
		endpoint string
		insecure bool
	}
	tests := []struct {
		name string
		file string
		env  map[string]string
		want otelSettings
	}{
		{name: "disabled by default", want: otelSettings{}},
		{
			name: "from file",
			file: "otel_enabled: true\notel_endpoint: collector:4317\notel_insecure: true\n",
			want: otelSettings{enabled: true, endpoint: "collector:4317", insecure: true},
		},
		{
			name: "env overrides file",
			file: "otel_enabled: true\notel_endpoint: collector:4317\n",
			env:  map[string]string{"HYPERFOCUS_OTEL_ENDPOINT": "env-collector:4317", "HYPERFOCUS_OTEL_INSECURE": "true"},
			want: otelSettings{enabled: true, endpoint: "env-collector:4317", insecure: true},
		},
		{
			name: "env disables file",
			file: "otel_enabled: true\notel_endpoint: collector:4317\n",
			env:  map[string]string{"HYPERFOCUS_OTEL_ENABLED": "false"},
			want: otelSettings{endpoint: "collector:4317"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "none.yaml")
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			got := otelSettings{cfg.OTELEnabled, cfg.OTELEndpoint, cfg.OTELInsecure}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file string
		env  map[string]string
	}{
		{name: "bad range", env: map[string]string{"HYPERFOCUS_DEFAULT_RANGE": "1y"}},
		{name: "bad timeout", env: map[string]string{"HYPERFOCUS_API_TIMEOUT": "soon"}},
		{name: "zero timeout", file: "api_timeout: 0s\n"},
		{name: "bad yaml", file: "api_url: [unterminated\n"},
		{name: "otel without endpoint", env: map[string]string{"HYPERFOCUS_OTEL_ENABLED": "true"}},
		{name: "bad otel flag", env: map[string]string{"HYPERFOCUS_OTEL_INSECURE": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "none.yaml")
			if tt.file != "" {
				path = writeConfig(t, tt.file)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDefaultPath_UsesXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	if got != "/cfg/hyperfocus/config.yaml" {
		t.Errorf("unexpected path %q", got)
	}
}
