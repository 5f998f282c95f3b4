// Package config loads hyperfocus settings from an optional YAML file
// overlaid by HYPERFOCUS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/hyperfocus/internal/domain"
	"github.com/emiliopalmerini/hyperfocus/internal/util"
)

const envPrefix = "HYPERFOCUS"

// Config holds every setting shared by the CLI, web and TUI surfaces.
type Config struct {
	APIURL            string        `envconfig:"API_URL" yaml:"api_url"`
	APITimeout        time.Duration `envconfig:"API_TIMEOUT" yaml:"api_timeout"`
	DatabaseURL       string        `envconfig:"DATABASE_URL" yaml:"database_url"`
	DatabaseAuthToken string        `envconfig:"DATABASE_AUTH_TOKEN" yaml:"database_auth_token"`
	LogLevel          string        `envconfig:"LOG_LEVEL" yaml:"log_level"`
	DefaultRange      string        `envconfig:"DEFAULT_RANGE" yaml:"default_range"`
	Addr              string        `envconfig:"ADDR" yaml:"addr"`
	OTELEnabled       bool          `envconfig:"OTEL_ENABLED" yaml:"otel_enabled"`
	OTELEndpoint      string        `envconfig:"OTEL_ENDPOINT" yaml:"otel_endpoint"`
	OTELInsecure      bool          `envconfig:"OTEL_INSECURE" yaml:"otel_insecure"`
}

// Defaults returns the built-in settings.
func Defaults() (Config, error) {
	dataDir, err := util.GetXDGDataDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		APIURL:       "http://localhost:8000",
		APITimeout:   10 * time.Second,
		DatabaseURL:  "file:" + filepath.Join(dataDir, "hyperfocus.db"),
		LogLevel:     "info",
		DefaultRange: string(domain.DefaultRange),
		Addr:         ":8080",
	}, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/hyperfocus/config.yaml.
func DefaultPath() (string, error) {
	dir, err := util.GetXDGConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load applies defaults, then the YAML file at path, then the environment.
// An empty path uses DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	if err := overlayFile(&cfg, path); err != nil {
		return nil, err
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return &domain.ValidationError{Field: "api_url", Message: "must not be empty"}
	}
	if c.APITimeout <= 0 {
		return &domain.ValidationError{Field: "api_timeout", Message: "must be positive"}
	}
	if c.DatabaseURL == "" {
		return &domain.ValidationError{Field: "database_url", Message: "must not be empty"}
	}
	if _, err := domain.ParseRange(c.DefaultRange); err != nil {
		return err
	}
	if c.OTELEnabled && c.OTELEndpoint == "" {
		return &domain.ValidationError{Field: "otel_endpoint", Message: "must be set when otel is enabled"}
	}
	return nil
}

// Range returns the configured default range.
func (c *Config) Range() domain.Range {
	rng, err := domain.ParseRange(c.DefaultRange)
	if err != nil {
		return domain.DefaultRange
	}
	return rng
}
