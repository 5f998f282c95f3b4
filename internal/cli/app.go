package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/emiliopalmerini/hyperfocus/internal/adapters/api"
	"github.com/emiliopalmerini/hyperfocus/internal/adapters/otel"
	"github.com/emiliopalmerini/hyperfocus/internal/adapters/turso"
	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/infrastructure/config"
	"github.com/emiliopalmerini/hyperfocus/internal/logging"
	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

// Test hooks. When set, NewAppContext uses them instead of real connections.
var (
	testDBOverride     *sql.DB
	testClientOverride ports.ResourceClient
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config      *config.Config
	Logger      *slog.Logger
	Repos       *turso.Repositories
	Metrics     ports.SyncMetrics
	Controller  *controller.Controller
	Coordinator *controller.Coordinator
}

// NewAppContext loads configuration and wires the controller to the API and local state.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if apiURLFlag != "" {
		cfg.APIURL = apiURLFlag
	}
	if logLevelArg != "" {
		cfg.LogLevel = logLevelArg
	}
	logger := logging.New(cfg.LogLevel, os.Stderr)

	var client ports.ResourceClient = testClientOverride
	if client == nil {
		c, err := api.NewClient(api.Config{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create API client: %w", err)
		}
		client = c
	}

	var repos *turso.Repositories
	if testDBOverride != nil {
		repos = turso.NewRepositories(testDBOverride)
	} else {
		repos, err = turso.Open(ctx, cfg.DatabaseURL, cfg.DatabaseAuthToken)
		if err != nil {
			return nil, fmt.Errorf("failed to open state database: %w", err)
		}
	}

	metrics := otel.New(ctx, otel.Config{
		Endpoint: cfg.OTELEndpoint,
		Enabled:  cfg.OTELEnabled,
		Insecure: cfg.OTELInsecure,
	}, logger)

	ctrl := controller.New(client,
		controller.WithLogger(logger),
		controller.WithMetrics(metrics),
		controller.WithRange(cfg.Range()),
	)
	return &AppContext{
		Config:      cfg,
		Logger:      logger,
		Repos:       repos,
		Metrics:     metrics,
		Controller:  ctrl,
		Coordinator: controller.NewCoordinator(ctrl, controller.WithJournal(repos.Journal)),
	}, nil
}

// Resume reloads the persisted context into the controller.
func (a *AppContext) Resume(ctx context.Context) error {
	ac, err := a.Repos.Context.Load(ctx)
	if err != nil {
		return err
	}
	if ac.UserID == "" {
		return fmt.Errorf("no active user: run 'hyperfocus load <user-id>' or 'hyperfocus demo' first")
	}
	return a.Controller.Resume(ctx, ac.UserID, ac.Range, ac.SelectedSessionID)
}

// resumeIfAny resumes the persisted context and is a no-op without one.
func resumeIfAny(ctx context.Context, app *AppContext) error {
	ac, err := app.Repos.Context.Load(ctx)
	if err != nil {
		return err
	}
	if ac.UserID == "" {
		return nil
	}
	return app.Controller.Resume(ctx, ac.UserID, ac.Range, ac.SelectedSessionID)
}

// Persist saves the controller's active context for the next invocation.
func (a *AppContext) Persist(ctx context.Context) error {
	snap := a.Controller.Snapshot()
	if snap.UserID == "" {
		return nil
	}
	return a.Repos.Context.Save(ctx, ports.ActiveContext{
		UserID:            snap.UserID,
		Range:             snap.Range,
		SelectedSessionID: snap.SelectedSessionID,
	})
}

// Close flushes metrics and releases the state database.
func (a *AppContext) Close(ctx context.Context) error {
	if err := a.Metrics.Close(ctx); err != nil {
		a.Logger.Error("metrics shutdown failed", "error", err)
	}
	return a.Repos.Close()
}

// withApp runs fn with a fresh AppContext and persists the context afterwards.
func withApp(ctx context.Context, fn func(*AppContext) error) error {
	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(ctx) }()

	runErr := fn(app)
	if err := app.Persist(ctx); err != nil {
		app.Logger.Error("failed to persist context", "error", err)
	}
	return runErr
}
