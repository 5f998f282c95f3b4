package otel

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/hyperfocus/internal/ports"
)

const (
	serviceName    = "hyperfocus"
	serviceVersion = "1.0.0"
)

// Exporter exports controller sync metrics to an OTEL Collector.
type Exporter struct {
	provider      *sdkmetric.MeterProvider
	fetchesTotal  metric.Int64Counter
	fetchErrors   metric.Int64Counter
	fetchDuration metric.Float64Histogram
	mutations     metric.Int64Counter
	staleDiscards metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Active() {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	fetchesTotal, err := meter.Int64Counter(
		"hyperfocus_view_fetches_total",
		metric.WithDescription("View fetches issued by the sync controller"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetches counter: %w", err)
	}

	fetchErrors, err := meter.Int64Counter(
		"hyperfocus_view_fetch_errors_total",
		metric.WithDescription("View fetches that failed"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch errors counter: %w", err)
	}

	fetchDuration, err := meter.Float64Histogram(
		"hyperfocus_view_fetch_duration_seconds",
		metric.WithDescription("View fetch latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fetch duration histogram: %w", err)
	}

	mutations, err := meter.Int64Counter(
		"hyperfocus_mutations_total",
		metric.WithDescription("Mutating actions by kind and outcome"),
		metric.WithUnit("{mutation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mutations counter: %w", err)
	}

	staleDiscards, err := meter.Int64Counter(
		"hyperfocus_stale_discards_total",
		metric.WithDescription("Responses dropped because the selection changed"),
		metric.WithUnit("{response}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stale discards counter: %w", err)
	}

	return &Exporter{
		provider:      provider,
		fetchesTotal:  fetchesTotal,
		fetchErrors:   fetchErrors,
		fetchDuration: fetchDuration,
		mutations:     mutations,
		staleDiscards: staleDiscards,
	}, nil
}

func (e *Exporter) RecordFetch(ctx context.Context, view string, elapsed time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("view", view))
	e.fetchesTotal.Add(ctx, 1, opt)
	e.fetchDuration.Record(ctx, elapsed.Seconds(), opt)
	if err != nil {
		e.fetchErrors.Add(ctx, 1, opt)
	}
}

func (e *Exporter) RecordMutation(ctx context.Context, kind, outcome string) {
	e.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

func (e *Exporter) RecordStaleDiscard(ctx context.Context, view string) {
	e.staleDiscards.Add(ctx, 1, metric.WithAttributes(attribute.String("view", view)))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

// New returns a live exporter when cfg enables one, else a NoOpExporter.
// A collector that cannot be reached degrades to the no-op exporter.
func New(ctx context.Context, cfg Config, logger ports.Logger) ports.SyncMetrics {
	if !cfg.Active() {
		return NewNoOpExporter()
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		logger.Error("otel exporter unavailable", "endpoint", cfg.Endpoint, "error", err)
		return NewNoOpExporter()
	}
	return exp
}
