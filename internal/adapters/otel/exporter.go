package otel

import (
	"context"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/ports"
)

const (
	serviceName    = "housefit"
	serviceVersion = "1.0.0"
)

// Exporter exports training metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	meter        metric.Meter
	epochsTotal  metric.Int64Counter
	rmseHist     metric.Float64Histogram
	testRMSE     metric.Float64Histogram
	durationHist metric.Float64Histogram
	runsTotal    metric.Int64Counter
}

// New returns an OTLP exporter when cfg enables one and a NoOpExporter
// otherwise. A failing collector setup degrades to the no-op exporter.
func New(ctx context.Context, cfg Config) ports.MetricsExporter {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return NewNoOpExporter()
	}
	exp, err := NewExporter(ctx, cfg)
	if err != nil {
		log.Printf("OTEL disabled: %v", err)
		return NewNoOpExporter()
	}
	return exp
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
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
	return NewWithReader(ctx, sdkmetric.NewPeriodicReader(exp))
}

// NewWithReader builds the exporter on top of any metric reader.
func NewWithReader(ctx context.Context, reader sdkmetric.Reader) (*Exporter, error) {
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
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	epochsTotal, err := meter.Int64Counter(
		"housefit_epochs_total",
		metric.WithDescription("Total training epochs completed"),
		metric.WithUnit("{epoch}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating epochs counter: %w", err)
	}

	rmseHist, err := meter.Float64Histogram(
		"housefit_epoch_rmse",
		metric.WithDescription("Root mean squared error at the end of each epoch"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rmse histogram: %w", err)
	}

	testRMSE, err := meter.Float64Histogram(
		"housefit_test_rmse",
		metric.WithDescription("Root mean squared error on the test set"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating test rmse histogram: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"housefit_run_duration_seconds",
		metric.WithDescription("Run duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	runsTotal, err := meter.Int64Counter(
		"housefit_runs_total",
		metric.WithDescription("Total number of training runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	return &Exporter{
		provider:     provider,
		meter:        meter,
		epochsTotal:  epochsTotal,
		rmseHist:     rmseHist,
		testRMSE:     testRMSE,
		durationHist: durationHist,
		runsTotal:    runsTotal,
	}, nil
}

// RecordEpoch records the training and, when the run holds out rows, validation RMSE of one epoch.
func (e *Exporter) RecordEpoch(ctx context.Context, runID string, r domain.EpochRecord, hasValidation bool) error {
	run := attribute.String("run_id", runID)

	e.epochsTotal.Add(ctx, 1, metric.WithAttributes(run))
	e.rmseHist.Record(ctx, r.RMSE, metric.WithAttributes(run, attribute.String("split", "training")))
	if hasValidation {
		e.rmseHist.Record(ctx, r.ValRMSE, metric.WithAttributes(run, attribute.String("split", "validation")))
	}
	return nil
}

// RecordRun records the outcome of a finished run.
func (e *Exporter) RecordRun(ctx context.Context, s *ports.RunSummary) error {
	opt := metric.WithAttributes(
		attribute.String("run_id", s.RunID),
		attribute.String("feature", s.Hyperparameters.Feature),
		attribute.String("label", s.Hyperparameters.Label),
		attribute.Float64("learning_rate", s.Hyperparameters.LearningRate),
	)

	e.testRMSE.Record(ctx, s.Test.RMSE, opt)
	e.durationHist.Record(ctx, s.Duration.Seconds(), opt)
	e.runsTotal.Add(ctx, 1, opt)
	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
