package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/emiliopalmerini/housefit/internal/adapters/otel"
	"github.com/emiliopalmerini/housefit/internal/dataset"
	"github.com/emiliopalmerini/housefit/internal/infrastructure/config"
	"github.com/emiliopalmerini/housefit/internal/ports"
)

// signalContext returns a copy of ctx that is canceled on SIGINT or SIGTERM.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config  *config.Config
	Train   ports.TableSource
	Test    ports.TableSource
	Metrics ports.MetricsExporter
}

// NewAppContext loads configuration and creates the dataset sources and the
// metrics exporter.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := &http.Client{Timeout: cfg.Dataset.Timeout}
	return &AppContext{
		Config:  cfg,
		Train:   dataset.NewHTTPSource(cfg.Dataset.TrainURL, client),
		Test:    dataset.NewHTTPSource(cfg.Dataset.TestURL, client),
		Metrics: otel.New(ctx, cfg.Telemetry),
	}, nil
}

// Loader returns a loader that scales label by the configured factor.
func (a *AppContext) Loader(label string) *dataset.Loader {
	return dataset.NewLoader(a.Train, a.Test, label, a.Config.Dataset.ScaleFactor)
}

// Close flushes the metrics exporter.
func (a *AppContext) Close(ctx context.Context) error {
	if a.Metrics != nil {
		return a.Metrics.Close(ctx)
	}
	return nil
}
