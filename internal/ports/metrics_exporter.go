package ports

import (
	"context"
	"time"

	"github.com/emiliopalmerini/housefit/internal/domain"
)

// MetricsExporter exports training telemetry to an external observability system.
type MetricsExporter interface {
	// RecordEpoch records the metrics measured at the end of one epoch.
	// ValRMSE is only meaningful when hasValidation is set.
	RecordEpoch(ctx context.Context, runID string, r domain.EpochRecord, hasValidation bool) error
	// RecordRun records the outcome of a finished run.
	RecordRun(ctx context.Context, s *RunSummary) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// RunSummary describes a finished training run.
type RunSummary struct {
	RunID           string
	Hyperparameters domain.Hyperparameters
	Weight          float64
	Bias            float64
	Test            domain.Eval
	Duration        time.Duration
}
