package otel

import (
	"context"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordEpoch(ctx context.Context, runID string, r domain.EpochRecord, hasValidation bool) error {
	return nil
}

func (e *NoOpExporter) RecordRun(ctx context.Context, s *ports.RunSummary) error {
	return nil
}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
