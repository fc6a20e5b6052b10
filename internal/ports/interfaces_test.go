package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/housefit/internal/adapters/otel"
	"github.com/emiliopalmerini/housefit/internal/dataset"
	"github.com/emiliopalmerini/housefit/internal/ports"
)

// Compile-time interface conformance checks.

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}

func TestTableSourceConformance(t *testing.T) {
	var _ ports.TableSource = (*dataset.HTTPSource)(nil)
}
