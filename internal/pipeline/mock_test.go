package pipeline

import (
	"context"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/ports"
)

type mockLoader struct {
	LoadFunc func(ctx context.Context) (*domain.Table, *domain.Table, error)
}

func (m *mockLoader) Load(ctx context.Context) (*domain.Table, *domain.Table, error) {
	return m.LoadFunc(ctx)
}

type mockExporter struct {
	epochs []domain.EpochRecord
	runs   []*ports.RunSummary
}

func (m *mockExporter) RecordEpoch(ctx context.Context, runID string, r domain.EpochRecord, hasValidation bool) error {
	m.epochs = append(m.epochs, r)
	return nil
}

func (m *mockExporter) RecordRun(ctx context.Context, s *ports.RunSummary) error {
	m.runs = append(m.runs, s)
	return nil
}

func (m *mockExporter) Close(ctx context.Context) error {
	return nil
}
