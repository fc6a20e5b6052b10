package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/emiliopalmerini/housefit/internal/chart"
	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/training"
	"github.com/emiliopalmerini/housefit/internal/web/templates"
)

const (
	ModelFile  = "model.png"
	LossFile   = "loss.png"
	ReportFile = "report.html"
)

// Artifacts are the outputs of a finished run.
type Artifacts struct {
	RunID    string
	Hyper    domain.Hyperparameters
	Train    *domain.Table
	TestSet  *domain.Table
	Result   *training.Result
	Test     *domain.Eval
	Spread   *chart.LossSpread // nil when the run was too short for a loss curve
	ModelPNG []byte
	LossPNG  []byte
	Duration time.Duration
}

// Report builds the report data with the given image sources.
func (a *Artifacts) Report(modelSrc, lossSrc string) templates.ReportData {
	d := templates.ReportData{
		RunID:           a.RunID,
		Hyperparameters: a.Hyper,
		Weight:          a.Result.Weight,
		Bias:            a.Result.Bias,
		History:         a.Result.History,
		Test:            a.Test,
		TrainRows:       a.Train.Len(),
		TestRows:        a.TestSet.Len(),
		ModelImage:      modelSrc,
	}
	if a.Spread != nil {
		d.LossDelta = a.Spread.Delta
		d.LossImage = lossSrc
	}
	return d
}

// Write stores the plots and the HTML report in dir and returns the written paths.
func (a *Artifacts) Write(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write(ModelFile, a.ModelPNG); err != nil {
		return nil, err
	}
	if a.LossPNG != nil {
		if err := write(LossFile, a.LossPNG); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := templates.Report(a.Report(ModelFile, LossFile)).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	if err := write(ReportFile, buf.Bytes()); err != nil {
		return nil, err
	}
	return written, nil
}
