// Package pipeline runs the load, train, plot and evaluate sequence.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/housefit/internal/chart"
	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/model"
	"github.com/emiliopalmerini/housefit/internal/ports"
	"github.com/emiliopalmerini/housefit/internal/training"
)

// TableLoader returns the scaled train and test tables.
type TableLoader interface {
	Load(ctx context.Context) (train, test *domain.Table, err error)
}

// Pipeline holds the collaborators of one run.
type Pipeline struct {
	Loader  TableLoader
	Hyper   domain.Hyperparameters
	Rand    *rand.Rand
	Metrics ports.MetricsExporter
	// OnEpoch observes training progress, e.g. for a progress view.
	OnEpoch func(r domain.EpochRecord, hasValidation bool)
}

// New creates a pipeline. A nil rng gets a randomly seeded one.
func New(loader TableLoader, hyper domain.Hyperparameters, rng *rand.Rand, metrics ports.MetricsExporter) *Pipeline {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Pipeline{
		Loader:  loader,
		Hyper:   hyper,
		Rand:    rng,
		Metrics: metrics,
	}
}

// Run executes load, build, shuffle, train, plot and evaluate in order.
// The trainer's validation slice is the tail of the shuffled table.
func (p *Pipeline) Run(ctx context.Context) (*Artifacts, error) {
	if err := p.Hyper.Validate(); err != nil {
		return nil, err
	}
	started := time.Now()
	runID := uuid.NewString()

	train, test, err := p.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	m := model.Build(p.Hyper.LearningRate, model.WithRand(p.Rand))
	shuffled := train.Permute(p.Rand)

	onEpoch := func(r domain.EpochRecord, hasValidation bool) {
		if p.Metrics != nil {
			if err := p.Metrics.RecordEpoch(ctx, runID, r, hasValidation); err != nil {
				log.Printf("Recording epoch %d: %v", r.Epoch, err)
			}
		}
		if p.OnEpoch != nil {
			p.OnEpoch(r, hasValidation)
		}
	}
	res, err := training.Train(ctx, m, shuffled, p.Hyper.Feature, p.Hyper.Label,
		training.FromHyperparameters(p.Hyper,
			training.WithShuffle(p.Rand),
			training.WithEpochCallback(onEpoch),
		))
	if err != nil {
		return nil, fmt.Errorf("training: %w", err)
	}

	a := &Artifacts{
		RunID:   runID,
		Hyper:   p.Hyper,
		Train:   train,
		TestSet: test,
		Result:  res,
	}

	lossPlot, spread, err := chart.LossCurve(&res.History)
	switch {
	case errors.Is(err, chart.ErrTooFewEpochs):
		log.Printf("Skipping loss curve: %v", err)
	case err != nil:
		return nil, err
	default:
		a.Spread = &spread
		if a.LossPNG, err = chart.PNG(lossPlot); err != nil {
			return nil, err
		}
	}

	xs, _ := train.Column(p.Hyper.Feature)
	ys, _ := train.Column(p.Hyper.Label)
	modelPlot, err := chart.Model(res.Weight, res.Bias, xs, ys)
	if err != nil {
		return nil, err
	}
	if a.ModelPNG, err = chart.PNG(modelPlot); err != nil {
		return nil, err
	}

	a.Test, err = training.Evaluate(m, test, p.Hyper.Feature, p.Hyper.Label)
	if err != nil {
		return nil, fmt.Errorf("evaluating test set: %w", err)
	}
	a.Duration = time.Since(started)

	if p.Metrics != nil {
		err := p.Metrics.RecordRun(ctx, &ports.RunSummary{
			RunID:           runID,
			Hyperparameters: p.Hyper,
			Weight:          res.Weight,
			Bias:            res.Bias,
			Test:            *a.Test,
			Duration:        a.Duration,
		})
		if err != nil {
			log.Printf("Recording run: %v", err)
		}
	}
	return a, nil
}
