// Package training fits a linear model over mini-batches and evaluates it.
package training

import (
	"context"
	"fmt"
	"math"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/model"
)

// Result is the outcome of Train.
type Result struct {
	History domain.History
	Weight  float64
	Bias    float64
}

// Train fits m to predict label from feature. The last
// floor(ValidationSplit*rows) rows are held out for validation in their
// current order; callers that want a random validation slice shuffle the
// table before calling Train.
func Train(ctx context.Context, m *model.Linear, table *domain.Table, feature, label string, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	trainSet, valSet, err := table.SplitTail(opts.ValidationSplit)
	if err != nil {
		return nil, err
	}
	if trainSet.Len() == 0 {
		return nil, fmt.Errorf("training slice: %w", domain.ErrEmptyTable)
	}

	xs, ys, err := columns(trainSet, feature, label)
	if err != nil {
		return nil, err
	}
	vxs, vys, err := columns(valSet, feature, label)
	if err != nil {
		return nil, err
	}

	batch := opts.BatchSize
	if batch == 0 || batch > len(xs) {
		batch = len(xs)
	}

	res := &Result{History: domain.History{HasValidation: valSet.Len() > 0}}
	order := make([]int, len(xs))
	for i := range order {
		order[i] = i
	}
	bx := make([]float64, 0, batch)
	by := make([]float64, 0, batch)

	for epoch := 0; epoch < opts.Epochs; epoch++ {
		if opts.Shuffle && opts.Rand != nil {
			opts.Rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		}

		for start := 0; start < len(order); start += batch {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("epoch %d: %w", epoch, err)
			}
			end := min(start+batch, len(order))
			bx, by = bx[:0], by[:0]
			for _, row := range order[start:end] {
				bx = append(bx, xs[row])
				by = append(by, ys[row])
			}
			if loss := m.Step(bx, by); math.IsNaN(loss) || math.IsInf(loss, 0) {
				return nil, fmt.Errorf("epoch %d: loss diverged: %w", epoch, domain.ErrNaN)
			}
		}

		rec := domain.EpochRecord{
			Epoch: epoch,
			RMSE:  model.RMSE(m, xs, ys),
		}
		if res.History.HasValidation {
			rec.ValRMSE = model.RMSE(m, vxs, vys)
		}
		if math.IsNaN(rec.RMSE) || math.IsNaN(rec.ValRMSE) {
			return nil, fmt.Errorf("epoch %d: %w", epoch, domain.ErrNaN)
		}
		res.History.Append(rec)
		if opts.OnEpoch != nil {
			opts.OnEpoch(rec, res.History.HasValidation)
		}
	}

	res.Weight, res.Bias = m.Weight(), m.Bias()
	return res, nil
}

func columns(t *domain.Table, feature, label string) (xs, ys []float64, err error) {
	xs, err = t.Column(feature)
	if err != nil {
		return nil, nil, fmt.Errorf("feature: %w", err)
	}
	ys, err = t.Column(label)
	if err != nil {
		return nil, nil, fmt.Errorf("label: %w", err)
	}
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("%d features for %d labels: %w", len(xs), len(ys), domain.ErrLengthMismatch)
	}
	return xs, ys, nil
}
