package training

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/emiliopalmerini/housefit/internal/domain"
	"github.com/emiliopalmerini/housefit/internal/model"
)

// Evaluate measures m against every row of the table.
func Evaluate(m model.Predictor, table *domain.Table, feature, label string) (*domain.Eval, error) {
	xs, ys, err := columns(table, feature, label)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, domain.ErrEmptyTable
	}

	mean := stat.Mean(ys, nil)
	var sqSum, absSum, totSum float64
	for i, x := range xs {
		diff := m.Predict(x) - ys[i]
		sqSum += diff * diff
		absSum += math.Abs(diff)
		totSum += (ys[i] - mean) * (ys[i] - mean)
	}

	n := float64(len(xs))
	ev := &domain.Eval{
		Loss: sqSum / n,
		RMSE: math.Sqrt(sqSum / n),
		MAE:  absSum / n,
	}
	// R² is zero-safe for a constant label.
	if totSum > 0 {
		ev.R2 = 1 - sqSum/totSum
	}
	if err := ev.Check(); err != nil {
		return nil, fmt.Errorf("evaluating: %w", err)
	}
	return ev, nil
}
