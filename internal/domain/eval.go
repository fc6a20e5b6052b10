package domain

import "math"

// Eval holds the regression metrics of a model over a table.
type Eval struct {
	// Loss is the mean squared error.
	Loss float64 `json:"loss"`

	// RMSE root mean squared error.
	RMSE float64 `json:"root_mean_squared_error"`

	// MAE mean absolute error.
	MAE float64 `json:"mean_absolute_error"`

	// R2 coefficient of determination.
	R2 float64 `json:"r2"`
}

// Check reports ErrNaN when any metric diverged.
func (e *Eval) Check() error {
	if math.IsNaN(e.Loss) || math.IsNaN(e.RMSE) || math.IsNaN(e.MAE) || math.IsNaN(e.R2) {
		return ErrNaN
	}
	return nil
}
