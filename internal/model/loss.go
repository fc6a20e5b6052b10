package model

import "math"

// Predictor is anything that maps a feature value to a label estimate.
type Predictor interface {
	Predict(x float64) float64
}

// Gradients returns the mean squared error of p over the batch together with
// its partial derivatives with respect to the weight and the bias.
func Gradients(p Predictor, xs, ys []float64) (loss, dw, db float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}
	for i, x := range xs {
		diff := p.Predict(x) - ys[i]
		loss += diff * diff
		dw += diff * x
		db += diff
	}
	n := float64(len(xs))
	return loss / n, 2 * dw / n, 2 * db / n
}

// MSE returns the mean squared error of p over the rows.
func MSE(p Predictor, xs, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for i, x := range xs {
		diff := p.Predict(x) - ys[i]
		sum += diff * diff
	}
	return sum / float64(len(xs))
}

// RMSE returns the root mean squared error of p over the rows.
func RMSE(p Predictor, xs, ys []float64) float64 {
	return math.Sqrt(MSE(p, xs, ys))
}
