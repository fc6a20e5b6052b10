// Package model implements a single-node linear regression model.
package model

import (
	"math"
	"math/rand/v2"
)

// Linear is the affine predictor y = w*x + b.
type Linear struct {
	weight    float64
	bias      float64
	optimizer Optimizer
	rng       *rand.Rand
}

// Option configures Build.
type Option func(*Linear)

// WithRand sets the random source used to initialize the parameters.
func WithRand(rng *rand.Rand) Option {
	return func(m *Linear) {
		m.rng = rng
	}
}

// WithOptimizer replaces the default RMSprop optimizer. The learning rate
// passed to Build is ignored when this option is set.
func WithOptimizer(o Optimizer) Option {
	return func(m *Linear) {
		m.optimizer = o
	}
}

// WithParams sets the initial weight and bias instead of drawing them.
func WithParams(weight, bias float64) Option {
	return func(m *Linear) {
		m.weight, m.bias = weight, bias
		m.rng = nil
	}
}

// Build returns an untrained model bound to an RMSprop optimizer with the
// given learning rate. The rate is not range checked.
func Build(learningRate float64, opts ...Option) *Linear {
	m := &Linear{
		optimizer: NewRMSProp(learningRate),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, o := range opts {
		o(m)
	}
	if m.rng != nil {
		m.weight = glorotUniform(m.rng)
		m.bias = glorotUniform(m.rng)
	}
	return m
}

// glorotUniform draws from U(-limit, limit) with limit = sqrt(6/(fanIn+fanOut))
// for a 1x1 dense layer.
func glorotUniform(rng *rand.Rand) float64 {
	limit := math.Sqrt(6.0 / 2.0)
	return (rng.Float64()*2 - 1) * limit
}

func (m *Linear) Weight() float64 {
	return m.weight
}

func (m *Linear) Bias() float64 {
	return m.bias
}

// Optimizer returns the bound optimizer.
func (m *Linear) Optimizer() Optimizer {
	return m.optimizer
}

// Predict returns w*x + b.
func (m *Linear) Predict(x float64) float64 {
	return m.weight*x + m.bias
}

// PredictAll applies Predict to every input.
func (m *Linear) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = m.Predict(x)
	}
	return out
}

// Step computes the loss gradient over one batch and applies the optimizer.
// It returns the batch loss before the update.
func (m *Linear) Step(xs, ys []float64) float64 {
	loss, gw, gb := Gradients(m, xs, ys)
	m.weight, m.bias = m.optimizer.Step(m.weight, m.bias, gw, gb)
	return loss
}
