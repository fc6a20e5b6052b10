package model

import (
	"math"
	"testing"
)

func TestRMSProp_FirstStep(t *testing.T) {
	o := NewRMSProp(0.1)
	w, b := o.Step(1, 1, 2, -4)

	// v = 0.1*g^2, so the first step moves each parameter by lr*g/(sqrt(0.1)*|g|+eps).
	wantW := 1 - 0.1*2/(math.Sqrt(0.1*4)+DefaultEpsilon)
	wantB := 1 + 0.1*4/(math.Sqrt(0.1*16)+DefaultEpsilon)
	if math.Abs(w-wantW) > 1e-12 {
		t.Errorf("w = %v, want %v", w, wantW)
	}
	if math.Abs(b-wantB) > 1e-12 {
		t.Errorf("b = %v, want %v", b, wantB)
	}
}

func TestRMSProp_ZeroGradient(t *testing.T) {
	o := NewRMSProp(0.1)
	w, b := o.Step(3, 4, 0, 0)
	if w != 3 || b != 4 {
		t.Errorf("zero gradient moved params: %v %v", w, b)
	}
}

func TestSGD_Step(t *testing.T) {
	o := NewSGD(0.5)
	w, b := o.Step(1, 1, 2, -2)
	if w != 0 || b != 2 {
		t.Errorf("Step = %v, %v, want 0, 2", w, b)
	}
	if o.LearningRate() != 0.5 {
		t.Errorf("LearningRate = %v", o.LearningRate())
	}
}

func TestWithOptimizer(t *testing.T) {
	m := Build(0.03, WithParams(1, 1), WithOptimizer(NewSGD(0.5)))
	m.Step([]float64{1}, []float64{1})
	// prediction 2, label 1: dw = 2, db = 2
	if m.Weight() != 0 || m.Bias() != 0 {
		t.Errorf("w=%v b=%v, want 0 0", m.Weight(), m.Bias())
	}
}
