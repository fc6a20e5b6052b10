package model

import "math"

// Optimizer updates the weight and bias from their gradients.
type Optimizer interface {
	Step(weight, bias, dw, db float64) (float64, float64)
	LearningRate() float64
}

const (
	DefaultRho     = 0.9
	DefaultEpsilon = 1e-7
)

// RMSProp divides the gradient by a running root mean square of recent
// gradients: v = rho*v + (1-rho)*g^2; p -= lr*g/(sqrt(v)+eps).
type RMSProp struct {
	lr      float64
	rho     float64
	epsilon float64

	vw float64
	vb float64
}

// NewRMSProp creates an RMSprop optimizer with rho=0.9 and epsilon=1e-7.
func NewRMSProp(learningRate float64) *RMSProp {
	return &RMSProp{
		lr:      learningRate,
		rho:     DefaultRho,
		epsilon: DefaultEpsilon,
	}
}

func (o *RMSProp) LearningRate() float64 {
	return o.lr
}

func (o *RMSProp) Step(weight, bias, dw, db float64) (float64, float64) {
	o.vw = o.rho*o.vw + (1-o.rho)*dw*dw
	o.vb = o.rho*o.vb + (1-o.rho)*db*db
	weight -= o.lr * dw / (math.Sqrt(o.vw) + o.epsilon)
	bias -= o.lr * db / (math.Sqrt(o.vb) + o.epsilon)
	return weight, bias
}

// SGD is plain gradient descent.
type SGD struct {
	lr float64
}

func NewSGD(learningRate float64) *SGD {
	return &SGD{lr: learningRate}
}

func (o *SGD) LearningRate() float64 {
	return o.lr
}

func (o *SGD) Step(weight, bias, dw, db float64) (float64, float64) {
	return weight - o.lr*dw, bias - o.lr*db
}
