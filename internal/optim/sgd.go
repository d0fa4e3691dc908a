package optim

import "fmt"

// SGD implements Stochastic Gradient Descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum helps accelerate SGD in relevant directions and dampens
// oscillations.
//
// Example:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params   []float64
	lr       float64
	momentum float64
	velocity []float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameter vector.
// The vector is updated in place by Step.
func NewSGD(params []float64, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
	}
}

// Step performs a single optimization step.
func (s *SGD) Step(grads []float64) {
	if len(grads) != len(s.params) {
		panic(fmt.Sprintf("optim: gradient length %d does not match parameter length %d",
			len(grads), len(s.params)))
	}

	if s.momentum == 0 {
		for i, g := range grads {
			s.params[i] -= s.lr * g
		}
		return
	}

	if s.velocity == nil {
		s.velocity = make([]float64, len(s.params))
	}
	for i, g := range grads {
		s.velocity[i] = s.momentum*s.velocity[i] + g
		s.params[i] -= s.lr * s.velocity[i]
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// GetMomentum returns the momentum factor.
func (s *SGD) GetMomentum() float64 {
	return s.momentum
}

// SetMomentum updates the momentum factor.
//
// Used by schedulers that cycle momentum alongside the learning rate.
func (s *SGD) SetMomentum(momentum float64) {
	s.momentum = momentum
}
