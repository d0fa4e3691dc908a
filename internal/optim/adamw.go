package optim

import (
	"fmt"
	"math"
)

// AdamW implements Adam with decoupled weight decay.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * (m_hat / (sqrt(v_hat) + eps) + wd * param)
//
// Unlike classic Adam with L2 regularization, the weight decay term is
// applied directly to the parameter and does not flow through the moment
// estimates.
//
// Reference: "Decoupled Weight Decay Regularization" (Loshchilov & Hutter,
// 2017)
//
// Example:
//
//	optimizer := optim.NewAdamW(params, optim.AdamWConfig{
//	    LR:    0.001,
//	    Betas: [2]float64{0.9, 0.999},
//	})
type AdamW struct {
	params      []float64
	lr          float64
	beta1       float64
	beta2       float64
	eps         float64
	weightDecay float64
	t           int       // Timestep for bias correction
	m           []float64 // First moment estimates
	v           []float64 // Second moment estimates
}

// AdamWConfig holds configuration for the AdamW optimizer.
type AdamWConfig struct {
	LR          float64    // Learning rate (default: 0.001)
	Betas       [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps         float64    // Term for numerical stability (default: 1e-8)
	WeightDecay float64    // Decoupled weight decay factor (default: 0.01)
}

// NewAdamW creates a new AdamW optimizer over the given parameter vector.
// The vector is updated in place by Step.
//
// Default hyperparameters:
//   - LR: 0.001
//   - Beta1: 0.9
//   - Beta2: 0.999
//   - Eps: 1e-8
//   - WeightDecay: 0.01
func NewAdamW(params []float64, config AdamWConfig) *AdamW {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	if config.WeightDecay == 0 {
		config.WeightDecay = 0.01
	}

	return &AdamW{
		params:      params,
		lr:          config.LR,
		beta1:       config.Betas[0],
		beta2:       config.Betas[1],
		eps:         config.Eps,
		weightDecay: config.WeightDecay,
		m:           make([]float64, len(params)),
		v:           make([]float64, len(params)),
	}
}

// Step performs a single optimization step using the AdamW algorithm.
func (a *AdamW) Step(grads []float64) {
	if len(grads) != len(a.params) {
		panic(fmt.Sprintf("optim: gradient length %d does not match parameter length %d",
			len(grads), len(a.params)))
	}

	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for i, g := range grads {
		a.m[i] = a.beta1*a.m[i] + (1-a.beta1)*g
		a.v[i] = a.beta2*a.v[i] + (1-a.beta2)*g*g

		mHat := a.m[i] / biasCorrection1
		vHat := a.v[i] / biasCorrection2

		a.params[i] -= a.lr * (mHat/(math.Sqrt(vHat)+a.eps) + a.weightDecay*a.params[i])
	}
}

// GetLR returns the current learning rate.
func (a *AdamW) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *AdamW) SetLR(lr float64) {
	a.lr = lr
}

// GetMomentum returns the beta1 coefficient.
func (a *AdamW) GetMomentum() float64 {
	return a.beta1
}

// SetMomentum updates the beta1 coefficient.
//
// Used by schedulers that cycle momentum alongside the learning rate.
func (a *AdamW) SetMomentum(momentum float64) {
	a.beta1 = momentum
}

// GetTimestep returns the current timestep.
//
// Useful for monitoring optimizer state.
func (a *AdamW) GetTimestep() int {
	return a.t
}
