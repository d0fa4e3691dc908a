// Package optim implements reference optimizers for driving learning rate
// schedules.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - AdamW: Adam with decoupled weight decay
//
// The optimizers operate on flat float64 parameter vectors: enough to
// exercise a scheduler end-to-end in tests and examples without a tensor
// stack. Both expose their learning rate (and momentum coefficient) through
// the accessors the schedule package requires, so any of them can sit on
// the other side of a schedule.Scheduler.
//
// Example usage:
//
//	params := []float64{1.5, -0.5}
//	optimizer := optim.NewAdamW(params, optim.AdamWConfig{LR: 1e-3})
//
//	// Training loop
//	for step := range steps {
//	    grads := computeGradients(params)
//	    optimizer.Step(grads)
//	    sched.Step(optimizer)
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update parameters in place from a gradient vector of the same
// length.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR / SetLR: Learning rate accessors (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	//
	// grads must have the same length as the parameter vector the
	// optimizer was constructed with; Step panics otherwise.
	Step(grads []float64)

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate.
	//
	// This is the write slot used by learning rate schedulers.
	SetLR(lr float64)
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}
