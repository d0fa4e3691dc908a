// Package schedule implements learning rate schedules for training neural networks.
//
// This package provides:
//   - Scheduler interface: Base interface for all schedules
//   - OneCycle: Warmup to a peak LR, then anneal down (Smith's 1cycle policy)
//   - CosineAnnealing: Smooth half-cosine decay, optionally with warm restarts
//
// Design inspired by PyTorch's torch.optim.lr_scheduler but adapted for Go
// with an explicit optimizer boundary.
//
// Example usage:
//
//	// Create scheduler
//	sched, err := schedule.NewOneCycle(schedule.OneCycleConfig{
//	    MaxLR:      1e-2,
//	    TotalSteps: 1000,
//	})
//	if err != nil {
//	    return err
//	}
//
//	// Training loop
//	for step := range steps {
//	    grads := computeGradients(model, batch)
//	    optimizer.Step(grads)
//	    sched.Step(optimizer) // writes the next LR into the optimizer
//	}
package schedule

import (
	"errors"
	"math"
)

// ErrInvalidConfig is returned by constructors when a hyperparameter is
// outside its valid domain. It is the only error this package produces:
// once a scheduler is constructed, Step and GetLR cannot fail.
var ErrInvalidConfig = errors.New("schedule: invalid config")

// LROptimizer is the capability a scheduler needs from an optimizer.
//
// Any optimizer exposing its learning rate through this pair is schedulable;
// the scheduler never touches parameters, gradients, or optimizer moments.
// Step performs exactly one SetLR call and never reads the value
// back.
type LROptimizer interface {
	// GetLR returns the optimizer's current learning rate.
	GetLR() float64

	// SetLR overwrites the optimizer's learning rate. The new value
	// takes effect on the optimizer's next update.
	SetLR(lr float64)
}

// MomentumOptimizer is an optional extension of LROptimizer for optimizers
// whose momentum term (beta1 for Adam-family optimizers) can be cycled
// alongside the learning rate.
//
// Schedulers that cycle momentum type-assert for this interface and silently
// skip the momentum write when the optimizer does not provide it.
type MomentumOptimizer interface {
	LROptimizer

	// GetMomentum returns the current momentum coefficient.
	GetMomentum() float64

	// SetMomentum overwrites the momentum coefficient.
	SetMomentum(momentum float64)
}

// Scheduler is the base interface for all learning rate schedules.
//
// A Scheduler is a small state machine around a step counter: the learning
// rate is a pure function of that counter, and Step is the only mutation.
// Instances are owned by a single training loop and are not safe for
// concurrent use.
//
// All schedulers must implement:
//   - Step: Advance one step and write the new LR into the optimizer
//   - GetLR: Read the current LR without advancing
type Scheduler interface {
	// Step advances the schedule by one step, writes the new learning
	// rate into opt, and returns it. Calling Step past the end of a
	// bounded schedule is not an error: the counter saturates and the
	// terminal LR keeps being applied.
	Step(opt LROptimizer) float64

	// GetLR returns the learning rate for the current step without
	// mutating any state. Repeated calls return the identical value.
	GetLR() float64

	// CurrentStep returns the number of Step calls applied so far,
	// after saturation clamping.
	CurrentStep() int
}

// AnnealStrategy selects the interpolation curve used between phase
// endpoints.
type AnnealStrategy int

const (
	// AnnealCos interpolates along a half cosine. Both endpoints have
	// zero slope, so the LR derivative is continuous across phase
	// boundaries.
	AnnealCos AnnealStrategy = iota

	// AnnealLinear interpolates along a straight line.
	AnnealLinear
)

// annealCos interpolates from start to end for progress pct in [0, 1]
// along a half-cosine curve.
func annealCos(start, end, pct float64) float64 {
	return start + (end-start)*(1-math.Cos(math.Pi*pct))/2
}

// annealLinear interpolates from start to end for progress pct in [0, 1].
func annealLinear(start, end, pct float64) float64 {
	return start + (end-start)*pct
}

func (a AnnealStrategy) interp(start, end, pct float64) float64 {
	if a == AnnealLinear {
		return annealLinear(start, end, pct)
	}
	return annealCos(start, end, pct)
}
