package schedule

import (
	"fmt"
	"math"
)

// CosineAnnealing decays the learning rate from BaseLR down to MinLR along
// a half-cosine curve over PeriodSteps steps.
//
//	lr(s) = MinLR + (BaseLR-MinLR) * (1 + cos(pi*s/PeriodSteps)) / 2
//
// Without restarts the step counter saturates at PeriodSteps and the
// schedule holds MinLR. With restarts enabled the counter wraps, so the LR
// re-warms to BaseLR at every period boundary (SGDR-style warm restarts
// with a fixed period).
//
// Reference: "SGDR: Stochastic Gradient Descent with Warm Restarts"
// (Loshchilov & Hutter, 2016)
//
// Example:
//
//	sched, err := schedule.NewCosineAnnealing(schedule.CosineAnnealingConfig{
//	    BaseLR:      1e-3,
//	    MinLR:       1e-6,
//	    PeriodSteps: 1000,
//	})
type CosineAnnealing struct {
	baseLR      float64
	minLR       float64
	periodSteps int
	restarts    bool

	current int
}

// CosineAnnealingConfig holds configuration for the CosineAnnealing
// scheduler.
type CosineAnnealingConfig struct {
	// BaseLR is the learning rate at step 0. Required, must be > 0.
	BaseLR float64

	// MinLR is the floor reached at the end of each period. Must be
	// >= 0 and < BaseLR (default: 0).
	MinLR float64

	// PeriodSteps is the length of one half-cosine cycle in optimizer
	// steps. Required, must be > 0. Without restarts this is the total
	// schedule length.
	PeriodSteps int

	// Restarts re-warms the LR to BaseLR at every period boundary
	// instead of holding MinLR (default: false).
	Restarts bool
}

// NewCosineAnnealing creates a new CosineAnnealing scheduler.
//
// Returns ErrInvalidConfig if BaseLR is not positive, MinLR is negative or
// not below BaseLR, or PeriodSteps is not positive.
func NewCosineAnnealing(config CosineAnnealingConfig) (*CosineAnnealing, error) {
	if config.BaseLR <= 0 {
		return nil, fmt.Errorf("%w: BaseLR must be > 0, got %g", ErrInvalidConfig, config.BaseLR)
	}
	if config.MinLR < 0 || config.MinLR >= config.BaseLR {
		return nil, fmt.Errorf("%w: MinLR must be in [0, BaseLR), got %g", ErrInvalidConfig, config.MinLR)
	}
	if config.PeriodSteps <= 0 {
		return nil, fmt.Errorf("%w: PeriodSteps must be > 0, got %d", ErrInvalidConfig, config.PeriodSteps)
	}

	return &CosineAnnealing{
		baseLR:      config.BaseLR,
		minLR:       config.MinLR,
		periodSteps: config.PeriodSteps,
		restarts:    config.Restarts,
	}, nil
}

// lrAt returns the learning rate for step s. With restarts the step wraps
// into the current period, so every period boundary re-warms to BaseLR.
func (c *CosineAnnealing) lrAt(s int) float64 {
	if c.restarts {
		s %= c.periodSteps
	}
	pct := float64(s) / float64(c.periodSteps)
	return c.minLR + (c.baseLR-c.minLR)*(1+math.Cos(math.Pi*pct))/2
}

// Step advances the schedule by one step, writes the new learning rate
// into opt, and returns it. Without restarts the counter saturates at
// PeriodSteps and further calls keep applying MinLR.
func (c *CosineAnnealing) Step(opt LROptimizer) float64 {
	if c.restarts || c.current < c.periodSteps {
		c.current++
	}

	lr := c.lrAt(c.current)
	opt.SetLR(lr)
	return lr
}

// GetLR returns the learning rate for the current step without mutation.
func (c *CosineAnnealing) GetLR() float64 {
	return c.lrAt(c.current)
}

// CurrentStep returns the number of applied steps. Without restarts it is
// clamped at PeriodSteps; with restarts it grows without bound.
func (c *CosineAnnealing) CurrentStep() int {
	return c.current
}
