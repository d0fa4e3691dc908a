package schedule

import (
	"fmt"
	"math"
)

// OneCycle implements the 1cycle learning rate policy.
//
// The cycle has two phases over TotalSteps steps:
//  1. Warmup: LR ramps from MaxLR/DivFactor up to MaxLR over the first
//     round(PctStart*TotalSteps) steps.
//  2. Anneal: LR decays from MaxLR down to MaxLR/(DivFactor*FinalDivFactor)
//     over the remaining steps.
//
// Both ramps use cosine interpolation by default, which has zero slope at
// the endpoints and keeps the LR derivative continuous at the phase
// boundary.
//
// When momentum cycling is enabled (MaxMomentum > 0) and the optimizer
// implements MomentumOptimizer, the momentum coefficient runs the inverse
// cycle: MaxMomentum down to MinMomentum over the warmup, then back up to
// MaxMomentum over the anneal.
//
// Reference: "Super-Convergence: Very Fast Training of Neural Networks Using
// Large Learning Rates" (Smith & Topin, 2017)
//
// Example:
//
//	sched, err := schedule.NewOneCycle(schedule.OneCycleConfig{
//	    MaxLR:      1e-2,
//	    TotalSteps: 1000,
//	    PctStart:   0.3,
//	})
type OneCycle struct {
	maxLR       float64
	initialLR   float64
	finalLR     float64
	totalSteps  int
	warmupSteps int
	annealSteps int
	anneal      AnnealStrategy

	maxMomentum float64
	minMomentum float64

	current int
}

// OneCycleConfig holds configuration for the OneCycle scheduler.
type OneCycleConfig struct {
	// MaxLR is the peak learning rate, reached at the end of the warmup
	// phase. Required, must be > 0.
	MaxLR float64

	// TotalSteps is the full cycle length in optimizer steps. Required,
	// must be > 0.
	TotalSteps int

	// DivFactor determines the initial LR: MaxLR/DivFactor.
	// Must be > 1 (default: 25).
	DivFactor float64

	// FinalDivFactor determines the final LR relative to the initial LR:
	// MaxLR/(DivFactor*FinalDivFactor). Must be > 0 (default: 1, i.e. the
	// cycle ends where it started). Values > 1 decay deeper; values < 1
	// are accepted and end above the initial LR.
	FinalDivFactor float64

	// PctStart is the fraction of TotalSteps spent in the warmup phase.
	// Must be in (0, 1) (default: 0.3).
	PctStart float64

	// Anneal selects the interpolation curve for both phases
	// (default: AnnealCos).
	Anneal AnnealStrategy

	// MaxMomentum enables momentum cycling when > 0: the momentum
	// coefficient runs MaxMomentum -> MinMomentum -> MaxMomentum,
	// mirroring the LR cycle. Ignored for optimizers that do not
	// implement MomentumOptimizer (default: 0, disabled).
	MaxMomentum float64

	// MinMomentum is the momentum floor reached at peak LR
	// (default: MaxMomentum/DivFactor).
	MinMomentum float64
}

// NewOneCycle creates a new OneCycle scheduler.
//
// Returns ErrInvalidConfig if MaxLR or TotalSteps is not positive, DivFactor
// is not > 1, FinalDivFactor is not > 0, or PctStart is outside (0, 1).
func NewOneCycle(config OneCycleConfig) (*OneCycle, error) {
	// Set defaults
	if config.DivFactor == 0 {
		config.DivFactor = 25
	}
	if config.FinalDivFactor == 0 {
		config.FinalDivFactor = 1
	}
	if config.PctStart == 0 {
		config.PctStart = 0.3
	}
	if config.MaxMomentum > 0 && config.MinMomentum == 0 {
		config.MinMomentum = config.MaxMomentum / config.DivFactor
	}

	if config.MaxLR <= 0 {
		return nil, fmt.Errorf("%w: MaxLR must be > 0, got %g", ErrInvalidConfig, config.MaxLR)
	}
	if config.TotalSteps <= 0 {
		return nil, fmt.Errorf("%w: TotalSteps must be > 0, got %d", ErrInvalidConfig, config.TotalSteps)
	}
	if config.DivFactor <= 1 {
		return nil, fmt.Errorf("%w: DivFactor must be > 1, got %g", ErrInvalidConfig, config.DivFactor)
	}
	if config.FinalDivFactor <= 0 {
		return nil, fmt.Errorf("%w: FinalDivFactor must be > 0, got %g", ErrInvalidConfig, config.FinalDivFactor)
	}
	if config.PctStart <= 0 || config.PctStart >= 1 {
		return nil, fmt.Errorf("%w: PctStart must be in (0, 1), got %g", ErrInvalidConfig, config.PctStart)
	}

	warmup := int(math.Round(config.PctStart * float64(config.TotalSteps)))

	return &OneCycle{
		maxLR:       config.MaxLR,
		initialLR:   config.MaxLR / config.DivFactor,
		finalLR:     config.MaxLR / (config.DivFactor * config.FinalDivFactor),
		totalSteps:  config.TotalSteps,
		warmupSteps: warmup,
		annealSteps: config.TotalSteps - warmup,
		anneal:      config.Anneal,
		maxMomentum: config.MaxMomentum,
		minMomentum: config.MinMomentum,
	}, nil
}

// lrAt returns the learning rate for step s. Pure function of s; all edge
// cases (zero-length phases, s past the end) resolve by clamping.
func (o *OneCycle) lrAt(s int) float64 {
	if s <= o.warmupSteps {
		return o.anneal.interp(o.initialLR, o.maxLR, o.warmupProgress(s))
	}
	return o.anneal.interp(o.maxLR, o.finalLR, o.annealProgress(s))
}

// momentumAt returns the momentum coefficient for step s: the inverse of
// the LR cycle.
func (o *OneCycle) momentumAt(s int) float64 {
	if s <= o.warmupSteps {
		return o.anneal.interp(o.maxMomentum, o.minMomentum, o.warmupProgress(s))
	}
	return o.anneal.interp(o.minMomentum, o.maxMomentum, o.annealProgress(s))
}

func (o *OneCycle) warmupProgress(s int) float64 {
	if o.warmupSteps == 0 {
		return 1
	}
	return float64(s) / float64(o.warmupSteps)
}

func (o *OneCycle) annealProgress(s int) float64 {
	if o.annealSteps == 0 {
		// PctStart rounded up to the full cycle: stay at the peak.
		return 0
	}
	p := float64(s-o.warmupSteps) / float64(o.annealSteps)
	return math.Min(p, 1)
}

// Step advances the cycle by one step, writes the new learning rate (and,
// when cycling is enabled, the new momentum) into opt, and returns the LR.
//
// The step counter saturates at TotalSteps: further calls keep applying the
// terminal LR and never fail.
func (o *OneCycle) Step(opt LROptimizer) float64 {
	if o.current < o.totalSteps {
		o.current++
	}

	lr := o.lrAt(o.current)
	opt.SetLR(lr)

	if o.maxMomentum > 0 {
		if mopt, ok := opt.(MomentumOptimizer); ok {
			mopt.SetMomentum(o.momentumAt(o.current))
		}
	}

	return lr
}

// GetLR returns the learning rate for the current step without mutation.
func (o *OneCycle) GetLR() float64 {
	return o.lrAt(o.current)
}

// GetMomentum returns the momentum coefficient for the current step, or 0
// when momentum cycling is disabled.
func (o *OneCycle) GetMomentum() float64 {
	if o.maxMomentum == 0 {
		return 0
	}
	return o.momentumAt(o.current)
}

// CurrentStep returns the number of applied steps, clamped at TotalSteps.
func (o *OneCycle) CurrentStep() int {
	return o.current
}

// WarmupSteps returns the number of steps in the warmup phase.
func (o *OneCycle) WarmupSteps() int {
	return o.warmupSteps
}
