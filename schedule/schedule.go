// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package schedule

import (
	"github.com/born-ml/sched/internal/schedule"
)

// ErrInvalidConfig is returned by scheduler constructors when a
// hyperparameter is outside its valid domain.
var ErrInvalidConfig = schedule.ErrInvalidConfig

// Scheduler defines the common interface for all learning rate schedules.
type Scheduler = schedule.Scheduler

// LROptimizer is the capability a scheduler requires from an optimizer.
type LROptimizer = schedule.LROptimizer

// MomentumOptimizer extends LROptimizer with momentum accessors.
type MomentumOptimizer = schedule.MomentumOptimizer

// AnnealStrategy selects the interpolation curve between phase endpoints.
type AnnealStrategy = schedule.AnnealStrategy

const (
	// AnnealCos interpolates along a half cosine (default).
	AnnealCos = schedule.AnnealCos

	// AnnealLinear interpolates along a straight line.
	AnnealLinear = schedule.AnnealLinear
)

// OneCycle (1cycle policy: warmup, then anneal)

// OneCycle represents the one-cycle learning rate scheduler.
type OneCycle = schedule.OneCycle

// OneCycleConfig contains configuration for the OneCycle scheduler.
type OneCycleConfig = schedule.OneCycleConfig

// NewOneCycle creates a new OneCycle scheduler.
//
// Example:
//
//	sched, err := schedule.NewOneCycle(schedule.OneCycleConfig{
//	    MaxLR:      0.01,
//	    TotalSteps: 1000,
//	    PctStart:   0.3,
//	})
func NewOneCycle(config OneCycleConfig) (*OneCycle, error) {
	return schedule.NewOneCycle(config)
}

// CosineAnnealing (half-cosine decay, optionally with warm restarts)

// CosineAnnealing represents the cosine annealing learning rate scheduler.
type CosineAnnealing = schedule.CosineAnnealing

// CosineAnnealingConfig contains configuration for the CosineAnnealing
// scheduler.
type CosineAnnealingConfig = schedule.CosineAnnealingConfig

// NewCosineAnnealing creates a new CosineAnnealing scheduler.
//
// Example:
//
//	sched, err := schedule.NewCosineAnnealing(schedule.CosineAnnealingConfig{
//	    BaseLR:      0.001,
//	    MinLR:       1e-6,
//	    PeriodSteps: 1000,
//	})
func NewCosineAnnealing(config CosineAnnealingConfig) (*CosineAnnealing, error) {
	return schedule.NewCosineAnnealing(config)
}
