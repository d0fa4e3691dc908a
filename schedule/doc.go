// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package schedule provides learning rate schedules for training neural
// networks.
//
// # Overview
//
// This package contains:
//   - OneCycle: Warmup to a peak LR, then anneal down (Smith's 1cycle policy)
//   - CosineAnnealing: Half-cosine decay, optionally with warm restarts
//   - Scheduler interface for custom schedules
//
// A scheduler is a small state machine around a step counter. Each call to
// Step advances the counter by one, computes the learning rate for the new
// step, and writes it into the optimizer through the narrow LROptimizer
// interface. The learning rate is a pure function of the counter: Step and
// GetLR never fail, never block, and run in constant time, so they are safe
// to call once per step in a tight training loop.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/sched/optim"
//	    "github.com/born-ml/sched/schedule"
//	)
//
//	func main() {
//	    optimizer := optim.NewAdamW(params, optim.AdamWConfig{LR: 1e-4})
//
//	    sched, err := schedule.NewOneCycle(schedule.OneCycleConfig{
//	        MaxLR:      0.01,
//	        TotalSteps: 1000,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    for step := 0; step < 1000; step++ {
//	        grads := computeGradients(params)
//	        optimizer.Step(grads)
//	        sched.Step(optimizer)
//	    }
//	}
//
// # Schedules
//
// OneCycle ramps the LR from MaxLR/DivFactor up to MaxLR over the first
// PctStart fraction of the run, then anneals it down to
// MaxLR/(DivFactor*FinalDivFactor):
//
//	sched, err := schedule.NewOneCycle(schedule.OneCycleConfig{
//	    MaxLR:       0.01,
//	    TotalSteps:  1000,
//	    PctStart:    0.3,
//	    MaxMomentum: 0.95, // optional: cycle beta1 inversely to the LR
//	})
//
// CosineAnnealing decays the LR from BaseLR to MinLR along a half cosine:
//
//	sched, err := schedule.NewCosineAnnealing(schedule.CosineAnnealingConfig{
//	    BaseLR:      0.001,
//	    MinLR:       1e-6,
//	    PeriodSteps: 1000,
//	    Restarts:    false, // true re-warms to BaseLR each period
//	})
//
// # Optimizer Boundary
//
// Schedulers depend only on the LROptimizer capability:
//
//	type LROptimizer interface {
//	    GetLR() float64
//	    SetLR(lr float64)
//	}
//
// Any optimizer exposing this pair is schedulable; the scheduler never
// inspects parameters, gradients, or optimizer internals. Optimizers that
// additionally implement MomentumOptimizer get their momentum coefficient
// cycled by OneCycle when momentum cycling is enabled.
//
// # Error Handling
//
// Construction is the only fallible operation. All configuration problems
// surface immediately as errors wrapping ErrInvalidConfig:
//
//	_, err := schedule.NewOneCycle(schedule.OneCycleConfig{MaxLR: -1})
//	errors.Is(err, schedule.ErrInvalidConfig) // true
//
// Step-index edge cases (zero-length phases, stepping past the end of a
// bounded schedule) are handled by clamping, never by errors or panics.
package schedule
