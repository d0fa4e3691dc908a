// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides reference optimizers for learning rate scheduling.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - AdamW: Adam with decoupled weight decay
//   - Optimizer interface for custom optimizers
//
// The optimizers update flat float64 parameter vectors in place. They exist
// so a schedule can be exercised against a real optimizer without pulling in
// a tensor library: both expose GetLR/SetLR (and GetMomentum/SetMomentum),
// which is the entire surface the schedule package writes through.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/sched/optim"
//	    "github.com/born-ml/sched/schedule"
//	)
//
//	func main() {
//	    params := []float64{1.5, -0.5}
//
//	    // Create optimizer
//	    optimizer := optim.NewAdamW(params, optim.AdamWConfig{
//	        LR: 0.001,
//	    })
//
//	    // Create scheduler
//	    sched, err := schedule.NewOneCycle(schedule.OneCycleConfig{
//	        MaxLR:      0.01,
//	        TotalSteps: 1000,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Training loop
//	    for step := 0; step < 1000; step++ {
//	        grads := computeGradients(params)
//	        optimizer.Step(grads)
//	        sched.Step(optimizer)
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
// AdamW (Adam with decoupled weight decay):
//
//	optimizer := optim.NewAdamW(params, optim.AdamWConfig{
//	    LR:      0.001,
//	    Betas:   [2]float64{0.9, 0.999},
//	    Eps:     1e-8,
//	})
package optim
