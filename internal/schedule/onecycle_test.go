package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOptimizer records LR writes for assertions.
type fakeOptimizer struct {
	lr     float64
	writes int
}

func (f *fakeOptimizer) GetLR() float64 { return f.lr }

func (f *fakeOptimizer) SetLR(lr float64) {
	f.lr = lr
	f.writes++
}

// fakeMomentumOptimizer additionally records momentum writes.
type fakeMomentumOptimizer struct {
	fakeOptimizer
	momentum       float64
	momentumWrites int
}

func (f *fakeMomentumOptimizer) GetMomentum() float64 { return f.momentum }

func (f *fakeMomentumOptimizer) SetMomentum(m float64) {
	f.momentum = m
	f.momentumWrites++
}

func TestOneCycle_BoundaryValues(t *testing.T) {
	// MaxLR=1e-2 over 10 steps with the default DivFactor 25 and
	// PctStart 0.3: warmup is 3 steps, LR runs 4e-4 -> 1e-2 -> 4e-4.
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:      1e-2,
		TotalSteps: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 3, sched.WarmupSteps())

	opt := &fakeOptimizer{}
	assert.InDelta(t, 4e-4, sched.GetLR(), 1e-12, "initial LR is MaxLR/DivFactor")

	for i := 0; i < 3; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 1e-2, sched.GetLR(), 1e-12, "peak LR reached exactly at the warmup boundary")

	for i := 3; i < 10; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 4e-4, sched.GetLR(), 1e-12, "cycle ends at MaxLR/(DivFactor*FinalDivFactor)")
	assert.Equal(t, 10, sched.CurrentStep())
}

func TestOneCycle_Monotonic(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:      0.1,
		TotalSteps: 100,
		PctStart:   0.4,
	})
	require.NoError(t, err)

	opt := &fakeOptimizer{}
	prev := sched.GetLR()
	for s := 1; s <= 100; s++ {
		lr := sched.Step(opt)
		if s <= sched.WarmupSteps() {
			assert.GreaterOrEqual(t, lr, prev, "warmup LR must not decrease at step %d", s)
		} else {
			assert.LessOrEqual(t, lr, prev, "anneal LR must not increase at step %d", s)
		}
		prev = lr
	}
}

func TestOneCycle_GetLRIdempotent(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{MaxLR: 1e-3, TotalSteps: 50})
	require.NoError(t, err)

	sched.Step(&fakeOptimizer{})
	lr := sched.GetLR()
	for i := 0; i < 5; i++ {
		assert.Equal(t, lr, sched.GetLR())
	}
}

func TestOneCycle_StepSaturates(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10})
	require.NoError(t, err)

	opt := &fakeOptimizer{}
	for i := 0; i < 25; i++ {
		sched.Step(opt)
	}

	assert.Equal(t, 10, sched.CurrentStep())
	assert.InDelta(t, 4e-4, sched.GetLR(), 1e-12, "terminal LR held after saturation")
	assert.Equal(t, 25, opt.writes, "every Step writes the optimizer exactly once")
}

func TestOneCycle_WritesOptimizer(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10})
	require.NoError(t, err)

	opt := &fakeOptimizer{lr: 123}
	lr := sched.Step(opt)
	assert.Equal(t, lr, opt.lr, "Step writes the returned LR into the optimizer")
	assert.Equal(t, 1, opt.writes)
}

func TestOneCycle_CosineMidWarmup(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10})
	require.NoError(t, err)

	opt := &fakeOptimizer{}
	// Step 1 of 3 warmup steps: p=1/3,
	// lr = 4e-4 + (1e-2 - 4e-4)*(1-cos(pi/3))/2 = 2.8e-3.
	lr := sched.Step(opt)
	assert.InDelta(t, 2.8e-3, lr, 1e-12)
}

func TestOneCycle_LinearAnneal(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:      1.0,
		TotalSteps: 10,
		DivFactor:  10,
		PctStart:   0.5,
		Anneal:     AnnealLinear,
	})
	require.NoError(t, err)

	opt := &fakeOptimizer{}
	// Warmup is 5 steps from 0.1 to 1.0, linear.
	assert.InDelta(t, 0.1, sched.GetLR(), 1e-12)
	sched.Step(opt)
	assert.InDelta(t, 0.28, sched.GetLR(), 1e-12)
	for i := 1; i < 5; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 1.0, sched.GetLR(), 1e-12)
	// Anneal is 5 steps from 1.0 back to 0.1, linear.
	sched.Step(opt)
	assert.InDelta(t, 0.82, sched.GetLR(), 1e-12)
}

func TestOneCycle_DeepFinalDecay(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:          1e-2,
		TotalSteps:     10,
		FinalDivFactor: 100,
	})
	require.NoError(t, err)

	opt := &fakeOptimizer{}
	for i := 0; i < 10; i++ {
		sched.Step(opt)
	}
	// final = 1e-2 / (25 * 100)
	assert.InDelta(t, 4e-6, sched.GetLR(), 1e-15)
}

func TestOneCycle_InvertedDecayAccepted(t *testing.T) {
	// FinalDivFactor < 1 ends the cycle above the initial LR. Unusual,
	// but accepted.
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:          1e-2,
		TotalSteps:     10,
		FinalDivFactor: 0.5,
	})
	require.NoError(t, err)

	opt := &fakeOptimizer{}
	for i := 0; i < 10; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 8e-4, sched.GetLR(), 1e-12)
}

func TestOneCycle_ZeroAnnealPhase(t *testing.T) {
	// PctStart large enough that the warmup rounds up to the whole
	// cycle: LR holds MaxLR after the warmup instead of erroring.
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:      1e-2,
		TotalSteps: 10,
		PctStart:   0.99,
	})
	require.NoError(t, err)
	require.Equal(t, 10, sched.WarmupSteps())

	opt := &fakeOptimizer{}
	for i := 0; i < 15; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 1e-2, sched.GetLR(), 1e-12)
}

func TestOneCycle_MomentumCycle(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:       1e-2,
		TotalSteps:  10,
		MaxMomentum: 0.9,
		MinMomentum: 0.85,
	})
	require.NoError(t, err)

	opt := &fakeMomentumOptimizer{}
	assert.InDelta(t, 0.9, sched.GetMomentum(), 1e-12, "momentum starts at MaxMomentum")

	for i := 0; i < 3; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 0.85, sched.GetMomentum(), 1e-12, "momentum floor at peak LR")
	assert.InDelta(t, 0.85, opt.momentum, 1e-12)

	for i := 3; i < 10; i++ {
		sched.Step(opt)
	}
	assert.InDelta(t, 0.9, sched.GetMomentum(), 1e-12, "momentum recovers by the end of the cycle")
	assert.Equal(t, 10, opt.momentumWrites)
}

func TestOneCycle_MomentumDefaultMin(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:       1e-2,
		TotalSteps:  10,
		MaxMomentum: 0.9,
	})
	require.NoError(t, err)

	opt := &fakeMomentumOptimizer{}
	for i := 0; i < 3; i++ {
		sched.Step(opt)
	}
	// Default MinMomentum = MaxMomentum/DivFactor.
	assert.InDelta(t, 0.9/25, opt.momentum, 1e-12)
}

func TestOneCycle_MomentumSkippedForPlainOptimizer(t *testing.T) {
	sched, err := NewOneCycle(OneCycleConfig{
		MaxLR:       1e-2,
		TotalSteps:  10,
		MaxMomentum: 0.9,
	})
	require.NoError(t, err)

	// Optimizer without momentum support: LR still scheduled, no panic.
	opt := &fakeOptimizer{}
	for i := 0; i < 10; i++ {
		sched.Step(opt)
	}
	assert.Equal(t, 10, opt.writes)
}

func TestOneCycle_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config OneCycleConfig
	}{
		{"negative MaxLR", OneCycleConfig{MaxLR: -1, TotalSteps: 10}},
		{"zero MaxLR", OneCycleConfig{MaxLR: 0, TotalSteps: 10}},
		{"zero TotalSteps", OneCycleConfig{MaxLR: 1e-2, TotalSteps: 0}},
		{"negative TotalSteps", OneCycleConfig{MaxLR: 1e-2, TotalSteps: -5}},
		{"DivFactor of 1", OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10, DivFactor: 1}},
		{"negative FinalDivFactor", OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10, FinalDivFactor: -2}},
		{"PctStart of 1", OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10, PctStart: 1}},
		{"PctStart above 1", OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10, PctStart: 1.5}},
		{"negative PctStart", OneCycleConfig{MaxLR: 1e-2, TotalSteps: 10, PctStart: -0.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOneCycle(tt.config)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
