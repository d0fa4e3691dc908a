package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both policies must be drivable through the Scheduler interface so a
// training loop can swap them without code changes.
func TestScheduler_Polymorphic(t *testing.T) {
	oneCycle, err := NewOneCycle(OneCycleConfig{MaxLR: 1e-2, TotalSteps: 20})
	require.NoError(t, err)
	cosine, err := NewCosineAnnealing(CosineAnnealingConfig{BaseLR: 1e-2, PeriodSteps: 20})
	require.NoError(t, err)

	for _, sched := range []Scheduler{oneCycle, cosine} {
		opt := &fakeOptimizer{}
		for i := 0; i < 20; i++ {
			lr := sched.Step(opt)
			assert.Equal(t, lr, sched.GetLR())
			assert.Equal(t, lr, opt.lr)
		}
		assert.Equal(t, 20, sched.CurrentStep())
	}
}

func TestAnnealCos_Endpoints(t *testing.T) {
	assert.InDelta(t, 0.2, annealCos(0.2, 0.8, 0), 1e-12)
	assert.InDelta(t, 0.8, annealCos(0.2, 0.8, 1), 1e-12)
	assert.InDelta(t, 0.5, annealCos(0.2, 0.8, 0.5), 1e-12, "half-cosine midpoint is the arithmetic mean")
}

func TestAnnealLinear_Endpoints(t *testing.T) {
	assert.InDelta(t, 0.2, annealLinear(0.2, 0.8, 0), 1e-12)
	assert.InDelta(t, 0.8, annealLinear(0.2, 0.8, 1), 1e-12)
	assert.InDelta(t, 0.35, annealLinear(0.2, 0.8, 0.25), 1e-12)
}
