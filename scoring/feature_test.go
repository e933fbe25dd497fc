package scoring

import (
	"testing"

	"github.com/poiesic/homematch/core"
	"github.com/stretchr/testify/assert"
)

func TestToleranceScore(t *testing.T) {
	t.Run("exact match scores 1.0", func(t *testing.T) {
		v, ok := toleranceScore(core.Some(500000), core.Some(500000), 0.20)
		assert.True(t, ok)
		assert.Equal(t, 1.0, v)
	})

	t.Run("linear decay inside the band", func(t *testing.T) {
		// diff_ratio = 25000/500000 = 0.05, score = 1 - 0.05/0.20 = 0.75
		v, ok := toleranceScore(core.Some(500000), core.Some(475000), 0.20)
		assert.True(t, ok)
		assert.InDelta(t, 0.75, v, 1e-9)
	})

	t.Run("at the boundary scores 0.0", func(t *testing.T) {
		v, ok := toleranceScore(core.Some(100), core.Some(120), 0.20)
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})

	t.Run("outside the band scores 0.0", func(t *testing.T) {
		v, ok := toleranceScore(core.Some(100), core.Some(200), 0.20)
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})

	t.Run("absent target is undefined", func(t *testing.T) {
		_, ok := toleranceScore(core.None(), core.Some(100), 0.20)
		assert.False(t, ok)
	})

	t.Run("absent actual is undefined", func(t *testing.T) {
		_, ok := toleranceScore(core.Some(100), core.None(), 0.20)
		assert.False(t, ok)
	})

	t.Run("zero tolerance means exact match only", func(t *testing.T) {
		v, ok := toleranceScore(core.Some(100), core.Some(100), 0)
		assert.True(t, ok)
		assert.Equal(t, 1.0, v)

		v, ok = toleranceScore(core.Some(100), core.Some(100.01), 0)
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})

	t.Run("zero target matches only zero actual", func(t *testing.T) {
		v, ok := toleranceScore(core.Some(0), core.Some(0), 0.20)
		assert.True(t, ok)
		assert.Equal(t, 1.0, v)

		v, ok = toleranceScore(core.Some(0), core.Some(1), 0.20)
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})

	t.Run("defined scores stay in the unit interval", func(t *testing.T) {
		targets := []float64{1, 50, 500000, 1e9}
		actuals := []float64{0, 1, 49, 51, 475000, 2e9}
		for _, target := range targets {
			for _, actual := range actuals {
				v, ok := toleranceScore(core.Some(target), core.Some(actual), 0.20)
				assert.True(t, ok)
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		}
	})
}

func TestFlexScore(t *testing.T) {
	t.Run("exact match scores 1.0", func(t *testing.T) {
		v, ok := flexScore(core.Some(3), core.Some(3), 1)
		assert.True(t, ok)
		assert.Equal(t, 1.0, v)
	})

	t.Run("within flexibility earns flat partial credit", func(t *testing.T) {
		v, ok := flexScore(core.Some(3), core.Some(4), 1)
		assert.True(t, ok)
		assert.Equal(t, 0.7, v)

		v, ok = flexScore(core.Some(3), core.Some(2), 1)
		assert.True(t, ok)
		assert.Equal(t, 0.7, v)
	})

	t.Run("beyond flexibility scores 0.0", func(t *testing.T) {
		v, ok := flexScore(core.Some(3), core.Some(5), 1)
		assert.True(t, ok)
		assert.Equal(t, 0.0, v)
	})

	t.Run("absent side is undefined", func(t *testing.T) {
		_, ok := flexScore(core.None(), core.Some(3), 1)
		assert.False(t, ok)

		_, ok = flexScore(core.Some(3), core.None(), 1)
		assert.False(t, ok)
	})

	t.Run("result is strictly three-valued", func(t *testing.T) {
		for preferred := 0; preferred <= 6; preferred++ {
			for actual := 0; actual <= 6; actual++ {
				v, ok := flexScore(core.Some(float64(preferred)), core.Some(float64(actual)), 2)
				assert.True(t, ok)
				assert.Contains(t, []float64{0.0, 0.7, 1.0}, v)
			}
		}
	})
}
