package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomInt tests the random integer generator
func TestRandomInt(t *testing.T) {
	t.Run("returns value within range", func(t *testing.T) {
		min, max := 1, 10

		for i := 0; i < 100; i++ {
			result := RandomInt(min, max)
			assert.GreaterOrEqual(t, result, min)
			assert.LessOrEqual(t, result, max)
		}
	})

	t.Run("handles min equals max", func(t *testing.T) {
		assert.Equal(t, 42, RandomInt(42, 42))
	})

	t.Run("handles inverted range gracefully", func(t *testing.T) {
		assert.Equal(t, 10, RandomInt(10, 5), "Should return min when min > max")
	})
}

// TestRandomFloat tests the random float generator
func TestRandomFloat(t *testing.T) {
	for i := 0; i < 100; i++ {
		result := RandomFloat()
		assert.GreaterOrEqual(t, result, 0.0)
		assert.Less(t, result, 1.0)
	}
}

func TestRollInt(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		min, max int
		expected int
	}{
		{"lowest roll gives min", 0, 1, 5, 1},
		{"highest roll gives max", 0.9999, 1, 5, 5},
		{"middle roll", 0.5, 0, 4, 2},
		{"roll of exactly 1 is clamped", 1.0, 0, 4, 4},
		{"degenerate range", 0.7, 3, 3, 3},
		{"inverted range returns min", 0.7, 8, 3, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := func() float64 { return tt.roll }
			assert.Equal(t, tt.expected, RollInt(rnd, tt.min, tt.max))
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 10))
	assert.Equal(t, 10, Clamp(15, 0, 10))
	assert.Equal(t, 7, Clamp(7, 0, 10))
}

func TestFloorScale(t *testing.T) {
	assert.Equal(t, 7, FloorScale(15, 0.5))
	assert.Equal(t, 150, FloorScale(100, 1.5))
	assert.Equal(t, 0, FloorScale(1, 0.5))
}

func TestWeightedPick(t *testing.T) {
	weights := []int{2, 1, 1}

	assert.Equal(t, 0, WeightedPick(0.0, weights))
	assert.Equal(t, 0, WeightedPick(0.49, weights))
	assert.Equal(t, 1, WeightedPick(0.5, weights))
	assert.Equal(t, 2, WeightedPick(0.75, weights))
	assert.Equal(t, 2, WeightedPick(0.9999, weights))
	assert.Equal(t, -1, WeightedPick(0.3, []int{0, 0}))
}
