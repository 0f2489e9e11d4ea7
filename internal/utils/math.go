package utils

import (
	"math"
	"math/rand"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RollInt maps a roll from rnd onto the integer range [min, max].
// Services take an injected rnd so tests can pin every outcome.
func RollInt(rnd func() float64, min, max int) int {
	if min >= max {
		return min
	}
	n := min + int(math.Floor(rnd()*float64(max-min+1)))
	return Clamp(n, min, max)
}

// Clamp bounds value to [min, max]
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FloorScale multiplies value by factor and floors the result
func FloorScale(value int, factor float64) int {
	return int(math.Floor(float64(value) * factor))
}

// WeightedPick returns the index chosen by a roll in [0,1) against the given weights.
// Returns -1 when weights sum to zero.
func WeightedPick(roll float64, weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	target := roll * float64(total)
	acc := 0.0
	for i, w := range weights {
		acc += float64(w)
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
