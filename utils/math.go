// Package utils contains small helpers shared across the library.
package utils

import "math"

// Float64AlmostEqual compares two float64s and returns if their difference
// is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func MaxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
