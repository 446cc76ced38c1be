package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-9, 1e-6), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-6), test.ShouldBeFalse)
	test.That(t, Float64AlmostEqual(-2.5, -2.5, 1e-12), test.ShouldBeTrue)
}

func TestMinMaxInt(t *testing.T) {
	test.That(t, MinInt(3, 7), test.ShouldEqual, 3)
	test.That(t, MinInt(7, 3), test.ShouldEqual, 3)
	test.That(t, MaxInt(3, 7), test.ShouldEqual, 7)
	test.That(t, MaxInt(-1, -4), test.ShouldEqual, -1)
}
