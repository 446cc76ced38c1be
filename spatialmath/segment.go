// Package spatialmath defines the planar geometric primitives used for path
// proximity checking: distances between points, between a point and a finite
// segment, and between two finite segments.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r2"
)

// ParallelEpsilon is the absolute threshold below which the denominator of
// the segment intersection system is treated as zero, meaning the segments
// are parallel, anti-parallel, or degenerate (zero length).
const ParallelEpsilon = 1e-4

// EuclideanDistance returns the straight-line distance between two points.
func EuclideanDistance(p1, p2 r2.Point) float64 {
	return p1.Sub(p2).Norm()
}

// SegmentDistanceToSegment returns the minimum distance between the finite
// segment from a1 to a2 and the finite segment from b1 to b2. The infinite
// lines through each segment are intersected parametrically; if both
// parameters land within the segments, the segments cross and the distance is
// zero. Otherwise each parameter is clamped onto its own segment and the
// distance between the two clamped points is returned.
//
// When the segments are parallel or degenerate the system has no single
// solution and the length of segment a1a2 is returned instead. This is a
// conservative stand-in for the true parallel separation distance, not an
// exact answer.
func SegmentDistanceToSegment(a1, a2, b1, b2 r2.Point) float64 {
	dA := a2.Sub(a1)
	dB := b2.Sub(b1)

	denominator := dA.Y*dB.X - dA.X*dB.Y
	if math.Abs(denominator) < ParallelEpsilon {
		return EuclideanDistance(a1, a2)
	}

	t1 := ((a1.X-b1.X)*dB.Y + (b1.Y-a1.Y)*dB.X) / denominator
	t2 := ((a1.X-b1.X)*dA.Y + (b1.Y-a1.Y)*dA.X) / denominator

	if t1 >= 0 && t1 <= 1 && t2 >= 0 && t2 <= 1 {
		// The segments themselves intersect.
		return 0
	}

	// Each closest point must be built from its own segment's base point and
	// direction.
	closestA := a1.Add(dA.Mul(clamp01(t1)))
	closestB := b1.Add(dB.Mul(clamp01(t2)))
	return EuclideanDistance(closestA, closestB)
}

// DistToLineSegment returns the distance from the point p to the finite
// segment from a1 to a2.
func DistToLineSegment(a1, a2, p r2.Point) float64 {
	d := a2.Sub(a1)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return EuclideanDistance(a1, p)
	}
	t := clamp01(p.Sub(a1).Dot(d) / lengthSq)
	return EuclideanDistance(a1.Add(d.Mul(t)), p)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
