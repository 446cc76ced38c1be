package collision

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"go.viam.com/pathcheck/spatialmath"
)

// PathsCollide reports whether any segment of a's path passes strictly
// closer to any segment of b's path than the agents' combined safety radius.
// Every segment pair is compared, not only pairs sampled at the same time
// index, so two paths that sweep through the same space at different times
// still register as a conflict. An agent whose path defines no segments
// never collides.
func PathsCollide(a, b Agent) bool {
	safe := a.Radius + b.Radius
	for i := 0; i < a.Path.Segments(); i++ {
		for j := 0; j < b.Path.Segments(); j++ {
			dist := spatialmath.SegmentDistanceToSegment(a.Path[i], a.Path[i+1], b.Path[j], b.Path[j+1])
			if dist < safe {
				return true
			}
		}
	}
	return false
}

// PathSeparation returns the smallest margin between the two paths: the
// minimum segment-to-segment distance over all segment pairs, minus the
// combined safety radius. A negative margin means the paths conflict. If
// either path defines no segments there is nothing to compare and the margin
// is +Inf.
func PathSeparation(a, b Agent) float64 {
	nA, nB := a.Path.Segments(), b.Path.Segments()
	if nA == 0 || nB == 0 {
		return math.Inf(1)
	}
	safe := a.Radius + b.Radius
	margins := make([]float64, 0, nA*nB)
	for i := 0; i < nA; i++ {
		for j := 0; j < nB; j++ {
			dist := spatialmath.SegmentDistanceToSegment(a.Path[i], a.Path[i+1], b.Path[j], b.Path[j+1])
			margins = append(margins, dist-safe)
		}
	}
	return floats.Min(margins)
}
