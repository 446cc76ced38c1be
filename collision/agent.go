// Package collision evaluates whether the planned 2D path of one moving
// agent comes within an unsafe distance of the predicted paths of other
// moving agents. Paths are polylines over sampled waypoints; each agent's
// footprint is approximated by a circle of its safety radius, so two paths
// conflict when any pair of their segments passes closer than the sum of the
// two radii.
package collision

import "github.com/golang/geo/r2"

// A Trajectory is an ordered sequence of sampled 2D waypoints for a single
// agent; index order is chronological order.
type Trajectory []r2.Point

// Segments returns the number of consecutive-waypoint segments the
// trajectory defines. Trajectories with fewer than two waypoints define
// none.
func (t Trajectory) Segments() int {
	if len(t) < 2 {
		return 0
	}
	return len(t) - 1
}

// An Agent pairs a trajectory with the safety radius of the bounding circle
// used to approximate the agent's physical footprint.
type Agent struct {
	Name   string
	Path   Trajectory
	Radius float64
}

// NewAgent constructs an Agent. Negative safety radii are a caller contract
// violation and are rejected rather than clamped.
func NewAgent(name string, path Trajectory, radius float64) (Agent, error) {
	if radius < 0 {
		return Agent{}, newNegativeRadiusError(name, radius)
	}
	return Agent{Name: name, Path: path, Radius: radius}, nil
}
