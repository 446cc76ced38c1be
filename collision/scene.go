package collision

import (
	"math"

	"go.uber.org/multierr"
)

// A Scene is the unit of evaluation: one ego agent whose planned path is
// checked against the predicted paths of every surrounding agent. The scene
// only reads its agents' trajectories; it never mutates them and keeps no
// state between checks.
type Scene struct {
	ego          Agent
	surroundings []Agent
}

// NewScene constructs a Scene, validating the safety radius of the ego and
// of every surrounding agent. All validation failures are reported together.
func NewScene(ego Agent, surroundings ...Agent) (*Scene, error) {
	var err error
	if ego.Radius < 0 {
		err = multierr.Append(err, newNegativeRadiusError(ego.Name, ego.Radius))
	}
	for _, agent := range surroundings {
		if agent.Radius < 0 {
			err = multierr.Append(err, newNegativeRadiusError(agent.Name, agent.Radius))
		}
	}
	if err != nil {
		return nil, err
	}
	return &Scene{ego: ego, surroundings: surroundings}, nil
}

// Ego returns the scene's ego agent.
func (s *Scene) Ego() Agent {
	return s.ego
}

// Surroundings returns the scene's surrounding agents.
func (s *Scene) Surroundings() []Agent {
	return s.surroundings
}

// CollisionCheck reports whether the ego path conflicts with any surrounding
// agent's path, stopping at the first conflict found.
func (s *Scene) CollisionCheck() bool {
	for _, agent := range s.surroundings {
		if PathsCollide(s.ego, agent) {
			return true
		}
	}
	return false
}

// MinSeparation returns the smallest separation margin between the ego path
// and any surrounding agent's path, for ranking and diagnostics. It is +Inf
// when no surrounding agent defines a path segment.
func (s *Scene) MinSeparation() float64 {
	minMargin := math.Inf(1)
	for _, agent := range s.surroundings {
		if margin := PathSeparation(s.ego, agent); margin < minMargin {
			minMargin = margin
		}
	}
	return minMargin
}
