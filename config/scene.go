// Package config reads collision scene descriptions from JSON5 documents and
// converts them into evaluable scenes.
package config

import (
	"fmt"
	"os"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/multierr"

	"go.viam.com/pathcheck/collision"
)

// An AgentConfig describes one agent in a scene document: a name, a safety
// radius, and the sampled waypoints of its path as [x, y] pairs.
type AgentConfig struct {
	Name   string      `json:"name"`
	Radius float64     `json:"radius"`
	Path   [][]float64 `json:"path"`
}

// Validate ensures all parts of the config are valid; path locates the agent
// within the enclosing document for error reporting.
func (ac *AgentConfig) Validate(path string) error {
	if ac.Radius < 0 {
		return errors.Errorf("error validating %q: negative safety radius %f", path, ac.Radius)
	}
	for i, waypoint := range ac.Path {
		if len(waypoint) != 2 {
			return errors.Errorf("error validating %q: waypoint %d has %d coordinates, expected 2", path, i, len(waypoint))
		}
	}
	return nil
}

// Agent converts the config into a collision.Agent.
func (ac *AgentConfig) Agent() (collision.Agent, error) {
	trajectory := make(collision.Trajectory, 0, len(ac.Path))
	for _, waypoint := range ac.Path {
		trajectory = append(trajectory, r2.Point{X: waypoint[0], Y: waypoint[1]})
	}
	return collision.NewAgent(ac.Name, trajectory, ac.Radius)
}

// A SceneConfig describes a whole scene: the ego agent plus the surrounding
// agents its planned path is checked against.
type SceneConfig struct {
	Ego          AgentConfig   `json:"ego"`
	Surroundings []AgentConfig `json:"surroundings"`
}

// Validate ensures all parts of the config are valid.
func (sc *SceneConfig) Validate() error {
	err := sc.Ego.Validate("ego")
	for i := range sc.Surroundings {
		err = multierr.Append(err, sc.Surroundings[i].Validate(fmt.Sprintf("surroundings.%d", i)))
	}
	return err
}

// Scene converts the config into an evaluable collision.Scene.
func (sc *SceneConfig) Scene() (*collision.Scene, error) {
	ego, err := sc.Ego.Agent()
	if err != nil {
		return nil, err
	}
	surroundings := make([]collision.Agent, 0, len(sc.Surroundings))
	for i := range sc.Surroundings {
		agent, err := sc.Surroundings[i].Agent()
		if err != nil {
			return nil, err
		}
		surroundings = append(surroundings, agent)
	}
	return collision.NewScene(ego, surroundings...)
}

// ReadSceneConfig reads a scene description from the given file.
func ReadSceneConfig(filePath string) (*SceneConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read scene config %q", filePath)
	}
	var cfg SceneConfig
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "cannot parse scene config %q", filePath)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DemoSceneConfig returns the built-in demonstration scene: an ego path well
// clear of two surrounding agents, so the expected verdict is no collision.
func DemoSceneConfig() *SceneConfig {
	return &SceneConfig{
		Ego: AgentConfig{Name: "ego", Radius: 0, Path: [][]float64{{1, 2}, {2, 3}}},
		Surroundings: []AgentConfig{
			{Name: "vehicle-1", Radius: 0, Path: [][]float64{{4, 5}, {5, 6}}},
			{Name: "vehicle-2", Radius: 0, Path: [][]float64{{6, 7}, {7, 8}}},
		},
	}
}
