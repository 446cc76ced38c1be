package config

import (
	"testing"

	"go.viam.com/test"
)

func TestReadSceneConfig(t *testing.T) {
	cfg, err := ReadSceneConfig("testdata/demo.json5")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.Ego.Name, test.ShouldEqual, "ego")
	test.That(t, len(cfg.Surroundings), test.ShouldEqual, 2)

	scene, err := cfg.Scene()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.CollisionCheck(), test.ShouldBeFalse)

	cfg, err = ReadSceneConfig("testdata/crossing.json5")
	test.That(t, err, test.ShouldBeNil)
	scene, err = cfg.Scene()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, scene.CollisionCheck(), test.ShouldBeTrue)
}

func TestReadSceneConfigErrors(t *testing.T) {
	_, err := ReadSceneConfig("testdata/does_not_exist.json5")
	test.That(t, err, test.ShouldNotBeNil)

	_, err = ReadSceneConfig("testdata/negative_radius.json5")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "negative safety radius")
}

func TestAgentConfigValidate(t *testing.T) {
	good := AgentConfig{Name: "a", Radius: 1, Path: [][]float64{{0, 0}, {1, 1}}}
	test.That(t, good.Validate("surroundings.0"), test.ShouldBeNil)

	badRadius := AgentConfig{Name: "a", Radius: -0.5}
	err := badRadius.Validate("surroundings.0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "surroundings.0")

	badWaypoint := AgentConfig{Name: "a", Radius: 1, Path: [][]float64{{0, 0, 0}}}
	err = badWaypoint.Validate("ego")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "expected 2")
}

func TestSceneConfigValidateAggregates(t *testing.T) {
	cfg := SceneConfig{
		Ego: AgentConfig{Name: "ego", Radius: -1},
		Surroundings: []AgentConfig{
			{Name: "ok", Radius: 0},
			{Name: "bad", Radius: -2},
		},
	}
	err := cfg.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "ego")
	test.That(t, err.Error(), test.ShouldContainSubstring, "surroundings.1")
}

func TestDemoSceneConfig(t *testing.T) {
	cfg := DemoSceneConfig()
	test.That(t, cfg.Validate(), test.ShouldBeNil)

	scene, err := cfg.Scene()
	test.That(t, err, test.ShouldBeNil)
	// matches the reference demo's expected "No collision" output
	test.That(t, scene.CollisionCheck(), test.ShouldBeFalse)
	test.That(t, len(scene.Surroundings()), test.ShouldEqual, 2)
}
