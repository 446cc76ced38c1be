// Package main runs a collision check over a scene description file and
// prints the verdict. The collision library itself does no I/O; this binary
// is the thin caller around it.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"go.viam.com/pathcheck/config"
)

var logger = golog.NewDevelopmentLogger("pathcheck")

var app = &cli.App{
	Name:  "pathcheck",
	Usage: "check a planned 2D path against the predicted paths of surrounding agents",
	Flags: []cli.Flag{
		&cli.PathFlag{
			Name:  "scene",
			Usage: "JSON5 scene description; omit to run the built-in demo scene",
		},
		&cli.BoolFlag{
			Name:  "parallel",
			Usage: "evaluate surrounding agents concurrently",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "worker count for parallel evaluation; 0 selects one per CPU",
		},
		&cli.BoolFlag{
			Name:  "min-separation",
			Usage: "also print the minimum separation margin across all agents",
		},
	},
	Action: runCheck,
}

func runCheck(c *cli.Context) error {
	cfg := config.DemoSceneConfig()
	if scenePath := c.Path("scene"); scenePath != "" {
		var err error
		if cfg, err = config.ReadSceneConfig(scenePath); err != nil {
			return err
		}
	}

	scene, err := cfg.Scene()
	if err != nil {
		return err
	}
	logger.Debugf("checking ego path against %d surrounding agents", len(scene.Surroundings()))

	var collided bool
	if c.Bool("parallel") {
		if collided, err = scene.CollisionCheckParallel(c.Context, logger, c.Int("workers")); err != nil {
			return err
		}
	} else {
		collided = scene.CollisionCheck()
	}

	if collided {
		fmt.Println("collision")
	} else {
		fmt.Println("No collision")
	}

	if c.Bool("min-separation") {
		if margin := scene.MinSeparation(); !math.IsInf(margin, 1) {
			fmt.Printf("minimum separation margin: %.4f\n", margin)
		}
	}
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
