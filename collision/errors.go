package collision

import "github.com/pkg/errors"

func newNegativeRadiusError(name string, radius float64) error {
	return errors.Errorf("agent %q has negative safety radius %f", name, radius)
}
