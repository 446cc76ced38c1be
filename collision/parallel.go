package collision

import (
	"context"
	"runtime"
	"sync"

	"github.com/edaniels/golog"
	"go.uber.org/atomic"
	goutils "go.viam.com/utils"

	"go.viam.com/pathcheck/utils"
)

// CollisionCheckParallel evaluates the surrounding agents across a fixed
// worker pool and reports the same verdict as CollisionCheck. The workers
// share a one-shot collision flag so that remaining agents are skipped once
// any worker finds a conflict. Cancelling the context stops the evaluation
// early; the verdict accumulated so far is returned alongside ctx.Err().
//
// nWorkers <= 0 selects a worker per available CPU.
func (s *Scene) CollisionCheckParallel(ctx context.Context, logger golog.Logger, nWorkers int) (bool, error) {
	if nWorkers <= 0 {
		nWorkers = runtime.GOMAXPROCS(0)
	}
	nWorkers = utils.MinInt(nWorkers, len(s.surroundings))
	if nWorkers <= 1 {
		return s.CollisionCheck(), ctx.Err()
	}

	agents := make(chan Agent, nWorkers)
	collided := atomic.NewBool(false)

	var workers sync.WaitGroup
	workers.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		goutils.PanicCapturingGo(func() {
			defer workers.Done()
			for agent := range agents {
				if collided.Load() || ctx.Err() != nil {
					continue
				}
				if PathsCollide(s.ego, agent) {
					logger.Debugf("ego path conflicts with agent %q", agent.Name)
					collided.Store(true)
				}
			}
		})
	}

	for _, agent := range s.surroundings {
		agents <- agent
	}
	close(agents)
	workers.Wait()

	return collided.Load(), ctx.Err()
}
