package coordinator

import (
	"context"

	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

// Worker computes the next generation of a slice it exclusively owns for the
// duration of one call. Implementations must return a grid with the same
// dimensions as slice.
type Worker interface {
	Step(ctx context.Context, slice *core.Grid, rule kernel.Rule) (*core.Grid, error)
}

// Local runs the update kernel in the calling goroutine.
type Local struct{}

// Step applies rule to slice.
func (Local) Step(ctx context.Context, slice *core.Grid, rule kernel.Rule) (*core.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return kernel.Step(slice, rule), nil
}

// LocalWorkers returns n in-process workers, or none when n < 1.
func LocalWorkers(n int) []Worker {
	workers := make([]Worker, max(n, 0))
	for i := range workers {
		workers[i] = Local{}
	}
	return workers
}
