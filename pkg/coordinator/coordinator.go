// Package coordinator advances a grid one generation at a time by splitting its
// rows among a fixed set of workers and reassembling their results.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
	"halo-life/pkg/partition"
)

var (
	// ErrNoWorkers is returned by New when the worker set is empty.
	ErrNoWorkers = errors.New("coordinator: no workers")
	// ErrReassembly is returned when gathered rows do not rebuild the grid shape.
	ErrReassembly = errors.New("coordinator: reassembled grid has wrong shape")
)

// Coordinator owns the grid between generations and drives a fixed worker set
// through lock-step scatter and gather points.
type Coordinator struct {
	workers []Worker
	rule    kernel.Rule
	timeout time.Duration
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRule selects the automaton rule. The default is kernel.Conway.
func WithRule(r kernel.Rule) Option {
	return func(c *Coordinator) { c.rule = r }
}

// WithTimeout bounds how long a generation waits at the gather point. Zero
// waits indefinitely.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) { c.timeout = d }
}

// New returns a Coordinator over workers, which are addressed by index in
// every generation.
func New(workers []Worker, opts ...Option) (*Coordinator, error) {
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	c := &Coordinator{workers: append([]Worker(nil), workers...), rule: kernel.Conway}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Workers returns the worker count.
func (c *Coordinator) Workers() int { return len(c.workers) }

// Rule returns the configured rule.
func (c *Coordinator) Rule() kernel.Rule { return c.rule }

// Advance computes the generation after g. g is not modified.
func (c *Coordinator) Advance(ctx context.Context, g *core.Grid) (*core.Grid, error) {
	plan, err := partition.Plan(g.Rows(), len(c.workers))
	if err != nil {
		return nil, err
	}
	if err := partition.Validate(plan, g.Rows()); err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// Scatter: every worker's private copy exists before any of them runs.
	slices := make([]*core.Grid, len(plan))
	for i, r := range plan {
		slices[i] = g.SubRows(r.SliceStart, r.SliceEnd)
	}

	owned := make([]*core.Grid, len(plan))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, w := range c.workers {
		eg.Go(func() error {
			updated, err := w.Step(egCtx, slices[i], c.rule)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			rows, err := partition.Trim(i, updated, plan)
			if err != nil {
				return err
			}
			owned[i] = rows
			return nil
		})
	}

	// Gather. A worker that ignores cancellation still cannot hold the
	// generation past ctx.
	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("gather: %w", ctx.Err())
	}

	next, err := core.Concat(owned...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReassembly, err)
	}
	if next.Rows() != g.Rows() || next.Cols() != g.Cols() {
		return nil, fmt.Errorf("got %dx%d, want %dx%d: %w", next.Rows(), next.Cols(), g.Rows(), g.Cols(), ErrReassembly)
	}
	return next, nil
}

// Run advances g for the given number of generations. observe, when non-nil,
// is called after each generation with its 1-based index; a non-nil error from
// it stops the run.
func (c *Coordinator) Run(ctx context.Context, g *core.Grid, generations int, observe func(gen int, g *core.Grid) error) (*core.Grid, error) {
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return g, err
		}
		next, err := c.Advance(ctx, g)
		if err != nil {
			return g, fmt.Errorf("generation %d: %w", gen, err)
		}
		g = next
		if observe != nil {
			if err := observe(gen, g); err != nil {
				return g, err
			}
		}
	}
	return g, nil
}

// Close releases workers that hold resources such as network connections.
func (c *Coordinator) Close() error {
	var errs []error
	for _, w := range c.workers {
		if closer, ok := w.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
