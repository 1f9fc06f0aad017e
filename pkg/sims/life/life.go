package life

import (
	"context"
	"log"

	"halo-life/pkg/coordinator"
	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

// Life runs a life-like automaton whose generations are computed by a pool of
// in-process workers, each owning a band of rows.
type Life struct {
	name  string
	cfg   Config
	coord *coordinator.Coordinator
	grid  *core.Grid
	gen   int
}

// New returns a simulation for cfg. It fails only for an unknown rule.
func New(cfg Config) (*Life, error) {
	rule, err := kernel.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	coord, err := coordinator.New(coordinator.LocalWorkers(workers), coordinator.WithRule(rule))
	if err != nil {
		return nil, err
	}
	return &Life{
		name:  cfg.Rule,
		cfg:   cfg,
		coord: coord,
		grid:  core.NewGrid(cfg.Height, cfg.Width),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Grid returns the current generation.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of completed generations since the last reset.
func (l *Life) Generation() int { return l.gen }

// Workers returns the size of the worker pool.
func (l *Life) Workers() int { return l.coord.Workers() }

// Alive counts live cells in the current generation.
func (l *Life) Alive() int { return l.grid.Alive() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.grid = core.NewGrid(l.cfg.Height, l.cfg.Width)
	core.NewRNG(seed).Fill(l.grid, l.cfg.Density)
	l.gen = 0
}

// Load replaces the board with a copy of g and restarts the generation count.
func (l *Life) Load(g *core.Grid) {
	l.grid = g.Clone()
	l.cfg.Width, l.cfg.Height = g.Cols(), g.Rows()
	l.gen = 0
}

// Step advances the simulation by one generation. On failure the current
// generation is kept.
func (l *Life) Step() {
	next, err := l.coord.Advance(context.Background(), l.grid)
	if err != nil {
		log.Printf("%s: generation %d: %v", l.name, l.gen+1, err)
		return
	}
	l.grid = next
	l.gen++
}

func init() {
	for _, name := range kernel.Names() {
		core.Register(name, func(cfg map[string]string) core.Sim {
			c := FromMap(cfg)
			if _, ok := cfg["rule"]; !ok {
				c.Rule = name
			}
			l, err := New(c)
			if err != nil {
				panic(err)
			}
			return l
		})
	}
}
