// Package runner drives a fixed number of generations from a loaded grid and
// writes the results.
package runner

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"halo-life/internal/gridio"
	"halo-life/internal/render"
	"halo-life/internal/rpcworker"
	"halo-life/pkg/coordinator"
	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

// Run loads the starting grid, advances it cfg.Generations times and writes
// the configured outputs. It returns the final grid.
func Run(ctx context.Context, cfg *Config) (*core.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rule, err := kernel.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	grid, err := initialGrid(cfg)
	if err != nil {
		return nil, err
	}

	var workers []coordinator.Worker
	if addrs := cfg.RemoteAddrs(); len(addrs) > 0 {
		workers, err = rpcworker.DialAll(addrs)
		if err != nil {
			return nil, err
		}
	} else {
		workers = coordinator.LocalWorkers(cfg.Workers)
	}
	coord, err := coordinator.New(workers, coordinator.WithRule(rule), coordinator.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}
	defer coord.Close()

	if cfg.Frames != "" {
		if err := os.MkdirAll(cfg.Frames, 0o755); err != nil {
			return nil, err
		}
		if err := writeFrame(cfg.Frames, 0, grid); err != nil {
			return nil, err
		}
	}

	log.Printf("%dx%d grid, %d alive, %d workers, rule %s, %d generations",
		grid.Cols(), grid.Rows(), grid.Alive(), coord.Workers(), rule, cfg.Generations)

	start := time.Now()
	last := start
	final, err := coord.Run(ctx, grid, cfg.Generations, func(gen int, g *core.Grid) error {
		if cfg.Verbose {
			now := time.Now()
			log.Printf("generation %d: %d alive (%s)", gen, g.Alive(), now.Sub(last).Round(time.Microsecond))
			last = now
		}
		if cfg.Frames != "" {
			return writeFrame(cfg.Frames, gen, g)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("finished %d generations in %s, %d alive", cfg.Generations, time.Since(start).Round(time.Millisecond), final.Alive())

	if cfg.Output != "" {
		if err := gridio.Save(cfg.Output, final); err != nil {
			return nil, fmt.Errorf("write output: %w", err)
		}
	}
	if cfg.Bitmap != "" {
		if err := render.Save(cfg.Bitmap, final); err != nil {
			return nil, fmt.Errorf("write bitmap: %w", err)
		}
	}
	return final, nil
}

func initialGrid(cfg *Config) (*core.Grid, error) {
	if cfg.Random == "" {
		return gridio.Load(cfg.Input)
	}
	cols, rows, err := gridio.ParseSize(cfg.Random)
	if err != nil {
		return nil, err
	}
	return gridio.Random(rows, cols, cfg.Seed, cfg.Density), nil
}

func writeFrame(dir string, gen int, g *core.Grid) error {
	path := filepath.Join(dir, fmt.Sprintf("%04d.bmp", gen))
	if err := render.Save(path, g); err != nil {
		return fmt.Errorf("frame %d: %w", gen, err)
	}
	return nil
}
