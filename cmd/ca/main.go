//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"halo-life/internal/app"
	"halo-life/internal/gridio"
	"halo-life/pkg/core"
	_ "halo-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

type gridLoader interface {
	Load(g *core.Grid)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, err := cfg.Factory()
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	var initial *core.Grid
	if cfg.Input != "" {
		g, err := gridio.Load(cfg.Input)
		if err != nil {
			log.Fatal(err)
		}
		loader, ok := sim.(gridLoader)
		if !ok {
			log.Fatalf("%s cannot load grids", sim.Name())
		}
		loader.Load(g)
		initial = g
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	if initial != nil {
		game.SetInitial(initial)
	}
	size := sim.Size()

	ebiten.SetWindowTitle("halo-life — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
