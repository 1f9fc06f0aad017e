package app

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"halo-life/pkg/core"
	"halo-life/pkg/kernel"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Workers int
	Input   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 30, Seed: 42, Width: 256, Height: 256, Workers: runtime.NumCPU()}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "rule", c.Sim, "rule to run: a name (life, highlife, seeds, daynight) or B<digits>/S<digits>")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width for random boards")
	fs.IntVar(&c.Height, "h", c.Height, "grid height for random boards")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of partition workers")
	fs.StringVar(&c.Input, "input", c.Input, "text grid to load instead of a random board")
}

// SimConfig converts the flags into the key/value form sim factories accept.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"workers": strconv.Itoa(c.Workers),
		"rule":    c.Sim,
	}
}

// Factory resolves the -rule value. Registered names map to their own sim;
// any other rule kernel.Lookup accepts runs on the life sim.
func (c *Config) Factory() (core.Factory, error) {
	sims := core.Sims()
	if f, ok := sims[c.Sim]; ok {
		return f, nil
	}
	if _, err := kernel.Lookup(c.Sim); err != nil {
		return nil, fmt.Errorf("unknown rule %q (have %s, or B<digits>/S<digits>)", c.Sim, strings.Join(core.SimNames(), ", "))
	}
	f, ok := sims["life"]
	if !ok {
		return nil, fmt.Errorf("rule %q: life sim not registered", c.Sim)
	}
	return f, nil
}
