package life

import (
	"runtime"
	"strconv"

	"halo-life/pkg/kernel"
)

// Config holds parameters for a partitioned life-like simulation.
type Config struct {
	Width   int
	Height  int
	Workers int
	// Density is the percentage of cells alive after Reset.
	Density int
	Rule    string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Workers: runtime.NumCPU(), Density: 35, Rule: "life"}
}

// FromMap populates a Config from a string map. Invalid values keep defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := kernel.Lookup(v); err == nil {
			c.Rule = v
		}
	}
	return c
}
