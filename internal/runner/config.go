package runner

import (
	"errors"
	"flag"
	"runtime"
	"strings"
	"time"
)

// Config represents the command-line parameters of a headless run.
type Config struct {
	Input       string
	Random      string
	Seed        int64
	Density     int
	Generations int
	Workers     int
	Remote      string
	Rule        string
	Timeout     time.Duration
	Output      string
	Bitmap      string
	Frames      string
	Verbose     bool
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Input:       "input.txt",
		Seed:        42,
		Density:     35,
		Generations: 5,
		Workers:     runtime.NumCPU(),
		Rule:        "life",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "text grid to load (rows of 0/1)")
	fs.StringVar(&c.Random, "random", c.Random, "generate a random WxH grid instead of reading -input")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random")
	fs.IntVar(&c.Density, "density", c.Density, "percentage of live cells for -random")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to compute")
	fs.IntVar(&c.Workers, "workers", c.Workers, "number of in-process workers")
	fs.StringVar(&c.Remote, "remote", c.Remote, "comma-separated worker addresses; overrides -workers")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "abort a generation whose workers take longer than this (0 waits forever)")
	fs.StringVar(&c.Output, "output", c.Output, "write the final grid as text to this file")
	fs.StringVar(&c.Bitmap, "bitmap", c.Bitmap, "write the final grid as a .bmp or .png image")
	fs.StringVar(&c.Frames, "frames", c.Frames, "directory receiving one .bmp per generation")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every generation")
}

// RemoteAddrs splits Remote into addresses, dropping blanks.
func (c *Config) RemoteAddrs() []string {
	var addrs []string
	for _, a := range strings.Split(c.Remote, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}

// Validate reports configuration values no run can use.
func (c *Config) Validate() error {
	var errs []error
	if c.Generations < 0 {
		errs = append(errs, errors.New("-generations must not be negative"))
	}
	if c.Workers < 1 && len(c.RemoteAddrs()) == 0 {
		errs = append(errs, errors.New("-workers must be at least 1"))
	}
	if c.Density < 0 || c.Density > 100 {
		errs = append(errs, errors.New("-density must be within 0..100"))
	}
	if c.Timeout < 0 {
		errs = append(errs, errors.New("-timeout must not be negative"))
	}
	if c.Random == "" && c.Input == "" {
		errs = append(errs, errors.New("one of -input or -random is required"))
	}
	return errors.Join(errs...)
}
