// Package rule30 exposes the distributed halo-exchange automaton as a
// registry-visible simulation. Each Step advances one generation
// across all workers and scrolls the display history downward, newest
// row on top.
package rule30

import (
	"context"
	"log"
	"strconv"

	"halo-ca/internal/core"
	"halo-ca/internal/halo"
)

// Config holds parameters for the distributed automaton sim.
type Config struct {
	Width   int
	Height  int
	Workers int
	Rule    uint8
	Random  bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Workers: 4, Rule: 30}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// Automaton implements core.Sim on top of the halo engine.
type Automaton struct {
	cfg    Config
	runner *halo.Runner
	hist   *core.ByteGrid
}

// New creates an automaton with the given configuration. The worker
// count is clamped so that every worker owns at least one cell.
func New(cfg Config) *Automaton {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Workers > cfg.Width {
		cfg.Workers = cfg.Width
	}
	a := &Automaton{cfg: cfg, hist: core.NewByteGrid(cfg.Width, cfg.Height)}
	a.Reset(0)
	return a
}

// Name returns the simulation identifier.
func (a *Automaton) Name() string { return "rule30" }

// Size returns the display grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.cfg.Width, H: a.cfg.Height} }

// Cells exposes the history buffer, newest generation first.
func (a *Automaton) Cells() []uint8 { return a.hist.Cells() }

// Reset rebuilds the engine from the seed row and clears the history.
// With Random set, the seed row is drawn from the provided seed;
// otherwise a single live cell sits in the middle of the row.
func (a *Automaton) Reset(seed int64) {
	row := halo.SingleSeed(a.cfg.Width)
	if a.cfg.Random {
		row = halo.RandomRow(a.cfg.Width, seed)
	}
	runner, err := halo.NewRunner(halo.Config{
		Width:   a.cfg.Width,
		Workers: a.cfg.Workers,
		Rule:    a.cfg.Rule,
	}, row)
	if err != nil {
		// Unreachable after clamping in New, but never leave a torn sim.
		log.Printf("rule30: reset: %v", err)
		return
	}
	a.runner = runner
	a.hist.Clear()
	copy(a.hist.Row(0), row)
}

// Step advances the distributed automaton by one generation and
// scrolls history downwards.
func (a *Automaton) Step() {
	if a.runner == nil {
		return
	}
	if err := a.runner.Step(context.Background()); err != nil {
		log.Printf("rule30: %v", err)
		return
	}
	a.hist.ScrollDown()
	a.runner.CopyGlobal(a.hist.Row(0))
}

func init() {
	core.Register("rule30", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
