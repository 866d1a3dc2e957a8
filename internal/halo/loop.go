package halo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sink consumes one copy of the global row per generation, in
// left-to-right cell order.
type Sink interface {
	WriteRow(cells []Cell) error
}

// Recorder is a Sink that retains every row in memory.
type Recorder struct {
	rows [][]Cell
}

// WriteRow appends a copy of the row.
func (r *Recorder) WriteRow(cells []Cell) error {
	r.rows = append(r.rows, append([]Cell(nil), cells...))
	return nil
}

// Rows returns the recorded snapshots in generation order.
func (r *Recorder) Rows() [][]Cell { return r.rows }

// Runner drives the distribute, exchange, step, gather cycle over a
// fixed set of workers. The partition and the per-worker domains are
// computed once at construction and reused for every generation; only
// their contents are refreshed.
type Runner struct {
	cfg   Config
	parts Partition
	mesh  *Mesh
	doms  []*Domain
	rule  Rule

	global []Cell
	gen    int
}

// NewRunner validates the configuration and allocates the partition,
// the ring mesh and one domain per worker. The initial row must match
// the configured width.
func NewRunner(cfg Config, initial []Cell) (*Runner, error) {
	if cfg.Width == 0 {
		cfg.Width = len(initial)
	}
	if len(initial) != cfg.Width {
		return nil, fmt.Errorf("%w: initial row has %d cells, want %d",
			ErrInvalidPartition, len(initial), cfg.Width)
	}
	parts, err := NewPartition(cfg.Width, cfg.Workers)
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:    cfg,
		parts:  parts,
		mesh:   NewMesh(NewRing(cfg.Workers), cfg.StepTimeout),
		doms:   NewDomains(parts),
		rule:   Wolfram(cfg.Rule),
		global: append([]Cell(nil), initial...),
	}, nil
}

// Generation returns the number of completed generations.
func (r *Runner) Generation() int { return r.gen }

// Width returns the global domain width.
func (r *Runner) Width() int { return r.cfg.Width }

// Global returns a copy of the current global row.
func (r *Runner) Global() []Cell {
	return append([]Cell(nil), r.global...)
}

// CopyGlobal copies the current global row into dst and returns the
// number of cells copied.
func (r *Runner) CopyGlobal(dst []Cell) int {
	return copy(dst, r.global)
}

// Step advances the automaton by one generation: the global row is
// distributed onto the domains, all workers exchange ghosts and step
// in parallel, and the results are gathered back into a fresh global
// row. Any failure aborts the generation and poisons no state; the
// previous row remains current.
func (r *Runner) Step(ctx context.Context) error {
	if err := Distribute(r.global, r.parts, r.doms); err != nil {
		return fmt.Errorf("generation %d: %w", r.gen, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for id, d := range r.doms {
		g.Go(func() error {
			if err := r.mesh.Exchange(gctx, id, d); err != nil {
				return err
			}
			d.Step(r.rule)
			return nil
		})
	}
	// All workers finish exchanging and stepping before the gather.
	if err := g.Wait(); err != nil {
		return fmt.Errorf("generation %d: %w", r.gen, err)
	}

	global, err := Gather(r.doms, r.parts)
	if err != nil {
		return fmt.Errorf("generation %d: %w", r.gen, err)
	}
	r.global = global
	r.gen++
	return nil
}

// Run executes the configured number of generations. Each generation's
// row is written to the sink before it is stepped, so the sink sees
// the initial state first and Generations rows in total. A nil sink
// skips the snapshots.
func (r *Runner) Run(ctx context.Context, sink Sink) error {
	for i := 0; i < r.cfg.Generations; i++ {
		if sink != nil {
			if err := sink.WriteRow(r.global); err != nil {
				return fmt.Errorf("generation %d: snapshot: %w", r.gen, err)
			}
		}
		if err := r.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}
