package halo

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestSingleGenerationRule30(t *testing.T) {
	initial := []Cell{0, 0, 0, 0, 1, 0, 0, 0}
	r, err := NewRunner(Config{Width: 8, Workers: 2, Rule: 30}, initial)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Step(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := []Cell{0, 0, 0, 1, 1, 1, 0, 0}
	if got := r.Global(); !slices.Equal(got, want) {
		t.Fatalf("after one generation got %v, want %v", got, want)
	}
	if r.Generation() != 1 {
		t.Fatalf("Generation() = %d, want 1", r.Generation())
	}
}

func TestDistributedMatchesSingleWorker(t *testing.T) {
	const width, gens = 64, 32
	initial := RandomRow(width, 7)

	for _, workers := range []int{2, 3, 4, 7} {
		ref, err := NewRunner(Config{Width: width, Workers: 1, Rule: 30}, initial)
		if err != nil {
			t.Fatal(err)
		}
		dist, err := NewRunner(Config{Width: width, Workers: workers, Rule: 30}, initial)
		if err != nil {
			t.Fatal(err)
		}
		for g := 0; g < gens; g++ {
			if err := ref.Step(context.Background()); err != nil {
				t.Fatal(err)
			}
			if err := dist.Step(context.Background()); err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(ref.Global(), dist.Global()) {
				t.Fatalf("%d workers diverged from single worker at generation %d:\n %v\n %v",
					workers, g+1, dist.Global(), ref.Global())
			}
		}
	}
}

func TestRunRecordsSnapshotBeforeEachStep(t *testing.T) {
	const width, gens = 16, 5
	initial := SingleSeed(width)
	r, err := NewRunner(Config{Width: width, Generations: gens, Workers: 2, Rule: 30}, initial)
	if err != nil {
		t.Fatal(err)
	}

	var rec Recorder
	if err := r.Run(context.Background(), &rec); err != nil {
		t.Fatal(err)
	}

	rows := rec.Rows()
	if len(rows) != gens {
		t.Fatalf("recorded %d snapshots, want %d", len(rows), gens)
	}
	for i, row := range rows {
		if len(row) != width {
			t.Fatalf("snapshot %d has %d cells, want %d", i, len(row), width)
		}
	}
	if !slices.Equal(rows[0], initial) {
		t.Fatalf("first snapshot %v is not the initial row %v", rows[0], initial)
	}
	if r.Generation() != gens {
		t.Fatalf("Generation() = %d, want %d", r.Generation(), gens)
	}
}

func TestNewRunnerValidation(t *testing.T) {
	if _, err := NewRunner(Config{Width: 8, Workers: 9}, make([]Cell, 8)); !errors.Is(err, ErrInvalidPartition) {
		t.Fatalf("expected ErrInvalidPartition for too many workers, got %v", err)
	}
	if _, err := NewRunner(Config{Width: 8, Workers: 2}, make([]Cell, 4)); !errors.Is(err, ErrInvalidPartition) {
		t.Fatalf("expected ErrInvalidPartition for short initial row, got %v", err)
	}
}

func TestRulePluggable(t *testing.T) {
	// Rule 204 is the identity rule: every cell keeps its state.
	initial := RandomRow(24, 99)
	r, err := NewRunner(Config{Width: 24, Workers: 3, Rule: 204}, initial)
	if err != nil {
		t.Fatal(err)
	}
	for g := 0; g < 4; g++ {
		if err := r.Step(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if got := r.Global(); !slices.Equal(got, initial) {
		t.Fatalf("identity rule changed the row: got %v, want %v", got, initial)
	}
}
