package halo

import (
	"errors"
	"slices"
	"testing"
)

func TestDistributeGatherRoundTrip(t *testing.T) {
	const n = 20
	global := RandomRow(n, 1234)
	for _, w := range []int{1, 2, 3, 5, 7, 20} {
		p, err := NewPartition(n, w)
		if err != nil {
			t.Fatalf("NewPartition(%d, %d): %v", n, w, err)
		}
		doms := NewDomains(p)
		if err := Distribute(global, p, doms); err != nil {
			t.Fatalf("Distribute with %d workers: %v", w, err)
		}
		got, err := Gather(doms, p)
		if err != nil {
			t.Fatalf("Gather with %d workers: %v", w, err)
		}
		if !slices.Equal(got, global) {
			t.Fatalf("round trip with %d workers: got %v, want %v", w, got, global)
		}
	}
}

func TestGatherDetectsSizeMismatch(t *testing.T) {
	p, err := NewPartition(8, 2)
	if err != nil {
		t.Fatal(err)
	}
	doms := []*Domain{
		NewDomain(Range{Lo: 0, Hi: 3}),
		NewDomain(Range{Lo: 3, Hi: 8}),
	}
	if _, err := Gather(doms, p); !errors.Is(err, ErrPartitionMismatch) {
		t.Fatalf("expected ErrPartitionMismatch, got %v", err)
	}
}

func TestDistributeDetectsBadRow(t *testing.T) {
	p, err := NewPartition(8, 2)
	if err != nil {
		t.Fatal(err)
	}
	doms := NewDomains(p)
	if err := Distribute(make([]Cell, 7), p, doms); !errors.Is(err, ErrPartitionMismatch) {
		t.Fatalf("expected ErrPartitionMismatch, got %v", err)
	}
}
