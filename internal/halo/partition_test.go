package halo

import (
	"errors"
	"testing"
)

func TestPartitionCoversDomain(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for w := 1; w <= n; w++ {
			p, err := NewPartition(n, w)
			if err != nil {
				t.Fatalf("NewPartition(%d, %d): %v", n, w, err)
			}
			if len(p) != w {
				t.Fatalf("NewPartition(%d, %d): got %d blocks", n, w, len(p))
			}
			if p[0].Lo != 0 {
				t.Fatalf("NewPartition(%d, %d): first block starts at %d", n, w, p[0].Lo)
			}
			if p[len(p)-1].Hi != n {
				t.Fatalf("NewPartition(%d, %d): last block ends at %d", n, w, p[len(p)-1].Hi)
			}
			for i, r := range p {
				if i > 0 && r.Lo != p[i-1].Hi {
					t.Fatalf("NewPartition(%d, %d): gap between blocks %d and %d", n, w, i-1, i)
				}
				if size := r.Size(); size != n/w && size != n/w+1 {
					t.Fatalf("NewPartition(%d, %d): block %d has size %d", n, w, i, size)
				}
			}
			if p.Width() != n {
				t.Fatalf("NewPartition(%d, %d): Width() = %d", n, w, p.Width())
			}
		}
	}
}

func TestPartitionRejectsBadShapes(t *testing.T) {
	cases := []struct{ n, w int }{
		{0, 1},
		{-4, 2},
		{8, 0},
		{8, -1},
		{4, 5},
	}
	for _, c := range cases {
		if _, err := NewPartition(c.n, c.w); !errors.Is(err, ErrInvalidPartition) {
			t.Fatalf("NewPartition(%d, %d): expected ErrInvalidPartition, got %v", c.n, c.w, err)
		}
	}
}
