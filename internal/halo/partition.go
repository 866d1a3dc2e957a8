package halo

import "fmt"

// Range is a half-open [Lo, Hi) block of the global domain.
type Range struct {
	Lo, Hi int
}

// Size returns the number of cells in the range.
func (r Range) Size() int { return r.Hi - r.Lo }

// Partition maps worker index to a contiguous block of the global
// domain. Blocks are non-overlapping and cover the domain exactly.
type Partition []Range

// NewPartition splits [0, n) into w balanced contiguous blocks. Block
// sizes differ by at most one cell. Every worker must own at least one
// cell, so w may not exceed n.
func NewPartition(n, w int) (Partition, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: domain width %d", ErrInvalidPartition, n)
	}
	if w < 1 {
		return nil, fmt.Errorf("%w: worker count %d", ErrInvalidPartition, w)
	}
	if w > n {
		return nil, fmt.Errorf("%w: %d workers for %d cells", ErrInvalidPartition, w, n)
	}
	p := make(Partition, w)
	for i := range p {
		p[i] = Range{Lo: i * n / w, Hi: (i + 1) * n / w}
	}
	return p, nil
}

// Width returns the total number of cells covered by the partition.
func (p Partition) Width() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].Hi
}
