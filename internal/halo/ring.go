package halo

// Ring is the logical cycle the workers are arranged on. Neighbor
// lookup is a pure function of the worker index; a one-worker ring
// wraps onto itself, which yields periodic boundary conditions.
type Ring struct {
	n int
}

// NewRing returns a ring of n workers.
func NewRing(n int) Ring {
	if n < 1 {
		n = 1
	}
	return Ring{n: n}
}

// Len returns the number of workers on the ring.
func (r Ring) Len() int { return r.n }

// Next returns the index of the worker after i on the ring.
func (r Ring) Next(i int) int { return (i + 1) % r.n }

// Prev returns the index of the worker before i on the ring.
func (r Ring) Prev(i int) int { return (i - 1 + r.n) % r.n }
