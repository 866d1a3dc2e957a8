// Package halo runs a one-dimensional cellular automaton decomposed
// across workers on a ring, with ghost-cell exchange synchronizing
// block boundaries before every generation.
package halo

// Cell is a single automaton cell. Live cells are 1, dead cells 0.
type Cell = uint8

// Domain is one worker's owned block of the automaton: its interior
// cells plus one ghost cell on each side. Ghost slots hold copies of
// the neighbors' boundary cells and are refreshed by the exchange
// before every step. The domain is double-buffered; Step writes the
// spare buffer and swaps.
type Domain struct {
	rng Range
	cur []Cell
	nxt []Cell
}

// NewDomain allocates a domain for the given block of the global
// domain. Both buffers hold the interior plus two ghost slots.
func NewDomain(r Range) *Domain {
	ext := r.Size() + 2
	return &Domain{rng: r, cur: make([]Cell, ext), nxt: make([]Cell, ext)}
}

// NewDomains allocates one domain per partition block.
func NewDomains(p Partition) []*Domain {
	doms := make([]*Domain, len(p))
	for i, r := range p {
		doms[i] = NewDomain(r)
	}
	return doms
}

// Range returns the global block this domain owns.
func (d *Domain) Range() Range { return d.rng }

// Size returns the number of interior cells.
func (d *Domain) Size() int { return len(d.cur) - 2 }

// Interior returns the authoritative cells, excluding the ghosts.
func (d *Domain) Interior() []Cell { return d.cur[1 : len(d.cur)-1] }

// LeftEdge returns the leftmost interior cell.
func (d *Domain) LeftEdge() Cell { return d.cur[1] }

// RightEdge returns the rightmost interior cell.
func (d *Domain) RightEdge() Cell { return d.cur[len(d.cur)-2] }

// SetLeftGhost stores a neighbor's boundary cell in the left ghost slot.
func (d *Domain) SetLeftGhost(v Cell) { d.cur[0] = v }

// SetRightGhost stores a neighbor's boundary cell in the right ghost slot.
func (d *Domain) SetRightGhost(v Cell) { d.cur[len(d.cur)-1] = v }

// Load copies this domain's block of the global row into the interior.
// Ghost slots are untouched; they are stale until the next exchange.
func (d *Domain) Load(global []Cell) {
	copy(d.Interior(), global[d.rng.Lo:d.rng.Hi])
}

// Step computes the next generation of every interior cell from the
// current buffer, ghosts included, and swaps the buffers. Ghost slots
// of the new generation are undefined until the next exchange.
func (d *Domain) Step(rule Rule) {
	for i := 1; i < len(d.cur)-1; i++ {
		d.nxt[i] = rule(d.cur[i-1], d.cur[i], d.cur[i+1])
	}
	d.cur, d.nxt = d.nxt, d.cur
}
