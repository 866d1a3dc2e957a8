package halo

import (
	"context"
	"fmt"
	"time"
)

// Mesh carries boundary cells between ring neighbors. Each directed
// link is a capacity-one channel, so the send side never blocks and
// the paired receive is the only suspension point. That keeps a ring
// of any size free of send/send deadlock.
type Mesh struct {
	ring    Ring
	toNext  []chan Cell
	toPrev  []chan Cell
	timeout time.Duration
}

// NewMesh builds the links for every worker on the ring. A timeout of
// zero means receives wait indefinitely (until the context is done).
func NewMesh(ring Ring, timeout time.Duration) *Mesh {
	m := &Mesh{
		ring:    ring,
		toNext:  make([]chan Cell, ring.Len()),
		toPrev:  make([]chan Cell, ring.Len()),
		timeout: timeout,
	}
	for i := range m.toNext {
		m.toNext[i] = make(chan Cell, 1)
		m.toPrev[i] = make(chan Cell, 1)
	}
	return m
}

// Exchange refreshes both ghost slots of d by swapping boundary cells
// with worker id's ring neighbors. Every worker must call Exchange
// exactly once per generation; the paired receives form the barrier
// that orders all exchanges before any step.
func (m *Mesh) Exchange(ctx context.Context, id int, d *Domain) error {
	// Phase A: the right edge travels clockwise. Worker id feeds its
	// next neighbor and takes its own left ghost from the previous one.
	m.toNext[id] <- d.RightEdge()
	v, err := m.recv(ctx, m.toNext[m.ring.Prev(id)], id, "left")
	if err != nil {
		return err
	}
	d.SetLeftGhost(v)

	// Phase B: mirrored, counterclockwise.
	m.toPrev[id] <- d.LeftEdge()
	v, err = m.recv(ctx, m.toPrev[m.ring.Next(id)], id, "right")
	if err != nil {
		return err
	}
	d.SetRightGhost(v)
	return nil
}

func (m *Mesh) recv(ctx context.Context, ch <-chan Cell, id int, side string) (Cell, error) {
	var deadline <-chan time.Time
	if m.timeout > 0 {
		t := time.NewTimer(m.timeout)
		defer t.Stop()
		deadline = t.C
	}
	select {
	case v, ok := <-ch:
		if !ok {
			return 0, fmt.Errorf("%w: worker %d: %s neighbor gone", ErrExchangeFailed, id, side)
		}
		return v, nil
	case <-deadline:
		return 0, fmt.Errorf("%w: worker %d: timed out waiting for %s ghost", ErrExchangeFailed, id, side)
	case <-ctx.Done():
		return 0, fmt.Errorf("%w: worker %d: %v", ErrExchangeFailed, id, ctx.Err())
	}
}
