package halo

import "fmt"

// Distribute copies the global row into each domain's interior. The
// row length and every domain size must agree with the partition.
func Distribute(global []Cell, p Partition, doms []*Domain) error {
	if len(global) != p.Width() {
		return fmt.Errorf("%w: global row has %d cells, partition covers %d",
			ErrPartitionMismatch, len(global), p.Width())
	}
	if len(doms) != len(p) {
		return fmt.Errorf("%w: %d domains for %d blocks", ErrPartitionMismatch, len(doms), len(p))
	}
	for i, d := range doms {
		if d.Size() != p[i].Size() {
			return fmt.Errorf("%w: worker %d holds %d cells, block expects %d",
				ErrPartitionMismatch, i, d.Size(), p[i].Size())
		}
		d.Load(global)
	}
	return nil
}

// Gather concatenates the interiors of all domains, in worker order,
// into a fresh global row. Ghost cells are excluded, so the result has
// exactly the partition's width.
func Gather(doms []*Domain, p Partition) ([]Cell, error) {
	if len(doms) != len(p) {
		return nil, fmt.Errorf("%w: %d domains for %d blocks", ErrPartitionMismatch, len(doms), len(p))
	}
	out := make([]Cell, p.Width())
	for i, d := range doms {
		if d.Size() != p[i].Size() {
			return nil, fmt.Errorf("%w: worker %d holds %d cells, block expects %d",
				ErrPartitionMismatch, i, d.Size(), p[i].Size())
		}
		copy(out[p[i].Lo:p[i].Hi], d.Interior())
	}
	return out, nil
}
