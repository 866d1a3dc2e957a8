package halo

import "errors"

var (
	// ErrInvalidPartition reports a domain width and worker count that
	// cannot form a valid decomposition.
	ErrInvalidPartition = errors.New("invalid partition")

	// ErrPartitionMismatch reports a gathered domain whose size
	// disagrees with the partition it was created from.
	ErrPartitionMismatch = errors.New("partition mismatch")

	// ErrExchangeFailed reports a boundary exchange that could not
	// complete, typically because a neighbor went away.
	ErrExchangeFailed = errors.New("halo exchange failed")
)
