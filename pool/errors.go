package pool

import "fmt"

// ErrDuplicateRecord indicates that the construction factory returned a
// record the pool is already tracking. The usual cause is a factory that
// hands out a shared singleton instead of a fresh instance per call.
type ErrDuplicateRecord struct {
	// Index is the hydration slot at which the collision was detected.
	Index int
}

func (e *ErrDuplicateRecord) Error() string {
	return fmt.Sprintf("pool: factory returned an already tracked record (hydration slot %d)", e.Index)
}

// ErrInvalidRelease indicates a release of a record the pool cannot accept:
// either it was never produced by this pool, or it is already parked in the
// free list (double release).
type ErrInvalidRelease struct {
	Reason string
}

func (e *ErrInvalidRelease) Error() string {
	return fmt.Sprintf("pool: invalid release: %s", e.Reason)
}
