package cellgrid

import "github.com/cellgrid/cellgrid/pool"

// Record pairs a caller payload with the coordinate it was inserted at.
// Records are owned exclusively by either a pool free list or exactly one
// bucket of a SpatialGrid2D, never both. While a record sits in a bucket its
// X/Y always equal the coordinate it was filed under; while parked in the
// pool its fields are meaningless and Value is zeroed.
type Record[T any] struct {
	X, Y  int
	Value T
}

// Positioned is the capability interface for values that carry their own
// coordinate, enabling the convenience Insert/Remove methods.
type Positioned interface {
	Position() (x, y int)
}

// NewRecordPool constructs a record pool suitable for sharing across all
// SpatialGrid2D instances of one element type via WithRecordPool. The pool's
// release hook zeroes Value so parked records do not pin caller memory.
func NewRecordPool[T any](optFns ...pool.Option) *pool.Pool[*Record[T]] {
	return pool.New(func() *Record[T] {
		return &Record[T]{}
	}, func(r *Record[T]) {
		var zero T
		r.Value = zero
	}, optFns...)
}
