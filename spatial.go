package cellgrid

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/cellgrid/cellgrid/pool"
)

// SpatialGrid2D partitions a bounded 2-D coordinate space into fixed-size
// rectangular buckets, each holding a variable-length collection of
// pool-owned records. Point queries scan a single bucket, so average cost is
// proportional to one bucket's occupancy rather than the total live count.
//
// Coordinates are integers in [0, gridWidth) x [0, gridHeight). The bucket
// owning (x, y) is (x/bucketWidth, y/bucketHeight) by integer division.
// Multiple values may occupy one coordinate. Removals use swap-remove, so
// insertion order within a bucket is not preserved.
//
// Buckets are stored flat in row-major order with a non-empty bitmap on top,
// keeping full traversals proportional to the number of occupied buckets on
// sparse grids.
//
// Values are matched by Go equality of T; use pointer payloads when you need
// reference identity. SpatialGrid2D is not safe for concurrent use.
type SpatialGrid2D[T comparable] struct {
	gridWidth    int
	gridHeight   int
	bucketWidth  int
	bucketHeight int
	cols, rows   int

	buckets  [][]*Record[T]
	occupied *bitset.BitSet
	pool     *pool.Pool[*Record[T]]
	onEvict  func(v T, x, y int)
	logger   *Logger
	size     int
}

// NewSpatialGrid2D creates an index over a gridWidth x gridHeight coordinate
// space partitioned into bucketWidth x bucketHeight buckets. All four
// dimensions must be positive; a partial bucket row/column at the far edge
// is fine. The bucket array is allocated eagerly.
func NewSpatialGrid2D[T comparable](gridWidth, gridHeight, bucketWidth, bucketHeight int, optFns ...Option[T]) (*SpatialGrid2D[T], error) {
	if err := checkDimensions(gridWidth, gridHeight, bucketWidth, bucketHeight); err != nil {
		return nil, err
	}

	o := defaultOptions[T]()
	for _, fn := range optFns {
		fn(&o)
	}
	if o.pool == nil {
		o.pool = NewRecordPool[T]()
	}

	cols := ceilDiv(gridWidth, bucketWidth)
	rows := ceilDiv(gridHeight, bucketHeight)

	return &SpatialGrid2D[T]{
		gridWidth:    gridWidth,
		gridHeight:   gridHeight,
		bucketWidth:  bucketWidth,
		bucketHeight: bucketHeight,
		cols:         cols,
		rows:         rows,
		buckets:      make([][]*Record[T], cols*rows),
		occupied:     bitset.New(uint(cols * rows)),
		pool:         o.pool,
		onEvict:      o.onEvict,
		logger:       o.logger.WithGridSize(gridWidth, gridHeight).WithBucketSize(bucketWidth, bucketHeight),
	}, nil
}

func checkDimensions(gridWidth, gridHeight, bucketWidth, bucketHeight int) error {
	dims := []struct {
		name  string
		value int
	}{
		{"grid width", gridWidth},
		{"grid height", gridHeight},
		{"bucket width", bucketWidth},
		{"bucket height", bucketHeight},
	}
	for _, d := range dims {
		if d.value < 1 {
			return &ErrInvalidDimension{Name: d.name, Value: d.value}
		}
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (g *SpatialGrid2D[T]) checkBounds(x, y int) error {
	if x < 0 || x >= g.gridWidth || y < 0 || y >= g.gridHeight {
		return &ErrOutOfBounds{X: x, Y: y, Width: g.gridWidth, Height: g.gridHeight}
	}
	return nil
}

// bucketIndex assumes (x, y) already passed checkBounds.
func (g *SpatialGrid2D[T]) bucketIndex(x, y int) int {
	return (y/g.bucketHeight)*g.cols + x/g.bucketWidth
}

// InsertAt stores v at (x, y). The value is wrapped in a recycled record, so
// steady-state insert/remove cycles allocate nothing.
func (g *SpatialGrid2D[T]) InsertAt(x, y int, v T) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}

	r := g.pool.Acquire()
	r.X, r.Y, r.Value = x, y, v

	idx := g.bucketIndex(x, y)
	g.buckets[idx] = append(g.buckets[idx], r)
	g.occupied.Set(uint(idx))
	g.size++

	return nil
}

// Insert stores v at the coordinate it reports via Positioned. It fails with
// ErrNotPositioned if T does not implement Positioned.
func (g *SpatialGrid2D[T]) Insert(v T) error {
	p, ok := any(v).(Positioned)
	if !ok {
		return ErrNotPositioned
	}
	x, y := p.Position()
	return g.InsertAt(x, y, v)
}

// At returns every value stored at exactly (x, y), in unspecified order.
// The returned slice is freshly allocated; use AppendAt for repeated
// zero-allocation queries.
func (g *SpatialGrid2D[T]) At(x, y int) ([]T, error) {
	return g.AppendAt(nil, x, y)
}

// AppendAt appends every value stored at exactly (x, y) to dst and returns
// the extended slice. Only the owning bucket is scanned; the bucket may hold
// records for several coordinates, so each record is filtered by exact
// coordinate match.
func (g *SpatialGrid2D[T]) AppendAt(dst []T, x, y int) ([]T, error) {
	if err := g.checkBounds(x, y); err != nil {
		return dst, err
	}

	for _, r := range g.buckets[g.bucketIndex(x, y)] {
		if r.X == x && r.Y == y {
			dst = append(dst, r.Value)
		}
	}

	return dst, nil
}

// RemoveAt removes v from (x, y). Every record matching both the coordinate
// and the value is removed, and size drops once per removal. It fails with
// ErrNotFound when nothing matches.
func (g *SpatialGrid2D[T]) RemoveAt(x, y int, v T) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}

	removed := g.removeMatching(g.bucketIndex(x, y), func(r *Record[T]) bool {
		return r.X == x && r.Y == y && r.Value == v
	})
	if removed == 0 {
		return &ErrNotFound{X: x, Y: y}
	}

	return nil
}

// Remove removes v from the coordinate it reports via Positioned. It fails
// with ErrNotPositioned if T does not implement Positioned.
func (g *SpatialGrid2D[T]) Remove(v T) error {
	p, ok := any(v).(Positioned)
	if !ok {
		return ErrNotPositioned
	}
	x, y := p.Position()
	return g.RemoveAt(x, y, v)
}

// RemoveAllAt removes every value stored at exactly (x, y), regardless of
// value, and returns how many were removed. An empty coordinate is not an
// error.
func (g *SpatialGrid2D[T]) RemoveAllAt(x, y int) (int, error) {
	if err := g.checkBounds(x, y); err != nil {
		return 0, err
	}

	return g.removeMatching(g.bucketIndex(x, y), func(r *Record[T]) bool {
		return r.X == x && r.Y == y
	}), nil
}

// removeMatching swap-removes every record in bucket idx accepted by match
// and recycles it. Returns the number of removals.
func (g *SpatialGrid2D[T]) removeMatching(idx int, match func(*Record[T]) bool) int {
	bucket := g.buckets[idx]
	removed := 0

	for i := 0; i < len(bucket); {
		if !match(bucket[i]) {
			i++
			continue
		}

		r := bucket[i]
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = nil
		bucket = bucket[:last]

		g.pool.Release(r)
		removed++
	}

	g.buckets[idx] = bucket
	if len(bucket) == 0 {
		g.occupied.Clear(uint(idx))
	}
	g.size -= removed

	return removed
}

// Move relocates v from (fromX, fromY) to (toX, toY) as a remove followed by
// an insert. Both coordinates are validated up front, so a bounds failure
// never leaves the value half-moved. Moving to the source coordinate is a
// no-op (after verifying the value is actually there).
//
// If duplicate equal values sit at the source, the remove step collapses
// them and a single record is re-inserted at the destination.
func (g *SpatialGrid2D[T]) Move(fromX, fromY, toX, toY int, v T) error {
	if err := g.checkBounds(fromX, fromY); err != nil {
		return err
	}
	if err := g.checkBounds(toX, toY); err != nil {
		return err
	}

	if fromX == toX && fromY == toY {
		for _, r := range g.buckets[g.bucketIndex(fromX, fromY)] {
			if r.X == fromX && r.Y == fromY && r.Value == v {
				return nil
			}
		}
		return &ErrNotFound{X: fromX, Y: fromY}
	}

	if err := g.RemoveAt(fromX, fromY, v); err != nil {
		return err
	}

	return g.InsertAt(toX, toY, v)
}

// Resize rebuilds the bucket array under the dimensions given by opts; any
// dimension without an option keeps its current value. Every live record is
// re-filed into the bucket computed under the new dimensions. Records whose
// coordinate falls outside the new grid bounds are handed to the WithOnEvict
// destructor (if any) and recycled.
//
// Validation happens before any mutation, so a dimension error leaves the
// index unchanged.
func (g *SpatialGrid2D[T]) Resize(optFns ...ResizeOption) error {
	ro := resizeOptions{
		gridWidth:    g.gridWidth,
		gridHeight:   g.gridHeight,
		bucketWidth:  g.bucketWidth,
		bucketHeight: g.bucketHeight,
	}
	for _, fn := range optFns {
		fn(&ro)
	}

	if err := checkDimensions(ro.gridWidth, ro.gridHeight, ro.bucketWidth, ro.bucketHeight); err != nil {
		return err
	}

	cols := ceilDiv(ro.gridWidth, ro.bucketWidth)
	rows := ceilDiv(ro.gridHeight, ro.bucketHeight)

	old := g.buckets
	g.gridWidth, g.gridHeight = ro.gridWidth, ro.gridHeight
	g.bucketWidth, g.bucketHeight = ro.bucketWidth, ro.bucketHeight
	g.cols, g.rows = cols, rows
	g.buckets = make([][]*Record[T], cols*rows)
	g.occupied = bitset.New(uint(cols * rows))

	evicted := 0
	for _, bucket := range old {
		for _, r := range bucket {
			// Inserted coordinates are never negative, so only the upper
			// bounds can invalidate a record.
			if r.X >= g.gridWidth || r.Y >= g.gridHeight {
				if g.onEvict != nil {
					g.onEvict(r.Value, r.X, r.Y)
				}
				g.pool.Release(r)
				g.size--
				evicted++
				continue
			}

			idx := g.bucketIndex(r.X, r.Y)
			g.buckets[idx] = append(g.buckets[idx], r)
			g.occupied.Set(uint(idx))
		}
	}

	g.logger.Debug("index resized",
		"grid_width", g.gridWidth,
		"grid_height", g.gridHeight,
		"bucket_width", g.bucketWidth,
		"bucket_height", g.bucketHeight,
		"evicted", evicted,
		"size", g.size,
	)

	return nil
}

// scan visits live records in bucket order (row-major over buckets, then
// in-bucket order) until fn returns false.
func (g *SpatialGrid2D[T]) scan(fn func(*Record[T]) bool) {
	for idx, ok := g.occupied.NextSet(0); ok; idx, ok = g.occupied.NextSet(idx + 1) {
		for _, r := range g.buckets[idx] {
			if !fn(r) {
				return
			}
		}
	}
}

// ForEach visits every live record exactly once. Traversal runs row-major
// over buckets, then in in-bucket order; order across coordinates is
// otherwise unspecified. fn must not mutate the index.
func (g *SpatialGrid2D[T]) ForEach(fn func(x, y int, v T)) {
	g.scan(func(r *Record[T]) bool {
		fn(r.X, r.Y, r.Value)
		return true
	})
}

// All returns every live value in ForEach order.
func (g *SpatialGrid2D[T]) All() []T {
	out := make([]T, 0, g.size)
	g.scan(func(r *Record[T]) bool {
		out = append(out, r.Value)
		return true
	})
	return out
}

// Filtered returns every live value accepted by keep, in ForEach order.
func (g *SpatialGrid2D[T]) Filtered(keep func(v T) bool) []T {
	var out []T
	g.scan(func(r *Record[T]) bool {
		if keep(r.Value) {
			out = append(out, r.Value)
		}
		return true
	})
	return out
}

// First returns the first live value accepted by match, in ForEach order.
// When match accepts several values the result depends on traversal order.
func (g *SpatialGrid2D[T]) First(match func(v T) bool) (T, bool) {
	var (
		found T
		ok    bool
	)
	g.scan(func(r *Record[T]) bool {
		if match(r.Value) {
			found, ok = r.Value, true
			return false
		}
		return true
	})
	return found, ok
}

// Clear recycles every live record and resets size to 0. The bucket array
// keeps its dimensions and per-bucket capacity.
func (g *SpatialGrid2D[T]) Clear() {
	for idx, ok := g.occupied.NextSet(0); ok; idx, ok = g.occupied.NextSet(idx + 1) {
		bucket := g.buckets[idx]
		for i, r := range bucket {
			g.pool.Release(r)
			bucket[i] = nil
		}
		g.buckets[idx] = bucket[:0]
	}

	g.occupied.ClearAll()
	g.size = 0

	g.logger.Debug("index cleared")
}

// Len returns the number of live records across all buckets.
func (g *SpatialGrid2D[T]) Len() int { return g.size }

// GridSize returns the coordinate bounds.
func (g *SpatialGrid2D[T]) GridSize() (width, height int) {
	return g.gridWidth, g.gridHeight
}

// BucketSize returns the extent of one bucket in coordinate units.
func (g *SpatialGrid2D[T]) BucketSize() (width, height int) {
	return g.bucketWidth, g.bucketHeight
}
