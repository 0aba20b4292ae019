package cellgrid

import "github.com/cellgrid/cellgrid/pool"

type options[T any] struct {
	onEvict func(v T, x, y int)
	pool    *pool.Pool[*Record[T]]
	logger  *Logger
}

// Option configures SpatialGrid2D construction behavior.
type Option[T any] func(*options[T])

// WithOnEvict sets a destructor invoked with (value, x, y) whenever a live
// record is dropped because its coordinate fell outside the grid bounds
// after a Resize. The destructor runs before the record is recycled.
func WithOnEvict[T any](fn func(v T, x, y int)) Option[T] {
	return func(o *options[T]) {
		o.onEvict = fn
	}
}

// WithRecordPool sets the record pool backing the index. Pass the same pool
// (built with NewRecordPool) to every index of one element type to share a
// single free list between them. Callers choose the sharing scope
// explicitly; by default each index owns a private pool.
//
// If nil is passed, the index falls back to a private pool.
func WithRecordPool[T any](p *pool.Pool[*Record[T]]) Option[T] {
	return func(o *options[T]) {
		if p == nil {
			return
		}
		o.pool = p
	}
}

// WithLogger sets the logger used for debug-level structural events (resize,
// clear). The hot insert/remove/query paths never log.
//
// If nil is passed, NoopLogger is used.
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		logger: NoopLogger(),
	}
}

type resizeOptions struct {
	gridWidth    int
	gridHeight   int
	bucketWidth  int
	bucketHeight int
}

// ResizeOption overrides one dimension for a Resize call. Dimensions without
// an option retain their current value.
type ResizeOption func(*resizeOptions)

// ResizeGridWidth sets the new grid width in coordinate units.
func ResizeGridWidth(n int) ResizeOption {
	return func(o *resizeOptions) {
		o.gridWidth = n
	}
}

// ResizeGridHeight sets the new grid height in coordinate units.
func ResizeGridHeight(n int) ResizeOption {
	return func(o *resizeOptions) {
		o.gridHeight = n
	}
}

// ResizeBucketWidth sets the new bucket width in coordinate units.
func ResizeBucketWidth(n int) ResizeOption {
	return func(o *resizeOptions) {
		o.bucketWidth = n
	}
}

// ResizeBucketHeight sets the new bucket height in coordinate units.
func ResizeBucketHeight(n int) ResizeOption {
	return func(o *resizeOptions) {
		o.bucketHeight = n
	}
}
