package pool

import "log/slog"

// Pool is the unchecked free-list pool. It hands out reusable records
// produced by a caller-supplied factory, grows in fixed-size batches when
// exhausted, and never shrinks.
//
// The backing slice is split by a single cursor: slots[:free] hold parked
// records ready for reuse, the remainder is dead storage for records
// currently held by callers. Acquire pops from the top of the free region,
// Release pushes back onto it, so reuse is LIFO and the most recently
// released record is the first handed out again.
//
// Pool performs no identity or state validation. Use CheckedPool while
// developing to catch factory and release misuse.
type Pool[T any] struct {
	factory   func() T
	onRelease func(T)
	hydrate   int
	logger    *slog.Logger

	slots []T
	free  int
}

// New creates a pool around factory, which must return a fresh record per
// call. release, if non-nil, is invoked with every record handed back via
// Release, before the record is parked; use it to clear payload references
// so parked records do not pin caller memory.
func New[T any](factory func() T, release func(T), optFns ...Option) *Pool[T] {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	p := &Pool[T]{
		factory:   factory,
		onRelease: release,
		hydrate:   o.autoHydrateSize,
		logger:    o.logger,
	}

	if o.initialSize > 0 {
		p.Grow(o.initialSize)
	}

	return p
}

// Acquire returns a free record, hydrating a fresh batch first if the free
// list is empty. Every outstanding acquisition holds a distinct record.
func (p *Pool[T]) Acquire() T {
	if p.free == 0 {
		p.Grow(p.hydrate)
	}

	p.free--

	return p.slots[p.free]
}

// Release parks a record for reuse. The caller must not retain references to
// the record or its payload afterwards.
//
// Releasing a record that did not come from this pool, or releasing the same
// record twice, silently corrupts the free list. CheckedPool rejects both.
func (p *Pool[T]) Release(v T) {
	if p.onRelease != nil {
		p.onRelease(v)
	}

	if p.free == len(p.slots) {
		p.slots = append(p.slots, v)
	} else {
		p.slots[p.free] = v
	}

	p.free++
}

// Grow enlarges capacity by n freshly constructed records, independent of
// whether an acquisition triggered it.
func (p *Pool[T]) Grow(n int) {
	for i := 0; i < n; i++ {
		r := p.factory()
		if p.free == len(p.slots) {
			p.slots = append(p.slots, r)
		} else {
			// The in-use region above the cursor is dead storage, so the
			// displaced entry just pads the slice back out.
			p.slots = append(p.slots, p.slots[p.free])
			p.slots[p.free] = r
		}
		p.free++
	}

	p.logger.Debug("pool hydrated", "batch", n, "total", len(p.slots))
}

// Available returns the number of parked records ready for acquisition.
func (p *Pool[T]) Available() int { return p.free }

// InUse returns the number of records currently held by callers.
func (p *Pool[T]) InUse() int { return len(p.slots) - p.free }

// Len returns the total number of records the pool has constructed.
// Available()+InUse() == Len() at all times.
func (p *Pool[T]) Len() int { return len(p.slots) }
