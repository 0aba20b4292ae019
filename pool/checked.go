package pool

import (
	"log/slog"

	"github.com/bits-and-blooms/bitset"
)

// CheckedPool is the checked free-list pool. It shares Pool's contract and
// cursor mechanics but additionally assigns every record a dense slot id at
// hydration time and tracks, per id, whether the record is parked or held by
// a caller.
//
// The tracking catches two classes of programmer error that the unchecked
// variant silently absorbs into corrupted state:
//
//   - a factory that returns an already tracked record (ErrDuplicateRecord)
//   - releasing a foreign record, or the same record twice (ErrInvalidRelease)
//
// The cost is one map lookup per acquire/release plus a bitset bit flip,
// which is why the production-path variant omits it.
type CheckedPool[T comparable] struct {
	factory   func() T
	onRelease func(T)
	hydrate   int
	logger    *slog.Logger

	slots []T
	free  int

	ids       map[T]uint
	available *bitset.BitSet
}

// NewChecked creates a checked pool around factory. It fails with
// ErrDuplicateRecord if eager hydration observes a repeated record identity.
func NewChecked[T comparable](factory func() T, release func(T), optFns ...Option) (*CheckedPool[T], error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	p := &CheckedPool[T]{
		factory:   factory,
		onRelease: release,
		hydrate:   o.autoHydrateSize,
		logger:    o.logger,
		ids:       make(map[T]uint, o.initialSize),
		available: bitset.New(uint(max(o.initialSize, 1))),
	}

	if o.initialSize > 0 {
		if err := p.Grow(o.initialSize); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Acquire returns a free record, hydrating a fresh batch first if the free
// list is empty. It fails only if hydration trips the duplicate-identity
// check.
func (p *CheckedPool[T]) Acquire() (T, error) {
	if p.free == 0 {
		if err := p.Grow(p.hydrate); err != nil {
			var zero T
			return zero, err
		}
	}

	p.free--
	r := p.slots[p.free]
	p.available.Clear(p.ids[r])

	return r, nil
}

// Release parks a record for reuse. It fails with ErrInvalidRelease if the
// record was never produced by this pool or is already parked.
func (p *CheckedPool[T]) Release(v T) error {
	id, ok := p.ids[v]
	if !ok {
		return &ErrInvalidRelease{Reason: "record was not produced by this pool"}
	}
	if p.available.Test(id) {
		return &ErrInvalidRelease{Reason: "record already released"}
	}

	if p.onRelease != nil {
		p.onRelease(v)
	}

	p.slots[p.free] = v
	p.free++
	p.available.Set(id)

	return nil
}

// Grow enlarges capacity by n freshly constructed records. It fails with
// ErrDuplicateRecord if the factory returns a record that is already
// tracked; hydration stops at the offending slot and earlier records from
// the same batch remain usable.
func (p *CheckedPool[T]) Grow(n int) error {
	for i := 0; i < n; i++ {
		r := p.factory()
		if _, dup := p.ids[r]; dup {
			return &ErrDuplicateRecord{Index: len(p.slots)}
		}

		id := uint(len(p.ids))
		p.ids[r] = id

		if p.free == len(p.slots) {
			p.slots = append(p.slots, r)
		} else {
			p.slots = append(p.slots, p.slots[p.free])
			p.slots[p.free] = r
		}
		p.free++
		p.available.Set(id)
	}

	p.logger.Debug("pool hydrated", "batch", n, "total", len(p.slots), "checked", true)

	return nil
}

// Available returns the number of parked records ready for acquisition.
func (p *CheckedPool[T]) Available() int { return p.free }

// InUse returns the number of records currently held by callers.
func (p *CheckedPool[T]) InUse() int { return len(p.slots) - p.free }

// Len returns the total number of records the pool has constructed.
func (p *CheckedPool[T]) Len() int { return len(p.slots) }
