package idalloc

import (
	"fmt"
	"math"

	"github.com/viant/idalloc/internal/minset"
)

// Dispatcher hands out the smallest unsigned 64-bit integer not currently
// in use and accepts issued integers back for later reuse. The zero value
// is ready to use and equivalent to New().
//
// A Dispatcher is not safe for concurrent use. Callers that share one
// across goroutines must provide their own mutual exclusion; both
// operations complete without blocking, so a plain sync.Mutex around the
// calls is sufficient.
type Dispatcher struct {
	// watermark is the smallest id that has never been issued. It only
	// ever grows.
	watermark uint64

	// free holds released ids awaiting reuse, every member strictly
	// below watermark. Lazily initialised so the zero Dispatcher works.
	free *minset.Set

	allocations uint64
	releases    uint64
	reuses      uint64
}

// New returns an empty Dispatcher: no ids issued, none free.
func New() *Dispatcher {
	return &Dispatcher{free: minset.New()}
}

// Allocate returns the smallest id that was not allocated immediately
// before the call and marks it allocated. Released ids are preferred over
// fresh ones, smallest first, which keeps the set of live ids dense and
// low-valued. When no released id exists the current watermark is issued
// and the watermark advances by one.
//
// Allocate fails with an error wrapping ErrOverflow once the watermark
// has reached math.MaxUint64 and the free pool is empty; the increment is
// checked and ids never wrap around. The Dispatcher is left unchanged by
// a failed call.
func (d *Dispatcher) Allocate() (uint64, error) {
	if id, ok := d.pool().PopMin(); ok {
		d.allocations++
		d.reuses++
		return id, nil
	}
	if d.watermark == math.MaxUint64 {
		return 0, fmt.Errorf("allocate: %w", ErrOverflow)
	}
	id := d.watermark
	d.watermark++
	d.allocations++
	return id, nil
}

// Release returns id to the free pool, making it eligible for reuse by a
// later Allocate call.
//
// Only a currently allocated id may be released. Releasing an id that was
// never issued, or one that is already free, fails with an error wrapping
// ErrInvalidRelease and leaves the Dispatcher unchanged; it never panics
// and never absorbs the call silently.
func (d *Dispatcher) Release(id uint64) error {
	if id >= d.watermark {
		return newNeverIssuedError(id)
	}
	free := d.pool()
	if free.Has(id) {
		return newDoubleReleaseError(id)
	}
	free.Insert(id)
	d.releases++
	return nil
}

// pool returns the free pool, initialising it on first use so that the
// zero Dispatcher behaves like New().
func (d *Dispatcher) pool() *minset.Set {
	if d.free == nil {
		d.free = minset.New()
	}
	return d.free
}
