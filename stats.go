package idalloc

// Stats is a point-in-time snapshot of Dispatcher state together with
// cumulative operation tallies. Snapshots are plain values; taking one
// never mutates the Dispatcher.
type Stats struct {
	// Watermark is the smallest id that has never been issued.
	Watermark uint64
	// Free is the number of released ids awaiting reuse.
	Free int
	// Allocated is the number of ids currently issued and not released.
	Allocated uint64

	// Allocations counts successful Allocate calls over the Dispatcher's
	// lifetime.
	Allocations uint64
	// Releases counts successful Release calls.
	Releases uint64
	// Reuses counts allocations served from the free pool rather than by
	// advancing the watermark.
	Reuses uint64
}

// Stats returns a snapshot of the current state. It is O(1) and, like
// every other method, not synchronised; callers sharing the Dispatcher
// across goroutines take their own lock around it.
func (d *Dispatcher) Stats() Stats {
	free := 0
	if d.free != nil {
		free = d.free.Len()
	}
	return Stats{
		Watermark:   d.watermark,
		Free:        free,
		Allocated:   d.watermark - uint64(free),
		Allocations: d.allocations,
		Releases:    d.releases,
		Reuses:      d.reuses,
	}
}
