// Package idalloc provides a compact allocator of unsigned 64-bit
// identifiers.
//
// The Dispatcher issues the smallest integer that is not currently in use
// and takes issued integers back for later reuse, so the set of live ids
// stays dense and low-valued – convenient when ids double as slice
// indices in the host application. Two error conditions exist:
//
//   - ErrOverflow       – the 64-bit id space is exhausted
//   - ErrInvalidRelease – the released id is not currently allocated
//
// idalloc is designed to be embedded in host applications.  Callers
// construct and own a Dispatcher and interact with it directly:
//
//	d := idalloc.New()
//	a, _ := d.Allocate() // 0
//	b, _ := d.Allocate() // 1
//	_ = d.Release(a)
//	c, _ := d.Allocate() // 0 again, recycled
//
// A Dispatcher is deliberately not synchronised – ownership is explicit,
// and callers sharing one across goroutines wrap the calls in their own
// mutex (see examples/guarded). Optional Prometheus integration lives in
// the metric sub-package.
package idalloc
