// Package minset maintains an ordered set of uint64 values with cheap
// minimum extraction. It backs the dispatcher free pool and lives under
// `internal` because callers should not rely on its representation or
// API, only on the dispatcher contract built on top of it.
package minset
