// Package idgen generates the default pool identities used when a metric
// collector is created without an explicit pool name. It lives under
// `internal` because callers should not rely on the exact shape of the
// generated values – they should treat identities as opaque labels and
// supply their own name when a stable one is needed.
package idgen
