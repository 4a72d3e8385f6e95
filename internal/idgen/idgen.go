package idgen

import "github.com/google/uuid"

// New returns a fresh pool identity such as "pool-3f29c1a4". It is
// implemented as a thin wrapper so tests can stub it.

var NewFunc = func() string { return "pool-" + uuid.New().String()[:8] }

func New() string { return NewFunc() }
