package idalloc

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned by Allocate when the free pool is empty and the
// watermark has reached the largest representable id: the id space is
// exhausted and no further fresh values exist.
var ErrOverflow = errors.New("id space exhausted")

// ErrInvalidRelease is returned by Release when the argument is not a
// currently allocated id, either because it was never issued or because
// it has already been released. Detect it with errors.Is.
var ErrInvalidRelease = errors.New("invalid release")

func newNeverIssuedError(id uint64) error {
	return fmt.Errorf("%w: id %d was never issued", ErrInvalidRelease, id)
}

func newDoubleReleaseError(id uint64) error {
	return fmt.Errorf("%w: id %d is already free", ErrInvalidRelease, id)
}
