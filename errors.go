package fp64set

import (
	"errors"
	"fmt"
)

// ErrTooBig is returned by New when logsize exceeds the maximum of 32.
var ErrTooBig = errors.New("fp64set: logsize exceeds maximum of 32")

// ErrNoMemory is returned by Add when a resize needed to place a fingerprint
// could not allocate its new bucket array. The set is left unchanged.
var ErrNoMemory = errors.New("fp64set: allocation failed")

// ErrUnplaceable is returned by Add when a fingerprint could not be placed
// even after exhausting the eviction walk and the stash, and the load factor
// is still below 50% (so growing the table would not help). One unrelated
// fingerprint has been evicted and lost; the caller should rebuild the set
// from its source data with a different hash seed.
var ErrUnplaceable = errors.New("fp64set: fingerprint unplaceable at current load factor, rebuild with a new seed")

// wrapAlloc turns an Allocator failure into the ErrNoMemory sentinel while
// preserving the underlying cause for %w-unwrapping callers.
func wrapAlloc(err error) error {
	return fmt.Errorf("%w: %v", ErrNoMemory, err)
}
