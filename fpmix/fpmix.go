// Package fpmix supplies two ready-made ways to turn arbitrary byte-slice
// keys into the well-mixed 64-bit fingerprints fp64set.Set expects.
//
// fp64set itself never hashes anything — per its own contract, it consumes
// fingerprints that are already uniformly distributed, and mixing raw input
// is explicitly the caller's job. This package is that job, grounded on the
// two hashing libraries the retrieved corpus actually uses for this kind of
// fingerprinting: fukua95-pds/cuckoofilter.go (MurmurHash64A) and
// rishabhverma17-HyperCache/internal/filter (xxhash).
package fpmix

import (
	murmur "github.com/aviddiviner/go-murmur"
	"github.com/cespare/xxhash/v2"
)

// Murmur mixes data with MurmurHash64A under the given seed. Two different
// seeds passed to Murmur over the same data are independent enough to stand
// in for fp64set's H1/H2 if you need to derive a fingerprint from something
// smaller than 64 bits of entropy.
func Murmur(data []byte, seed uint32) uint64 {
	return murmur.MurmurHash64A(data, seed)
}

// XXHash mixes data with xxhash64. It has no seed parameter here — callers
// who need domain separation between multiple fingerprint streams should
// prepend a distinguishing prefix to data instead.
func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
