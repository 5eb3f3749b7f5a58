package fp64set

// Slots are not backed by a side occupancy bitmap. A bucket can only ever
// legally hold a fingerprint that hashes into it (see the cuckoo invariant in
// SPEC_FULL.md §3), so a reserved sentinel value — one that could never
// legally occupy the slot — doubles as "this slot is free":
//
//   - bucket 0's slots are free when they hold ^uint64(0) (all ones);
//   - every other bucket's slots are free when they hold 0.
//
// Callers must not insert exactly 0 or ^uint64(0) in a way that would hash
// into the slot reserved for the other sentinel; this is a caller
// obligation, not something the set detects (see spec.md §7).
const (
	sentinelZero uint64 = 0
	sentinelOnes        = ^uint64(0)
)

// isFree reports whether slot value fp at bucket index i is unoccupied.
func isFree(fp uint64, i uint64) bool {
	if i == 0 {
		return fp == sentinelOnes
	}
	return fp == sentinelZero
}

// sentinelFor returns the reserved empty-slot value for bucket index i.
func sentinelFor(i uint64) uint64 {
	if i == 0 {
		return sentinelOnes
	}
	return sentinelZero
}
