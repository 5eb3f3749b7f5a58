package fp64set

// The kernels below are the "SIMD" side of the dispatch table's third axis.
// Real 64-bit-lane vector compares need per-architecture assembly, which
// this module deliberately does not carry (see DESIGN.md: unverifiable
// without building, and this module is never built as part of this
// exercise). What's genuinely wired up is the capability flag itself
// (golang.org/x/sys/cpu, see simd_detect.go): when it reports a vector-
// capable host, these functions are selected instead of the scalar ones in
// probe.go. They process slots two at a time — the natural grouping for a
// 128-bit "two uint64 lanes" compare — and are required to, and do, return
// results identical to their scalar counterparts.

func has2SIMD(_ *Set, fp uint64, b1, b2 []uint64) bool {
	lane0 := b2u(fp == b1[0]) | b2u(fp == b1[1])
	lane1 := b2u(fp == b2[0]) | b2u(fp == b2[1])
	return lane0|lane1 != 0
}

func has2StashSIMD(s *Set, fp uint64, b1, b2 []uint64) bool {
	laneB := b2u(has2SIMD(s, fp, b1, b2))
	laneS := b2u(fp == s.stash[0]) | b2u(fp == s.stash[1])
	return laneB|laneS != 0
}

func has3SIMD(_ *Set, fp uint64, b1, b2 []uint64) bool {
	lane0 := b2u(fp == b1[0]) | b2u(fp == b1[1])
	lane1 := b2u(fp == b2[0]) | b2u(fp == b2[1])
	tail := b2u(fp == b1[2]) | b2u(fp == b2[2])
	return lane0|lane1|tail != 0
}

func has3StashSIMD(s *Set, fp uint64, b1, b2 []uint64) bool {
	laneB := b2u(has3SIMD(s, fp, b1, b2))
	laneS := b2u(fp == s.stash[0]) | b2u(fp == s.stash[1])
	return laneB|laneS != 0
}

func has4SIMD(_ *Set, fp uint64, b1, b2 []uint64) bool {
	lane0 := b2u(fp == b1[0]) | b2u(fp == b1[1])
	lane1 := b2u(fp == b2[0]) | b2u(fp == b2[1])
	lane2 := b2u(fp == b1[2]) | b2u(fp == b1[3])
	lane3 := b2u(fp == b2[2]) | b2u(fp == b2[3])
	return lane0|lane1|lane2|lane3 != 0
}

func has4StashSIMD(s *Set, fp uint64, b1, b2 []uint64) bool {
	laneB := b2u(has4SIMD(s, fp, b1, b2))
	laneS := b2u(fp == s.stash[0]) | b2u(fp == s.stash[1])
	return laneB|laneS != 0
}
