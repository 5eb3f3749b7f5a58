package fp64set

// widen grows the bucket width (2->3 or 3->4), preserving logsize and the
// bucket count. It does not reshuffle the old array in place: a fresh, wider
// array is allocated and every row is
// copied forward into it (spec.md's Design Notes explicitly permit this over
// a literal backward in-place shuffle: "An arena of fixed-size rows with
// explicit copies is acceptable; do not attempt clever unions"). The newly
// added column is sentinel-initialized, which is what guarantees pending —
// the fingerprint whose failed placement triggered the widen — always finds
// a free slot in its own H1 bucket afterwards.
func (s *Set) widen(newBsize int, pending uint64) error {
	n := int(s.mask + 1)
	newBuckets, err := s.alloc.Alloc(newBsize * n)
	if err != nil {
		return wrapAlloc(err)
	}

	for i := uint64(0); i < s.mask+1; i++ {
		oldRow := s.row(i)
		newOff := i * uint64(newBsize)
		copy(newBuckets[newOff:newOff+uint64(s.bsize)], oldRow)
		for j := s.bsize; j < newBsize; j++ {
			newBuckets[newOff+uint64(j)] = sentinelFor(i)
		}
	}

	s.buckets = newBuckets
	s.bsize = newBsize
	s.stats.Widens++

	i1 := h1(pending, s.mask)
	if !placeInOne(pending, i1, s.row(i1)) {
		// The column just added to every row guarantees a free slot here;
		// reaching this would mean the invariant in §3 was already broken.
		panic("fp64set: widen did not free a slot in the pending item's own bucket")
	}
	s.cnt++

	s.drainStash()
	s.rebuildDispatch()
	return nil
}

// drainStash attempts to move stashed fingerprints back into buckets, now
// that there's more room (called after a widen or grow). Entries that still
// don't fit are left in the stash exactly where they were.
func (s *Set) drainStash() {
	if s.nstash == 0 {
		return
	}
	if s.tryPlace(s.stash[0]) {
		if s.nstash == 2 {
			s.stash[0] = s.stash[1]
			s.nstash = 1
		} else {
			s.stash[0], s.stash[1] = 0, 0
			s.nstash = 0
		}
	}
	if s.nstash == 0 {
		return
	}
	if s.nstash == 1 {
		if s.tryPlace(s.stash[0]) {
			s.stash[0], s.stash[1] = 0, 0
			s.nstash = 0
		}
		return
	}
	// nstash still 2: stash[0] didn't move, try stash[1].
	if s.tryPlace(s.stash[1]) {
		s.stash[1] = s.stash[0]
		s.nstash = 1
	}
}

// tryPlace attempts to re-home fp via the ordinary placeInEither/kick path
// (no stashing, no resizing), bumping cnt on success.
func (s *Set) tryPlace(fp uint64) bool {
	i1, i2 := h1(fp, s.mask), h2(fp, s.mask)
	b1, b2 := s.row(i1), s.row(i2)
	if placeInEither(fp, i1, b1, i2, b2) {
		s.cnt++
		return true
	}
	if _, ok := s.kick(fp, i1); ok {
		s.cnt++
		return true
	}
	return false
}

// grow doubles the bucket count and narrows bucket width back to 3 (only
// reachable from bsize==4). Guarded by the fill-factor check from spec.md
// §4.5: below 50% load, the hash function is simply failing to place this
// particular fingerprint, and doubling the table won't fix that — the
// caller needs to rebuild with a different seed (ErrUnplaceable).
func (s *Set) grow(pending uint64) error {
	n := s.mask + 1
	if s.cnt < 2*n {
		return ErrUnplaceable
	}

	// Step 1: collect the incoming fp, the stash, and the last column of
	// every bucket into a side swap buffer. Sentinels are dropped.
	swap := make([]uint64, 0, 3+int(n))
	swap = append(swap, pending)
	if s.nstash >= 1 {
		swap = append(swap, s.stash[0])
	}
	if s.nstash == 2 {
		swap = append(swap, s.stash[1])
	}
	lastCol := s.bsize - 1
	var colRemoved uint64
	for i := uint64(0); i < n; i++ {
		v := s.row(i)[lastCol]
		if !isFree(v, i) {
			swap = append(swap, v)
			colRemoved++
		}
	}

	// Step 2/3: reinterpret stride 4 as stride 3 with doubled row count,
	// redistributing each row's first three columns between row i and row
	// i+n according to their new indices under the doubled mask. Because H1
	// and H2 each change by exactly one new bit, every surviving element
	// belongs to exactly one of the two rows.
	newN := n * 2
	newMask := newN - 1
	newBuckets, err := s.alloc.Alloc(3 * int(newN))
	if err != nil {
		// Nothing has been touched yet: stash, cnt and the old bucket array
		// are all still exactly as they were before grow was called.
		return wrapAlloc(err)
	}

	s.cnt -= colRemoved
	s.nstash = 0
	s.stash[0], s.stash[1] = 0, 0

	for i := uint64(0); i < n; i++ {
		old := s.row(i)
		var low, high [3]uint64
		nLow, nHigh := 0, 0
		for c := 0; c < 3; c++ {
			v := old[c]
			if isFree(v, i) {
				continue
			}
			nh1, nh2 := h1(v, newMask), h2(v, newMask)
			if nh1 == i || nh2 == i {
				low[nLow] = v
				nLow++
			} else {
				high[nHigh] = v
				nHigh++
			}
		}

		lowOff := i * 3
		for j := 0; j < 3; j++ {
			if j < nLow {
				newBuckets[lowOff+uint64(j)] = low[j]
			} else {
				newBuckets[lowOff+uint64(j)] = sentinelFor(i)
			}
		}

		highIdx := i + n
		highOff := highIdx * 3
		for j := 0; j < 3; j++ {
			if j < nHigh {
				newBuckets[highOff+uint64(j)] = high[j]
			} else {
				newBuckets[highOff+uint64(j)] = sentinelFor(highIdx)
			}
		}
	}

	s.buckets = newBuckets
	s.bsize = 3
	s.logsize++
	s.mask = newMask
	s.stats.Grows++

	// Step 4: reinsert the swap buffer at the new size.
	for _, v := range swap {
		if s.tryPlace(v) {
			continue
		}
		if s.stashAdd(v) {
			continue
		}
		// With the bucket count just doubled and the stash freshly
		// emptied, this is unreachable for any well-mixed fingerprint
		// stream; spec.md doesn't define recovery from it.
		panic("fp64set: grow could not re-home a fingerprint from the swap buffer")
	}

	s.rebuildDispatch()
	return nil
}
