package fp64set

// Add inserts fp into the set. It is the only mutator that may trigger a
// resize (Has and Del never resize).
//
// Returns (Present, nil) if fp was already a member; (Inserted, nil) if it
// was placed without a resize; (ResizedInserted, nil) if placing it widened
// the bucket width or doubled the bucket count; or (Failed, err) if it could
// not be placed at all — err is ErrNoMemory (a resize's allocation failed,
// the set is unchanged) or ErrUnplaceable (load factor too low at bsize==4
// for growing to help; one unrelated fingerprint was evicted and lost,
// rebuild the set with a new seed).
func (s *Set) Add(fp uint64) (Result, error) {
	i1, i2 := h1(fp, s.mask), h2(fp, s.mask)
	b1, b2 := s.row(i1), s.row(i2)

	if s.has(fp, b1, b2) {
		return Present, nil
	}

	if placeInEither(fp, i1, b1, i2, b2) {
		s.cnt++
		return Inserted, nil
	}

	leftover, ok := s.kick(fp, i1)
	if ok {
		s.cnt++
		return Inserted, nil
	}

	// leftover is the fingerprint still without a home after the eviction
	// walk ran out of tries. Try the stash before giving up on it.
	if s.stashAdd(leftover) {
		s.stats.StashSpills++
		return Inserted, nil
	}

	// Stash was already full: grow the structure around the pending item.
	if s.bsize < bsizeMax {
		if err := s.widen(s.bsize+1, leftover); err != nil {
			return Failed, err
		}
		return ResizedInserted, nil
	}

	if err := s.grow(leftover); err != nil {
		return Failed, err
	}
	return ResizedInserted, nil
}
