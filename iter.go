package fp64set

// Iterator is an in/out cursor for Next. The zero value starts at the
// beginning. An Iterator is only valid for the Set it was obtained from,
// and only while that set isn't mutated by Add (deletion of the
// just-yielded element is fine, see Rewind).
type Iterator struct {
	pos uint64
}

// Next advances it and returns the next fingerprint in the set, or (0,
// false) once exhausted — at which point it is reset to the beginning.
// Iteration order is unspecified and not stable across mutations.
//
// Traversal walks the flat bucket array first (skipping free/sentinel
// slots), then the stash tail: stash[0] if any fingerprint is stashed, then
// stash[1] only if two distinct fingerprints are stashed.
func (s *Set) Next(it *Iterator) (uint64, bool) {
	total := uint64(len(s.buckets))
	for it.pos < total {
		pos := it.pos
		it.pos++
		i := pos / uint64(s.bsize)
		v := s.buckets[pos]
		if !isFree(v, i) {
			return v, true
		}
	}

	for it.pos < total+2 {
		slot := it.pos - total
		it.pos++
		switch slot {
		case 0:
			if s.nstash >= 1 {
				return s.stash[0], true
			}
		case 1:
			if s.nstash == 2 && s.stash[1] != s.stash[0] {
				return s.stash[1], true
			}
		}
	}

	it.pos = 0
	return 0, false
}

// Rewind steps the cursor back by one. Callers that Del the fingerprint
// Next just yielded must call Rewind first, since deletion shifts later
// bucket slots down by one and would otherwise skip the slot that took the
// deleted element's place.
func (it *Iterator) Rewind() {
	if it.pos > 0 {
		it.pos--
	}
}
