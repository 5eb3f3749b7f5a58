package fp64set

// placeInEither deposits fp into the first free slot of bucket i1, falling
// back to bucket i2. Reports whether a slot was found.
func placeInEither(fp uint64, i1 uint64, b1 []uint64, i2 uint64, b2 []uint64) bool {
	if placeInOne(fp, i1, b1) {
		return true
	}
	return placeInOne(fp, i2, b2)
}

// placeInOne deposits fp into the first free slot of bucket i, used both by
// placeInEither and, restricted to a single bucket, during eviction.
func placeInOne(fp uint64, i uint64, b []uint64) bool {
	for j := range b {
		if isFree(b[j], i) {
			b[j] = fp
			return true
		}
	}
	return false
}

// kick runs the eviction walk: fp lands in the last slot of bucket i, bumping
// out whatever was in slot 0, which is retried against its alternative bucket,
// and so on, up to maxKicks() steps. Returns the leftover fingerprint and
// false if the walk never found a home for it.
func (s *Set) kick(fp uint64, i uint64) (uint64, bool) {
	b := s.row(i)
	max := s.maxKicks()

	for n := 0; n < max; n++ {
		// Shift the bucket down by one slot, placing fp in the last slot; the
		// element that falls out of slot 0 becomes the new fp to place.
		evicted := b[0]
		copy(b[:len(b)-1], b[1:])
		b[len(b)-1] = fp
		fp = evicted
		s.stats.Kicks++

		altI := altIndex(fp, i, s.mask)
		altB := s.row(altI)
		if placeInOne(fp, altI, altB) {
			return 0, true
		}
		i, b = altI, altB
	}
	return fp, false
}
