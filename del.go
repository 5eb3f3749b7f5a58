package fp64set

// Del removes fp from the set, if present. Never resizes. Returns true if
// fp was found and removed.
func (s *Set) Del(fp uint64) bool {
	i1, i2 := h1(fp, s.mask), h2(fp, s.mask)
	if s.delFromRow(fp, i1) || s.delFromRow(fp, i2) {
		s.cnt--
		return true
	}
	return s.stashDel(fp)
}

// delFromRow removes fp from bucket i if present, shifting the remaining
// slots down by one and re-sentineling the vacated last slot.
func (s *Set) delFromRow(fp uint64, i uint64) bool {
	b := s.row(i)
	for j := range b {
		if b[j] != fp {
			continue
		}
		copy(b[j:], b[j+1:])
		b[len(b)-1] = sentinelFor(i)
		return true
	}
	return false
}
