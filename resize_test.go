package fp64set

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWidenPreservesExistingMembership drives widen directly and checks
// every previously-inserted fingerprint survives the 2->3 and 3->4
// transitions intact. Row-specific coverage (first, last, interior) is in
// TestWidenBoundaryRows.
func TestWidenPreservesExistingMembership(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	n := s.mask + 1
	fps := make([]uint64, 0, n)
	for i := uint64(1); uint64(len(fps)) < n/2; i++ {
		fp := mix(i)
		res, err := s.Add(fp)
		require.NoError(t, err)
		if res == Failed {
			t.Fatalf("unexpected failure inserting seed data")
		}
		fps = append(fps, fp)
		if s.bsize != bsizeInitial {
			// A widen already happened on its own; stop seeding so the
			// explicit widen below still has room to place its pending item.
			break
		}
	}

	require.NoError(t, s.widen(3, mix(999999)))
	for _, fp := range fps {
		assert.True(t, s.Has(fp))
	}
	checkInvariants(t, s)

	require.NoError(t, s.widen(4, mix(999998)))
	for _, fp := range fps {
		assert.True(t, s.Has(fp))
	}
	checkInvariants(t, s)
}

// TestWidenBoundaryRows checks the first bucket (index 0, the one with the
// flipped sentinel), the last bucket, and a middle bucket all widen
// correctly: each must have exactly three slots afterwards, at least one of
// them free, and keep its prior occupants.
func TestWidenBoundaryRows(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	n := s.mask + 1
	last := n - 1
	mid := n / 2

	placeAt := func(i uint64) uint64 {
		for k := uint64(1); ; k++ {
			fp := mix(i*1000003 + k)
			if h1(fp, s.mask) == i {
				require.True(t, placeInOne(fp, i, s.row(i)))
				return fp
			}
		}
	}

	fp0 := placeAt(0)
	fpLast := placeAt(last)
	fpMid := placeAt(mid)
	s.cnt += 3

	require.NoError(t, s.widen(3, mix(42)))

	for _, row := range []uint64{0, mid, last} {
		b := s.row(row)
		assert.Equal(t, 3, len(b))
		free := 0
		for _, v := range b {
			if isFree(v, row) {
				free++
			}
		}
		assert.GreaterOrEqual(t, free, 1, "row %d must gain a free slot after widen", row)
	}

	assert.True(t, s.Has(fp0))
	assert.True(t, s.Has(fpLast))
	assert.True(t, s.Has(fpMid))
}

// TestGrowRedistributesAcrossSplit is a direct exercise of grow(): it checks
// that elements whose new H1/H2 lands in the "low" half (unchanged row
// index) and the "high" half (row index + n) both survive.
func TestGrowRedistributesAcrossSplit(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	require.NoError(t, s.widen(3, mix(1)))
	require.NoError(t, s.widen(4, mix(2)))

	n := s.mask + 1
	for i := uint64(3); s.cnt < 2*n; i++ {
		fp := mix(i)
		if s.Has(fp) {
			continue
		}
		i1, i2 := h1(fp, s.mask), h2(fp, s.mask)
		if placeInEither(fp, i1, s.row(i1), i2, s.row(i2)) {
			s.cnt++
		}
	}
	require.GreaterOrEqual(t, s.cnt, 2*n)

	before := make([]uint64, 0)
	var it Iterator
	for {
		fp, ok := s.Next(&it)
		if !ok {
			break
		}
		before = append(before, fp)
	}

	require.NoError(t, s.grow(mix(777)))
	assert.Equal(t, 3, s.bsize)
	assert.Equal(t, n*2, s.mask+1)

	for _, fp := range before {
		assert.True(t, s.Has(fp))
	}
	checkInvariants(t, s)
}

// TestGrowAllocationFailureLeavesStateIntact is the regression test for the
// rollback path: a failing allocator must leave cnt, stash and bucket
// contents exactly as they were before grow was attempted.
func TestGrowAllocationFailureLeavesStateIntact(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	require.NoError(t, s.widen(3, mix(1)))
	require.NoError(t, s.widen(4, mix(2)))

	n := s.mask + 1
	for i := uint64(3); s.cnt < 2*n; i++ {
		fp := mix(i)
		if s.Has(fp) {
			continue
		}
		i1, i2 := h1(fp, s.mask), h2(fp, s.mask)
		if placeInEither(fp, i1, s.row(i1), i2, s.row(i2)) {
			s.cnt++
		}
	}
	require.True(t, s.stashAdd(mix(424242)))

	cntBefore := s.cnt
	nstashBefore := s.nstash
	stashBefore := s.stash
	bucketsBefore := append([]uint64(nil), s.buckets...)

	s.alloc = FailAfter(0)
	err = s.grow(mix(888))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMemory))

	assert.Equal(t, cntBefore, s.cnt)
	assert.Equal(t, nstashBefore, s.nstash)
	assert.Equal(t, stashBefore, s.stash)
	assert.Equal(t, bucketsBefore, s.buckets)
	assert.Equal(t, 4, s.bsize)
}
