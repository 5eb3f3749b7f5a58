package fp64set

// Result is the outcome of Add.
type Result int8

const (
	// Present is returned when fp was already a member; the set is unchanged.
	Present Result = 0
	// Inserted is returned when fp was added without triggering a resize.
	Inserted Result = 1
	// ResizedInserted is returned when fp was added and, in the process,
	// the bucket width was widened or the bucket count doubled.
	ResizedInserted Result = 2
	// Failed is returned on error; consult the returned error value (see
	// ErrNoMemory, ErrUnplaceable).
	Failed Result = -1
)

const (
	minLogsize = 4
	maxLogsize = 32

	bsizeInitial = 2
	bsizeMax     = 4
)

// Set is a bucketized cuckoo set of 64-bit fingerprints. The zero value is
// not usable; construct one with New. Not safe for concurrent use.
type Set struct {
	buckets []uint64 // flat, row-major: buckets[i*bsize : i*bsize+bsize] is bucket i
	bsize   int      // slots per bucket: 2, 3, or 4
	logsize int      // len(buckets)/bsize == 1<<logsize
	mask    uint64   // 1<<logsize - 1

	cnt    uint64 // fingerprints held in buckets (excludes stash)
	stash  [2]uint64
	nstash int // 0, 1 or 2; invariant: nstash==1 => stash[0]==stash[1]

	maxKicksCoef int // kick() tries 2*logsize*maxKicksCoef evictions

	alloc    Allocator
	simdMode string // "auto", "on", or "off"
	simd     bool   // resolved capability, recomputed by rebuildDispatch

	hasFn hasFunc // current dispatch target, rebuilt on every transition

	stats Stats
}

// Option configures a Set at construction time.
type Option func(*Set)

// WithAllocator overrides the default make-backed Allocator. Use this to
// inject a failing allocator in tests, exercising Add's ErrNoMemory path.
func WithAllocator(a Allocator) Option {
	return func(s *Set) { s.alloc = a }
}

// WithSIMD forces the SIMD-capability axis of the dispatch table: "auto"
// (the default) detects the host via golang.org/x/sys/cpu, "on"/"off" force
// the choice regardless of what the host actually supports (useful for
// testing both probe kernels on the same machine).
func WithSIMD(mode string) Option {
	return func(s *Set) { s.simdMode = mode }
}

// WithMaxKicksCoefficient overrides the multiplier applied to 2*logsize when
// bounding the eviction walk (see kick in insert.go). spec.md's design notes
// call the default coefficient of 1 "empirical... keep it configurable for
// testing".
func WithMaxKicksCoefficient(c int) Option {
	return func(s *Set) {
		if c > 0 {
			s.maxKicksCoef = c
		}
	}
}

// New creates a set sized for roughly 2^logsize buckets. logsize is clamped
// up to a minimum of 4; values above 32 are rejected with ErrTooBig.
func New(logsize int, opts ...Option) (*Set, error) {
	if logsize > maxLogsize {
		return nil, ErrTooBig
	}
	if logsize < minLogsize {
		logsize = minLogsize
	}

	s := &Set{
		bsize:        bsizeInitial,
		logsize:      logsize,
		alloc:        defaultAllocator{},
		simdMode:     "auto",
		maxKicksCoef: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mask = (uint64(1) << uint(logsize)) - 1

	n := s.bsize << uint(logsize)
	buckets, err := s.alloc.Alloc(n)
	if err != nil {
		return nil, wrapAlloc(err)
	}
	s.buckets = buckets
	for j := 0; j < s.bsize; j++ {
		s.buckets[j] = sentinelOnes
	}

	s.rebuildDispatch()
	return s, nil
}

// NewFromConfig builds a Set from a Config loaded via LoadConfig, plus any
// additional Options (typically WithAllocator, since Config itself carries
// no allocator — it's not a serializable collaborator).
func NewFromConfig(cfg Config, opts ...Option) (*Set, error) {
	all := append([]Option{WithSIMD(cfg.simdOrDefault())}, opts...)
	return New(cfg.LogSize, all...)
}

// row returns bucket i as a sub-slice of the flat bucket array.
func (s *Set) row(i uint64) []uint64 {
	off := i * uint64(s.bsize)
	return s.buckets[off : off+uint64(s.bsize)]
}

// maxKicks is the eviction-walk bound used by kick.
func (s *Set) maxKicks() int {
	return 2 * s.logsize * s.maxKicksCoef
}

// Len returns the number of fingerprints in the set (buckets plus stash).
func (s *Set) Len() uint64 {
	return s.cnt + uint64(s.nstash)
}

// LoadFactor returns (cnt+nstash) / (bsize * bucketCount).
func (s *Set) LoadFactor() float64 {
	total := float64(s.bsize) * float64(s.mask+1)
	return float64(s.Len()) / total
}

// Close releases any resources held by the set. In this Go implementation
// there is nothing for the garbage collector to need help with; Close is a
// documented no-op kept for lifecycle symmetry with fp64set_free in the
// original C API. It returns no error, so Set does not implement io.Closer.
func (s *Set) Close() {}
