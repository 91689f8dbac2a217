package lattice

import (
	"encoding/binary"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// uint32Source turns an io.Reader into a stream of uint32 values, buffering
// reads so rejection sampling does not issue one syscall per draw.
type uint32Source struct {
	rng io.Reader
	buf []byte
	off int
}

func newUint32Source(rng io.Reader, hint int) *uint32Source {
	if hint < 1 {
		hint = 1
	}
	if hint > 1024 {
		hint = 1024
	}
	return &uint32Source{rng: rng, buf: make([]byte, 4*hint), off: 4 * hint}
}

func (s *uint32Source) next() (uint32, error) {
	if s.off == len(s.buf) {
		if _, err := io.ReadFull(s.rng, s.buf); err != nil {
			return 0, err
		}
		s.off = 0
	}
	v := binary.BigEndian.Uint32(s.buf[s.off:])
	s.off += 4
	return v, nil
}

func (s *uint32Source) wipe() {
	commit.ZeroizeBytes(s.buf)
}

// below returns a uniform value in [0, n) by rejection, for 0 < n <= 2^32.
func (s *uint32Source) below(n uint64) (uint64, error) {
	limit := uint64(MaxModulus) - uint64(MaxModulus)%n
	for {
		v, err := s.next()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return uint64(v) % n, nil
		}
	}
}

// SampleUniform returns a rows x cols matrix with entries uniform in Z_q.
// Each entry is drawn by rejection from 32-bit words read from rng.
func SampleUniform(rows, cols int, q uint64, rng io.Reader) (*Matrix, error) {
	const op = "lattice.SampleUniform"
	if rng == nil {
		return nil, commit.Errorf(op, "nil randomness source: %w", commit.ErrInvalidParameter)
	}
	m := NewMatrix(rows, cols, q)
	src := newUint32Source(rng, rows*cols)
	defer src.wipe()
	for i := range m.data {
		v, err := src.below(q)
		if err != nil {
			return nil, commit.RandomnessError(op, err)
		}
		m.data[i] = v
	}
	return m, nil
}

// SampleBounded returns a rows x cols matrix with entries uniform in the
// open interval (-beta, beta), stored mod q.
func SampleBounded(rows, cols int, q, beta uint64, rng io.Reader) (*Matrix, error) {
	const op = "lattice.SampleBounded"
	if rng == nil {
		return nil, commit.Errorf(op, "nil randomness source: %w", commit.ErrInvalidParameter)
	}
	if beta == 0 || beta >= MaxModulus || 2*beta-1 > q {
		return nil, commit.Errorf(op, "bound %d does not fit modulus %d: %w", beta, q, commit.ErrInvalidParameter)
	}
	m := NewMatrix(rows, cols, q)
	src := newUint32Source(rng, rows*cols)
	defer src.wipe()
	width := 2*beta - 1
	for i := range m.data {
		v, err := src.below(width)
		if err != nil {
			return nil, commit.RandomnessError(op, err)
		}
		m.data[i] = reduceInt64(int64(v)-int64(beta-1), q) // #nosec G115 -- beta < 2^32
	}
	return m, nil
}
