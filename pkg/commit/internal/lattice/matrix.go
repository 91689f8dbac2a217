package lattice

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// MaxModulus is the exclusive upper bound on q. Keeping q below 2^32 lets
// every product of two reduced entries fit in a uint64 and keeps the Barrett
// constants valid.
const MaxModulus = 1 << 32

// Matrix is a dense row-major matrix over Z_q. Entries are stored reduced
// into [0, q).
//
// Shape errors panic, as in gonum/mat: they are programming errors, not
// runtime conditions.
type Matrix struct {
	rows, cols int
	q          uint64
	bred       []uint64
	data       []uint64
}

// ValidModulus reports whether q can be used as a matrix modulus.
func ValidModulus(q uint64) bool {
	return q >= 2 && q < MaxModulus
}

// NewMatrix returns the rows x cols zero matrix over Z_q.
func NewMatrix(rows, cols int, q uint64) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("lattice: invalid shape %dx%d", rows, cols))
	}
	if !ValidModulus(q) {
		panic(fmt.Sprintf("lattice: modulus %d out of range", q))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		q:    q,
		bred: ring.BRedParams(q),
		data: make([]uint64, rows*cols),
	}
}

// NewMatrixFromInt64 builds a matrix from row-major signed values, reducing
// each one into [0, q).
func NewMatrixFromInt64(rows, cols int, q uint64, vals []int64) *Matrix {
	m := NewMatrix(rows, cols, q)
	if len(vals) != rows*cols {
		panic(fmt.Sprintf("lattice: %d values for a %dx%d matrix", len(vals), rows, cols))
	}
	for i, v := range vals {
		m.data[i] = reduceInt64(v, q)
	}
	return m
}

// NewColumn builds a column vector from signed values.
func NewColumn(q uint64, vals ...int64) *Matrix {
	return NewMatrixFromInt64(len(vals), 1, q, vals)
}

// Identity returns the n x n identity over Z_q.
func Identity(n int, q uint64) *Matrix {
	m := NewMatrix(n, n, q)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

func reduceInt64(v int64, q uint64) uint64 {
	if v >= 0 {
		return uint64(v) % q
	}
	// -v overflows for MinInt64, so reduce the magnitude as a uint64.
	r := (uint64(^v) + 1) % q
	if r == 0 {
		return 0
	}
	return q - r
}

func (m *Matrix) Rows() int       { return m.rows }
func (m *Matrix) Cols() int       { return m.cols }
func (m *Matrix) Modulus() uint64 { return m.q }

// IsColumnVector reports whether m has exactly one column.
func (m *Matrix) IsColumnVector() bool {
	return m != nil && m.cols == 1
}

// At returns entry (i, j) in [0, q).
func (m *Matrix) At(i, j int) uint64 {
	m.checkIndex(i, j)
	return m.data[i*m.cols+j]
}

// Set stores v mod q at (i, j).
func (m *Matrix) Set(i, j int, v uint64) {
	m.checkIndex(i, j)
	m.data[i*m.cols+j] = ring.BRedAdd(v, m.q, m.bred)
}

// Centered returns entry (i, j) as its representative in (-q/2, q/2].
func (m *Matrix) Centered(i, j int) int64 {
	return m.center(m.At(i, j))
}

func (m *Matrix) center(v uint64) int64 {
	if v > m.q/2 {
		return -int64(m.q - v) // #nosec G115 -- q < 2^32
	}
	return int64(v) // #nosec G115 -- q < 2^32
}

// CenteredValues returns every entry in row-major order as a centered
// representative.
func (m *Matrix) CenteredValues() []int64 {
	out := make([]int64, len(m.data))
	for i, v := range m.data {
		out[i] = m.center(v)
	}
	return out
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("lattice: index (%d,%d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
}

func (m *Matrix) sameModulus(o *Matrix) {
	if m.q != o.q {
		panic(fmt.Sprintf("lattice: modulus mismatch %d != %d", m.q, o.q))
	}
}

// Wipe zeroes the entries in place.
func (m *Matrix) Wipe() {
	if m != nil {
		commit.Zeroize(m.data)
	}
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	out := &Matrix{rows: m.rows, cols: m.cols, q: m.q, bred: m.bred}
	out.data = append([]uint64(nil), m.data...)
	return out
}

// Mul returns a*b mod q.
func Mul(a, b *Matrix) *Matrix {
	a.sameModulus(b)
	if a.cols != b.rows {
		panic(fmt.Sprintf("lattice: cannot multiply %dx%d by %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := NewMatrix(a.rows, b.cols, a.q)
	q, u := a.q, a.bred
	for i := 0; i < a.rows; i++ {
		row := a.data[i*a.cols : (i+1)*a.cols]
		for j := 0; j < b.cols; j++ {
			var acc uint64
			for k, x := range row {
				acc += ring.BRed(x, b.data[k*b.cols+j], q, u)
				if acc >= q {
					acc -= q
				}
			}
			out.data[i*out.cols+j] = acc
		}
	}
	return out
}

// Add returns a+b mod q.
func Add(a, b *Matrix) *Matrix {
	a.sameShape(b)
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] = ring.CRed(out.data[i]+v, a.q)
	}
	return out
}

// Sub returns a-b mod q.
func Sub(a, b *Matrix) *Matrix {
	a.sameShape(b)
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] = ring.CRed(out.data[i]+a.q-v, a.q)
	}
	return out
}

// Scale returns k*m mod q.
func (m *Matrix) Scale(k uint64) *Matrix {
	k = ring.BRedAdd(k, m.q, m.bred)
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = ring.BRed(v, k, m.q, m.bred)
	}
	return out
}

func (m *Matrix) sameShape(o *Matrix) {
	m.sameModulus(o)
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("lattice: shape mismatch %dx%d vs %dx%d", m.rows, m.cols, o.rows, o.cols))
	}
}

// Equal reports whether both matrices have the same shape, modulus and
// entries. The entry comparison does not short-circuit.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || m.q != o.q {
		return false
	}
	var diff uint64
	for i := range m.data {
		diff |= m.data[i] ^ o.data[i]
	}
	return diff == 0
}

// HStack returns [a | b].
func HStack(a, b *Matrix) *Matrix {
	a.sameModulus(b)
	if a.rows != b.rows {
		panic(fmt.Sprintf("lattice: cannot stack %d rows beside %d rows", a.rows, b.rows))
	}
	out := NewMatrix(a.rows, a.cols+b.cols, a.q)
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*out.cols:], a.data[i*a.cols:(i+1)*a.cols])
		copy(out.data[i*out.cols+a.cols:], b.data[i*b.cols:(i+1)*b.cols])
	}
	return out
}

// NormEuclideanSquared returns the squared Euclidean norm of the centered
// representatives, saturating at math.MaxUint64.
func (m *Matrix) NormEuclideanSquared() uint64 {
	var sum uint64
	for _, v := range m.data {
		c := m.center(v)
		if c < 0 {
			c = -c
		}
		hi, sq := bits.Mul64(uint64(c), uint64(c))
		if hi != 0 {
			return math.MaxUint64
		}
		var carry uint64
		sum, carry = bits.Add64(sum, sq, 0)
		if carry != 0 {
			return math.MaxUint64
		}
	}
	return sum
}

// NormInfinity returns the largest absolute centered entry.
func (m *Matrix) NormInfinity() uint64 {
	var top uint64
	for _, v := range m.data {
		c := m.center(v)
		if c < 0 {
			c = -c
		}
		if uint64(c) > top {
			top = uint64(c)
		}
	}
	return top
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d mod %d)", m.rows, m.cols, m.q)
}
