package lattice

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

const (
	// maxEntries bounds rows*cols accepted by the decoders.
	maxEntries = 1 << 24

	// MaxBasisDim bounds the dimension of a decoded basis. Decoding runs a
	// cubic Gram-Schmidt pass.
	MaxBasisDim = 1024

	entrySize = 8
)

// MarshalBinary encodes the matrix as uint32 rows, uint32 cols, uint64 q
// followed by rows*cols big-endian uint64 entries in row-major order.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, commit.Errorf("lattice.Matrix.MarshalBinary", "nil matrix: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddUint32(uint32(m.rows)) // #nosec G115 -- bounded by decoder and constructors
	b.AddUint32(uint32(m.cols)) // #nosec G115 -- bounded by decoder and constructors
	b.AddUint64(m.q)
	for _, v := range m.data {
		b.AddUint64(v)
	}
	return b.Bytes()
}

// UnmarshalMatrix decodes a matrix produced by MarshalBinary. Entries must
// already be reduced.
func UnmarshalMatrix(data []byte) (*Matrix, error) {
	s := cryptobyte.String(data)
	m, err := ReadMatrix(&s)
	if err != nil {
		return nil, err
	}
	if !s.Empty() {
		return nil, commit.Errorf("lattice.UnmarshalMatrix", "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	return m, nil
}

// AppendMatrix adds the MarshalBinary form of m to b.
func AppendMatrix(b *cryptobyte.Builder, m *Matrix) {
	enc, err := m.MarshalBinary()
	if err != nil {
		b.SetError(err)
		return
	}
	b.AddBytes(enc)
}

// ReadMatrix consumes one encoded matrix from s.
func ReadMatrix(s *cryptobyte.String) (*Matrix, error) {
	const op = "lattice.ReadMatrix"
	var rows, cols uint32
	var q uint64
	if !s.ReadUint32(&rows) || !s.ReadUint32(&cols) || !s.ReadUint64(&q) {
		return nil, commit.Errorf(op, "truncated header: %w", commit.ErrInvalidEncoding)
	}
	if rows == 0 || cols == 0 || uint64(rows)*uint64(cols) > maxEntries || !ValidModulus(q) {
		return nil, commit.Errorf(op, "header %dx%d mod %d: %w", rows, cols, q, commit.ErrInvalidEncoding)
	}
	if uint64(len(*s)) < entrySize*uint64(rows)*uint64(cols) {
		return nil, commit.Errorf(op, "header %dx%d but only %d bytes follow: %w", rows, cols, len(*s), commit.ErrInvalidEncoding)
	}
	m := NewMatrix(int(rows), int(cols), q)
	for i := range m.data {
		var v uint64
		if !s.ReadUint64(&v) {
			return nil, commit.Errorf(op, "truncated at entry %d: %w", i, commit.ErrInvalidEncoding)
		}
		if v >= q {
			return nil, commit.Errorf(op, "entry %d not reduced: %w", i, commit.ErrInvalidEncoding)
		}
		m.data[i] = v
	}
	return m, nil
}

// MarshalBinary encodes the basis as uint32 rows, uint32 cols followed by
// the big-endian int64 entries.
func (b *Basis) MarshalBinary() ([]byte, error) {
	if b == nil {
		return nil, commit.Errorf("lattice.Basis.MarshalBinary", "nil basis: %w", commit.ErrInvalidParameter)
	}
	var bb cryptobyte.Builder
	bb.AddUint32(uint32(b.m)) // #nosec G115 -- bounded by decoder and constructors
	bb.AddUint32(uint32(b.m)) // #nosec G115 -- bounded by decoder and constructors
	for _, r := range b.rows {
		for _, x := range r {
			bb.AddUint64(uint64(x)) // #nosec G115 -- two's complement round trip
		}
	}
	return bb.Bytes()
}

// ReadBasis consumes one encoded basis from s. The basis is used as
// encoded; it is checked for full rank but not reduced again.
func ReadBasis(s *cryptobyte.String) (*Basis, error) {
	const op = "lattice.ReadBasis"
	var rows, cols uint32
	if !s.ReadUint32(&rows) || !s.ReadUint32(&cols) {
		return nil, commit.Errorf(op, "truncated header: %w", commit.ErrInvalidEncoding)
	}
	if rows == 0 || rows != cols || rows > MaxBasisDim {
		return nil, commit.Errorf(op, "header %dx%d: %w", rows, cols, commit.ErrInvalidEncoding)
	}
	if uint64(len(*s)) < entrySize*uint64(rows)*uint64(cols) {
		return nil, commit.Errorf(op, "header %dx%d but only %d bytes follow: %w", rows, cols, len(*s), commit.ErrInvalidEncoding)
	}
	vals := make([][]int64, rows)
	for i := range vals {
		vals[i] = make([]int64, cols)
		for j := range vals[i] {
			var v uint64
			if !s.ReadUint64(&v) {
				return nil, commit.Errorf(op, "truncated at entry (%d,%d): %w", i, j, commit.ErrInvalidEncoding)
			}
			vals[i][j] = int64(v) // #nosec G115 -- two's complement round trip
		}
	}
	b, err := parseBasis(op, vals)
	if err != nil {
		return nil, commit.Errorf(op, "%v: %w", err, commit.ErrInvalidEncoding)
	}
	return b, nil
}
