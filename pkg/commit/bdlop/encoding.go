package bdlop

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

// MarshalBinary encodes the full matrices A1 and A2 in the length-prefixed
// row-major form.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	if pk == nil {
		return nil, commit.Errorf("bdlop.PublicKey.MarshalBinary", "nil key: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	lattice.AppendMatrix(&b, pk.a1)
	lattice.AppendMatrix(&b, pk.a2)
	return b.Bytes()
}

// UnmarshalPublicKey decodes a key produced by MarshalBinary and checks that
// the identity and zero blocks are in place.
func UnmarshalPublicKey(p Params, data []byte) (*PublicKey, error) {
	const op = "bdlop.UnmarshalPublicKey"
	if err := p.Validate(); err != nil {
		return nil, commit.WrapError(op, err)
	}
	s := cryptobyte.String(data)
	a1, err := lattice.ReadMatrix(&s)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	a2, err := lattice.ReadMatrix(&s)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	if !s.Empty() {
		return nil, commit.Errorf(op, "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	if a1.Rows() != p.N || a1.Cols() != p.K || a2.Rows() != p.L || a2.Cols() != p.K || a1.Modulus() != p.Q || a2.Modulus() != p.Q {
		return nil, commit.Errorf(op, "matrices %s and %s do not match params: %w", a1, a2, commit.ErrInvalidEncoding)
	}
	if !hasStructure(a1, a2, p) {
		return nil, commit.Errorf(op, "identity blocks missing: %w", commit.ErrInvalidEncoding)
	}
	return &PublicKey{params: p, a1: a1, a2: a2}, nil
}

func hasStructure(a1, a2 *Matrix, p Params) bool {
	for i := 0; i < p.N; i++ {
		for j := 0; j < p.N; j++ {
			if want := boolToEntry(i == j); a1.At(i, j) != want {
				return false
			}
		}
	}
	for i := 0; i < p.L; i++ {
		for j := 0; j < p.N+p.L; j++ {
			if want := boolToEntry(j-p.N == i); a2.At(i, j) != want {
				return false
			}
		}
	}
	return true
}

func boolToEntry(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// MarshalBinary encodes the commitment as c1 || c2.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil {
		return nil, commit.Errorf("bdlop.Commitment.MarshalBinary", "nil commitment: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	lattice.AppendMatrix(&b, c.c1)
	lattice.AppendMatrix(&b, c.c2)
	return b.Bytes()
}

// UnmarshalCommitment decodes a commitment produced by MarshalBinary.
func UnmarshalCommitment(data []byte) (*Commitment, error) {
	const op = "bdlop.UnmarshalCommitment"
	c1, c2, err := readPair(op, data)
	if err != nil {
		return nil, err
	}
	return &Commitment{c1: c1, c2: c2}, nil
}

// MarshalBinary encodes the opening as message || randomness.
func (o *OpeningInfo) MarshalBinary() ([]byte, error) {
	if o == nil || o.msg == nil || o.r == nil {
		return nil, commit.Errorf("bdlop.OpeningInfo.MarshalBinary", "nil opening: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	lattice.AppendMatrix(&b, o.msg)
	lattice.AppendMatrix(&b, o.r)
	return b.Bytes()
}

// UnmarshalOpeningInfo decodes an opening produced by MarshalBinary.
func UnmarshalOpeningInfo(data []byte) (*OpeningInfo, error) {
	msg, r, err := readPair("bdlop.UnmarshalOpeningInfo", data)
	if err != nil {
		return nil, err
	}
	return &OpeningInfo{msg: msg, r: r}, nil
}

func readPair(op string, data []byte) (*Matrix, *Matrix, error) {
	s := cryptobyte.String(data)
	a, err := lattice.ReadMatrix(&s)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	b, err := lattice.ReadMatrix(&s)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	if !s.Empty() {
		return nil, nil, commit.Errorf(op, "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	if !a.IsColumnVector() || !b.IsColumnVector() {
		return nil, nil, commit.Errorf(op, "expected column vectors: %w", commit.ErrInvalidEncoding)
	}
	return a, b, nil
}
