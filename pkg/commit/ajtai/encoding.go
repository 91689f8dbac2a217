package ajtai

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

// MarshalBinary encodes A1 and A2 in the length-prefixed row-major matrix
// form, followed by the reference basis when the key uses NormBasis. The
// bounds Short and Sigma are not encoded.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	if pk == nil {
		return nil, commit.Errorf("ajtai.PublicKey.MarshalBinary", "nil key: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	lattice.AppendMatrix(&b, pk.a1)
	lattice.AppendMatrix(&b, pk.a2)
	if pk.basis != nil {
		enc, err := pk.basis.MarshalBinary()
		if err != nil {
			return nil, err
		}
		b.AddBytes(enc)
	}
	return b.Bytes()
}

// UnmarshalPublicKey decodes a key produced by MarshalBinary. The matrix
// dimensions and modulus must agree with p.
func UnmarshalPublicKey(p Params, data []byte) (*PublicKey, error) {
	const op = "ajtai.UnmarshalPublicKey"
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
	for _, a := range []*Matrix{a1, a2} {
		if a.Rows() != p.N || a.Cols() != p.M || a.Modulus() != p.Q {
			return nil, commit.Errorf(op, "matrix %s does not match params: %w", a, commit.ErrInvalidEncoding)
		}
	}
	var basis *lattice.Basis
	if p.Norm == NormBasis {
		if basis, err = lattice.ReadBasis(&s); err != nil {
			return nil, commit.WrapError(op, err)
		}
		if basis.Dim() != p.M {
			return nil, commit.Errorf(op, "basis dimension %d, want %d: %w", basis.Dim(), p.M, commit.ErrInvalidEncoding)
		}
	}
	if !s.Empty() {
		return nil, commit.Errorf(op, "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	pk, err := newPublicKey(p, a1, a2, basis)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return pk, nil
}

// MarshalBinary encodes the commitment vector.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil {
		return nil, commit.Errorf("ajtai.Commitment.MarshalBinary", "nil commitment: %w", commit.ErrInvalidParameter)
	}
	return c.com.MarshalBinary()
}

// UnmarshalCommitment decodes a commitment produced by MarshalBinary.
func UnmarshalCommitment(data []byte) (*Commitment, error) {
	m, err := lattice.UnmarshalMatrix(data)
	if err != nil {
		return nil, commit.WrapError("ajtai.UnmarshalCommitment", err)
	}
	if !m.IsColumnVector() {
		return nil, commit.Errorf("ajtai.UnmarshalCommitment", "not a column vector: %w", commit.ErrInvalidEncoding)
	}
	return &Commitment{com: m}, nil
}

// MarshalBinary encodes the opening as value || randomness, each in the
// matrix form.
func (o *OpeningInfo) MarshalBinary() ([]byte, error) {
	if o == nil || o.value == nil || o.randomness == nil {
		return nil, commit.Errorf("ajtai.OpeningInfo.MarshalBinary", "nil opening: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	lattice.AppendMatrix(&b, o.value)
	lattice.AppendMatrix(&b, o.randomness)
	return b.Bytes()
}

// UnmarshalOpeningInfo decodes an opening produced by MarshalBinary. Shape
// is not checked here; IsValid rejects vectors of the wrong shape.
func UnmarshalOpeningInfo(data []byte) (*OpeningInfo, error) {
	const op = "ajtai.UnmarshalOpeningInfo"
	s := cryptobyte.String(data)
	v, err := lattice.ReadMatrix(&s)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	r, err := lattice.ReadMatrix(&s)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	if !s.Empty() {
		return nil, commit.Errorf(op, "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	return &OpeningInfo{value: v, randomness: r}, nil
}
