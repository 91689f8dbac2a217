package pedersen

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
)

// MarshalBinary returns the compressed encoding of H.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	if pk == nil {
		return nil, commit.Errorf("pedersen.PublicKey.MarshalBinary", "nil key: %w", commit.ErrInvalidParameter)
	}
	return pk.h.Bytes(), nil
}

// UnmarshalPublicKey decodes a key produced by MarshalBinary.
func UnmarshalPublicKey(c curve.Curve, data []byte) (*PublicKey, error) {
	h, err := curve.NewPointFromBytes(c, data)
	if err != nil {
		return nil, commit.WrapError("pedersen.UnmarshalPublicKey", err)
	}
	return NewPublicKey(h)
}

// MarshalBinary returns the compressed encoding of C.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil {
		return nil, commit.Errorf("pedersen.Commitment.MarshalBinary", "nil commitment: %w", commit.ErrInvalidParameter)
	}
	return c.c.Bytes(), nil
}

// UnmarshalCommitment decodes a commitment produced by MarshalBinary.
func UnmarshalCommitment(c curve.Curve, data []byte) (*Commitment, error) {
	p, err := curve.NewPointFromBytes(c, data)
	if err != nil {
		return nil, commit.WrapError("pedersen.UnmarshalCommitment", err)
	}
	return &Commitment{c: p}, nil
}

// MarshalBinary encodes the opening as value || r, each ScalarSize bytes.
func (o *OpeningInfo) MarshalBinary() ([]byte, error) {
	if o == nil {
		return nil, commit.Errorf("pedersen.OpeningInfo.MarshalBinary", "nil opening: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddBytes(o.value.Bytes())
	b.AddBytes(o.r.Bytes())
	return b.Bytes()
}

// UnmarshalOpeningInfo decodes an opening produced by MarshalBinary.
func UnmarshalOpeningInfo(c curve.Curve, data []byte) (*OpeningInfo, error) {
	const op = "pedersen.UnmarshalOpeningInfo"
	s := cryptobyte.String(data)
	var vb, rb []byte
	if !s.ReadBytes(&vb, c.ScalarSize()) || !s.ReadBytes(&rb, c.ScalarSize()) || !s.Empty() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", 2*c.ScalarSize(), len(data), commit.ErrInvalidEncoding)
	}
	v, err := curve.NewScalarFromBytes(c, vb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	r, err := curve.NewScalarFromBytes(c, rb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &OpeningInfo{value: v, r: r}, nil
}
