package elgamal

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
)

// MarshalBinary returns the compressed encoding of H.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	if pk == nil {
		return nil, commit.Errorf("elgamal.PublicKey.MarshalBinary", "nil key: %w", commit.ErrInvalidParameter)
	}
	return pk.h.Bytes(), nil
}

// UnmarshalPublicKey decodes a key produced by MarshalBinary.
func UnmarshalPublicKey(c curve.Curve, data []byte) (*PublicKey, error) {
	h, err := curve.NewPointFromBytes(c, data)
	if err != nil {
		return nil, commit.WrapError("elgamal.UnmarshalPublicKey", err)
	}
	return NewPublicKey(h)
}

// MarshalBinary encodes the commitment as L || R.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil {
		return nil, commit.Errorf("elgamal.Commitment.MarshalBinary", "nil commitment: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddBytes(c.l.Bytes())
	b.AddBytes(c.r.Bytes())
	return b.Bytes()
}

// UnmarshalCommitment decodes a commitment produced by MarshalBinary.
func UnmarshalCommitment(c curve.Curve, data []byte) (*Commitment, error) {
	const op = "elgamal.UnmarshalCommitment"
	s := cryptobyte.String(data)
	var lb, rb []byte
	if !s.ReadBytes(&lb, c.PointSize()) || !s.ReadBytes(&rb, c.PointSize()) || !s.Empty() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", 2*c.PointSize(), len(data), commit.ErrInvalidEncoding)
	}
	l, err := curve.NewPointFromBytes(c, lb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	r, err := curve.NewPointFromBytes(c, rb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &Commitment{l: l, r: r}, nil
}

// MarshalBinary encodes the opening as M || r.
func (o *OpeningInfo) MarshalBinary() ([]byte, error) {
	if o == nil {
		return nil, commit.Errorf("elgamal.OpeningInfo.MarshalBinary", "nil opening: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddBytes(o.value.Bytes())
	b.AddBytes(o.r.Bytes())
	return b.Bytes()
}

// UnmarshalOpeningInfo decodes an opening produced by MarshalBinary.
func UnmarshalOpeningInfo(c curve.Curve, data []byte) (*OpeningInfo, error) {
	const op = "elgamal.UnmarshalOpeningInfo"
	s := cryptobyte.String(data)
	var mb, rb []byte
	if !s.ReadBytes(&mb, c.PointSize()) || !s.ReadBytes(&rb, c.ScalarSize()) || !s.Empty() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", c.PointSize()+c.ScalarSize(), len(data), commit.ErrInvalidEncoding)
	}
	m, err := curve.NewPointFromBytes(c, mb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	r, err := curve.NewScalarFromBytes(c, rb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &OpeningInfo{value: m, r: r}, nil
}
