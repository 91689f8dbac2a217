package groth

import (
	"golang.org/x/crypto/cryptobyte"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/pairing"
)

// maxN bounds the vector length accepted when decoding.
const maxN = 1 << 16

// MarshalBinary encodes the key as a big-endian uint32 N followed by
// g[0..N), h[0..N), gs, gr, hs and hr in compressed form.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	if pk == nil {
		return nil, commit.Errorf("groth.PublicKey.MarshalBinary", "nil key: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddUint32(uint32(len(pk.g))) // #nosec G115 -- bounded by key construction
	for _, p := range pk.g {
		b.AddBytes(p.Bytes())
	}
	for _, p := range pk.h {
		b.AddBytes(p.Bytes())
	}
	for _, p := range []*pairing.G1{pk.gs, pk.gr, pk.hs, pk.hr} {
		b.AddBytes(p.Bytes())
	}
	return b.Bytes()
}

// UnmarshalPublicKey decodes a key produced by MarshalBinary.
func UnmarshalPublicKey(c pairing.Curve, data []byte) (*PublicKey, error) {
	const op = "groth.UnmarshalPublicKey"
	s := cryptobyte.String(data)
	var n uint32
	if !s.ReadUint32(&n) || n == 0 || n > maxN {
		return nil, commit.Errorf(op, "bad length prefix: %w", commit.ErrInvalidEncoding)
	}
	pts := make([]*pairing.G1, 2*int(n)+4)
	for i := range pts {
		var raw []byte
		if !s.ReadBytes(&raw, c.G1Size()) {
			return nil, commit.Errorf(op, "truncated at base %d: %w", i, commit.ErrInvalidEncoding)
		}
		p, err := pairing.NewG1FromBytes(c, raw)
		if err != nil {
			return nil, commit.WrapError(op, err)
		}
		pts[i] = p
	}
	if !s.Empty() {
		return nil, commit.Errorf(op, "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	k := int(n)
	return NewPublicKey(pts[:k], pts[k:2*k], pts[2*k], pts[2*k+1], pts[2*k+2], pts[2*k+3])
}

// MarshalBinary encodes the commitment as C || D.
func (c *Commitment) MarshalBinary() ([]byte, error) {
	if c == nil {
		return nil, commit.Errorf("groth.Commitment.MarshalBinary", "nil commitment: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddBytes(c.c.Bytes())
	b.AddBytes(c.d.Bytes())
	return b.Bytes()
}

// UnmarshalCommitment decodes a commitment produced by MarshalBinary.
func UnmarshalCommitment(pc pairing.Curve, data []byte) (*Commitment, error) {
	const op = "groth.UnmarshalCommitment"
	s := cryptobyte.String(data)
	var cb, db []byte
	if !s.ReadBytes(&cb, pc.GTSize()) || !s.ReadBytes(&db, pc.GTSize()) || !s.Empty() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", 2*pc.GTSize(), len(data), commit.ErrInvalidEncoding)
	}
	c, err := pairing.NewGTFromBytes(pc, cb)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	d, err := pairing.NewGTFromBytes(pc, db)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &Commitment{c: c, d: d}, nil
}

// MarshalBinary encodes the opening as a uint32 N, the N message elements,
// then r and s.
func (o *OpeningInfo) MarshalBinary() ([]byte, error) {
	if o == nil || o.msg == nil {
		return nil, commit.Errorf("groth.OpeningInfo.MarshalBinary", "nil opening: %w", commit.ErrInvalidParameter)
	}
	var b cryptobyte.Builder
	b.AddUint32(uint32(o.msg.Len())) // #nosec G115 -- bounded by message construction
	for _, e := range o.msg.elems {
		b.AddBytes(e.Bytes())
	}
	b.AddBytes(o.r.Bytes())
	b.AddBytes(o.s.Bytes())
	return b.Bytes()
}

// UnmarshalOpeningInfo decodes an opening produced by MarshalBinary.
func UnmarshalOpeningInfo(c pairing.Curve, data []byte) (*OpeningInfo, error) {
	const op = "groth.UnmarshalOpeningInfo"
	s := cryptobyte.String(data)
	var n uint32
	if !s.ReadUint32(&n) || n == 0 || n > maxN {
		return nil, commit.Errorf(op, "bad length prefix: %w", commit.ErrInvalidEncoding)
	}
	elems := make([]*pairing.G2, int(n)+2)
	for i := range elems {
		var raw []byte
		if !s.ReadBytes(&raw, c.G2Size()) {
			return nil, commit.Errorf(op, "truncated at element %d: %w", i, commit.ErrInvalidEncoding)
		}
		e, err := pairing.NewG2FromBytes(c, raw)
		if err != nil {
			return nil, commit.WrapError(op, err)
		}
		elems[i] = e
	}
	if !s.Empty() {
		return nil, commit.Errorf(op, "%d trailing bytes: %w", len(s), commit.ErrInvalidEncoding)
	}
	msg, err := NewMessage(elems[:n])
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &OpeningInfo{msg: msg, r: elems[n], s: elems[n+1]}, nil
}
