package curve

import (
	"math/big"

	"github.com/cloudflare/circl/group"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// circlBackend covers Ristretto255 and the NIST curves. Weierstrass curves
// encode the identity as a single zero byte; padIdentity widens it to the
// fixed point size.
type circlBackend struct {
	g           group.Group
	size        int
	padIdentity bool
}

type circlElement struct {
	b circlBackend
	e group.Element
}

func (b circlBackend) generator() element {
	return circlElement{b: b, e: b.g.Generator()}
}

func (b circlBackend) identity() element {
	return circlElement{b: b, e: b.g.Identity()}
}

func (b circlBackend) decode(data []byte) (element, error) {
	if len(data) != b.size {
		return nil, commit.ErrInvalidEncoding
	}
	if b.padIdentity && isAllZero(data) {
		return b.identity(), nil
	}
	e := b.g.NewElement()
	if err := e.UnmarshalBinary(data); err != nil {
		return nil, commit.ErrInvalidEncoding
	}
	return circlElement{b: b, e: e}, nil
}

func (e circlElement) add(o element) element {
	r := e.b.g.NewElement()
	r.Add(e.e, o.(circlElement).e)
	return circlElement{b: e.b, e: r}
}

func (e circlElement) mul(k []byte) element {
	s := e.b.g.NewScalar()
	s.SetBigInt(new(big.Int).SetBytes(k))
	r := e.b.g.NewElement()
	r.Mul(e.e, s)
	return circlElement{b: e.b, e: r}
}

func (e circlElement) equal(o element) bool {
	return e.e.IsEqual(o.(circlElement).e)
}

func (e circlElement) isIdentity() bool {
	return e.e.IsIdentity()
}

func (e circlElement) encode() []byte {
	out, err := e.e.MarshalBinaryCompress()
	if err != nil || (e.b.padIdentity && e.e.IsIdentity()) {
		return make([]byte, e.b.size)
	}
	return out
}

func isAllZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
