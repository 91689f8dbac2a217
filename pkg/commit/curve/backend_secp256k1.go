package curve

import (
	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// secpBackend implements secp256k1 with btcec. Elements are kept in affine
// form so they can be fed straight into ScalarMultNonConst.
type secpBackend struct{}

type secpElement struct {
	p   btcec.JacobianPoint
	inf bool
}

func (secpBackend) generator() element {
	var g btcec.JacobianPoint
	btcec.GeneratorJacobian(&g)
	return normalizeSecp(g)
}

func (secpBackend) identity() element {
	return secpElement{inf: true}
}

func (b secpBackend) decode(data []byte) (element, error) {
	if len(data) != 33 {
		return nil, commit.ErrInvalidEncoding
	}
	if isAllZero(data) {
		return b.identity(), nil
	}
	if data[0] != 0x02 && data[0] != 0x03 {
		return nil, commit.ErrInvalidEncoding
	}
	p, err := btcec.ParseJacobian(data)
	if err != nil {
		return nil, commit.ErrInvalidEncoding
	}
	return normalizeSecp(p), nil
}

func normalizeSecp(p btcec.JacobianPoint) secpElement {
	p.X.Normalize()
	p.Y.Normalize()
	p.Z.Normalize()
	if p.Z.IsZero() || (p.X.IsZero() && p.Y.IsZero()) {
		return secpElement{inf: true}
	}
	p.ToAffine()
	return secpElement{p: p}
}

func (e secpElement) add(o element) element {
	other := o.(secpElement)
	switch {
	case e.inf:
		return other
	case other.inf:
		return e
	}
	var r btcec.JacobianPoint
	btcec.AddNonConst(&e.p, &other.p, &r)
	return normalizeSecp(r)
}

func (e secpElement) mul(k []byte) element {
	if e.inf {
		return e
	}
	var s btcec.ModNScalar
	s.SetByteSlice(k)
	if s.IsZero() {
		return secpElement{inf: true}
	}
	var r btcec.JacobianPoint
	btcec.ScalarMultNonConst(&s, &e.p, &r)
	return normalizeSecp(r)
}

func (e secpElement) equal(o element) bool {
	other := o.(secpElement)
	if e.inf || other.inf {
		return e.inf == other.inf
	}
	return e.p.X.Equals(&other.p.X) && e.p.Y.Equals(&other.p.Y)
}

func (e secpElement) isIdentity() bool {
	return e.inf
}

func (e secpElement) encode() []byte {
	if e.inf {
		return make([]byte, 33)
	}
	return btcec.JacobianToByteSlice(e.p)
}
