package curve

import (
	"math/big"

	"filippo.io/edwards25519"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// edBackend implements the prime-order subgroup of edwards25519. Decoding
// rejects points with a torsion component.
type edBackend struct{}

type edElement struct {
	p *edwards25519.Point
}

// orderMinusOne is L-1 in little-endian canonical form.
var orderMinusOne = func() *edwards25519.Scalar {
	b := leBytes(new(big.Int).Sub(order25519, big.NewInt(1)).FillBytes(make([]byte, 32)))
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		panic(err)
	}
	return s
}()

func (edBackend) generator() element {
	return edElement{p: edwards25519.NewGeneratorPoint()}
}

func (edBackend) identity() element {
	return edElement{p: edwards25519.NewIdentityPoint()}
}

func (edBackend) decode(data []byte) (element, error) {
	if len(data) != 32 {
		return nil, commit.ErrInvalidEncoding
	}
	p, err := new(edwards25519.Point).SetBytes(data)
	if err != nil {
		return nil, commit.ErrInvalidEncoding
	}
	// (L-1)*P + P is the identity iff P lies in the prime-order subgroup.
	t := new(edwards25519.Point).ScalarMult(orderMinusOne, p)
	t.Add(t, p)
	if t.Equal(edwards25519.NewIdentityPoint()) != 1 {
		return nil, commit.ErrInvalidEncoding
	}
	return edElement{p: p}, nil
}

func edScalar(k []byte) *edwards25519.Scalar {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(leBytes(k))
	if err != nil {
		// k is always reduced below L by the Scalar constructors.
		panic("curve: non-canonical ed25519 scalar")
	}
	return s
}

func (e edElement) add(o element) element {
	return edElement{p: new(edwards25519.Point).Add(e.p, o.(edElement).p)}
}

func (e edElement) mul(k []byte) element {
	return edElement{p: new(edwards25519.Point).ScalarMult(edScalar(k), e.p)}
}

func (e edElement) equal(o element) bool {
	return e.p.Equal(o.(edElement).p) == 1
}

func (e edElement) isIdentity() bool {
	return e.p.Equal(edwards25519.NewIdentityPoint()) == 1
}

func (e edElement) encode() []byte {
	return e.p.Bytes()
}

func (edBackend) multiScalarMult(ks [][]byte, ps []element) element {
	scalars := make([]*edwards25519.Scalar, len(ks))
	points := make([]*edwards25519.Point, len(ps))
	for i := range ks {
		scalars[i] = edScalar(ks[i])
		points[i] = ps[i].(edElement).p
	}
	return edElement{p: edwards25519.NewIdentityPoint().MultiScalarMult(scalars, points)}
}

// leBytes returns a reversed copy of b.
func leBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}
