package curve

import (
	"encoding/hex"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// Point is an element of a prime-order group. Points are immutable; every
// operation returns a new Point.
type Point struct {
	curve Curve
	e     element
}

// Generator returns the standard base point of c.
func Generator(c Curve) (*Point, error) {
	b, err := backendFor(c)
	if err != nil {
		return nil, commit.WrapError("curve.Generator", err)
	}
	return &Point{curve: c, e: b.generator()}, nil
}

// Identity returns the neutral element of c.
func Identity(c Curve) (*Point, error) {
	b, err := backendFor(c)
	if err != nil {
		return nil, commit.WrapError("curve.Identity", err)
	}
	return &Point{curve: c, e: b.identity()}, nil
}

// NewPointFromBytes decodes a canonical compressed point of PointSize bytes.
// Weierstrass curves encode the identity as all zero bytes.
func NewPointFromBytes(c Curve, data []byte) (*Point, error) {
	b, err := backendFor(c)
	if err != nil {
		return nil, commit.WrapError("curve.NewPointFromBytes", err)
	}
	e, err := b.decode(data)
	if err != nil {
		return nil, commit.Errorf("curve.NewPointFromBytes", "%s: %w", c, err)
	}
	return &Point{curve: c, e: e}, nil
}

// MulGenerator returns s*G.
func MulGenerator(s *Scalar) (*Point, error) {
	if s == nil {
		return nil, commit.Errorf("curve.MulGenerator", "nil scalar: %w", commit.ErrInvalidParameter)
	}
	g, err := Generator(s.curve)
	if err != nil {
		return nil, err
	}
	return &Point{curve: s.curve, e: g.e.mul(s.b)}, nil
}

// RandomPoint returns k*G for a fresh random scalar k.
func RandomPoint(c Curve, rng io.Reader) (*Point, error) {
	k, err := RandomScalar(c, rng)
	if err != nil {
		return nil, err
	}
	return MulGenerator(k)
}

// Curve returns the curve for this point.
func (p *Point) Curve() Curve {
	if p == nil {
		return Unknown
	}
	return p.curve
}

// Add returns p + o.
func (p *Point) Add(o *Point) (*Point, error) {
	if p == nil || o == nil {
		return nil, commit.Errorf("curve.Point.Add", "nil point: %w", commit.ErrInvalidParameter)
	}
	if p.curve != o.curve {
		return nil, commit.Errorf("curve.Point.Add", "%s and %s: %w", p.curve, o.curve, commit.ErrCurveMismatch)
	}
	return &Point{curve: p.curve, e: p.e.add(o.e)}, nil
}

// Mul returns s*p.
func (p *Point) Mul(s *Scalar) (*Point, error) {
	if p == nil || s == nil {
		return nil, commit.Errorf("curve.Point.Mul", "nil operand: %w", commit.ErrInvalidParameter)
	}
	if p.curve != s.curve {
		return nil, commit.Errorf("curve.Point.Mul", "%s and %s: %w", p.curve, s.curve, commit.ErrCurveMismatch)
	}
	return &Point{curve: p.curve, e: p.e.mul(s.b)}, nil
}

// MultiScalarMult returns sum(scalars[i]*points[i]). It uses the backend's
// constant-time multi-exponentiation when one exists.
func MultiScalarMult(scalars []*Scalar, points []*Point) (*Point, error) {
	const op = "curve.MultiScalarMult"
	if len(scalars) != len(points) || len(points) == 0 {
		return nil, commit.Errorf(op, "%d scalars for %d points: %w", len(scalars), len(points), commit.ErrLengthMismatch)
	}
	c := points[0].Curve()
	ks := make([][]byte, len(scalars))
	es := make([]element, len(points))
	for i := range points {
		if points[i] == nil || scalars[i] == nil {
			return nil, commit.Errorf(op, "nil operand at %d: %w", i, commit.ErrInvalidParameter)
		}
		if points[i].curve != c || scalars[i].curve != c {
			return nil, commit.Errorf(op, "operand %d: %w", i, commit.ErrCurveMismatch)
		}
		ks[i] = scalars[i].b
		es[i] = points[i].e
	}
	b, err := backendFor(c)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	if m, ok := b.(multiScalarMulter); ok {
		return &Point{curve: c, e: m.multiScalarMult(ks, es)}, nil
	}
	acc := b.identity()
	for i := range es {
		acc = acc.add(es[i].mul(ks[i]))
	}
	return &Point{curve: c, e: acc}, nil
}

// Equal reports whether p and o are the same group element.
func (p *Point) Equal(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.curve != o.curve {
		return false
	}
	return p.e.equal(o.e)
}

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool {
	return p != nil && p.e.isIdentity()
}

// Bytes returns the canonical compressed encoding of PointSize bytes.
func (p *Point) Bytes() []byte {
	if p == nil {
		return nil
	}
	return p.e.encode()
}

// String returns a short identifier for logging. Points are public values.
func (p *Point) String() string {
	if p == nil {
		return "Point(nil)"
	}
	b := p.Bytes()
	if len(b) > 4 {
		b = b[:4]
	}
	return "Point(" + p.curve.String() + ":" + hex.EncodeToString(b) + ")"
}
