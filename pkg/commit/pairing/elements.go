package pairing

import (
	"crypto/subtle"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// G1 is an element of the first source group. Values are immutable.
type G1 struct {
	curve Curve
	bn    bn254.G1Affine
	bls   bls12381.G1Affine
}

// G2 is an element of the second source group. Values are immutable.
type G2 struct {
	curve Curve
	bn    bn254.G2Affine
	bls   bls12381.G2Affine
}

// GT is an element of the target group. Values are immutable.
type GT struct {
	curve Curve
	bn    bn254.GT
	bls   bls12381.GT
}

// MulG1Generator returns k times the G1 generator.
func MulG1Generator(c Curve, k *big.Int) (*G1, error) {
	const op = "pairing.MulG1Generator"
	if err := c.check(op); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, commit.Errorf(op, "nil scalar: %w", commit.ErrInvalidParameter)
	}
	out := &G1{curve: c}
	switch c {
	case BN254:
		_, _, g1, _ := bn254.Generators()
		out.bn.ScalarMultiplication(&g1, k)
	case BLS12381:
		_, _, g1, _ := bls12381.Generators()
		out.bls.ScalarMultiplication(&g1, k)
	}
	return out, nil
}

// MulG2Generator returns k times the G2 generator.
func MulG2Generator(c Curve, k *big.Int) (*G2, error) {
	const op = "pairing.MulG2Generator"
	if err := c.check(op); err != nil {
		return nil, err
	}
	if k == nil {
		return nil, commit.Errorf(op, "nil scalar: %w", commit.ErrInvalidParameter)
	}
	out := &G2{curve: c}
	switch c {
	case BN254:
		_, _, _, g2 := bn254.Generators()
		out.bn.ScalarMultiplication(&g2, k)
	case BLS12381:
		_, _, _, g2 := bls12381.Generators()
		out.bls.ScalarMultiplication(&g2, k)
	}
	return out, nil
}

// RandomG1 returns k*g1 for a fresh field element k.
func RandomG1(c Curve, rng io.Reader) (*G1, error) {
	k, err := RandomScalar(c, rng)
	if err != nil {
		return nil, err
	}
	defer k.SetInt64(0)
	return MulG1Generator(c, k)
}

// RandomG2 returns k*g2 for a fresh field element k.
func RandomG2(c Curve, rng io.Reader) (*G2, error) {
	k, err := RandomScalar(c, rng)
	if err != nil {
		return nil, err
	}
	defer k.SetInt64(0)
	return MulG2Generator(c, k)
}

// NewG1FromBytes decodes a compressed G1 element and checks subgroup
// membership.
func NewG1FromBytes(c Curve, data []byte) (*G1, error) {
	const op = "pairing.NewG1FromBytes"
	if err := c.check(op); err != nil {
		return nil, err
	}
	if len(data) != c.G1Size() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", c.G1Size(), len(data), commit.ErrInvalidEncoding)
	}
	out := &G1{curve: c}
	var err error
	switch c {
	case BN254:
		_, err = out.bn.SetBytes(data)
	case BLS12381:
		_, err = out.bls.SetBytes(data)
	}
	if err != nil {
		return nil, commit.Errorf(op, "%v: %w", err, commit.ErrInvalidEncoding)
	}
	return out, nil
}

// NewG2FromBytes decodes a compressed G2 element and checks subgroup
// membership.
func NewG2FromBytes(c Curve, data []byte) (*G2, error) {
	const op = "pairing.NewG2FromBytes"
	if err := c.check(op); err != nil {
		return nil, err
	}
	if len(data) != c.G2Size() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", c.G2Size(), len(data), commit.ErrInvalidEncoding)
	}
	out := &G2{curve: c}
	var err error
	switch c {
	case BN254:
		_, err = out.bn.SetBytes(data)
	case BLS12381:
		_, err = out.bls.SetBytes(data)
	}
	if err != nil {
		return nil, commit.Errorf(op, "%v: %w", err, commit.ErrInvalidEncoding)
	}
	return out, nil
}

// NewGTFromBytes decodes a target group element.
func NewGTFromBytes(c Curve, data []byte) (*GT, error) {
	const op = "pairing.NewGTFromBytes"
	if err := c.check(op); err != nil {
		return nil, err
	}
	if len(data) != c.GTSize() {
		return nil, commit.Errorf(op, "want %d bytes, got %d: %w", c.GTSize(), len(data), commit.ErrInvalidEncoding)
	}
	out := &GT{curve: c}
	var err error
	switch c {
	case BN254:
		err = out.bn.SetBytes(data)
	case BLS12381:
		err = out.bls.SetBytes(data)
	}
	if err != nil {
		return nil, commit.Errorf(op, "%v: %w", err, commit.ErrInvalidEncoding)
	}
	return out, nil
}

// Curve returns the curve of g.
func (g *G1) Curve() Curve {
	if g == nil {
		return Unknown
	}
	return g.curve
}

// Equal reports whether g and o are the same element.
func (g *G1) Equal(o *G1) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.curve != o.curve {
		return false
	}
	switch g.curve {
	case BN254:
		return g.bn.Equal(&o.bn)
	case BLS12381:
		return g.bls.Equal(&o.bls)
	default:
		return false
	}
}

// Bytes returns the compressed encoding.
func (g *G1) Bytes() []byte {
	if g == nil {
		return nil
	}
	switch g.curve {
	case BN254:
		b := g.bn.Bytes()
		return b[:]
	case BLS12381:
		b := g.bls.Bytes()
		return b[:]
	default:
		return nil
	}
}

func (g *G1) String() string {
	if g == nil {
		return "G1(nil)"
	}
	return "G1(" + g.curve.String() + ":" + shortHex(g.Bytes()) + ")"
}

// Curve returns the curve of g.
func (g *G2) Curve() Curve {
	if g == nil {
		return Unknown
	}
	return g.curve
}

// Add returns g + o.
func (g *G2) Add(o *G2) (*G2, error) {
	if g == nil || o == nil {
		return nil, commit.Errorf("pairing.G2.Add", "nil element: %w", commit.ErrInvalidParameter)
	}
	if g.curve != o.curve {
		return nil, commit.Errorf("pairing.G2.Add", "%s and %s: %w", g.curve, o.curve, commit.ErrCurveMismatch)
	}
	out := &G2{curve: g.curve}
	switch g.curve {
	case BN254:
		out.bn.Add(&g.bn, &o.bn)
	case BLS12381:
		out.bls.Add(&g.bls, &o.bls)
	}
	return out, nil
}

// Equal reports whether g and o are the same element.
func (g *G2) Equal(o *G2) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.curve != o.curve {
		return false
	}
	switch g.curve {
	case BN254:
		return g.bn.Equal(&o.bn)
	case BLS12381:
		return g.bls.Equal(&o.bls)
	default:
		return false
	}
}

// Bytes returns the compressed encoding.
func (g *G2) Bytes() []byte {
	if g == nil {
		return nil
	}
	switch g.curve {
	case BN254:
		b := g.bn.Bytes()
		return b[:]
	case BLS12381:
		b := g.bls.Bytes()
		return b[:]
	default:
		return nil
	}
}

func (g *G2) String() string {
	if g == nil {
		return "G2(nil)"
	}
	return "G2(" + g.curve.String() + ":" + shortHex(g.Bytes()) + ")"
}

// Curve returns the curve of g.
func (g *GT) Curve() Curve {
	if g == nil {
		return Unknown
	}
	return g.curve
}

// Mul returns the target group product g*o.
func (g *GT) Mul(o *GT) (*GT, error) {
	if g == nil || o == nil {
		return nil, commit.Errorf("pairing.GT.Mul", "nil element: %w", commit.ErrInvalidParameter)
	}
	if g.curve != o.curve {
		return nil, commit.Errorf("pairing.GT.Mul", "%s and %s: %w", g.curve, o.curve, commit.ErrCurveMismatch)
	}
	out := &GT{curve: g.curve}
	switch g.curve {
	case BN254:
		out.bn.Mul(&g.bn, &o.bn)
	case BLS12381:
		out.bls.Mul(&g.bls, &o.bls)
	}
	return out, nil
}

// IsOne reports whether g is the neutral element of GT.
func (g *GT) IsOne() bool {
	if g == nil {
		return false
	}
	switch g.curve {
	case BN254:
		return g.bn.IsOne()
	case BLS12381:
		return g.bls.IsOne()
	default:
		return false
	}
}

// Equal compares the canonical encodings in constant time.
func (g *GT) Equal(o *GT) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.curve != o.curve {
		return false
	}
	return subtle.ConstantTimeCompare(g.Bytes(), o.Bytes()) == 1
}

// Bytes returns the canonical encoding of GTSize bytes.
func (g *GT) Bytes() []byte {
	if g == nil {
		return nil
	}
	switch g.curve {
	case BN254:
		b := g.bn.Bytes()
		return b[:]
	case BLS12381:
		b := g.bls.Bytes()
		return b[:]
	default:
		return nil
	}
}

func (g *GT) String() string {
	if g == nil {
		return "GT(nil)"
	}
	return "GT(" + g.curve.String() + ":" + shortHex(g.Bytes()) + ")"
}
