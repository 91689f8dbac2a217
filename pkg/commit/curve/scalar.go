package curve

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// Scalar is an integer modulo the order of a curve's group. It is stored as
// canonical big-endian bytes of Curve.ScalarSize length.
//
// Scalars are immutable. Bytes returns a defensive copy.
type Scalar struct {
	curve Curve
	b     []byte
}

// wideMargin is the number of extra random bytes read beyond the scalar size
// so that reduction modulo the order has bias below 2^-128.
const wideMargin = 16

// NewScalar reduces v modulo the group order. Negative values wrap around.
func NewScalar(c Curve, v *big.Int) (*Scalar, error) {
	n := orderOf(c)
	if n == nil {
		return nil, commit.Errorf("curve.NewScalar", "curve %s: %w", c, commit.ErrInvalidParameter)
	}
	if v == nil {
		return nil, commit.Errorf("curve.NewScalar", "nil value: %w", commit.ErrInvalidParameter)
	}
	k := new(big.Int).Mod(v, n)
	return &Scalar{curve: c, b: k.FillBytes(make([]byte, c.ScalarSize()))}, nil
}

// NewScalarInt64 is NewScalar for a machine integer.
func NewScalarInt64(c Curve, v int64) (*Scalar, error) {
	return NewScalar(c, big.NewInt(v))
}

// NewScalarFromBytes decodes a canonical big-endian scalar. The input must be
// exactly ScalarSize bytes and strictly below the group order.
func NewScalarFromBytes(c Curve, b []byte) (*Scalar, error) {
	n := orderOf(c)
	if n == nil {
		return nil, commit.Errorf("curve.NewScalarFromBytes", "curve %s: %w", c, commit.ErrInvalidParameter)
	}
	if len(b) != c.ScalarSize() {
		return nil, commit.Errorf("curve.NewScalarFromBytes", "want %d bytes, got %d: %w", c.ScalarSize(), len(b), commit.ErrInvalidEncoding)
	}
	if new(big.Int).SetBytes(b).Cmp(n) >= 0 {
		return nil, commit.Errorf("curve.NewScalarFromBytes", "scalar not reduced: %w", commit.ErrInvalidEncoding)
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Scalar{curve: c, b: cp}, nil
}

// RandomScalar draws a uniformly distributed scalar from rng. A short read is
// reported as an error matching commit.ErrRandomness.
func RandomScalar(c Curve, rng io.Reader) (*Scalar, error) {
	n := orderOf(c)
	if n == nil {
		return nil, commit.Errorf("curve.RandomScalar", "curve %s: %w", c, commit.ErrInvalidParameter)
	}
	if rng == nil {
		return nil, commit.Errorf("curve.RandomScalar", "nil randomness source: %w", commit.ErrInvalidParameter)
	}
	wide := make([]byte, c.ScalarSize()+wideMargin)
	defer commit.ZeroizeBytes(wide)
	if _, err := io.ReadFull(rng, wide); err != nil {
		return nil, commit.RandomnessError("curve.RandomScalar", err)
	}
	k := new(big.Int).SetBytes(wide)
	k.Mod(k, n)
	s := &Scalar{curve: c, b: k.FillBytes(make([]byte, c.ScalarSize()))}
	k.SetInt64(0)
	return s, nil
}

// Curve returns the curve this scalar belongs to.
func (s *Scalar) Curve() Curve {
	if s == nil {
		return Unknown
	}
	return s.curve
}

// Bytes returns the canonical big-endian encoding.
func (s *Scalar) Bytes() []byte {
	if s == nil {
		return nil
	}
	out := make([]byte, len(s.b))
	copy(out, s.b)
	return out
}

// BigInt returns the scalar as a non-negative integer below the order.
func (s *Scalar) BigInt() *big.Int {
	if s == nil {
		return nil
	}
	return new(big.Int).SetBytes(s.b)
}

// Equal reports whether s and o are the same scalar of the same curve in
// constant time with respect to the scalar value.
func (s *Scalar) Equal(o *Scalar) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.curve != o.curve {
		return false
	}
	return subtle.ConstantTimeCompare(s.b, o.b) == 1
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s != nil && isAllZero(s.b)
}

// Add returns s + o modulo the group order.
func (s *Scalar) Add(o *Scalar) (*Scalar, error) {
	if s == nil || o == nil {
		return nil, commit.Errorf("curve.Scalar.Add", "nil scalar: %w", commit.ErrInvalidParameter)
	}
	if s.curve != o.curve {
		return nil, commit.Errorf("curve.Scalar.Add", "%s and %s: %w", s.curve, o.curve, commit.ErrCurveMismatch)
	}
	return NewScalar(s.curve, new(big.Int).Add(s.BigInt(), o.BigInt()))
}

// Mul returns s * o modulo the group order.
func (s *Scalar) Mul(o *Scalar) (*Scalar, error) {
	if s == nil || o == nil {
		return nil, commit.Errorf("curve.Scalar.Mul", "nil scalar: %w", commit.ErrInvalidParameter)
	}
	if s.curve != o.curve {
		return nil, commit.Errorf("curve.Scalar.Mul", "%s and %s: %w", s.curve, o.curve, commit.ErrCurveMismatch)
	}
	return NewScalar(s.curve, new(big.Int).Mul(s.BigInt(), o.BigInt()))
}

// String never reveals the value; scalars are typically secret.
func (s *Scalar) String() string {
	if s == nil {
		return "Scalar(nil)"
	}
	return fmt.Sprintf("Scalar(%s)", s.curve)
}

// Fingerprint returns the first four bytes of the encoding as hex. Use only
// for public scalars.
func (s *Scalar) Fingerprint() string {
	if s == nil || len(s.b) < 4 {
		return ""
	}
	return hex.EncodeToString(s.b[:4])
}
