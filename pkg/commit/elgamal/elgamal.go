package elgamal

import (
	"encoding/hex"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
)

// PublicKey holds H = h*G for a discarded h.
type PublicKey struct {
	curve curve.Curve
	h     *curve.Point
}

// Commitment is the pair (L, R) = (r*G, M + r*H).
type Commitment struct {
	l *curve.Point
	r *curve.Point
}

// OpeningInfo is the committed group element and the blinding scalar.
type OpeningInfo struct {
	value *curve.Point
	r     *curve.Scalar
}

// RandomPublicKey samples h from rng and returns H = h*G.
func RandomPublicKey(c curve.Curve, rng io.Reader) (*PublicKey, error) {
	const op = "elgamal.RandomPublicKey"
	h, err := curve.RandomScalar(c, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	H, err := curve.MulGenerator(h)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return NewPublicKey(H)
}

// NewPublicKey builds a key from an agreed point H. H must not be the
// identity.
func NewPublicKey(h *curve.Point) (*PublicKey, error) {
	if h == nil || h.IsIdentity() {
		return nil, commit.Errorf("elgamal.NewPublicKey", "degenerate H: %w", commit.ErrInvalidParameter)
	}
	return &PublicKey{curve: h.Curve(), h: h}, nil
}

// Curve returns the group of the key.
func (pk *PublicKey) Curve() curve.Curve {
	if pk == nil {
		return curve.Unknown
	}
	return pk.curve
}

// H returns the key point.
func (pk *PublicKey) H() *curve.Point {
	if pk == nil {
		return nil
	}
	return pk.h
}

// Equal reports whether both keys hold the same point.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	if pk == nil || o == nil {
		return pk == o
	}
	return pk.h.Equal(o.h)
}

// Create commits to the group element value with fresh randomness from rng.
func Create(value *curve.Point, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	const op = "elgamal.Create"
	if pk == nil {
		return nil, nil, commit.Errorf(op, "nil public key: %w", commit.ErrInvalidParameter)
	}
	r, err := curve.RandomScalar(pk.curve, rng)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	return CreateWithRandomness(value, r, pk)
}

// CreateWithRandomness commits to value with a caller-chosen scalar r.
func CreateWithRandomness(value *curve.Point, r *curve.Scalar, pk *PublicKey) (*Commitment, *OpeningInfo, error) {
	const op = "elgamal.CreateWithRandomness"
	if pk == nil || value == nil || r == nil {
		return nil, nil, commit.Errorf(op, "nil input: %w", commit.ErrInvalidParameter)
	}
	if value.Curve() != pk.curve || r.Curve() != pk.curve {
		return nil, nil, commit.Errorf(op, "%w", commit.ErrCurveMismatch)
	}
	l, err := curve.MulGenerator(r)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	right, err := rightPoint(value, r, pk)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	return &Commitment{l: l, r: right}, &OpeningInfo{value: value, r: r}, nil
}

// rightPoint computes M + r*H.
func rightPoint(value *curve.Point, r *curve.Scalar, pk *PublicKey) (*curve.Point, error) {
	rH, err := pk.h.Mul(r)
	if err != nil {
		return nil, err
	}
	return value.Add(rH)
}

// IsValid recomputes both coordinates from the opening. L is checked before
// R so a wrong r is rejected without touching the message.
func (c *Commitment) IsValid(pk *PublicKey, o *OpeningInfo) bool {
	if c == nil || o == nil || pk == nil || o.value == nil || o.r == nil {
		return false
	}
	if o.r.Curve() != pk.curve || o.value.Curve() != pk.curve {
		return false
	}
	l, err := curve.MulGenerator(o.r)
	if err != nil || !l.Equal(c.l) {
		return false
	}
	right, err := rightPoint(o.value, o.r, pk)
	if err != nil {
		return false
	}
	return right.Equal(c.r)
}

// PointL returns r*G.
func (c *Commitment) PointL() *curve.Point {
	if c == nil {
		return nil
	}
	return c.l
}

// PointR returns M + r*H.
func (c *Commitment) PointR() *curve.Point {
	if c == nil {
		return nil
	}
	return c.r
}

// Equal reports whether both coordinates match.
func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.l.Equal(o.l) && c.r.Equal(o.r)
}

// String returns "ElGamalCom(<first 8 hex chars of L>)". Commitments are
// public so this is safe for logging.
func (c *Commitment) String() string {
	if c == nil {
		return "ElGamalCom(nil)"
	}
	b := c.l.Bytes()
	if len(b) > 4 {
		b = b[:4]
	}
	return "ElGamalCom(" + hex.EncodeToString(b) + ")"
}

// NewOpeningInfo assembles an opening received from a committer.
func NewOpeningInfo(value *curve.Point, r *curve.Scalar) (*OpeningInfo, error) {
	if value == nil || r == nil {
		return nil, commit.Errorf("elgamal.NewOpeningInfo", "nil input: %w", commit.ErrInvalidParameter)
	}
	if value.Curve() != r.Curve() {
		return nil, commit.Errorf("elgamal.NewOpeningInfo", "%w", commit.ErrCurveMismatch)
	}
	return &OpeningInfo{value: value, r: r}, nil
}

// Value returns the committed group element.
func (o *OpeningInfo) Value() *curve.Point {
	if o == nil {
		return nil
	}
	return o.value
}

// Randomness returns the blinding scalar.
func (o *OpeningInfo) Randomness() *curve.Scalar {
	if o == nil {
		return nil
	}
	return o.r
}

// Add combines two commitments coordinate-wise. The result commits to
// M1 + M2 under r1 + r2.
func Add(a, b *Commitment) (*Commitment, error) {
	const op = "elgamal.Add"
	if a == nil || b == nil {
		return nil, commit.Errorf(op, "nil commitment: %w", commit.ErrInvalidParameter)
	}
	l, err := a.l.Add(b.l)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	r, err := a.r.Add(b.r)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &Commitment{l: l, r: r}, nil
}

// AddOpenings returns the opening matching Add(a, b).
func AddOpenings(a, b *OpeningInfo) (*OpeningInfo, error) {
	const op = "elgamal.AddOpenings"
	if a == nil || b == nil {
		return nil, commit.Errorf(op, "nil opening: %w", commit.ErrInvalidParameter)
	}
	v, err := a.value.Add(b.value)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	r, err := a.r.Add(b.r)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &OpeningInfo{value: v, r: r}, nil
}
