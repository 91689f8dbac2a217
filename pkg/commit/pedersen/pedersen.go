package pedersen

import (
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
)

// PublicKey holds the second generator H = h*G. The discrete logarithm h is
// never retained.
type PublicKey struct {
	curve curve.Curve
	h     *curve.Point
}

// Commitment is C = value*G + r*H.
type Commitment struct {
	c *curve.Point
}

// OpeningInfo is the committed value together with its blinding scalar.
type OpeningInfo struct {
	value *curve.Scalar
	r     *curve.Scalar
}

// RandomPublicKey samples h from rng and returns H = h*G.
func RandomPublicKey(c curve.Curve, rng io.Reader) (*PublicKey, error) {
	const op = "pedersen.RandomPublicKey"
	h, err := curve.RandomScalar(c, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	H, err := curve.MulGenerator(h)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	pk, err := NewPublicKey(H)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return pk, nil
}

// NewPublicKey builds a key from an agreed generator H. H must be neither
// the identity nor the base generator.
func NewPublicKey(h *curve.Point) (*PublicKey, error) {
	const op = "pedersen.NewPublicKey"
	if h == nil {
		return nil, commit.Errorf(op, "nil generator: %w", commit.ErrInvalidParameter)
	}
	if h.IsIdentity() {
		return nil, commit.Errorf(op, "generator is the identity: %w", commit.ErrInvalidParameter)
	}
	g, err := curve.Generator(h.Curve())
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	if h.Equal(g) {
		return nil, commit.Errorf(op, "H equals G: %w", commit.ErrInvalidParameter)
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

// H returns the second generator.
func (pk *PublicKey) H() *curve.Point {
	if pk == nil {
		return nil
	}
	return pk.h
}

// Equal reports whether both keys use the same generator.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	if pk == nil || o == nil {
		return pk == o
	}
	return pk.h.Equal(o.h)
}

// Create commits to value with a fresh blinding scalar drawn from rng.
func Create(value *curve.Scalar, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	const op = "pedersen.Create"
	if pk == nil {
		return nil, nil, commit.Errorf(op, "nil public key: %w", commit.ErrInvalidParameter)
	}
	r, err := curve.RandomScalar(pk.curve, rng)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	return CreateWithRandomness(value, r, pk)
}

// CreateWithRandomness commits to value with a caller-chosen blinding
// scalar. Reusing r across commitments breaks hiding.
func CreateWithRandomness(value, r *curve.Scalar, pk *PublicKey) (*Commitment, *OpeningInfo, error) {
	const op = "pedersen.CreateWithRandomness"
	c, err := compute(value, r, pk)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	return &Commitment{c: c}, &OpeningInfo{value: value, r: r}, nil
}

func compute(value, r *curve.Scalar, pk *PublicKey) (*curve.Point, error) {
	if pk == nil || value == nil || r == nil {
		return nil, commit.ErrInvalidParameter
	}
	if value.Curve() != pk.curve || r.Curve() != pk.curve {
		return nil, commit.ErrCurveMismatch
	}
	g, err := curve.Generator(pk.curve)
	if err != nil {
		return nil, err
	}
	return curve.MultiScalarMult([]*curve.Scalar{value, r}, []*curve.Point{g, pk.h})
}

// IsValid recomputes value*G + r*H from the opening and compares it with c.
// Any malformed or mismatched input yields false.
func (c *Commitment) IsValid(pk *PublicKey, o *OpeningInfo) bool {
	if c == nil || o == nil {
		return false
	}
	recomputed, err := compute(o.value, o.r, pk)
	if err != nil {
		return false
	}
	return recomputed.Equal(c.c)
}

// Point returns the commitment group element.
func (c *Commitment) Point() *curve.Point {
	if c == nil {
		return nil
	}
	return c.c
}

// Equal reports whether two commitments are the same group element.
func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.c.Equal(o.c)
}

// String returns a short identifier for the commitment for logging.
func (c *Commitment) String() string {
	if c == nil {
		return "PedersenCommitment(nil)"
	}
	return "PedersenCommitment(" + c.c.String() + ")"
}

// NewOpeningInfo assembles an opening received from a committer.
func NewOpeningInfo(value, r *curve.Scalar) (*OpeningInfo, error) {
	if value == nil || r == nil {
		return nil, commit.Errorf("pedersen.NewOpeningInfo", "nil scalar: %w", commit.ErrInvalidParameter)
	}
	if value.Curve() != r.Curve() {
		return nil, commit.Errorf("pedersen.NewOpeningInfo", "%w", commit.ErrCurveMismatch)
	}
	return &OpeningInfo{value: value, r: r}, nil
}

// Value returns the committed scalar.
func (o *OpeningInfo) Value() *curve.Scalar {
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

// Add returns the commitment to the sum of the two committed values under
// the summed blinding factors.
func Add(a, b *Commitment) (*Commitment, error) {
	if a == nil || b == nil {
		return nil, commit.Errorf("pedersen.Add", "nil commitment: %w", commit.ErrInvalidParameter)
	}
	sum, err := a.c.Add(b.c)
	if err != nil {
		return nil, commit.WrapError("pedersen.Add", err)
	}
	return &Commitment{c: sum}, nil
}

// AddOpenings returns the opening matching Add(a, b).
func AddOpenings(a, b *OpeningInfo) (*OpeningInfo, error) {
	const op = "pedersen.AddOpenings"
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
