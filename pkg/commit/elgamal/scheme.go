package elgamal

import (
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
)

// Scheme adapts the package functions to commit.Scheme for one curve.
type Scheme struct {
	curve curve.Curve
}

var _ commit.Scheme[*PublicKey, *curve.Point, *Commitment, *OpeningInfo] = Scheme{}

// NewScheme returns the ElGamal commitment scheme over c.
func NewScheme(c curve.Curve) Scheme {
	return Scheme{curve: c}
}

func (Scheme) Name() string { return "elgamal" }

func (s Scheme) GenerateKey(rng io.Reader) (*PublicKey, error) {
	return RandomPublicKey(s.curve, rng)
}

func (Scheme) Commit(value *curve.Point, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	return Create(value, pk, rng)
}

func (Scheme) Verify(c *Commitment, pk *PublicKey, o *OpeningInfo) bool {
	return c.IsValid(pk, o)
}
