package groth

import (
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/pairing"
)

// Scheme adapts the package functions to commit.Scheme for one pairing curve
// and vector length.
type Scheme struct {
	curve pairing.Curve
	n     int
}

var _ commit.Scheme[*PublicKey, *Message, *Commitment, *OpeningInfo] = Scheme{}

// NewScheme returns the Groth scheme over c with vectors of length n.
func NewScheme(c pairing.Curve, n int) Scheme {
	return Scheme{curve: c, n: n}
}

func (Scheme) Name() string { return "groth" }

func (s Scheme) GenerateKey(rng io.Reader) (*PublicKey, error) {
	return RandomPublicKey(s.curve, s.n, rng)
}

func (Scheme) Commit(msg *Message, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	return Create(msg, pk, rng)
}

func (Scheme) Verify(c *Commitment, pk *PublicKey, o *OpeningInfo) bool {
	return c.IsValid(pk, o)
}
