package ajtai

import (
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// Scheme adapts the package functions to commit.Scheme for one parameter
// set.
type Scheme struct {
	params Params
}

var _ commit.Scheme[*PublicKey, *Matrix, *Commitment, *OpeningInfo] = Scheme{}

// NewScheme returns the Ajtai scheme with parameters p.
func NewScheme(p Params) Scheme {
	return Scheme{params: p}
}

func (Scheme) Name() string { return "ajtai" }

func (s Scheme) GenerateKey(rng io.Reader) (*PublicKey, error) {
	return RandomPublicKey(s.params, rng)
}

func (Scheme) Commit(value *Matrix, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	return Create(value, pk, rng)
}

func (Scheme) Verify(c *Commitment, pk *PublicKey, o *OpeningInfo) bool {
	return c.IsValid(pk, o)
}
