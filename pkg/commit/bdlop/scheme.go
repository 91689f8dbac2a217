package bdlop

import (
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// Scheme adapts the package functions to commit.Scheme.
type Scheme struct {
	params Params
}

var _ commit.Scheme[*PublicKey, *Matrix, *Commitment, *OpeningInfo] = Scheme{}

// NewScheme returns the BDLOP scheme with parameters p.
func NewScheme(p Params) Scheme {
	return Scheme{params: p}
}

func (Scheme) Name() string { return "bdlop" }

func (s Scheme) GenerateKey(rng io.Reader) (*PublicKey, error) {
	return RandomPublicKey(s.params, rng)
}

func (Scheme) Commit(msg *Matrix, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	return Create(msg, pk, rng)
}

func (Scheme) Verify(c *Commitment, pk *PublicKey, o *OpeningInfo) bool {
	return c.IsValid(pk, o)
}
