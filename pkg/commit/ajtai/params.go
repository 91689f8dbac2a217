package ajtai

import (
	"fmt"
	"strings"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

// Norm selects how the shortness of an opening is measured.
type Norm int

const (
	// NormBasis measures vectors against an LLL reduced reference basis
	// sampled with the public key. It is the default.
	NormBasis Norm = iota
	// NormEuclidean measures the plain squared Euclidean norm of the
	// centered coordinates.
	NormEuclidean
)

func (n Norm) String() string {
	switch n {
	case NormBasis:
		return "basis"
	case NormEuclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("Norm(%d)", int(n))
	}
}

// ParseNorm resolves a norm name as used in configuration files.
func ParseNorm(name string) (Norm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "basis":
		return NormBasis, nil
	case "euclidean":
		return NormEuclidean, nil
	default:
		return 0, commit.Errorf("ajtai.ParseNorm", "unknown norm %q: %w", name, commit.ErrInvalidParameter)
	}
}

// Params fixes the dimensions and bounds of an Ajtai instance. A1 and A2
// are N x M matrices over Z_Q. An opening is accepted only when both the
// value and the randomness have norm strictly below Short.
type Params struct {
	N     int
	M     int
	Q     uint64
	Short float64
	// Sigma is the standard deviation of the randomness sampler.
	Sigma float64
	Norm  Norm
	// BasisBound bounds the entries of the random reference basis before
	// reduction. Only used with NormBasis.
	BasisBound int64
}

// DefaultParams returns the parameters used by DefaultConfig.
func DefaultParams() Params {
	return Params{
		N:          16,
		M:          64,
		Q:          655_360_001,
		Short:      4096,
		Sigma:      1.5,
		Norm:       NormBasis,
		BasisBound: 1,
	}
}

// ParamsFromConfig converts the configuration section into Params and
// validates it.
func ParamsFromConfig(c commit.LatticeConfig) (Params, error) {
	norm, err := ParseNorm(c.Norm)
	if err != nil {
		return Params{}, err
	}
	p := Params{
		N:          c.N,
		M:          c.M,
		Q:          c.Q,
		Short:      c.Short,
		Sigma:      c.Sigma,
		Norm:       norm,
		BasisBound: c.BasisBound,
	}
	if p.BasisBound == 0 {
		p.BasisBound = 1
	}
	return p, p.Validate()
}

// Validate checks that the parameters describe a usable instance.
func (p Params) Validate() error {
	const op = "ajtai.Params.Validate"
	if p.N <= 0 || p.M <= 0 {
		return commit.Errorf(op, "dimensions %dx%d: %w", p.N, p.M, commit.ErrInvalidParameter)
	}
	if !lattice.ValidModulus(p.Q) {
		return commit.Errorf(op, "modulus %d must be in [2, 2^32): %w", p.Q, commit.ErrInvalidParameter)
	}
	if !(p.Short > 0) || !(p.Sigma > 0) {
		return commit.Errorf(op, "short=%v sigma=%v: %w", p.Short, p.Sigma, commit.ErrInvalidParameter)
	}
	switch p.Norm {
	case NormEuclidean:
	case NormBasis:
		if p.BasisBound <= 0 {
			return commit.Errorf(op, "basis bound %d: %w", p.BasisBound, commit.ErrInvalidParameter)
		}
		if p.M > lattice.MaxBasisDim {
			return commit.Errorf(op, "basis norm needs m <= %d, got %d: %w", lattice.MaxBasisDim, p.M, commit.ErrInvalidParameter)
		}
	default:
		return commit.Errorf(op, "norm %s: %w", p.Norm, commit.ErrInvalidParameter)
	}
	return nil
}
