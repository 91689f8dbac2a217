package bdlop

import (
	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

// Params fixes a BDLOP instance: N commitment rows binding the randomness,
// L message slots, randomness length K > N+L, modulus Q and the
// l-infinity bound Beta on the randomness.
type Params struct {
	N    int
	K    int
	L    int
	Q    uint64
	Beta uint64
}

// DefaultParams returns the parameters used by DefaultConfig.
func DefaultParams() Params {
	return Params{N: 16, K: 64, L: 16, Q: 655_360_001, Beta: 100}
}

// ParamsFromConfig converts the configuration section into Params and
// validates it.
func ParamsFromConfig(c commit.BDLOPConfig) (Params, error) {
	p := Params{N: c.N, K: c.K, L: c.L, Q: c.Q, Beta: c.Beta}
	return p, p.Validate()
}

// Validate checks that the parameters describe a usable instance.
func (p Params) Validate() error {
	const op = "bdlop.Params.Validate"
	if p.N <= 0 || p.L <= 0 || p.K <= p.N+p.L {
		return commit.Errorf(op, "need k > n + l with n, l positive, got n=%d k=%d l=%d: %w", p.N, p.K, p.L, commit.ErrInvalidParameter)
	}
	if !lattice.ValidModulus(p.Q) {
		return commit.Errorf(op, "modulus %d must be in [2, 2^32): %w", p.Q, commit.ErrInvalidParameter)
	}
	if p.Beta == 0 || p.Beta >= lattice.MaxModulus || 2*p.Beta-1 > p.Q {
		return commit.Errorf(op, "beta %d does not fit modulus %d: %w", p.Beta, p.Q, commit.ErrInvalidParameter)
	}
	return nil
}
