//go:build !commit_no_ajtai

package registry

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/ajtai"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
)

type ajtaiRunner struct{}

func ajtaiScheme() (Scheme, error) { return ajtaiRunner{}, nil }

func (ajtaiRunner) Name() string { return "ajtai" }

// Run commits to a ternary vector and tampers by adding a kernel vector of
// A1, which collides algebraically but is not short.
func (ajtaiRunner) Run(ctx context.Context, cfg *commit.Config, rng io.Reader, logger logging.Logger) (*Report, error) {
	p, err := ajtai.ParamsFromConfig(cfg.Lattice)
	if err != nil {
		return nil, commit.WrapError("registry.ajtai", err)
	}
	return exercise[*ajtai.PublicKey, *ajtai.Commitment, *ajtai.OpeningInfo, *ajtai.Matrix](
		ctx,
		ajtai.NewScheme(p),
		map[string]string{
			"n":     strconv.Itoa(p.N),
			"m":     strconv.Itoa(p.M),
			"q":     strconv.FormatUint(p.Q, 10),
			"short": strconv.FormatFloat(p.Short, 'g', -1, 64),
			"norm":  p.Norm.String(),
		},
		func(*ajtai.PublicKey) (*ajtai.Matrix, error) {
			return lattice.SampleBounded(p.M, 1, p.Q, 2, rng)
		},
		func(pk *ajtai.PublicKey, o *ajtai.OpeningInfo) (*ajtai.OpeningInfo, error) {
			k := lattice.KernelVector(pk.A1())
			if k == nil {
				return nil, errors.New("A1 has full column rank")
			}
			return ajtai.NewOpeningInfo(lattice.Add(o.Value(), k), o.Randomness()), nil
		},
		rng,
		logger,
	)
}
