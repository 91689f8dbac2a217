//go:build !commit_no_bdlop

package registry

import (
	"context"
	"io"
	"strconv"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/bdlop"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
)

type bdlopRunner struct{}

func bdlopScheme() (Scheme, error) { return bdlopRunner{}, nil }

func (bdlopRunner) Name() string { return "bdlop" }

// Run commits to a uniform message and tampers by pushing one randomness
// coordinate onto the bound.
func (bdlopRunner) Run(ctx context.Context, cfg *commit.Config, rng io.Reader, logger logging.Logger) (*Report, error) {
	p, err := bdlop.ParamsFromConfig(cfg.BDLOP)
	if err != nil {
		return nil, commit.WrapError("registry.bdlop", err)
	}
	return exercise[*bdlop.PublicKey, *bdlop.Commitment, *bdlop.OpeningInfo, *bdlop.Matrix](
		ctx,
		bdlop.NewScheme(p),
		map[string]string{
			"n":    strconv.Itoa(p.N),
			"k":    strconv.Itoa(p.K),
			"l":    strconv.Itoa(p.L),
			"q":    strconv.FormatUint(p.Q, 10),
			"beta": strconv.FormatUint(p.Beta, 10),
		},
		func(*bdlop.PublicKey) (*bdlop.Matrix, error) {
			return lattice.SampleUniform(p.L, 1, p.Q, rng)
		},
		func(_ *bdlop.PublicKey, o *bdlop.OpeningInfo) (*bdlop.OpeningInfo, error) {
			r := o.Randomness()
			r.Set(0, 0, p.Beta)
			return bdlop.NewOpeningInfo(o.Message(), r), nil
		},
		rng,
		logger,
	)
}
