//go:build !commit_no_pedersen

package registry

import (
	"context"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
	"github.com/coinbase/cb-commit-go/pkg/commit/pedersen"
)

type pedersenRunner struct{}

func pedersenScheme() (Scheme, error) { return pedersenRunner{}, nil }

func (pedersenRunner) Name() string { return "pedersen" }

func (pedersenRunner) Run(ctx context.Context, cfg *commit.Config, rng io.Reader, logger logging.Logger) (*Report, error) {
	c, err := curve.ParseCurve(cfg.Curve)
	if err != nil {
		return nil, commit.WrapError("registry.pedersen", err)
	}
	return exercise[*pedersen.PublicKey, *pedersen.Commitment, *pedersen.OpeningInfo, *curve.Scalar](
		ctx,
		pedersen.NewScheme(c),
		map[string]string{"curve": c.String()},
		func(*pedersen.PublicKey) (*curve.Scalar, error) {
			return curve.RandomScalar(c, rng)
		},
		func(_ *pedersen.PublicKey, o *pedersen.OpeningInfo) (*pedersen.OpeningInfo, error) {
			one, err := curve.NewScalarInt64(c, 1)
			if err != nil {
				return nil, err
			}
			v, err := o.Value().Add(one)
			if err != nil {
				return nil, err
			}
			return pedersen.NewOpeningInfo(v, o.Randomness())
		},
		rng,
		logger,
	)
}
