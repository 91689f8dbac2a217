//go:build !commit_no_elgamal

package registry

import (
	"context"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
	"github.com/coinbase/cb-commit-go/pkg/commit/elgamal"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
)

type elgamalRunner struct{}

func elgamalScheme() (Scheme, error) { return elgamalRunner{}, nil }

func (elgamalRunner) Name() string { return "elgamal" }

func (elgamalRunner) Run(ctx context.Context, cfg *commit.Config, rng io.Reader, logger logging.Logger) (*Report, error) {
	c, err := curve.ParseCurve(cfg.Curve)
	if err != nil {
		return nil, commit.WrapError("registry.elgamal", err)
	}
	return exercise[*elgamal.PublicKey, *elgamal.Commitment, *elgamal.OpeningInfo, *curve.Point](
		ctx,
		elgamal.NewScheme(c),
		map[string]string{"curve": c.String()},
		func(*elgamal.PublicKey) (*curve.Point, error) {
			return curve.RandomPoint(c, rng)
		},
		func(_ *elgamal.PublicKey, o *elgamal.OpeningInfo) (*elgamal.OpeningInfo, error) {
			g, err := curve.Generator(c)
			if err != nil {
				return nil, err
			}
			m, err := o.Value().Add(g)
			if err != nil {
				return nil, err
			}
			return elgamal.NewOpeningInfo(m, o.Randomness())
		},
		rng,
		logger,
	)
}
