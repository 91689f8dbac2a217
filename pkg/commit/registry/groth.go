//go:build !commit_no_groth

package registry

import (
	"context"
	"io"
	"strconv"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/groth"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
	"github.com/coinbase/cb-commit-go/pkg/commit/pairing"
)

type grothRunner struct{}

func grothScheme() (Scheme, error) { return grothRunner{}, nil }

func (grothRunner) Name() string { return "groth" }

func (grothRunner) Run(ctx context.Context, cfg *commit.Config, rng io.Reader, logger logging.Logger) (*Report, error) {
	pc, err := pairing.ParseCurve(cfg.PairingCurve)
	if err != nil {
		return nil, commit.WrapError("registry.groth", err)
	}
	return exercise[*groth.PublicKey, *groth.Commitment, *groth.OpeningInfo, *groth.Message](
		ctx,
		groth.NewScheme(pc, cfg.GrothN),
		map[string]string{"pairing_curve": pc.String(), "n": strconv.Itoa(cfg.GrothN)},
		func(pk *groth.PublicKey) (*groth.Message, error) {
			m, err := groth.RandomMessage(pc, pk.N(), rng)
			if err != nil {
				return nil, err
			}
			return pk.NewMessage(m.Elements())
		},
		func(_ *groth.PublicKey, o *groth.OpeningInfo) (*groth.OpeningInfo, error) {
			return groth.NewOpeningInfo(o.Message(), o.S(), o.R())
		},
		rng,
		logger,
	)
}
