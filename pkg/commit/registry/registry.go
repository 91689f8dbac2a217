package registry

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
)

// Scheme runs one end-to-end exercise of a commitment construction: key
// generation, commit, verify, and a tampered opening that must be refused.
type Scheme interface {
	Name() string
	Run(ctx context.Context, cfg *commit.Config, rng io.Reader, logger logging.Logger) (*Report, error)
}

// Report summarises one Run.
type Report struct {
	Scheme          string            `json:"scheme"`
	Params          map[string]string `json:"params"`
	Verified        bool              `json:"verified"`
	TamperRejected  bool              `json:"tamper_rejected"`
	KeyBytes        int               `json:"key_bytes"`
	CommitmentBytes int               `json:"commitment_bytes"`
	OpeningBytes    int               `json:"opening_bytes"`
	Elapsed         time.Duration     `json:"elapsed_ns"`
}

// OK reports whether the honest opening verified and the tampered one did
// not.
func (r *Report) OK() bool {
	return r != nil && r.Verified && r.TamperRejected
}

// constructors maps every known scheme name to its build-dependent
// constructor. A scheme compiled out returns ErrSchemeDisabled.
func constructors() map[string]func() (Scheme, error) {
	return map[string]func() (Scheme, error){
		"pedersen": pedersenScheme,
		"elgamal":  elgamalScheme,
		"groth":    grothScheme,
		"ajtai":    ajtaiScheme,
		"bdlop":    bdlopScheme,
	}
}

// Known returns every scheme name this module defines, enabled or not, in
// sorted order.
func Known() []string {
	var names []string
	for name := range constructors() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named scheme. Unknown names yield ErrUnknownScheme and
// schemes removed by a build tag yield ErrSchemeDisabled.
func Lookup(name string) (Scheme, error) {
	ctor, ok := constructors()[name]
	if !ok {
		return nil, commit.Errorf("registry.Lookup", "%q: %w", name, commit.ErrUnknownScheme)
	}
	return ctor()
}

// All returns the enabled schemes in name order.
func All() []Scheme {
	var out []Scheme
	for _, name := range Known() {
		if s, err := Lookup(name); err == nil {
			out = append(out, s)
		}
	}
	return out
}

// Names returns the names of the enabled schemes.
func Names() []string {
	var out []string
	for _, s := range All() {
		out = append(out, s.Name())
	}
	return out
}

func disabled(name string) (Scheme, error) {
	return nil, commit.Errorf("registry.Lookup", "%q: %w", name, commit.ErrSchemeDisabled)
}

type binaryMarshaler interface {
	MarshalBinary() ([]byte, error)
}

// exercise drives one round of s. tamper derives an opening from the honest
// one that a sound scheme must refuse.
func exercise[K, C, O binaryMarshaler, M any](
	ctx context.Context,
	s commit.Scheme[K, M, C, O],
	params map[string]string,
	newMessage func(pk K) (M, error),
	tamper func(pk K, o O) (O, error),
	rng io.Reader,
	logger logging.Logger,
) (*Report, error) {
	op := "registry." + s.Name()
	start := time.Now()
	logger = logger.With("scheme", s.Name())

	if err := ctx.Err(); err != nil {
		return nil, commit.WrapError(op, err)
	}
	pk, err := s.GenerateKey(rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	keyBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	logger.Debug(ctx, "public key generated", "key_bytes", len(keyBytes))

	if err := ctx.Err(); err != nil {
		return nil, commit.WrapError(op, err)
	}
	msg, err := newMessage(pk)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	com, opening, verified, err := commit.RoundTrip(s, msg, pk, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	comBytes, err := com.MarshalBinary()
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	openingBytes, err := opening.MarshalBinary()
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	logger.Debug(ctx, "commitment created",
		"commitment_bytes", len(comBytes),
		logging.Redacted("opening"),
	)

	forged, err := tamper(pk, opening)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	rejected := !s.Verify(com, pk, forged)

	report := &Report{
		Scheme:          s.Name(),
		Params:          params,
		Verified:        verified,
		TamperRejected:  rejected,
		KeyBytes:        len(keyBytes),
		CommitmentBytes: len(comBytes),
		OpeningBytes:    len(openingBytes),
		Elapsed:         time.Since(start),
	}
	if !report.OK() {
		logger.Error(ctx, "round failed", "verified", verified, "tamper_rejected", rejected)
		return report, commit.Errorf(op, "verified=%t tamper_rejected=%t", verified, rejected)
	}
	logger.Info(ctx, "round complete", "elapsed", report.Elapsed)
	return report, nil
}
