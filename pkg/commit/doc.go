// Package commit is the root of a library of cryptographic commitment
// schemes. A committer binds itself to a secret message and later reveals an
// opening that lets anyone check which message was committed.
//
// # Schemes
//
// Each construction lives in its own subpackage and exposes the same three
// operations: generate a public key, create a commitment together with its
// opening, and verify an opening against a commitment.
//
//   - pedersen: C = value*G + r*H over a prime-order group (perfectly hiding)
//   - elgamal: (r*G, M + r*H) for a group element M (computationally hiding)
//   - groth: a pairing based vector commitment to N elements of G2
//   - ajtai: A1*v + A2*r mod q with short v and r (SIS binding)
//   - bdlop: (A1*r, A2*r + m) with l-infinity bounded r (SIS binding)
//
// The generic Scheme interface captures this capability set so callers can
// write code that is agnostic of the concrete construction:
//
//	var s commit.Scheme[*pedersen.PublicKey, *curve.Scalar, *pedersen.Commitment, *pedersen.OpeningInfo]
//	s = pedersen.NewScheme(curve.Ristretto255)
//
//	pk, err := s.GenerateKey(rand.Reader)
//	if err != nil {
//	    return err
//	}
//	com, opening, err := s.Commit(msg, pk, rand.Reader)
//	if err != nil {
//	    return err
//	}
//	ok := s.Verify(com, pk, opening)
//
// # Randomness
//
// Every operation that needs randomness takes an io.Reader argument. Nothing
// in this module reads from a global source. Pass crypto/rand.Reader in
// production; the agreerandom package provides a deterministic reader for a
// fixed agreed setup and for reproducible tests.
//
// # Errors
//
// Verification failure is reported as false, never as an error. A failing
// randomness source makes Create return an error matching ErrRandomness and
// no partial commitment. Shape preconditions that the type system cannot
// express (an Ajtai message that is not a column vector) panic.
//
//	com, opening, err := pedersen.Create(v, pk, rng)
//	if errors.Is(err, commit.ErrRandomness) {
//	    // the reader failed; nothing was committed
//	}
//
// # Configuration
//
// Config collects the construction-time parameters (group choice, Groth
// vector length, lattice dimensions and the SHORT bound). LoadConfig reads
// it from YAML:
//
//	cfg, err := commit.LoadConfig("commit.yaml")
//
// # Scheme Selection
//
// Which schemes are compiled in is a build-time decision. The registry
// package exposes the enabled set by name; build tags such as
// commit_no_groth remove a scheme from it.
package commit
