// Package curve provides the prime-order groups used by the Pedersen and
// ElGamal commitments.
//
// The package exposes a stable Curve enum and two immutable value types,
// Scalar and Point, backed by established libraries:
//
//   - Ristretto255, P-256, P-384, P-521: github.com/cloudflare/circl/group
//   - secp256k1: github.com/btcsuite/btcd/btcec/v2
//   - Ed25519 (prime-order subgroup): filippo.io/edwards25519
//
// # Scalars
//
// Scalars are stored as canonical big-endian bytes reduced modulo the group
// order, independent of the backend's native representation:
//
//	r, err := curve.RandomScalar(curve.Ristretto255, rand.Reader)
//	five, err := curve.NewScalarInt64(curve.Ristretto255, 5)
//
// RandomScalar reads ScalarSize+16 bytes from the supplied reader and reduces
// them, so the result is statistically close to uniform. A failing reader
// yields an error matching commit.ErrRandomness.
//
// # Points
//
//	g, err := curve.Generator(curve.P256)
//	p, err := g.Mul(r)
//	sum, err := curve.MultiScalarMult([]*curve.Scalar{a, b}, []*curve.Point{g, h})
//
// Point.Bytes returns a fixed-size compressed encoding (Curve.PointSize).
// Weierstrass curves encode the identity as all zero bytes. Decoding an
// Ed25519 point rejects elements outside the prime-order subgroup.
//
// # Concurrency
//
// Scalar and Point values are immutable and safe for concurrent use.
package curve
