// Package agreerandom derives deterministic randomness from an agreed seed.
//
// Commitment keys must be generated so that nobody learns the trapdoor.
// When several parties need the same key they can agree on a seed (for
// example by combining their contributions with CombineSeeds) and feed the
// resulting reader to RandomPublicKey. Each party then derives the identical
// key locally.
//
//	seed, err := agreerandom.CombineSeeds("pedersen-setup", aliceSeed, bobSeed)
//	rng, err := agreerandom.NewReader(seed, "pedersen/ristretto255")
//	pk, err := pedersen.RandomPublicKey(curve.Ristretto255, rng)
//
// The stream is HKDF-SHA256 keyed ChaCha20. Never use it for the blinding
// randomness of a commitment: a known seed makes the commitment
// non-hiding.
package agreerandom
