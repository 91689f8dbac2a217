// Package pairing wraps the bilinear groups of
// github.com/consensys/gnark-crypto for the Groth vector commitment.
//
// Two curves are supported, BN254 and BLS12-381. G1, G2 and GT are
// immutable value types tagged with their curve; mixing curves is reported as
// commit.ErrCurveMismatch.
//
// # Usage
//
//	g, err := pairing.RandomG1(pairing.BN254, rand.Reader)
//	h, err := pairing.RandomG2(pairing.BN254, rand.Reader)
//	gt, err := pairing.PairingProduct([]*pairing.G1{g}, []*pairing.G2{h})
//
// PairingProduct evaluates all pairs with one shared final exponentiation.
package pairing
