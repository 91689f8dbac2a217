// Package pedersen implements the Pedersen commitment over a prime-order
// group with base generator G.
//
// A public key holds a second generator H = h*G for a secret h that is
// discarded immediately, so nobody knows log_G(H). A commitment to a scalar
// value is
//
//	C = value*G + r*H
//
// for a fresh uniformly random r. The scheme is perfectly hiding and
// computationally binding under the discrete logarithm assumption.
//
// # Usage
//
//	pk, err := pedersen.RandomPublicKey(curve.Ristretto255, rand.Reader)
//	if err != nil {
//	    return err
//	}
//	v, _ := curve.NewScalarInt64(curve.Ristretto255, 5)
//	com, opening, err := pedersen.Create(v, pk, rand.Reader)
//	if err != nil {
//	    return err
//	}
//	ok := com.IsValid(pk, opening)
//
// For a fixed agreed setup build the key from a known generator with
// NewPublicKey. Commitments are additively homomorphic: Add and AddOpenings
// combine two commitments under the same key.
//
// # Encoding
//
// Public keys and commitments encode as one compressed point. Openings encode
// as value || r, each curve.ScalarSize bytes big-endian. The curve is not part
// of the encoding and must be supplied to the Unmarshal functions.
package pedersen
