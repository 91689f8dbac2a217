// Package elgamal implements an ElGamal-style commitment to a group element.
//
// With H = h*G for a discarded h, a commitment to M is
//
//	(L, R) = (r*G, M + r*H)
//
// which is an ElGamal ciphertext of M under H used as a commitment. Hiding is
// computational (DDH) and binding is perfect for a fixed H. Both coordinates
// are recomputed during verification.
//
//	pk, err := elgamal.RandomPublicKey(curve.P256, rand.Reader)
//	m, err := curve.RandomPoint(curve.P256, rand.Reader)
//	com, opening, err := elgamal.Create(m, pk, rand.Reader)
//	ok := com.IsValid(pk, opening)
//
// Commitments encode as L || R and openings as M || r.
package elgamal
