// Package groth implements a pairing based commitment to a vector of N
// elements of G2.
//
// The public key carries bases g[0..N) and h[0..N) together with gs, gr, hs
// and hr, all in G1. For a message m in G2^N and blinding elements r, s in G2
// the commitment is the pair
//
//	C = e(gs, r) * e(gr, s) * prod_i e(g_i, m_i)
//	D = e(hs, r) * e(hr, s) * prod_i e(h_i, m_i)
//
// in the target group. Each half is evaluated as one multi-pairing so only a
// single final exponentiation is paid per half.
//
// N is fixed by the key. PublicKey.NewMessage refuses a vector of any other
// length, and Create and IsValid refuse a mismatched message before any
// pairing is evaluated.
//
//	pk, err := groth.RandomPublicKey(pairing.BN254, 16, rand.Reader)
//	msg, err := pk.NewMessage(elems)
//	com, opening, err := groth.Create(msg, pk, rand.Reader)
//	ok := com.IsValid(pk, opening)
package groth
