// Package ajtai implements the Ajtai lattice commitment
//
//	C = A1*value + A2*randomness mod q
//
// for uniformly random A1, A2 in Z_q^{N x M} and short column vectors value
// and randomness of length M. Binding rests on the Short Integer Solution
// problem, which is only hard for short vectors. IsValid therefore rejects
// any opening in which either vector has norm at or above Params.Short
// before it recomputes the commitment; without that gate a kernel vector of
// A1 yields a second opening of every commitment.
//
// # Norms
//
// Two ways of measuring length are supported. NormEuclidean is the squared
// Euclidean norm of the centered coordinates. NormBasis, the default,
// measures a vector against an LLL reduced random basis sampled with the
// key:
//
//	N_B(v) = sum_i (<v, b*_i> / |b*_i|^2)^2 * |det B|^(2/M)
//
// where b*_i are the Gram-Schmidt vectors of the basis.
//
// # Preconditions
//
// Create and CreateWithRandomness panic when given anything other than a
// column vector of length M over Z_Q. IsValid reports the same condition by
// returning false.
//
//	pk, err := ajtai.RandomPublicKey(ajtai.DefaultParams(), rand.Reader)
//	v := ajtai.NewColumn(pk.Params().Q, values...)
//	com, opening, err := ajtai.Create(v, pk, rand.Reader)
//	ok := com.IsValid(pk, opening)
package ajtai
