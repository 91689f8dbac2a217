// Package bdlop implements the BDLOP lattice commitment of Baum, Damgård,
// Lyubashevsky, Oechsner and Peikert in its integer (non-ring) form.
//
// The key fixes
//
//	A1 = [ I_N | A1' ]        (N x K)
//	A2 = [ 0_{LxN} | I_L | A2' ]  (L x K)
//
// with uniform A1' and A2'. A message m in Z_q^L is committed with a
// randomness vector r drawn uniformly from (-Beta, Beta)^K:
//
//	c1 = A1*r
//	c2 = A2*r + m
//
// c1 binds r under SIS and c2 hides m under LWE. IsValid
// rejects an opening whose randomness has l-infinity norm at or above Beta.
package bdlop
