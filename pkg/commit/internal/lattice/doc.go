// Package lattice provides the integer lattice arithmetic behind the Ajtai
// and BDLOP commitments: dense matrices over Z_q with q < 2^32, uniform and
// bounded sampling, a discrete Gaussian sampler, and LLL reduced reference
// bases for measuring basis-relative norms.
//
// Modular products use lattigo's Barrett reduction. All sampling reads from
// a caller supplied io.Reader.
package lattice
