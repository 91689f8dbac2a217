package lattice

import (
	"encoding/binary"
	"io"
	"math"
	"sort"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// tailAccuracy is the probability mass allowed beyond the tail cut.
const tailAccuracy = 5e-32

// DiscreteGaussian samples from the discrete Gaussian over Z centred at zero
// by inversion against a precomputed CDF. Values beyond the tail cut
// ceil(sigma*sqrt(-2 ln tailAccuracy)) are never produced.
type DiscreteGaussian struct {
	sigma float64
	a     float64   // mass at zero
	cdf   []float64 // cumulative mass of 1..tail on one side
}

// NewDiscreteGaussian precomputes the sampler for standard deviation sigma.
func NewDiscreteGaussian(sigma float64) (*DiscreteGaussian, error) {
	if !(sigma > 0) || sigma > 1<<20 {
		return nil, commit.Errorf("lattice.NewDiscreteGaussian", "sigma %v out of range: %w", sigma, commit.ErrInvalidParameter)
	}
	variance := sigma * sigma
	tail := int(math.Ceil(sigma * math.Sqrt(-2*math.Log(tailAccuracy))))
	sum := 1.0
	for x := 1; x <= tail; x++ {
		sum += 2 * math.Exp(-float64(x*x)/(2*variance))
	}
	dg := &DiscreteGaussian{sigma: sigma, a: 1 / sum, cdf: make([]float64, tail)}
	for x := 1; x <= tail; x++ {
		p := dg.a * math.Exp(-float64(x*x)/(2*variance))
		if x == 1 {
			dg.cdf[0] = p
		} else {
			dg.cdf[x-1] = dg.cdf[x-2] + p
		}
	}
	return dg, nil
}

// Sigma returns the standard deviation.
func (dg *DiscreteGaussian) Sigma() float64 { return dg.sigma }

// TailCut returns the largest magnitude the sampler can return.
func (dg *DiscreteGaussian) TailCut() int64 { return int64(len(dg.cdf)) }

// Draw returns one sample using 8 bytes from rng.
func (dg *DiscreteGaussian) Draw(rng io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return 0, commit.RandomnessError("lattice.DiscreteGaussian.Draw", err)
	}
	return dg.fromWord(binary.BigEndian.Uint64(buf[:])), nil
}

func (dg *DiscreteGaussian) fromWord(w uint64) int64 {
	// 53 uniform bits in [0, 1).
	u := float64(w>>11)/(1<<53) - 0.5
	if math.Abs(u) <= dg.a/2 {
		return 0
	}
	target := math.Abs(u) - dg.a/2
	idx := sort.SearchFloat64s(dg.cdf, target)
	if idx >= len(dg.cdf) {
		idx = len(dg.cdf) - 1
	}
	x := int64(idx + 1)
	if u < 0 {
		return -x
	}
	return x
}

// SampleColumn draws an n-entry column vector over Z_q.
func (dg *DiscreteGaussian) SampleColumn(n int, q uint64, rng io.Reader) (*Matrix, error) {
	const op = "lattice.DiscreteGaussian.SampleColumn"
	if rng == nil {
		return nil, commit.Errorf(op, "nil randomness source: %w", commit.ErrInvalidParameter)
	}
	buf := make([]byte, 8*n)
	defer commit.ZeroizeBytes(buf)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, commit.RandomnessError(op, err)
	}
	m := NewMatrix(n, 1, q)
	for i := 0; i < n; i++ {
		m.data[i] = reduceInt64(dg.fromWord(binary.BigEndian.Uint64(buf[8*i:])), q)
	}
	return m, nil
}
