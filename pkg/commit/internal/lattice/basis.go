package lattice

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

const (
	// lllDelta is the Lovász constant.
	lllDelta = 0.75

	// singularTol is the squared Gram-Schmidt length below which a basis
	// vector is treated as dependent on the previous ones.
	singularTol = 1e-9

	maxBasisAttempts = 64
	maxLLLSteps      = 1 << 22
)

// Basis is a full-rank integer lattice basis in R^m, stored as rows,
// together with its Gram-Schmidt orthogonalisation.
type Basis struct {
	m    int
	rows [][]int64

	gso    [][]float64 // b*_i
	gsoSq  []float64   // |b*_i|^2
	covol2 float64     // |det B|^(2/m)
}

// NewBasis validates rows as a square non-singular integer basis, LLL
// reduces a copy and returns it.
func NewBasis(rows [][]int64) (*Basis, error) {
	b, err := parseBasis("lattice.NewBasis", rows)
	if err != nil {
		return nil, err
	}
	if err := b.reduce(); err != nil {
		return nil, commit.WrapError("lattice.NewBasis", err)
	}
	return b, nil
}

func parseBasis(op string, rows [][]int64) (*Basis, error) {
	m := len(rows)
	if m == 0 {
		return nil, commit.Errorf(op, "empty basis: %w", commit.ErrInvalidParameter)
	}
	cp := make([][]int64, m)
	for i, r := range rows {
		if len(r) != m {
			return nil, commit.Errorf(op, "row %d has %d entries, want %d: %w", i, len(r), m, commit.ErrInvalidParameter)
		}
		cp[i] = append([]int64(nil), r...)
	}
	b := &Basis{m: m, rows: cp}
	if !b.orthogonalize() {
		return nil, commit.Errorf(op, "basis is singular: %w", commit.ErrInvalidParameter)
	}
	return b, nil
}

// RandomBasis samples an m x m integer matrix with entries uniform in
// [-bound, bound], resampling until it is non-singular, and LLL reduces it.
func RandomBasis(m int, bound int64, rng io.Reader) (*Basis, error) {
	const op = "lattice.RandomBasis"
	if m <= 0 || bound <= 0 || bound >= MaxModulus/2 {
		return nil, commit.Errorf(op, "dimension %d bound %d: %w", m, bound, commit.ErrInvalidParameter)
	}
	if rng == nil {
		return nil, commit.Errorf(op, "nil randomness source: %w", commit.ErrInvalidParameter)
	}
	width := uint64(2*bound + 1) // #nosec G115 -- bound checked above
	src := newUint32Source(rng, m*m)
	defer src.wipe()
	for attempt := 0; attempt < maxBasisAttempts; attempt++ {
		rows := make([][]int64, m)
		for i := range rows {
			rows[i] = make([]int64, m)
			for j := range rows[i] {
				v, err := src.below(width)
				if err != nil {
					return nil, commit.RandomnessError(op, err)
				}
				rows[i][j] = int64(v) - bound // #nosec G115 -- v < 2^32
			}
		}
		b := &Basis{m: m, rows: rows}
		if !b.orthogonalize() {
			continue
		}
		if err := b.reduce(); err != nil {
			return nil, commit.WrapError(op, err)
		}
		return b, nil
	}
	return nil, commit.Errorf(op, "no non-singular basis after %d attempts: %w", maxBasisAttempts, commit.ErrSamplingExhausted)
}

// IdentityBasis returns the standard basis of Z^m. Its relative norm is the
// plain squared Euclidean norm.
func IdentityBasis(m int) *Basis {
	rows := make([][]int64, m)
	for i := range rows {
		rows[i] = make([]int64, m)
		rows[i][i] = 1
	}
	b := &Basis{m: m, rows: rows}
	b.orthogonalize()
	return b
}

// Dim returns m.
func (b *Basis) Dim() int { return b.m }

// Rows returns a copy of the basis vectors.
func (b *Basis) Rows() [][]int64 {
	out := make([][]int64, b.m)
	for i, r := range b.rows {
		out[i] = append([]int64(nil), r...)
	}
	return out
}

// GSOSquaredNorms returns |b*_i|^2 for each basis vector.
func (b *Basis) GSOSquaredNorms() []float64 {
	return append([]float64(nil), b.gsoSq...)
}

// Norm returns the covolume-normalised squared norm of v relative to the
// basis:
//
//	N_B(v) = sum_i (<v, b*_i> / |b*_i|^2)^2 * |det B|^(2/m)
//
// For the standard basis this is the squared Euclidean norm.
func (b *Basis) Norm(v []int64) float64 {
	if len(v) != b.m {
		panic(fmt.Sprintf("lattice: vector of length %d against basis of dimension %d", len(v), b.m))
	}
	fv := toFloat(v)
	var sum float64
	for i := range b.gso {
		c := floats.Dot(fv, b.gso[i]) / b.gsoSq[i]
		sum += c * c
	}
	return sum * b.covol2
}

// orthogonalize recomputes the Gram-Schmidt vectors and reports whether the
// basis is non-singular.
func (b *Basis) orthogonalize() bool {
	b.gso = make([][]float64, b.m)
	b.gsoSq = make([]float64, b.m)
	for i, r := range b.rows {
		v := toFloat(r)
		for j := 0; j < i; j++ {
			mu := floats.Dot(v, b.gso[j]) / b.gsoSq[j]
			floats.AddScaled(v, -mu, b.gso[j])
		}
		b.gso[i] = v
		b.gsoSq[i] = floats.Dot(v, v)
		if b.gsoSq[i] < singularTol {
			return false
		}
	}
	logs := make([]float64, b.m)
	for i, s := range b.gsoSq {
		logs[i] = math.Log(s)
	}
	b.covol2 = math.Exp(floats.Sum(logs) / float64(b.m))
	return true
}

// reduce runs LLL with the Lovász constant lllDelta. mu and the squared
// Gram-Schmidt lengths are updated in place on each swap; the orthogonal
// vectors themselves are recomputed once at the end.
func (b *Basis) reduce() error {
	n := b.m
	mu := make([][]float64, n)
	for i := range mu {
		mu[i] = make([]float64, n)
		fr := toFloat(b.rows[i])
		for j := 0; j < i; j++ {
			mu[i][j] = floats.Dot(fr, b.gso[j]) / b.gsoSq[j]
		}
	}
	bs := append([]float64(nil), b.gsoSq...)

	k := 1
	for steps := 0; k < n; steps++ {
		if steps >= maxLLLSteps {
			return fmt.Errorf("LLL did not converge after %d steps", maxLLLSteps)
		}
		for j := k - 1; j >= 0; j-- {
			if math.Abs(mu[k][j]) <= 0.5 {
				continue
			}
			r := math.Round(mu[k][j])
			ri := int64(r)
			for c := range b.rows[k] {
				b.rows[k][c] -= ri * b.rows[j][c]
			}
			for l := 0; l < j; l++ {
				mu[k][l] -= r * mu[j][l]
			}
			mu[k][j] -= r
		}
		if bs[k] >= (lllDelta-mu[k][k-1]*mu[k][k-1])*bs[k-1] {
			k++
			continue
		}

		m := mu[k][k-1]
		bNew := bs[k] + m*m*bs[k-1]
		mu[k][k-1] = m * bs[k-1] / bNew
		bs[k] = bs[k-1] * bs[k] / bNew
		bs[k-1] = bNew

		b.rows[k], b.rows[k-1] = b.rows[k-1], b.rows[k]
		for j := 0; j < k-1; j++ {
			mu[k][j], mu[k-1][j] = mu[k-1][j], mu[k][j]
		}
		for i := k + 1; i < n; i++ {
			t := mu[i][k]
			mu[i][k] = mu[i][k-1] - m*t
			mu[i][k-1] = t + mu[k][k-1]*mu[i][k]
		}
		if k > 1 {
			k--
		}
	}
	if !b.orthogonalize() {
		return fmt.Errorf("basis became singular during reduction")
	}
	return nil
}

// IsLLLReduced checks the size-reduction and Lovász conditions against a
// fresh orthogonalisation, allowing eps of floating point slack.
func (b *Basis) IsLLLReduced(eps float64) bool {
	for i := 1; i < b.m; i++ {
		fr := toFloat(b.rows[i])
		for j := 0; j < i; j++ {
			if math.Abs(floats.Dot(fr, b.gso[j])/b.gsoSq[j]) > 0.5+eps {
				return false
			}
		}
		m := floats.Dot(fr, b.gso[i-1]) / b.gsoSq[i-1]
		if b.gsoSq[i] < (lllDelta-m*m)*b.gsoSq[i-1]-eps {
			return false
		}
	}
	return true
}

func toFloat(r []int64) []float64 {
	out := make([]float64, len(r))
	for i, x := range r {
		out[i] = float64(x)
	}
	return out
}
