package ajtai

import (
	"fmt"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

// maxSampleAttempts bounds how often Create redraws randomness that is not
// short enough.
const maxSampleAttempts = 64

// Matrix is a dense matrix over Z_q. Messages and randomness are column
// vectors.
type Matrix = lattice.Matrix

// NewColumn builds a column vector over Z_q from signed entries.
func NewColumn(q uint64, vals ...int64) *Matrix {
	return lattice.NewColumn(q, vals...)
}

// NewMatrix builds a rows x cols matrix over Z_q from row-major signed
// entries.
func NewMatrix(rows, cols int, q uint64, vals []int64) *Matrix {
	return lattice.NewMatrixFromInt64(rows, cols, q, vals)
}

// PublicKey holds the uniform matrices A1, A2 and, for NormBasis, the
// reduced reference basis.
type PublicKey struct {
	params   Params
	a1, a2   *Matrix
	basis    *lattice.Basis
	gaussian *lattice.DiscreteGaussian
}

// Commitment is A1*value + A2*randomness mod q.
type Commitment struct {
	com *Matrix
}

// OpeningInfo carries the committed value and the randomness.
type OpeningInfo struct {
	value, randomness *Matrix
}

// RandomPublicKey samples A1 and A2 uniformly from Z_q^{N x M}. With
// NormBasis it also samples a random integer basis of dimension M and LLL
// reduces it.
func RandomPublicKey(p Params, rng io.Reader) (*PublicKey, error) {
	const op = "ajtai.RandomPublicKey"
	if err := p.Validate(); err != nil {
		return nil, commit.WrapError(op, err)
	}
	a1, err := lattice.SampleUniform(p.N, p.M, p.Q, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	a2, err := lattice.SampleUniform(p.N, p.M, p.Q, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	var basis *lattice.Basis
	if p.Norm == NormBasis {
		basis, err = lattice.RandomBasis(p.M, p.BasisBound, rng)
		if err != nil {
			return nil, commit.WrapError(op, err)
		}
	}
	return newPublicKey(p, a1, a2, basis)
}

func newPublicKey(p Params, a1, a2 *Matrix, basis *lattice.Basis) (*PublicKey, error) {
	dg, err := lattice.NewDiscreteGaussian(p.Sigma)
	if err != nil {
		return nil, err
	}
	return &PublicKey{params: p, a1: a1, a2: a2, basis: basis, gaussian: dg}, nil
}

// NewPublicKey assembles a key from agreed matrices. basis may be nil for
// NormEuclidean; for NormBasis a nil basis is replaced by the standard
// basis, under which the basis norm equals the Euclidean one.
func NewPublicKey(p Params, a1, a2 *Matrix, basisRows [][]int64) (*PublicKey, error) {
	const op = "ajtai.NewPublicKey"
	if err := p.Validate(); err != nil {
		return nil, commit.WrapError(op, err)
	}
	for i, a := range []*Matrix{a1, a2} {
		if a == nil || a.Rows() != p.N || a.Cols() != p.M || a.Modulus() != p.Q {
			return nil, commit.Errorf(op, "matrix A%d does not match %dx%d mod %d: %w", i+1, p.N, p.M, p.Q, commit.ErrInvalidParameter)
		}
	}
	var basis *lattice.Basis
	if p.Norm == NormBasis {
		if basisRows == nil {
			basis = lattice.IdentityBasis(p.M)
		} else {
			var err error
			if basis, err = lattice.NewBasis(basisRows); err != nil {
				return nil, commit.WrapError(op, err)
			}
			if basis.Dim() != p.M {
				return nil, commit.Errorf(op, "basis dimension %d, want %d: %w", basis.Dim(), p.M, commit.ErrInvalidParameter)
			}
		}
	}
	pk, err := newPublicKey(p, a1.Clone(), a2.Clone(), basis)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return pk, nil
}

// Params returns the key's parameters.
func (pk *PublicKey) Params() Params { return pk.params }

// A1 returns a copy of the value matrix.
func (pk *PublicKey) A1() *Matrix { return pk.a1.Clone() }

// A2 returns a copy of the randomness matrix.
func (pk *PublicKey) A2() *Matrix { return pk.a2.Clone() }

// BasisRows returns the reference basis, or nil for NormEuclidean.
func (pk *PublicKey) BasisRows() [][]int64 {
	if pk.basis == nil {
		return nil
	}
	return pk.basis.Rows()
}

// Norm measures v the way IsValid does.
func (pk *PublicKey) Norm(v *Matrix) float64 {
	if pk.params.Norm == NormBasis {
		return pk.basis.Norm(v.CenteredValues())
	}
	return float64(v.NormEuclideanSquared())
}

// IsShort reports whether v is strictly below the Short bound.
func (pk *PublicKey) IsShort(v *Matrix) bool {
	return pk.Norm(v) < pk.params.Short
}

func (pk *PublicKey) fits(v *Matrix) bool {
	return v.IsColumnVector() && v.Rows() == pk.params.M && v.Modulus() == pk.params.Q
}

// Equal reports whether both keys have the same parameters and matrices.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	if pk == nil || o == nil {
		return pk == o
	}
	if pk.params != o.params || !pk.a1.Equal(o.a1) || !pk.a2.Equal(o.a2) {
		return false
	}
	if (pk.basis == nil) != (o.basis == nil) {
		return false
	}
	if pk.basis == nil {
		return true
	}
	a, b := pk.basis.Rows(), o.basis.Rows()
	for i := range a {
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// Create commits to value, which must be a column vector of length M over
// Z_Q; any other shape panics. The randomness is drawn from the discrete
// Gaussian and redrawn until it is short under the key's norm.
func Create(value *Matrix, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	const op = "ajtai.Create"
	pk.mustFit(value)
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		r, err := pk.gaussian.SampleColumn(pk.params.M, pk.params.Q, rng)
		if err != nil {
			return nil, nil, commit.WrapError(op, err)
		}
		if !pk.IsShort(r) {
			r.Wipe()
			continue
		}
		c, o, err := CreateWithRandomness(value, r, pk)
		r.Wipe()
		return c, o, err
	}
	return nil, nil, commit.Errorf(op, "no short randomness after %d draws: %w", maxSampleAttempts, commit.ErrSamplingExhausted)
}

// CreateWithRandomness commits to value with caller-chosen randomness.
// Both vectors must be column vectors of length M over Z_Q.
func CreateWithRandomness(value, randomness *Matrix, pk *PublicKey) (*Commitment, *OpeningInfo, error) {
	pk.mustFit(value)
	pk.mustFit(randomness)
	o := &OpeningInfo{value: value.Clone(), randomness: randomness.Clone()}
	return &Commitment{com: pk.compute(o.value, o.randomness)}, o, nil
}

func (pk *PublicKey) mustFit(v *Matrix) {
	if v == nil || !pk.fits(v) {
		shape := "nil"
		if v != nil {
			shape = fmt.Sprintf("%dx%d mod %d", v.Rows(), v.Cols(), v.Modulus())
		}
		panic(fmt.Sprintf("ajtai: expected a column vector of length %d mod %d, got %s", pk.params.M, pk.params.Q, shape))
	}
}

func (pk *PublicKey) compute(value, randomness *Matrix) *Matrix {
	return lattice.Add(lattice.Mul(pk.a1, value), lattice.Mul(pk.a2, randomness))
}

// IsValid checks the opening in three stages: both vectors must be column
// vectors of length M, both must be strictly shorter than Short, and only
// then is A1*value + A2*randomness recomputed and compared.
func (c *Commitment) IsValid(pk *PublicKey, o *OpeningInfo) bool {
	if o == nil {
		return false
	}
	return Verify(c, o.value, o.randomness, pk)
}

// Verify is IsValid with the opening passed as its two vectors.
func Verify(c *Commitment, value, randomness *Matrix, pk *PublicKey) bool {
	if c == nil || pk == nil || value == nil || randomness == nil {
		return false
	}
	if !pk.fits(value) || !pk.fits(randomness) {
		return false
	}
	if !pk.IsShort(value) || !pk.IsShort(randomness) {
		return false
	}
	return pk.compute(value, randomness).Equal(c.com)
}

// Equal reports whether both commitments are the same vector.
func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.com.Equal(o.com)
}

// Vector returns a copy of the commitment vector.
func (c *Commitment) Vector() *Matrix { return c.com.Clone() }

func (c *Commitment) String() string {
	if c == nil {
		return "AjtaiCom(nil)"
	}
	return "AjtaiCom(" + c.com.String() + ")"
}

// NewOpeningInfo assembles an opening received from a committer.
func NewOpeningInfo(value, randomness *Matrix) *OpeningInfo {
	return &OpeningInfo{value: value.Clone(), randomness: randomness.Clone()}
}

// Value returns a copy of the committed value.
func (o *OpeningInfo) Value() *Matrix { return o.value.Clone() }

// Randomness returns a copy of the randomness vector.
func (o *OpeningInfo) Randomness() *Matrix { return o.randomness.Clone() }
