package bdlop

import (
	"fmt"
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

// Matrix is a dense matrix over Z_q. Messages and randomness are column
// vectors.
type Matrix = lattice.Matrix

// NewColumn builds a column vector over Z_q from signed entries.
func NewColumn(q uint64, vals ...int64) *Matrix {
	return lattice.NewColumn(q, vals...)
}

// PublicKey holds A1 = [I_N | A1'] (N x K) and A2 = [0 | I_L | A2'] (L x K).
type PublicKey struct {
	params Params
	a1, a2 *Matrix
}

// Commitment is the pair (c1, c2) = (A1*r, A2*r + m).
type Commitment struct {
	c1, c2 *Matrix
}

// OpeningInfo carries the message and the randomness vector.
type OpeningInfo struct {
	msg, r *Matrix
}

// RandomPublicKey samples the uniform blocks A1' and A2'.
func RandomPublicKey(p Params, rng io.Reader) (*PublicKey, error) {
	const op = "bdlop.RandomPublicKey"
	if err := p.Validate(); err != nil {
		return nil, commit.WrapError(op, err)
	}
	a1p, err := lattice.SampleUniform(p.N, p.K-p.N, p.Q, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	a2p, err := lattice.SampleUniform(p.L, p.K-p.N-p.L, p.Q, rng)
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &PublicKey{
		params: p,
		a1:     lattice.HStack(lattice.Identity(p.N, p.Q), a1p),
		a2:     lattice.HStack(lattice.HStack(lattice.NewMatrix(p.L, p.N, p.Q), lattice.Identity(p.L, p.Q)), a2p),
	}, nil
}

// Params returns the key's parameters.
func (pk *PublicKey) Params() Params { return pk.params }

// A1 returns a copy of the binding matrix.
func (pk *PublicKey) A1() *Matrix { return pk.a1.Clone() }

// A2 returns a copy of the message matrix.
func (pk *PublicKey) A2() *Matrix { return pk.a2.Clone() }

// Equal reports whether both keys have the same parameters and matrices.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	if pk == nil || o == nil {
		return pk == o
	}
	return pk.params == o.params && pk.a1.Equal(o.a1) && pk.a2.Equal(o.a2)
}

func mustColumn(v *Matrix, n int, q uint64, what string) {
	if v == nil || !v.IsColumnVector() || v.Rows() != n || v.Modulus() != q {
		panic(fmt.Sprintf("bdlop: %s must be a column vector of length %d mod %d", what, n, q))
	}
}

// Create commits to msg, a column vector of length L over Z_Q; any other
// shape panics. The randomness is uniform in (-Beta, Beta)^K.
func Create(msg *Matrix, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	p := pk.params
	mustColumn(msg, p.L, p.Q, "message")
	r, err := lattice.SampleBounded(p.K, 1, p.Q, p.Beta, rng)
	if err != nil {
		return nil, nil, commit.WrapError("bdlop.Create", err)
	}
	defer r.Wipe()
	return CreateWithRandomness(msg, r, pk)
}

// CreateWithRandomness commits to msg with caller-chosen randomness of
// length K. The bound on r is not enforced here; IsValid enforces it.
func CreateWithRandomness(msg, r *Matrix, pk *PublicKey) (*Commitment, *OpeningInfo, error) {
	p := pk.params
	mustColumn(msg, p.L, p.Q, "message")
	mustColumn(r, p.K, p.Q, "randomness")
	c1, c2 := pk.compute(msg, r)
	return &Commitment{c1: c1, c2: c2}, &OpeningInfo{msg: msg.Clone(), r: r.Clone()}, nil
}

func (pk *PublicKey) compute(msg, r *Matrix) (*Matrix, *Matrix) {
	return lattice.Mul(pk.a1, r), lattice.Add(lattice.Mul(pk.a2, r), msg)
}

// IsValid rejects openings of the wrong shape and randomness with
// l-infinity norm at or above Beta, then recomputes both halves.
func (c *Commitment) IsValid(pk *PublicKey, o *OpeningInfo) bool {
	if c == nil || pk == nil || o == nil {
		return false
	}
	p := pk.params
	for _, v := range []struct {
		m *Matrix
		n int
	}{{o.msg, p.L}, {o.r, p.K}} {
		if v.m == nil || !v.m.IsColumnVector() || v.m.Rows() != v.n || v.m.Modulus() != p.Q {
			return false
		}
	}
	if o.r.NormInfinity() >= p.Beta {
		return false
	}
	c1, c2 := pk.compute(o.msg, o.r)
	// Evaluate both halves before combining.
	ok1 := c1.Equal(c.c1)
	ok2 := c2.Equal(c.c2)
	return ok1 && ok2
}

// Equal reports whether both halves match.
func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return c == o
	}
	ok1 := c.c1.Equal(o.c1)
	ok2 := c.c2.Equal(o.c2)
	return ok1 && ok2
}

// Binding returns a copy of c1 = A1*r.
func (c *Commitment) Binding() *Matrix { return c.c1.Clone() }

// Masked returns a copy of c2 = A2*r + m.
func (c *Commitment) Masked() *Matrix { return c.c2.Clone() }

func (c *Commitment) String() string {
	if c == nil {
		return "BDLOPCom(nil)"
	}
	return fmt.Sprintf("BDLOPCom(%d+%d mod %d)", c.c1.Rows(), c.c2.Rows(), c.c1.Modulus())
}

// NewOpeningInfo assembles an opening received from a committer.
func NewOpeningInfo(msg, r *Matrix) *OpeningInfo {
	return &OpeningInfo{msg: msg.Clone(), r: r.Clone()}
}

// Message returns a copy of the committed message.
func (o *OpeningInfo) Message() *Matrix { return o.msg.Clone() }

// Randomness returns a copy of the randomness vector.
func (o *OpeningInfo) Randomness() *Matrix { return o.r.Clone() }
