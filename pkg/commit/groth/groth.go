package groth

import (
	"io"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/pairing"
)

// PublicKey holds the length-N bases g and h together with the blinding
// bases gs, gr, hs and hr, all in G1.
type PublicKey struct {
	curve          pairing.Curve
	g, h           []*pairing.G1
	gs, gr, hs, hr *pairing.G1
}

// Message is a vector of G2 elements. Messages built with
// PublicKey.NewMessage are guaranteed to match the key's length.
type Message struct {
	curve pairing.Curve
	elems []*pairing.G2
}

// Commitment is the pair of target group accumulators (C, D).
type Commitment struct {
	c, d *pairing.GT
}

// OpeningInfo carries the message and the two G2 blinding elements.
type OpeningInfo struct {
	msg  *Message
	r, s *pairing.G2
}

// RandomPublicKey samples every base as a random multiple of the G1
// generator. The discrete logarithms are not retained, so the key is in
// binding mode.
func RandomPublicKey(c pairing.Curve, n int, rng io.Reader) (*PublicKey, error) {
	const op = "groth.RandomPublicKey"
	if n <= 0 {
		return nil, commit.Errorf(op, "vector length %d: %w", n, commit.ErrInvalidParameter)
	}
	sample := make([]*pairing.G1, 2*n+4)
	for i := range sample {
		p, err := pairing.RandomG1(c, rng)
		if err != nil {
			return nil, commit.WrapError(op, err)
		}
		sample[i] = p
	}
	return &PublicKey{
		curve: c,
		g:     sample[:n],
		h:     sample[n : 2*n],
		gs:    sample[2*n],
		gr:    sample[2*n+1],
		hs:    sample[2*n+2],
		hr:    sample[2*n+3],
	}, nil
}

// NewPublicKey assembles a key from agreed bases. g and h must have the same
// non-zero length and every element must be on the same curve.
func NewPublicKey(g, h []*pairing.G1, gs, gr, hs, hr *pairing.G1) (*PublicKey, error) {
	const op = "groth.NewPublicKey"
	if len(g) == 0 || len(g) != len(h) {
		return nil, commit.Errorf(op, "len(g)=%d len(h)=%d: %w", len(g), len(h), commit.ErrLengthMismatch)
	}
	c := g[0].Curve()
	all := append(append(append([]*pairing.G1{}, g...), h...), gs, gr, hs, hr)
	for i, p := range all {
		if p == nil {
			return nil, commit.Errorf(op, "nil base %d: %w", i, commit.ErrInvalidParameter)
		}
		if p.Curve() != c {
			return nil, commit.Errorf(op, "base %d: %w", i, commit.ErrCurveMismatch)
		}
	}
	n := len(g)
	return &PublicKey{
		curve: c,
		g:     all[:n],
		h:     all[n : 2*n],
		gs:    gs, gr: gr, hs: hs, hr: hr,
	}, nil
}

// N returns the vector length fixed by this key.
func (pk *PublicKey) N() int {
	if pk == nil {
		return 0
	}
	return len(pk.g)
}

// Curve returns the pairing curve of the key.
func (pk *PublicKey) Curve() pairing.Curve {
	if pk == nil {
		return pairing.Unknown
	}
	return pk.curve
}

// Equal reports whether both keys hold the same bases.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	if pk == nil || o == nil {
		return pk == o
	}
	if pk.curve != o.curve || len(pk.g) != len(o.g) {
		return false
	}
	for i := range pk.g {
		if !pk.g[i].Equal(o.g[i]) || !pk.h[i].Equal(o.h[i]) {
			return false
		}
	}
	return pk.gs.Equal(o.gs) && pk.gr.Equal(o.gr) && pk.hs.Equal(o.hs) && pk.hr.Equal(o.hr)
}

// NewMessage builds a message for this key. A length or curve mismatch is
// rejected here so it can never reach the pairing computation.
func (pk *PublicKey) NewMessage(elems []*pairing.G2) (*Message, error) {
	const op = "groth.PublicKey.NewMessage"
	if pk == nil {
		return nil, commit.Errorf(op, "nil public key: %w", commit.ErrInvalidParameter)
	}
	if len(elems) != pk.N() {
		return nil, commit.Errorf(op, "key expects %d elements, got %d: %w", pk.N(), len(elems), commit.ErrLengthMismatch)
	}
	m, err := NewMessage(elems)
	if err != nil {
		return nil, err
	}
	if m.curve != pk.curve {
		return nil, commit.Errorf(op, "message on %s, key on %s: %w", m.curve, pk.curve, commit.ErrCurveMismatch)
	}
	return m, nil
}

// NewMessage builds a standalone message. Its length is checked against a
// key when it is committed or opened.
func NewMessage(elems []*pairing.G2) (*Message, error) {
	const op = "groth.NewMessage"
	if len(elems) == 0 {
		return nil, commit.Errorf(op, "empty message: %w", commit.ErrInvalidParameter)
	}
	c := elems[0].Curve()
	cp := make([]*pairing.G2, len(elems))
	for i, e := range elems {
		if e == nil {
			return nil, commit.Errorf(op, "nil element %d: %w", i, commit.ErrInvalidParameter)
		}
		if e.Curve() != c {
			return nil, commit.Errorf(op, "element %d: %w", i, commit.ErrCurveMismatch)
		}
		cp[i] = e
	}
	return &Message{curve: c, elems: cp}, nil
}

// RandomMessage samples n random G2 elements.
func RandomMessage(c pairing.Curve, n int, rng io.Reader) (*Message, error) {
	elems := make([]*pairing.G2, n)
	for i := range elems {
		e, err := pairing.RandomG2(c, rng)
		if err != nil {
			return nil, commit.WrapError("groth.RandomMessage", err)
		}
		elems[i] = e
	}
	return NewMessage(elems)
}

// Len returns the number of elements.
func (m *Message) Len() int {
	if m == nil {
		return 0
	}
	return len(m.elems)
}

// Elements returns a copy of the element slice.
func (m *Message) Elements() []*pairing.G2 {
	if m == nil {
		return nil
	}
	return append([]*pairing.G2(nil), m.elems...)
}

// Equal reports whether both messages hold the same elements.
func (m *Message) Equal(o *Message) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.elems) != len(o.elems) {
		return false
	}
	for i := range m.elems {
		if !m.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (pk *PublicKey) accepts(m *Message) error {
	if pk == nil || m == nil {
		return commit.ErrInvalidParameter
	}
	if m.Len() != pk.N() {
		return commit.ErrLengthMismatch
	}
	if m.curve != pk.curve {
		return commit.ErrCurveMismatch
	}
	return nil
}

// Create commits to msg. The blinding elements r and s are random multiples
// of the G2 generator drawn from rng.
func Create(msg *Message, pk *PublicKey, rng io.Reader) (*Commitment, *OpeningInfo, error) {
	const op = "groth.Create"
	if err := pk.accepts(msg); err != nil {
		return nil, nil, commit.Errorf(op, "key N=%d, message N=%d: %w", pk.N(), msg.Len(), err)
	}
	r, err := pairing.RandomG2(pk.curve, rng)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	s, err := pairing.RandomG2(pk.curve, rng)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	return CreateWithRandomness(msg, r, s, pk)
}

// CreateWithRandomness commits to msg with caller-chosen blinding elements.
func CreateWithRandomness(msg *Message, r, s *pairing.G2, pk *PublicKey) (*Commitment, *OpeningInfo, error) {
	const op = "groth.CreateWithRandomness"
	if err := pk.accepts(msg); err != nil {
		return nil, nil, commit.Errorf(op, "key N=%d, message N=%d: %w", pk.N(), msg.Len(), err)
	}
	if r == nil || s == nil {
		return nil, nil, commit.Errorf(op, "nil blinding element: %w", commit.ErrInvalidParameter)
	}
	com, err := compute(msg, r, s, pk)
	if err != nil {
		return nil, nil, commit.WrapError(op, err)
	}
	return com, &OpeningInfo{msg: msg, r: r, s: s}, nil
}

// compute evaluates
//
//	C = prod e(g_i, m_i) * e(gs, r) * e(gr, s)
//	D = prod e(h_i, m_i) * e(hs, r) * e(hr, s)
//
// as two multi-pairings.
func compute(msg *Message, r, s *pairing.G2, pk *PublicKey) (*Commitment, error) {
	n := pk.N()
	rhs := make([]*pairing.G2, 0, n+2)
	rhs = append(rhs, msg.elems...)
	rhs = append(rhs, r, s)

	left := make([]*pairing.G1, 0, n+2)
	left = append(left, pk.g...)
	left = append(left, pk.gs, pk.gr)
	c, err := pairing.PairingProduct(left, rhs)
	if err != nil {
		return nil, err
	}

	left = left[:0]
	left = append(left, pk.h...)
	left = append(left, pk.hs, pk.hr)
	d, err := pairing.PairingProduct(left, rhs)
	if err != nil {
		return nil, err
	}
	return &Commitment{c: c, d: d}, nil
}

// IsValid recomputes (C, D) from the opening. A message whose length does
// not match the key is rejected before any pairing is evaluated.
func (c *Commitment) IsValid(pk *PublicKey, o *OpeningInfo) bool {
	if c == nil || o == nil || o.r == nil || o.s == nil {
		return false
	}
	if pk.accepts(o.msg) != nil {
		return false
	}
	recomputed, err := compute(o.msg, o.r, o.s, pk)
	if err != nil {
		return false
	}
	return recomputed.Equal(c)
}

// Equal reports whether both accumulators match.
func (c *Commitment) Equal(o *Commitment) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.c.Equal(o.c) && c.d.Equal(o.d)
}

// C returns the first accumulator.
func (c *Commitment) C() *pairing.GT {
	if c == nil {
		return nil
	}
	return c.c
}

// D returns the second accumulator.
func (c *Commitment) D() *pairing.GT {
	if c == nil {
		return nil
	}
	return c.d
}

func (c *Commitment) String() string {
	if c == nil {
		return "GrothCommitment(nil)"
	}
	return "GrothCommitment(" + c.c.String() + ")"
}

// NewOpeningInfo assembles an opening received from a committer.
func NewOpeningInfo(msg *Message, r, s *pairing.G2) (*OpeningInfo, error) {
	if msg == nil || r == nil || s == nil {
		return nil, commit.Errorf("groth.NewOpeningInfo", "nil input: %w", commit.ErrInvalidParameter)
	}
	return &OpeningInfo{msg: msg, r: r, s: s}, nil
}

// Message returns the committed vector.
func (o *OpeningInfo) Message() *Message {
	if o == nil {
		return nil
	}
	return o.msg
}

// R returns the first blinding element.
func (o *OpeningInfo) R() *pairing.G2 {
	if o == nil {
		return nil
	}
	return o.r
}

// S returns the second blinding element.
func (o *OpeningInfo) S() *pairing.G2 {
	if o == nil {
		return nil
	}
	return o.s
}
