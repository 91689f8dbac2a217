package pairing_test

import (
	"crypto/rand"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/pairing"
)

func TestBilinearity(t *testing.T) {
	for _, c := range pairing.All() {
		t.Run(c.String(), func(t *testing.T) {
			a, err := pairing.RandomScalar(c, rand.Reader)
			require.NoError(t, err)
			b, err := pairing.RandomScalar(c, rand.Reader)
			require.NoError(t, err)

			aG1, err := pairing.MulG1Generator(c, a)
			require.NoError(t, err)
			bG2, err := pairing.MulG2Generator(c, b)
			require.NoError(t, err)
			left, err := pairing.PairingProduct([]*pairing.G1{aG1}, []*pairing.G2{bG2})
			require.NoError(t, err)

			ab := new(big.Int).Mul(a, b)
			abG1, err := pairing.MulG1Generator(c, ab)
			require.NoError(t, err)
			g2, err := pairing.MulG2Generator(c, big.NewInt(1))
			require.NoError(t, err)
			right, err := pairing.PairingProduct([]*pairing.G1{abG1}, []*pairing.G2{g2})
			require.NoError(t, err)

			assert.True(t, left.Equal(right))
		})
	}
}

func TestProductMatchesMul(t *testing.T) {
	c := pairing.BN254
	p1, err := pairing.RandomG1(c, rand.Reader)
	require.NoError(t, err)
	p2, err := pairing.RandomG1(c, rand.Reader)
	require.NoError(t, err)
	q1, err := pairing.RandomG2(c, rand.Reader)
	require.NoError(t, err)
	q2, err := pairing.RandomG2(c, rand.Reader)
	require.NoError(t, err)

	e1, err := pairing.PairingProduct([]*pairing.G1{p1}, []*pairing.G2{q1})
	require.NoError(t, err)
	e2, err := pairing.PairingProduct([]*pairing.G1{p2}, []*pairing.G2{q2})
	require.NoError(t, err)
	prod, err := e1.Mul(e2)
	require.NoError(t, err)

	both, err := pairing.PairingProduct([]*pairing.G1{p1, p2}, []*pairing.G2{q1, q2})
	require.NoError(t, err)
	assert.True(t, prod.Equal(both))
	assert.False(t, e1.Equal(e2))
}

func TestEncodingRoundTrip(t *testing.T) {
	for _, c := range pairing.All() {
		t.Run(c.String(), func(t *testing.T) {
			g, err := pairing.RandomG1(c, rand.Reader)
			require.NoError(t, err)
			h, err := pairing.RandomG2(c, rand.Reader)
			require.NoError(t, err)
			gt, err := pairing.PairingProduct([]*pairing.G1{g}, []*pairing.G2{h})
			require.NoError(t, err)

			require.Len(t, g.Bytes(), c.G1Size())
			require.Len(t, h.Bytes(), c.G2Size())
			require.Len(t, gt.Bytes(), c.GTSize())

			g2, err := pairing.NewG1FromBytes(c, g.Bytes())
			require.NoError(t, err)
			assert.True(t, g2.Equal(g))
			h2, err := pairing.NewG2FromBytes(c, h.Bytes())
			require.NoError(t, err)
			assert.True(t, h2.Equal(h))
			gt2, err := pairing.NewGTFromBytes(c, gt.Bytes())
			require.NoError(t, err)
			assert.True(t, gt2.Equal(gt))

			_, err = pairing.NewG1FromBytes(c, g.Bytes()[1:])
			assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
		})
	}
}

func TestPairingProductValidation(t *testing.T) {
	g, err := pairing.RandomG1(pairing.BN254, rand.Reader)
	require.NoError(t, err)
	h, err := pairing.RandomG2(pairing.BLS12381, rand.Reader)
	require.NoError(t, err)

	_, err = pairing.PairingProduct([]*pairing.G1{g}, nil)
	assert.ErrorIs(t, err, commit.ErrLengthMismatch)

	_, err = pairing.PairingProduct([]*pairing.G1{g}, []*pairing.G2{h})
	assert.ErrorIs(t, err, commit.ErrCurveMismatch)
}

func TestRandomReaderFailure(t *testing.T) {
	_, err := pairing.RandomG2(pairing.BLS12381, iotest.ErrReader(iotest.ErrTimeout))
	assert.ErrorIs(t, err, commit.ErrRandomness)
	assert.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestParseCurve(t *testing.T) {
	c, err := pairing.ParseCurve("BLS12-381")
	require.NoError(t, err)
	assert.Equal(t, pairing.BLS12381, c)

	c, err = pairing.ParseCurve("bn254")
	require.NoError(t, err)
	assert.Equal(t, pairing.BN254, c)

	_, err = pairing.ParseCurve("secp256k1")
	assert.ErrorIs(t, err, commit.ErrInvalidParameter)
}
