package bdlop_test

import (
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/bdlop"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

func testParams() bdlop.Params {
	return bdlop.Params{N: 4, K: 16, L: 4, Q: 12289, Beta: 10}
}

func message(p bdlop.Params, vals ...int64) *bdlop.Matrix {
	out := make([]int64, p.L)
	copy(out, vals)
	return bdlop.NewColumn(p.Q, out...)
}

func TestCompleteness(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)

	msg := message(p, 1, 2, 3, 4)
	com, opening, err := bdlop.Create(msg, pk, rand.Reader)
	require.NoError(t, err)
	assert.True(t, com.IsValid(pk, opening))
	assert.Less(t, opening.Randomness().NormInfinity(), p.Beta)
	assert.True(t, opening.Message().Equal(msg))
}

func TestKeyStructure(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	a1, a2 := pk.A1(), pk.A2()
	assert.Equal(t, p.N, a1.Rows())
	assert.Equal(t, p.K, a1.Cols())
	assert.Equal(t, p.L, a2.Rows())
	assert.Equal(t, p.K, a2.Cols())
	for i := 0; i < p.N; i++ {
		assert.Equal(t, uint64(1), a1.At(i, i))
	}
	for i := 0; i < p.L; i++ {
		for j := 0; j < p.N; j++ {
			assert.Zero(t, a2.At(i, j))
		}
		assert.Equal(t, uint64(1), a2.At(i, p.N+i))
	}
}

func TestRandomnessAtBoundRejected(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	msg := message(p, 7)

	vals := make([]int64, p.K)
	vals[3] = -int64(p.Beta)
	com, opening, err := bdlop.CreateWithRandomness(msg, bdlop.NewColumn(p.Q, vals...), pk)
	require.NoError(t, err)
	assert.False(t, com.IsValid(pk, opening))

	vals[3] = int64(p.Beta) - 1
	com, opening, err = bdlop.CreateWithRandomness(msg, bdlop.NewColumn(p.Q, vals...), pk)
	require.NoError(t, err)
	assert.True(t, com.IsValid(pk, opening))
}

func TestWrongMessageRejected(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	com, opening, err := bdlop.Create(message(p, 1), pk, rand.Reader)
	require.NoError(t, err)

	forged := bdlop.NewOpeningInfo(message(p, 2), opening.Randomness())
	assert.False(t, com.IsValid(pk, forged))
}

func TestMessageRecoverableOnlyWithRandomness(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	msg := message(p, 5, -5, 0, 1)
	com, opening, err := bdlop.Create(msg, pk, rand.Reader)
	require.NoError(t, err)

	recovered := lattice.Sub(com.Masked(), lattice.Mul(pk.A2(), opening.Randomness()))
	assert.True(t, recovered.Equal(msg))
	assert.True(t, com.Binding().Equal(lattice.Mul(pk.A1(), opening.Randomness())))
}

func TestCreatePanicsOnBadShape(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	assert.Panics(t, func() { _, _, _ = bdlop.Create(bdlop.NewColumn(p.Q, 1, 2), pk, rand.Reader) })
	assert.Panics(t, func() { _, _, _ = bdlop.CreateWithRandomness(message(p), bdlop.NewColumn(p.Q, 1), pk) })
}

func TestShapeMismatchRejected(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	com, opening, err := bdlop.Create(message(p, 1), pk, rand.Reader)
	require.NoError(t, err)

	short := bdlop.NewOpeningInfo(bdlop.NewColumn(p.Q, 1), opening.Randomness())
	assert.False(t, com.IsValid(pk, short))
	assert.False(t, com.IsValid(pk, nil))
}

func TestReaderFailure(t *testing.T) {
	p := testParams()
	failing := iotest.ErrReader(errors.New("entropy exhausted"))
	_, err := bdlop.RandomPublicKey(p, failing)
	assert.ErrorIs(t, err, commit.ErrRandomness)

	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	com, opening, err := bdlop.Create(message(p, 1), pk, failing)
	assert.ErrorIs(t, err, commit.ErrRandomness)
	assert.Nil(t, com)
	assert.Nil(t, opening)
}

func TestParams(t *testing.T) {
	assert.NoError(t, bdlop.DefaultParams().Validate())

	p, err := bdlop.ParamsFromConfig(commit.DefaultConfig().BDLOP)
	require.NoError(t, err)
	assert.Equal(t, bdlop.DefaultParams(), p)

	bad := []bdlop.Params{
		{N: 4, K: 8, L: 4, Q: 12289, Beta: 10},
		{N: 0, K: 8, L: 4, Q: 12289, Beta: 10},
		{N: 4, K: 16, L: 4, Q: 1, Beta: 10},
		{N: 4, K: 16, L: 4, Q: 12289, Beta: 0},
		{N: 4, K: 16, L: 4, Q: 11, Beta: 10},
	}
	for i, b := range bad {
		assert.ErrorIs(t, b.Validate(), commit.ErrInvalidParameter, "case %d", i)
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	p := testParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	com, opening, err := bdlop.Create(message(p, 3, 1, 4, 1), pk, rand.Reader)
	require.NoError(t, err)

	pkBytes, err := pk.MarshalBinary()
	require.NoError(t, err)
	pk2, err := bdlop.UnmarshalPublicKey(p, pkBytes)
	require.NoError(t, err)
	assert.True(t, pk.Equal(pk2))

	comBytes, err := com.MarshalBinary()
	require.NoError(t, err)
	com2, err := bdlop.UnmarshalCommitment(comBytes)
	require.NoError(t, err)
	assert.True(t, com.Equal(com2))

	oBytes, err := opening.MarshalBinary()
	require.NoError(t, err)
	o2, err := bdlop.UnmarshalOpeningInfo(oBytes)
	require.NoError(t, err)
	assert.True(t, com2.IsValid(pk2, o2))

	// Flip the first identity entry of A1 (after the 16 byte header).
	tampered := append([]byte(nil), pkBytes...)
	tampered[16+7] = 0
	_, err = bdlop.UnmarshalPublicKey(p, tampered)
	assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
}

func TestSchemeInterface(t *testing.T) {
	p := testParams()
	s := bdlop.NewScheme(p)
	assert.Equal(t, "bdlop", s.Name())
	pk, err := s.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, _, ok, err := commit.RoundTrip[*bdlop.PublicKey, *bdlop.Matrix, *bdlop.Commitment, *bdlop.OpeningInfo](s, message(p, 1), pk, rand.Reader)
	require.NoError(t, err)
	assert.True(t, ok)
}
