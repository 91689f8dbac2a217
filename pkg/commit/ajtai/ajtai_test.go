package ajtai_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/agreerandom"
	"github.com/coinbase/cb-commit-go/pkg/commit/ajtai"
	"github.com/coinbase/cb-commit-go/pkg/commit/internal/lattice"
)

func testParams(norm ajtai.Norm) ajtai.Params {
	return ajtai.Params{
		N:          4,
		M:          16,
		Q:          12289,
		Short:      2048,
		Sigma:      1.5,
		Norm:       norm,
		BasisBound: 1,
	}
}

func smallValue(q uint64, m int) *ajtai.Matrix {
	vals := make([]int64, m)
	for i := range vals {
		vals[i] = int64(i%3) - 1
	}
	return ajtai.NewColumn(q, vals...)
}

func constant(q uint64, m int, c int64) *ajtai.Matrix {
	vals := make([]int64, m)
	for i := range vals {
		vals[i] = c
	}
	return ajtai.NewColumn(q, vals...)
}

func TestCompleteness(t *testing.T) {
	for _, norm := range []ajtai.Norm{ajtai.NormBasis, ajtai.NormEuclidean} {
		t.Run(norm.String(), func(t *testing.T) {
			p := testParams(norm)
			pk, err := ajtai.RandomPublicKey(p, rand.Reader)
			require.NoError(t, err)

			v := smallValue(p.Q, p.M)
			com, opening, err := ajtai.Create(v, pk, rand.Reader)
			require.NoError(t, err)
			assert.True(t, com.IsValid(pk, opening))
			assert.True(t, ajtai.Verify(com, v, opening.Randomness(), pk))
			assert.True(t, pk.IsShort(opening.Randomness()))
		})
	}
}

func TestDefaultParamsCompleteness(t *testing.T) {
	if testing.Short() {
		t.Skip("samples a 64-dimensional basis")
	}
	p := ajtai.DefaultParams()
	pk, err := ajtai.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	com, opening, err := ajtai.Create(smallValue(p.Q, p.M), pk, rand.Reader)
	require.NoError(t, err)
	assert.True(t, com.IsValid(pk, opening))
}

func TestCreatePanicsOnNonColumnVector(t *testing.T) {
	p := testParams(ajtai.NormEuclidean)
	pk, err := ajtai.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)

	square := ajtai.NewMatrix(2, 2, p.Q, []int64{1, 2, 3, 4})
	assert.Panics(t, func() { _, _, _ = ajtai.Create(square, pk, rand.Reader) })
	assert.Panics(t, func() { _, _, _ = ajtai.Create(ajtai.NewColumn(p.Q, 1, 2), pk, rand.Reader) })
	assert.Panics(t, func() { _, _, _ = ajtai.Create(nil, pk, rand.Reader) })
	assert.Panics(t, func() { _, _, _ = ajtai.CreateWithRandomness(smallValue(p.Q, p.M), square, pk) })
}

func TestShapeMismatchRejected(t *testing.T) {
	p := testParams(ajtai.NormEuclidean)
	pk, err := ajtai.RandomPublicKey(p, rand.Reader)
	require.NoError(t, err)
	com, opening, err := ajtai.Create(smallValue(p.Q, p.M), pk, rand.Reader)
	require.NoError(t, err)

	assert.False(t, ajtai.Verify(com, ajtai.NewColumn(p.Q, 1), opening.Randomness(), pk))
	assert.False(t, ajtai.Verify(com, opening.Value(), ajtai.NewMatrix(1, p.M, p.Q, make([]int64, p.M)), pk))
	assert.False(t, ajtai.Verify(com, nil, opening.Randomness(), pk))
	assert.False(t, com.IsValid(pk, nil))
}

// fixedKey builds a key whose reference basis (if any) is the standard
// basis, so both norms agree exactly with the Euclidean one.
func fixedKey(t *testing.T, norm ajtai.Norm) *ajtai.PublicKey {
	t.Helper()
	p := testParams(norm)
	a1, err := lattice.SampleUniform(p.N, p.M, p.Q, rand.Reader)
	require.NoError(t, err)
	a2, err := lattice.SampleUniform(p.N, p.M, p.Q, rand.Reader)
	require.NoError(t, err)
	pk, err := ajtai.NewPublicKey(p, a1, a2, nil)
	require.NoError(t, err)
	return pk
}

func TestLongRandomnessRejected(t *testing.T) {
	for _, norm := range []ajtai.Norm{ajtai.NormBasis, ajtai.NormEuclidean} {
		t.Run(norm.String(), func(t *testing.T) {
			pk := fixedKey(t, norm)
			p := pk.Params()
			v := smallValue(p.Q, p.M)

			// 16 * 12^2 = 2304 is not below 2048.
			long := constant(p.Q, p.M, 12)
			com, opening, err := ajtai.CreateWithRandomness(v, long, pk)
			require.NoError(t, err)
			assert.InDelta(t, 2304, pk.Norm(long), 1e-6)
			assert.False(t, com.IsValid(pk, opening))

			// 16 * 11^2 = 1936 passes.
			ok := constant(p.Q, p.M, 11)
			com, opening, err = ajtai.CreateWithRandomness(v, ok, pk)
			require.NoError(t, err)
			assert.True(t, com.IsValid(pk, opening))
		})
	}
}

func TestLongValueRejected(t *testing.T) {
	pk := fixedKey(t, ajtai.NormEuclidean)
	p := pk.Params()
	com, opening, err := ajtai.Create(constant(p.Q, p.M, 12), pk, rand.Reader)
	require.NoError(t, err)
	assert.False(t, com.IsValid(pk, opening))
}

func TestKernelShiftedOpeningRejected(t *testing.T) {
	for _, norm := range []ajtai.Norm{ajtai.NormBasis, ajtai.NormEuclidean} {
		t.Run(norm.String(), func(t *testing.T) {
			p := testParams(norm)
			pk, err := ajtai.RandomPublicKey(p, rand.Reader)
			require.NoError(t, err)
			v := smallValue(p.Q, p.M)
			com, opening, err := ajtai.Create(v, pk, rand.Reader)
			require.NoError(t, err)

			k := lattice.KernelVector(pk.A1())
			require.NotNil(t, k)
			forged := lattice.Add(v, k)
			require.False(t, forged.Equal(v))

			// The forged value collides algebraically ...
			recomputed := lattice.Add(lattice.Mul(pk.A1(), forged), lattice.Mul(pk.A2(), opening.Randomness()))
			assert.True(t, recomputed.Equal(com.Vector()))
			// ... but is not short, so the opening is refused.
			assert.False(t, ajtai.Verify(com, forged, opening.Randomness(), pk))
		})
	}
}

func TestSwappedOpeningRejected(t *testing.T) {
	pk := fixedKey(t, ajtai.NormEuclidean)
	p := pk.Params()
	com, opening, err := ajtai.Create(smallValue(p.Q, p.M), pk, rand.Reader)
	require.NoError(t, err)
	assert.False(t, ajtai.Verify(com, opening.Randomness(), opening.Value(), pk))
}

func TestDistinctValuesDistinctCommitments(t *testing.T) {
	pk := fixedKey(t, ajtai.NormEuclidean)
	p := pk.Params()
	r := constant(p.Q, p.M, 1)
	c1, _, err := ajtai.CreateWithRandomness(constant(p.Q, p.M, 0), r, pk)
	require.NoError(t, err)
	c2, _, err := ajtai.CreateWithRandomness(constant(p.Q, p.M, 1), r, pk)
	require.NoError(t, err)
	assert.False(t, c1.Equal(c2))
}

func TestDeterministicWithFixedReader(t *testing.T) {
	seed := bytes.Repeat([]byte{9}, 32)
	p := testParams(ajtai.NormBasis)
	pk1, err := ajtai.RandomPublicKey(p, agreerandom.MustReader(seed, "ajtai"))
	require.NoError(t, err)
	pk2, err := ajtai.RandomPublicKey(p, agreerandom.MustReader(seed, "ajtai"))
	require.NoError(t, err)
	assert.True(t, pk1.Equal(pk2))

	v := smallValue(p.Q, p.M)
	c1, _, err := ajtai.Create(v, pk1, agreerandom.MustReader(seed, "r"))
	require.NoError(t, err)
	c2, _, err := ajtai.Create(v, pk2, agreerandom.MustReader(seed, "r"))
	require.NoError(t, err)
	assert.True(t, c1.Equal(c2))
}

func TestReaderFailure(t *testing.T) {
	p := testParams(ajtai.NormEuclidean)
	failing := iotest.ErrReader(errors.New("entropy exhausted"))

	_, err := ajtai.RandomPublicKey(p, failing)
	assert.ErrorIs(t, err, commit.ErrRandomness)

	pk := fixedKey(t, ajtai.NormEuclidean)
	com, opening, err := ajtai.Create(smallValue(p.Q, p.M), pk, failing)
	assert.ErrorIs(t, err, commit.ErrRandomness)
	assert.Nil(t, com)
	assert.Nil(t, opening)
}

func TestSamplingExhausted(t *testing.T) {
	p := testParams(ajtai.NormEuclidean)
	p.Short = 1 // only the zero vector qualifies
	a := ajtai.NewMatrix(p.N, p.M, p.Q, make([]int64, p.N*p.M))
	pk, err := ajtai.NewPublicKey(p, a, a, nil)
	require.NoError(t, err)

	_, _, err = ajtai.Create(smallValue(p.Q, p.M), pk, rand.Reader)
	assert.ErrorIs(t, err, commit.ErrSamplingExhausted)
}

func TestParams(t *testing.T) {
	assert.NoError(t, ajtai.DefaultParams().Validate())

	bad := []func(*ajtai.Params){
		func(p *ajtai.Params) { p.N = 0 },
		func(p *ajtai.Params) { p.Q = 1 << 33 },
		func(p *ajtai.Params) { p.Short = 0 },
		func(p *ajtai.Params) { p.Sigma = -1 },
		func(p *ajtai.Params) { p.Norm = ajtai.Norm(7) },
		func(p *ajtai.Params) { p.BasisBound = 0 },
		func(p *ajtai.Params) { p.M = 2048 },
	}
	for i, mutate := range bad {
		p := ajtai.DefaultParams()
		mutate(&p)
		assert.ErrorIs(t, p.Validate(), commit.ErrInvalidParameter, "case %d", i)
	}
}

func TestParamsFromConfig(t *testing.T) {
	cfg := commit.DefaultConfig()
	p, err := ajtai.ParamsFromConfig(cfg.Lattice)
	require.NoError(t, err)
	assert.Equal(t, ajtai.DefaultParams(), p)

	cfg.Lattice.Norm = "euclidean"
	p, err = ajtai.ParamsFromConfig(cfg.Lattice)
	require.NoError(t, err)
	assert.Equal(t, ajtai.NormEuclidean, p.Norm)

	cfg.Lattice.Norm = "manhattan"
	_, err = ajtai.ParamsFromConfig(cfg.Lattice)
	assert.ErrorIs(t, err, commit.ErrInvalidParameter)
}

func TestNewPublicKeyRejectsWrongShape(t *testing.T) {
	p := testParams(ajtai.NormEuclidean)
	a := ajtai.NewMatrix(p.N, p.M, p.Q, make([]int64, p.N*p.M))
	wrong := ajtai.NewMatrix(p.N, p.M-1, p.Q, make([]int64, p.N*(p.M-1)))
	_, err := ajtai.NewPublicKey(p, a, wrong, nil)
	assert.ErrorIs(t, err, commit.ErrInvalidParameter)
}

func TestEncodingRoundTrip(t *testing.T) {
	for _, norm := range []ajtai.Norm{ajtai.NormBasis, ajtai.NormEuclidean} {
		t.Run(norm.String(), func(t *testing.T) {
			p := testParams(norm)
			pk, err := ajtai.RandomPublicKey(p, rand.Reader)
			require.NoError(t, err)
			com, opening, err := ajtai.Create(smallValue(p.Q, p.M), pk, rand.Reader)
			require.NoError(t, err)

			pkBytes, err := pk.MarshalBinary()
			require.NoError(t, err)
			pk2, err := ajtai.UnmarshalPublicKey(p, pkBytes)
			require.NoError(t, err)
			assert.True(t, pk.Equal(pk2))

			comBytes, err := com.MarshalBinary()
			require.NoError(t, err)
			com2, err := ajtai.UnmarshalCommitment(comBytes)
			require.NoError(t, err)
			assert.True(t, com.Equal(com2))

			oBytes, err := opening.MarshalBinary()
			require.NoError(t, err)
			o2, err := ajtai.UnmarshalOpeningInfo(oBytes)
			require.NoError(t, err)
			assert.True(t, com2.IsValid(pk2, o2))

			_, err = ajtai.UnmarshalPublicKey(p, pkBytes[:len(pkBytes)-3])
			assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
			other := p
			other.N++
			_, err = ajtai.UnmarshalPublicKey(other, pkBytes)
			assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
		})
	}
}

func TestSchemeInterface(t *testing.T) {
	p := testParams(ajtai.NormBasis)
	s := ajtai.NewScheme(p)
	assert.Equal(t, "ajtai", s.Name())
	pk, err := s.GenerateKey(rand.Reader)
	require.NoError(t, err)
	_, _, ok, err := commit.RoundTrip[*ajtai.PublicKey, *ajtai.Matrix, *ajtai.Commitment, *ajtai.OpeningInfo](s, smallValue(p.Q, p.M), pk, rand.Reader)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParseNorm(t *testing.T) {
	n, err := ajtai.ParseNorm("Basis")
	require.NoError(t, err)
	assert.Equal(t, ajtai.NormBasis, n)
	n, err = ajtai.ParseNorm("")
	require.NoError(t, err)
	assert.Equal(t, ajtai.NormBasis, n)
	assert.Equal(t, "euclidean", ajtai.NormEuclidean.String())
}
