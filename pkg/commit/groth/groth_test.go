package groth_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/agreerandom"
	"github.com/coinbase/cb-commit-go/pkg/commit/groth"
	"github.com/coinbase/cb-commit-go/pkg/commit/pairing"
)

func setup(t *testing.T, c pairing.Curve, n int) (*groth.PublicKey, *groth.Message) {
	t.Helper()
	pk, err := groth.RandomPublicKey(c, n, rand.Reader)
	require.NoError(t, err)
	msg, err := groth.RandomMessage(c, n, rand.Reader)
	require.NoError(t, err)
	return pk, msg
}

func TestCompleteness(t *testing.T) {
	for _, c := range pairing.All() {
		t.Run(c.String(), func(t *testing.T) {
			pk, msg := setup(t, c, 4)
			com, opening, err := groth.Create(msg, pk, rand.Reader)
			require.NoError(t, err)
			assert.True(t, com.IsValid(pk, opening))
			assert.True(t, opening.Message().Equal(msg))
		})
	}
}

func TestNewMessageRejectsLengthMismatch(t *testing.T) {
	pk, err := groth.RandomPublicKey(pairing.BN254, 16, rand.Reader)
	require.NoError(t, err)
	short, err := groth.RandomMessage(pairing.BN254, 8, rand.Reader)
	require.NoError(t, err)

	_, err = pk.NewMessage(short.Elements())
	require.Error(t, err)
	assert.ErrorIs(t, err, commit.ErrLengthMismatch)
}

func TestCreateRejectsLengthMismatch(t *testing.T) {
	pk, err := groth.RandomPublicKey(pairing.BN254, 4, rand.Reader)
	require.NoError(t, err)
	msg, err := groth.RandomMessage(pairing.BN254, 3, rand.Reader)
	require.NoError(t, err)

	com, opening, err := groth.Create(msg, pk, rand.Reader)
	assert.ErrorIs(t, err, commit.ErrLengthMismatch)
	assert.Nil(t, com)
	assert.Nil(t, opening)
}

func TestIsValidRejectsLengthMismatch(t *testing.T) {
	pk, msg := setup(t, pairing.BN254, 3)
	com, opening, err := groth.Create(msg, pk, rand.Reader)
	require.NoError(t, err)

	longer, err := groth.RandomMessage(pairing.BN254, 4, rand.Reader)
	require.NoError(t, err)
	bad, err := groth.NewOpeningInfo(longer, opening.R(), opening.S())
	require.NoError(t, err)
	assert.False(t, com.IsValid(pk, bad))
}

func TestCurveMismatch(t *testing.T) {
	pk, err := groth.RandomPublicKey(pairing.BN254, 2, rand.Reader)
	require.NoError(t, err)
	msg, err := groth.RandomMessage(pairing.BLS12381, 2, rand.Reader)
	require.NoError(t, err)

	_, err = pk.NewMessage(msg.Elements())
	assert.ErrorIs(t, err, commit.ErrCurveMismatch)
	_, _, err = groth.Create(msg, pk, rand.Reader)
	assert.ErrorIs(t, err, commit.ErrCurveMismatch)
}

func TestSwappedBlindingRejected(t *testing.T) {
	pk, msg := setup(t, pairing.BN254, 3)
	com, opening, err := groth.Create(msg, pk, rand.Reader)
	require.NoError(t, err)

	swapped, err := groth.NewOpeningInfo(msg, opening.S(), opening.R())
	require.NoError(t, err)
	assert.False(t, com.IsValid(pk, swapped))
}

func TestWrongMessageRejected(t *testing.T) {
	pk, msg := setup(t, pairing.BLS12381, 3)
	com, opening, err := groth.Create(msg, pk, rand.Reader)
	require.NoError(t, err)

	elems := msg.Elements()
	elems[1], elems[2] = elems[2], elems[1]
	other, err := pk.NewMessage(elems)
	require.NoError(t, err)
	forged, err := groth.NewOpeningInfo(other, opening.R(), opening.S())
	require.NoError(t, err)
	assert.False(t, com.IsValid(pk, forged))
}

func TestDistinctMessagesDistinctCommitments(t *testing.T) {
	pk, msg := setup(t, pairing.BN254, 2)
	other, err := groth.RandomMessage(pairing.BN254, 2, rand.Reader)
	require.NoError(t, err)

	r, err := pairing.RandomG2(pairing.BN254, rand.Reader)
	require.NoError(t, err)
	s, err := pairing.RandomG2(pairing.BN254, rand.Reader)
	require.NoError(t, err)

	c1, _, err := groth.CreateWithRandomness(msg, r, s, pk)
	require.NoError(t, err)
	c2, _, err := groth.CreateWithRandomness(other, r, s, pk)
	require.NoError(t, err)
	assert.False(t, c1.Equal(c2))
}

func TestDeterministicWithFixedReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0x42}, 32)
	pk, msg := setup(t, pairing.BN254, 2)

	c1, o1, err := groth.Create(msg, pk, agreerandom.MustReader(seed, "groth-test"))
	require.NoError(t, err)
	c2, o2, err := groth.Create(msg, pk, agreerandom.MustReader(seed, "groth-test"))
	require.NoError(t, err)

	assert.True(t, c1.Equal(c2))
	assert.True(t, o1.R().Equal(o2.R()))
	assert.True(t, o1.S().Equal(o2.S()))
}

func TestReaderFailure(t *testing.T) {
	pk, msg := setup(t, pairing.BN254, 2)
	failing := iotest.ErrReader(errors.New("entropy exhausted"))

	com, opening, err := groth.Create(msg, pk, failing)
	require.Error(t, err)
	assert.ErrorIs(t, err, commit.ErrRandomness)
	assert.Nil(t, com)
	assert.Nil(t, opening)

	_, err = groth.RandomPublicKey(pairing.BN254, 2, failing)
	assert.ErrorIs(t, err, commit.ErrRandomness)
}

func TestZeroBlindingCommitsToMessageOnly(t *testing.T) {
	c := pairing.BN254
	pk, msg := setup(t, c, 1)
	zero, err := pairing.MulG2Generator(c, big.NewInt(0))
	require.NoError(t, err)

	com, opening, err := groth.CreateWithRandomness(msg, zero, zero, pk)
	require.NoError(t, err)
	assert.True(t, com.IsValid(pk, opening))
}

func TestInvalidKeyParameters(t *testing.T) {
	_, err := groth.RandomPublicKey(pairing.BN254, 0, rand.Reader)
	assert.ErrorIs(t, err, commit.ErrInvalidParameter)

	_, err = groth.NewMessage(nil)
	assert.ErrorIs(t, err, commit.ErrInvalidParameter)
}

func TestEncodingRoundTrip(t *testing.T) {
	for _, c := range pairing.All() {
		t.Run(c.String(), func(t *testing.T) {
			pk, msg := setup(t, c, 3)
			com, opening, err := groth.Create(msg, pk, rand.Reader)
			require.NoError(t, err)

			pkBytes, err := pk.MarshalBinary()
			require.NoError(t, err)
			pk2, err := groth.UnmarshalPublicKey(c, pkBytes)
			require.NoError(t, err)
			assert.True(t, pk.Equal(pk2))

			comBytes, err := com.MarshalBinary()
			require.NoError(t, err)
			assert.Len(t, comBytes, 2*c.GTSize())
			com2, err := groth.UnmarshalCommitment(c, comBytes)
			require.NoError(t, err)

			oBytes, err := opening.MarshalBinary()
			require.NoError(t, err)
			o2, err := groth.UnmarshalOpeningInfo(c, oBytes)
			require.NoError(t, err)

			assert.True(t, com2.IsValid(pk2, o2))

			_, err = groth.UnmarshalPublicKey(c, pkBytes[:len(pkBytes)-1])
			assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
			_, err = groth.UnmarshalOpeningInfo(c, append(oBytes, 0))
			assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
		})
	}
}

func TestSchemeInterface(t *testing.T) {
	s := groth.NewScheme(pairing.BN254, 2)
	assert.Equal(t, "groth", s.Name())

	pk, err := s.GenerateKey(rand.Reader)
	require.NoError(t, err)
	msg, err := groth.RandomMessage(pairing.BN254, 2, rand.Reader)
	require.NoError(t, err)

	_, _, ok, err := commit.RoundTrip[*groth.PublicKey, *groth.Message, *groth.Commitment, *groth.OpeningInfo](s, msg, pk, rand.Reader)
	require.NoError(t, err)
	assert.True(t, ok)
}
