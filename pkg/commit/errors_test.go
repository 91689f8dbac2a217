package commit_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

func TestRandomnessErrorMatchesBoth(t *testing.T) {
	err := commit.RandomnessError("pedersen.Create", io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, commit.ErrRandomness))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	var ce *commit.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "pedersen.Create", ce.Op)
	assert.Equal(t, "pedersen.Create: commit: randomness source failure: unexpected EOF", err.Error())
}

func TestWrapErrorNil(t *testing.T) {
	assert.NoError(t, commit.WrapError("op", nil))

	err := commit.WrapError("op", commit.ErrCurveMismatch)
	assert.ErrorIs(t, err, commit.ErrCurveMismatch)
}

func TestErrorf(t *testing.T) {
	err := commit.Errorf("groth.Create", "got %d elements: %w", 8, commit.ErrLengthMismatch)
	assert.ErrorIs(t, err, commit.ErrLengthMismatch)
	assert.Equal(t, "groth.Create: got 8 elements: commit: length mismatch", err.Error())
}

func TestNestedOpsReadAsAChain(t *testing.T) {
	inner := commit.Errorf("curve.NewPointFromBytes", "bad length: %w", commit.ErrInvalidEncoding)
	err := commit.WrapError("pedersen.UnmarshalCommitment", inner)

	assert.ErrorIs(t, err, commit.ErrInvalidEncoding)
	assert.Equal(t,
		"pedersen.UnmarshalCommitment: curve.NewPointFromBytes: bad length: commit: invalid encoding",
		err.Error())
}
