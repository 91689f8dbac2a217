package commit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter indicates an invalid parameter was provided
	ErrInvalidParameter = errors.New("commit: invalid parameter")

	// ErrRandomness indicates the randomness source failed to deliver bytes
	ErrRandomness = errors.New("commit: randomness source failure")

	// ErrCurveMismatch indicates inputs defined over different groups were combined
	ErrCurveMismatch = errors.New("commit: curve mismatch")

	// ErrLengthMismatch indicates a vector length does not match the public key
	ErrLengthMismatch = errors.New("commit: length mismatch")

	// ErrInvalidEncoding indicates a canonical encoding could not be decoded
	ErrInvalidEncoding = errors.New("commit: invalid encoding")

	// ErrSamplingExhausted indicates rejection sampling ran out of attempts
	ErrSamplingExhausted = errors.New("commit: sampling attempts exhausted")

	// ErrUnknownScheme indicates a scheme name is not recognised
	ErrUnknownScheme = errors.New("commit: unknown scheme")

	// ErrSchemeDisabled indicates a scheme was compiled out with a build tag
	ErrSchemeDisabled = errors.New("commit: scheme disabled at build time")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates a new Error for op.
func Errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}

// WrapError attaches op to err. A nil err stays nil.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// RandomnessError reports a failed read from a caller supplied randomness
// source. The result matches ErrRandomness and the cause under errors.Is.
func RandomnessError(op string, cause error) error {
	return &Error{Op: op, Err: fmt.Errorf("%w: %w", ErrRandomness, cause)}
}
