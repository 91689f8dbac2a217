package commit

import "io"

// Scheme is the capability set shared by every commitment construction in
// this module. K is the public key type, M the message type, C the
// commitment type and O the opening information.
//
// Implementations are stateless values; every method may be called
// concurrently. Verify reports a bad opening by returning false and never
// panics on well-formed inputs.
type Scheme[K, M, C, O any] interface {
	Name() string
	GenerateKey(rng io.Reader) (K, error)
	Commit(msg M, pk K, rng io.Reader) (C, O, error)
	Verify(c C, pk K, o O) bool
}

// RoundTrip commits to msg under pk and checks that the fresh opening
// verifies. It returns the commitment and opening so callers can run
// further checks against them.
func RoundTrip[K, M, C, O any](s Scheme[K, M, C, O], msg M, pk K, rng io.Reader) (C, O, bool, error) {
	c, o, err := s.Commit(msg, pk, rng)
	if err != nil {
		var zc C
		var zo O
		return zc, zo, false, WrapError(s.Name()+".RoundTrip", err)
	}
	return c, o, s.Verify(c, pk, o), nil
}
