package agreerandom

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// MinSeedSize is the shortest seed NewReader accepts.
const MinSeedSize = 16

type reader struct {
	stream *chacha20.Cipher
}

// NewReader returns a deterministic byte stream keyed by seed and label.
// Two readers built from the same seed and label produce the same bytes, so
// parties that agree on a seed can derive the same public key without
// exchanging it. Different labels give independent streams.
//
// The reader is not safe for concurrent use.
func NewReader(seed []byte, label string) (io.Reader, error) {
	const op = "agreerandom.NewReader"
	if len(seed) < MinSeedSize {
		return nil, commit.Errorf(op, "seed has %d bytes, need at least %d: %w", len(seed), MinSeedSize, commit.ErrInvalidParameter)
	}
	okm := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	defer commit.ZeroizeBytes(okm)
	kdf := hkdf.New(sha256.New, seed, nil, []byte("cb-commit-go/agreerandom/"+label))
	if _, err := io.ReadFull(kdf, okm); err != nil {
		return nil, commit.WrapError(op, err)
	}
	stream, err := chacha20.NewUnauthenticatedCipher(okm[:chacha20.KeySize], okm[chacha20.KeySize:])
	if err != nil {
		return nil, commit.WrapError(op, err)
	}
	return &reader{stream: stream}, nil
}

// MustReader is like NewReader but panics on a short seed. It is intended
// for fixtures with compile-time seeds.
func MustReader(seed []byte, label string) io.Reader {
	r, err := NewReader(seed, label)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *reader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.stream.XORKeyStream(p, p)
	return len(p), nil
}

// CombineSeeds folds the contributions of several parties into one seed.
// Every contribution must be at least MinSeedSize bytes. The result depends
// on the order of the contributions.
func CombineSeeds(label string, contributions ...[]byte) ([]byte, error) {
	const op = "agreerandom.CombineSeeds"
	if len(contributions) == 0 {
		return nil, commit.Errorf(op, "no contributions: %w", commit.ErrInvalidParameter)
	}
	h := sha256.New()
	for i, c := range contributions {
		if len(c) < MinSeedSize {
			return nil, commit.Errorf(op, "contribution %d has %d bytes: %w", i, len(c), commit.ErrInvalidParameter)
		}
		var prefix [4]byte
		binary.BigEndian.PutUint32(prefix[:], uint32(len(c))) // #nosec G115 -- seeds are small
		h.Write(prefix[:])
		h.Write(c)
	}
	out := make([]byte, sha256.Size)
	kdf := hkdf.New(sha256.New, h.Sum(nil), nil, []byte("cb-commit-go/combine/"+label))
	if _, err := io.ReadFull(kdf, out); err != nil {
		return nil, commit.WrapError(op, err)
	}
	return out, nil
}
