package curve

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/cloudflare/circl/group"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// Curve identifies a prime-order group. This is a stable Go enum that is
// independent of the backend library implementing the group.
type Curve int

// Supported groups.
const (
	Unknown      Curve = iota // Unknown or unsupported curve
	Ristretto255              // Ristretto255 quotient of edwards25519
	P256                      // NIST P-256 (secp256r1)
	P384                      // NIST P-384 (secp384r1)
	P521                      // NIST P-521 (secp521r1)
	Secp256k1                 // Bitcoin secp256k1
	Ed25519                   // prime-order subgroup of edwards25519
)

// All lists every supported curve in enum order.
func All() []Curve {
	return []Curve{Ristretto255, P256, P384, P521, Secp256k1, Ed25519}
}

// String returns a human-readable name for the curve.
func (c Curve) String() string {
	switch c {
	case Ristretto255:
		return "ristretto255"
	case P256:
		return "P-256"
	case P384:
		return "P-384"
	case P521:
		return "P-521"
	case Secp256k1:
		return "secp256k1"
	case Ed25519:
		return "Ed25519"
	default:
		return "Unknown"
	}
}

// ParseCurve resolves a curve name case-insensitively. Both "P-256" and
// "p256" style spellings are accepted.
func ParseCurve(name string) (Curve, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "")
	for _, c := range All() {
		if strings.ReplaceAll(strings.ToLower(c.String()), "-", "") == norm {
			return c, nil
		}
	}
	return Unknown, commit.Errorf("curve.ParseCurve", "unknown curve %q: %w", name, commit.ErrInvalidParameter)
}

// ScalarSize returns the length in bytes of a canonical scalar encoding.
func (c Curve) ScalarSize() int {
	switch c {
	case Ristretto255, P256, Secp256k1, Ed25519:
		return 32
	case P384:
		return 48
	case P521:
		return 66
	default:
		return 0
	}
}

// PointSize returns the length in bytes of a canonical compressed point.
func (c Curve) PointSize() int {
	switch c {
	case Ristretto255, Ed25519:
		return 32
	case P256, Secp256k1:
		return 33
	case P384:
		return 49
	case P521:
		return 67
	default:
		return 0
	}
}

// Order returns a copy of the prime group order.
func (c Curve) Order() *big.Int {
	n := orderOf(c)
	if n == nil {
		return nil
	}
	return new(big.Int).Set(n)
}

var (
	order25519, _ = new(big.Int).SetString("7237005577332262213973186563042994240857116359379907606001950938285454250989", 10)
	orderP256     = elliptic.P256().Params().N
	orderP384     = elliptic.P384().Params().N
	orderP521     = elliptic.P521().Params().N
	orderK256     = btcec.Params().N
)

func orderOf(c Curve) *big.Int {
	switch c {
	case Ristretto255, Ed25519:
		return order25519
	case P256:
		return orderP256
	case P384:
		return orderP384
	case P521:
		return orderP521
	case Secp256k1:
		return orderK256
	default:
		return nil
	}
}

// backend produces the group arithmetic for one curve.
type backend interface {
	generator() element
	identity() element
	decode(b []byte) (element, error)
}

// element is a group element of a single backend. Scalars are passed as
// canonical big-endian bytes of ScalarSize length, already reduced.
type element interface {
	add(o element) element
	mul(k []byte) element
	equal(o element) bool
	encode() []byte
	isIdentity() bool
}

// multiScalarMulter is implemented by backends with a native
// multi-exponentiation.
type multiScalarMulter interface {
	multiScalarMult(ks [][]byte, ps []element) element
}

func backendFor(c Curve) (backend, error) {
	switch c {
	case Ristretto255:
		return circlBackend{g: group.Ristretto255, size: c.PointSize(), padIdentity: false}, nil
	case P256:
		return circlBackend{g: group.P256, size: c.PointSize(), padIdentity: true}, nil
	case P384:
		return circlBackend{g: group.P384, size: c.PointSize(), padIdentity: true}, nil
	case P521:
		return circlBackend{g: group.P521, size: c.PointSize(), padIdentity: true}, nil
	case Secp256k1:
		return secpBackend{}, nil
	case Ed25519:
		return edBackend{}, nil
	default:
		return nil, fmt.Errorf("curve %d: %w", int(c), commit.ErrInvalidParameter)
	}
}
