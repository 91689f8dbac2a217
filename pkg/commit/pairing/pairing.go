package pairing

import (
	"encoding/hex"
	"io"
	"math/big"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/coinbase/cb-commit-go/pkg/commit"
)

// Curve identifies a pairing-friendly curve.
type Curve int

const (
	Unknown  Curve = iota // Unknown or unsupported curve
	BN254                 // Barreto-Naehrig curve with 254-bit prime
	BLS12381              // BLS12-381
)

// All lists every supported pairing curve.
func All() []Curve {
	return []Curve{BN254, BLS12381}
}

// String returns a human-readable name for the curve.
func (c Curve) String() string {
	switch c {
	case BN254:
		return "bn254"
	case BLS12381:
		return "bls12-381"
	default:
		return "Unknown"
	}
}

// ParseCurve resolves a pairing curve name case-insensitively.
func ParseCurve(name string) (Curve, error) {
	norm := strings.ReplaceAll(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", ""), "_", "")
	switch norm {
	case "bn254", "bn256":
		return BN254, nil
	case "bls12381":
		return BLS12381, nil
	default:
		return Unknown, commit.Errorf("pairing.ParseCurve", "unknown pairing curve %q: %w", name, commit.ErrInvalidParameter)
	}
}

// Order returns the prime order of G1, G2 and GT.
func (c Curve) Order() *big.Int {
	switch c {
	case BN254:
		return bnfr.Modulus()
	case BLS12381:
		return blsfr.Modulus()
	default:
		return nil
	}
}

// G1Size returns the length of a compressed G1 encoding.
func (c Curve) G1Size() int {
	switch c {
	case BN254:
		return bn254.SizeOfG1AffineCompressed
	case BLS12381:
		return bls12381.SizeOfG1AffineCompressed
	default:
		return 0
	}
}

// G2Size returns the length of a compressed G2 encoding.
func (c Curve) G2Size() int {
	switch c {
	case BN254:
		return bn254.SizeOfG2AffineCompressed
	case BLS12381:
		return bls12381.SizeOfG2AffineCompressed
	default:
		return 0
	}
}

// GTSize returns the length of a target group encoding.
func (c Curve) GTSize() int {
	switch c {
	case BN254:
		return bn254.SizeOfGT
	case BLS12381:
		return bls12381.SizeOfGT
	default:
		return 0
	}
}

func (c Curve) check(op string) error {
	if c != BN254 && c != BLS12381 {
		return commit.Errorf(op, "curve %d: %w", int(c), commit.ErrInvalidParameter)
	}
	return nil
}

// RandomScalar draws a field element of the scalar field from rng, reading
// 16 bytes more than the modulus size and reducing.
func RandomScalar(c Curve, rng io.Reader) (*big.Int, error) {
	const op = "pairing.RandomScalar"
	if err := c.check(op); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, commit.Errorf(op, "nil randomness source: %w", commit.ErrInvalidParameter)
	}
	n := c.Order()
	wide := make([]byte, (n.BitLen()+7)/8+16)
	defer commit.ZeroizeBytes(wide)
	if _, err := io.ReadFull(rng, wide); err != nil {
		return nil, commit.RandomnessError(op, err)
	}
	k := new(big.Int).SetBytes(wide)
	return k.Mod(k, n), nil
}

// PairingProduct returns the product of e(p[i], q[i]) computed as a single
// multi-pairing.
func PairingProduct(p []*G1, q []*G2) (*GT, error) {
	const op = "pairing.PairingProduct"
	if len(p) != len(q) || len(p) == 0 {
		return nil, commit.Errorf(op, "%d G1 and %d G2 elements: %w", len(p), len(q), commit.ErrLengthMismatch)
	}
	c := p[0].Curve()
	for i := range p {
		if p[i] == nil || q[i] == nil {
			return nil, commit.Errorf(op, "nil element at %d: %w", i, commit.ErrInvalidParameter)
		}
		if p[i].curve != c || q[i].curve != c {
			return nil, commit.Errorf(op, "element %d: %w", i, commit.ErrCurveMismatch)
		}
	}
	switch c {
	case BN254:
		ps := make([]bn254.G1Affine, len(p))
		qs := make([]bn254.G2Affine, len(q))
		for i := range p {
			ps[i] = p[i].bn
			qs[i] = q[i].bn
		}
		gt, err := bn254.Pair(ps, qs)
		if err != nil {
			return nil, commit.WrapError(op, err)
		}
		return &GT{curve: c, bn: gt}, nil
	case BLS12381:
		ps := make([]bls12381.G1Affine, len(p))
		qs := make([]bls12381.G2Affine, len(q))
		for i := range p {
			ps[i] = p[i].bls
			qs[i] = q[i].bls
		}
		gt, err := bls12381.Pair(ps, qs)
		if err != nil {
			return nil, commit.WrapError(op, err)
		}
		return &GT{curve: c, bls: gt}, nil
	default:
		return nil, commit.Errorf(op, "curve %s: %w", c, commit.ErrInvalidParameter)
	}
}

func shortHex(b []byte) string {
	if len(b) > 4 {
		b = b[:4]
	}
	return hex.EncodeToString(b)
}
