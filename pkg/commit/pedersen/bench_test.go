package pedersen_test

import (
	"crypto/rand"
	"testing"

	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
	"github.com/coinbase/cb-commit-go/pkg/commit/pedersen"
)

func BenchmarkCommit(b *testing.B) {
	for _, c := range []curve.Curve{curve.Ristretto255, curve.Ed25519, curve.Secp256k1, curve.P256} {
		pk, err := pedersen.RandomPublicKey(c, rand.Reader)
		if err != nil {
			b.Fatalf("RandomPublicKey: %v", err)
		}
		v, err := curve.RandomScalar(c, rand.Reader)
		if err != nil {
			b.Fatalf("RandomScalar: %v", err)
		}
		b.Run(c.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := pedersen.Create(v, pk, rand.Reader); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, c := range []curve.Curve{curve.Ristretto255, curve.Ed25519, curve.Secp256k1, curve.P256} {
		pk, err := pedersen.RandomPublicKey(c, rand.Reader)
		if err != nil {
			b.Fatalf("RandomPublicKey: %v", err)
		}
		v, err := curve.RandomScalar(c, rand.Reader)
		if err != nil {
			b.Fatalf("RandomScalar: %v", err)
		}
		com, opening, err := pedersen.Create(v, pk, rand.Reader)
		if err != nil {
			b.Fatalf("Create: %v", err)
		}
		b.Run(c.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if !com.IsValid(pk, opening) {
					b.Fatal("valid opening rejected")
				}
			}
		})
	}
}
