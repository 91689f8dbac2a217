package elgamal_test

import (
	"crypto/rand"
	"testing"

	"github.com/coinbase/cb-commit-go/pkg/commit/curve"
	"github.com/coinbase/cb-commit-go/pkg/commit/elgamal"
)

func BenchmarkCommit(b *testing.B) {
	pk, err := elgamal.RandomPublicKey(curve.Ristretto255, rand.Reader)
	if err != nil {
		b.Fatalf("RandomPublicKey: %v", err)
	}
	m, err := curve.RandomPoint(curve.Ristretto255, rand.Reader)
	if err != nil {
		b.Fatalf("RandomPoint: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := elgamal.Create(m, pk, rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk, err := elgamal.RandomPublicKey(curve.Ristretto255, rand.Reader)
	if err != nil {
		b.Fatalf("RandomPublicKey: %v", err)
	}
	m, err := curve.RandomPoint(curve.Ristretto255, rand.Reader)
	if err != nil {
		b.Fatalf("RandomPoint: %v", err)
	}
	com, opening, err := elgamal.Create(m, pk, rand.Reader)
	if err != nil {
		b.Fatalf("Create: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !com.IsValid(pk, opening) {
			b.Fatal("valid opening rejected")
		}
	}
}
