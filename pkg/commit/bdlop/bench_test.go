package bdlop_test

import (
	"crypto/rand"
	"testing"

	"github.com/coinbase/cb-commit-go/pkg/commit/bdlop"
)

func BenchmarkCommit(b *testing.B) {
	p := bdlop.DefaultParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	if err != nil {
		b.Fatalf("RandomPublicKey: %v", err)
	}
	msg := message(p, 1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := bdlop.Create(msg, pk, rand.Reader); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	p := bdlop.DefaultParams()
	pk, err := bdlop.RandomPublicKey(p, rand.Reader)
	if err != nil {
		b.Fatalf("RandomPublicKey: %v", err)
	}
	com, opening, err := bdlop.Create(message(p, 1, 2, 3), pk, rand.Reader)
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
