package ajtai_test

import (
	"crypto/rand"
	"testing"

	"github.com/coinbase/cb-commit-go/pkg/commit/ajtai"
)

func BenchmarkCommit(b *testing.B) {
	for _, norm := range []ajtai.Norm{ajtai.NormBasis, ajtai.NormEuclidean} {
		p := ajtai.DefaultParams()
		p.Norm = norm
		pk, err := ajtai.RandomPublicKey(p, rand.Reader)
		if err != nil {
			b.Fatalf("RandomPublicKey: %v", err)
		}
		v := smallValue(p.Q, p.M)
		b.Run(norm.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := ajtai.Create(v, pk, rand.Reader); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkVerify(b *testing.B) {
	for _, norm := range []ajtai.Norm{ajtai.NormBasis, ajtai.NormEuclidean} {
		p := ajtai.DefaultParams()
		p.Norm = norm
		pk, err := ajtai.RandomPublicKey(p, rand.Reader)
		if err != nil {
			b.Fatalf("RandomPublicKey: %v", err)
		}
		com, opening, err := ajtai.Create(smallValue(p.Q, p.M), pk, rand.Reader)
		if err != nil {
			b.Fatalf("Create: %v", err)
		}
		b.Run(norm.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if !com.IsValid(pk, opening) {
					b.Fatal("valid opening rejected")
				}
			}
		})
	}
}
