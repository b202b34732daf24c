package disjoint_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/unionpath/disjoint"
)

// BenchmarkForest_LinkFind measures in-place random links followed by a
// Find over every index.
func BenchmarkForest_LinkFind(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n) + 1, rng.Intn(n) + 1}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := disjoint.NewForest(n)
		for _, p := range pairs {
			_ = f.Link(p[0], p[1])
		}
		for j := 1; j <= n; j++ {
			_, _ = f.Find(j)
		}
	}
}

// BenchmarkNewSized_Chain builds a flattened chain 1-2-…-n through WithPairs.
func BenchmarkNewSized_Chain(b *testing.B) {
	const n = 10000
	pairs := make([][2]int, n-1)
	for i := range pairs {
		pairs[i] = [2]int{i + 1, i + 2}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = disjoint.NewSized(n, disjoint.WithPairs[int](pairs))
	}
}

// BenchmarkSet_Groups measures partition export on a flattened set.
func BenchmarkSet_Groups(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(3))
	pairs := make([][2]int, n/2)
	for i := range pairs {
		pairs[i] = [2]int{rng.Intn(n) + 1, rng.Intn(n) + 1}
	}
	s, _ := disjoint.NewSized(n, disjoint.WithPairs[int](pairs))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Groups()
	}
}
