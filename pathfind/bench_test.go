package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/unionpath/disjoint"
	"github.com/katalvlaran/unionpath/pathfind"
)

// BenchmarkFindPath_Gates runs the two-cluster gate search end to end.
func BenchmarkFindPath_Gates(b *testing.B) {
	s, err := activeGateSet([]int{20, 34, 63, 64, 55, 24, 53, 17, 6, 52, 57, 7, 59, 37, 40, 31, 21, 46, 39, 4})
	if err != nil {
		b.Fatal(err)
	}
	cands := gateCandidates()
	src, dst := gateByNum(63), gateByNum(55)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pathfind.FindPath(s, cands, src, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindPath_Line measures a worst-case chain where every item on the
// way must be added.
func BenchmarkFindPath_Line(b *testing.B) {
	const n = 2000
	s, err := disjoint.NewSized(n)
	if err != nil {
		b.Fatal(err)
	}
	line := pathfind.Static(func(i int) []int {
		if i < n {
			return []int{i + 1}
		}
		return nil
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pathfind.FindPath(s, line, 1, n); err != nil {
			b.Fatal(err)
		}
	}
}
