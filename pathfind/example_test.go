package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/unionpath/disjoint"
	"github.com/katalvlaran/unionpath/pathfind"
)

// ExampleFindPath joins two clusters on a line of six items. Items 1-2 and
// 5-6 are already linked, so only 3 and 4 have to be added.
func ExampleFindPath() {
	s, err := disjoint.NewSized(6, disjoint.WithPairs[int]([][2]int{{1, 2}, {5, 6}}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	line := pathfind.Static(func(i int) []int {
		var out []int
		if i > 1 {
			out = append(out, i-1)
		}
		if i < 6 {
			out = append(out, i+1)
		}
		return out
	})

	res, err := pathfind.FindPath(s, line, 1, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Paths)
	// Output:
	// true [[3 4]]
}
