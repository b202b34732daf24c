// Package unionpath is an in-memory union-find engine with a
// component-growing path search on top of it.
//
// What is in the box:
//
//	disjoint    immutable Set[T] over a rank-balanced Forest with explicit
//	            slot states (untouched, defined, root, child)
//	pathfind    FindPath: every shortest chain of new items that joins the
//	            components of two items
//	gridgraph   2D grids as sets of cells: islands and water bridges
//	cmd/ufpath  command line over TOML/YAML universe and grid files
//
// Quick example:
//
//	s, _ := disjoint.NewSized(6, disjoint.WithPairs[int]([][2]int{{1, 2}, {5, 6}}))
//	res, _ := pathfind.FindPath(s, line, 1, 6)
//	// res.Paths == [][]int{{3, 4}}
//
// Dive into each package's doc.go for options, errors and complexity.
package unionpath
