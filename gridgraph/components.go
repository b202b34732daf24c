package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in ascending order. Components are ordered by their first cell.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H) over the prebuilt partition.
// Memory: O(W·H) for the output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	var comps [][]int
	for _, g := range gg.set.Groups() {
		if !gg.IsLand(g[0].X, g[0].Y) {
			continue // water cells are singletons
		}
		comp := make([]int, len(g))
		for i, c := range g {
			comp[i] = gg.index(c.X, c.Y)
		}
		comps = append(comps, comp)
	}
	return comps
}
