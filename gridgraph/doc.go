// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and “island” bridging on top of disjoint and pathfind.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Set exposes the grid as a disjoint.Set[Cell]: neighboring land cells
//     share a component, water cells are untouched.
//   - ConnectedComponents lists the islands of cells with value ≥ LandThreshold.
//   - ExpandIsland finds the fewest water cells to convert so that two
//     islands join, with a multi-source 0-1 BFS (land free, water costs 1).
//   - Bridges lists tied alternatives found by pathfind.FindGroupPath with
//     land cells as junctions; they need not be minimal.
//
// Why:
//
//   - Game maps: contiguous land detection, bridge building.
//   - Resource planning: connect facilities with few upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - NewGridGraph:          O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ConnectedComponents:   O(W×H), Memory: O(W×H).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//   - Bridges:               O(S×W×H×d) candidate inspections (S = source island size), recursion depth ≤ W×H.
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.MaxSteps: bridge cost cap for ExpandIsland, search depth
//     limit for Bridges (0 = none).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadOption: unknown connectivity or negative MaxSteps.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path within MaxSteps.
package gridgraph
