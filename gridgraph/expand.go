package gridgraph

import (
	"container/list"
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/unionpath/pathfind"
)

// ExpandIsland finds a minimum-conversion chain of “water” cells
// (value < LandThreshold) joining component srcComp to component dstComp, as
// identified by ConnectedComponents(). Each water-cell conversion costs 1;
// walking over land of any island is free.
// Returns the row-major indices of the water cells to convert, in walking
// order from srcComp, and the conversion cost (their count). For
// srcComp == dstComp the path is empty and the cost 0.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every srcComp cell:
//     • moving into a land cell  → cost 0 (pushed to the front)
//     • moving into a water cell → cost 1 (pushed to the back)
//  3. Stop when any dstComp cell is popped.
//  4. Walk predecessors back and keep the water cells.
//
// A bridge costing more than MaxSteps (when > 0) is reported as ErrNoPath.
//
// Complexity: O(W·H) time, each cell settles at most twice.
// Memory:     O(W·H) for distance and prev pointers.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps, err := gg.componentPair(srcComp, dstComp)
	if err != nil {
		return nil, 0, err
	}
	if srcComp == dstComp {
		return []int{}, 0, nil
	}
	dstSet := mapset.NewThreadUnsafeSet[int](comps[dstComp]...)

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: deque processes cost 0 at front, cost 1 at back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if dstSet.Contains(u) {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.IsLand(vx, vy) {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 || (gg.MaxSteps > 0 && dist[target] > gg.MaxSteps) {
		return nil, 0, ErrNoPath
	}
	path = make([]int, 0, dist[target])
	for at := prev[target]; at >= 0; at = prev[at] {
		if x, y := gg.Coordinate(at); !gg.IsLand(x, y) {
			path = append(path, at)
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}

// Bridges returns every tied chain of water cells found by the
// component-growing search between srcComp and dstComp.
// Unlike ExpandIsland the chains are not guaranteed minimal; they list the
// alternatives pathfind settles on.
//
// Behavior:
//  1. Validate component indices.
//  2. Run pathfind.FindGroupPath over the island partition from every cell
//     of srcComp to the first cell of dstComp. Land cells are junctions,
//     so they never appear in a result; water cells are the counted items.
//  3. Map result cells back to row-major indices, dropping repeats found
//     from more than one source cell.
//
// MaxSteps, when > 0, bounds how far below a source cell the search expands.
// Returns ErrComponentIndex, ErrNoPath or the context error.
func (gg *GridGraph) Bridges(ctx context.Context, srcComp, dstComp int) ([][]int, error) {
	comps, err := gg.componentPair(srcComp, dstComp)
	if err != nil {
		return nil, err
	}
	if srcComp == dstComp {
		return [][]int{{}}, nil
	}
	sources := make([]Cell, len(comps[srcComp]))
	for i, idx := range comps[srcComp] {
		x, y := gg.Coordinate(idx)
		sources[i] = gg.CellAt(x, y)
	}
	dx, dy := gg.Coordinate(comps[dstComp][0])

	res, err := pathfind.FindGroupPath(gg.set,
		pathfind.Static(gg.Neighbors),
		sources, gg.CellAt(dx, dy),
		pathfind.WithContext[Cell](ctx),
		pathfind.WithMaxDepth[Cell](gg.MaxSteps),
		pathfind.WithDefinedJunctions[Cell](),
	)
	if err != nil {
		return nil, fmt.Errorf("gridgraph: bridge search: %w", err)
	}
	if !res.Found {
		return nil, ErrNoPath
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	out := make([][]int, 0, len(res.Paths))
	for _, p := range res.Paths {
		idx := make([]int, len(p))
		for j, c := range p {
			idx[j] = gg.index(c.X, c.Y)
		}
		if !seen.Add(fmt.Sprint(idx)) {
			continue
		}
		out = append(out, idx)
	}
	return out, nil
}

// componentPair returns the components after checking both indices.
func (gg *GridGraph) componentPair(srcComp, dstComp int) ([][]int, error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, fmt.Errorf("%w: %d, %d of %d", ErrComponentIndex, srcComp, dstComp, len(comps))
	}
	return comps, nil
}
