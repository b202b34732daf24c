// Package pathfind finds the shortest ways to join two components of a
// disjoint.Set through items that are not yet part of any component.
//
// What:
//
//   - FindPath(s, candidates, src, dest, opts...) returns every shortest chain
//     of intermediate items (source and destination excluded) that connects
//     the component of src to the component of dest under the adjacency given
//     by candidates. Ties are kept; all returned paths have equal length.
//   - FindGroupPath(s, candidates, sources, dest, opts...) runs the search
//     from every item of sources and keeps the shortest results overall.
//   - Items that already belonged to a component before the search are
//     junctions: they can be walked through for free and never appear in a
//     path. Only "new" items are counted.
//
// Why:
//
//   - Bridging clusters: which unclaimed nodes must be added so that two
//     groups become one?
//   - Grid maps: tied chains of water cells between two islands
//     (see gridgraph.Bridges).
//
// How:
//
//   - The search works on a private copy of the set in which only the
//     destination's component survives. Expanding an item links it to all of
//     its fresh candidates at once; the candidates are then explored left to
//     right, each seeing the unions made by the ones before it.
//   - Unions made on one branch stay in place for later branches, so the
//     result is the shortest among the chains the search explores. It is not
//     a global minimum; use a breadth-first search where that matters.
//   - Every expansion merges at least one new item into the growing
//     component, so recursion depth is bounded by N.
//
// Options:
//
//   - WithContext(ctx)    cancellation, checked once per expansion.
//   - WithMaxDepth(d)     expand at most d levels below the source, junctions
//     included (0 = no limit).
//   - WithMaxPaths(k)     keep at most k tied paths (0 = all).
//   - WithOnExpand(fn)    hook called for every expanded item.
//   - WithDefinedJunctions() treat defined-only items as junctions too.
//
// Errors:
//
//   - ErrNilSet, ErrNilCandidates, ErrOptionViolation, ErrEmptyGroup.
//   - disjoint.ErrKeyOutOfRange (wrapped) for items the set does not know.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
package pathfind
