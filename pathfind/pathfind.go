// pathfind.go: a component-growing depth-first search that finds every
// shortest chain of intermediate items connecting the component of a source
// item to the component of a destination item.
//
// The search grows the union-find state as it goes: each expanded item is
// linked to all of its fresh candidates before any of them is explored, so a
// component is expanded at most once along any root path. Unions and seen
// marks made while exploring one candidate stay visible to the candidates
// after it (state is folded left to right, never forked or rolled back).

package pathfind

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/unionpath/disjoint"
)

// walker holds the mutable state of one FindPath call.
type walker[T any] struct {
	initial    *disjoint.Set[T] // snapshot before the search; decides junctions
	work       *disjoint.Forest // grown in place
	live       *disjoint.Set[T] // view over work handed to candidates
	candidates CandidatesFunc[T]
	opts       Options[T]
	seen       mapset.Set[int]
	destKey    int
}

// FindPath searches for all shortest chains of items joining the component
// of src to the component of dest in s, using candidates as adjacency.
//
// Steps:
//  1. Validate inputs and options; map src and dest to indices.
//  2. If src and dest already share a component, return one empty path.
//  3. Work on a copy of s restricted to the destination's component; every
//     other index starts untouched.
//  4. Expand from src (see expand). Items that already belonged to some
//     component in s are known junctions and are left out of the paths.
//
// Returns ErrNilSet, ErrNilCandidates, ErrOptionViolation, a
// disjoint.ErrKeyOutOfRange wrap for unknown items, or the context error.
// A missing path is not an error: Result.Found is false.
//
// Complexity: O(N·C) candidate inspections in the worst case, where C is the
// largest candidate list; memory O(N) plus the recursion stack.
func FindPath[T any](s *disjoint.Set[T], candidates CandidatesFunc[T], src, dest T, opts ...Option[T]) (Result[T], error) {
	// 1. Validate inputs and options
	if s == nil {
		return Result[T]{}, ErrNilSet
	}
	if candidates == nil {
		return Result[T]{}, ErrNilCandidates
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[T]{}, o.err
	}

	srcKey, err := s.Key(src)
	if err != nil {
		return Result[T]{}, fmt.Errorf("pathfind: source: %w", err)
	}
	destKey, err := s.Key(dest)
	if err != nil {
		return Result[T]{}, fmt.Errorf("pathfind: destination: %w", err)
	}

	// 2. Already joined
	joined, err := s.Connected(src, dest)
	if err != nil {
		return Result[T]{}, err
	}
	if joined {
		return Result[T]{Found: true, Paths: [][]T{{}}}, nil
	}

	// 3. Restricted working copy
	work, err := s.Forest().Restrict(destKey)
	if err != nil {
		return Result[T]{}, err
	}
	live, err := s.WithForest(work)
	if err != nil {
		return Result[T]{}, err
	}

	w := &walker[T]{
		initial:    s,
		work:       work,
		live:       live,
		candidates: candidates,
		opts:       o,
		seen:       mapset.NewThreadUnsafeSet[int](srcKey),
		destKey:    destKey,
	}

	// 4. Expand from the source
	paths, found, err := w.expand(src, srcKey, 0)
	if err != nil {
		return Result[T]{}, err
	}
	if !found {
		return Result[T]{}, nil
	}
	return Result[T]{Found: true, Paths: paths}, nil
}

// expand explores item (index key) at the given depth below the source.
//
// Steps:
//  1. Cancellation check and OnExpand hook.
//  2. adjacent = candidates outside item's current component, not yet
//     seen, without duplicates.
//  3. Base case: an adjacent item in the destination's component means the
//     empty path succeeds here.
//  4. Link item to all of adjacent (an empty list just defines item).
//  5. Fold over adjacent in order: mark seen, recurse, prepend the
//     candidate unless it is a known junction, keep the shortest paths.
func (w *walker[T]) expand(item T, key int, depth int) ([][]T, bool, error) {
	// 1. Cancellation and hook
	select {
	case <-w.opts.Ctx.Done():
		return nil, false, w.opts.Ctx.Err()
	default:
	}
	w.opts.OnExpand(item, depth)

	// 2. Fresh candidates
	own, err := w.work.Find(key)
	if err != nil {
		return nil, false, err
	}
	destRoot, err := w.work.Find(w.destKey)
	if err != nil {
		return nil, false, err
	}

	raw := w.candidates(item, w.live)
	adjacent := make([]T, 0, len(raw))
	keys := make([]int, 0, len(raw))
	local := mapset.NewThreadUnsafeSet[int]()
	for _, c := range raw {
		k, err := w.live.Key(c)
		if err != nil {
			return nil, false, fmt.Errorf("pathfind: candidate of depth %d: %w", depth, err)
		}
		if local.Contains(k) || w.seen.Contains(k) {
			continue
		}
		r, _ := w.work.Find(k)
		if r == own {
			continue
		}
		local.Add(k)
		adjacent = append(adjacent, c)
		keys = append(keys, k)
	}

	// 3. Base case
	for _, k := range keys {
		if r, _ := w.work.Find(k); r == destRoot {
			return [][]T{{}}, true, nil
		}
	}
	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		return nil, false, nil
	}

	// 4. Grow the component
	if err = w.work.LinkAll(key, keys); err != nil {
		return nil, false, err
	}

	// 5. Fold over candidates
	var best [][]T
	found := false
	for i, c := range adjacent {
		k := keys[i]
		w.seen.Add(k)

		sub, ok, err := w.expand(c, k, depth+1)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		if !w.junction(k) {
			sub = prependAll(c, sub)
		}
		best = joinShortest(best, sub)
		found = true
		if w.opts.MaxPaths > 0 && len(best) > w.opts.MaxPaths {
			best = best[:w.opts.MaxPaths]
		}
	}
	return best, found, nil
}

// junction reports whether index k was already part of a component before
// the search started.
func (w *walker[T]) junction(k int) bool {
	if w.opts.DefinedJunctions {
		ok, _ := w.initial.HasGroup(k)
		return ok
	}
	ok, _ := w.initial.IsLinked(k)
	return ok
}
