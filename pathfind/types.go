// Package pathfind defines options, hooks, result and error types for the
// component-growing path search over a disjoint.Set.
package pathfind

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/unionpath/disjoint"
)

// Sentinel errors for FindPath and FindGroupPath.
var (
	// ErrNilSet is returned when a nil *disjoint.Set is passed.
	ErrNilSet = errors.New("pathfind: set is nil")

	// ErrNilCandidates is returned when no candidates function is given.
	ErrNilCandidates = errors.New("pathfind: candidates function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrEmptyGroup is returned by FindGroupPath when no source is given.
	ErrEmptyGroup = errors.New("pathfind: source group is empty")
)

// CandidatesFunc lists the graph neighbors of item. live is a read-only view
// of the component state as the search currently sees it; it is valid only
// for the duration of the call.
type CandidatesFunc[T any] func(item T, live *disjoint.Set[T]) []T

// Static adapts an adjacency function that does not need the live state.
func Static[T any](fn func(item T) []T) CandidatesFunc[T] {
	if fn == nil {
		return nil
	}
	return func(item T, _ *disjoint.Set[T]) []T {
		return fn(item)
	}
}

// Option configures FindPath via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option[T any] func(*Options[T])

// Options holds parameters and callbacks for one FindPath call.
type Options[T any] struct {
	// Ctx allows cancellation; checked once per expanded item.
	Ctx context.Context

	// MaxDepth, if > 0, stops expanding items at this depth below the
	// source. Junctions walked through count toward the depth.
	// 0 means no limit.
	MaxDepth int

	// MaxPaths, if > 0, caps how many tied shortest paths are kept.
	// 0 keeps all of them.
	MaxPaths int

	// DefinedJunctions, if true, also treats indices that were only defined
	// (LinkAll with no neighbors) as junctions. By default only indices that
	// were linked into a component before the search are junctions.
	DefinedJunctions bool

	// OnExpand is called each time an item is expanded, with its depth
	// below the source (the source itself is depth 0).
	OnExpand func(item T, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no limits and a
// no-op OnExpand hook.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{
		Ctx:      context.Background(),
		MaxDepth: 0,
		MaxPaths: 0,
		OnExpand: func(T, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T any](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits how deep below the source the search expands.
// Depth counts every expanded item, junctions included, so a path may hold
// fewer than d new items yet still be cut off.
//
//	d > 0: items at depth d are checked for the destination but not expanded
//	d == 0: no limit
//	d < 0: invalid → ErrOptionViolation
func WithMaxDepth[T any](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxPaths caps the number of tied shortest paths returned.
// k < 0 is invalid → ErrOptionViolation.
func WithMaxPaths[T any](k int) Option[T] {
	return func(o *Options[T]) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxPaths cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxPaths = k
	}
}

// WithDefinedJunctions makes defined-but-unlinked items count as junctions,
// so they are walked through for free and left out of the paths.
func WithDefinedJunctions[T any]() Option[T] {
	return func(o *Options[T]) {
		o.DefinedJunctions = true
	}
}

// WithOnExpand registers a callback run whenever an item is expanded.
func WithOnExpand[T any](fn func(item T, depth int)) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result holds the outcome of FindPath:
//   - Found: false when no candidate sequence reaches the destination.
//   - Paths: every shortest chain of intermediate items (source and
//     destination excluded). All paths have the same length; an empty path
//     means the source side already touches the destination's component.
type Result[T any] struct {
	Found bool
	Paths [][]T
}

// Len returns the common path length, or -1 when nothing was found.
func (r Result[T]) Len() int {
	if !r.Found || len(r.Paths) == 0 {
		return -1
	}
	return len(r.Paths[0])
}

// First returns the first shortest path.
func (r Result[T]) First() ([]T, bool) {
	if !r.Found || len(r.Paths) == 0 {
		return nil, false
	}
	return r.Paths[0], true
}
