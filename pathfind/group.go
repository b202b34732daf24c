// group.go: the search seeded from every member of a source group.

package pathfind

import (
	"fmt"

	"github.com/katalvlaran/unionpath/disjoint"
)

// FindGroupPath runs FindPath from each item of sources to dest and keeps
// the shortest results across all of them. Sources that already share a
// component with dest yield the empty path, which beats any other.
//
// Each run starts from the unmodified s, so a bridge reachable from several
// sources can appear once per source. MaxPaths caps the merged result.
//
// Returns ErrEmptyGroup for an empty sources slice and any FindPath error,
// wrapped with the index of the failing source.
func FindGroupPath[T any](s *disjoint.Set[T], candidates CandidatesFunc[T], sources []T, dest T, opts ...Option[T]) (Result[T], error) {
	if len(sources) == 0 {
		return Result[T]{}, ErrEmptyGroup
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result[T]{}, o.err
	}

	var best [][]T
	found := false
	for i, src := range sources {
		res, err := FindPath(s, candidates, src, dest, opts...)
		if err != nil {
			return Result[T]{}, fmt.Errorf("pathfind: group source %d: %w", i, err)
		}
		if !res.Found {
			continue
		}
		best = joinShortest(best, res.Paths)
		found = true
		if o.MaxPaths > 0 && len(best) > o.MaxPaths {
			best = best[:o.MaxPaths]
		}
	}
	if !found {
		return Result[T]{}, nil
	}
	return Result[T]{Found: true, Paths: best}, nil
}
