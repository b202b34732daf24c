package pathfind

// joinShortest merges two solution sets whose paths each share one length.
// The shorter set wins outright; on equal length the paths are concatenated,
// best first.
func joinShortest[T any](best, next [][]T) [][]T {
	switch {
	case len(best) == 0:
		return next
	case len(next) == 0:
		return best
	case len(next[0]) < len(best[0]):
		return next
	case len(next[0]) > len(best[0]):
		return best
	default:
		return append(best, next...)
	}
}

// prependAll returns copies of paths with head in front of each.
func prependAll[T any](head T, paths [][]T) [][]T {
	out := make([][]T, len(paths))
	for i, p := range paths {
		np := make([]T, 0, len(p)+1)
		np = append(np, head)
		out[i] = append(np, p...)
	}
	return out
}
