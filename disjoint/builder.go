// SPDX-License-Identifier: MIT
// Package: unionpath/disjoint
//
// builder.go: Set constructors.
//
// Contract:
//   • Construction validates the key function (range + injectivity) unless
//     WithoutKeyCheck is given.
//   • Eager links run in order: WithPairs first, then WithLinker per item.
//   • After eager linking the forest is flattened exactly once.

package disjoint

import "fmt"

// NewSized builds a Set over the integers 1..n. The key is Identity unless
// WithKey overrides it.
// Complexity: O(n + links·log n).
func NewSized(n int, opts ...Option[int]) (*Set[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, n)
	}
	cfg := buildConfig[int]{key: Identity}
	for _, opt := range opts {
		opt(&cfg)
	}
	items := make([]int, n+1)
	for i := range items {
		items[i] = i
	}
	return build(items, cfg)
}

// New builds a Set over items, which take the indices 1..len(items) via key.
// The input slice is copied.
// Complexity: O(N + links·log N).
func New[T any](items []T, key KeyFunc[T], opts ...Option[T]) (*Set[T], error) {
	if key == nil {
		return nil, ErrNilKey
	}
	cfg := buildConfig[T]{key: key}
	for _, opt := range opts {
		opt(&cfg)
	}
	// New takes its key as an argument; a WithKey option cannot replace it.
	cfg.key = key

	all := make([]T, len(items)+1)
	copy(all[1:], items)
	return build(all, cfg)
}

// build runs validation and eager linking over a sentinel-prefixed slice.
func build[T any](items []T, cfg buildConfig[T]) (*Set[T], error) {
	s := &Set[T]{items: items, key: cfg.key, forest: NewForest(len(items) - 1)}

	if !cfg.skipKeys {
		if err := validateKeys(s); err != nil {
			return nil, err
		}
	}

	// 1. explicit pairs
	for _, p := range cfg.pairs {
		if err := s.forest.Link(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("pair (%d,%d): %w", p[0], p[1], err)
		}
	}

	// 2. per-item linker, 1-based positions in item order
	if cfg.linker != nil {
		for idx := 1; idx < len(items); idx++ {
			k, err := s.Key(items[idx])
			if err != nil {
				return nil, err
			}
			if err = s.forest.LinkAll(k, cfg.linker(idx, items[idx])); err != nil {
				return nil, fmt.Errorf("linker at item %d: %w", idx, err)
			}
		}
	}

	s.forest.Flatten()
	return s, nil
}

// validateKeys checks that key maps the real items onto distinct indices
// inside 1..N.
func validateKeys[T any](s *Set[T]) error {
	owner := make([]int, len(s.items))
	for idx := 1; idx < len(s.items); idx++ {
		k, err := s.Key(s.items[idx])
		if err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		if owner[k] != 0 {
			return fmt.Errorf("%w: items %d and %d both map to %d", ErrMalformedMapping, owner[k], idx, k)
		}
		owner[k] = idx
	}
	return nil
}
