// SPDX-License-Identifier: MIT
// Package: unionpath/disjoint
//
// groups.go: partition export.

package disjoint

// Groups partitions the real items by component.
//
// Items keep their index order inside a partition; partitions are ordered by
// their first item. On a flattened Set every lookup is one hop, otherwise
// each item pays a full Find. Items whose key is out of range (possible only
// with WithoutKeyCheck) are omitted.
// Complexity: O(N·height).
func (s *Set[T]) Groups() [][]T {
	pos := make(map[int]int)
	var groups [][]T
	for idx := 1; idx < len(s.items); idx++ {
		item := s.items[idx]
		k, err := s.Key(item)
		if err != nil {
			continue
		}
		r := s.forest.root(k)
		g, ok := pos[r]
		if !ok {
			g = len(groups)
			pos[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], item)
	}
	return groups
}

// ConnectedGroups is Groups without singleton components.
func (s *Set[T]) ConnectedGroups() [][]T {
	all := s.Groups()
	out := all[:0]
	for _, g := range all {
		if len(g) > 1 {
			out = append(out, g)
		}
	}
	return out
}

// GroupOf returns the items sharing a component with item, in index order.
func (s *Set[T]) GroupOf(item T) ([]T, error) {
	r, err := s.FindItem(item)
	if err != nil {
		return nil, err
	}
	var out []T
	for idx := 1; idx < len(s.items); idx++ {
		k, kerr := s.Key(s.items[idx])
		if kerr != nil {
			continue
		}
		if s.forest.root(k) == r {
			out = append(out, s.items[idx])
		}
	}
	return out, nil
}
