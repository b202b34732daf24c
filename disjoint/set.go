// SPDX-License-Identifier: MIT
// Package: unionpath/disjoint
//
// set.go: Set[T], the immutable item-level view over a Forest.
//
// Every method that changes the partition clones the forest and returns a
// new *Set; the receiver is never modified, so older values stay valid and
// may be kept around (pathfind relies on this for its "before search"
// snapshot).

package disjoint

import "fmt"

// Set is a disjoint-set structure over a fixed universe of items.
// items[0] is the reserved sentinel (the zero value of T).
//
// Build a Set with New or NewSized. The zero Set holds no items and has no
// key function: queries on it report ErrIndexOutOfRange or ErrNilKey.
type Set[T any] struct {
	items  []T
	key    KeyFunc[T]
	forest *Forest
}

// Size returns N, the number of real items.
func (s *Set[T]) Size() int {
	if len(s.items) == 0 {
		return 0
	}
	return len(s.items) - 1
}

// Items returns a copy of the real items in index order 1..N.
func (s *Set[T]) Items() []T {
	out := make([]T, s.Size())
	if len(out) > 0 {
		copy(out, s.items[1:])
	}
	return out
}

// Item returns the item stored at 1-based position i.
func (s *Set[T]) Item(i int) (T, error) {
	var zero T
	if i < 1 || i >= len(s.items) {
		return zero, fmt.Errorf("%w: %d not in [1,%d]", ErrIndexOutOfRange, i, s.Size())
	}
	return s.items[i], nil
}

// Key maps item through the set's key function and checks the range.
func (s *Set[T]) Key(item T) (int, error) {
	if s.key == nil {
		return 0, ErrNilKey
	}
	k := s.key(item)
	if k < 1 || k > s.Size() {
		return 0, fmt.Errorf("%w: key %d not in [1,%d]", ErrKeyOutOfRange, k, s.Size())
	}
	return k, nil
}

// keys maps a slice of items.
func (s *Set[T]) keys(items []T) ([]int, error) {
	out := make([]int, len(items))
	for i, it := range items {
		k, err := s.Key(it)
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}

// Forest returns a private copy of the underlying forest.
func (s *Set[T]) Forest() *Forest {
	return s.forest.Clone()
}

// WithForest returns a Set sharing the items and key of s but backed by f.
// f is used as is, not copied: the caller keeps exclusive ownership and must
// not mutate f while the returned Set is in use.
func (s *Set[T]) WithForest(f *Forest) (*Set[T], error) {
	if f == nil || f.Len() != s.Size() {
		return nil, ErrForestSize
	}
	return &Set[T]{items: s.items, key: s.key, forest: f}, nil
}

// apply runs fn on a clone of the forest and wraps the result. On error the
// receiver is returned unchanged alongside the error.
func (s *Set[T]) apply(fn func(f *Forest) error) (*Set[T], error) {
	f := s.forest.Clone()
	if err := fn(f); err != nil {
		return s, err
	}
	return &Set[T]{items: s.items, key: s.key, forest: f}, nil
}

// Find returns the root index of index i.
func (s *Set[T]) Find(i int) (int, error) {
	return s.forest.Find(i)
}

// FindItem returns the root index of item.
func (s *Set[T]) FindItem(item T) (int, error) {
	k, err := s.Key(item)
	if err != nil {
		return 0, err
	}
	return s.forest.Find(k)
}

// Connected reports whether two items share a component.
func (s *Set[T]) Connected(a, b T) (bool, error) {
	ka, err := s.Key(a)
	if err != nil {
		return false, err
	}
	kb, err := s.Key(b)
	if err != nil {
		return false, err
	}
	return s.forest.Connected(ka, kb)
}

// Count returns the number of components.
func (s *Set[T]) Count() int {
	return s.forest.Count()
}

// HasGroup reports whether index i was ever linked or defined.
func (s *Set[T]) HasGroup(i int) (bool, error) {
	return s.forest.HasGroup(i)
}

// State returns the slot state of index i.
func (s *Set[T]) State(i int) (State, error) {
	return s.forest.State(i)
}

// IsLinked reports whether index i belongs to a component of two or more
// indices. Unlike HasGroup it is false for indices that were only defined.
func (s *Set[T]) IsLinked(i int) (bool, error) {
	st, err := s.forest.State(i)
	if err != nil {
		return false, err
	}
	return st == Root || st == Child, nil
}

// HasItemGroup is HasGroup for an item.
func (s *Set[T]) HasItemGroup(item T) (bool, error) {
	k, err := s.Key(item)
	if err != nil {
		return false, err
	}
	return s.forest.HasGroup(k)
}

// Link returns a new Set in which left and right share a component.
// If they already do, the receiver itself is returned.
func (s *Set[T]) Link(left, right int) (*Set[T], error) {
	if ok, err := s.forest.Connected(left, right); err != nil || ok {
		return s, err
	}
	return s.apply(func(f *Forest) error { return f.Link(left, right) })
}

// LinkAll returns a new Set in which item is linked to every neighbor.
// An empty neighbor list defines item instead.
func (s *Set[T]) LinkAll(item int, neighbors []int) (*Set[T], error) {
	return s.apply(func(f *Forest) error { return f.LinkAll(item, neighbors) })
}

// LinkItem is Link for two items.
func (s *Set[T]) LinkItem(left, right T) (*Set[T], error) {
	l, err := s.Key(left)
	if err != nil {
		return s, err
	}
	r, err := s.Key(right)
	if err != nil {
		return s, err
	}
	return s.Link(l, r)
}

// LinkItemAll is LinkAll for items.
func (s *Set[T]) LinkItemAll(item T, neighbors []T) (*Set[T], error) {
	k, err := s.Key(item)
	if err != nil {
		return s, err
	}
	ns, err := s.keys(neighbors)
	if err != nil {
		return s, err
	}
	return s.LinkAll(k, ns)
}

// Define returns a new Set with index i marked as considered.
func (s *Set[T]) Define(i int) (*Set[T], error) {
	return s.apply(func(f *Forest) error { return f.Define(i) })
}

// Flatten returns an equivalent Set whose every index points directly at
// its root.
func (s *Set[T]) Flatten() *Set[T] {
	f := s.forest.Clone()
	f.Flatten()
	return &Set[T]{items: s.items, key: s.key, forest: f}
}
