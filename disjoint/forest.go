// SPDX-License-Identifier: MIT
// Package: unionpath/disjoint
//
// forest.go: the index arena behind every Set.
//
// A Forest owns N+1 slots; slot 0 is a reserved sentinel so that real
// indices are 1..N. Methods mutate in place: a Forest is meant to be passed
// by exclusive pointer through a single-threaded call chain. Set wraps it
// with copy-on-write value semantics.

package disjoint

import "fmt"

// slot is the tagged per-index state. parent is meaningful for Child only,
// rank for self-roots only.
type slot struct {
	state  State
	parent int
	rank   int
}

// Forest is a union-by-rank parent forest over the indices 1..N.
type Forest struct {
	slots []slot
}

// NewForest returns a Forest of n untouched indices (n+1 slots).
// Negative n yields an empty forest.
// Complexity: O(n) time and memory.
func NewForest(n int) *Forest {
	if n < 0 {
		n = 0
	}
	return &Forest{slots: make([]slot, n+1)}
}

// Len returns N, the number of real indices.
func (f *Forest) Len() int {
	if f == nil || len(f.slots) == 0 {
		return 0
	}
	return len(f.slots) - 1
}

// Clone returns an independent copy of f.
// Complexity: O(N).
func (f *Forest) Clone() *Forest {
	if f == nil {
		return NewForest(0)
	}
	cp := make([]slot, len(f.slots))
	copy(cp, f.slots)
	return &Forest{slots: cp}
}

// check validates that i is a real index.
func (f *Forest) check(i int) error {
	if i < 1 || i > f.Len() {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrIndexOutOfRange, i, f.Len())
	}
	return nil
}

// root follows parent pointers without rewriting them. i must be valid.
func (f *Forest) root(i int) int {
	for f.slots[i].state == Child {
		i = f.slots[i].parent
	}
	return i
}

// Find returns the representative root of i.
// It never rewrites parent pointers; compression happens only in Flatten
// and at the four slots touched by Link.
// Complexity: O(height) which is O(log N) under union by rank.
func (f *Forest) Find(i int) (int, error) {
	if err := f.check(i); err != nil {
		return 0, err
	}
	return f.root(i), nil
}

// Connected reports whether a and b share a root.
func (f *Forest) Connected(a, b int) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Link unions the components of left and right.
//
// Steps:
//  1. Resolve both roots; equal roots leave f unchanged.
//  2. The lower-rank root goes under the higher-rank root. On a tie the
//     right root becomes the parent and its rank grows by one.
//  3. The new parent is written into left, right and both old roots, so a
//     link also shortens the two chains it joins.
//
// Complexity: O(height).
func (f *Forest) Link(left, right int) error {
	if err := f.check(left); err != nil {
		return err
	}
	if err := f.check(right); err != nil {
		return err
	}
	f.link(left, right)
	return nil
}

// link is Link without bounds checks.
func (f *Forest) link(left, right int) {
	lr, rr := f.root(left), f.root(right)
	if lr == rr {
		return
	}
	cmp := f.slots[lr].rank - f.slots[rr].rank
	parent := rr
	if cmp > 0 {
		parent = lr
	}
	for _, i := range [4]int{left, right, lr, rr} {
		if i == parent {
			f.slots[i].state = Root
			continue
		}
		f.slots[i].state = Child
		f.slots[i].parent = parent
	}
	if cmp == 0 {
		f.slots[parent].rank++
	}
}

// LinkAll links item to every index in neighbors, in order. With no
// neighbors the item is defined instead (see Define). Indices are checked
// before any change, so a failed call leaves f untouched.
func (f *Forest) LinkAll(item int, neighbors []int) error {
	if err := f.check(item); err != nil {
		return err
	}
	for _, n := range neighbors {
		if err := f.check(n); err != nil {
			return err
		}
	}
	if len(neighbors) == 0 {
		f.define(item)
		return nil
	}
	for _, n := range neighbors {
		f.link(item, n)
	}
	return nil
}

// Define marks an untouched index as explicitly considered, without
// linking it. Touched indices are left as they are.
func (f *Forest) Define(i int) error {
	if err := f.check(i); err != nil {
		return err
	}
	f.define(i)
	return nil
}

func (f *Forest) define(i int) {
	if f.slots[i].state == Untouched {
		f.slots[i].state = Defined
	}
}

// HasGroup reports whether i has ever been linked or defined.
func (f *Forest) HasGroup(i int) (bool, error) {
	if err := f.check(i); err != nil {
		return false, err
	}
	return f.slots[i].state != Untouched, nil
}

// State returns the slot state of i.
func (f *Forest) State(i int) (State, error) {
	if err := f.check(i); err != nil {
		return Untouched, err
	}
	return f.slots[i].state, nil
}

// Rank returns the stored rank of i.
func (f *Forest) Rank(i int) (int, error) {
	if err := f.check(i); err != nil {
		return 0, err
	}
	return f.slots[i].rank, nil
}

// Parent returns the direct parent of i, or i itself for a self-root.
func (f *Forest) Parent(i int) (int, error) {
	if err := f.check(i); err != nil {
		return 0, err
	}
	if f.slots[i].state != Child {
		return i, nil
	}
	return f.slots[i].parent, nil
}

// Flatten points every child directly at its root, so that a subsequent
// Find resolves in one hop.
// Complexity: O(N·height) in the worst case, O(N) after repeated calls.
func (f *Forest) Flatten() {
	for i := 1; i < len(f.slots); i++ {
		if f.slots[i].state == Child {
			f.slots[i].parent = f.root(i)
		}
	}
}

// Count returns the number of components among 1..N.
func (f *Forest) Count() int {
	n := 0
	for i := 1; i <= f.Len(); i++ {
		if f.slots[i].state != Child {
			n++
		}
	}
	return n
}

// Restrict returns a copy of f that keeps only the component rooted at
// group. Every other index is reset to Untouched with rank 0.
func (f *Forest) Restrict(group int) (*Forest, error) {
	if err := f.check(group); err != nil {
		return nil, err
	}
	g := f.root(group)
	out := NewForest(f.Len())
	for i := 1; i < len(f.slots); i++ {
		if f.root(i) == g {
			out.slots[i] = f.slots[i]
		}
	}
	return out, nil
}
