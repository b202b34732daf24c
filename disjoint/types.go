// SPDX-License-Identifier: MIT
// Package: unionpath/disjoint
//
// types.go: slot states, key/linker function types, sentinel errors and
// functional options for the disjoint package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context is attached with fmt.Errorf("%w: ...") at the call site.
//   • Algorithms never panic on caller input. Option constructors panic on
//     nil function arguments.

package disjoint

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside 1..N was passed to
	// Find, Link, LinkAll, HasGroup or a construction-time linker.
	ErrIndexOutOfRange = errors.New("disjoint: index out of range")

	// ErrKeyOutOfRange indicates the key function mapped an item outside 1..N.
	ErrKeyOutOfRange = errors.New("disjoint: key out of range")

	// ErrMalformedMapping indicates the key function is not injective over
	// the supplied items (two items share one index).
	ErrMalformedMapping = errors.New("disjoint: key function is not injective")

	// ErrNegativeSize indicates NewSized was called with n < 0.
	ErrNegativeSize = errors.New("disjoint: size must be ≥ 0")

	// ErrNilKey indicates New was called without a key function, or an item
	// lookup on a zero Set.
	ErrNilKey = errors.New("disjoint: key function is nil")

	// ErrForestSize indicates a Forest does not match the item count of a Set.
	ErrForestSize = errors.New("disjoint: forest size does not match items")
)

// State is the explicit per-slot state of a Forest.
type State uint8

const (
	// Untouched: self-root, never named by Link, LinkAll or Define.
	Untouched State = iota
	// Defined: self-root, explicitly defined without any link.
	Defined
	// Root: self-root that has taken part in at least one link.
	Root
	// Child: the slot points at a parent index.
	Child
)

// String returns the lower-case name of s.
func (s State) String() string {
	switch s {
	case Untouched:
		return "untouched"
	case Defined:
		return "defined"
	case Root:
		return "root"
	case Child:
		return "child"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// KeyFunc maps an item to its dense index in 1..N.
// It must be pure and injective over the items of one Set.
type KeyFunc[T any] func(item T) int

// Linker returns, for the item at 1-based position idx, the indices it must
// be linked to at construction time. An empty result defines the item.
type Linker[T any] func(idx int, item T) []int

// Identity is the KeyFunc used by NewSized when no WithKey option is given.
func Identity(i int) int { return i }

// buildConfig collects construction options for New and NewSized.
type buildConfig[T any] struct {
	pairs    [][2]int
	linker   Linker[T]
	key      KeyFunc[T]
	skipKeys bool
}

// Option customizes construction of a Set.
// Applying N options costs O(N).
type Option[T any] func(*buildConfig[T])

// WithPairs links every (left, right) index pair in order during construction.
func WithPairs[T any](pairs [][2]int) Option[T] {
	return func(c *buildConfig[T]) {
		c.pairs = append(c.pairs, pairs...)
	}
}

// WithLinker installs a per-item linker run in item order during construction.
// Panics on nil.
func WithLinker[T any](fn Linker[T]) Option[T] {
	if fn == nil {
		panic("disjoint: WithLinker(nil)")
	}
	return func(c *buildConfig[T]) {
		c.linker = fn
	}
}

// WithKey overrides the key function. New takes its key as an argument, so
// this option matters for NewSized only. Panics on nil.
func WithKey[T any](fn KeyFunc[T]) Option[T] {
	if fn == nil {
		panic("disjoint: WithKey(nil)")
	}
	return func(c *buildConfig[T]) {
		c.key = fn
	}
}

// WithoutKeyCheck skips the O(N) range and injectivity check of the key
// function. The caller then guarantees a valid mapping.
func WithoutKeyCheck[T any]() Option[T] {
	return func(c *buildConfig[T]) {
		c.skipKeys = true
	}
}
