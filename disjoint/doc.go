// Package disjoint provides a disjoint-set (union-find) structure over a fixed,
// caller-defined universe of items.
//
// What & Why
//
//   - What is a disjoint set?
//     A partition of a finite universe into components, supporting "which
//     component is X in" (Find) and "merge the components of X and Y" (Link).
//
//   - Why this one?
//     Items are arbitrary values of type T. The caller supplies a key function
//     mapping each item to a dense index in 1..N (index 0 is a reserved
//     sentinel, so 1-based numbering schemes map with Identity). Every Set is
//     an immutable value: Link, LinkAll and friends return a new Set, which
//     lets search code keep a snapshot of "what was known before".
//
// Types
//
//   - Forest: the mutable index arena (parent pointers, ranks, explicit slot
//     states Untouched / Defined / Root / Child). Use it directly when you own
//     the value exclusively and want in-place updates.
//   - Set[T]: items + key + Forest with copy-on-write semantics.
//
// Core operations
//
//   - Find(i)            root of i; pure lookup, never rewrites pointers.
//   - Link(l, r)         union by rank; ties go to the right root (rank+1).
//     The new parent is also written into l and r themselves, so joining
//     along a chain keeps it shallow without a separate pass.
//   - LinkAll(i, ns)     folds Link(i, n); an empty ns defines i instead.
//   - HasGroup(i)        true once i was linked or defined.
//   - Flatten()          point every index straight at its root.
//
// Construction
//
//   - NewSized(n, opts...)      items 1..n, Identity key.
//   - New(items, key, opts...)  arbitrary items.
//   - WithPairs, WithLinker     eager linking, followed by one Flatten.
//
// Grouping
//
//   - Groups()           all components, items in index order.
//   - ConnectedGroups()  components with more than one item.
//
// Complexity:
//
//   - Find / Link: O(log N) under union by rank; O(1) after Flatten.
//   - Copy-on-write Set methods add O(N) for the forest clone.
//
// Errors:
//
//   - ErrIndexOutOfRange   index outside 1..N.
//   - ErrKeyOutOfRange     key function result outside 1..N.
//   - ErrMalformedMapping  key function not injective (checked at construction).
//   - ErrNegativeSize      NewSized(n) with n < 0.
//   - ErrNilKey            New without a key function.
//   - ErrForestSize        WithForest given a forest of the wrong size.
package disjoint
