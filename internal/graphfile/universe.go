package graphfile

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/unionpath/disjoint"
	"github.com/katalvlaran/unionpath/pathfind"
)

// Node is a universe item as seen by disjoint and pathfind.
type Node struct {
	ID   int
	Name string
}

func (n Node) String() string { return n.Name }

func nodeID(n Node) int { return n.ID }

// Universe is a validated File turned into a set plus adjacency.
type Universe struct {
	Set       *disjoint.Set[Node]
	nodes     []Node
	byName    map[string]Node
	neighbors [][]Node
}

// Build validates f and constructs its Universe. Items get IDs 1..N in file
// order; every item's links are joined, and an item with no links is
// defined.
func (f *File) Build() (*Universe, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	u := &Universe{
		nodes:     make([]Node, len(f.Items)),
		byName:    make(map[string]Node, len(f.Items)),
		neighbors: make([][]Node, len(f.Items)+1),
	}
	for i, it := range f.Items {
		n := Node{ID: i + 1, Name: it.Name}
		u.nodes[i] = n
		u.byName[it.Name] = n
	}

	// neighbors are symmetric, kept in first-mention order without repeats
	seen := make(map[[2]int]bool)
	addEdge := func(a, b Node) {
		if a.ID == b.ID || seen[[2]int{a.ID, b.ID}] {
			return
		}
		seen[[2]int{a.ID, b.ID}] = true
		u.neighbors[a.ID] = append(u.neighbors[a.ID], b)
	}
	for _, it := range f.Items {
		a := u.byName[it.Name]
		for _, name := range it.Neighbors {
			b := u.byName[name]
			addEdge(a, b)
			addEdge(b, a)
		}
	}

	links := make([][]int, len(f.Items)+1)
	for _, it := range f.Items {
		a := u.byName[it.Name]
		for _, name := range it.Links {
			links[a.ID] = append(links[a.ID], u.byName[name].ID)
		}
	}

	s, err := disjoint.New(u.nodes, nodeID, disjoint.WithLinker(func(idx int, _ Node) []int {
		return links[idx]
	}))
	if err != nil {
		return nil, errors.Wrap(err, "build set")
	}
	u.Set = s
	return u, nil
}

// Lookup returns the node called name.
func (u *Universe) Lookup(name string) (Node, bool) {
	n, ok := u.byName[name]
	return n, ok
}

// Neighbors returns the adjacency of n.
func (u *Universe) Neighbors(n Node) []Node {
	if n.ID < 1 || n.ID >= len(u.neighbors) {
		return nil
	}
	return u.neighbors[n.ID]
}

// Candidates adapts Neighbors for pathfind.FindPath.
func (u *Universe) Candidates() pathfind.CandidatesFunc[Node] {
	return pathfind.Static(u.Neighbors)
}
