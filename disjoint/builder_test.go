package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionpath/disjoint"
)

func TestNewSized_Errors(t *testing.T) {
	_, err := disjoint.NewSized(-1)
	assert.ErrorIs(t, err, disjoint.ErrNegativeSize)

	s, err := disjoint.NewSized(0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Size())
	assert.Empty(t, s.Groups())

	_, err = disjoint.NewSized(3, disjoint.WithPairs[int]([][2]int{{1, 4}}))
	assert.ErrorIs(t, err, disjoint.ErrIndexOutOfRange)
}

func TestNew_KeyValidation(t *testing.T) {
	_, err := disjoint.New[gate](gates(3), nil)
	assert.ErrorIs(t, err, disjoint.ErrNilKey)

	dup := []gate{{Num: 1}, {Num: 2}, {Num: 1}}
	_, err = disjoint.New(dup, gateNum)
	assert.ErrorIs(t, err, disjoint.ErrMalformedMapping)

	wide := []gate{{Num: 1}, {Num: 5}}
	_, err = disjoint.New(wide, gateNum)
	assert.ErrorIs(t, err, disjoint.ErrKeyOutOfRange)

	// skipping the check defers the failure to the first lookup
	s, err := disjoint.New(wide, gateNum, disjoint.WithoutKeyCheck[gate]())
	require.NoError(t, err)
	_, err = s.FindItem(gate{Num: 5})
	assert.ErrorIs(t, err, disjoint.ErrKeyOutOfRange)
	assert.Equal(t, [][]gate{{{Num: 1}}}, s.Groups())
}

func TestNew_CopiesInput(t *testing.T) {
	in := gates(3)
	s, err := disjoint.New(in, gateNum)
	require.NoError(t, err)
	in[0].Center = "changed"
	first, _ := s.Item(1)
	assert.NotEqual(t, "changed", first.Center)
}

func TestNewSized_WithPairs(t *testing.T) {
	s, err := disjoint.NewSized(20, disjoint.WithPairs[int]([][2]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{6, 7}, {6, 8}, {6, 9}, {6, 10},
	}))
	require.NoError(t, err)

	assert.True(t, sameRoot(s.Find, 1, 2, 3, 4, 5))
	assert.True(t, sameRoot(s.Find, 6, 7, 8, 9, 10))
	assert.False(t, sameRoot(s.Find, 2, 7))

	s, err = s.Link(1, 6)
	require.NoError(t, err)
	assert.True(t, sameRoot(s.Find, 2, 7))
}

func TestNewSized_IsFlattened(t *testing.T) {
	s, err := disjoint.NewSized(8, disjoint.WithPairs[int]([][2]int{
		{1, 2}, {3, 4}, {5, 3}, {2, 5}, {6, 7}, {8, 6}, {7, 1},
	}))
	require.NoError(t, err)
	f := s.Forest()
	for i := 1; i <= 8; i++ {
		p, _ := f.Parent(i)
		pp, _ := f.Parent(p)
		assert.Equal(t, p, pp, "index %d is more than one hop from its root", i)
	}
}

func TestNewSized_WithKey(t *testing.T) {
	const n = 5
	reverse := func(i int) int { return n + 1 - i }
	s, err := disjoint.NewSized(n, disjoint.WithKey[int](reverse))
	require.NoError(t, err)
	k, err := s.Key(1)
	require.NoError(t, err)
	assert.Equal(t, 5, k)
}

func TestNew_WithLinker(t *testing.T) {
	mappings := [][2]int{{5, 3}, {5, 1}, {3, 6}}
	var seen []int
	s, err := disjoint.New(gates(8), gateNum, disjoint.WithLinker(func(idx int, g gate) []int {
		seen = append(seen, idx)
		var out []int
		if g.Num == 8 {
			return nil
		}
		for _, m := range mappings {
			switch g.Num {
			case m[0]:
				out = append(out, m[1])
			case m[1]:
				out = append(out, m[0])
			}
		}
		return out
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, seen, "linker runs once per item, 1-based")
	assert.True(t, sameRoot(s.Find, 1, 3, 5, 6))
	assert.False(t, sameRoot(s.Find, 1, 2))

	// the linker result for gate 2 is empty, so it is defined
	for num, want := range map[int]bool{8: true, 2: true, 1: true} {
		ok, _ := s.HasItemGroup(gate{Num: num})
		assert.Equal(t, want, ok, "gate %d", num)
	}
}

func TestNew_LinkerBadIndex(t *testing.T) {
	_, err := disjoint.New(gates(2), gateNum, disjoint.WithLinker(func(int, gate) []int {
		return []int{3}
	}))
	assert.ErrorIs(t, err, disjoint.ErrIndexOutOfRange)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { disjoint.WithLinker[gate](nil) })
	assert.Panics(t, func() { disjoint.WithKey[int](nil) })
}
