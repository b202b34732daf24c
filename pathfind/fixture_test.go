package pathfind_test

import (
	"github.com/katalvlaran/unionpath/disjoint"
	"github.com/katalvlaran/unionpath/pathfind"
)

// center is the hub a gate sits on; gates on one center are adjacent.
type center int

const (
	centerHead center = iota + 1
	centerAjna
	centerThroat
	centerIdentity
	centerSacral
	centerRoot
	centerSpleen
	centerWill
	centerESP
)

// gate is a numbered item with explicit channel partners and a center.
type gate struct {
	Num       int
	Center    center
	Connected []int
}

func gateNum(g gate) int { return g.Num }

// allGates is a 64-item universe listed out of numeric order.
var allGates = []gate{
	{Num: 41, Center: centerRoot, Connected: []int{30}},
	{Num: 19, Center: centerRoot, Connected: []int{49}},
	{Num: 13, Center: centerIdentity, Connected: []int{33}},
	{Num: 49, Center: centerESP, Connected: []int{19}},
	{Num: 30, Center: centerESP, Connected: []int{41}},
	{Num: 55, Center: centerESP, Connected: []int{39}},
	{Num: 37, Center: centerESP, Connected: []int{40}},
	{Num: 63, Center: centerHead, Connected: []int{4}},
	{Num: 22, Center: centerESP, Connected: []int{12}},
	{Num: 36, Center: centerESP, Connected: []int{35}},
	{Num: 25, Center: centerIdentity, Connected: []int{51}},
	{Num: 17, Center: centerAjna, Connected: []int{62}},
	{Num: 21, Center: centerWill, Connected: []int{45}},
	{Num: 51, Center: centerWill, Connected: []int{26}},
	{Num: 42, Center: centerSacral, Connected: []int{53}},
	{Num: 3, Center: centerSacral, Connected: []int{60}},
	{Num: 27, Center: centerSacral, Connected: []int{50}},
	{Num: 24, Center: centerAjna, Connected: []int{61}},
	{Num: 2, Center: centerIdentity, Connected: []int{14}},
	{Num: 23, Center: centerThroat, Connected: []int{43}},
	{Num: 8, Center: centerThroat, Connected: []int{1}},
	{Num: 20, Center: centerThroat, Connected: []int{10, 57, 34}},
	{Num: 16, Center: centerThroat, Connected: []int{48}},
	{Num: 35, Center: centerThroat, Connected: []int{36}},
	{Num: 45, Center: centerThroat, Connected: []int{21}},
	{Num: 12, Center: centerThroat, Connected: []int{22}},
	{Num: 15, Center: centerIdentity, Connected: []int{5}},
	{Num: 52, Center: centerRoot, Connected: []int{9}},
	{Num: 39, Center: centerRoot, Connected: []int{55}},
	{Num: 53, Center: centerRoot, Connected: []int{42}},
	{Num: 62, Center: centerThroat, Connected: []int{17}},
	{Num: 56, Center: centerThroat, Connected: []int{11}},
	{Num: 31, Center: centerThroat, Connected: []int{7}},
	{Num: 33, Center: centerThroat, Connected: []int{13}},
	{Num: 7, Center: centerIdentity, Connected: []int{31}},
	{Num: 4, Center: centerAjna, Connected: []int{63}},
	{Num: 29, Center: centerSacral, Connected: []int{46}},
	{Num: 59, Center: centerSacral, Connected: []int{6}},
	{Num: 40, Center: centerWill, Connected: []int{37}},
	{Num: 64, Center: centerHead, Connected: []int{47}},
	{Num: 47, Center: centerAjna, Connected: []int{64}},
	{Num: 6, Center: centerESP, Connected: []int{59}},
	{Num: 46, Center: centerIdentity, Connected: []int{29}},
	{Num: 18, Center: centerSpleen, Connected: []int{58}},
	{Num: 48, Center: centerSpleen, Connected: []int{16}},
	{Num: 57, Center: centerSpleen, Connected: []int{34, 10, 20}},
	{Num: 32, Center: centerSpleen, Connected: []int{54}},
	{Num: 50, Center: centerSpleen, Connected: []int{27}},
	{Num: 28, Center: centerSpleen, Connected: []int{36}},
	{Num: 44, Center: centerSpleen, Connected: []int{26}},
	{Num: 1, Center: centerIdentity, Connected: []int{8}},
	{Num: 43, Center: centerAjna, Connected: []int{23}},
	{Num: 14, Center: centerSacral, Connected: []int{2}},
	{Num: 34, Center: centerSacral, Connected: []int{57, 10, 20}},
	{Num: 9, Center: centerSacral, Connected: []int{52}},
	{Num: 5, Center: centerSacral, Connected: []int{15}},
	{Num: 26, Center: centerWill, Connected: []int{44}},
	{Num: 11, Center: centerAjna, Connected: []int{56}},
	{Num: 10, Center: centerIdentity, Connected: []int{20, 57, 34}},
	{Num: 58, Center: centerRoot, Connected: []int{18}},
	{Num: 38, Center: centerRoot, Connected: []int{28}},
	{Num: 54, Center: centerRoot, Connected: []int{32}},
	{Num: 61, Center: centerHead, Connected: []int{24}},
	{Num: 60, Center: centerRoot, Connected: []int{3}},
}

// gateByNum returns the gate with number n, or the first gate if unknown.
func gateByNum(n int) gate {
	for _, g := range allGates {
		if g.Num == n {
			return g
		}
	}
	return allGates[0]
}

// gatesByCenter groups gate numbers by center, in list order.
func gatesByCenter() map[center][]gate {
	out := make(map[center][]gate)
	for _, g := range allGates {
		out[g.Center] = append(out[g.Center], g)
	}
	return out
}

// gateCandidates lists channel partners followed by every gate on the same
// center (the gate itself included).
func gateCandidates() pathfind.CandidatesFunc[gate] {
	byCenter := gatesByCenter()
	return pathfind.Static(func(g gate) []gate {
		out := make([]gate, 0, len(g.Connected)+len(byCenter[g.Center]))
		for _, n := range g.Connected {
			out = append(out, gateByNum(n))
		}
		return append(out, byCenter[g.Center]...)
	})
}

// activeGateSet builds a set in which every active gate is linked to its
// active channel partners and to the active gates on its center. Inactive
// gates are only defined.
func activeGateSet(active []int) (*disjoint.Set[gate], error) {
	on := make(map[int]bool, len(active))
	for _, n := range active {
		on[n] = true
	}
	byCenter := gatesByCenter()
	return disjoint.New(allGates, gateNum, disjoint.WithLinker(func(_ int, g gate) []int {
		if !on[g.Num] {
			return nil
		}
		var out []int
		for _, n := range g.Connected {
			if on[n] {
				out = append(out, n)
			}
		}
		for _, o := range byCenter[g.Center] {
			if on[o.Num] {
				out = append(out, o.Num)
			}
		}
		return out
	}))
}
