package disjoint_test

// gate is a small item type with a 1-based number as key.
type gate struct {
	Num    int
	Center string
}

func gateNum(g gate) int { return g.Num }

// gates returns n gates numbered 1..n, listed in reverse so that list
// position and key differ.
func gates(n int) []gate {
	out := make([]gate, 0, n)
	for i := n; i >= 1; i-- {
		c := "odd"
		if i%2 == 0 {
			c = "even"
		}
		out = append(out, gate{Num: i, Center: c})
	}
	return out
}

// sameRoot reports whether all indices resolve to one root.
func sameRoot(find func(int) (int, error), idx ...int) bool {
	if len(idx) == 0 {
		return true
	}
	first, err := find(idx[0])
	if err != nil {
		return false
	}
	for _, i := range idx[1:] {
		r, err := find(i)
		if err != nil || r != first {
			return false
		}
	}
	return true
}
