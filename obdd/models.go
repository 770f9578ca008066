package obdd

import "iter"

// Models lazily enumerates every model (satisfying partial assignment) of
// n: each yielded map holds only the variables tested on the root-to-One
// path that produced it, not a completion over every variable in VarCount.
func (n *Node) Models() iter.Seq[map[int]int] {
	return func(yield func(map[int]int) bool) {
		n.walkSign(One, make(map[int]int), yield)
	}
}

// NonModels lazily enumerates every non-model (partial assignment reaching
// Zero) of n, with the same omit-untested-variables contract as Models.
func (n *Node) NonModels() iter.Seq[map[int]int] {
	return func(yield func(map[int]int) bool) {
		n.walkSign(Zero, make(map[int]int), yield)
	}
}

func (n *Node) walkSign(want Sign, partial map[int]int, yield func(map[int]int) bool) bool {
	if n.terminal {
		if n.sign != want {
			return true
		}
		return yield(cloneAssignment(partial))
	}

	partial[n.DVar] = 1
	if !n.Hi.walkSign(want, partial, yield) {
		delete(partial, n.DVar)
		return false
	}
	partial[n.DVar] = 0
	if !n.Lo.walkSign(want, partial, yield) {
		delete(partial, n.DVar)
		return false
	}
	delete(partial, n.DVar)
	return true
}

func cloneAssignment(m map[int]int) map[int]int {
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
