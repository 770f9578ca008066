package obdd

// Reduce applies the standard OBDD reduction to root: every decision whose
// hi and lo successors turn out equal (after their own reduction) collapses
// to that shared child. It is a separate explicit pass over NewNode's
// hash-consing, matching the source this module follows rather than folding
// reduction into construction. A decision that survives has its Hi/Lo
// rewired in place to its successors' reduced replacements, so no collapsed
// decision stays reachable from the returned root.
//
// Reduce is idempotent: reducing an already-reduced root returns the same
// root unchanged (property 6 in the module's invariant list).
func Reduce(root *Node) *Node {
	order := Walk(root)

	for _, n := range order {
		if n.terminal {
			continue
		}
		hi, lo := n.Hi, n.Lo
		if hi.payload != nil {
			hi = hi.payload
		}
		if lo.payload != nil {
			lo = lo.payload
		}
		if hi == lo {
			n.payload = hi
		} else {
			n.Hi, n.Lo = hi, lo
		}
	}

	result := root
	if root.payload != nil {
		result = root.payload
	}

	for _, n := range order {
		n.payload = nil
	}
	return result
}
