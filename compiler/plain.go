package compiler

import "github.com/nnfcompile/circuits/nnf"

// CompilePlain post-orders root and rebuilds it in mgr with no ref/deref
// traffic at all: the external manager does all of the work. Suitable for
// NNFs small enough that the manager's own housekeeping never needs a push.
func CompilePlain(mgr Manager, root *nnf.Gate) (DD, error) {
	payload := make(map[int]DD)
	var alpha DD
	for _, g := range nnf.Walk(root) {
		a, err := materialize(mgr, g, payload)
		if err != nil {
			return nil, err
		}
		payload[g.ID] = a
		alpha = a
	}
	return alpha, nil
}
