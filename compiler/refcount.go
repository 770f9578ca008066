package compiler

import "github.com/nnfcompile/circuits/nnf"

// primeRefCount post-orders root and sets each node's ref count to its
// number of in-edges, plus one for the root. This is the exact number of
// future Ref calls the compiled DD must receive to survive every parent
// construction - see the module's ref-count priming note.
func primeRefCount(root *nnf.Gate) map[int]int {
	refCount := make(map[int]int)
	for _, g := range nnf.Walk(root) {
		if _, ok := refCount[g.ID]; !ok {
			refCount[g.ID] = 0
		}
		for _, c := range g.Children {
			refCount[c.ID]++
		}
	}
	refCount[root.ID]++
	return refCount
}
