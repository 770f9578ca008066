package compiler

import "github.com/nnfcompile/circuits/nnf"

// gcDepthLimit and minDepthLimit are the by-depth strategy's dead/live-count
// triggers; unlike CompileManual these are not doubled after firing -
// shape-aware scheduling is expected to keep growth roughly uniform across
// buckets.
const (
	gcDepthLimit  = 1 << 15
	minDepthLimit = 1 << 15
)

// CompileByDepth buckets every node by its maximum distance from root
// (labelDepth) and compiles deepest-bucket-first: since labelDepth makes a node's depth
// always strictly less than each of its children's, every child is
// guaranteed already materialized by the time its parent's bucket is
// processed. Suited to NNFs with irregular shape, where a plain post-order
// pass would interleave unrelated subtrees.
func CompileByDepth(mgr Manager, root *nnf.Gate) (DD, error) {
	refCount := primeRefCount(root)
	depth := labelDepth(root)
	buckets := bucketByDepth(root, depth)

	maxDepth := 0
	for d := range buckets {
		if d > maxDepth {
			maxDepth = d
		}
	}

	payload := make(map[int]DD)
	var alpha DD
	for d := maxDepth; d >= 0; d-- {
		for _, g := range buckets[d] {
			a, err := materializeRef(mgr, g, payload)
			if err != nil {
				return nil, err
			}
			for i := 0; i < refCount[g.ID]; i++ {
				mgr.Ref(a)
			}
			payload[g.ID] = a
			alpha = a

			if mgr.DeadCount() >= 2*gcDepthLimit {
				mgr.GarbageCollect()
			}
			if mgr.LiveCount() >= 2*minDepthLimit {
				mgr.MinimizeLimited()
			}
		}
	}

	mgr.Deref(alpha)
	return alpha, nil
}
