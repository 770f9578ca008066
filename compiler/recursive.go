package compiler

import (
	"fmt"

	"github.com/nnfcompile/circuits/nnf"
)

// CompileRecursive uses the same ref discipline as CompileAutomatic but
// traverses recursively rather than over a precomputed post-order: while
// folding an And/Or's children, the running accumulator is Ref'd before each
// recursive descent and Deref'd after, so a partial fold survives any GC the
// external manager triggers mid-descent. Suited to deep circuits where the
// accumulator would otherwise be the most GC-exposed value in the pass.
func CompileRecursive(mgr Manager, root *nnf.Gate) (DD, error) {
	refCount := primeRefCount(root)
	mgr.AutoGCAndMinimizeOn()

	payload := make(map[int]DD)
	alpha, err := compileRecursiveNode(mgr, root, refCount, payload)
	mgr.AutoGCAndMinimizeOff()
	if err != nil {
		return nil, err
	}

	mgr.Deref(alpha)
	return alpha, nil
}

func compileRecursiveNode(mgr Manager, g *nnf.Gate, refCount map[int]int, payload map[int]DD) (DD, error) {
	if a, ok := payload[g.ID]; ok {
		return a, nil
	}

	var alpha DD
	switch g.Kind {
	case nnf.KindLiteral:
		alpha = mgr.Literal(g.Literal)
	case nnf.KindAnd:
		alpha = mgr.True()
		for _, c := range g.Children {
			mgr.Ref(alpha)
			beta, err := compileRecursiveNode(mgr, c, refCount, payload)
			if err != nil {
				return nil, err
			}
			mgr.Deref(alpha)
			alpha = mgr.And(alpha, beta)
			mgr.Deref(beta)
		}
	case nnf.KindOr:
		alpha = mgr.False()
		for _, c := range g.Children {
			mgr.Ref(alpha)
			beta, err := compileRecursiveNode(mgr, c, refCount, payload)
			if err != nil {
				return nil, err
			}
			mgr.Deref(alpha)
			alpha = mgr.Or(alpha, beta)
			mgr.Deref(beta)
		}
	default:
		return nil, fmt.Errorf("compiler: node %d: %w", g.ID, ErrUnflattened)
	}

	for i := 0; i < refCount[g.ID]; i++ {
		mgr.Ref(alpha)
	}
	payload[g.ID] = alpha
	return alpha, nil
}
