package compiler

import (
	"fmt"

	"github.com/nnfcompile/circuits/nnf"
)

// materialize folds g's already-translated children (looked up in payload)
// into a single DD via mgr, with no ref/deref traffic. Used by the plain
// strategy, which relies entirely on the external manager's own bookkeeping.
func materialize(mgr Manager, g *nnf.Gate, payload map[int]DD) (DD, error) {
	switch g.Kind {
	case nnf.KindLiteral:
		return mgr.Literal(g.Literal), nil
	case nnf.KindAnd:
		alpha := mgr.True()
		for _, c := range g.Children {
			alpha = mgr.And(alpha, payload[c.ID])
		}
		return alpha, nil
	case nnf.KindOr:
		alpha := mgr.False()
		for _, c := range g.Children {
			alpha = mgr.Or(alpha, payload[c.ID])
		}
		return alpha, nil
	default:
		return nil, fmt.Errorf("compiler: node %d: %w", g.ID, ErrUnflattened)
	}
}

// materializeRef is materialize plus a Deref of each child DD exactly once
// it has been folded in - the ref discipline shared by the automatic,
// manual, and by-depth strategies.
func materializeRef(mgr Manager, g *nnf.Gate, payload map[int]DD) (DD, error) {
	switch g.Kind {
	case nnf.KindLiteral:
		return mgr.Literal(g.Literal), nil
	case nnf.KindAnd:
		alpha := mgr.True()
		for _, c := range g.Children {
			child := payload[c.ID]
			alpha = mgr.And(alpha, child)
			mgr.Deref(child)
		}
		return alpha, nil
	case nnf.KindOr:
		alpha := mgr.False()
		for _, c := range g.Children {
			child := payload[c.ID]
			alpha = mgr.Or(alpha, child)
			mgr.Deref(child)
		}
		return alpha, nil
	default:
		return nil, fmt.Errorf("compiler: node %d: %w", g.ID, ErrUnflattened)
	}
}
