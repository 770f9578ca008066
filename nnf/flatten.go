package nnf

import "fmt"

// Flatten rebuilds root (from manager m, typically containing Sub gates)
// inside dst, with every Sub replaced in-line by its materialized
// sub-circuit. Outer variable ids are preserved exactly; sub-circuit
// variable ids never escape above the Sub boundary - a sub-literal with
// literal l maps to the outer gate bound to variable var(l) (negated if
// l<0), not to dst's own variable l.
func (m *Manager) Flatten(dst *Manager, root *Gate) (*Gate, error) {
	order := Walk(root)
	translated := make(map[int]*Gate, len(order))

	for _, g := range order {
		var out *Gate
		var err error
		switch g.Kind {
		case KindLiteral:
			out, err = dst.Literal(g.Literal)
		case KindAnd:
			out = dst.And(translateChildren(translated, g.Children)...)
		case KindOr:
			out = dst.Or(g.DecisionVar, translateChildren(translated, g.Children)...)
		case KindSub:
			out, err = m.flattenSub(dst, g, translated)
		default:
			err = ErrUnknownGateType
		}
		if err != nil {
			return nil, err
		}
		translated[g.ID] = out
	}
	return translated[root.ID], nil
}

func translateChildren(translated map[int]*Gate, children []*Gate) []*Gate {
	out := make([]*Gate, len(children))
	for i, c := range children {
		out[i] = translated[c.ID]
	}
	return out
}

// flattenSub materializes g's sub-circuit and inlines it into dst, binding
// each sub-literal to the already-translated outer gate feeding the
// corresponding input position.
func (m *Manager) flattenSub(dst *Manager, g *Gate, outerTranslated map[int]*Gate) (*Gate, error) {
	_, subRoot, err := m.materialize(g)
	if err != nil {
		return nil, err
	}

	subOrder := Walk(subRoot)
	subTranslated := make(map[int]*Gate, len(subOrder))
	for _, sg := range subOrder {
		var out *Gate
		switch sg.Kind {
		case KindLiteral:
			v := sg.Var()
			if v < 1 || v > len(g.Children) {
				return nil, fmt.Errorf("nnf: sub-circuit %q references variable %d beyond %d inputs: %w",
					g.Filename, v, len(g.Children), ErrBadLiteral)
			}
			bound := outerTranslated[g.Children[v-1].ID]
			if sg.Literal < 0 {
				var err error
				bound, err = dst.Negate(bound)
				if err != nil {
					return nil, err
				}
			}
			out = bound
		case KindAnd:
			out = dst.And(translateChildren(subTranslated, sg.Children)...)
		case KindOr:
			out = dst.Or(sg.DecisionVar, translateChildren(subTranslated, sg.Children)...)
		default:
			return nil, ErrUnknownGateType
		}
		subTranslated[sg.ID] = out
	}
	return subTranslated[subRoot.ID], nil
}
