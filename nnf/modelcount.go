package nnf

import "math/big"

// usedVariables returns, for every gate reachable from root, the set of
// variables occurring in its subtree. WeightedModelCount requires this pass
// first so Or's free-variable gap scaling (2^(|node.vars| - |child.vars|))
// has something to measure against.
func usedVariables(order []*Gate) (map[int]map[int]struct{}, error) {
	vars := make(map[int]map[int]struct{}, len(order))
	for _, g := range order {
		switch g.Kind {
		case KindLiteral:
			vars[g.ID] = map[int]struct{}{g.Var(): {}}
		case KindAnd, KindOr:
			s := make(map[int]struct{})
			for _, c := range g.Children {
				for v := range vars[c.ID] {
					s[v] = struct{}{}
				}
			}
			vars[g.ID] = s
		default:
			return nil, ErrUnknownGateType
		}
	}
	return vars, nil
}

// WeightedModelCount counts the satisfying total assignments over all
// m.VarCount variables, including ones that never appear under root: each
// Or child is scaled by 2^(gap) to account for variables free along that
// branch, and the final result is scaled once more by the gap between
// root's variables and VarCount. An Or's count is the plain sum of its
// scaled children, so the result is the exact model count only when every
// Or's children are mutually exclusive (as in circuits built by obdd.ToNNF);
// an assignment satisfying several children is counted once per child.
// Sub gates must be flattened away first; encountering one is an error.
func (m *Manager) WeightedModelCount(root *Gate) (*big.Int, error) {
	order := Walk(root)
	vars, err := usedVariables(order)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]*big.Int, len(order))
	for _, g := range order {
		switch g.Kind {
		case KindLiteral:
			counts[g.ID] = big.NewInt(1)
		case KindAnd:
			c := big.NewInt(1)
			for _, child := range g.Children {
				c.Mul(c, counts[child.ID])
			}
			counts[g.ID] = c
		case KindOr:
			c := big.NewInt(0)
			nodeVarCount := len(vars[g.ID])
			for _, child := range g.Children {
				gap := nodeVarCount - len(vars[child.ID])
				term := new(big.Int).Lsh(counts[child.ID], uint(gap))
				c.Add(c, term)
			}
			counts[g.ID] = c
		default:
			return nil, ErrUnknownGateType
		}
	}

	gap := m.VarCount - len(vars[root.ID])
	return new(big.Int).Lsh(counts[root.ID], uint(gap)), nil
}
