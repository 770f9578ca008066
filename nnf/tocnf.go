package nnf

import "github.com/nnfcompile/circuits/cnf"

// ToCNF Tseitin-encodes the circuit: every gate gets a wire, literals
// contribute their own literal value as their wire, and every And/Or gate
// gets a fresh auxiliary variable numbered above m.VarCount (in Walk/
// post-order). For an And gate with wire w and children c1..ck, this emits
// the implication w -> (c1 & ... & ck) as k binary clauses [-w ci] plus the
// reverse clause [w -c1 ... -ck]; Or is the dual. The last wire assigned is
// the formula's output variable.
func (m *Manager) ToCNF(root *Gate) (*cnf.Cnf, int, error) {
	order := Walk(root)
	wire := make(map[int]int, len(order))
	nextVar := m.VarCount + 1

	var clauses [][]int
	var lastWire int
	for _, g := range order {
		switch g.Kind {
		case KindLiteral:
			lastWire = g.Literal
		case KindAnd:
			w := nextVar
			nextVar++
			clause := []int{w}
			for _, c := range g.Children {
				cw := wire[c.ID]
				clauses = append(clauses, []int{-w, cw})
				clause = append(clause, -cw)
			}
			clauses = append(clauses, clause)
			lastWire = w
		case KindOr:
			w := nextVar
			nextVar++
			clause := []int{-w}
			for _, c := range g.Children {
				cw := wire[c.ID]
				clauses = append(clauses, []int{w, -cw})
				clause = append(clause, cw)
			}
			clauses = append(clauses, clause)
			lastWire = w
		default:
			return nil, 0, ErrUnknownGateType
		}
		wire[g.ID] = lastWire
	}

	return cnf.New(nextVar-1, clauses), lastWire, nil
}
