package obdd

import (
	"github.com/nnfcompile/circuits/cnf"
	"github.com/nnfcompile/circuits/nnf"
)

// ToNNF converts root into an NNF circuit over a fresh nnf.Manager:
// terminals map to True/False, and decision(dvar,hi,lo) becomes
// Or(And(Literal(dvar),hi'), And(Literal(-dvar),lo')). Post-order over root
// guarantees every child is already translated before its parent.
func ToNNF(varCount int, root *Node) (*nnf.Manager, *nnf.Circuit, error) {
	nnfMgr := nnf.NewManager(varCount)
	order := Walk(root)
	translated := make(map[int]*nnf.Gate, len(order))

	for _, n := range order {
		var g *nnf.Gate
		if n.terminal {
			if n.sign == One {
				g = nnfMgr.True()
			} else {
				g = nnfMgr.False()
			}
		} else {
			plit, err := nnfMgr.Literal(n.DVar)
			if err != nil {
				return nil, nil, err
			}
			nlit, err := nnfMgr.Literal(-n.DVar)
			if err != nil {
				return nil, nil, err
			}
			hi := nnfMgr.And(plit, translated[n.Hi.NID])
			lo := nnfMgr.And(nlit, translated[n.Lo.NID])
			g = nnfMgr.Or(n.DVar, hi, lo)
		}
		translated[n.NID] = g
	}

	root2 := translated[root.NID]
	return nnfMgr, nnf.NewCircuit(root2, varCount), nil
}

// ToCNF Tseitin-encodes root: each node (terminal or decision) gets a wire
// numbered baseIndex+postOrderIndex. A terminal emits a unit clause; a
// decision with wire w, hi-wire h, lo-wire l, and variable v emits the five
// clauses encoding w <=> (v & h) | (-v & l). The last wire assigned is the
// formula's output variable, also returned as var_count on the Cnf.
func ToCNF(root *Node, baseIndex int) (*cnf.Cnf, int) {
	order := Walk(root)
	wire := make(map[int]int, len(order))

	var clauses [][]int
	var lastWire int
	for idx, n := range order {
		me := baseIndex + idx
		if n.terminal {
			lit := me
			if n.IsFalse() {
				lit = -me
			}
			clauses = append(clauses, []int{lit})
		} else {
			v, hi, lo := n.DVar, wire[n.Hi.NID], wire[n.Lo.NID]
			clauses = append(clauses,
				[]int{-me, lo, v},
				[]int{-me, hi, -v},
				[]int{-me, lo, hi},
				[]int{me, -lo, v},
				[]int{me, -hi, -v},
			)
		}
		wire[n.NID] = me
		lastWire = me
	}

	return cnf.New(lastWire, clauses), lastWire
}
