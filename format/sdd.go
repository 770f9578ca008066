package format

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/nnfcompile/circuits/obdd"
)

// WriteSDD writes the bit-exact SDD text format for the reduced OBDD rooted
// at root, ported directly from the source's save_sdd: two literal lines
// per variable, then one terminal/decision line per node in post-order,
// with decisions on the last variable collapsed onto the literal/terminal
// ids instead of emitting a redundant decision node.
func WriteSDD(w io.Writer, varCount int, root *obdd.Node) error {
	order := obdd.Walk(root)

	lastVar := varCount
	decisionCount, lastVarDecisionCount, terminalCount := 0, 0, 0
	for _, n := range order {
		if n.IsTerminal() {
			terminalCount++
			continue
		}
		decisionCount++
		if n.DVar == lastVar {
			lastVarDecisionCount++
		}
	}
	nodeCount := (decisionCount + terminalCount + 2*varCount) - lastVarDecisionCount

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "sdd %d\n", nodeCount)

	nodeID := 0
	for v := 1; v <= varCount; v++ {
		vtreeID := 2 * (v - 1)
		fmt.Fprintf(bw, "L %d %d %d\n", nodeID, vtreeID, -v)
		nodeID++
		fmt.Fprintf(bw, "L %d %d %d\n", nodeID, vtreeID, v)
		nodeID++
	}

	cache := make(map[int]int, len(order))
	var falseID, trueID int
	for _, n := range order {
		var newNodeID int
		if n.IsTerminal() {
			if n.IsFalse() {
				fmt.Fprintf(bw, "F %d\n", nodeID)
				falseID = nodeID
			} else {
				fmt.Fprintf(bw, "T %d\n", nodeID)
				trueID = nodeID
			}
			newNodeID = nodeID
			nodeID++
		} else {
			v := n.DVar
			negID, posID := 2*(v-1), 2*(v-1)+1
			if v == lastVar {
				switch {
				case n.Hi.IsTrue() && n.Lo.IsTrue():
					newNodeID = trueID
				case n.Hi.IsFalse() && n.Lo.IsFalse():
					newNodeID = falseID
				case n.Hi.IsTrue() && n.Lo.IsFalse():
					newNodeID = posID
				case n.Hi.IsFalse() && n.Lo.IsTrue():
					newNodeID = negID
				default:
					return fmt.Errorf("format: last-variable decision node %d is not reduced: %w", n.NID, ErrParse)
				}
			} else {
				vtreeID := 2*(v-1) + 1
				hiID := cache[n.Hi.NID]
				loID := cache[n.Lo.NID]
				fmt.Fprintf(bw, "D %d %d 2 %d %d %d %d\n", nodeID, vtreeID, posID, hiID, negID, loID)
				newNodeID = nodeID
				nodeID++
			}
		}
		cache[n.NID] = newNodeID
	}

	return bw.Flush()
}

// WriteSDDFile writes the SDD text form to filename.
func WriteSDDFile(filename string, varCount int, root *obdd.Node) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("format: write %s: %w", filename, err)
	}
	defer f.Close()
	return WriteSDD(f, varCount, root)
}
