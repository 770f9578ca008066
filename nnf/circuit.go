package nnf

import "math/big"

// Circuit pairs a root Gate with the cached counts the wire format and
// model-counting callers need: node and edge totals (as seen by Walk) and
// the variable count the circuit is defined over.
type Circuit struct {
	Root      *Gate
	NodeCount int
	EdgeCount int
	VarCount  int
}

// NewCircuit derives NodeCount/EdgeCount from root via Walk and pairs them
// with the given VarCount.
func NewCircuit(root *Gate, varCount int) *Circuit {
	order := Walk(root)
	edgeCount := 0
	for _, g := range order {
		edgeCount += len(g.Children)
	}
	return &Circuit{Root: root, NodeCount: len(order), EdgeCount: edgeCount, VarCount: varCount}
}

// ModelCount delegates to m.WeightedModelCount(c.Root).
func (c *Circuit) ModelCount(m *Manager) (*big.Int, error) {
	return m.WeightedModelCount(c.Root)
}

// IsModel delegates to m.IsModel(c.Root, inst).
func (c *Circuit) IsModel(m *Manager, inst map[int]int) (bool, error) {
	return m.IsModel(c.Root, inst)
}

// Flatten delegates to m.Flatten(dst, c.Root) and wraps the translated root
// back into a Circuit over dst.VarCount.
func (c *Circuit) Flatten(m, dst *Manager) (*Circuit, error) {
	root, err := m.Flatten(dst, c.Root)
	if err != nil {
		return nil, err
	}
	return NewCircuit(root, dst.VarCount), nil
}
