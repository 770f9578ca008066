package obdd

// IsModel walks decisions according to inst[DVar] and returns the terminal
// reached. inst need not cover every variable in VarCount, only those on
// the path actually taken.
func (n *Node) IsModel(inst map[int]int) bool {
	if n.terminal {
		return n.sign == One
	}
	if inst[n.DVar] != 0 {
		return n.Hi.IsModel(inst)
	}
	return n.Lo.IsModel(inst)
}
