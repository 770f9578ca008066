package obdd

// cacheKey identifies a decision node within one variable's unique table:
// the pair of successor node ids is sufficient because DVar is fixed by
// which per-variable table the key lives in.
type cacheKey struct {
	hi, lo int
}

// Manager owns every Node minted for a fixed VarCount: the two terminals
// and a per-variable unique table keyed on (Hi.NID, Lo.NID). Two NewNode
// calls with an equal (dvar, hi, lo) always return the identical *Node.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	VarCount int

	idCounter int
	zero      *Node
	one       *Node
	cache     []map[cacheKey]*Node // cache[dvar], 1-indexed; cache[0] unused
}

// NewManager allocates a Manager for varCount boolean variables, with the
// zero terminal at NID 0 and the one terminal at NID 1.
func NewManager(varCount int) *Manager {
	m := &Manager{
		VarCount:  varCount,
		idCounter: 2,
		cache:     make([]map[cacheKey]*Node, varCount+1),
	}
	for i := range m.cache {
		m.cache[i] = make(map[cacheKey]*Node)
	}
	m.zero = &Node{NID: 0, terminal: true, sign: Zero}
	m.one = &Node{NID: 1, terminal: true, sign: One}
	return m
}

// Zero returns the canonical false terminal.
func (m *Manager) Zero() *Node { return m.zero }

// One returns the canonical true terminal.
func (m *Manager) One() *Node { return m.one }

func (m *Manager) nextID() int {
	id := m.idCounter
	m.idCounter++
	return id
}

// NewNode returns the hash-consed decision node at level dvar with
// successors hi/lo, allocating one on first sight of this (dvar, hi, lo)
// triple. Per the source this design follows, hi == lo still allocates a
// fresh decision - reduction is a separate explicit pass (see Reduce).
func (m *Manager) NewNode(dvar int, hi, lo *Node) *Node {
	key := cacheKey{hi: hi.NID, lo: lo.NID}
	table := m.cache[dvar]
	if n, ok := table[key]; ok {
		return n
	}
	n := &Node{NID: m.nextID(), DVar: dvar, Hi: hi, Lo: lo}
	table[key] = n
	return n
}
