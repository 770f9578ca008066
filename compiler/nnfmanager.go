package compiler

import "github.com/nnfcompile/circuits/nnf"

// NnfManager adapts an *nnf.Manager to the Manager collaborator contract,
// so the compilation strategies can run standalone when no external SDD
// engine is linked in: DD values are *nnf.Gate, and since nnf.Manager's
// hash-consed gates are never freed, live/dead accounting
// is tracked here via an explicit ref-count side table rather than by
// querying the underlying manager.
type NnfManager struct {
	mgr    *nnf.Manager
	refs   map[int]int
	autoGC bool
}

// NewNnfManager wraps mgr. Every DD passed back into this manager's methods
// must be a *nnf.Gate minted by mgr.
func NewNnfManager(mgr *nnf.Manager) *NnfManager {
	return &NnfManager{mgr: mgr, refs: make(map[int]int)}
}

func (n *NnfManager) Literal(lit int) DD {
	g, err := n.mgr.Literal(lit)
	if err != nil {
		panic(err)
	}
	return g
}

func (n *NnfManager) True() DD  { return n.mgr.True() }
func (n *NnfManager) False() DD { return n.mgr.False() }

func (n *NnfManager) And(a, b DD) DD { return n.mgr.And(a.(*nnf.Gate), b.(*nnf.Gate)) }
func (n *NnfManager) Or(a, b DD) DD  { return n.mgr.Or(0, a.(*nnf.Gate), b.(*nnf.Gate)) }

func (n *NnfManager) Ref(d DD) { n.refs[d.(*nnf.Gate).ID]++ }

func (n *NnfManager) Deref(d DD) {
	id := d.(*nnf.Gate).ID
	if n.refs[id] > 0 {
		n.refs[id]--
	}
}

// LiveCount counts gates with a positive ref count.
func (n *NnfManager) LiveCount() int {
	live := 0
	for _, c := range n.refs {
		if c > 0 {
			live++
		}
	}
	return live
}

// DeadCount counts gates whose ref count has dropped to zero. Since this
// adapter never actually reclaims a hash-consed gate, "dead" here only
// means eligible, not collected.
func (n *NnfManager) DeadCount() int {
	dead := 0
	for _, c := range n.refs {
		if c == 0 {
			dead++
		}
	}
	return dead
}

// GarbageCollect is a no-op: this adapter has nothing to reclaim.
func (n *NnfManager) GarbageCollect() {}

// MinimizeLimited is a no-op: structural minimization requires a real
// vtree-aware DD engine, which this adapter does not provide.
func (n *NnfManager) MinimizeLimited() {}

func (n *NnfManager) AutoGCAndMinimizeOn()  { n.autoGC = true }
func (n *NnfManager) AutoGCAndMinimizeOff() { n.autoGC = false }
