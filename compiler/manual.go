package compiler

import "github.com/nnfcompile/circuits/nnf"

// gcStartThreshold and minStartThreshold are the manual strategy's initial
// dead/live-count triggers; each doubles once it fires.
const (
	gcStartThreshold  = 34000
	minStartThreshold = 34000
)

// CompileManual uses the same ref discipline as CompileAutomatic but drives
// the external manager's GC and minimization explicitly instead of
// delegating to its auto-housekeeping: garbage_collect fires once dead_count
// reaches twice the running threshold (which then doubles), and
// minimize_limited fires analogously on live_count. Suited to large NNFs
// whose growth is predictable enough to schedule around.
func CompileManual(mgr Manager, root *nnf.Gate) (DD, error) {
	refCount := primeRefCount(root)
	gcThreshold := gcStartThreshold
	minThreshold := minStartThreshold

	payload := make(map[int]DD)
	var alpha DD
	for _, g := range nnf.Walk(root) {
		a, err := materializeRef(mgr, g, payload)
		if err != nil {
			return nil, err
		}
		for i := 0; i < refCount[g.ID]; i++ {
			mgr.Ref(a)
		}
		payload[g.ID] = a
		alpha = a

		if mgr.DeadCount() >= 2*gcThreshold {
			gcThreshold *= 2
			mgr.GarbageCollect()
		}
		if mgr.LiveCount() >= 2*minThreshold {
			minThreshold *= 2
			mgr.MinimizeLimited()
		}
	}

	mgr.Deref(alpha)
	return alpha, nil
}
