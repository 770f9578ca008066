package compiler

import "github.com/nnfcompile/circuits/nnf"

// CompileAutomatic primes ref counts, lets the external manager's own
// auto-GC-and-minimize housekeeping run for the duration of the pass, and
// bumps each translated gate's ref count to exactly its number of future
// consumers. The final Deref balances the root's priming ref, leaving a net
// reference count of zero per the driver's postcondition; a caller wanting
// to retain the result must Ref it again.
func CompileAutomatic(mgr Manager, root *nnf.Gate) (DD, error) {
	refCount := primeRefCount(root)
	mgr.AutoGCAndMinimizeOn()

	payload := make(map[int]DD)
	var alpha DD
	for _, g := range nnf.Walk(root) {
		a, err := materializeRef(mgr, g, payload)
		if err != nil {
			mgr.AutoGCAndMinimizeOff()
			return nil, err
		}
		for i := 0; i < refCount[g.ID]; i++ {
			mgr.Ref(a)
		}
		payload[g.ID] = a
		alpha = a
	}

	mgr.AutoGCAndMinimizeOff()
	mgr.Deref(alpha)
	return alpha, nil
}
