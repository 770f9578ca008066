package compiler

// DD is an opaque handle to a node in the target decision-diagram manager.
// The compiler package never inspects a DD's structure; it only threads
// handles through Manager's operations.
type DD interface{}

// Manager is the collaborator contract every compilation strategy targets.
// A real implementation wraps something like an SDD engine; live_count/
// dead_count/garbage_collect/minimize_limited expose its internal GC so the
// manual and by-depth strategies can drive it explicitly.
type Manager interface {
	Literal(lit int) DD
	True() DD
	False() DD
	And(a, b DD) DD
	Or(a, b DD) DD

	Ref(d DD)
	Deref(d DD)

	LiveCount() int
	DeadCount() int
	GarbageCollect()
	MinimizeLimited()

	AutoGCAndMinimizeOn()
	AutoGCAndMinimizeOff()
}
