package nnf

import "errors"

// ErrNoResolver indicates a Sub gate needed materializing but its manager
// was built without a Resolver (see WithResolver).
var ErrNoResolver = errors.New("nnf: sub-circuit gate has no resolver configured")

// Resolver materializes the sub-circuit named by a Sub gate's filename into
// a standalone NNF, compiled at the given precision. The nnf package itself
// never parses classifier files or runs the threshold compiler - that
// would require importing obdd and classifier, which both import nnf for
// OBDD->NNF conversion. A concrete Resolver lives above this package (see
// classifier.NeuronResolver) and is injected via WithResolver.
type Resolver interface {
	Resolve(filename string, precision int) (*Manager, *Gate, error)
}

// subCircuit is the memoized result of resolving a Sub gate once.
type subCircuit struct {
	manager *Manager
	root    *Gate
}

// materialize resolves g's sub-circuit via m's configured Resolver, caching
// the result on g so repeat calls are free. g must be a KindSub gate.
func (m *Manager) materialize(g *Gate) (*Manager, *Gate, error) {
	if g.sub != nil {
		return g.sub.manager, g.sub.root, nil
	}
	if m.resolver == nil {
		return nil, nil, ErrNoResolver
	}
	subMgr, subRoot, err := m.resolver.Resolve(g.Filename, m.precision)
	if err != nil {
		return nil, nil, err
	}
	g.sub = &subCircuit{manager: subMgr, root: subRoot}
	return subMgr, subRoot, nil
}
