package classifier

import (
	"fmt"
	"path/filepath"

	"github.com/nnfcompile/circuits/nnf"
	"github.com/nnfcompile/circuits/obdd"
)

// NeuronResolver implements nnf.Resolver for Sub gates whose filename names
// a threshold-neuron file: extension ".neuron" or none. Any other
// extension is rejected with ErrUnsupportedExtension, since this package
// knows how to materialize neurons, not arbitrary pre-built NNF files.
type NeuronResolver struct{}

// ErrUnsupportedExtension indicates a Sub gate named a file this resolver
// does not know how to materialize.
var ErrUnsupportedExtension = fmt.Errorf("classifier: unsupported sub-circuit extension")

// Resolve quantizes and compiles the neuron at filename to precision
// significant digits, then converts the resulting OBDD to an NNF circuit.
func (NeuronResolver) Resolve(filename string, precision int) (*nnf.Manager, *nnf.Gate, error) {
	ext := filepath.Ext(filename)
	if ext != "" && ext != ".neuron" {
		return nil, nil, fmt.Errorf("classifier: %s: %w", ext, ErrUnsupportedExtension)
	}

	c, err := Read(filename)
	if err != nil {
		return nil, nil, err
	}
	q, err := c.WithPrecision(precision)
	if err != nil {
		return nil, nil, err
	}
	mgr, root, err := q.Compile()
	if err != nil {
		return nil, nil, err
	}
	nnfMgr, circuit, err := obdd.ToNNF(mgr.VarCount, root)
	if err != nil {
		return nil, nil, err
	}
	return nnfMgr, circuit.Root, nil
}
