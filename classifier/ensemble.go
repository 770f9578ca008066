package classifier

import (
	"fmt"

	"github.com/nnfcompile/circuits/nnf"
	"github.com/nnfcompile/circuits/obdd"
)

// Ensemble compiles a group of classifiers sharing the same input vector
// and conjoins their threshold functions into one NNF circuit, restoring
// the nn.py NeuralNetwork wrapper the distilled spec dropped (see
// SPEC_FULL.md).
type Ensemble struct {
	Classifiers []*Classifier
}

// NewEnsemble wraps classifiers for joint compilation.
func NewEnsemble(classifiers ...*Classifier) *Ensemble {
	return &Ensemble{Classifiers: classifiers}
}

// Compile quantizes (at precision significant digits, for any classifier
// not already integer) and compiles every member to its own OBDD/NNF, then
// translates each resulting circuit into one shared Manager and conjoins
// them. Every classifier must report the same Size.
func (e *Ensemble) Compile(precision int) (*nnf.Manager, *nnf.Circuit, error) {
	if len(e.Classifiers) == 0 {
		return nil, nil, fmt.Errorf("classifier: empty ensemble: %w", ErrParse)
	}
	varCount := e.Classifiers[0].Size
	mgr := nnf.NewManager(varCount)

	members := make([]*nnf.Gate, 0, len(e.Classifiers))
	for _, c := range e.Classifiers {
		if c.Size != varCount {
			return nil, nil, fmt.Errorf("classifier: ensemble size mismatch (%d vs %d): %w", c.Size, varCount, ErrParse)
		}
		q := c
		if !c.IsInteger {
			var err error
			q, err = c.WithPrecision(precision)
			if err != nil {
				return nil, nil, err
			}
		}
		obddMgr, root, err := q.Compile()
		if err != nil {
			return nil, nil, err
		}
		srcMgr, circuit, err := obdd.ToNNF(obddMgr.VarCount, root)
		if err != nil {
			return nil, nil, err
		}
		translated, err := srcMgr.Flatten(mgr, circuit.Root)
		if err != nil {
			return nil, nil, err
		}
		members = append(members, translated)
	}

	root := mgr.And(members...)
	return mgr, nnf.NewCircuit(root, varCount), nil
}
