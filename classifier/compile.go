package classifier

import (
	"fmt"
	"strconv"

	"github.com/nnfcompile/circuits/obdd"
)

// Compile builds the OBDD for sum(w[i]*x[i]) >= threshold. c must have
// already gone through WithPrecision.
func (c *Classifier) Compile() (*obdd.Manager, *obdd.Node, error) {
	if !c.IsInteger {
		return nil, nil, ErrNotInteger
	}

	weights := make([]int, len(c.Weights))
	for i, w := range c.Weights {
		v, err := strconv.Atoi(w)
		if err != nil {
			return nil, nil, fmt.Errorf("classifier: weight %q is not an integer: %w", w, ErrQuantization)
		}
		weights[i] = v
	}
	threshold, err := strconv.Atoi(c.Threshold)
	if err != nil {
		return nil, nil, fmt.Errorf("classifier: threshold %q is not an integer: %w", c.Threshold, ErrQuantization)
	}

	mgr, root, err := obdd.CompileThreshold(weights, threshold)
	if err != nil {
		return nil, nil, err
	}
	return mgr, root, nil
}
