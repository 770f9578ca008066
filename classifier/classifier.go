package classifier

import (
	"fmt"
	"strings"
)

// Classifier is a linear threshold neuron: sum(Weights[i]*x[i]) >= Threshold
// over Size boolean variables. Weights and Threshold are kept as decimal
// strings until WithPrecision quantizes them, mirroring the text format
// they were parsed from.
type Classifier struct {
	Name      string
	Size      int
	Weights   []string
	Threshold string

	// IsInteger becomes true only after WithPrecision; Compile requires it.
	IsInteger bool
}

// String renders the classifier text form (name/size/weights/threshold),
// the same shape Parse accepts.
func (c *Classifier) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "name: %s\n", c.Name)
	fmt.Fprintf(&b, "size: %d\n", c.Size)
	fmt.Fprintf(&b, "weights: %s\n", strings.Join(c.Weights, " "))
	fmt.Fprintf(&b, "threshold: %s", c.Threshold)
	return b.String()
}
