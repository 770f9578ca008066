// Command nnfc reads an NNF circuit, flattens any sub-circuit gates against
// the classifier-neuron resolver, compiles the result with the by-depth
// driver strategy, and optionally reports test-set accuracy against a CSV
// dataset. Usage:
//
//	nnfc NNF-FILENAME [DIGITS-OF-PRECISION] [DATASET-FILENAME]
//
// DIGITS-OF-PRECISION defaults to 4. Exit 0 on success; non-zero with a
// one-line error on failure.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nnfcompile/circuits/classifier"
	"github.com/nnfcompile/circuits/compiler"
	"github.com/nnfcompile/circuits/dataset"
	"github.com/nnfcompile/circuits/format"
	"github.com/nnfcompile/circuits/nnf"
)

func main() {
	timing := flag.Bool("timing", false, "print wall-clock duration of each phase to stderr")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s [-timing] NNF-FILENAME [DIGITS-OF-PRECISION] [DATASET-FILENAME]\n", os.Args[0])
		os.Exit(1)
	}

	nnfFilename := args[0]
	precision := nnf.DefaultPrecision
	if len(args) >= 2 {
		p, err := parsePrecision(args[1])
		if err != nil {
			fatal(err)
		}
		precision = p
	}
	var datasetFilename string
	if len(args) == 3 {
		datasetFilename = args[2]
	}

	if err := run(nnfFilename, precision, datasetFilename, *timing); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func parsePrecision(s string) (int, error) {
	var p int
	if _, err := fmt.Sscanf(s, "%d", &p); err != nil {
		return 0, fmt.Errorf("nnfc: %q is not an integer digits-of-precision: %w", s, err)
	}
	return p, nil
}

func run(nnfFilename string, precision int, datasetFilename string, timing bool) error {
	phase := newPhaseTimer(timing)

	mgr, circuit, err := format.ReadNNFFile(nnfFilename, nnf.WithResolver(classifier.NeuronResolver{}), nnf.WithPrecision(precision))
	if err != nil {
		return fmt.Errorf("nnfc: reading %s: %w", nnfFilename, err)
	}
	phase.mark("reading")

	flatMgr := nnf.NewManager(mgr.VarCount)
	flatRoot, err := mgr.Flatten(flatMgr, circuit.Root)
	if err != nil {
		return fmt.Errorf("nnfc: flattening: %w", err)
	}
	flat := nnf.NewCircuit(flatRoot, mgr.VarCount)
	phase.mark("flattening")

	fmt.Printf("%d node count\n", flat.NodeCount)
	fmt.Printf("%d edge count\n", flat.EdgeCount)

	count, err := flat.ModelCount(flatMgr)
	if err != nil {
		return fmt.Errorf("nnfc: counting models: %w", err)
	}
	fmt.Printf("model count: %s\n", count.String())
	phase.mark("counting")

	dd := compiler.NewNnfManager(flatMgr)
	alpha, err := compiler.CompileByDepth(dd, flat.Root)
	if err != nil {
		return fmt.Errorf("nnfc: compiling: %w", err)
	}
	compiledRoot := alpha.(*nnf.Gate)
	fmt.Printf("compiled node id: %d\n", compiledRoot.ID)
	phase.mark("compiling")

	if datasetFilename != "" {
		examples, err := dataset.ReadFile(datasetFilename)
		if err != nil {
			return fmt.Errorf("nnfc: reading dataset: %w", err)
		}
		correct, total, err := dataset.Accuracy(examples, func(inst map[int]int) (bool, error) {
			return flat.IsModel(flatMgr, inst)
		})
		if err != nil {
			return fmt.Errorf("nnfc: evaluating test set: %w", err)
		}
		var accuracy float64
		if total > 0 {
			accuracy = float64(correct) / float64(total)
		}
		fmt.Printf("test accuracy: %d/%d = %.4f\n", correct, total, accuracy)
		phase.mark("evaluating test set accuracy")
	}

	return nil
}

// phaseTimer prints each phase's wall-clock duration to stderr when timing
// is enabled, restoring the original compiler.py CLI's timing harness.
type phaseTimer struct {
	enabled bool
	last    time.Time
}

func newPhaseTimer(enabled bool) *phaseTimer {
	return &phaseTimer{enabled: enabled, last: time.Now()}
}

func (p *phaseTimer) mark(label string) {
	if !p.enabled {
		return
	}
	now := time.Now()
	fmt.Fprintf(os.Stderr, "%s: %s\n", label, now.Sub(p.last))
	p.last = now
}
