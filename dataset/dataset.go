package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Example is one comma-separated row: Features holds every value but the
// last (the variables, in 1..len(Features) order) and Label holds the last.
type Example struct {
	Features []int
	Label    int
}

// Instantiation returns Features as a total instantiation keyed 1..n,
// matching the map[int]int shape nnf.Manager.IsModel and classifier queries
// expect.
func (e Example) Instantiation() map[int]int {
	inst := make(map[int]int, len(e.Features))
	for i, v := range e.Features {
		inst[i+1] = v
	}
	return inst
}

// Read parses comma-separated integer rows from r, one Example per line,
// treating the last field of each row as the label.
func Read(r io.Reader) ([]Example, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	var dataset []Example
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("dataset: malformed value %q: %w", f, ErrParse)
			}
			row[i] = v
		}
		if len(row) < 1 {
			return nil, fmt.Errorf("dataset: empty row: %w", ErrParse)
		}
		dataset = append(dataset, Example{Features: row[:len(row)-1], Label: row[len(row)-1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}
	return dataset, nil
}

// ReadFile opens filename and parses its CSV content.
func ReadFile(filename string) ([]Example, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", filename, err)
	}
	defer f.Close()
	return Read(f)
}

// Accuracy reports how many of dataset's examples fact (an oracle such as
// Circuit.IsModel, partially applied) predicts correctly, and the total
// examined, mirroring the test-set accuracy check in the module's
// reference driver.
func Accuracy(examples []Example, fact func(inst map[int]int) (bool, error)) (correct, total int, err error) {
	for _, ex := range examples {
		predicted, err := fact(ex.Instantiation())
		if err != nil {
			return 0, 0, err
		}
		if predicted == (ex.Label != 0) {
			correct++
		}
	}
	return correct, len(examples), nil
}
