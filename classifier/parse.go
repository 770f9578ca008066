package classifier

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Parse reads the colon-delimited classifier text form. The required
// fields are size, threshold, and weights (space-separated); name is
// optional and defaults to empty. A bias field, if present, is ignored -
// this package canonicalizes on threshold only (see doc.go).
func Parse(text string) (*Classifier, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("classifier: malformed line %q: %w", line, ErrParse)
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	sizeStr, ok := fields["size"]
	if !ok {
		return nil, fmt.Errorf("classifier: missing field %q: %w", "size", ErrParse)
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, fmt.Errorf("classifier: size %q is not an integer: %w", sizeStr, ErrParse)
	}

	threshold, ok := fields["threshold"]
	if !ok {
		return nil, fmt.Errorf("classifier: missing field %q: %w", "threshold", ErrParse)
	}
	if _, err := strconv.ParseFloat(threshold, 64); err != nil {
		return nil, fmt.Errorf("classifier: threshold %q is not numeric: %w", threshold, ErrParse)
	}

	weightsStr, ok := fields["weights"]
	if !ok {
		return nil, fmt.Errorf("classifier: missing field %q: %w", "weights", ErrParse)
	}
	weights := strings.Fields(weightsStr)
	if len(weights) != size {
		return nil, fmt.Errorf("classifier: %d weights for size %d: %w", len(weights), size, ErrParse)
	}
	for _, w := range weights {
		if _, err := strconv.ParseFloat(w, 64); err != nil {
			return nil, fmt.Errorf("classifier: weight %q is not numeric: %w", w, ErrParse)
		}
	}

	return &Classifier{
		Name:      fields["name"],
		Size:      size,
		Weights:   weights,
		Threshold: threshold,
	}, nil
}

// Read parses the classifier text form from filename.
func Read(filename string) (*Classifier, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("classifier: read %s: %w", filename, err)
	}
	return Parse(string(data))
}
