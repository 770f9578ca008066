package classifier

import (
	"fmt"
	"math"
	"strconv"
)

// WithPrecision rescales c to keep digits significant digits of the
// largest-magnitude weight and truncates every weight and the threshold to
// an integer (C-style truncation toward zero). It is idempotent when c is
// already integer. The scale is s = 10^(digits-1-e) where
// e = floor(log10(max|w_i|)) (e = 0 when every weight is zero).
func (c *Classifier) WithPrecision(digits int) (*Classifier, error) {
	biggest := 0.0
	floats := make([]float64, len(c.Weights))
	for i, w := range c.Weights {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("classifier: weight %q is not numeric: %w", w, ErrParse)
		}
		floats[i] = v
		if a := math.Abs(v); a > biggest {
			biggest = a
		}
	}
	threshold, err := strconv.ParseFloat(c.Threshold, 64)
	if err != nil {
		return nil, fmt.Errorf("classifier: threshold %q is not numeric: %w", c.Threshold, ErrParse)
	}

	e := 0.0
	if biggest != 0 {
		e = math.Floor(math.Log10(biggest))
	}
	scale := math.Pow(10, float64(digits)-1-e)

	newWeights := make([]string, len(floats))
	for i, v := range floats {
		scaled := scale * v
		if math.IsNaN(scaled) || math.IsInf(scaled, 0) {
			return nil, fmt.Errorf("classifier: scaling weight %v by %v: %w", v, scale, ErrQuantization)
		}
		newWeights[i] = strconv.Itoa(int(scaled))
	}
	scaledThreshold := scale * threshold
	if math.IsNaN(scaledThreshold) || math.IsInf(scaledThreshold, 0) {
		return nil, fmt.Errorf("classifier: scaling threshold %v by %v: %w", threshold, scale, ErrQuantization)
	}

	return &Classifier{
		Name:      c.Name,
		Size:      c.Size,
		Weights:   newWeights,
		Threshold: strconv.Itoa(int(scaledThreshold)),
		IsInteger: true,
	}, nil
}
