// Package classifier parses, quantizes, and compiles a linear threshold
// classifier (a single neuron with integer weights): the Boolean function
// sum(w[i]*x[i]) >= threshold over n binary variables.
//
// The lifecycle is Parse -> WithPrecision -> Compile: Parse reads the
// colon-delimited text form with floating or integer weights, WithPrecision
// rescales to a target number of significant digits and truncates to
// integers (idempotent when the source is already integer), and Compile
// requires an integer classifier and hands weights/threshold to
// obdd.CompileThreshold.
//
// This package canonicalizes the classifier text format on a "threshold"
// field; a "bias" field is not recognized (see DESIGN.md's note on the
// source's two divergent parsers).
//
// Errors:
//
//	ErrParse        - malformed classifier text (missing/non-numeric field).
//	ErrQuantization - WithPrecision produced a non-finite scaled value.
//	ErrNotInteger   - Compile called before WithPrecision.
package classifier

import "errors"

var (
	// ErrParse indicates the classifier text could not be parsed.
	ErrParse = errors.New("classifier: parse error")

	// ErrQuantization indicates with_precision produced a non-finite value;
	// per the module's invariants this should be unreachable for finite
	// weights, threshold, and digit counts.
	ErrQuantization = errors.New("classifier: quantization error")

	// ErrNotInteger indicates Compile was called on a classifier that
	// has not gone through WithPrecision.
	ErrNotInteger = errors.New("classifier: not quantized to integer weights")
)
