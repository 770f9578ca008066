// Package dataset loads the comma-separated integer instances used to
// exercise a compiled classifier's IsModel queries, grounded on the
// original data.py's read_csv.
package dataset

import "errors"

// ErrParse indicates a dataset line could not be parsed as comma-separated
// integers.
var ErrParse = errors.New("dataset: parse error")
