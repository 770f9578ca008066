// Package format implements the module's wire formats: the NNF text
// format (read/write), the right-linear vtree text format (write), and the
// SDD text format (write). DIMACS CNF lives in package cnf since it has no
// dependency on obdd/nnf; format depends on both.
//
// Errors:
//
//	ErrParse                 - malformed NNF text.
//	ErrUnsupportedPersistence - attempted to write an NNF containing a Sub gate.
package format

import "errors"

var (
	// ErrParse indicates the NNF text could not be parsed.
	ErrParse = errors.New("format: parse error")

	// ErrUnsupportedPersistence indicates an attempt to save an NNF
	// circuit that still contains a Sub gate; only flattened circuits can
	// round-trip through the NNF text format.
	ErrUnsupportedPersistence = errors.New("format: cannot save a circuit containing sub-circuit gates")
)
