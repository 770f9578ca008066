// Package cnf represents conjunctive-normal-form formulas (DIMACS CNF) and
// the handful of operations the rest of the compiler needs on them:
// conditioning on a literal, checking a total model, and DIMACS I/O.
//
// A Cnf is produced two ways elsewhere in this module: obdd.ToCNF Tseitin-
// encodes an OBDD, and nnf.ToCNF Tseitin-encodes an NNF circuit. obdd.ToCNF
// introduces one auxiliary wire per node, nnf.ToCNF one per And/Or gate
// (literals serve as their own wires); this package only cares
// about the resulting clause set, not how it was derived.
//
// Errors:
//
//	ErrParse - malformed DIMACS text (missing/garbled header, bad literal).
package cnf

import "errors"

// ErrParse indicates the DIMACS text could not be parsed.
var ErrParse = errors.New("cnf: parse error")
