// Package obdd implements an ordered binary decision diagram manager: nodes
// are hash-consed per variable level, built bottom-up from a threshold
// classifier's weighted-sum state grid, reduced by eliminating redundant
// decisions, and exported to NNF or Tseitin-encoded CNF.
//
// Variable ordering is fixed and total: variables 1..VarCount appear
// top-to-bottom, and every Decision's Hi/Lo child has a strictly greater
// DVar than the decision itself (terminals are treated as living at level
// VarCount+1).
//
// Errors:
//
//	ErrInvariantViolation - a manager-internal invariant failed (bug, not
//	                         user error).
package obdd

import "errors"

// ErrInvariantViolation indicates an internal consistency check failed.
var ErrInvariantViolation = errors.New("obdd: invariant violation")
