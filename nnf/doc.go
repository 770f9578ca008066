// Package nnf implements an in-memory negation-normal-form circuit: a
// hash-consed DAG of And/Or/Literal/Sub gates, with negation, weighted model
// counting, instance evaluation, and sub-circuit flattening.
//
// Hash-consing is the defining property of the manager: two calls to And,
// Or, or Sub with the same (canonicalized) children return the identical
// *Gate. Children of And/Or are sorted ascending by Gate.ID before the
// lookup, so structurally-equal gates always collapse regardless of the
// order children were supplied in.
//
// Mark bits and payload slots used by traversal are intentionally absent
// from Gate itself (see DESIGN.md) - each operation (Walk, IsModel,
// WeightedModelCount, Flatten) keeps its own local visited/payload maps, so
// two traversals over the same Manager never interfere with each other's
// bookkeeping (the model itself is still single-threaded, per the module's
// concurrency notes).
//
// Errors:
//
//	ErrBadLiteral      - literal is zero or its variable exceeds VarCount.
//	ErrNotNegatable     - Negate called on a Sub gate.
//	ErrUnknownGateType  - a traversal encountered an unrecognized Kind.
//	ErrUnsupportedExt   - a Sub gate's filename has an unknown suffix; this
//	                      package never returns it itself (a Resolver's own
//	                      errors are passed through unchanged).
package nnf

import "errors"

var (
	// ErrBadLiteral indicates a zero literal or an out-of-range variable.
	ErrBadLiteral = errors.New("nnf: bad literal")

	// ErrNotNegatable indicates Negate was called on a Sub gate.
	ErrNotNegatable = errors.New("nnf: sub-circuit gate is not negatable")

	// ErrUnknownGateType indicates a gate with an unrecognized Kind reached
	// a traversal that switches exhaustively over Kind.
	ErrUnknownGateType = errors.New("nnf: unknown gate type")

	// ErrUnsupportedExt indicates a Sub gate names a file whose extension
	// this module does not know how to materialize.
	ErrUnsupportedExt = errors.New("nnf: unsupported sub-circuit extension")
)
