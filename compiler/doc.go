// Package compiler rebuilds an NNF circuit inside an external
// decision-diagram manager (the SDD engine, treated as an opaque
// collaborator - see Manager) under one of five traversal strategies that
// trade off ref-counting discipline against garbage-collection policy:
// Plain, Automatic, Manual, Recursive, and ByDepth.
//
// None of the strategies accept a circuit still containing Sub gates;
// flatten it first (nnf.Manager.Flatten) so every node is a plain
// Literal/And/Or.
package compiler

import "errors"

// ErrUnflattened indicates a compile was attempted on an NNF circuit that
// still contains a Sub gate.
var ErrUnflattened = errors.New("compiler: circuit still contains a sub-circuit gate; flatten it first")
