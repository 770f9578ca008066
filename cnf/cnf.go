package cnf

import (
	"fmt"
	"strings"
)

// Cnf is an immutable-by-convention conjunctive normal form formula: a
// variable count and a list of clauses, each clause a slice of signed
// integer literals terminated implicitly (no in-memory sentinel zero).
type Cnf struct {
	VarCount int
	Clauses  [][]int
}

// New builds a Cnf from an explicit variable count and clause list. The
// clause slices are retained, not copied.
func New(varCount int, clauses [][]int) *Cnf {
	return &Cnf{VarCount: varCount, Clauses: clauses}
}

// Condition returns a new Cnf with lit fixed true: clauses containing lit
// are dropped (satisfied), and -lit is removed from the clauses that
// contain it. The receiver is left untouched.
func (c *Cnf) Condition(lit int) *Cnf {
	out := make([][]int, 0, len(c.Clauses))
	for _, clause := range c.Clauses {
		if containsLit(clause, lit) {
			continue
		}
		if containsLit(clause, -lit) {
			clause = removeLit(clause, -lit)
		}
		out = append(out, clause)
	}
	return New(c.VarCount, out)
}

func containsLit(clause []int, lit int) bool {
	for _, l := range clause {
		if l == lit {
			return true
		}
	}
	return false
}

func removeLit(clause []int, lit int) []int {
	out := make([]int, 0, len(clause)-1)
	for _, l := range clause {
		if l != lit {
			out = append(out, l)
		}
	}
	return out
}

// IsModel reports whether every clause is satisfied by model, a set of
// signed literals represented as a map from literal to presence.
func (c *Cnf) IsModel(model map[int]bool) bool {
	for _, clause := range c.Clauses {
		satisfied := false
		for _, lit := range clause {
			if model[lit] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// String renders a debug-oriented representation, not the DIMACS wire form
// (use AsString/Write for that).
func (c *Cnf) String() string {
	return fmt.Sprintf("Cnf(var_count=%d, clauses=%v)", c.VarCount, c.Clauses)
}

// AsString renders the DIMACS text form: a "p cnf V C" header followed by
// one zero-terminated clause per line.
func (c *Cnf) AsString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", c.VarCount, len(c.Clauses))
	for _, clause := range c.Clauses {
		for _, lit := range clause {
			fmt.Fprintf(&b, "%d ", lit)
		}
		b.WriteString("0\n")
	}
	return b.String()
}
