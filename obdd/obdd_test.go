package obdd_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nnfcompile/circuits/cnf"
	"github.com/nnfcompile/circuits/obdd"
)

type ObddSuite struct {
	suite.Suite
}

// TestHashConsing verifies NewNode returns the identical node for the same
// (dvar, hi, lo) triple and a distinct one for a different triple.
func (s *ObddSuite) TestHashConsing() {
	mgr := obdd.NewManager(2)
	a := mgr.NewNode(1, mgr.One(), mgr.Zero())
	b := mgr.NewNode(1, mgr.One(), mgr.Zero())
	require.Same(s.T(), a, b)

	c := mgr.NewNode(1, mgr.Zero(), mgr.One())
	require.NotSame(s.T(), a, c)
}

// TestCompileThresholdMajority compiles a simple majority-of-3 threshold
// function and checks its truth table directly via IsModel.
func (s *ObddSuite) TestCompileThresholdMajority() {
	// x1+x2+x3 >= 2
	mgr, root, err := obdd.CompileThreshold([]int{1, 1, 1}, 2)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), mgr)

	cases := []struct {
		inst map[int]int
		want bool
	}{
		{map[int]int{1: 1, 2: 1, 3: 0}, true},
		{map[int]int{1: 1, 2: 0, 3: 0}, false},
		{map[int]int{1: 0, 2: 0, 3: 0}, false},
		{map[int]int{1: 1, 2: 1, 3: 1}, true},
	}
	for _, c := range cases {
		require.Equal(s.T(), c.want, root.IsModel(c.inst))
	}
}

// TestReduceIsIdempotent checks that reducing an already-reduced root
// returns the identical node.
func (s *ObddSuite) TestReduceIsIdempotent() {
	mgr, root, err := obdd.CompileThreshold([]int{1, 1}, 1)
	require.NoError(s.T(), err)
	_ = mgr

	once := obdd.Reduce(root)
	twice := obdd.Reduce(once)
	require.Same(s.T(), once, twice)
}

// TestReduceCollapsesEqualSuccessors builds a decision whose hi/lo children
// are equal and checks Reduce collapses it away.
func (s *ObddSuite) TestReduceCollapsesEqualSuccessors() {
	mgr := obdd.NewManager(1)
	n := mgr.NewNode(1, mgr.One(), mgr.One())
	require.False(s.T(), n.IsTerminal())

	reduced := obdd.Reduce(n)
	require.True(s.T(), reduced.IsTrue())
}

// TestModelCountMajority checks the exact model count of majority-of-3.
func (s *ObddSuite) TestModelCountMajority() {
	_, root, err := obdd.CompileThreshold([]int{1, 1, 1}, 2)
	require.NoError(s.T(), err)

	got := root.ModelCount(3)
	require.Equal(s.T(), big.NewInt(4), got) // 011,101,110,111
}

// TestModelsEnumeration checks Models/NonModels partition the variable
// space for a small reduced OBDD.
func (s *ObddSuite) TestModelsEnumeration() {
	_, root, err := obdd.CompileThreshold([]int{1, 1}, 1)
	require.NoError(s.T(), err)
	root = obdd.Reduce(root)

	modelCount := 0
	for range root.Models() {
		modelCount++
	}
	nonModelCount := 0
	for range root.NonModels() {
		nonModelCount++
	}
	require.Equal(s.T(), 2, modelCount)    // {1:1}, {1:0,2:1}
	require.Equal(s.T(), 1, nonModelCount) // 00
}

// TestToNNFAgreesOnModels cross-checks OBDD->NNF conversion against the
// source OBDD for every total assignment of a small threshold function.
func (s *ObddSuite) TestToNNFAgreesOnModels() {
	_, root, err := obdd.CompileThreshold([]int{2, 1}, 2)
	require.NoError(s.T(), err)

	nnfMgr, circuit, err := obdd.ToNNF(2, root)
	require.NoError(s.T(), err)

	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			inst := map[int]int{1: a, 2: b}
			want := root.IsModel(inst)
			got, err := nnfMgr.IsModel(circuit.Root, inst)
			require.NoError(s.T(), err)
			require.Equal(s.T(), want, got)
		}
	}
}

// TestToCNFAgreesOnModels cross-checks the Tseitin-encoded CNF's output
// wire against the source OBDD for every total assignment, via unit
// propagation over the conditioned formula: fixing every primary input plus
// the true output value must never contradict, and fixing the false output
// value always must.
func (s *ObddSuite) TestToCNFAgreesOnModels() {
	_, root, err := obdd.CompileThreshold([]int{2, 1}, 2)
	require.NoError(s.T(), err)

	c, outputVar := obdd.ToCNF(root, 100)

	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			lit1, lit2 := 1, 2
			if a == 0 {
				lit1 = -1
			}
			if b == 0 {
				lit2 = -2
			}
			want := root.IsModel(map[int]int{1: a, 2: b})
			trueOut, falseOut := outputVar, -outputVar
			if !want {
				trueOut, falseOut = -outputVar, outputVar
			}

			_, consistent := unitPropagate(condition(c, lit1, lit2, trueOut))
			require.True(s.T(), consistent, "a=%d b=%d: correct output must not contradict", a, b)

			_, noContradiction := unitPropagate(condition(c, lit1, lit2, falseOut))
			require.False(s.T(), noContradiction, "a=%d b=%d: wrong output must contradict", a, b)
		}
	}
}

func condition(c *cnf.Cnf, lits ...int) *cnf.Cnf {
	for _, l := range lits {
		c = c.Condition(l)
	}
	return c
}

// unitPropagate repeatedly conditions on any unit clause until none remain
// or a clause has been emptied (a contradiction). ok is false on
// contradiction.
func unitPropagate(c *cnf.Cnf) (*cnf.Cnf, bool) {
	for {
		unit, found := 0, false
		for _, clause := range c.Clauses {
			if len(clause) == 0 {
				return c, false
			}
			if len(clause) == 1 {
				unit, found = clause[0], true
				break
			}
		}
		if !found {
			return c, true
		}
		c = c.Condition(unit)
	}
}

func TestObddSuite(t *testing.T) {
	suite.Run(t, new(ObddSuite))
}
