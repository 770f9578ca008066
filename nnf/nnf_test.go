package nnf_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nnfcompile/circuits/cnf"
	"github.com/nnfcompile/circuits/nnf"
)

type NnfSuite struct {
	suite.Suite
}

// TestHashConsingAndCanonicalOrder verifies And/Or collapse regardless of
// the order children are supplied in.
func (s *NnfSuite) TestHashConsingAndCanonicalOrder() {
	mgr := nnf.NewManager(3)
	l1, _ := mgr.Literal(1)
	l2, _ := mgr.Literal(2)

	a := mgr.And(l1, l2)
	b := mgr.And(l2, l1)
	require.Same(s.T(), a, b)

	c := mgr.Or(0, l1, l2)
	require.NotSame(s.T(), a, c)
}

// TestTrueFalseAreCanonical checks the empty-And/Or terminals.
func (s *NnfSuite) TestTrueFalseAreCanonical() {
	mgr := nnf.NewManager(1)
	require.True(s.T(), mgr.True().IsTrue())
	require.True(s.T(), mgr.False().IsFalse())
	require.Same(s.T(), mgr.True(), mgr.And())
	require.Same(s.T(), mgr.False(), mgr.Or(0))
}

// TestLiteralOutOfRange checks the bounds check on Literal.
func (s *NnfSuite) TestLiteralOutOfRange() {
	mgr := nnf.NewManager(2)
	_, err := mgr.Literal(0)
	require.ErrorIs(s.T(), err, nnf.ErrBadLiteral)
	_, err = mgr.Literal(3)
	require.ErrorIs(s.T(), err, nnf.ErrBadLiteral)
}

// TestNegateInvolution checks that negating twice returns the original
// gate and that repeat calls are memoized to the same pointer.
func (s *NnfSuite) TestNegateInvolution() {
	mgr := nnf.NewManager(2)
	l1, _ := mgr.Literal(1)
	l2, _ := mgr.Literal(2)
	g := mgr.And(l1, l2)

	neg, err := mgr.Negate(g)
	require.NoError(s.T(), err)
	require.True(s.T(), neg.Kind == nnf.KindOr)

	back, err := mgr.Negate(neg)
	require.NoError(s.T(), err)
	require.Same(s.T(), g, back)

	neg2, err := mgr.Negate(g)
	require.NoError(s.T(), err)
	require.Same(s.T(), neg, neg2)
}

// TestNegateSubIsUnsupported checks Sub gates reject negation.
func (s *NnfSuite) TestNegateSubIsUnsupported() {
	mgr := nnf.NewManager(1)
	l1, _ := mgr.Literal(1)
	sub := mgr.Sub([]*nnf.Gate{l1}, "neuron.txt")
	_, err := mgr.Negate(sub)
	require.ErrorIs(s.T(), err, nnf.ErrNotNegatable)
}

// TestIsModel checks a small (x1 & x2) | x3 circuit against every total
// assignment.
func (s *NnfSuite) TestIsModel() {
	mgr := nnf.NewManager(3)
	l1, _ := mgr.Literal(1)
	l2, _ := mgr.Literal(2)
	l3, _ := mgr.Literal(3)
	root := mgr.Or(0, mgr.And(l1, l2), l3)

	cases := []struct {
		inst map[int]int
		want bool
	}{
		{map[int]int{1: 1, 2: 1, 3: 0}, true},
		{map[int]int{1: 1, 2: 0, 3: 0}, false},
		{map[int]int{1: 0, 2: 0, 3: 1}, true},
		{map[int]int{1: 0, 2: 0, 3: 0}, false},
	}
	for _, c := range cases {
		got, err := mgr.IsModel(root, c.inst)
		require.NoError(s.T(), err)
		require.Equal(s.T(), c.want, got)
	}
}

// TestWeightedModelCountScalesFreeVariables checks that a variable never
// mentioned in the circuit still doubles the count.
func (s *NnfSuite) TestWeightedModelCountScalesFreeVariables() {
	mgr := nnf.NewManager(3) // var 3 never appears
	l1, _ := mgr.Literal(1)
	l2, _ := mgr.Literal(2)
	root := mgr.And(l1, l2)

	count, err := mgr.WeightedModelCount(root)
	require.NoError(s.T(), err)
	require.Equal(s.T(), big.NewInt(2), count) // (1,1,0) and (1,1,1)
}

// TestWeightedModelCountOrGapScaling checks an Or branch missing a variable
// the other branch uses gets scaled up to compensate.
func (s *NnfSuite) TestWeightedModelCountOrGapScaling() {
	mgr := nnf.NewManager(2)
	l1, _ := mgr.Literal(1)
	n1, _ := mgr.Literal(-1)
	l2, _ := mgr.Literal(2)
	// (x1) | (!x1 & x2): the x1 branch has var2 free (2 models) plus (0,1) -> 3
	root := mgr.Or(0, l1, mgr.And(n1, l2))

	count, err := mgr.WeightedModelCount(root)
	require.NoError(s.T(), err)
	require.Equal(s.T(), big.NewInt(3), count)
}

// TestFlattenInlinesSubGate checks that flattening a Sub gate over
// (x1 & x2) correctly rebinds the sub-circuit's own variables to the outer
// gate's children.
func (s *NnfSuite) TestFlattenInlinesSubGate() {
	sub := nnf.NewManager(2)
	sl1, _ := sub.Literal(1)
	sl2, _ := sub.Literal(2)
	subRoot := sub.And(sl1, sl2)

	outer := nnf.NewManager(2, nnf.WithResolver(constResolver{mgr: sub, root: subRoot}))
	ol1, _ := outer.Literal(1)
	ol2, _ := outer.Literal(2)
	outerSub := outer.Sub([]*nnf.Gate{ol1, ol2}, "const.neuron")

	dst := nnf.NewManager(2)
	flatRoot, err := outer.Flatten(dst, outerSub)
	require.NoError(s.T(), err)

	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			inst := map[int]int{1: a, 2: b}
			got, err := dst.IsModel(flatRoot, inst)
			require.NoError(s.T(), err)
			require.Equal(s.T(), a == 1 && b == 1, got)
		}
	}
}

type constResolver struct {
	mgr  *nnf.Manager
	root *nnf.Gate
}

func (c constResolver) Resolve(filename string, precision int) (*nnf.Manager, *nnf.Gate, error) {
	return c.mgr, c.root, nil
}

// TestMaterializeWithoutResolverFails checks a Sub gate with no configured
// resolver errors out instead of panicking.
func (s *NnfSuite) TestMaterializeWithoutResolverFails() {
	mgr := nnf.NewManager(1)
	l1, _ := mgr.Literal(1)
	sub := mgr.Sub([]*nnf.Gate{l1}, "missing.neuron")
	_, err := mgr.IsModel(sub, map[int]int{1: 1})
	require.ErrorIs(s.T(), err, nnf.ErrNoResolver)
}

// TestToCNFAgreesWithIsModel cross-checks the Tseitin encoding's output
// wire against direct IsModel evaluation for every total assignment, via
// unit propagation over the conditioned formula (see the obdd package's
// equivalent test for why this is the right check rather than a direct
// IsModel call, which would need every auxiliary wire value supplied).
func (s *NnfSuite) TestToCNFAgreesWithIsModel() {
	mgr := nnf.NewManager(2)
	l1, _ := mgr.Literal(1)
	l2, _ := mgr.Literal(2)
	root := mgr.Or(0, mgr.And(l1, l2), mgr.And(negOf(s, mgr, l1), negOf(s, mgr, l2)))

	c, outputVar, err := mgr.ToCNF(root)
	require.NoError(s.T(), err)

	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			inst := map[int]int{1: a, 2: b}
			want, err := mgr.IsModel(root, inst)
			require.NoError(s.T(), err)

			lit1, lit2 := 1, 2
			if a == 0 {
				lit1 = -1
			}
			if b == 0 {
				lit2 = -2
			}
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

func negOf(s *NnfSuite, mgr *nnf.Manager, g *nnf.Gate) *nnf.Gate {
	n, err := mgr.Negate(g)
	require.NoError(s.T(), err)
	return n
}

func TestNnfSuite(t *testing.T) {
	suite.Run(t, new(NnfSuite))
}
