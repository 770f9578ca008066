package format_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/nnfcompile/circuits/format"
	"github.com/nnfcompile/circuits/nnf"
	"github.com/nnfcompile/circuits/obdd"
)

type FormatSuite struct {
	suite.Suite
}

// TestNNFRoundTrip builds (x1 & x2) | x3, writes it, and reads it back,
// checking the parsed circuit agrees with the original on every assignment.
func (s *FormatSuite) TestNNFRoundTrip() {
	mgr := nnf.NewManager(3)
	l1, _ := mgr.Literal(1)
	l2, _ := mgr.Literal(2)
	l3, _ := mgr.Literal(3)
	root := mgr.Or(0, mgr.And(l1, l2), l3)
	circuit := nnf.NewCircuit(root, 3)

	var buf strings.Builder
	require.NoError(s.T(), format.WriteNNF(&buf, circuit))
	require.True(s.T(), strings.HasPrefix(buf.String(), "nnf "))

	readMgr, readCircuit, err := format.ReadNNF(strings.NewReader(buf.String()))
	require.NoError(s.T(), err)

	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			for c := 0; c <= 1; c++ {
				inst := map[int]int{1: a, 2: b, 3: c}
				want, err := mgr.IsModel(root, inst)
				require.NoError(s.T(), err)
				got, err := readMgr.IsModel(readCircuit.Root, inst)
				require.NoError(s.T(), err)
				require.Equal(s.T(), want, got)
			}
		}
	}
}

// TestWriteNNFRejectsSubGate checks a circuit still containing a Sub gate
// cannot be saved to the NNF text format.
func (s *FormatSuite) TestWriteNNFRejectsSubGate() {
	mgr := nnf.NewManager(1)
	l1, _ := mgr.Literal(1)
	sub := mgr.Sub([]*nnf.Gate{l1}, "neuron.txt")
	circuit := nnf.NewCircuit(sub, 1)

	var buf strings.Builder
	err := format.WriteNNF(&buf, circuit)
	require.ErrorIs(s.T(), err, format.ErrUnsupportedPersistence)
}

// TestReadNNFMalformedHeader checks a missing "nnf" header is rejected.
func (s *FormatSuite) TestReadNNFMalformedHeader() {
	_, _, err := format.ReadNNF(strings.NewReader("not a header\n"))
	require.ErrorIs(s.T(), err, format.ErrParse)
}

// TestReadNNFBadChildIndex checks an out-of-range child reference is
// rejected rather than panicking.
func (s *FormatSuite) TestReadNNFBadChildIndex() {
	text := "nnf 1 1 1\nA 1 5\n"
	_, _, err := format.ReadNNF(strings.NewReader(text))
	require.ErrorIs(s.T(), err, format.ErrParse)
}

// TestWriteVtreeShape checks the header count and leaf/internal line counts
// for a small variable count.
func (s *FormatSuite) TestWriteVtreeShape() {
	var buf strings.Builder
	require.NoError(s.T(), format.WriteVtree(&buf, 3))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(s.T(), "vtree 5", lines[0])
	require.Len(s.T(), lines, 6) // header + 3 leaves + 2 internal
	require.Equal(s.T(), 3, strings.Count(buf.String(), "L "))
	require.Equal(s.T(), 2, strings.Count(buf.String(), "I "))
}

// TestWriteVtreeRejectsZeroVariables checks the guard on an empty variable
// set.
func (s *FormatSuite) TestWriteVtreeRejectsZeroVariables() {
	var buf strings.Builder
	err := format.WriteVtree(&buf, 0)
	require.ErrorIs(s.T(), err, format.ErrParse)
}

// TestWriteSDDShape checks the "sdd" header line and the presence of F and
// T terminal lines for a tiny majority-of-2 OBDD.
func (s *FormatSuite) TestWriteSDDShape() {
	_, root, err := obdd.CompileThreshold([]int{1, 1}, 2)
	require.NoError(s.T(), err)
	root = obdd.Reduce(root)

	var buf strings.Builder
	require.NoError(s.T(), format.WriteSDD(&buf, 2, root))

	require.True(s.T(), strings.HasPrefix(buf.String(), "sdd "))
	require.Contains(s.T(), buf.String(), "F ")
	require.Contains(s.T(), buf.String(), "T ")
}

func TestFormatSuite(t *testing.T) {
	suite.Run(t, new(FormatSuite))
}
