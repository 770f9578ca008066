package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nnfcompile/circuits/nnf"
)

// ReadNNF parses the NNF text format from r: a "nnf N E V" header followed
// by N lines referring to earlier nodes by 0-based file index. "S" lines
// (hierarchical sub-circuit references) are accepted on read even though
// WriteNNF never produces them - see the module's note on this asymmetry.
func ReadNNF(r io.Reader, opts ...nnf.Option) (*nnf.Manager, *nnf.Circuit, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)

	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("format: empty input: %w", ErrParse)
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 4 || header[0] != "nnf" {
		return nil, nil, fmt.Errorf("format: malformed header %q: %w", header, ErrParse)
	}
	nodeCount, err1 := strconv.Atoi(header[1])
	edgeCount, err2 := strconv.Atoi(header[2])
	varCount, err3 := strconv.Atoi(header[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, nil, fmt.Errorf("format: malformed header %q: %w", header, ErrParse)
	}

	mgr := nnf.NewManager(varCount, opts...)
	nodes := make([]*nnf.Gate, nodeCount)

	for i := 0; i < nodeCount; i++ {
		if !scanner.Scan() {
			return nil, nil, fmt.Errorf("format: expected %d nodes, found %d: %w", nodeCount, i, ErrParse)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return nil, nil, fmt.Errorf("format: empty node line: %w", ErrParse)
		}

		var g *nnf.Gate
		var err error
		switch fields[0] {
		case "L":
			lit, e := strconv.Atoi(fields[1])
			if e != nil {
				return nil, nil, fmt.Errorf("format: bad literal line %q: %w", fields, ErrParse)
			}
			g, err = mgr.Literal(lit)
		case "A":
			children, e := resolveChildren(fields, 1, nodes)
			if e != nil {
				return nil, nil, e
			}
			g = mgr.And(children...)
		case "O":
			dvar, e := strconv.Atoi(fields[1])
			if e != nil {
				return nil, nil, fmt.Errorf("format: bad Or line %q: %w", fields, ErrParse)
			}
			children, e := resolveChildren(fields, 2, nodes)
			if e != nil {
				return nil, nil, e
			}
			g = mgr.Or(dvar, children...)
		case "S":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("format: bad Sub line %q: %w", fields, ErrParse)
			}
			k, e := strconv.Atoi(fields[1])
			if e != nil {
				return nil, nil, fmt.Errorf("format: bad Sub line %q: %w", fields, ErrParse)
			}
			if len(fields) != 1+1+k+1+1 {
				return nil, nil, fmt.Errorf("format: bad Sub line %q: %w", fields, ErrParse)
			}
			childIDs := fields[2 : 2+k]
			offset, e := strconv.Atoi(fields[2+k])
			if e != nil {
				return nil, nil, fmt.Errorf("format: bad Sub offset %q: %w", fields, ErrParse)
			}
			filename := fields[2+k+1]
			children := make([]*nnf.Gate, k)
			for j, idStr := range childIDs {
				id, e := strconv.Atoi(idStr)
				if e != nil || id < 0 || id >= len(nodes) {
					return nil, nil, fmt.Errorf("format: bad child index %q: %w", idStr, ErrParse)
				}
				children[j] = nodes[id]
			}
			g = mgr.SubWithOffset(children, filename, offset)
		default:
			return nil, nil, fmt.Errorf("format: unknown node tag %q: %w", fields[0], ErrParse)
		}
		if err != nil {
			return nil, nil, err
		}
		nodes[i] = g
	}

	root := nodes[nodeCount-1]
	circuit := &nnf.Circuit{Root: root, NodeCount: nodeCount, EdgeCount: edgeCount, VarCount: varCount}
	return mgr, circuit, nil
}

func resolveChildren(fields []string, countIdx int, nodes []*nnf.Gate) ([]*nnf.Gate, error) {
	k, err := strconv.Atoi(fields[countIdx])
	if err != nil {
		return nil, fmt.Errorf("format: bad child count in %q: %w", fields, ErrParse)
	}
	ids := fields[countIdx+1:]
	if len(ids) != k {
		return nil, fmt.Errorf("format: declared %d children, found %d in %q: %w", k, len(ids), fields, ErrParse)
	}
	children := make([]*nnf.Gate, k)
	for i, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 0 || id >= len(nodes) {
			return nil, fmt.Errorf("format: bad child index %q: %w", idStr, ErrParse)
		}
		children[i] = nodes[id]
	}
	return children, nil
}

// ReadNNFFile opens filename and parses its NNF content.
func ReadNNFFile(filename string, opts ...nnf.Option) (*nnf.Manager, *nnf.Circuit, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("format: open %s: %w", filename, err)
	}
	defer f.Close()
	return ReadNNF(f, opts...)
}

// WriteNNF reindexes circuit's nodes to traversal order and writes the
// "nnf N E V" header plus one L/A/O line per node. A circuit containing any
// Sub gate cannot be saved: ErrUnsupportedPersistence.
func WriteNNF(w io.Writer, circuit *nnf.Circuit) error {
	order := nnf.Walk(circuit.Root)
	idmap := make(map[int]int, len(order))
	edgeCount := 0
	for i, g := range order {
		idmap[g.ID] = i
		if g.Kind == nnf.KindSub {
			return ErrUnsupportedPersistence
		}
		edgeCount += len(g.Children)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "nnf %d %d %d\n", len(order), edgeCount, circuit.VarCount)
	for _, g := range order {
		switch g.Kind {
		case nnf.KindLiteral:
			fmt.Fprintf(bw, "L %d\n", g.Literal)
		case nnf.KindAnd:
			fmt.Fprintf(bw, "A %d%s\n", len(g.Children), childIDList(idmap, g.Children))
		case nnf.KindOr:
			fmt.Fprintf(bw, "O %d %d%s\n", g.DecisionVar, len(g.Children), childIDList(idmap, g.Children))
		}
	}
	return bw.Flush()
}

func childIDList(idmap map[int]int, children []*nnf.Gate) string {
	var b strings.Builder
	for _, c := range children {
		fmt.Fprintf(&b, " %d", idmap[c.ID])
	}
	return b.String()
}

// WriteNNFFile writes circuit's NNF text form to filename, truncating any
// existing content.
func WriteNNFFile(filename string, circuit *nnf.Circuit) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("format: write %s: %w", filename, err)
	}
	defer f.Close()
	return WriteNNF(f, circuit)
}
