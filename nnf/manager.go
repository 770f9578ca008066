package nnf

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Manager owns every Gate minted for a given variable count: it is the
// exclusive hash-consing authority (literal gates are pre-created by
// NewManager, every other gate is produced by newNode) and the home of the
// persistent negation side-table.
//
// A Manager is not safe for concurrent use; the module is single-threaded
// by design (see the module's concurrency notes).
type Manager struct {
	VarCount int

	idCounter int
	cache     map[string]*Gate
	literals  []*Gate // index by literal + VarCount, see literalIndex

	trueGate  *Gate
	falseGate *Gate

	negated map[int]*Gate // node_id -> cached complement, persists for the manager's lifetime

	resolver  Resolver // optional: resolves KindSub gates, see WithResolver
	precision int      // quantization precision passed to Resolver.Resolve
}

// DefaultPrecision is the number of significant digits used to quantize a
// Sub gate's neuron file when no WithPrecision option is supplied.
const DefaultPrecision = 4

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithResolver configures how Sub gates are materialized. Omit it for
// circuits known not to contain Sub gates.
func WithResolver(r Resolver) Option {
	return func(m *Manager) { m.resolver = r }
}

// WithPrecision overrides DefaultPrecision for Sub gate materialization.
func WithPrecision(digits int) Option {
	return func(m *Manager) { m.precision = digits }
}

// NewManager allocates a Manager for varCount boolean variables (1-indexed)
// and pre-creates both polarities of every literal plus the true/false
// terminals, matching the source's eager literal table.
func NewManager(varCount int, opts ...Option) *Manager {
	m := &Manager{
		VarCount:  varCount,
		cache:     make(map[string]*Gate),
		literals:  make([]*Gate, 2*varCount+1),
		negated:   make(map[int]*Gate),
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.trueGate = m.newNode(KindAnd, nil, 0, "")
	m.falseGate = m.newNode(KindOr, nil, 0, "")
	for v := 1; v <= varCount; v++ {
		m.literals[m.literalIndex(-v)] = &Gate{ID: m.nextID(), Kind: KindLiteral, Literal: -v}
		m.literals[m.literalIndex(v)] = &Gate{ID: m.nextID(), Kind: KindLiteral, Literal: v}
	}
	return m
}

func (m *Manager) literalIndex(lit int) int { return lit + m.VarCount }

func (m *Manager) nextID() int {
	id := m.idCounter
	m.idCounter++
	return id
}

// True returns the canonical empty-And true gate.
func (m *Manager) True() *Gate { return m.trueGate }

// False returns the canonical empty-Or false gate.
func (m *Manager) False() *Gate { return m.falseGate }

// Literal returns the pre-created gate for the signed literal lit.
func (m *Manager) Literal(lit int) (*Gate, error) {
	if lit == 0 || lit > m.VarCount || lit < -m.VarCount {
		return nil, fmt.Errorf("nnf: literal %d out of range [1,%d]: %w", lit, m.VarCount, ErrBadLiteral)
	}
	return m.literals[m.literalIndex(lit)], nil
}

// And returns the hash-consed conjunction of children (order-insensitive;
// children are sorted by ID before the lookup). Passing no children yields
// True.
func (m *Manager) And(children ...*Gate) *Gate {
	return m.newNode(KindAnd, children, 0, "")
}

// Or returns the hash-consed disjunction of children, annotated with the
// OBDD decision variable it originated from (0 if not applicable). Passing
// no children yields False.
func (m *Manager) Or(decisionVar int, children ...*Gate) *Gate {
	return m.newNode(KindOr, children, decisionVar, "")
}

// Sub returns the hash-consed hierarchical sub-circuit reference over
// children, keyed (unlike And/Or) on the unsorted child tuple plus
// filename.
func (m *Manager) Sub(children []*Gate, filename string) *Gate {
	return m.newNode(KindSub, children, 0, filename)
}

// SubWithOffset is Sub plus an offset value carried through from the wire
// format (see format.ReadNNF); offset does not participate in hash-consing
// and is not consulted anywhere in this package.
func (m *Manager) SubWithOffset(children []*Gate, filename string, offset int) *Gate {
	g := m.newNode(KindSub, children, 0, filename)
	g.Offset = offset
	return g
}

// newNode is the sole constructor of And/Or/Sub gates (literal gates are
// allocated once, in NewManager). And/Or canonicalize their children by sorting ascending
// on ID before computing the cache key; Sub does not sort (order is its
// positional input binding).
func (m *Manager) newNode(kind Kind, children []*Gate, decisionVar int, filename string) *Gate {
	var sortedChildren []*Gate
	switch kind {
	case KindAnd, KindOr:
		sortedChildren = append([]*Gate(nil), children...)
		sort.Slice(sortedChildren, func(i, j int) bool { return sortedChildren[i].ID < sortedChildren[j].ID })
	default:
		sortedChildren = children
	}

	key := cacheKey(kind, sortedChildren, filename)
	if g, ok := m.cache[key]; ok {
		return g
	}
	g := &Gate{
		ID:          m.nextID(),
		Kind:        kind,
		DecisionVar: decisionVar,
		Children:    sortedChildren,
		Filename:    filename,
	}
	m.cache[key] = g
	return g
}

func cacheKey(kind Kind, children []*Gate, filename string) string {
	var b strings.Builder
	b.WriteString(kind.String())
	b.WriteByte(':')
	for i, c := range children {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c.ID))
	}
	if kind == KindSub {
		b.WriteByte(':')
		b.WriteString(filename)
	}
	return b.String()
}
