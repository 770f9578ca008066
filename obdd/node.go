package obdd

// Sign is the terminal value of a Terminal node.
type Sign uint8

const (
	// Zero is the false terminal's sign.
	Zero Sign = 0
	// One is the true terminal's sign.
	One Sign = 1
)

// Node is either a Terminal (Hi == Lo == nil) or a Decision. Instances are
// only ever minted by a Manager: terminals by NewManager, decisions through
// its unique table.
type Node struct {
	NID int

	terminal bool
	sign     Sign // terminal only

	DVar int   // decision only: 1-indexed variable tested at this node
	Hi   *Node // decision only: successor when DVar is 1
	Lo   *Node // decision only: successor when DVar is 0

	payload *Node // ephemeral: reduce()'s replacement for this node, see reduce.go
}

// IsTerminal reports whether n is a terminal (not a decision).
func (n *Node) IsTerminal() bool { return n.terminal }

// IsTrue reports whether n is the one terminal.
func (n *Node) IsTrue() bool { return n.terminal && n.sign == One }

// IsFalse reports whether n is the zero terminal.
func (n *Node) IsFalse() bool { return n.terminal && n.sign == Zero }

// Sign returns the terminal's sign; only meaningful when IsTerminal is true.
func (n *Node) Sign() Sign { return n.sign }
