package pixellab

import (
	"errors"
	"fmt"
)

// PinDir distinguishes the two sides of a node.
type PinDir uint8

const (
	PinInput  PinDir = iota // consumes a value
	PinOutput               // produces a value
)

// Opposite returns the other direction.
func (d PinDir) Opposite() PinDir {
	if d == PinInput {
		return PinOutput
	}
	return PinInput
}

// String returns "input" or "output".
func (d PinDir) String() string {
	if d == PinInput {
		return "input"
	}
	return "output"
}

// NodeID is a stable handle to a node in one Graph. Removing a node kills its
// handle without renumbering anyone else; if the slot is reused later the new
// occupant carries a fresh generation, so stale handles read as dead instead
// of aliasing the newcomer. The zero NodeID is always invalid.
type NodeID struct {
	index uint32
	gen   uint32
}

// String formats the handle for error messages and logs.
func (id NodeID) String() string {
	return fmt.Sprintf("node(%d/%d)", id.index, id.gen)
}

// PinRef addresses one pin on one node.
type PinRef struct {
	Node NodeID
	Pin  int
	Dir  PinDir
}

// Link connects an output pin to an input pin. Links are stored canonically:
// From is always the output end and To the input end, whichever way the user
// dragged the wire.
type Link struct {
	From PinRef
	To   PinRef
}

var (
	// ErrLinkDirection reports a link whose two ends face the same way.
	ErrLinkDirection = errors.New("pixellab: link ends have the same direction")
	// ErrPinRange reports a pin index outside the node kind's declared pins.
	ErrPinRange = errors.New("pixellab: pin index out of range")
	// ErrDeadNode reports a stale or foreign node handle.
	ErrDeadNode = errors.New("pixellab: dead node handle")
)

// slot holds one arena entry. node is nil while the slot is free; gen counts
// up every time the slot's occupant is removed.
type slot struct {
	node *Node
	gen  uint32
}

// Graph is an editable multigraph of nodes wired pin to pin. Node storage is
// a slot arena addressed by generational handles. Duplicate links, parallel
// links into one pin, and cycles are all legal at edit time; evaluation
// decides what they mean. Not safe for concurrent use.
type Graph struct {
	slots []slot
	free  []uint32
	links []Link
	count int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// AddNode copies n into the graph and returns its handle.
// Panics if n carries an unknown kind.
func (g *Graph) AddNode(n Node) NodeID {
	if !n.Kind.valid() {
		panic(fmt.Sprintf("pixellab: unknown node kind %d", n.Kind))
	}
	var idx uint32
	if k := len(g.free); k > 0 {
		idx = g.free[k-1]
		g.free = g.free[:k-1]
		g.slots[idx].node = &n
	} else {
		idx = uint32(len(g.slots))
		g.slots = append(g.slots, slot{node: &n, gen: 1})
	}
	g.count++
	return NodeID{index: idx, gen: g.slots[idx].gen}
}

// Node returns the node behind id, or nil for a dead handle. The pointer
// stays valid until the node is removed; payload edits through it take
// effect on the next evaluation.
func (g *Graph) Node(id NodeID) *Node {
	if int(id.index) >= len(g.slots) {
		return nil
	}
	s := g.slots[id.index]
	if s.gen != id.gen {
		return nil
	}
	return s.node
}

// Contains reports whether id refers to a live node.
func (g *Graph) Contains(id NodeID) bool {
	return g.Node(id) != nil
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return g.count
}

// NodeIDs returns handles for every live node in slot order. Slot order is
// insertion order until removals open slots up for reuse.
func (g *Graph) NodeIDs() []NodeID {
	out := make([]NodeID, 0, g.count)
	for i, s := range g.slots {
		if s.node != nil {
			out = append(out, NodeID{index: uint32(i), gen: s.gen})
		}
	}
	return out
}

// OutputNode returns the first output-kind node in slot order, which hosts
// use as the evaluation root. ok is false when the graph has none.
func (g *Graph) OutputNode() (NodeID, bool) {
	for i, s := range g.slots {
		if s.node != nil && s.node.Kind == KindOutput {
			return NodeID{index: uint32(i), gen: s.gen}, true
		}
	}
	return NodeID{}, false
}

// RemoveNode deletes the node behind id along with every link touching it,
// in one pass over the link list. Other nodes' handles are unaffected.
// Returns false for a dead handle.
func (g *Graph) RemoveNode(id NodeID) bool {
	if !g.Contains(id) {
		return false
	}
	g.slots[id.index].node = nil
	g.slots[id.index].gen++
	g.free = append(g.free, id.index)
	g.count--

	kept := g.links[:0]
	for _, l := range g.links {
		if l.From.Node != id && l.To.Node != id {
			kept = append(kept, l)
		}
	}
	g.links = kept
	return true
}

// checkPin validates that p addresses a live node and a declared pin on the
// side p claims.
func (g *Graph) checkPin(p PinRef) error {
	n := g.Node(p.Node)
	if n == nil {
		return fmt.Errorf("%w: %v", ErrDeadNode, p.Node)
	}
	var pins []PinSpec
	if p.Dir == PinInput {
		pins = n.Kind.Inputs()
	} else {
		pins = n.Kind.Outputs()
	}
	if p.Pin < 0 || p.Pin >= len(pins) {
		return fmt.Errorf("%w: %s has no %s pin %d", ErrPinRange, n.Kind, p.Dir, p.Pin)
	}
	return nil
}

// AddLink wires two pins together, in either argument order: the output end
// becomes From. Both ends must be live, declared pins of opposite direction.
// Duplicates, parallel links into one pin, and links that close a cycle are
// accepted; see SourceFor and Resolve for how evaluation treats them.
func (g *Graph) AddLink(a, b PinRef) (Link, error) {
	if a.Dir == b.Dir {
		return Link{}, fmt.Errorf("%w: both ends are %ss", ErrLinkDirection, a.Dir)
	}
	from, to := a, b
	if from.Dir == PinInput {
		from, to = b, a
	}
	if err := g.checkPin(from); err != nil {
		return Link{}, err
	}
	if err := g.checkPin(to); err != nil {
		return Link{}, err
	}
	l := Link{From: from, To: to}
	g.links = append(g.links, l)
	return l, nil
}

// RemoveLink deletes the first link structurally equal to l.
// Returns false when no such link exists.
func (g *Graph) RemoveLink(l Link) bool {
	for i, have := range g.links {
		if have == l {
			g.links = append(g.links[:i], g.links[i+1:]...)
			return true
		}
	}
	return false
}

// Links returns the link list in insertion order. The slice is the graph's
// own; callers must not mutate it and should copy if they keep it across
// mutations.
func (g *Graph) Links() []Link {
	return g.links
}

// InputsFor returns the upstream output pins feeding id, ordered by target
// input pin index and by insertion order within one pin. Every link is
// reported, including parallels that lose out during evaluation.
func (g *Graph) InputsFor(id NodeID) []PinRef {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	var out []PinRef
	for pin := range n.Kind.Inputs() {
		for _, l := range g.links {
			if l.To.Node == id && l.To.Pin == pin {
				out = append(out, l.From)
			}
		}
	}
	return out
}

// SourceFor returns the upstream pin whose value the given input pin sees
// during evaluation. When parallel links target one pin, the most recently
// added wins. ok is false for an unwired pin.
func (g *Graph) SourceFor(id NodeID, pin int) (PinRef, bool) {
	for i := len(g.links) - 1; i >= 0; i-- {
		l := g.links[i]
		if l.To.Node == id && l.To.Pin == pin {
			return l.From, true
		}
	}
	return PinRef{}, false
}
