package pixellab

import (
	"errors"
	"fmt"
)

// ErrCycle reports that evaluation ran into a dependency cycle. The graph
// itself is allowed to hold cycles; asking for a value through one is what
// fails.
var ErrCycle = errors.New("pixellab: graph cycle")

// Cycle-guard colors. A node on the current evaluation stack is active;
// revisiting an active node means the pull has looped back on itself.
const (
	visitFresh uint8 = iota
	visitActive
	visitDone
)

// pinKey identifies one output pin within a pass.
type pinKey struct {
	node NodeID
	pin  int
}

// resolver is the per-pass state: memoized pin values plus the coloring that
// catches cycles. A pass lives for exactly one Resolve call.
type resolver struct {
	g     *Graph
	t     float64
	memo  map[pinKey]Value
	state map[NodeID]uint8
}

// Resolve evaluates one output pin of the graph at time t, pulling the
// upstream cone on demand. Each (node, pin) pair is computed at most once
// per pass, so diamond-shaped graphs evaluate shared ancestors once.
//
// Unwired input pins arrive at the node as Empty values and the kind's
// defaults take over. The only failures are dependency cycles and resource
// loads; with no mutation in between, repeated calls return equal values.
func Resolve(g *Graph, node NodeID, pin int, t float64) (Value, error) {
	if err := g.checkPin(PinRef{Node: node, Pin: pin, Dir: PinOutput}); err != nil {
		return Value{}, err
	}
	r := &resolver{
		g:     g,
		t:     t,
		memo:  make(map[pinKey]Value),
		state: make(map[NodeID]uint8),
	}
	return r.resolvePin(node, pin)
}

func (r *resolver) resolvePin(id NodeID, pin int) (Value, error) {
	key := pinKey{node: id, pin: pin}
	if v, ok := r.memo[key]; ok {
		return v, nil
	}
	n := r.g.Node(id)
	if n == nil {
		// A link outlived its node; read the missing end as unwired.
		return Value{}, nil
	}
	if r.state[id] == visitActive {
		return Value{}, fmt.Errorf("%w through %v %v", ErrCycle, n.Kind, id)
	}
	r.state[id] = visitActive

	in := make([]Value, len(n.Kind.Inputs()))
	for i := range in {
		src, ok := r.g.SourceFor(id, i)
		if !ok {
			continue
		}
		v, err := r.resolvePin(src.Node, src.Pin)
		if err != nil {
			return Value{}, err
		}
		in[i] = v
	}

	v, err := kindSpecs[n.Kind].eval(n, in, pin, r.t)
	if err != nil {
		return Value{}, fmt.Errorf("%v %v: %w", n.Kind, id, err)
	}
	r.state[id] = visitDone
	r.memo[key] = v
	return v, nil
}
