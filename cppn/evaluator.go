package cppn

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/go-cppn/cppn/internal/bitset"
)

// ErrInputArityMismatch is returned by Process/Calculate when the flattened
// input count does not equal InputCount(). It is an ordinary returned error:
// neither Process nor Calculate panics on it.
var ErrInputArityMismatch = errors.New("cppn: input arity mismatch")

// ErrOutputIndexOutOfRange is returned by ReadOutput for k outside
// [0, OutputCount()).
var ErrOutputIndexOutOfRange = errors.New("cppn: output index out of range")

// Evaluator is a stateful BFS forward propagator bound to one Graph
// (spec.md §4.2). It owns all of its scratch state — the incoming-signal
// accumulator, the BFS stack, and the seen-set — and reuses them across
// every Process call, because substrate enumeration may invoke Process
// millions of times per evolutionary generation (spec.md §9): allocating
// fresh buffers per call would dominate the hot path.
//
// Evaluator borrows graph read-only for its entire lifetime. Mutating graph
// after constructing an Evaluator bound to it is undefined behavior; Go has
// no borrow checker to enforce this, so it is documented here instead, the
// way the teacher's core package documents contracts prose cannot express
// in the type system.
type Evaluator struct {
	graph *Graph

	inputs     []int
	outputs    []int
	startNodes []int

	incomingSignals []float64
	seen            *bitset.Set
	frontier        []int
}

// NewEvaluator constructs an Evaluator bound to graph. It scans every node
// once (EachNodeWithIndex) to classify inputs, outputs, and start nodes
// (nodes with InDegree()==0 — every Input and Bias node, since they reject
// incoming links, plus any Hidden or Output node that has no incoming link),
// and allocates the
// accumulator and seen-set sized to the graph.
func NewEvaluator(graph *Graph) *Evaluator {
	n := graph.NodeCount()
	ev := &Evaluator{
		graph:           graph,
		incomingSignals: make([]float64, n),
		seen:            bitset.New(n),
		frontier:        make([]int, 0, n),
	}

	graph.EachNodeWithIndex(func(idx int, node Node) {
		switch node.Kind {
		case KindInput:
			ev.inputs = append(ev.inputs, idx)
		case KindOutput:
			ev.outputs = append(ev.outputs, idx)
		}
		if deg, _ := graph.InDegree(idx); deg == 0 {
			ev.startNodes = append(ev.startNodes, idx)
		}
	})

	return ev
}

// InputCount returns the number of Input-kind nodes.
func (ev *Evaluator) InputCount() int { return len(ev.inputs) }

// OutputCount returns the number of Output-kind nodes.
func (ev *Evaluator) OutputCount() int { return len(ev.outputs) }

// Process resets all evaluator state, loads inputs (a flat concatenation of
// coordinate-chunk slices whose total length must equal InputCount()), and
// runs the BFS propagation of spec.md §4.2 to a fixed point.
//
// Propagation: every start node (in-degree zero: Input and Bias nodes, and
// any Hidden or Output node without incoming links) is
// pushed onto the frontier and marked seen. While the frontier is
// non-empty, a node u is popped; its value v is its activation applied to
// incomingSignals[u] (forced to 1.0 for Bias regardless of its carried
// activation, per spec.md §3/§9 OQ2 — and, resolving §9 OQ1, an Input
// node's loaded value DOES pass through its own activation here, matching
// ReadOutput's symmetric treatment of Output nodes); then for every active
// outgoing link (u->w, weight), incomingSignals[w] += weight*v, and w is
// pushed if not already seen. Because start nodes are exactly the
// in-degree-zero set, every node with nonzero in-degree is only ever
// discovered as the target of a link from an already-processed node, so a
// single pass suffices to sum every reachable predecessor's contribution
// before a node is itself processed.
func (ev *Evaluator) Process(inputs [][]float64) error {
	total := 0
	for _, chunk := range inputs {
		total += len(chunk)
	}
	if total != len(ev.inputs) {
		return fmt.Errorf("%w: got %d scalars, want %d", ErrInputArityMismatch, total, len(ev.inputs))
	}

	floats.Fill(0, ev.incomingSignals)
	ev.seen.Clear()
	ev.frontier = ev.frontier[:0]

	i := 0
	for _, chunk := range inputs {
		for _, x := range chunk {
			ev.incomingSignals[ev.inputs[i]] = x
			i++
		}
	}

	for _, s := range ev.startNodes {
		ev.frontier = append(ev.frontier, s)
		ev.seen.Insert(s)
	}

	for len(ev.frontier) > 0 {
		u := ev.frontier[len(ev.frontier)-1]
		ev.frontier = ev.frontier[:len(ev.frontier)-1]

		node, err := ev.graph.Node(u)
		if err != nil {
			return err
		}

		var v float64
		if node.Kind == KindBias {
			v = 1.0
		} else {
			v = node.Activation.Calculate(ev.incomingSignals[u])
		}

		ev.graph.EachActiveForwardLinkOfNode(u, func(w int, weight float64) {
			ev.incomingSignals[w] += weight * v
			if !ev.seen.Contains(w) {
				ev.seen.Insert(w)
				ev.frontier = append(ev.frontier, w)
			}
		})
	}

	return nil
}

// ReadOutput applies the k-th output node's activation to its accumulated
// incoming signal. Must be called after Process. k indexes into output
// nodes in graph insertion order.
func (ev *Evaluator) ReadOutput(k int) (float64, error) {
	if k < 0 || k >= len(ev.outputs) {
		return 0, ErrOutputIndexOutOfRange
	}

	idx := ev.outputs[k]
	node, err := ev.graph.Node(idx)
	if err != nil {
		return 0, err
	}

	return node.Activation.Calculate(ev.incomingSignals[idx]), nil
}

// Calculate is the convenience composition Process followed by collecting
// every output via ReadOutput.
func (ev *Evaluator) Calculate(inputs [][]float64) ([]float64, error) {
	if err := ev.Process(inputs); err != nil {
		return nil, err
	}

	out := make([]float64, len(ev.outputs))
	for k := range out {
		v, err := ev.ReadOutput(k)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}

	return out, nil
}
