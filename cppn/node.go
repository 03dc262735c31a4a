// Package cppn implements the Compositional Pattern-Producing Network:
// Graph is a concrete instantiation of the generic dag.Graph over cppn.Node
// payloads, and Evaluator is the BFS forward propagator that turns a bound
// Graph plus an input vector into output values (spec.md §4.2).
package cppn

import "github.com/go-cppn/cppn/activation"

// Kind is a CPPN node's role, which governs link admissibility
// (spec.md §3): Input/Bias reject incoming links, Output rejects outgoing
// links, Hidden accepts both.
type Kind uint8

// The four node kinds.
const (
	KindInput Kind = iota
	KindOutput
	KindHidden
	KindBias
)

// String returns a human-readable name for k, mainly for error messages
// and tests.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "Input"
	case KindOutput:
		return "Output"
	case KindHidden:
		return "Hidden"
	case KindBias:
		return "Bias"
	default:
		return "Unknown"
	}
}

// Node is the payload a cppn.Graph stores at each index: a role and an
// activation function. It implements dag.NodeConstraint, so dag.Graph
// enforces link admissibility purely from these two predicates without any
// CPPN-specific knowledge.
//
// A Bias node's Activation is carried only so it can be rendered by
// activation.Function.FormulaGnuplot/PlotPNG for visualization symmetry
// with other nodes — Evaluator always forces a Bias node's numeric output
// to 1.0 regardless of which function it carries (spec.md §3, §9 OQ2).
type Node struct {
	Kind       Kind
	Activation activation.Function
}

// AcceptsOutgoing implements dag.NodeConstraint: Output nodes reject
// outgoing links, everything else accepts them.
func (n Node) AcceptsOutgoing() bool {
	return n.Kind != KindOutput
}

// AcceptsIncoming implements dag.NodeConstraint: Input and Bias nodes
// reject incoming links, everything else accepts them.
func (n Node) AcceptsIncoming() bool {
	return n.Kind != KindInput && n.Kind != KindBias
}
