package cppn

import "github.com/go-cppn/cppn/dag"

// Graph is the CPPN's acyclic graph: a concrete instantiation of the
// generic dag.Graph over Node payloads, fixing the external id type to
// int64 (spec.md §6: "opaque totally-ordered tokens... provided by the
// caller"). This is component E of spec.md §2, "a type alias specializing
// the external network with CPPN node/link payloads" — here realized as a
// genuine Go type alias over a generic instantiation, which needs no type
// parameters of its own and so works from Go 1.18 onward (generic aliases
// with their own parameters only arrived in Go 1.24).
type Graph = dag.Graph[Node]

// NewGraph returns an empty CPPN graph.
func NewGraph() *Graph {
	return dag.New[Node]()
}
