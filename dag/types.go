// Package dag implements the generic, dense-index, directed acyclic
// multigraph container that the rest of this module treats as an external
// collaborator: cppn.Graph is nothing more than a concrete instantiation of
// dag.Graph, and every CPPN-specific rule (what may connect to what) is
// expressed through the NodeConstraint a caller's payload type satisfies,
// never hard-coded here.
//
// The shape of this package — separate RWMutex coverage for node storage
// versus link storage, a plain New constructor, package-scoped sentinel
// errors — follows github.com/katalvlaran/lvlath's core package;
// what changed is the addressing scheme: lvlath's core.Graph keys vertices
// by caller-chosen string ID, while dag.Graph assigns dense integer indices
// at insertion time (0..N), because the CPPN evaluator and layering pass
// need O(1) slice-indexed per-node scratch state, not map lookups.
package dag

import (
	"errors"
	"sync"
)

// Sentinel errors returned by Graph's construction-time validity checks.
var (
	// ErrSelfLoop indicates an attempt to link a node to itself.
	ErrSelfLoop = errors.New("dag: self-loop is not allowed")

	// ErrSourceRejectsOutgoing indicates the source node's type forbids
	// outgoing links.
	ErrSourceRejectsOutgoing = errors.New("dag: source node rejects outgoing links")

	// ErrTargetRejectsIncoming indicates the target node's type forbids
	// incoming links.
	ErrTargetRejectsIncoming = errors.New("dag: target node rejects incoming links")

	// ErrNodeNotFound indicates a NodeIndex outside the graph's current range.
	ErrNodeNotFound = errors.New("dag: node index out of range")
)

// NodeConstraint is satisfied by any payload type a Graph can store. It
// replaces the per-kind admissibility switch the Rust original used
// (CppnNodeType's Input/Output/Hidden/Bias match arms in valid_link) with a
// pair of predicates the payload itself answers, so Graph stays agnostic of
// what "Input" or "In-only" even means to its caller.
type NodeConstraint interface {
	// AcceptsOutgoing reports whether a link may originate at this node.
	AcceptsOutgoing() bool
	// AcceptsIncoming reports whether a link may terminate at this node.
	AcceptsIncoming() bool
}

// link is one directed edge record, stored twice (once in the source's
// outgoing slice, once in the target's incoming slice) so both directions
// are O(1) to walk without consulting a separate adjacency index.
type link struct {
	node   int // the other endpoint
	weight float64
	extID  int64
}

// nodeLinks is the dense-index storage record for one node's link lists.
type nodeLinks struct {
	outgoing []link
	incoming []link
}

// Graph is a dense-index directed acyclic multigraph over payload type N.
// Node indices are assigned densely starting at 0, in insertion order, and
// are never reused or renumbered — this is what lets cppn.Evaluator address
// its scratch slices by raw index.
//
// Node storage (payloads, nodeExtIDs) and link storage (linkStore) are two
// genuinely independent backing slices, each guarded by its own RWMutex —
// muNodes for the former, muLinks for the latter. This mirrors core.Graph's
// muVert/muEdgeAdj split, which guards two independent maps; here the two
// slices grow in lockstep (AddNode appends to both, under the matching
// lock for each) but are never read or written across the wrong mutex, so
// a concurrent AddNode reallocating one slice can never race with a
// muLinks-guarded read or write of the other.
type Graph[N NodeConstraint] struct {
	muNodes sync.RWMutex
	muLinks sync.RWMutex

	payloads   []N
	nodeExtIDs []int64

	linkStore []nodeLinks
}

// New returns an empty Graph.
func New[N NodeConstraint]() *Graph[N] {
	return &Graph[N]{}
}

// NodeCount returns the number of nodes inserted so far.
func (g *Graph[N]) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.payloads)
}
