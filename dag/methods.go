// Package dag: node and link mutation/query methods.
//
// Mirrors the shape of github.com/katalvlaran/lvlath's core/methods.go
// (AddVertex/AddEdge/Neighbors/…) but over dense int indices instead of
// string IDs, and with CPPN-flavored admissibility delegated to N's
// NodeConstraint implementation instead of a fixed set of graph flags.
package dag

// AddNode appends payload n to the graph and returns its dense index. It
// grows both the node-storage and link-storage slices, each under its own
// mutex, in lockstep — so the two slices always share the same length and
// the same index space, even though no single lock ever covers both.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddNode(n N, extID int64) int {
	g.muNodes.Lock()
	idx := len(g.payloads)
	g.payloads = append(g.payloads, n)
	g.nodeExtIDs = append(g.nodeExtIDs, extID)
	g.muNodes.Unlock()

	g.muLinks.Lock()
	g.linkStore = append(g.linkStore, nodeLinks{})
	g.muLinks.Unlock()

	return idx
}

// Node returns the payload stored at idx.
func (g *Graph[N]) Node(idx int) (N, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	var zero N
	if idx < 0 || idx >= len(g.payloads) {
		return zero, ErrNodeNotFound
	}

	return g.payloads[idx], nil
}

// ExternalID returns the caller-supplied external id attached to idx at
// AddNode time. External ids are opaque to the graph; it only stores and
// returns them (spec.md §6: "opaque totally-ordered tokens... used only for
// downstream identification").
func (g *Graph[N]) ExternalID(idx int) (int64, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	if idx < 0 || idx >= len(g.nodeExtIDs) {
		return 0, ErrNodeNotFound
	}

	return g.nodeExtIDs[idx], nil
}

// EachNodeWithIndex visits every node in insertion order.
func (g *Graph[N]) EachNodeWithIndex(visit func(idx int, n N)) {
	g.muNodes.RLock()
	nodes := append([]N(nil), g.payloads...)
	g.muNodes.RUnlock()

	for i, n := range nodes {
		visit(i, n)
	}
}

// ValidLink reports whether a link src->dst would be well-formed: no
// self-loop, src accepts outgoing, dst accepts incoming. It does not check
// for cycles — callers combine it with LinkWouldCycle (spec.md §4.1).
// Complexity: O(1).
func (g *Graph[N]) ValidLink(src, dst int) error {
	if src == dst {
		return ErrSelfLoop
	}

	srcNode, err := g.Node(src)
	if err != nil {
		return err
	}
	dstNode, err := g.Node(dst)
	if err != nil {
		return err
	}

	if !srcNode.AcceptsOutgoing() {
		return ErrSourceRejectsOutgoing
	}
	if !dstNode.AcceptsIncoming() {
		return ErrTargetRejectsIncoming
	}

	return nil
}

// AddLink records a directed, weighted edge src->dst. It re-validates via
// ValidLink and panics if that fails — per spec.md §7, AddLink treats an
// invalid link as a fatal contract violation, not a recoverable error;
// callers that want a recoverable path must call ValidLink (and
// LinkWouldCycle) themselves first, exactly as the Rust original's
// CppnGraph::add_link panics on an Err from valid_link.
//
// AddLink does NOT check for cycles; that is the caller's responsibility
// (spec.md §4.1), normally satisfied by routing new links through
// FindRandomUnconnectedLinkNoCycle.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddLink(src, dst int, weight float64, extID int64) {
	if err := g.ValidLink(src, dst); err != nil {
		panic("dag: AddLink: " + err.Error())
	}

	g.muLinks.Lock()
	defer g.muLinks.Unlock()

	g.linkStore[src].outgoing = append(g.linkStore[src].outgoing, link{node: dst, weight: weight, extID: extID})
	g.linkStore[dst].incoming = append(g.linkStore[dst].incoming, link{node: src, weight: weight, extID: extID})
}

// InDegree returns the number of incoming links at idx.
// Complexity: O(1).
func (g *Graph[N]) InDegree(idx int) (int, error) {
	g.muLinks.RLock()
	defer g.muLinks.RUnlock()

	if idx < 0 || idx >= len(g.linkStore) {
		return 0, ErrNodeNotFound
	}

	return len(g.linkStore[idx].incoming), nil
}

// EachActiveForwardLinkOfNode visits every outgoing link of idx, in
// insertion order, passing the target index and the link's weight.
// "Active" here simply means stored — this container has no notion of a
// disabled link; the name is kept to match the external contract named in
// spec.md §6 verbatim.
func (g *Graph[N]) EachActiveForwardLinkOfNode(idx int, visit func(target int, weight float64)) {
	g.muLinks.RLock()
	out := append([]link(nil), g.linkStore[idx].outgoing...)
	g.muLinks.RUnlock()

	for _, l := range out {
		visit(l.node, l.weight)
	}
}
