// Package substrate implements the layered collection of spatially-located
// nodes and declared layer-to-layer connectivity rules that, queried
// against a CPPN, yields the weights of an induced dense neural network
// (spec.md §1, §3, §4.3).
package substrate

import (
	"errors"

	"github.com/go-cppn/cppn/position"
)

// ErrLayerNotFound is returned by AddLayerLink when from_layer or to_layer
// names a layer index that does not (yet) exist.
var ErrLayerNotFound = errors.New("substrate: layer index out of range")

// Connectivity replaces the coarser CPPN node-kind admissibility with a
// finer per-placed-node rule (spec.md §3): In rejects outgoing links, Out
// rejects incoming links, InOut accepts both.
type Connectivity uint8

// The three connectivity modes.
const (
	In Connectivity = iota
	Out
	InOut
)

// acceptsOutgoing reports whether a node with this connectivity may be a
// link's source.
func (c Connectivity) acceptsOutgoing() bool { return c == Out || c == InOut }

// acceptsIncoming reports whether a node with this connectivity may be a
// link's target.
func (c Connectivity) acceptsIncoming() bool { return c == In || c == InOut }

// PlacedNode is one node within a Layer: a position, an arbitrary
// caller-supplied payload T (e.g. which substrate role this node plays),
// and a Connectivity rule.
type PlacedNode[P position.Position, T any] struct {
	Position     P
	NodeInfo     T
	Connectivity Connectivity
}

// Layer is an ordered list of PlacedNodes.
type Layer[P position.Position, T any] struct {
	Nodes []PlacedNode[P, T]
}

// AddNode appends a placed node to the layer.
func (l *Layer[P, T]) AddNode(pos P, info T, conn Connectivity) {
	l.Nodes = append(l.Nodes, PlacedNode[P, T]{Position: pos, NodeInfo: info, Connectivity: conn})
}

// LayerLink is a directed aggregate rule: every admissible (src,tgt) pair
// across FromLayer and ToLayer should be enumerated by EachLink, subject to
// MaxDistance when set. Duplicates are allowed; order is preserved and
// defines EachLink's iteration order (spec.md §3).
type LayerLink struct {
	FromLayer   int
	ToLayer     int
	MaxDistance *float64
}

// Substrate is an ordered collection of Layers and LayerLinks.
type Substrate[P position.Position, T any] struct {
	Layers     []Layer[P, T]
	LayerLinks []LayerLink
}

// AddLayer appends layer and returns its index.
func (s *Substrate[P, T]) AddLayer(layer Layer[P, T]) int {
	idx := len(s.Layers)
	s.Layers = append(s.Layers, layer)

	return idx
}

// AddLayerLink appends a layer link rule. No deduplication is performed —
// declaring the same (from,to) pair twice enumerates it twice, which is a
// legitimate way to apply two different MaxDistance cutoffs to the same
// layer pair in two passes (spec.md §3: "Duplicates allowed").
func (s *Substrate[P, T]) AddLayerLink(fromLayer, toLayer int, maxDistance *float64) error {
	if fromLayer < 0 || fromLayer >= len(s.Layers) || toLayer < 0 || toLayer >= len(s.Layers) {
		return ErrLayerNotFound
	}

	s.LayerLinks = append(s.LayerLinks, LayerLink{FromLayer: fromLayer, ToLayer: toLayer, MaxDistance: maxDistance})

	return nil
}
