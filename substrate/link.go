package substrate

import (
	"errors"

	"github.com/go-cppn/cppn/cppn"
	"github.com/go-cppn/cppn/position"
)

// ErrLinkLayerIndexOutOfRange is returned by EachLink when a LayerLink
// names a layer index outside the substrate (only reachable if Layers was
// mutated after AddLayerLink — AddLayerLink itself already guards this).
var ErrLinkLayerIndexOutOfRange = errors.New("substrate: layer link references out-of-range layer")

// LinkMode selects how a candidate (src,tgt) pair's coordinates are packed
// into the CPPN's input vector (spec.md §4.3).
type LinkMode uint8

// The three link modes.
const (
	// AbsolutePositions feeds the source coordinates followed by the target
	// coordinates.
	AbsolutePositions LinkMode = iota
	// AbsolutePositionsAndDistance feeds source coordinates, target
	// coordinates, then the scalar Euclidean distance between them.
	AbsolutePositionsAndDistance
	// RelativePositionOfTarget feeds source coordinates followed by the
	// per-axis displacement (target - source).
	RelativePositionOfTarget
)

// NodeAddr names a node by its position within the substrate: which layer
// it lives in, and its index within that layer's Nodes slice.
type NodeAddr struct {
	Layer int
	Index int
}

// Link is one enumerated candidate connection, carrying everything spec.md
// §4.3 says a callback may need to decide what the link actually is: the
// full source and target PlacedNodes, their (layer,index) addresses, the
// complete CPPN output vector for the pair, and the Euclidean distance
// between them. EachLink itself never collapses Outputs to a single
// number — "the callback decides which CPPN output channel is the weight,
// whether to threshold, etc.; the substrate is agnostic" (spec.md §4.3).
type Link[P position.Position, T any] struct {
	LayerLinkIndex int
	Source         PlacedNode[P, T]
	Target         PlacedNode[P, T]
	SourceIdx      NodeAddr
	TargetIdx      NodeAddr
	Outputs        []float64
	Distance       float64
}

// EachLink enumerates every admissible (source, target) pair induced by
// every LayerLink in s, queries ev for each pair's full output vector, and
// invokes visit once per pair (spec.md §4.3).
//
// For each LayerLink: for every source node in FromLayer whose Connectivity
// accepts outgoing links, and every target node in ToLayer whose
// Connectivity accepts incoming links, the pair is skipped if MaxDistance
// is set and the Euclidean distance between the two positions exceeds it;
// otherwise the pair's coordinates are packed into a CPPN input vector
// according to mode and ev.Calculate is invoked. The callback alone decides
// which output channel is the weight, whether to threshold on distance,
// etc. — EachLink never inspects Outputs itself.
//
// visit's return value controls early termination: returning false stops
// enumeration immediately (including across outer LayerLinks).
func EachLink[P position.Position, T any](s *Substrate[P, T], ev *cppn.Evaluator, mode LinkMode, visit func(Link[P, T]) bool) error {
	for llIdx, ll := range s.LayerLinks {
		if ll.FromLayer < 0 || ll.FromLayer >= len(s.Layers) || ll.ToLayer < 0 || ll.ToLayer >= len(s.Layers) {
			return ErrLinkLayerIndexOutOfRange
		}

		from := s.Layers[ll.FromLayer]
		to := s.Layers[ll.ToLayer]

		cont, err := eachLinkInPair(llIdx, ll, from, to, ev, mode, visit)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}

	return nil
}

func eachLinkInPair[P position.Position, T any](llIdx int, ll LayerLink, from, to Layer[P, T], ev *cppn.Evaluator, mode LinkMode, visit func(Link[P, T]) bool) (bool, error) {
	for srcIdx, src := range from.Nodes {
		if !src.Connectivity.acceptsOutgoing() {
			continue
		}

		for tgtIdx, tgt := range to.Nodes {
			if !tgt.Connectivity.acceptsIncoming() {
				continue
			}

			dist := src.Position.Distance(tgt.Position)
			if ll.MaxDistance != nil && dist > *ll.MaxDistance {
				continue
			}

			inputs := packInputs(src.Position, tgt.Position, dist, mode)

			out, err := ev.Calculate(inputs)
			if err != nil {
				return false, err
			}
			if len(out) == 0 {
				return false, ErrNoOutputNodes
			}

			link := Link[P, T]{
				LayerLinkIndex: llIdx,
				Source:         src,
				Target:         tgt,
				SourceIdx:      NodeAddr{Layer: ll.FromLayer, Index: srcIdx},
				TargetIdx:      NodeAddr{Layer: ll.ToLayer, Index: tgtIdx},
				Outputs:        out,
				Distance:       dist,
			}
			if !visit(link) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ErrNoOutputNodes is returned by EachLink when the bound CPPN has no
// output nodes at all, so there is no weight to read.
var ErrNoOutputNodes = errors.New("substrate: cppn has no output nodes")

// packInputs builds the flattened CPPN input chunks for one candidate pair
// according to mode (spec.md §4.3).
func packInputs[P position.Position](src, tgt P, dist float64, mode LinkMode) [][]float64 {
	switch mode {
	case AbsolutePositionsAndDistance:
		return [][]float64{src.Coords(), tgt.Coords(), {dist}}
	case RelativePositionOfTarget:
		srcCoords := src.Coords()
		tgtCoords := tgt.Coords()
		rel := make([]float64, len(srcCoords))
		for i := range rel {
			rel[i] = tgtCoords[i] - srcCoords[i]
		}

		return [][]float64{srcCoords, rel}
	default: // AbsolutePositions
		return [][]float64{src.Coords(), tgt.Coords()}
	}
}
