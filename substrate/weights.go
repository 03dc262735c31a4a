package substrate

import (
	"errors"

	"github.com/go-cppn/cppn/cppn"
	"github.com/go-cppn/cppn/matrix"
	"github.com/go-cppn/cppn/position"
)

// ErrChannelOutOfRange is returned by DenseWeights when channel names an
// output index the CPPN does not have.
var ErrChannelOutOfRange = errors.New("substrate: output channel out of range")

// DenseWeights materializes one LayerLink (selected by layerLinkIdx) as a
// dense FromLayer×ToLayer weight matrix, querying ev once per admissible
// (source, target) pair via EachLink and taking each cell's value from
// Outputs[channel] — the one fixed choice of "which CPPN output channel is
// the weight" that spec.md §4.3 leaves to the caller (here, to the caller
// of DenseWeights rather than to a callback). Cells for pairs that EachLink
// skips (rejected by Connectivity, or beyond MaxDistance) are left at zero.
func DenseWeights[P position.Position, T any](s *Substrate[P, T], ev *cppn.Evaluator, layerLinkIdx, channel int, mode LinkMode) (*matrix.Dense, error) {
	if layerLinkIdx < 0 || layerLinkIdx >= len(s.LayerLinks) {
		return nil, ErrLayerNotFound
	}

	ll := s.LayerLinks[layerLinkIdx]
	rows := len(s.Layers[ll.FromLayer].Nodes)
	cols := len(s.Layers[ll.ToLayer].Nodes)

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	single := &Substrate[P, T]{Layers: s.Layers, LayerLinks: []LayerLink{ll}}

	var setErr error
	if err := EachLink(single, ev, mode, func(l Link[P, T]) bool {
		if channel < 0 || channel >= len(l.Outputs) {
			setErr = ErrChannelOutOfRange
			return false
		}

		setErr = m.Set(l.SourceIdx.Index, l.TargetIdx.Index, l.Outputs[channel])

		return setErr == nil
	}); err != nil {
		return nil, err
	}
	if setErr != nil {
		return nil, setErr
	}

	return m, nil
}
