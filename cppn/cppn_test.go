package cppn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cppn/cppn/activation"
	"github.com/go-cppn/cppn/cppn"
)

// buildS1 constructs the single-edge identity CPPN of spec.md §8 S1:
// i1=Input(Linear), h1=Hidden(Linear), o1=Output(Linear); i1->h1 weight 0.5,
// h1->o1 weight 1.0.
func buildS1(t *testing.T) *cppn.Evaluator {
	t.Helper()

	g := cppn.NewGraph()
	i1 := g.AddNode(cppn.Node{Kind: cppn.KindInput, Activation: activation.Linear}, 1)
	h1 := g.AddNode(cppn.Node{Kind: cppn.KindHidden, Activation: activation.Linear}, 2)
	o1 := g.AddNode(cppn.Node{Kind: cppn.KindOutput, Activation: activation.Linear}, 3)
	g.AddLink(i1, h1, 0.5, 0)
	g.AddLink(h1, o1, 1.0, 0)

	return cppn.NewEvaluator(g)
}

func TestS1_SingleEdgeIdentity(t *testing.T) {
	ev := buildS1(t)

	out, err := ev.Calculate([][]float64{{0.5}})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, out[0], 1e-9)

	out, err = ev.Calculate([][]float64{{4.0}})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out[0], 1e-9)

	out, err = ev.Calculate([][]float64{{-4.0}})
	require.NoError(t, err)
	assert.InDelta(t, -2.0, out[0], 1e-9)
}

func TestS2_OutputActivationReplacesSignal(t *testing.T) {
	g := cppn.NewGraph()
	i1 := g.AddNode(cppn.Node{Kind: cppn.KindInput, Activation: activation.Linear}, 1)
	h1 := g.AddNode(cppn.Node{Kind: cppn.KindHidden, Activation: activation.Linear}, 2)
	o1 := g.AddNode(cppn.Node{Kind: cppn.KindOutput, Activation: activation.Constant1}, 3)
	g.AddLink(i1, h1, 0.5, 0)
	g.AddLink(h1, o1, 1.0, 0)

	ev := cppn.NewEvaluator(g)

	for _, x := range []float64{0.1, -9, 42} {
		out, err := ev.Calculate([][]float64{{x}})
		require.NoError(t, err)
		assert.Equal(t, 1.0, out[0])
	}
}

func TestProcess_InputArityMismatch(t *testing.T) {
	ev := buildS1(t)

	_, err := ev.Calculate([][]float64{{1, 2}})
	require.ErrorIs(t, err, cppn.ErrInputArityMismatch)
}

func TestReadOutput_IndexOutOfRange(t *testing.T) {
	ev := buildS1(t)
	require.NoError(t, ev.Process([][]float64{{1}}))

	_, err := ev.ReadOutput(5)
	require.ErrorIs(t, err, cppn.ErrOutputIndexOutOfRange)
}

// buildS5 constructs the layering CPPN of spec.md §8 S5: i1, h1, h2, o1;
// links i1->h1, h1->o1 (h2 initially unconnected).
func buildS5(t *testing.T) (*cppn.Graph, map[string]int) {
	t.Helper()

	g := cppn.NewGraph()
	idx := map[string]int{
		"i1": g.AddNode(cppn.Node{Kind: cppn.KindInput, Activation: activation.Linear}, 1),
		"h1": g.AddNode(cppn.Node{Kind: cppn.KindHidden, Activation: activation.Linear}, 2),
		"h2": g.AddNode(cppn.Node{Kind: cppn.KindHidden, Activation: activation.Linear}, 3),
		"o1": g.AddNode(cppn.Node{Kind: cppn.KindOutput, Activation: activation.Linear}, 4),
	}
	g.AddLink(idx["i1"], idx["h1"], 1.0, 0)
	g.AddLink(idx["h1"], idx["o1"], 1.0, 0)

	return g, idx
}

func TestS5_Layering(t *testing.T) {
	g, idx := buildS5(t)

	assert.Equal(t, []int{0, 1, 1, 5}, cppn.Layout(g))
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, cppn.GroupLayers(g))

	g.AddLink(idx["h2"], idx["h1"], 1.0, 0)

	assert.Equal(t, []int{0, 2, 1, 5}, cppn.Layout(g))
	assert.Equal(t, [][]int{{0}, {2}, {1}, {3}}, cppn.GroupLayers(g))
}

func TestS6_BipolarClip(t *testing.T) {
	assert.Equal(t, 1.0, activation.LinearBipolarClipped.Calculate(1.1))
	assert.Equal(t, -1.0, activation.LinearBipolarClipped.Calculate(-1.1))
	assert.Equal(t, 0.5, activation.LinearBipolarClipped.Calculate(0.5))
}

func TestNode_Admissibility(t *testing.T) {
	in := cppn.Node{Kind: cppn.KindInput}
	out := cppn.Node{Kind: cppn.KindOutput}
	hidden := cppn.Node{Kind: cppn.KindHidden}
	bias := cppn.Node{Kind: cppn.KindBias}

	assert.True(t, in.AcceptsOutgoing())
	assert.False(t, in.AcceptsIncoming())

	assert.False(t, out.AcceptsOutgoing())
	assert.True(t, out.AcceptsIncoming())

	assert.True(t, hidden.AcceptsOutgoing())
	assert.True(t, hidden.AcceptsIncoming())

	assert.True(t, bias.AcceptsOutgoing())
	assert.False(t, bias.AcceptsIncoming())
}

func TestEvaluator_BiasForcesUnitOutput(t *testing.T) {
	g := cppn.NewGraph()
	bias := g.AddNode(cppn.Node{Kind: cppn.KindBias, Activation: activation.Gaussian}, 1)
	out := g.AddNode(cppn.Node{Kind: cppn.KindOutput, Activation: activation.Linear}, 2)
	g.AddLink(bias, out, 3.0, 0)

	ev := cppn.NewEvaluator(g)
	vals, err := ev.Calculate(nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, vals[0])
}
