package dag_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-cppn/cppn/dag"
)

// testNode is a minimal dag.NodeConstraint implementation for black-box
// tests: two flags alone govern admissibility, mirroring cppn.Node without
// importing package cppn (which itself depends on dag).
type testNode struct {
	acceptsOutgoing bool
	acceptsIncoming bool
}

func (n testNode) AcceptsOutgoing() bool { return n.acceptsOutgoing }
func (n testNode) AcceptsIncoming() bool { return n.acceptsIncoming }

func inOnly() testNode  { return testNode{acceptsOutgoing: false, acceptsIncoming: true} }
func outOnly() testNode { return testNode{acceptsOutgoing: true, acceptsIncoming: false} }
func both() testNode    { return testNode{acceptsOutgoing: true, acceptsIncoming: true} }

func TestAddNode_DenseIndices(t *testing.T) {
	g := dag.New[testNode]()
	i0 := g.AddNode(both(), 100)
	i1 := g.AddNode(both(), 200)

	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, g.NodeCount())

	extID, err := g.ExternalID(i1)
	require.NoError(t, err)
	assert.EqualValues(t, 200, extID)
}

func TestValidLink_SelfLoop(t *testing.T) {
	g := dag.New[testNode]()
	a := g.AddNode(both(), 1)

	err := g.ValidLink(a, a)
	require.ErrorIs(t, err, dag.ErrSelfLoop)
}

func TestValidLink_AdmissibilityRules(t *testing.T) {
	g := dag.New[testNode]()
	in := g.AddNode(inOnly(), 1)
	out := g.AddNode(outOnly(), 2)
	out2 := g.AddNode(outOnly(), 3)

	err := g.ValidLink(in, out)
	require.ErrorIs(t, err, dag.ErrSourceRejectsOutgoing)

	err = g.ValidLink(out, in)
	require.NoError(t, err)

	err = g.ValidLink(out, out2)
	require.ErrorIs(t, err, dag.ErrTargetRejectsIncoming)
}

func TestAddLink_PanicsOnInvalidLink(t *testing.T) {
	g := dag.New[testNode]()
	a := g.AddNode(both(), 1)

	assert.Panics(t, func() {
		g.AddLink(a, a, 1.0, 0)
	})
}

func TestAddLink_RecordsBothDirections(t *testing.T) {
	g := dag.New[testNode]()
	a := g.AddNode(both(), 1)
	b := g.AddNode(both(), 2)
	g.AddLink(a, b, 0.5, 42)

	deg, err := g.InDegree(b)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	var seen []int
	g.EachActiveForwardLinkOfNode(a, func(target int, weight float64) {
		seen = append(seen, target)
		assert.Equal(t, 0.5, weight)
	})
	assert.Equal(t, []int{b}, seen)
}

func TestLinkWouldCycle(t *testing.T) {
	g := dag.New[testNode]()
	a := g.AddNode(both(), 1)
	b := g.AddNode(both(), 2)
	c := g.AddNode(both(), 3)
	g.AddLink(a, b, 1, 0)
	g.AddLink(b, c, 1, 0)

	assert.True(t, g.LinkWouldCycle(c, a))
	assert.False(t, g.LinkWouldCycle(a, c))
}

func TestFindRandomUnconnectedLinkNoCycle_Deterministic(t *testing.T) {
	g := dag.New[testNode]()
	a := g.AddNode(both(), 1)
	b := g.AddNode(both(), 2)
	g.AddNode(both(), 3) // unconnected, so at least one candidate exists
	g.AddLink(a, b, 1, 0)

	rng := rand.New(rand.NewSource(7))
	src, dst, ok := g.FindRandomUnconnectedLinkNoCycle(rng)
	require.True(t, ok)
	assert.NotEqual(t, src, dst)
	assert.NoError(t, g.ValidLink(src, dst))
	assert.False(t, g.LinkWouldCycle(src, dst))
}

func TestFindRandomUnconnectedLinkNoCycle_NoneAvailable(t *testing.T) {
	g := dag.New[testNode]()
	a := g.AddNode(outOnly(), 1)
	b := g.AddNode(inOnly(), 2)
	g.AddLink(a, b, 1, 0)

	rng := rand.New(rand.NewSource(1))
	_, _, ok := g.FindRandomUnconnectedLinkNoCycle(rng)
	assert.False(t, ok)
}

func TestNode_NotFound(t *testing.T) {
	g := dag.New[testNode]()
	_, err := g.Node(5)
	require.ErrorIs(t, err, dag.ErrNodeNotFound)
}
