// Package dag: cycle-avoidance and uniform random unconnected-edge
// selection.
//
// LinkWouldCycle is a single-target reachability DFS, shaped after the
// three-color visitation style of github.com/katalvlaran/lvlath's
// dfs/cycle.go (explicit stack, a visited set, back-edge detection) but
// narrowed to the one question a CPPN mutation ever asks: would directed
// edge src->dst close a path back to src? Unlike dfs.DetectCycles, it never
// enumerates or canonicalizes cycles — there is exactly one candidate to
// test, so the minimal-rotation/signature-dedup machinery that package
// carries for reporting every simple cycle has nothing to do here.
package dag

import (
	"math/rand"

	"github.com/go-cppn/cppn/internal/bitset"
)

// LinkWouldCycle reports whether adding a directed link src->dst would
// introduce a cycle into the graph. src==dst is trivially a cycle.
// Otherwise it walks forward from dst; if src is reachable, closing
// src->dst would complete a cycle.
// Complexity: O(V+E).
func (g *Graph[N]) LinkWouldCycle(src, dst int) bool {
	if src == dst {
		return true
	}

	g.muLinks.RLock()
	defer g.muLinks.RUnlock()

	seen := bitset.New(len(g.linkStore))
	stack := []int{dst}
	seen.Insert(dst)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, l := range g.linkStore[cur].outgoing {
			if l.node == src {
				return true
			}
			if !seen.Contains(l.node) {
				seen.Insert(l.node)
				stack = append(stack, l.node)
			}
		}
	}

	return false
}

// FindRandomUnconnectedLinkNoCycle implements the algorithm of spec.md
// §4.1: build a symmetric N×N adjacency bitmatrix (every existing edge
// marks both (i,j) and (j,i), since a reciprocal edge would cycle
// immediately anyway), shuffle two index permutations, and scan row-major
// for the first pair that is unmarked, valid, and acyclic.
//
// Returns ok=false if no such pair exists. The RNG is caller-supplied
// (matching this module's explicit-*rand.Rand convention throughout —
// see tsp/rng.go and builder/options.go in the teacher for the same
// never-hide-a-global-RNG idiom) so callers control determinism and
// goroutine isolation themselves.
// Complexity: O(N²) time and space for the bitmatrix, dominating the O(V+E)
// per-candidate cycle check.
func (g *Graph[N]) FindRandomUnconnectedLinkNoCycle(rng *rand.Rand) (src, dst int, ok bool) {
	g.muLinks.RLock()
	n := len(g.linkStore)
	adj := bitset.NewMatrix(n)
	for i, e := range g.linkStore {
		for _, l := range e.outgoing {
			adj.Insert(i, l.node)
			adj.Insert(l.node, i)
		}
	}
	g.muLinks.RUnlock()

	nodeOrder := make([]int, n)
	edgeOrder := make([]int, n)
	for i := range nodeOrder {
		nodeOrder[i] = i
		edgeOrder[i] = i
	}
	rng.Shuffle(len(nodeOrder), func(a, b int) { nodeOrder[a], nodeOrder[b] = nodeOrder[b], nodeOrder[a] })

	for _, i := range nodeOrder {
		rng.Shuffle(len(edgeOrder), func(a, b int) { edgeOrder[a], edgeOrder[b] = edgeOrder[b], edgeOrder[a] })
		for _, j := range edgeOrder {
			if i == j || adj.Contains(i, j) {
				continue
			}
			if g.ValidLink(i, j) != nil {
				continue
			}
			if g.LinkWouldCycle(i, j) {
				continue
			}

			return i, j, true
		}
	}

	return 0, 0, false
}
