package cppn

import "sort"

// Layout assigns an integer rank (layer index) to every node, used by
// downstream visualization (spec.md §4.2): inputs start at rank 0, outputs
// at rank N+1, everything else at rank 1; then for every active link
// (u->w), if rank[w] <= rank[u], rank[w] is bumped to rank[u]+1, iterated to
// a fixed point. Acyclicity guarantees termination (each relaxation strictly
// increases some node's rank, and ranks are bounded by N+1), bounded by
// O(V*E).
func Layout(graph *Graph) []int {
	n := graph.NodeCount()
	rank := make([]int, n)

	graph.EachNodeWithIndex(func(idx int, node Node) {
		switch node.Kind {
		case KindInput:
			rank[idx] = 0
		case KindOutput:
			rank[idx] = n + 1
		default:
			rank[idx] = 1
		}
	})

	for changed := true; changed; {
		changed = false
		for u := 0; u < n; u++ {
			graph.EachActiveForwardLinkOfNode(u, func(w int, _ float64) {
				if rank[w] <= rank[u] {
					rank[w] = rank[u] + 1
					changed = true
				}
			})
		}
	}

	return rank
}

// GroupLayers partitions node indices by Layout rank, ascending by rank,
// and sorted ascending by node index within each layer.
func GroupLayers(graph *Graph) [][]int {
	rank := Layout(graph)

	byRank := make(map[int][]int, len(rank))
	maxRank := 0
	for idx, r := range rank {
		byRank[r] = append(byRank[r], idx)
		if r > maxRank {
			maxRank = r
		}
	}

	ranks := make([]int, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)

	out := make([][]int, 0, len(ranks))
	for _, r := range ranks {
		nodes := byRank[r]
		sort.Ints(nodes)
		out = append(out, nodes)
	}

	return out
}

// Layout is also exposed as Evaluator methods for API symmetry with
// Process/Calculate — both simply delegate to the package-level functions
// above, which only need the graph, not any evaluator scratch state.

// Layout is a convenience forwarding to the package-level Layout.
func (ev *Evaluator) Layout() []int { return Layout(ev.graph) }

// GroupLayers is a convenience forwarding to the package-level GroupLayers.
func (ev *Evaluator) GroupLayers() [][]int { return GroupLayers(ev.graph) }
