// Package mindegree implements spec §4.H: the maximum-minimum-degree
// heuristic, a cheap lower-bound proxy for treewidth also used by package
// generator to accept or reject a generated partial k-tree.
//
// Grounded on original_source/treewidth_heuristic/src/generate_partial_k_tree.rs's
// maximum_minimum_degree usage (strip the minimum-degree vertex, track the
// max of what was stripped) and on graph/clone.go for the "work on a
// disposable copy" idiom already established by this module's own Clone.
package mindegree

import "github.com/cliquetree/treewidth/graph"

// Compute returns the maximum, over the sequence of minimum-degree
// vertices repeatedly stripped from a working copy of g, of that vertex's
// degree at the time of removal. Returns 0 for an empty graph.
//
// For a complete graph on k+1 vertices this returns k, matching spec
// §4.H's worked example.
//
// Complexity: O(V) removals, each O(V) to find the minimum-degree vertex
// among the sorted remaining IDs — O(V^2) overall, acceptable at the
// generator's benchmarking scale.
func Compute(g *graph.Graph) (int, error) {
	if g == nil {
		return 0, nil
	}

	work := g.Clone()
	maxOfMins := 0

	for {
		ids := work.Vertices()
		if len(ids) == 0 {
			break
		}

		minID := ids[0]
		minDegree := -1
		for _, id := range ids {
			d, err := work.Degree(id)
			if err != nil {
				return 0, err
			}
			if minDegree == -1 || d < minDegree {
				minDegree = d
				minID = id
			}
		}

		if minDegree > maxOfMins {
			maxOfMins = minDegree
		}

		if err := work.RemoveVertex(minID); err != nil {
			return 0, err
		}
	}

	return maxOfMins, nil
}
