// Package generator implements spec §4.I: the partial-k-tree benchmark
// generator, plus §9's resolved open question of threading a
// caller-supplied *rand.Rand through every call instead of spawning a
// fresh source per invocation.
//
// Grounded on original_source/treewidth_heuristic/src/generate_partial_k_tree.rs
// for the three-stage construction (complete graph → loose k-tree
// extension → random edge deletion) and the guaranteed-treewidth retry
// loop built on package mindegree; adapted into the "(*graph.Graph, bool)"
// present/absent convention builder/api.go's sentinel-error style would
// otherwise use, because spec §7 classifies "k > n" as returning absent
// rather than an error.
package generator

import (
	"math/rand"

	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/mindegree"
)

// GenerateKTree builds a k-tree on n vertices: a complete graph on the
// first k vertices, then each of the remaining n-k vertices connected to k
// existing vertices chosen uniformly at random (without replacement).
//
// Note (spec §9): a strict k-tree requires those k existing vertices to
// form a clique; this generator uses the looser random-k-subset rule the
// original implementation actually uses, not the textbook definition.
//
// Returns (nil, false) if k > n.
func GenerateKTree(k, n int, rng *rand.Rand) (*graph.Graph, bool) {
	if k > n {
		return nil, false
	}

	g := graph.NewGraph()
	for i := 0; i < k; i++ {
		mustAddVertex(g, graph.VertexIndex(i))
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			mustAddEdge(g, graph.VertexIndex(i), graph.VertexIndex(j), 0)
		}
	}

	for v := k; v < n; v++ {
		newID := graph.VertexIndex(v)
		mustAddVertex(g, newID)

		for _, idx := range chooseDistinct(v, k, rng) {
			mustAddEdge(g, newID, graph.VertexIndex(idx), 0)
		}
	}

	return g, true
}

// GeneratePartialKTree builds a k-tree via GenerateKTree, then deletes p
// percent of its edges (chosen uniformly at random without replacement;
// p > 100 deletes every edge). Returns (nil, false) if k > n.
func GeneratePartialKTree(k, n, p int, rng *rand.Rand) (*graph.Graph, bool) {
	g, ok := GenerateKTree(k, n, rng)
	if !ok {
		return nil, false
	}

	totalEdges := k*(k-1)/2 + k*(n-k)
	toRemove := totalEdges * p / 100
	if toRemove > totalEdges {
		toRemove = totalEdges
	}
	if toRemove <= 0 {
		return g, true
	}

	edges := g.Edges()
	for _, idx := range chooseDistinct(len(edges), toRemove, rng) {
		mustRemoveEdge(g, edges[idx].ID)
	}

	return g, true
}

// GenerateWithGuaranteedTreewidth repeatedly calls GeneratePartialKTree
// until the maximum-minimum-degree heuristic of the result equals k,
// guaranteeing (per that heuristic) a treewidth of at least k. Returns
// (nil, false) if k > n; otherwise loops until acceptance.
//
// Caution (spec §4.I, carried from original_source's doc comment): due to
// the randomness involved, this can in theory run indefinitely.
func GenerateWithGuaranteedTreewidth(k, n, p int, rng *rand.Rand) (*graph.Graph, bool) {
	if k > n {
		return nil, false
	}

	for {
		g, ok := GeneratePartialKTree(k, n, p, rng)
		if !ok {
			return nil, false
		}

		degree, err := mindegree.Compute(g)
		if err != nil {
			panic("generator: mindegree.Compute failed on a freshly built graph: " + err.Error())
		}
		if degree == k {
			return g, true
		}
	}
}

func mustAddVertex(g *graph.Graph, id string) {
	if err := g.AddVertex(id); err != nil {
		panic("generator: AddVertex: " + err.Error())
	}
}

func mustAddEdge(g *graph.Graph, from, to string, weight int64) {
	if _, err := g.AddEdge(from, to, weight); err != nil {
		panic("generator: AddEdge: " + err.Error())
	}
}

func mustRemoveEdge(g *graph.Graph, id string) {
	if err := g.RemoveEdge(id); err != nil {
		panic("generator: RemoveEdge: " + err.Error())
	}
}
