package treewidth

import (
	"math/rand"

	"github.com/cliquetree/treewidth/clique"
	"github.com/cliquetree/treewidth/cliquegraph"
	"github.com/cliquetree/treewidth/generator"
	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/heuristics"
	"github.com/cliquetree/treewidth/mindegree"
	"github.com/cliquetree/treewidth/pathfill"
	"github.com/cliquetree/treewidth/spanningtree"
)

// Result is the full output of ComputeUpperBound, per spec §4.J step 7.
type Result struct {
	// Filled is the tree decomposition after path-filling restores the
	// running-intersection property.
	Filled *graph.Graph
	// Snapshot is T as extracted by the spanning-tree step, before
	// path-filling. Independent of Filled only when CloneBeforeFilling
	// was set on the call that produced this Result.
	Snapshot *graph.Graph
	// Predecessors is non-nil only when structural filling was used.
	Predecessors pathfill.PredecessorMap
	// CliqueGraphMap is non-nil only when structural filling was used.
	CliqueGraphMap cliquegraph.Map
	// Width is max_{n in Filled} |bag(n)| - 1.
	Width int
}

// ComputeUpperBound implements spec §4.J: the end-to-end pipeline from an
// input graph to a tree-decomposition width upper bound.
//
// useStructuralFilling selects §4.F (LCA-based) path-filling over the
// default §4.E pairwise algorithm; both restore the same running-
// intersection property and, per spec §8 (S6), produce identical bag
// contents modulo insertion order.
//
// cloneBeforeFilling controls whether Result.Snapshot is an independent
// deep copy of the extracted tree (true) or the same tree later mutated
// in place by filling (false) — set true whenever the caller needs to
// inspect the pre-filling tree after this call returns.
func ComputeUpperBound(
	g *graph.Graph,
	h heuristics.Heuristic,
	useStructuralFilling bool,
	cloneBeforeFilling bool,
) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if h == nil {
		return nil, ErrHeuristicNil
	}

	cliques, err := clique.Enumerate(g)
	if err != nil {
		return nil, err
	}

	cg, cgMap, err := cliquegraph.Build(cliques, h)
	if err != nil {
		return nil, err
	}

	tree, _, err := spanningtree.Extract(cg)
	if err != nil {
		return nil, err
	}

	var snapshot *graph.Graph
	if cloneBeforeFilling {
		snapshot = tree.Clone()
	} else {
		snapshot = tree
	}

	var (
		predecessors pathfill.PredecessorMap
		usedMap      cliquegraph.Map
	)
	if useStructuralFilling {
		predecessors, err = pathfill.Structural(tree, cgMap)
		if err != nil {
			return nil, err
		}
		usedMap = cgMap
	} else {
		if err := pathfill.Pairwise(tree); err != nil {
			return nil, err
		}
	}

	return &Result{
		Filled:         tree,
		Snapshot:       snapshot,
		Predecessors:   predecessors,
		CliqueGraphMap: usedMap,
		Width:          Width(tree),
	}, nil
}

// MaximumMinimumDegree implements spec §4.H, re-exported at the package
// root as one of the four public operations of spec §6.
func MaximumMinimumDegree(g *graph.Graph) (int, error) {
	return mindegree.Compute(g)
}

// GeneratePartialKTree implements spec §4.I's generate_partial_k_tree,
// re-exported at the package root per spec §6.
func GeneratePartialKTree(k, n, p int, rng *rand.Rand) (*graph.Graph, bool) {
	return generator.GeneratePartialKTree(k, n, p, rng)
}

// GeneratePartialKTreeWithGuaranteedTreewidth implements spec §4.I's
// generate_partial_k_tree_with_guaranteed_treewidth, re-exported at the
// package root per spec §6.
func GeneratePartialKTreeWithGuaranteedTreewidth(k, n, p int, rng *rand.Rand) (*graph.Graph, bool) {
	return generator.GenerateWithGuaranteedTreewidth(k, n, p, rng)
}
