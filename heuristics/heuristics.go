// Package heuristics implements spec §4.A's edge-weight heuristics: pure,
// total scoring functions over a pair of bags used by the spanning-tree
// extractor (package spanningtree) to bias which maximal cliques stay
// adjacent in the tree decomposition.
//
// Grounded on original_source/treewidth_heuristic/src/clique_graph_edge_weight_heuristics.rs —
// same six variants, same signs.
package heuristics

import "github.com/cliquetree/treewidth/bag"

// Heuristic scores a pair of bags. The spanning-tree extractor (4.D)
// minimizes total edge weight, so heuristics that return small/negative
// scores for highly-overlapping bags bias the tree toward lower width.
type Heuristic func(a, b bag.Bag) int64

// Neutral always returns 0: every edge of the clique graph is equally
// attractive, so the spanning-tree extractor's tie-break rule alone decides
// the tree shape.
func Neutral(_, _ bag.Bag) int64 { return 0 }

// NegativeIntersection returns -|a ∩ b|. Minimizing total weight then
// maximizes total overlap along the tree — the classic bias for low width.
func NegativeIntersection(a, b bag.Bag) int64 {
	return -int64(bag.Intersection(a, b).Len())
}

// PositiveIntersection returns +|a ∩ b|.
func PositiveIntersection(a, b bag.Bag) int64 {
	return int64(bag.Intersection(a, b).Len())
}

// DisjointUnionSize returns |a| + |b|, ignoring any overlap between them.
func DisjointUnionSize(a, b bag.Bag) int64 {
	return int64(a.Len() + b.Len())
}

// Union returns |a ∪ b|.
func Union(a, b bag.Bag) int64 {
	return int64(bag.Union(a, b).Len())
}

// LeastDifference returns |a △ b|, the symmetric-difference size.
func LeastDifference(a, b bag.Bag) int64 {
	return int64(bag.SymmetricDifference(a, b).Len())
}
