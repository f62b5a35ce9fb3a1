// Package treewidth computes an upper bound on a graph's treewidth using
// the clique-graph tree-decomposition heuristic: enumerate the graph's
// maximal cliques, build a weighted clique graph over them, extract a
// minimum-weight spanning forest, and restore the running-intersection
// property by filling bags along tree paths.
//
// The pipeline is organized under subpackages:
//
//	graph/        — the undirected weighted container shared by the input
//	                graph, the clique graph, and the extracted tree
//	bag/          — the vertex-set type carried by clique-graph and tree nodes
//	heuristics/   — edge-weight functions for the clique graph
//	clique/       — maximal clique enumeration (Bron-Kerbosch with pivoting)
//	cliquegraph/  — clique graph construction
//	spanningtree/ — minimum-weight spanning forest extraction (Kruskal)
//	pathfill/     — running-intersection repair, pairwise or structural (LCA)
//	mindegree/    — the max-min-degree heuristic, a cheap companion lower bound
//	generator/    — partial k-tree generation for benchmarking
//
// ComputeUpperBound ties the pipeline together; MaximumMinimumDegree,
// GeneratePartialKTree, and GeneratePartialKTreeWithGuaranteedTreewidth are
// re-exported here for convenience.
package treewidth
