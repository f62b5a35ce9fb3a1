// Package cliquegraph implements spec §4.C: building the weighted clique
// graph CG from a sequence of maximal cliques, plus the clique-graph map
// required by structural (LCA) path-filling in package pathfill.
//
// Grounded on builder/api.go's single-orchestrator shape (one public
// Build entry point assembling vertices then edges in a fixed order) and
// on graph/clone.go's cloneableValue hook, which is what lets a bag.Bag
// vertex payload travel safely through graph.Graph.Clone().
package cliquegraph

import (
	"errors"

	"github.com/cliquetree/treewidth/bag"
	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/heuristics"
)

// ErrCliquesNil is returned when the clique slice is nil.
var ErrCliquesNil = errors.New("cliquegraph: cliques is nil")

// ErrHeuristicNil is returned when no heuristic is supplied.
var ErrHeuristicNil = errors.New("cliquegraph: heuristic is nil")

// bagKey is the private Metadata key under which each CG node's clique bag
// is stashed. The graph container never interprets it (spec §6).
const bagKey = "bag"

// Map is the clique-graph map of spec §4.F: for every vertex v of the
// original graph G, Map[v] is the set of CG node IDs whose bag contains v.
type Map map[string]bag.Bag

// Build constructs CG: one node per maximal clique (node IDs are decimal
// indices assigned in the input slice's order), with an edge between any
// two nodes whose bags intersect, weighted by h. It also returns the
// clique-graph map.
//
// Edge policy follows spec §4.C: only intersecting bag pairs are
// connected, since a useful spanning tree can only ever use edges between
// overlapping bags.
func Build(cliques []bag.Bag, h heuristics.Heuristic) (*graph.Graph, Map, error) {
	if cliques == nil {
		return nil, nil, ErrCliquesNil
	}
	if h == nil {
		return nil, nil, ErrHeuristicNil
	}

	cg := graph.NewGraph(graph.WithWeighted())
	ids := make([]string, len(cliques))

	for i, c := range cliques {
		id := graph.VertexIndex(i)
		ids[i] = id
		if err := cg.AddVertex(id); err != nil {
			return nil, nil, err
		}
		cg.Vertex(id).Metadata[bagKey] = c.Clone()
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			inter := bag.Intersection(cliques[i], cliques[j])
			if inter.Len() == 0 {
				continue
			}
			weight := h(cliques[i], cliques[j])
			if _, err := cg.AddEdge(ids[i], ids[j], weight); err != nil {
				return nil, nil, err
			}
		}
	}

	return cg, buildMap(ids, cliques), nil
}

// Bag returns the clique bag stashed at CG node id, or nil if id is absent
// or carries no bag payload.
func Bag(cg *graph.Graph, id string) bag.Bag {
	v := cg.Vertex(id)
	if v == nil {
		return nil
	}
	b, _ := v.Metadata[bagKey].(bag.Bag)

	return b
}

// buildMap inverts the clique list into v -> {CG node ids containing v}.
func buildMap(ids []string, cliques []bag.Bag) Map {
	m := make(Map)
	for i, c := range cliques {
		for _, v := range c.Sorted() {
			if m[v] == nil {
				m[v] = bag.New()
			}
			m[v].Add(ids[i])
		}
	}

	return m
}
