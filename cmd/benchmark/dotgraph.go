// dotgraph.go adapts this module's graph.Graph onto gonum's graph.Graph
// interface so gonum.org/v1/gonum/graph/encoding/dot can render it,
// instead of hand-writing a DOT string builder.
//
// Grounded on gonum-gonum/graph/simple (concrete Node/Edge types satisfying
// gonum's graph.Graph) and graph/encoding/dot's Marshal entry point — both
// pack dependencies wired in per SPEC_FULL.md's domain-stack section.
package main

import (
	"sort"

	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/cliquetree/treewidth/graph"
)

// dotNode is a gonum graph.Node that also satisfies dot.Node, so rendered
// vertices carry this module's string vertex ID as their DOT label instead
// of gonum's internal int64 index.
type dotNode struct {
	id    int64
	label string
}

func (n dotNode) ID() int64      { return n.id }
func (n dotNode) DOTID() string  { return n.label }

// renderDOT converts g into DOT source, labeling each vertex via labelFn
// (the vertex's own ID if labelFn is nil).
func renderDOT(g *graph.Graph, name string, labelFn func(id string) string) ([]byte, error) {
	if labelFn == nil {
		labelFn = func(id string) string { return id }
	}

	ids := g.Vertices()
	nodes := make(map[string]dotNode, len(ids))
	gg := simple.NewUndirectedGraph()
	for i, id := range ids {
		n := dotNode{id: int64(i), label: labelFn(id)}
		nodes[id] = n
		gg.AddNode(n)
	}

	for _, e := range g.Edges() {
		gg.SetEdge(simple.Edge{F: nodes[e.From], T: nodes[e.To]})
	}

	return dot.Marshal(gg, name, "", "  ", false)
}

// bagLabel renders a tree node's bag contents as a DOT-friendly label.
func bagLabel(t *graph.Graph) func(id string) string {
	return func(id string) string {
		v := t.Vertex(id)
		if v == nil {
			return id
		}
		b, ok := v.Metadata["bag"]
		if !ok {
			return id
		}
		sized, ok := b.(interface{ Sorted() []string })
		if !ok {
			return id
		}
		members := sized.Sorted()
		sort.Strings(members)

		return "{" + joinComma(members) + "}"
	}
}

func joinComma(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += ","
		}
		out += p
	}

	return out
}
