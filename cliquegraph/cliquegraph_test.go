package cliquegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliquetree/treewidth/bag"
	"github.com/cliquetree/treewidth/cliquegraph"
	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/heuristics"
)

func TestBuildEdgesOnlyBetweenIntersectingBags(t *testing.T) {
	cliques := []bag.Bag{
		bag.New("0", "1"),
		bag.New("1", "2"),
		bag.New("3", "4"),
	}

	cg, cgMap, err := cliquegraph.Build(cliques, heuristics.NegativeIntersection)
	require.NoError(t, err)

	assert.Equal(t, 3, cg.VertexCount())
	assert.True(t, cg.HasEdge("0", "1"))
	assert.False(t, cg.HasEdge("0", "2"))
	assert.Equal(t, cg.HasEdge("1", "2"), cg.HasEdge("2", "1"), "HasEdge must be symmetric")
	assert.False(t, cg.HasEdge("1", "2"))

	e, err := cg.GetEdge(edgeBetween(t, cg, "0", "1"))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), e.Weight)

	assert.ElementsMatch(t, []string{"0", "1"}, cgMap["1"].Sorted())
	assert.Equal(t, []string{"1"}, cgMap["2"].Sorted())
	assert.Equal(t, []string{"0"}, cgMap["0"].Sorted())
}

func TestBuildBagPayload(t *testing.T) {
	cliques := []bag.Bag{bag.New("5", "6", "7")}
	cg, _, err := cliquegraph.Build(cliques, heuristics.Neutral)
	require.NoError(t, err)

	got := cliquegraph.Bag(cg, "0")
	assert.Equal(t, []string{"5", "6", "7"}, got.Sorted())
}

func TestBuildNilInputs(t *testing.T) {
	_, _, err := cliquegraph.Build(nil, heuristics.Neutral)
	assert.ErrorIs(t, err, cliquegraph.ErrCliquesNil)

	_, _, err = cliquegraph.Build([]bag.Bag{}, nil)
	assert.ErrorIs(t, err, cliquegraph.ErrHeuristicNil)
}

func edgeBetween(t *testing.T, g *graph.Graph, a, b string) string {
	t.Helper()
	for _, e := range g.Edges() {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return e.ID
		}
	}
	t.Fatalf("no edge between %s and %s", a, b)

	return ""
}
