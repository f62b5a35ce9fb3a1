package spanningtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/spanningtree"
)

func buildWeighted(t *testing.T, edges [][3]int64) *graph.Graph {
	t.Helper()
	g := graph.NewGraph(graph.WithWeighted())
	for _, e := range edges {
		from, to, w := graph.VertexIndex(int(e[0])), graph.VertexIndex(int(e[1])), e[2]
		_, err := g.AddEdge(from, to, w)
		require.NoError(t, err)
	}

	return g
}

func TestExtractConnectedGraphYieldsSpanningTree(t *testing.T) {
	// Square with both diagonals, diagonals heavier than the sides.
	g := buildWeighted(t, [][3]int64{
		{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 0, 1},
		{0, 2, 5}, {1, 3, 5},
	})

	mst, weight, err := spanningtree.Extract(g)
	require.NoError(t, err)
	assert.Equal(t, int64(3), weight)
	assert.Equal(t, 3, mst.EdgeCount())
	assert.Equal(t, 4, mst.VertexCount())
	assert.False(t, mst.HasEdge("0", "2"))
	assert.False(t, mst.HasEdge("1", "3"))
}

func TestExtractDisconnectedGraphYieldsForest(t *testing.T) {
	g := buildWeighted(t, [][3]int64{{0, 1, 1}, {2, 3, 1}})
	require.NoError(t, g.AddVertex("4"))

	forest, weight, err := spanningtree.Extract(g)
	require.NoError(t, err)
	assert.Equal(t, int64(2), weight)
	assert.Equal(t, 2, forest.EdgeCount())
	assert.Equal(t, 5, forest.VertexCount())
}

func TestExtractNilGraph(t *testing.T) {
	_, _, err := spanningtree.Extract(nil)
	assert.ErrorIs(t, err, spanningtree.ErrGraphNil)
}
