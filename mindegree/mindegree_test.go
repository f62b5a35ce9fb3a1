package mindegree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/mindegree"
)

func complete(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, err := g.AddEdge(graph.VertexIndex(i), graph.VertexIndex(j), 0)
			require.NoError(t, err)
		}
	}

	return g
}

func TestComputeCompleteGraph(t *testing.T) {
	for _, n := range []int{1, 5, 20} {
		got, err := mindegree.Compute(complete(t, n))
		require.NoError(t, err)
		assert.Equal(t, n-1, got)
	}
}

func TestComputeEmptyGraph(t *testing.T) {
	got, err := mindegree.Compute(graph.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestComputeNilGraph(t *testing.T) {
	got, err := mindegree.Compute(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	g := complete(t, 4)
	_, err := mindegree.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
}

func TestComputePathGraph(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.AddEdge("0", "1", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("2", "3", 0)
	require.NoError(t, err)

	got, err := mindegree.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
