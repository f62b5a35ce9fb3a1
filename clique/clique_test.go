package clique_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliquetree/treewidth/bag"
	"github.com/cliquetree/treewidth/clique"
	"github.com/cliquetree/treewidth/graph"
)

func mustAddEdges(t *testing.T, g *graph.Graph, pairs [][2]int) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(graph.VertexIndex(p[0]), graph.VertexIndex(p[1]), 0)
		require.NoError(t, err)
	}
}

// sortedCliqueStrings renders cliques as sorted, comparable string keys so
// tests can assert set-equality regardless of enumeration order.
func sortedCliqueStrings(cliques []bag.Bag) []string {
	out := make([]string, 0, len(cliques))
	for _, c := range cliques {
		members := c.Sorted()
		key := ""
		for i, m := range members {
			if i > 0 {
				key += ","
			}
			key += m
		}
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}

// TestEnumerateS1 is spec.md scenario S1.
func TestEnumerateS1(t *testing.T) {
	g := graph.NewGraph()
	mustAddEdges(t, g, [][2]int{
		{0, 1}, {0, 3}, {0, 4}, {0, 5}, {1, 2}, {2, 3}, {2, 5}, {3, 4}, {3, 5}, {4, 5},
	})

	cliques, err := clique.Enumerate(g)
	require.NoError(t, err)

	got := sortedCliqueStrings(cliques)
	want := []string{"0,1", "0,3,4,5", "1,2", "2,3", "2,5", "3,4,5"}
	sort.Strings(want)
	assert.Equal(t, want, got)
}

// TestEnumerateS3 is spec.md scenario S3 (K5).
func TestEnumerateS3(t *testing.T) {
	g := graph.NewGraph()
	var pairs [][2]int
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	mustAddEdges(t, g, pairs)

	cliques, err := clique.Enumerate(g)
	require.NoError(t, err)
	require.Len(t, cliques, 1)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, cliques[0].Sorted())
}

// TestEnumerateS4 is spec.md scenario S4 (two disjoint edges).
func TestEnumerateS4(t *testing.T) {
	g := graph.NewGraph()
	mustAddEdges(t, g, [][2]int{{0, 1}, {2, 3}})

	cliques, err := clique.Enumerate(g)
	require.NoError(t, err)

	got := sortedCliqueStrings(cliques)
	assert.Equal(t, []string{"0,1", "2,3"}, got)
}

func TestEnumerateIsolatedVertexIsSingletonClique(t *testing.T) {
	g := graph.NewGraph()
	require.NoError(t, g.AddVertex("0"))
	_, err := g.AddEdge("1", "2", 0)
	require.NoError(t, err)

	cliques, err := clique.Enumerate(g)
	require.NoError(t, err)

	got := sortedCliqueStrings(cliques)
	assert.Equal(t, []string{"0", "1,2"}, got)
}

func TestEnumerateNilGraph(t *testing.T) {
	_, err := clique.Enumerate(nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}
