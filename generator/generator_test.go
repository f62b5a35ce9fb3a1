package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cliquetree/treewidth/generator"
	"github.com/cliquetree/treewidth/mindegree"
)

func TestGenerateKTreeCompleteGraphMinDegree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	g, ok := generator.GenerateKTree(5, 5, rng)
	require.True(t, ok)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())

	degree, err := mindegree.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 4, degree)
}

func TestGenerateKTreeExtensionAddsExactlyKEdgesPerNewVertex(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	g, ok := generator.GenerateKTree(3, 10, rng)
	require.True(t, ok)
	assert.Equal(t, 10, g.VertexCount())

	wantEdges := 3*2/2 + 3*(10-3)
	assert.Equal(t, wantEdges, g.EdgeCount())
}

func TestGenerateKTreeRejectsKGreaterThanN(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	_, ok := generator.GenerateKTree(5, 3, rng)
	assert.False(t, ok)
}

func TestGeneratePartialKTreeRemovesEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	full := 5*4/2 + 5*(20-5)
	g, ok := generator.GeneratePartialKTree(5, 20, 50, rng)
	require.True(t, ok)

	wantRemoved := full * 50 / 100
	assert.Equal(t, full-wantRemoved, g.EdgeCount())
}

func TestGeneratePartialKTreeAllEdgesRemovedAbove100Percent(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	g, ok := generator.GeneratePartialKTree(4, 10, 150, rng)
	require.True(t, ok)
	assert.Equal(t, 0, g.EdgeCount())
}

func TestGenerateWithGuaranteedTreewidthMatchesK(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	g, ok := generator.GenerateWithGuaranteedTreewidth(4, 30, 10, rng)
	require.True(t, ok)

	degree, err := mindegree.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 4, degree)
}

func TestGenerateWithGuaranteedTreewidthRejectsKGreaterThanN(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	_, ok := generator.GenerateWithGuaranteedTreewidth(10, 3, 10, rng)
	assert.False(t, ok)
}
