package treewidth

import (
	"github.com/cliquetree/treewidth/graph"
	"github.com/cliquetree/treewidth/pathfill"
)

// Width implements spec §4.G: max_{n in T} |bag(n)| - 1, or 0 if T has no
// nodes.
func Width(t *graph.Graph) int {
	if t == nil {
		return 0
	}

	maxBag := 0
	for _, id := range t.Vertices() {
		if b := pathfill.Bag(t, id); b.Len() > maxBag {
			maxBag = b.Len()
		}
	}
	if maxBag == 0 {
		return 0
	}

	return maxBag - 1
}
