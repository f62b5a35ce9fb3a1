// Package clique implements spec §4.B: enumeration of every maximal clique
// of an undirected graph.
//
// Grounded on dfs/dfs.go's backtracking-traversal idiom (explicit recursive
// walker struct carrying shared state, sentinel errors, deterministic
// ordering via sorted neighbor sets) adapted from single-source depth-first
// search into the classic Bron–Kerbosch algorithm with pivoting, which is
// itself a backtracking search over candidate extensions of a clique.
package clique

import (
	"errors"
	"sort"

	"github.com/cliquetree/treewidth/bag"
	"github.com/cliquetree/treewidth/graph"
)

// ErrGraphNil is returned when the input graph is nil.
var ErrGraphNil = errors.New("clique: graph is nil")

// Enumerate returns every maximal clique of g as a bag.Bag. A vertex with no
// neighbors is itself a maximal clique (spec §4.B: "singletons are cliques
// only if the vertex is isolated"). Enumeration order is not part of the
// contract and must not be relied upon by callers; this implementation
// happens to emit them in the order Bron–Kerbosch with pivoting discovers
// them, which is deterministic for a fixed graph given Vertices()'s sorted
// enumeration, but callers should treat the result as a set of bags.
//
// Complexity: worst-case exponential in |V| (enumerating maximal cliques is
// inherently so), O(3^(n/3)) output-sensitive per the Bron–Kerbosch bound.
func Enumerate(g *graph.Graph) ([]bag.Bag, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := make(map[string]bag.Bag, g.VertexCount())
	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		adj[id] = bag.New(nbrs...)
	}

	w := &walker{adj: adj, cliques: nil}
	all := bag.New(g.Vertices()...)
	w.bronKerbosch(bag.New(), all, bag.New())

	return w.cliques, nil
}

// walker holds the mutable state shared across one Bron–Kerbosch run.
type walker struct {
	adj     map[string]bag.Bag
	cliques []bag.Bag
}

// bronKerbosch extends the current clique r using candidates p, excluding
// vertices already ruled out in x. When both p and x are empty, r is
// maximal and is recorded.
func (w *walker) bronKerbosch(r, p, x bag.Bag) {
	if p.Len() == 0 && x.Len() == 0 {
		w.cliques = append(w.cliques, r.Clone())

		return
	}

	pivot := choosePivot(w.adj, p, x)
	pivotNbrs := w.adj[pivot]

	// Candidates to branch on: P minus the pivot's neighborhood, in a
	// deterministic (sorted) order so results are reproducible for a fixed
	// input graph.
	var branch []string
	for _, v := range p.Sorted() {
		if !pivotNbrs.Contains(v) {
			branch = append(branch, v)
		}
	}

	for _, v := range branch {
		nbrs := w.adj[v]

		rNext := r.Clone()
		rNext.Add(v)

		pNext := bag.Intersection(p, nbrs)
		xNext := bag.Intersection(x, nbrs)

		w.bronKerbosch(rNext, pNext, xNext)

		p = removeFrom(p, v)
		x.Add(v)
	}
}

// choosePivot selects the vertex in p∪x with the largest neighborhood
// intersected with p, the standard Tomita pivoting rule that minimizes the
// branching factor. Ties are broken by the smallest vertex ID for
// determinism.
func choosePivot(adj map[string]bag.Bag, p, x bag.Bag) string {
	best := ""
	bestScore := -1
	candidates := make([]string, 0, p.Len()+x.Len())
	candidates = append(candidates, p.Sorted()...)
	candidates = append(candidates, x.Sorted()...)
	sort.Strings(candidates)

	for _, v := range candidates {
		score := bag.Intersection(adj[v], p).Len()
		if score > bestScore {
			bestScore = score
			best = v
		}
	}

	return best
}

// removeFrom returns a new bag equal to b with v removed, leaving b itself
// untouched (bags are shared across branches of the recursion).
func removeFrom(b bag.Bag, v string) bag.Bag {
	out := b.Clone()
	delete(out, v)

	return out
}
