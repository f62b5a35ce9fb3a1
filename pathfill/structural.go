package pathfill

import (
	"container/heap"
	"sort"

	"github.com/cliquetree/treewidth/bag"
	"github.com/cliquetree/treewidth/cliquegraph"
	"github.com/cliquetree/treewidth/graph"
)

// Predecessor records a non-root tree node's parent and the parent's own
// depth (so depth(node) == Predecessor.Depth + 1).
type Predecessor struct {
	Parent string
	Depth  int
}

// PredecessorMap is the rooted-forest predecessor index built by
// BuildPredecessorMap: every non-root node maps to its parent; each
// component's root is absent by construction, which is also how callers
// tell a root apart from an interior node (see fillUntilCommonAncestor).
type PredecessorMap map[string]Predecessor

// BuildPredecessorMap implements spec §4.F steps 1-2, generalized to a
// forest per spec §4.D's tolerance for a disconnected clique graph: for
// each connected component independently, pick its max-degree node as root
// (ties broken by the smallest ID), then depth-first traverse from it with
// an explicit stack, recording (parent, parent-depth) for every other node
// in that component. Returns every component's root, sorted.
func BuildPredecessorMap(t *graph.Graph) (PredecessorMap, []string, error) {
	if t == nil {
		return nil, nil, ErrTreeNil
	}

	ids := t.Vertices()
	if len(ids) == 0 {
		return PredecessorMap{}, nil, nil
	}

	degree := make(map[string]int, len(ids))
	for _, id := range ids {
		d, err := t.Degree(id)
		if err != nil {
			return nil, nil, err
		}
		degree[id] = d
	}

	pred := make(PredecessorMap, len(ids))
	visited := make(map[string]bool, len(ids))
	var roots []string

	type frame struct {
		node  string
		depth int
	}

	for _, start := range ids {
		if visited[start] {
			continue
		}

		component, err := componentOf(t, start)
		if err != nil {
			return nil, nil, err
		}
		sort.Strings(component)

		root := component[0]
		bestDegree := -1
		for _, id := range component {
			if degree[id] > bestDegree {
				bestDegree = degree[id]
				root = id
			}
		}
		roots = append(roots, root)

		stack := []frame{{root, 0}}
		visited[root] = true
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			nbrs, err := t.NeighborIDs(cur.node)
			if err != nil {
				return nil, nil, err
			}
			for _, n := range nbrs {
				if visited[n] {
					continue
				}
				visited[n] = true
				pred[n] = Predecessor{Parent: cur.node, Depth: cur.depth}
				stack = append(stack, frame{node: n, depth: cur.depth + 1})
			}
		}
	}

	if len(pred) != len(ids)-len(roots) {
		panic("pathfill: predecessor map size invariant violated")
	}
	for _, root := range roots {
		if _, rootHasParent := pred[root]; rootHasParent {
			panic("pathfill: root must not have a predecessor entry")
		}
	}
	sort.Strings(roots)

	return pred, roots, nil
}

// componentOf returns every node reachable from start via an explicit-stack
// traversal, start included — one connected component of the forest t.
func componentOf(t *graph.Graph, start string) ([]string, error) {
	seen := map[string]bool{start: true}
	stack := []string{start}
	component := []string{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nbrs, err := t.NeighborIDs(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range nbrs {
			if seen[n] {
				continue
			}
			seen[n] = true
			stack = append(stack, n)
			component = append(component, n)
		}
	}

	return component, nil
}

// Structural fills t in place per spec §4.F: build the predecessor map,
// then for every original-graph vertex with more than one containing
// clique-graph node, walk all of them up to their common ancestor,
// inserting the vertex into every bag encountered along the way.
//
// Returns the predecessor map (the caller surfaces it per spec §4.J step
// 7, present only in structural mode).
func Structural(t *graph.Graph, cgMap cliquegraph.Map) (PredecessorMap, error) {
	if t == nil {
		return nil, ErrTreeNil
	}

	pred, _, err := BuildPredecessorMap(t)
	if err != nil {
		return nil, err
	}

	vertices := make([]string, 0, len(cgMap))
	for v := range cgMap {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	for _, v := range vertices {
		fillUntilCommonAncestor(t, pred, v, cgMap[v])
	}

	return pred, nil
}

// fillUntilCommonAncestor implements spec §4.F step 3 and the walk
// discipline it describes: an ordered collection of pending walkers keyed
// by (depth, node-id), deepest popped first, each replaced by its parent
// until one remains — the common ancestor, which also gets v inserted.
//
// Every bag v's clique-graph map lists is guaranteed (by construction of
// cliquegraph.Build: any two bags sharing v also share a non-empty
// intersection, hence a direct CG edge) to lie in the same forest
// component, so the walk never needs to know which component it is in —
// a node with no PredecessorMap entry is that component's root.
func fillUntilCommonAncestor(t *graph.Graph, pred PredecessorMap, v string, nodes bag.Bag) {
	if nodes == nil {
		return
	}
	members := nodes.Sorted()
	if len(members) <= 1 {
		return
	}

	h := &pendingHeap{}
	seen := make(map[string]bool, len(members))
	push := func(node string, depth int) {
		if seen[node] {
			return
		}
		seen[node] = true
		heap.Push(h, pendingItem{node: node, depth: depth})
	}

	for _, node := range members {
		p, hasParent := pred[node]
		if !hasParent {
			push(node, 0)
			continue
		}
		push(node, p.Depth+1)
	}

	for h.Len() > 1 {
		item := heap.Pop(h).(pendingItem)
		mergeVertex(t, item.node, v)

		p, hasParent := pred[item.node]
		if !hasParent {
			continue
		}
		push(p.Parent, p.Depth)
	}

	last := heap.Pop(h).(pendingItem)
	mergeVertex(t, last.node, v)
}

// mergeVertex inserts v into the bag stored at tree node id.
func mergeVertex(t *graph.Graph, id, v string) {
	merged := Bag(t, id).Clone()
	merged.Add(v)
	SetBag(t, id, merged)
}

// pendingItem is one entry of the (depth, node-id) ordered walker queue.
type pendingItem struct {
	node  string
	depth int
}

// pendingHeap is a container/heap max-heap ordered first by depth
// (deepest first), then by node id for a deterministic tie-break.
type pendingHeap []pendingItem

func (h pendingHeap) Len() int { return len(h) }

func (h pendingHeap) Less(i, j int) bool {
	if h[i].depth != h[j].depth {
		return h[i].depth > h[j].depth
	}

	return h[i].node > h[j].node
}

func (h pendingHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pendingHeap) Push(x interface{}) {
	*h = append(*h, x.(pendingItem))
}

func (h *pendingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
