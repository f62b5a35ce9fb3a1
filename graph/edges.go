// File: edges.go
// Role: edge lifecycle & queries, mirroring core/methods_edges.go's
// determinism and locking discipline (edges sorted by ID asc, mutations
// under muEdgeAdj, monotonic "e"+decimal ids).
package graph

import (
	"sort"
	"strconv"
)

const edgeIDPrefix = "e"

// AddEdge creates an undirected edge between from and to with the given
// weight. Loops and parallel edges are always rejected — this container
// only ever represents a simple graph (spec §3).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if inner := g.adjacencyList[from][to]; len(inner) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := edgeIDPrefix + strconv.FormatUint(nextEdgeID(g), 10)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edges[eid] = e

	g.ensureAdjMap(from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	g.ensureAdjMap(to, from)
	g.adjacencyList[to][from][eid] = struct{}{}

	return eid, nil
}

// RemoveEdge deletes one edge by id.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.removeAdjacency(e)
	g.cleanupAdjacency()

	return nil
}

// HasEdge reports whether an edge between from and to exists.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given id, or ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by ID.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func nextEdgeID(g *Graph) uint64 {
	g.nextEdgeID++

	return g.nextEdgeID
}
