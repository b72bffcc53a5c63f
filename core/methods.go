package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool {
	return g.allowLoops
}

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool {
	return g.allowMulti
}

// AddVertex inserts id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertex(id)
	return nil
}

func (g *Graph) addVertex(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns every vertex ID in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// AddEdge connects from to to, creating missing vertices, and returns the
// new edge ID.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertex(from)
	g.addVertex(to)
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("%w: %q -> %q", ErrMultiEdgeNotAllowed, from, to)
	}

	eid := "e" + strconv.FormatUint(atomic.AddUint64(&g.nextEdgeID, 1), 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Directed: g.directed}
	g.link(from, to, eid)
	if !g.directed && from != to {
		g.link(to, from, eid)
	}
	return eid, nil
}

func (g *Graph) link(from, to, eid string) {
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// HasEdge reports whether at least one edge leads from from to to.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adjacency[from][to]) > 0
}

// Neighbors returns the edges leaving id in insertion order. In an
// undirected graph that is every incident edge.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	var out []*Edge
	for _, ids := range g.adjacency[id] {
		for eid := range ids {
			out = append(out, g.edges[eid])
		}
	}
	slices.SortFunc(out, func(a, b *Edge) int { return compareEdgeIDs(a.ID, b.ID) })
	return out, nil
}

// compareEdgeIDs orders "e2" before "e10".
func compareEdgeIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
