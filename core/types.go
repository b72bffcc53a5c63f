// Package core defines the reference Graph that network files are checked
// against: one vertex per named component or collection and one edge from a
// collection to each member it lists.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge connects From to To. In a directed graph it is one-way.
type Edge struct {
	// ID is "e" followed by the insertion sequence number.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed reports whether the edge is one-way.
	Directed bool
}

// Graph is a thread-safe set of vertices and edges.
//
// Storage:
//
//	vertices[id]                 = struct{}{}
//	edges[eid]                   = *Edge
//	adjacency[from][to][eid]     = struct{}{}
//
// Undirected edges are mirrored in adjacency[to][from].
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowMulti bool
	allowLoops bool

	nextEdgeID uint64

	vertices  map[string]struct{}
	edges     map[string]*Edge
	adjacency map[string]map[string]map[string]struct{}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of every edge.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges allows several edges between the same endpoints.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops allows edges from a vertex to itself.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// NewGraph returns an empty Graph. By default it is undirected, without
// loops or multi-edges.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
