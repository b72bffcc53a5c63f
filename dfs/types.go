// Package dfs orders and checks directed core.Graph references by depth-first
// search.
//
//   - TopologicalSort returns an order in which every edge points forward, or
//     ErrCycleDetected.
//   - DetectCycles returns every simple cycle in canonical form.
//
// Both walk vertices in ascending ID order and edges in insertion order, so
// their results are deterministic.
package dfs

import (
	"errors"
)

// Visitation states.
const (
	White = iota // not yet visited
	Gray         // on the current path
	Black        // finished
)

// Sentinel errors.
var (
	// ErrGraphNil is returned when the graph is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNotDirected is returned when a directed walk is asked of an undirected graph.
	ErrNotDirected = errors.New("dfs: requires directed graph")

	// ErrCycleDetected is returned by TopologicalSort when the graph is not a DAG.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch wraps a failure to list the edges of a vertex.
	ErrNeighborFetch = errors.New("dfs: neighbor fetch failed")
)
