package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hydronet/core"
)

// Option configures a walk.
type Option func(*options)

type options struct {
	ctx context.Context // allows cancellation; defaults to Background
}

func defaultOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCancelContext aborts the walk with ctx.Err() once ctx is done.
// A nil ctx keeps the default.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

type topoSorter struct {
	graph *core.Graph
	ctx   context.Context
	state map[string]int
	order []string // post-order
}

// TopologicalSort returns the vertices of a directed graph so that every
// edge From -> To has From before To.
//
// Errors: ErrGraphNil, ErrNotDirected, ErrCycleDetected (naming the vertex
// the walk returned to), ErrNeighborFetch, or the context error.
//
// Complexity: O(V log V + E log E) for the sorted vertex and edge lists.
func TopologicalSort(g *core.Graph, opts ...Option) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: TopologicalSort", ErrNotDirected)
	}
	o := defaultOptions(opts)

	verts := g.Vertices()
	t := &topoSorter{
		graph: g,
		ctx:   o.ctx,
		state: make(map[string]int, len(verts)),
		order: make([]string, 0, len(verts)),
	}
	for _, v := range verts {
		if t.state[v] == White {
			if err := t.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// reverse post-order puts sources first
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	if err := t.ctx.Err(); err != nil {
		return err
	}
	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray

	edges, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, e := range edges {
		if e.From != id {
			continue
		}
		if err = t.visit(e.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)
	return nil
}
