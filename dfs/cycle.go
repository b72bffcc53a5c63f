package dfs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/hydronet/core"
)

// DetectCycles returns the cycles closed by back edges of a directed graph.
// Each cycle is rotated to start at its smallest vertex and closed by
// repeating it, e.g. [a b c a]; a self-loop is [a a]. Cycles are distinct
// and sorted. A graph without cycles returns nil.
//
// The walk reports at least one cycle for every graph that has any; it does
// not enumerate every simple cycle.
func DetectCycles(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("%w: DetectCycles", ErrNotDirected)
	}
	o := defaultOptions(opts)

	verts := g.Vertices()
	d := &cycleDetector{
		graph: g,
		opts:  o,
		state: make(map[string]int, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if d.state[v] == White {
			if err := d.visit(v); err != nil {
				return nil, err
			}
		}
	}

	slices.SortFunc(d.cycles, func(a, b []string) int {
		return strings.Compare(strings.Join(a, "\x00"), strings.Join(b, "\x00"))
	})
	return d.cycles, nil
}

type cycleDetector struct {
	graph  *core.Graph
	opts   options
	state  map[string]int
	path   []string // gray vertices, outermost first
	seen   map[string]struct{}
	cycles [][]string
}

func (d *cycleDetector) visit(id string) error {
	if err := d.opts.ctx.Err(); err != nil {
		return err
	}
	d.state[id] = Gray
	d.path = append(d.path, id)

	edges, err := d.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNeighborFetch, err)
	}
	for _, e := range edges {
		if e.From != id {
			continue
		}
		switch d.state[e.To] {
		case White:
			if err = d.visit(e.To); err != nil {
				return err
			}
		case Gray:
			d.record(e.To)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[id] = Black
	return nil
}

// record stores the path segment from start back to start.
func (d *cycleDetector) record(start string) {
	seq := canonical(d.path[slices.Index(d.path, start):])
	sig := strings.Join(seq, "\x00")
	if _, ok := d.seen[sig]; ok {
		return
	}
	d.seen[sig] = struct{}{}
	d.cycles = append(d.cycles, seq)
}

// canonical rotates an open cycle of distinct vertices to start at its
// smallest one and closes it.
func canonical(open []string) []string {
	k := slices.Index(open, slices.Min(open))
	out := make([]string, 0, len(open)+1)
	out = append(out, open[k:]...)
	out = append(out, open[:k]...)
	return append(out, out[0])
}
