package network

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Node describes a built component or collection. A collection referenced
// from several places shares one Node, so the tree is a DAG.
type Node struct {
	Name     string
	Kind     string // component kind, "series", "parallel" or "super-<arrangement>"
	Detail   string // component parameters, empty for collections
	Tracked  bool
	Children []*Node
}

// Leaf reports whether n is a component.
func (n *Node) Leaf() bool {
	return n.Detail != ""
}

// Walk calls fn for n and every descendant in depth-first pre-order. Shared
// nodes are visited once per reference.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// edge is a parent-child link with its multiplicity.
type edge struct {
	from, to string
	count    int
}

// ToDOT converts the tree to Graphviz DOT. Every name appears once; repeated
// members collapse into one edge labelled with the count.
func ToDOT(root *Node) string {
	var (
		nodes []*Node
		edges []*edge
		seen  = map[string]bool{}
		index = map[[2]string]*edge{}
	)
	var collect func(n *Node)
	collect = func(n *Node) {
		if seen[n.Name] {
			return
		}
		seen[n.Name] = true
		nodes = append(nodes, n)
		for _, c := range n.Children {
			key := [2]string{n.Name, c.Name}
			if e, ok := index[key]; ok {
				e.count++
			} else {
				e = &edge{from: n.Name, to: c.Name, count: 1}
				index[key] = e
				edges = append(edges, e)
			}
			collect(c)
		}
	}
	collect(root)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=12, margin=\"0.15,0.05\"];\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(dotAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		if e.count > 1 {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"×%d\"];\n", e.from, e.to, e.count)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.from, e.to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotAttrs(n *Node) []string {
	label := n.Name + "\n" + n.Kind
	if n.Leaf() {
		label += "\n" + n.Detail
		attrs := []string{fmt.Sprintf("label=%q", label), "shape=box"}
		if n.Tracked {
			attrs = append(attrs, "style=bold")
		}
		return attrs
	}
	return []string{fmt.Sprintf("label=%q", label), "shape=box", "style=\"rounded,filled\"", "fillcolor=lightgrey"}
}

// RenderSVG renders DOT source to SVG with the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
