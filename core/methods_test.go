package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydronet/core"
)

func edgeTargets(t *testing.T, g *core.Graph, id string) []string {
	t.Helper()
	edges, err := g.Neighbors(id)
	require.NoError(t, err)
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("pump"))
	require.NoError(t, g.AddVertex("pump"))
	require.True(t, g.HasVertex("pump"))
	require.False(t, g.HasVertex("valve"))
	require.Equal(t, 1, g.VertexCount())
}

func TestGraph_VerticesSorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"run", "bank", "duct"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.Equal(t, []string{"bank", "duct", "run"}, g.Vertices())
}

func TestGraph_AddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	eid, err := g.AddEdge("bank", "run")
	require.NoError(t, err)
	require.Equal(t, "e1", eid)
	require.True(t, g.HasVertex("run"), "endpoints are created")
	require.True(t, g.HasEdge("bank", "run"))
	require.False(t, g.HasEdge("run", "bank"), "directed edges are one-way")

	_, err = g.AddEdge("bank", "run")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("bank", "bank")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "run")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_Undirected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	require.True(t, g.HasEdge("b", "a"))
	require.Equal(t, []string{"b"}, edgeTargets(t, g, "a"))

	edges, err := g.Neighbors("b")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, "a", edges[0].From, "mirrored edges keep their endpoints")
}

// TestGraph_NeighborsOrder: a member listed twice keeps both edges, and
// edges come back in insertion order past e9.
func TestGraph_NeighborsOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	want := make([]string, 0, 12)
	for i := range 11 {
		to := fmt.Sprintf("m%02d", 10-i)
		_, err := g.AddEdge("top", to)
		require.NoError(t, err)
		want = append(want, to)
	}
	_, err := g.AddEdge("top", "m10")
	require.NoError(t, err)
	want = append(want, "m10")

	require.Equal(t, want, edgeTargets(t, g, "top"))

	_, err = g.AddEdge("top", "top")
	require.NoError(t, err)
	require.True(t, g.HasEdge("top", "top"))

	_, err = g.Neighbors("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				if _, err := g.AddEdge(fmt.Sprintf("c%d", i), fmt.Sprintf("m%d", j)); err != nil {
					t.Error(err)
				}
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 400, g.EdgeCount())
	require.Equal(t, 58, g.VertexCount())
}

func ExampleGraph() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("bank", "run")
	_, _ = g.AddEdge("run", "duct")

	fmt.Println(g.Vertices())
	fmt.Println(g.HasEdge("bank", "run"), g.HasEdge("run", "bank"))
	// Output:
	// [bank duct run]
	// true false
}
