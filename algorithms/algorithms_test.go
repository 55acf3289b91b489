package algorithms_test

import (
	"testing"

	"github.com/fadinuj/graphpipe/algorithms"
	"github.com/fadinuj/graphpipe/graph"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(3)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 0, 1)
	require.NoError(t, err)
	return g
}

func TestEuler_TriangleHasCircuit(t *testing.T) {
	g := triangle(t)
	require.True(t, algorithms.HasEulerCircuit(g))

	out := algorithms.FindEulerCircuit(g)
	require.True(t, out.Exists)
	require.Len(t, out.Circuit, g.EdgeCount()+1)
	require.Equal(t, out.Circuit[0], out.Circuit[len(out.Circuit)-1])

	// Every consecutive pair is adjacent.
	for i := 0; i < len(out.Circuit)-1; i++ {
		require.NotZero(t, g.Weight(out.Circuit[i], out.Circuit[i+1]))
	}
}

func TestEuler_OddDegreeHasNoCircuit(t *testing.T) {
	g, _ := graph.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	require.False(t, algorithms.HasEulerCircuit(g))
	out := algorithms.FindEulerCircuit(g)
	require.False(t, out.Exists)
}

func TestMST_TriangleWeight(t *testing.T) {
	g := triangle(t)
	out, err := algorithms.FindMST(g)
	require.NoError(t, err)
	require.True(t, out.Connected)
	require.Len(t, out.Edges, 2)
	require.Equal(t, 2, out.TotalWeight)
}

func TestMST_Disconnected(t *testing.T) {
	g, _ := graph.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 5)
	out, err := algorithms.FindMST(g)
	require.ErrorIs(t, err, algorithms.ErrNotConnected)
	require.False(t, out.Connected)
}

func TestMST_SingleVertexTrivial(t *testing.T) {
	g, _ := graph.NewGraph(1)
	out, err := algorithms.FindMST(g)
	require.NoError(t, err)
	require.True(t, out.Connected)
	require.Empty(t, out.Edges)
}

func TestMaxFlow_TriangleUnitWeights(t *testing.T) {
	g := triangle(t)
	out, err := algorithms.MaxFlowDefault(g)
	require.NoError(t, err)
	// Two edge-disjoint unit-capacity s-t paths: 0->2 direct, and 0->1->2.
	require.Equal(t, 2, out.Value)
	require.Equal(t, 0, out.Source)
	require.Equal(t, 2, out.Sink)
}

func TestMaxFlow_RequiresDistinctSourceSink(t *testing.T) {
	g := triangle(t)
	_, err := algorithms.MaxFlow(g, 1, 1)
	require.ErrorIs(t, err, algorithms.ErrSameSourceSink)
}

func TestMaxFlow_TooFewVertices(t *testing.T) {
	g, _ := graph.NewGraph(1)
	_, err := algorithms.MaxFlowDefault(g)
	require.ErrorIs(t, err, algorithms.ErrTooFewVertices)
}

func TestMaxFlow_Disconnected(t *testing.T) {
	g, _ := graph.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 5)
	out, err := algorithms.MaxFlowDefault(g)
	require.NoError(t, err)
	require.Equal(t, 0, out.Value)
}

func TestMaxClique_Triangle(t *testing.T) {
	g := triangle(t)
	out := algorithms.MaxClique(g)
	require.Equal(t, 3, out.Size)
	require.True(t, algorithms.IsClique(g, out.Vertices))
}

func TestMaxClique_SingleVertex(t *testing.T) {
	g, _ := graph.NewGraph(1)
	out := algorithms.MaxClique(g)
	require.Equal(t, 1, out.Size)
	require.Equal(t, []int{0}, out.Vertices)
}

func TestMaxClique_Disconnected(t *testing.T) {
	g, _ := graph.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 5)
	out := algorithms.MaxClique(g)
	require.Equal(t, 2, out.Size)
}

func TestCountCliques_TriangleTotalsSevenPerScenario1(t *testing.T) {
	g := triangle(t)
	out := algorithms.CountCliques(g)
	require.Equal(t, 3, out.BySize[1])
	require.Equal(t, 3, out.BySize[2])
	require.Equal(t, 1, out.BySize[3])
	require.Equal(t, 7, out.Total)
	require.Equal(t, 3, out.MaxSize)
}

func TestCountCliques_BySize1EqualsN(t *testing.T) {
	g, _ := graph.NewGraph(5)
	out := algorithms.CountCliques(g)
	require.Equal(t, 5, out.BySize[1])
	require.Equal(t, 5, out.Total)
}

func TestCountCliques_BySize2EqualsEdgeCount(t *testing.T) {
	g, _ := graph.NewGraph(5)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	out := algorithms.CountCliques(g)
	require.Equal(t, g.EdgeCount(), out.BySize[2])
}

func TestCountCliques_EmptyGraph(t *testing.T) {
	g, _ := graph.NewGraph(1)
	_ = g // n=0 is not constructible (NewGraph requires n>=1); simulate via Close.
	g.Close()
	out := algorithms.CountCliques(g)
	require.Equal(t, 0, out.Total)
}

func TestCountTriangles_MatchesBySize3(t *testing.T) {
	g := triangle(t)
	require.Equal(t, 1, algorithms.CountTriangles(g))
}

func TestAllMaximalCliques_TriangleYieldsOneCliqueOfThree(t *testing.T) {
	g := triangle(t)
	cliques := algorithms.AllMaximalCliques(g)
	require.Len(t, cliques, 1)
	require.Len(t, cliques[0], 3)
}

func TestIsClique_NonAdjacentPairFails(t *testing.T) {
	g, _ := graph.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	require.False(t, algorithms.IsClique(g, []int{0, 1, 2}))
}
