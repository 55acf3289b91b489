package graph_test

import (
	"testing"

	"github.com/fadinuj/graphpipe/graph"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_RejectsNonPositiveSize(t *testing.T) {
	_, err := graph.NewGraph(0)
	require.ErrorIs(t, err, graph.ErrInvalidSize)
}

func TestAddEdge_BasicInsertion(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)

	status, err := g.AddEdge(0, 1, 5)
	require.NoError(t, err)
	require.Equal(t, graph.StatusOK, status)
	require.Equal(t, 5, g.Weight(0, 1))
	require.Equal(t, 5, g.Weight(1, 0))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, _ := graph.NewGraph(2)
	status, err := g.AddEdge(0, 2, 1)
	require.Error(t, err)
	require.Equal(t, graph.StatusOutOfRange, status)
}

func TestAddEdge_BadWeightRejected(t *testing.T) {
	g, _ := graph.NewGraph(2)
	status, err := g.AddEdge(0, 1, 0)
	require.ErrorIs(t, err, graph.ErrBadWeight)
	require.Equal(t, graph.StatusBadWeight, status)
}

func TestAddEdge_DuplicateRejected(t *testing.T) {
	g, _ := graph.NewGraph(2)
	_, err := g.AddEdge(0, 1, 2)
	require.NoError(t, err)

	status, err := g.AddEdge(0, 1, 5)
	require.ErrorIs(t, err, graph.ErrDuplicateEdge)
	require.Equal(t, graph.StatusDuplicate, status)
	// Graph is unchanged: original weight survives.
	require.Equal(t, 2, g.Weight(0, 1))
}

func TestAddEdge_DuplicateReverseOrderRejected(t *testing.T) {
	g, _ := graph.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 2)
	status, err := g.AddEdge(1, 0, 9)
	require.ErrorIs(t, err, graph.ErrDuplicateEdge)
	require.Equal(t, graph.StatusDuplicate, status)
}

func TestAddEdge_SelfLoopCountsTwiceInDegree(t *testing.T) {
	g, _ := graph.NewGraph(2)
	status, err := g.AddEdge(0, 0, 3)
	require.NoError(t, err)
	require.Equal(t, graph.StatusOK, status)
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 3, g.Weight(0, 0))
}

func TestAddEdge_SecondSelfLoopRejected(t *testing.T) {
	g, _ := graph.NewGraph(1)
	_, _ = g.AddEdge(0, 0, 1)
	status, err := g.AddEdge(0, 0, 1)
	require.ErrorIs(t, err, graph.ErrDuplicateEdge)
	require.Equal(t, graph.StatusDuplicate, status)
}

func TestWeight_AbsentReturnsZero(t *testing.T) {
	g, _ := graph.NewGraph(3)
	require.Equal(t, 0, g.Weight(0, 2))
}

func TestConnected_EmptyGraphVacuouslyConnected(t *testing.T) {
	g, _ := graph.NewGraph(4)
	require.True(t, g.Connected())
}

func TestConnected_IgnoresIsolatedVertices(t *testing.T) {
	g, _ := graph.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 1)
	// vertices 2 and 3 are isolated; connectivity should hold.
	require.True(t, g.Connected())
}

func TestConnected_DisconnectedComponentsDetected(t *testing.T) {
	g, _ := graph.NewGraph(4)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)
	require.False(t, g.Connected())
}

func TestClose_IdempotentOnNil(t *testing.T) {
	var g *graph.Graph
	require.NotPanics(t, func() { g.Close() })
}

func TestString_ShowsWeightsOnlyWhenNonUnit(t *testing.T) {
	g, _ := graph.NewGraph(2)
	_, _ = g.AddEdge(0, 1, 1)
	require.NotContains(t, g.String(), "(")

	g2, _ := graph.NewGraph(2)
	_, _ = g2.AddEdge(0, 1, 7)
	require.Contains(t, g2.String(), "(7)")
}

func TestDecode_SkipsDuplicatesAndReportsCount(t *testing.T) {
	g, skipped, err := graph.Decode(3, []graph.EdgeTriple{
		{U: 0, V: 1, W: 2},
		{U: 0, V: 1, W: 5},
		{U: 1, V: 2, W: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 1, skipped)
	require.Equal(t, 2, g.Weight(0, 1))
	require.Equal(t, 2, g.EdgeCount())
}

func TestDecode_OutOfRangeFails(t *testing.T) {
	_, _, err := graph.Decode(2, []graph.EdgeTriple{{U: 0, V: 5, W: 1}})
	require.Error(t, err)
}
