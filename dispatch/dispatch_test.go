package dispatch_test

import (
	"testing"

	"github.com/fadinuj/graphpipe/dispatch"
	"github.com/fadinuj/graphpipe/graph"
	"github.com/stretchr/testify/require"
)

func TestTypeOf_AllFiveRegistered(t *testing.T) {
	for id := 1; id <= 5; id++ {
		tag, ok := dispatch.TypeOf(id)
		require.True(t, ok, "id %d should be registered", id)
		strategy, ok := dispatch.StrategyFor(tag)
		require.True(t, ok)
		require.Equal(t, id, strategy.ID)
	}
}

func TestTypeOf_UnknownID(t *testing.T) {
	_, ok := dispatch.TypeOf(0)
	require.False(t, ok)
	_, ok = dispatch.TypeOf(6)
	require.False(t, ok)
}

func TestRun_UnknownIDProducesFactoryError(t *testing.T) {
	g, _ := graph.NewGraph(2)
	out, err := dispatch.Run(g, 99)
	require.ErrorIs(t, err, dispatch.ErrUnknownID)
	require.Contains(t, out, "Factory Error:")
}

func TestRun_EachAlgorithmProducesAResult(t *testing.T) {
	g, _ := graph.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 1)
	_, _ = g.AddEdge(2, 0, 1)

	for id := 1; id <= 5; id++ {
		out, err := dispatch.Run(g, id)
		require.NoError(t, err)
		require.NotEmpty(t, out)
	}
}
