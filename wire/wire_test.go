package wire_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/fadinuj/graphpipe/wire"
	"github.com/stretchr/testify/require"
)

func putInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func TestReadPipelineRequest_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	putInt32(&buf, 42)  // seed
	putInt32(&buf, 10)  // max_weight
	putInt32(&buf, 3)   // vertices
	putInt32(&buf, 3)   // edge count
	putInt32(&buf, 0)
	putInt32(&buf, 1)
	putInt32(&buf, 1)
	putInt32(&buf, 1)
	putInt32(&buf, 2)
	putInt32(&buf, 1)
	putInt32(&buf, 2)
	putInt32(&buf, 0)
	putInt32(&buf, 1)

	req, err := wire.ReadPipelineRequest(&buf)
	require.NoError(t, err)
	require.EqualValues(t, 3, req.Vertices)
	require.Len(t, req.Edges, 3)
}

func TestReadPipelineRequest_RejectsOutOfRangeVertices(t *testing.T) {
	var buf bytes.Buffer
	putInt32(&buf, 0)
	putInt32(&buf, 0)
	putInt32(&buf, 0) // vertices=0 violates gt=0
	_, err := wire.ReadPipelineRequest(&buf)
	require.Error(t, err)
}

func TestWritePipelineResponse_ContainsFixedBanner(t *testing.T) {
	var buf bytes.Buffer
	err := wire.WritePipelineResponse(&buf, 7, 3, 1.23, "mst", "flow", "clique", "count")
	require.NoError(t, err)
	out := buf.String()
	require.Contains(t, out, "=== PIPELINE PROCESSING RESULTS ===")
	require.Contains(t, out, "Job ID: 7")
	require.Contains(t, out, "MST: mst")
	require.Contains(t, out, "=====================================")
}

func TestDispatchRequest_UnweightedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	putInt32(&buf, 1) // algorithm id: euler
	putInt32(&buf, 2) // n=2
	// adjacency matrix row-major: fully connected
	putInt32(&buf, 0)
	putInt32(&buf, 1)
	putInt32(&buf, 1)
	putInt32(&buf, 0)

	req, err := wire.ReadDispatchRequest(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, req.AlgorithmID)
	require.Equal(t, 2, req.N)
	require.Len(t, req.Edges, 1)
}

func TestDispatchRequest_WeightedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	putInt32(&buf, 3) // algorithm id: mst
	putInt32(&buf, 2) // n=2
	putInt32(&buf, 1) // num_edges
	putInt32(&buf, 0)
	putInt32(&buf, 1)
	putInt32(&buf, 5)

	req, err := wire.ReadDispatchRequest(&buf)
	require.NoError(t, err)
	require.Len(t, req.Edges, 1)
	require.Equal(t, 5, req.Edges[0].W)
}

func TestDispatchResponse_SuccessRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	err := wire.WriteDispatchResponse(&buf, 1, "hello")
	require.NoError(t, err)

	status, body, err := wire.ReadDispatchResponse(&buf)
	require.NoError(t, err)
	require.Equal(t, 1, status)
	require.Equal(t, "hello", body)
}

func TestDispatchResponse_FailureHasNoBody(t *testing.T) {
	var buf bytes.Buffer
	err := wire.WriteDispatchResponse(&buf, 0, "ignored")
	require.NoError(t, err)

	status, body, err := wire.ReadDispatchResponse(&buf)
	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Empty(t, body)
}
