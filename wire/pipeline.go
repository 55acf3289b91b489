package wire

import (
	"fmt"
	"io"

	"github.com/fadinuj/graphpipe/graph"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PipelineRequest is the decoded form of §6's pipeline wire request: a
// fixed 3-integer header followed by an edge payload.
type PipelineRequest struct {
	Seed      int32              `validate:"-"`
	MaxWeight int32              `validate:"-"`
	Vertices  int32              `validate:"gt=0,lte=50"`
	Edges     []graph.EdgeTriple `validate:"-"`
}

// ReadPipelineRequest decodes one pipeline request from r: the 3-integer
// header [seed, max_weight, vertices], then a 4-byte edge count, then
// that many (u, v, w) int32 triples. The edge-count prefix resolves §9's
// open question about framing the edge payload explicitly rather than
// relying on a single fragile recv.
func ReadPipelineRequest(r io.Reader) (*PipelineRequest, error) {
	seed, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	maxWeight, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	vertices, err := readInt32(r)
	if err != nil {
		return nil, err
	}

	req := &PipelineRequest{Seed: seed, MaxWeight: maxWeight, Vertices: vertices}
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("wire: invalid pipeline request: %w", err)
	}

	edgeCount, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	if edgeCount < 0 || edgeCount > int32(vertices)*int32(vertices) {
		return nil, fmt.Errorf("wire: invalid edge count %d", edgeCount)
	}

	edges := make([]graph.EdgeTriple, 0, edgeCount)
	for i := int32(0); i < edgeCount; i++ {
		u, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		v, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		w, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if u < 0 || u >= vertices || v < 0 || v >= vertices || w <= 0 {
			return nil, fmt.Errorf("wire: invalid edge triple (%d,%d,%d)", u, v, w)
		}
		edges = append(edges, graph.EdgeTriple{U: int(u), V: int(v), W: int(w)})
	}
	req.Edges = edges

	return req, nil
}

// WritePipelineResponse writes the fixed-layout pipeline report of §6 to w.
func WritePipelineResponse(w io.Writer, jobID uint64, vertices int, elapsedSeconds float64, mst, maxFlow, maxClique, cliqueCount string) error {
	_, err := fmt.Fprintf(w,
		"=== PIPELINE PROCESSING RESULTS ===\n"+
			"Job ID: %d\n"+
			"Graph: %d vertices\n"+
			"Processing Time: %.2f seconds\n\n"+
			"=== ALGORITHM RESULTS ===\n"+
			"MST: %s\n"+
			"MaxFlow: %s\n"+
			"MaxClique: %s\n"+
			"CliqueCount: %s\n"+
			"=====================================\n",
		jobID, vertices, elapsedSeconds, mst, maxFlow, maxClique, cliqueCount)
	return err
}
