package wire

import (
	"fmt"
	"io"

	"github.com/fadinuj/graphpipe/graph"
)

// DispatchRequest is the decoded form of §6's single-shot dispatch
// request: an algorithm id plus either an unweighted adjacency matrix
// (ids 1, 4, 5) or a weighted edge list (ids 2, 3).
type DispatchRequest struct {
	AlgorithmID int
	N           int
	Edges       []graph.EdgeTriple
}

// unweightedIDs and weightedIDs partition the five algorithm ids by which
// wire form their request uses (§6).
var unweightedIDs = map[int]bool{1: true, 4: true, 5: true}
var weightedIDs = map[int]bool{2: true, 3: true}

// ReadDispatchRequest decodes one single-shot request from r.
func ReadDispatchRequest(r io.Reader) (*DispatchRequest, error) {
	id, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	algorithmID := int(id)
	if algorithmID < 1 || algorithmID > 5 {
		return nil, fmt.Errorf("wire: invalid algorithm id %d", algorithmID)
	}

	n32, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	n := int(n32)
	if n <= 0 || n > maxVertices {
		return nil, fmt.Errorf("wire: invalid vertex count %d", n)
	}

	req := &DispatchRequest{AlgorithmID: algorithmID, N: n}

	switch {
	case unweightedIDs[algorithmID]:
		edges, err := readAdjacencyMatrix(r, n)
		if err != nil {
			return nil, err
		}
		req.Edges = edges
	case weightedIDs[algorithmID]:
		edges, err := readWeightedEdgeList(r, n)
		if err != nil {
			return nil, err
		}
		req.Edges = edges
	}

	return req, nil
}

// readAdjacencyMatrix reads an n*n row-major matrix of 1/0 entries and
// converts its upper triangle, diagonal included, to undirected edge
// triples of weight 1: a nonzero diagonal entry becomes a self-loop, and
// the lower triangle is read but ignored.
func readAdjacencyMatrix(r io.Reader, n int) ([]graph.EdgeTriple, error) {
	matrix := make([][]int32, n)
	for i := 0; i < n; i++ {
		matrix[i] = make([]int32, n)
		for j := 0; j < n; j++ {
			v, err := readInt32(r)
			if err != nil {
				return nil, err
			}
			matrix[i][j] = v
		}
	}

	var edges []graph.EdgeTriple
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if matrix[i][j] == 0 {
				continue
			}
			edges = append(edges, graph.EdgeTriple{U: i, V: j, W: 1})
		}
	}
	return edges, nil
}

// readWeightedEdgeList reads [num_edges, edge_triples(3*num_edges)].
func readWeightedEdgeList(r io.Reader, n int) ([]graph.EdgeTriple, error) {
	numEdges32, err := readInt32(r)
	if err != nil {
		return nil, err
	}
	numEdges := int(numEdges32)
	if numEdges < 0 || numEdges > n*n {
		return nil, fmt.Errorf("wire: invalid edge count %d", numEdges)
	}

	edges := make([]graph.EdgeTriple, 0, numEdges)
	for i := 0; i < numEdges; i++ {
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
		if int(u) < 0 || int(u) >= n || int(v) < 0 || int(v) >= n || w <= 0 {
			return nil, fmt.Errorf("wire: invalid edge triple (%d,%d,%d)", u, v, w)
		}
		edges = append(edges, graph.EdgeTriple{U: int(u), V: int(v), W: int(w)})
	}
	return edges, nil
}

// WriteDispatchResponse writes the [status, length] header followed by a
// NUL-terminated body, per §6. status must be 0 (failure) or 1 (success);
// on failure, body is ignored and length is written as 0.
func WriteDispatchResponse(w io.Writer, status int, body string) error {
	if status == 0 {
		if err := writeInt32(w, 0); err != nil {
			return err
		}
		return writeInt32(w, 0)
	}
	if err := writeInt32(w, 1); err != nil {
		return err
	}
	if err := writeInt32(w, int32(len(body))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, body); err != nil {
		return err
	}
	_, err := w.Write([]byte{0})
	return err
}

// ReadDispatchResponse decodes a response written by WriteDispatchResponse,
// for use by test clients.
func ReadDispatchResponse(r io.Reader) (status int, body string, err error) {
	s, err := readInt32(r)
	if err != nil {
		return 0, "", err
	}
	length, err := readInt32(r)
	if err != nil {
		return 0, "", err
	}
	if s == 0 {
		return int(s), "", nil
	}
	buf := make([]byte, length+1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, "", err
	}
	return int(s), string(buf[:length]), nil
}
