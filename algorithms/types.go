// Package algorithms implements the fixed battery of graph algorithms run
// by the dispatch layer and the pipeline: Eulerian circuit (Hierholzer),
// minimum spanning tree (Prim), maximum flow (Edmonds-Karp), maximum
// clique (backtracking), and clique counting (enumerative).
//
// Every function is pure over a *graph.Graph: it reads the graph and
// returns a result struct (and, for algorithms with real preconditions,
// an error), never mutating its input.
package algorithms

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors surfaced by algorithms with real preconditions.
var (
	// ErrNotConnected indicates MST was requested on a graph in which some
	// vertex (isolated vertices included) is not reachable from vertex 0.
	ErrNotConnected = errors.New("algorithms: graph is not connected")

	// ErrSameSourceSink indicates max-flow was asked to route from a
	// vertex to itself.
	ErrSameSourceSink = errors.New("algorithms: source and sink must differ")

	// ErrTooFewVertices indicates max-flow's default source/sink
	// convenience (0, n-1) was used on a graph with fewer than 2 vertices.
	ErrTooFewVertices = errors.New("algorithms: graph needs at least 2 vertices")

	// ErrVertexOutOfRange indicates a supplied vertex id was outside [0, n).
	ErrVertexOutOfRange = errors.New("algorithms: vertex out of range")
)

// EulerOutcome is the result of Euler circuit detection/construction.
type EulerOutcome struct {
	Exists  bool
	Circuit []int // length m+1 when Exists
}

// String renders a one-line summary for dispatch and pipeline reports.
func (o EulerOutcome) String() string {
	if !o.Exists {
		return "No Eulerian circuit exists"
	}
	parts := make([]string, len(o.Circuit))
	for i, v := range o.Circuit {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("Eulerian circuit (length=%d): %s", len(o.Circuit), strings.Join(parts, "->"))
}

// MSTEdge is one emitted minimum-spanning-tree edge.
type MSTEdge struct {
	U, V, W int
}

// MSTOutcome is the result of Prim's algorithm.
type MSTOutcome struct {
	Connected   bool
	Edges       []MSTEdge
	TotalWeight int
}

// mstSummaryCap bounds the rendered MST summary at ~1000 characters per
// §4.3, appending an explicit truncation marker when exceeded.
const mstSummaryCap = 1000

// String renders the MST result, truncating long edge lists per §4.3.
func (o MSTOutcome) String() string {
	if !o.Connected {
		return "MST: graph is not connected"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Weight=%d, Edges=%d:", o.TotalWeight, len(o.Edges))
	for _, e := range o.Edges {
		fmt.Fprintf(&b, " (%d,%d,w=%d)", e.U, e.V, e.W)
		if b.Len() > mstSummaryCap {
			b.WriteString("...(truncated)")
			return b.String()
		}
	}
	return b.String()
}

// FlowOutcome is the result of Edmonds-Karp maximum flow.
type FlowOutcome struct {
	Value        int
	Source, Sink int
}

// String renders a one-line summary.
func (o FlowOutcome) String() string {
	return fmt.Sprintf("Value=%d (source=%d, sink=%d)", o.Value, o.Source, o.Sink)
}

// CliqueOutcome is the result of maximum-clique search.
type CliqueOutcome struct {
	Size     int
	Vertices []int // sorted ascending
}

// String renders a one-line summary.
func (o CliqueOutcome) String() string {
	parts := make([]string, len(o.Vertices))
	for i, v := range o.Vertices {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("Size=%d {%s}", o.Size, strings.Join(parts, ","))
}

// CountOutcome is the result of clique counting.
type CountOutcome struct {
	Total   int
	BySize  map[int]int // k (>=1) -> count of k-cliques
	MaxSize int
}

// String renders a one-line summary with sizes in ascending order.
func (o CountOutcome) String() string {
	sizes := make([]int, 0, len(o.BySize))
	for k := range o.BySize {
		sizes = append(sizes, k)
	}
	sort.Ints(sizes)
	parts := make([]string, 0, len(sizes))
	for _, k := range sizes {
		parts = append(parts, fmt.Sprintf("%d:%d", k, o.BySize[k]))
	}
	return fmt.Sprintf("Total=%d, MaxSize=%d, BySize={%s}", o.Total, o.MaxSize, strings.Join(parts, ","))
}
