package graph

import "fmt"

// EdgeTriple is one (u, v, w) edge as decoded from a wire payload, before
// it is inserted into a Graph. It is the seam between package wire's
// framing and this package's construction rules.
type EdgeTriple struct {
	U, V, W int
}

// Decode builds a Graph over n vertices from a sequence of edge triples,
// skipping (and reporting) duplicates rather than failing the whole
// request, matching §7's "duplicate edges silently skipped with a log
// line" policy. The caller (a front-end or the pipeline acceptor) is
// responsible for logging the returned skip count.
func Decode(n int, triples []EdgeTriple) (g *Graph, skipped int, err error) {
	g, err = NewGraph(n)
	if err != nil {
		return nil, 0, err
	}
	for _, t := range triples {
		status, addErr := g.AddEdge(t.U, t.V, t.W)
		switch status {
		case StatusOK:
			// inserted
		case StatusDuplicate:
			skipped++
		case StatusOutOfRange, StatusBadWeight:
			g.Close()
			return nil, 0, fmt.Errorf("graph: decode: edge (%d,%d): %w", t.U, t.V, addErr)
		case StatusOOM:
			g.Close()
			return nil, 0, fmt.Errorf("graph: decode: edge (%d,%d): %w", t.U, t.V, addErr)
		}
	}
	return g, skipped, nil
}
