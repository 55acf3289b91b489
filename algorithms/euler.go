package algorithms

import "github.com/fadinuj/graphpipe/graph"

// HasEulerCircuit reports whether g has a closed walk covering every edge
// exactly once: at least one edge exists, every vertex has even degree,
// and the subgraph induced by non-isolated vertices is connected.
func HasEulerCircuit(g *graph.Graph) bool {
	if g.EdgeCount() == 0 {
		return false
	}
	for v := 0; v < g.N(); v++ {
		if g.Degree(v)%2 != 0 {
			return false
		}
	}
	return g.Connected()
}

// FindEulerCircuit constructs an Eulerian circuit via Hierholzer's
// algorithm, using the same half-edge-with-twin-id representation the
// teacher library uses for its Christofides Eulerian step: each
// undirected edge is assigned a unique id, and a vertex's incidence list
// holds ids rather than raw neighbor vertices, so "has this edge been
// used" is an O(1) per-id lookup instead of a linear adjacency scan.
//
// Returns EulerOutcome{Exists: false} if no circuit exists; the caller is
// expected to have checked HasEulerCircuit first, but FindEulerCircuit
// re-derives existence itself so it is safe to call standalone.
func FindEulerCircuit(g *graph.Graph) EulerOutcome {
	if !HasEulerCircuit(g) {
		return EulerOutcome{Exists: false}
	}

	n := g.N()
	// Build the deduplicated edge view: incEdge[v] parallels g.Neighbors(v)
	// and holds the shared edge id for that incidence; a self-loop's two
	// incidences at the same vertex get the same id exactly once each.
	incEdge := make([][]int, n)
	nextID := 0
	pending := make(map[[2]int]int) // (min(u,v), max(u,v)) with one unmatched occurrence -> edge id, for distinct-vertex edges
	selfLoopSeen := make(map[int]bool)

	for v := 0; v < n; v++ {
		nbrs := g.Neighbors(v)
		incEdge[v] = make([]int, len(nbrs))
		for i, inc := range nbrs {
			if inc.To == v {
				// Self-loop: the two incidences recorded at v share one id.
				if !selfLoopSeen[v] {
					incEdge[v][i] = nextID
					selfLoopSeen[v] = true
					// reserve the id; the second incidence is assigned below
					// when we encounter it later in the same slice.
				} else {
					incEdge[v][i] = nextID
					nextID++
				}
				continue
			}
			if inc.To < v {
				// The matching incidence at inc.To has already assigned (or will assign) the id.
				key := [2]int{inc.To, v}
				if id, ok := pending[key]; ok {
					incEdge[v][i] = id
					delete(pending, key)
				} else {
					// Shouldn't happen for a well-formed undirected graph, but
					// guard defensively by minting a fresh id.
					incEdge[v][i] = nextID
					nextID++
				}
				continue
			}
			key := [2]int{v, inc.To}
			incEdge[v][i] = nextID
			pending[key] = nextID
			nextID++
		}
	}
	m := nextID

	used := make([]bool, m)
	cursor := make([]int, n) // per-vertex index into incEdge/Neighbors

	start := -1
	for v := 0; v < n; v++ {
		if g.Degree(v) > 0 {
			start = v
			break
		}
	}

	stack := []int{start}
	var path []int
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		nbrs := g.Neighbors(v)
		advanced := false
		for cursor[v] < len(nbrs) {
			eid := incEdge[v][cursor[v]]
			to := nbrs[cursor[v]].To
			cursor[v]++
			if used[eid] {
				continue
			}
			used[eid] = true
			stack = append(stack, to)
			advanced = true
			break
		}
		if !advanced {
			path = append(path, v)
			stack = stack[:len(stack)-1]
		}
	}

	// path was built by popping, so it is already the closed walk in
	// traversal order once reversed (Hierholzer's splice-free variant:
	// the stack-pop order of a single connected pass is the reverse tour).
	circuit := make([]int, len(path))
	for i, v := range path {
		circuit[len(path)-1-i] = v
	}

	return EulerOutcome{Exists: true, Circuit: circuit}
}
