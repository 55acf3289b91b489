package algorithms

import "github.com/fadinuj/graphpipe/graph"

// adjMatrix builds an n x n boolean adjacency matrix from g, ignoring
// self-loops, for the O(1) pairwise-adjacency checks the clique
// algorithms need (§4.2.4).
func adjMatrix(g *graph.Graph) [][]bool {
	n := g.N()
	adj := make([][]bool, n)
	for v := range adj {
		adj[v] = make([]bool, n)
	}
	for u := 0; u < n; u++ {
		for _, inc := range g.Neighbors(u) {
			if inc.To != u {
				adj[u][inc.To] = true
			}
		}
	}
	return adj
}

// MaxClique finds a maximum clique via depth-first extension: starting
// from each vertex `start`, the current clique is extended with any
// vertex v > last adjacent to every member already chosen (§4.2.4).
//
// The empty graph yields an empty clique; a single-vertex graph yields
// the trivial clique {0} of size 1.
func MaxClique(g *graph.Graph) CliqueOutcome {
	n := g.N()
	if n == 0 {
		return CliqueOutcome{}
	}
	adj := adjMatrix(g)

	best := []int{0}
	current := make([]int, 0, n)

	var extend func(last int)
	extend = func(last int) {
		if len(current) > len(best) {
			best = append(best[:0:0], current...)
		}
		for v := last + 1; v < n; v++ {
			ok := true
			for _, m := range current {
				if !adj[m][v] {
					ok = false
					break
				}
			}
			if ok {
				current = append(current, v)
				extend(v)
				current = current[:len(current)-1]
			}
		}
	}

	for start := 0; start < n; start++ {
		current = append(current[:0], start)
		extend(start)
	}

	return CliqueOutcome{Size: len(best), Vertices: best}
}

// IsClique reports whether every pair of distinct vertices in vertices is
// adjacent in g (§4.2.4's secondary validation routine). A set of size
// 0 or 1 is trivially a clique.
func IsClique(g *graph.Graph, vertices []int) bool {
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if g.Weight(vertices[i], vertices[j]) == 0 {
				return false
			}
		}
	}
	return true
}

// AllMaximalCliques enumerates every maximal clique via the basic
// Bron-Kerbosch algorithm (R, P, X sets; recurse on each v in P; report
// when P and X are both empty) per §4.2.4's third routine.
func AllMaximalCliques(g *graph.Graph) [][]int {
	n := g.N()
	adj := adjMatrix(g)

	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	var results [][]int
	var bronKerbosch func(r, p, x []int)
	bronKerbosch = func(r, p, x []int) {
		if len(p) == 0 && len(x) == 0 {
			if len(r) > 0 {
				clique := append([]int(nil), r...)
				results = append(results, clique)
			}
			return
		}
		// Iterate over a copy of p since it is mutated during recursion.
		candidates := append([]int(nil), p...)
		for _, v := range candidates {
			newR := append(append([]int(nil), r...), v)
			newP := intersectAdj(p, adj[v])
			newX := intersectAdj(x, adj[v])
			bronKerbosch(newR, newP, newX)

			p = removeVertex(p, v)
			x = append(x, v)
		}
	}
	bronKerbosch(nil, all, nil)

	return results
}

// intersectAdj returns the subset of set adjacent to v per adjRow.
func intersectAdj(set []int, adjRow []bool) []int {
	out := make([]int, 0, len(set))
	for _, v := range set {
		if adjRow[v] {
			out = append(out, v)
		}
	}
	return out
}

// removeVertex returns set with v removed (first occurrence).
func removeVertex(set []int, v int) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if u != v {
			out = append(out, u)
		}
	}
	return out
}
