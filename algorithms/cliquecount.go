package algorithms

import "github.com/fadinuj/graphpipe/graph"

// CountCliques enumerates every clique (not only maximal ones) with the
// same depth-first extension used by MaxClique, bucketing counts by
// size (§4.2.5). The empty graph yields Total=0; every edge contributes
// one 2-clique; every triangle contributes one 3-clique, in addition to
// the 1-cliques each of its vertices also forms.
func CountCliques(g *graph.Graph) CountOutcome {
	n := g.N()
	bySize := make(map[int]int)
	if n == 0 {
		return CountOutcome{BySize: bySize}
	}
	adj := adjMatrix(g)

	maxSize := 0
	total := 0
	current := make([]int, 0, n)

	var extend func(last int)
	extend = func(last int) {
		if len(current) > 0 {
			size := len(current)
			bySize[size]++
			total++
			if size > maxSize {
				maxSize = size
			}
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

	return CountOutcome{Total: total, BySize: bySize, MaxSize: maxSize}
}

// CountTriangles enumerates ordered triples i<j<k with all three pairs
// adjacent, the fast path named by §4.2.5 for 3-clique counting without
// the full enumerative sweep.
func CountTriangles(g *graph.Graph) int {
	n := g.N()
	adj := adjMatrix(g)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adj[i][j] {
				continue
			}
			for k := j + 1; k < n; k++ {
				if adj[i][k] && adj[j][k] {
					count++
				}
			}
		}
	}
	return count
}
