package algorithms

import "github.com/fadinuj/graphpipe/graph"

// MaxFlow computes the maximum flow from s to t via Edmonds-Karp: repeated
// BFS for a shortest augmenting path in the residual graph, augmenting by
// the path's bottleneck capacity, until no augmenting path remains (§4.2.3).
//
// An undirected edge {u, v, w} contributes capacity w in both directions;
// self-loops never participate in flow. Requires s != t and both in range.
func MaxFlow(g *graph.Graph, s, t int) (FlowOutcome, error) {
	n := g.N()
	if !g.InRange(s) || !g.InRange(t) {
		return FlowOutcome{}, ErrVertexOutOfRange
	}
	if s == t {
		return FlowOutcome{}, ErrSameSourceSink
	}

	// residual[u][v] = remaining capacity u->v; built from undirected
	// edges (both directions get w) and mutated in place during augmentation.
	residual := make([]map[int]int, n)
	for v := 0; v < n; v++ {
		residual[v] = make(map[int]int)
	}
	for u := 0; u < n; u++ {
		for _, inc := range g.Neighbors(u) {
			if inc.To == u {
				continue // self-loops excluded from flow
			}
			residual[u][inc.To] += inc.Weight
		}
	}

	total := 0
	for {
		path, bottleneck := bfsAugmentingPath(residual, s, t)
		if path == nil {
			break
		}
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] -= bottleneck
			if residual[u][v] == 0 {
				delete(residual[u], v)
			}
			residual[v][u] += bottleneck
		}
		total += bottleneck
	}

	return FlowOutcome{Value: total, Source: s, Sink: t}, nil
}

// MaxFlowDefault runs MaxFlow with s=0, t=n-1, requiring n >= 2.
func MaxFlowDefault(g *graph.Graph) (FlowOutcome, error) {
	if g.N() < 2 {
		return FlowOutcome{}, ErrTooFewVertices
	}
	return MaxFlow(g, 0, g.N()-1)
}

// bfsAugmentingPath finds a shortest (fewest-edges) s->t path with
// positive residual capacity, returning the path and its bottleneck, or
// (nil, 0) if t is unreachable.
func bfsAugmentingPath(residual []map[int]int, s, t int) ([]int, int) {
	n := len(residual)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, n)
	visited[s] = true
	queue := []int{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			break
		}
		for v, cap := range residual[u] {
			if !visited[v] && cap > 0 {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	if !visited[t] {
		return nil, 0
	}

	path := []int{t}
	for cur := t; cur != s; {
		p := parent[cur]
		path = append([]int{p}, path...)
		cur = p
	}

	bottleneck := int(^uint(0) >> 1) // max int
	for i := 0; i < len(path)-1; i++ {
		c := residual[path[i]][path[i+1]]
		if c < bottleneck {
			bottleneck = c
		}
	}
	return path, bottleneck
}
