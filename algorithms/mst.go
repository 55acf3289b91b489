package algorithms

import (
	"container/heap"

	"github.com/fadinuj/graphpipe/graph"
)

// FindMST builds a minimum spanning tree via Prim's algorithm starting at
// vertex 0, using a binary min-heap keyed by edge weight (§4.2.2). Ties
// break by first-encountered (lower heap insertion order), which the
// insertion-order field below gives for free since Go's container/heap
// does not otherwise guarantee FIFO among equal keys.
//
// If the graph is connected, returns MSTOutcome{Connected: true, ...}
// with exactly n-1 edges. Otherwise returns MSTOutcome{Connected: false}
// and ErrNotConnected. A single-vertex graph is trivially connected with
// zero edges.
func FindMST(g *graph.Graph) (MSTOutcome, error) {
	n := g.N()
	if n == 1 {
		return MSTOutcome{Connected: true}, nil
	}

	const inf = int(1) << 62
	key := make([]int, n)
	parent := make([]int, n)
	inTree := make([]bool, n)
	for v := range key {
		key[v] = inf
		parent[v] = -1
	}
	key[0] = 0

	pq := &primHeap{}
	heap.Init(pq)
	heap.Push(pq, primItem{vertex: 0, key: 0})
	seq := 1

	for pq.Len() > 0 {
		item := heap.Pop(pq).(primItem)
		v := item.vertex
		if inTree[v] {
			continue
		}
		// Stale entry: a cheaper key for v was pushed after this one.
		if item.key != key[v] {
			continue
		}
		inTree[v] = true

		for _, inc := range g.Neighbors(v) {
			if inc.To == v {
				continue // self-loops never participate in MST
			}
			if !inTree[inc.To] && inc.Weight < key[inc.To] {
				key[inc.To] = inc.Weight
				parent[inc.To] = v
				heap.Push(pq, primItem{vertex: inc.To, key: inc.Weight, order: seq})
				seq++
			}
		}
	}

	for v := 0; v < n; v++ {
		if !inTree[v] {
			return MSTOutcome{Connected: false}, ErrNotConnected
		}
	}

	edges := make([]MSTEdge, 0, n-1)
	total := 0
	for v := 1; v < n; v++ {
		edges = append(edges, MSTEdge{U: parent[v], V: v, W: key[v]})
		total += key[v]
	}

	return MSTOutcome{Connected: true, Edges: edges, TotalWeight: total}, nil
}

// primItem is one candidate (vertex, key) pair in the Prim frontier heap.
// order records insertion sequence so Less can break weight ties by
// first-encountered, per §4.2.2.
type primItem struct {
	vertex int
	key    int
	order  int
}

// primHeap implements container/heap.Interface over primItem.
type primHeap []primItem

func (h primHeap) Len() int { return len(h) }
func (h primHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].order < h[j].order
}
func (h primHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *primHeap) Push(x interface{}) {
	*h = append(*h, x.(primItem))
}
func (h *primHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
