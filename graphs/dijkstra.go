package graphs

import (
	"container/heap"
	"fmt"
	"math"
)

// Unreachable is the ShortestPaths distance of a node with no path from
// the source (or one longer than PathOptions.MaxDistance).
const Unreachable = math.MaxInt

// PathOptions configures ShortestPaths.
type PathOptions struct {
	// ReturnPath fills the predecessor slice.
	ReturnPath bool
	// MaxDistance stops the search once the closest unsettled node is
	// farther than this; such nodes are reported as Unreachable.
	MaxDistance int
}

// DefaultPathOptions returns no predecessors and an unbounded search.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
	}
}

// ShortestPaths runs Dijkstra's algorithm from src over directed edges
// {from, to, weight} on nodes 0..n-1.
//
// dist[v] is the minimum total weight from src to v, or Unreachable. With
// opts.ReturnPath, prev[v] is the node before v on a shortest path, and -1
// for src and unreachable nodes; otherwise prev is nil.
//
// All weights are checked up front; a negative one fails with
// ErrNegativeWeight. Stale heap entries are skipped instead of decreasing
// keys in place.
//
// Time: O((V + E) log V). Memory: O(V + E).
func ShortestPaths(n int, edges [][3]int, src int, opts PathOptions) (dist, prev []int, err error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("%w: n=%d", ErrInvalidNodeCount, n)
	}
	if src < 0 || src >= n {
		return nil, nil, fmt.Errorf("%w: source %d with n=%d", ErrEdgeOutOfRange, src, n)
	}
	adj := make([][]weightedArc, n)
	for i, e := range edges {
		from, to, w := e[0], e[1], e[2]
		if from < 0 || from >= n || to < 0 || to >= n {
			return nil, nil, fmt.Errorf("%w: edge %d = %v with n=%d", ErrEdgeOutOfRange, i, e, n)
		}
		if w < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
		}
		adj[from] = append(adj[from], weightedArc{to: to, w: w})
	}

	dist = make([]int, n)
	for v := range dist {
		dist[v] = Unreachable
	}
	if opts.ReturnPath {
		prev = make([]int, n)
		for v := range prev {
			prev[v] = -1
		}
	}
	settled := make([]bool, n)

	dist[src] = 0
	pq := &distHeap{{node: src}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distItem)
		if settled[cur.node] {
			continue
		}
		if cur.dist > opts.MaxDistance {
			break
		}
		settled[cur.node] = true
		for _, a := range adj[cur.node] {
			if settled[a.to] || a.w > Unreachable-cur.dist {
				continue // saturates: the sum would overflow
			}
			nd := cur.dist + a.w
			if nd >= dist[a.to] {
				continue
			}
			dist[a.to] = nd
			if prev != nil {
				prev[a.to] = cur.node
			}
			heap.Push(pq, distItem{node: a.to, dist: nd})
		}
	}

	// tentative distances beyond the cut-off were never settled
	for v := range dist {
		if !settled[v] && dist[v] != Unreachable {
			dist[v] = Unreachable
			if prev != nil {
				prev[v] = -1
			}
		}
	}

	return dist, prev, nil
}

// NetworkDelayTime returns how long a signal sent from node k takes to reach
// all n nodes labelled 1..n, given directed travel times {u, v, w}, or -1
// when some node never receives it.
func NetworkDelayTime(times [][3]int, n, k int) (int, error) {
	edges := make([][3]int, len(times))
	for i, t := range times {
		edges[i] = [3]int{t[0] - 1, t[1] - 1, t[2]}
	}
	dist, _, err := ShortestPaths(n, edges, k-1, DefaultPathOptions())
	if err != nil {
		return 0, err
	}
	worst := 0
	for _, d := range dist {
		if d == Unreachable {
			return -1, nil
		}
		worst = max(worst, d)
	}

	return worst, nil
}

type weightedArc struct {
	to, w int
}

// distItem is a heap entry; entries for already settled nodes are stale.
type distItem struct {
	node, dist int
}

// distHeap is a min-heap of distItem ordered by dist.
type distHeap []distItem

func (h distHeap) Len() int           { return len(h) }
func (h distHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x any)        { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
