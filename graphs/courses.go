package graphs

import "container/heap"

// Vertex states for the three-colour DFS.
const (
	white = iota // not visited yet
	gray         // on the current DFS path
	black        // fully explored
)

// FindOrder returns an order in which all numCourses courses can be taken,
// where prereq [a, b] means b must be taken before a. Among the available
// courses the smallest index is always taken first, so the order is the
// lexicographically smallest valid one. Returns nil when the prerequisites
// contain a cycle.
//
// Kahn's algorithm with a min-heap. Time: O((V + E) log V). Memory: O(V + E).
func FindOrder(numCourses int, prereqs [][2]int) ([]int, error) {
	edges := make([][2]int, len(prereqs))
	for i, p := range prereqs {
		edges[i] = [2]int{p[1], p[0]} // b → a
	}
	if err := checkEdges(numCourses, edges); err != nil {
		return nil, err
	}

	adj := adjacency(numCourses, edges, true)
	indeg := make([]int, numCourses)
	for _, e := range edges {
		indeg[e[1]]++
	}
	ready := &intHeap{}
	for v := 0; v < numCourses; v++ {
		if indeg[v] == 0 {
			heap.Push(ready, v)
		}
	}

	order := make([]int, 0, numCourses)
	for ready.Len() > 0 {
		u := heap.Pop(ready).(int)
		order = append(order, u)
		for _, v := range adj[u] {
			indeg[v]--
			if indeg[v] == 0 {
				heap.Push(ready, v)
			}
		}
	}
	if len(order) < numCourses {
		return nil, nil
	}

	return order, nil
}

// CanFinish reports whether every course can be completed.
func CanFinish(numCourses int, prereqs [][2]int) (bool, error) {
	order, err := FindOrder(numCourses, prereqs)
	if err != nil {
		return false, err
	}

	return order != nil, nil
}

// HasCycleDFS reports whether the directed graph u → v over nodes 0..n-1
// contains a cycle, using white/gray/black colouring: reaching a gray
// vertex means a back edge. Self-loops count as cycles.
//
// Time: O(V + E). Memory: O(V) plus recursion depth.
func HasCycleDFS(n int, edges [][2]int) (bool, error) {
	if err := checkEdges(n, edges); err != nil {
		return false, err
	}
	adj := adjacency(n, edges, true)
	state := make([]int, n)

	var visit func(u int) bool
	visit = func(u int) bool {
		state[u] = gray
		for _, v := range adj[u] {
			switch state[v] {
			case gray:
				return true
			case white:
				if visit(v) {
					return true
				}
			}
		}
		state[u] = black

		return false
	}

	for v := 0; v < n; v++ {
		if state[v] == white && visit(v) {
			return true, nil
		}
	}

	return false, nil
}

// intHeap is a min-heap of ints for container/heap.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
