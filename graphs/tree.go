package graphs

import "fmt"

// checkEdges validates n and every edge endpoint.
func checkEdges(n int, edges [][2]int) error {
	if n < 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidNodeCount, n)
	}
	for i, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return fmt.Errorf("%w: edge %d = %v with n=%d", ErrEdgeOutOfRange, i, e, n)
		}
	}

	return nil
}

// ValidTree reports whether the undirected edges form a single tree over
// nodes 0..n-1: exactly n-1 edges and no edge joining two already-connected
// nodes. The empty graph (n == 0) is not a tree.
//
// Time: O(n + E·α(n)). Memory: O(n).
func ValidTree(n int, edges [][2]int) (bool, error) {
	if err := checkEdges(n, edges); err != nil {
		return false, err
	}
	if len(edges) != n-1 {
		return false, nil
	}
	uf := NewUnionFind(n)
	for _, e := range edges {
		if !uf.Union(e[0], e[1]) {
			return false, nil // cycle
		}
	}

	return true, nil
}

// ValidTreeDFS is the traversal approach: with n-1 edges the graph is a
// tree exactly when a DFS from node 0 reaches every node.
func ValidTreeDFS(n int, edges [][2]int) (bool, error) {
	if err := checkEdges(n, edges); err != nil {
		return false, err
	}
	if len(edges) != n-1 {
		return false, nil
	}
	adj := adjacency(n, edges, false)
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	reached := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range adj[u] {
			if !seen[v] {
				seen[v] = true
				reached++
				stack = append(stack, v)
			}
		}
	}

	return reached == n, nil
}

// CountComponents returns the number of connected components of the
// undirected graph over nodes 0..n-1.
func CountComponents(n int, edges [][2]int) (int, error) {
	if err := checkEdges(n, edges); err != nil {
		return 0, err
	}
	uf := NewUnionFind(n)
	for _, e := range edges {
		uf.Union(e[0], e[1])
	}

	return uf.Count(), nil
}

// adjacency builds adjacency lists; directed edges run e[0] → e[1].
func adjacency(n int, edges [][2]int, directed bool) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		if !directed {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
	}

	return adj
}
