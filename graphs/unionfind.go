package graphs

// UnionFind is a disjoint-set forest over elements 0..n-1 with path
// compression (path halving) and union by rank.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// NewUnionFind returns n singleton sets. Negative n is treated as 0.
func NewUnionFind(n int) *UnionFind {
	n = max(n, 0)
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// Find returns the representative of x's set. x must be in range.
func (uf *UnionFind) Find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets of a and b. It returns false when they were
// already joined, which for an edge (a, b) means the edge closes a cycle.
func (uf *UnionFind) Union(a, b int) bool {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++
	}
	uf.count--

	return true
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b int) bool {
	return uf.Find(a) == uf.Find(b)
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
