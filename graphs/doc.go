// Package graphs solves grid and graph traversal exercises.
//
// What:
//
//   - NumIslands: counts '1'-islands of a byte grid by DFS, BFS or union-find.
//   - Islands: labels connected land components of an int grid with tunable
//     LandThreshold and 4- or 8-connectivity; MaxAreaOfIsland on top of it.
//   - UnionFind: disjoint sets with path compression and union by rank.
//   - ValidTree, ValidTreeDFS, CountComponents: undirected graph structure
//     over nodes 0..n-1.
//   - CanFinish, FindOrder, HasCycleDFS: directed dependency graphs
//     (Kahn's algorithm and three-colour DFS).
//   - OrangesRotting, FloodFill, ShortestPathBinaryMatrix: grid BFS.
//   - ShortestPaths, NetworkDelayTime: Dijkstra over weighted directed edges
//     with a lazy min-heap.
//
// Complexity (R×C grid, V nodes, E edges):
//
//   - Grid traversals:        O(R·C) time and memory.
//   - Union-find operations:  O(α(n)) amortized.
//   - ValidTree / components: O(V + E·α(V)).
//   - FindOrder:              O((V + E) log V) (smallest index first).
//   - ShortestPaths:          O((V + E) log V).
//
// Errors:
//
//   - ErrEmptyGrid:        grid has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrInvalidNodeCount: negative node count.
//   - ErrEdgeOutOfRange:   an edge endpoint is outside 0..n-1.
//   - ErrNegativeWeight:   a weighted edge below zero.
package graphs
