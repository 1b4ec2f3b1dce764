package graphs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/graphs"
)

// randomByteGrid builds a deterministic n×n grid of '0'/'1' cells.
func randomByteGrid(n int) [][]byte {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]byte, n)
	for r := range grid {
		grid[r] = make([]byte, n)
		for c := range grid[r] {
			grid[r][c] = byte('0' + rng.Intn(2))
		}
	}

	return grid
}

// BenchmarkNumIslands compares the three approaches on a random 500×500 grid.
// Complexity: O(R·C) for each.
func BenchmarkNumIslands(b *testing.B) {
	grid := randomByteGrid(500)
	for name, count := range map[string]func([][]byte) int{
		"DFS":       graphs.NumIslands,
		"BFS":       graphs.NumIslandsBFS,
		"UnionFind": graphs.NumIslandsUnionFind,
	} {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = count(grid)
			}
		})
	}
}

// BenchmarkIslands_Conn8 measures component labelling with diagonal connectivity.
func BenchmarkIslands_Conn8(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	const n = 1000
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = rng.Intn(5)
		}
	}
	opts := graphs.DefaultGridOptions()
	opts.Conn = graphs.Conn8

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graphs.Islands(grid, opts)
	}
}
