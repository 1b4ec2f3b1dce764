package graphs

import (
	"sort"

	"github.com/katalvlaran/algokit/templates"
)

// NumIslands counts groups of '1' cells joined horizontally or vertically,
// sinking each island with an iterative DFS as it is found. The grid is
// read-only: visited cells are tracked separately.
//
// Time: O(R·C). Memory: O(R·C).
func NumIslands(grid [][]byte) int {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	rows, cols := len(grid), len(grid[0])
	seen := make([]bool, rows*cols)
	count := 0

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] != '1' || seen[r*cols+c] {
				continue
			}
			count++
			stack := [][2]int{{r, c}}
			seen[r*cols+c] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range offsets4 {
					nr, nc := cur[0]+d[0], cur[1]+d[1]
					if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
						continue
					}
					if grid[nr][nc] == '1' && !seen[nr*cols+nc] {
						seen[nr*cols+nc] = true
						stack = append(stack, [2]int{nr, nc})
					}
				}
			}
		}
	}

	return count
}

// NumIslandsBFS is the breadth-first approach, flooding every island from its
// first cell with templates.GridBFS.
func NumIslandsBFS(grid [][]byte) int {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	rows, cols := len(grid), len(grid[0])
	seen := make([]bool, rows*cols)
	land := func(p templates.Point) bool { return grid[p.R][p.C] == '1' }
	mark := func(p templates.Point, _ int) bool {
		seen[p.R*cols+p.C] = true
		return true
	}

	count := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] == '1' && !seen[r*cols+c] {
				count++
				templates.GridBFS(rows, cols, []templates.Point{{R: r, C: c}}, land, mark)
			}
		}
	}

	return count
}

// NumIslandsUnionFind is the disjoint-set approach: every land cell starts
// as its own set and is merged with its right and lower land neighbours.
func NumIslandsUnionFind(grid [][]byte) int {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	rows, cols := len(grid), len(grid[0])
	uf := NewUnionFind(rows * cols)
	water := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] != '1' {
				water++
				continue
			}
			if r+1 < rows && grid[r+1][c] == '1' {
				uf.Union(r*cols+c, (r+1)*cols+c)
			}
			if c+1 < cols && grid[r][c+1] == '1' {
				uf.Union(r*cols+c, r*cols+c+1)
			}
		}
	}

	return uf.Count() - water
}

// IslandMap is the immutable result of Islands: the connected components of
// land cells of a rectangular grid.
type IslandMap struct {
	Rows, Cols int
	// Components lists each island as row-major cell indices in BFS order.
	// Islands are ordered by their first cell in row-major order.
	Components [][]int
}

// Islands finds all contiguous regions of cells with value ≥
// opts.LandThreshold under opts.Conn connectivity.
// Returns ErrEmptyGrid for a grid without rows or columns and
// ErrNonRectangular if any row length differs.
//
// Time: O(R·C·d), d = 4 or 8. Memory: O(R·C).
func Islands(grid [][]int, opts GridOptions) (*IslandMap, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	seen := make([]bool, rows*cols)
	offsets := opts.Conn.offsets()
	var comps [][]int

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] < opts.LandThreshold || seen[r*cols+c] {
				continue
			}
			// BFS to collect the component
			queue := []int{r*cols + c}
			seen[r*cols+c] = true
			for qi := 0; qi < len(queue); qi++ {
				ur, uc := queue[qi]/cols, queue[qi]%cols
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= rows || vc < 0 || vc >= cols || grid[vr][vc] < opts.LandThreshold {
						continue
					}
					if vi := vr*cols + vc; !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return &IslandMap{Rows: rows, Cols: cols, Components: comps}, nil
}

// Count returns the number of islands.
func (m *IslandMap) Count() int {
	return len(m.Components)
}

// Sizes returns the cell count of every island, largest first.
func (m *IslandMap) Sizes() []int {
	sizes := make([]int, len(m.Components))
	for i, comp := range m.Components {
		sizes[i] = len(comp)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// Largest returns the size of the biggest island, or 0 if there is none.
func (m *IslandMap) Largest() int {
	best := 0
	for _, comp := range m.Components {
		best = max(best, len(comp))
	}

	return best
}

// Cell converts a row-major index back to (row, col).
func (m *IslandMap) Cell(idx int) (row, col int) {
	return idx / m.Cols, idx % m.Cols
}

// MaxAreaOfIsland returns the area of the largest 4-connected island of 1s,
// or 0 for an empty, jagged or all-water grid.
func MaxAreaOfIsland(grid [][]int) int {
	m, err := Islands(grid, DefaultGridOptions())
	if err != nil {
		return 0
	}

	return m.Largest()
}
