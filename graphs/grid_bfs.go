package graphs

import "github.com/katalvlaran/algokit/templates"

// Cell states of OrangesRotting.
const (
	fresh  = 1
	rotten = 2
)

// OrangesRotting returns the minutes until no fresh orange (1) remains when
// every rotten orange (2) spoils its 4-neighbours each minute, or -1 if
// some fresh orange can never be reached. All rotten oranges start one
// multi-source BFS. The grid is not modified.
func OrangesRotting(grid [][]int) int {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return 0
	}
	rows, cols := len(grid), len(grid[0])
	var sources []templates.Point
	freshLeft := 0
	for r := range grid {
		for c, v := range grid[r] {
			switch v {
			case rotten:
				sources = append(sources, templates.Point{R: r, C: c})
			case fresh:
				freshLeft++
			}
		}
	}

	minutes := 0
	templates.GridBFS(rows, cols, sources,
		func(p templates.Point) bool { return grid[p.R][p.C] == fresh },
		func(p templates.Point, dist int) bool {
			if grid[p.R][p.C] == fresh {
				freshLeft--
				minutes = max(minutes, dist)
			}
			return true
		})
	if freshLeft > 0 {
		return -1
	}

	return minutes
}

// FloodFill returns a copy of image in which the 4-connected region of
// equal colour containing (sr, sc) is repainted with color.
func FloodFill(image [][]int, sr, sc, color int) [][]int {
	out := make([][]int, len(image))
	for i, row := range image {
		out[i] = append([]int(nil), row...)
	}
	if len(image) == 0 || sr < 0 || sr >= len(image) || sc < 0 || sc >= len(image[sr]) {
		return out
	}
	start := image[sr][sc]
	if start == color {
		return out
	}
	templates.GridBFS(len(image), len(image[0]), []templates.Point{{R: sr, C: sc}},
		func(p templates.Point) bool { return image[p.R][p.C] == start },
		func(p templates.Point, _ int) bool {
			out[p.R][p.C] = color
			return true
		})

	return out
}

// ShortestPathBinaryMatrix returns the number of cells on the shortest
// 8-connected path of 0-cells from the top-left to the bottom-right corner
// of an n×n grid, or -1 if no such path exists.
func ShortestPathBinaryMatrix(grid [][]int) int {
	n := len(grid)
	if n == 0 || grid[0][0] != 0 || grid[n-1][n-1] != 0 {
		return -1
	}
	dist := make([]int, n*n)
	dist[0] = 1
	queue := []int{0}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := u/n, u%n
		if ur == n-1 && uc == n-1 {
			return dist[u]
		}
		for _, d := range offsets8 {
			vr, vc := ur+d[0], uc+d[1]
			if vr < 0 || vr >= n || vc < 0 || vc >= n || grid[vr][vc] != 0 {
				continue
			}
			if v := vr*n + vc; dist[v] == 0 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return -1
}
