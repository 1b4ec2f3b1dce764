package templates

// Point addresses a grid cell by row and column.
type Point struct {
	R, C int
}

// orthogonal lists the N, E, S, W offsets.
var orthogonal = [4]Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// GridBFS runs a multi-source breadth-first search over a rows×cols grid with
// 4-neighbour connectivity. Every source starts at distance 0; a cell is
// entered only if passable reports true for it. visit is called once per
// reached cell, sources included, in non-decreasing distance order; returning
// false stops the search.
//
// Out-of-range and duplicate sources are ignored.
//
// Time: O(rows·cols). Memory: O(rows·cols).
func GridBFS(rows, cols int, sources []Point, passable func(Point) bool, visit func(p Point, dist int) bool) {
	if rows <= 0 || cols <= 0 {
		return
	}
	type item struct {
		p    Point
		dist int
	}
	seen := make([]bool, rows*cols)
	queue := make([]item, 0, len(sources))
	for _, s := range sources {
		if s.R < 0 || s.R >= rows || s.C < 0 || s.C >= cols || seen[s.R*cols+s.C] {
			continue
		}
		seen[s.R*cols+s.C] = true
		queue = append(queue, item{p: s})
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if !visit(cur.p, cur.dist) {
			return
		}
		for _, d := range orthogonal {
			next := Point{cur.p.R + d.R, cur.p.C + d.C}
			if next.R < 0 || next.R >= rows || next.C < 0 || next.C >= cols {
				continue
			}
			idx := next.R*cols + next.C
			if seen[idx] || !passable(next) {
				continue
			}
			seen[idx] = true
			queue = append(queue, item{p: next, dist: cur.dist + 1})
		}
	}
}
