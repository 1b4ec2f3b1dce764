package backtracking

import "strings"

// queens places one queen per row, tracking attacked columns and both
// diagonal families (r-c and r+c), and calls emit with the column of the
// queen in each row for every complete placement.
func queens(n int, emit func(cols []int)) {
	var (
		cols  = make([]int, 0, n)
		col   = make([]bool, n)
		diag  = make([]bool, 2*n) // r - c + n
		anti  = make([]bool, 2*n) // r + c
		place func(r int)
	)
	place = func(r int) {
		if r == n {
			emit(cols)
			return
		}
		for c := 0; c < n; c++ {
			if col[c] || diag[r-c+n] || anti[r+c] {
				continue
			}
			col[c], diag[r-c+n], anti[r+c] = true, true, true
			cols = append(cols, c)
			place(r + 1)
			cols = cols[:len(cols)-1]
			col[c], diag[r-c+n], anti[r+c] = false, false, false
		}
	}
	place(0)
}

// SolveNQueens returns every arrangement of n non-attacking queens on an
// n×n board, rendered as rows of 'Q' and '.'.
func SolveNQueens(n int) [][]string {
	var boards [][]string
	if n < 1 {
		return boards
	}
	queens(n, func(cols []int) {
		board := make([]string, n)
		for r, c := range cols {
			board[r] = strings.Repeat(".", c) + "Q" + strings.Repeat(".", n-c-1)
		}
		boards = append(boards, board)
	})

	return boards
}

// TotalNQueens counts the solutions without materialising the boards.
func TotalNQueens(n int) int {
	if n < 1 {
		return 0
	}
	count := 0
	queens(n, func([]int) { count++ })

	return count
}
