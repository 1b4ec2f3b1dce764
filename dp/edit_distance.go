package dp

// EditDistance computes the minimum total cost of inserts, deletes and
// substitutions that turn a into b, comparing bytes.
//
// Algorithm outline (FullMatrix):
//  1. D[i][0] = i·DeleteCost, D[0][j] = j·InsertCost.
//  2. D[i][j] = D[i-1][j-1] if a[i-1] == b[j-1], otherwise the minimum of
//     D[i-1][j-1] + SubstituteCost, D[i-1][j] + DeleteCost and
//     D[i][j-1] + InsertCost.
//  3. distance = D[n][m]; with ReturnScript, walk back from (n, m)
//     choosing a predecessor consistent with the recurrence.
//
// Time: O(n·m). Memory: O(n·m) (FullMatrix) or O(m) (TwoRows).
func EditDistance(a, b string, opts EditOptions) (int, []EditOp, error) {
	if opts.InsertCost < 0 || opts.DeleteCost < 0 || opts.SubstituteCost < 0 {
		return 0, nil, ErrNegativeCost
	}
	if opts.ReturnScript && opts.MemoryMode != FullMatrix {
		return 0, nil, ErrScriptNeedsMatrix
	}

	n, m := len(a), len(b)
	if opts.MemoryMode == TwoRows {
		return editDistanceRows(a, b, opts), nil, nil
	}

	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i * opts.DeleteCost
	}
	for j := 1; j <= m; j++ {
		d[0][j] = j * opts.InsertCost
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			d[i][j] = cell(a[i-1] == b[j-1], d[i-1][j-1], d[i-1][j], d[i][j-1], opts)
		}
	}
	if !opts.ReturnScript {
		return d[n][m], nil, nil
	}

	return d[n][m], backtrackScript(a, b, d, opts), nil
}

// cell evaluates one recurrence step from the diagonal, upper and left cells.
func cell(same bool, diag, up, left int, opts EditOptions) int {
	best := min(up+opts.DeleteCost, left+opts.InsertCost)
	if same {
		return min(best, diag)
	}

	return min(best, diag+opts.SubstituteCost)
}

// editDistanceRows is the TwoRows variant: prev holds row i-1, curr row i.
func editDistanceRows(a, b string, opts EditOptions) int {
	m := len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j * opts.InsertCost
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i * opts.DeleteCost
		for j := 1; j <= m; j++ {
			curr[j] = cell(a[i-1] == b[j-1], prev[j-1], prev[j], curr[j-1], opts)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrackScript walks from (n, m) to (0, 0) and returns the operations
// in forward order. Diagonal moves are preferred on ties.
func backtrackScript(a, b string, d [][]int, opts EditOptions) []EditOp {
	i, j := len(a), len(b)
	script := make([]EditOp, 0, max(i, j))
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && d[i][j] == d[i-1][j-1]:
			script = append(script, EditOp{Kind: Keep, I: i - 1, J: j - 1})
			i, j = i-1, j-1
		case i > 0 && j > 0 && d[i][j] == d[i-1][j-1]+opts.SubstituteCost:
			script = append(script, EditOp{Kind: Substitute, I: i - 1, J: j - 1})
			i, j = i-1, j-1
		case i > 0 && d[i][j] == d[i-1][j]+opts.DeleteCost:
			script = append(script, EditOp{Kind: Delete, I: i - 1, J: -1})
			i--
		default:
			script = append(script, EditOp{Kind: Insert, I: -1, J: j - 1})
			j--
		}
	}
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}

// LongestCommonSubsequence returns the length of the longest subsequence
// shared by a and b, using one rolling row. Time O(n·m), memory O(m).
func LongestCommonSubsequence(a, b string) int {
	row := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		diag := 0 // row[j-1] of the previous iteration
		for j := 1; j <= len(b); j++ {
			up := row[j]
			if a[i-1] == b[j-1] {
				row[j] = diag + 1
			} else {
				row[j] = max(row[j], row[j-1])
			}
			diag = up
		}
	}

	return row[len(b)]
}
