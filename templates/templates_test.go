package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algokit/templates"
)

func TestMemo(t *testing.T) {
	calls := 0
	fib := templates.NewMemo(func(self *templates.Memo[int, int], n int) int {
		calls++
		if n < 2 {
			return n
		}
		return self.Get(n-1) + self.Get(n-2)
	})

	assert.Equal(t, 55, fib.Get(10))
	assert.Equal(t, 11, calls, "each key computed once")
	assert.Equal(t, 11, fib.Len())

	assert.Equal(t, 6765, fib.Get(20))
	assert.Equal(t, 21, calls)
	assert.Equal(t, 55, fib.Get(10))
	assert.Equal(t, 21, calls, "cached")
}

func TestBacktrack_BinaryStrings(t *testing.T) {
	got := templates.Backtrack(templates.BacktrackSpec[byte]{
		Candidates: func(path []byte) []byte {
			if len(path) == 2 {
				return nil
			}
			return []byte{'0', '1'}
		},
		Accept: func(path []byte) bool { return len(path) == 2 },
	})
	assert.Equal(t, [][]byte{[]byte("00"), []byte("01"), []byte("10"), []byte("11")}, got)
}

func TestBacktrack_Prune(t *testing.T) {
	// strings over {a, b} of length ≤ 3 without "bb"
	got := templates.Backtrack(templates.BacktrackSpec[rune]{
		Candidates: func(path []rune) []rune {
			if len(path) == 3 {
				return nil
			}
			return []rune{'a', 'b'}
		},
		Accept: func(path []rune) bool { return len(path) == 3 },
		Prune: func(path []rune) bool {
			n := len(path)
			return n >= 2 && path[n-1] == 'b' && path[n-2] == 'b'
		},
	})
	var words []string
	for _, p := range got {
		words = append(words, string(p))
	}
	assert.Equal(t, []string{"aaa", "aab", "aba", "baa", "bab"}, words)
}

func TestBacktrack_EmptyPathAccepted(t *testing.T) {
	got := templates.Backtrack(templates.BacktrackSpec[int]{
		Candidates: func([]int) []int { return nil },
		Accept:     func([]int) bool { return true },
	})
	assert.Equal(t, [][]int{nil}, got)
}

func TestGridBFS_Distances(t *testing.T) {
	walls := map[templates.Point]bool{{R: 1, C: 0}: true, {R: 1, C: 1}: true}
	dist := map[templates.Point]int{}
	templates.GridBFS(3, 3,
		[]templates.Point{{R: 0, C: 0}, {R: 0, C: 0}, {R: 9, C: 9}},
		func(p templates.Point) bool { return !walls[p] },
		func(p templates.Point, d int) bool { dist[p] = d; return true },
	)
	assert.Len(t, dist, 7)
	assert.Equal(t, 0, dist[templates.Point{R: 0, C: 0}])
	assert.Equal(t, 3, dist[templates.Point{R: 1, C: 2}])
	assert.Equal(t, 6, dist[templates.Point{R: 2, C: 0}])
}

func TestGridBFS_StopEarly(t *testing.T) {
	visited := 0
	templates.GridBFS(10, 10, []templates.Point{{R: 5, C: 5}},
		func(templates.Point) bool { return true },
		func(_ templates.Point, d int) bool { visited++; return d < 1 },
	)
	assert.Equal(t, 2, visited, "source plus the first neighbour at distance 1")

	templates.GridBFS(0, 5, []templates.Point{{}}, nil, func(templates.Point, int) bool {
		t.Fatal("empty grid must not be visited")
		return false
	})
}

func TestWindow_LongestRunAtMostTwoDistinct(t *testing.T) {
	s := "eceba"
	count := map[byte]int{}
	best := 0
	templates.Window(len(s),
		func(r int) { count[s[r]]++ },
		func() bool { return len(count) > 2 },
		func(l int) {
			count[s[l]]--
			if count[s[l]] == 0 {
				delete(count, s[l])
			}
		},
		func(l, r int) { best = max(best, r-l+1) },
	)
	assert.Equal(t, 3, best)
}

func TestWindow_NilRecord(t *testing.T) {
	pushed := 0
	templates.Window(4, func(int) { pushed++ }, func() bool { return false }, func(int) {}, nil)
	assert.Equal(t, 4, pushed)
}
