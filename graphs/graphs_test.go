package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/graphs"
)

func TestUnionFind(t *testing.T) {
	uf := graphs.NewUnionFind(5)
	assert.Equal(t, 5, uf.Count())
	assert.Equal(t, 5, uf.Len())

	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(3, 4))
	assert.False(t, uf.Union(1, 0), "already joined")
	assert.True(t, uf.Connected(0, 1))
	assert.False(t, uf.Connected(1, 3))
	assert.Equal(t, 3, uf.Count())

	assert.True(t, uf.Union(1, 4))
	assert.True(t, uf.Connected(0, 3))
	assert.Equal(t, 2, uf.Count())

	assert.Equal(t, 0, graphs.NewUnionFind(-3).Count())
}

// TestValidTree_Approaches checks union-find and DFS against the same inputs.
func TestValidTree_Approaches(t *testing.T) {
	approaches := map[string]func(int, [][2]int) (bool, error){
		"unionfind": graphs.ValidTree,
		"dfs":       graphs.ValidTreeDFS,
	}
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"tree", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}}, true},
		{"cycle", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 3}, {1, 4}}, false},
		{"cycle plus isolated node", 4, [][2]int{{0, 1}, {1, 2}, {2, 0}}, false},
		{"too few edges", 4, [][2]int{{0, 1}, {2, 3}}, false},
		{"single node", 1, nil, true},
		{"empty graph", 0, nil, false},
	}
	for name, valid := range approaches {
		for _, tc := range cases {
			got, err := valid(tc.n, tc.edges)
			require.NoError(t, err, "%s: %s", name, tc.name)
			assert.Equal(t, tc.want, got, "%s: %s", name, tc.name)
		}

		_, err := valid(-1, nil)
		assert.ErrorIs(t, err, graphs.ErrInvalidNodeCount, name)
		_, err = valid(2, [][2]int{{0, 2}})
		assert.ErrorIs(t, err, graphs.ErrEdgeOutOfRange, name)
	}
}

func TestCountComponents(t *testing.T) {
	got, err := graphs.CountComponents(5, [][2]int{{0, 1}, {1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	got, err = graphs.CountComponents(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = graphs.CountComponents(3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestFindOrder(t *testing.T) {
	order, err := graphs.FindOrder(4, [][2]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order)

	order, err = graphs.FindOrder(3, [][2]int{{0, 2}})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, order, "smallest available course first")

	order, err = graphs.FindOrder(2, [][2]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Nil(t, order)

	_, err = graphs.FindOrder(2, [][2]int{{5, 0}})
	assert.ErrorIs(t, err, graphs.ErrEdgeOutOfRange)
}

func TestCanFinish(t *testing.T) {
	ok, err := graphs.CanFinish(2, [][2]int{{1, 0}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = graphs.CanFinish(2, [][2]int{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = graphs.CanFinish(0, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasCycleDFS(t *testing.T) {
	cyc, err := graphs.HasCycleDFS(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	assert.True(t, cyc)

	cyc, err = graphs.HasCycleDFS(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	require.NoError(t, err)
	assert.False(t, cyc, "diamond is acyclic")

	cyc, err = graphs.HasCycleDFS(1, [][2]int{{0, 0}})
	require.NoError(t, err)
	assert.True(t, cyc, "self-loop")
}

func TestOrangesRotting(t *testing.T) {
	assert.Equal(t, 4, graphs.OrangesRotting([][]int{{2, 1, 1}, {1, 1, 0}, {0, 1, 1}}))
	assert.Equal(t, -1, graphs.OrangesRotting([][]int{{2, 1, 1}, {0, 1, 1}, {1, 0, 1}}))
	assert.Equal(t, 0, graphs.OrangesRotting([][]int{{0, 2}}))
	assert.Equal(t, -1, graphs.OrangesRotting([][]int{{1}}))
}

func TestFloodFill(t *testing.T) {
	image := [][]int{{1, 1, 1}, {1, 1, 0}, {1, 0, 1}}
	got := graphs.FloodFill(image, 1, 1, 2)
	assert.Equal(t, [][]int{{2, 2, 2}, {2, 2, 0}, {2, 0, 1}}, got)
	assert.Equal(t, 1, image[0][0], "input must not change")

	same := graphs.FloodFill([][]int{{0, 0}}, 0, 0, 0)
	assert.Equal(t, [][]int{{0, 0}}, same)
}

func TestShortestPathBinaryMatrix(t *testing.T) {
	assert.Equal(t, 2, graphs.ShortestPathBinaryMatrix([][]int{{0, 1}, {1, 0}}))
	assert.Equal(t, 4, graphs.ShortestPathBinaryMatrix([][]int{{0, 0, 0}, {1, 1, 0}, {1, 1, 0}}))
	assert.Equal(t, -1, graphs.ShortestPathBinaryMatrix([][]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 0}}))
	assert.Equal(t, 1, graphs.ShortestPathBinaryMatrix([][]int{{0}}))
}
