package catalog

import (
	"github.com/katalvlaran/algokit/graphs"
	"github.com/katalvlaran/algokit/greedy"
	"github.com/katalvlaran/algokit/hashing"
)

func islandGrid() [][]byte {
	return [][]byte{
		[]byte("11000"),
		[]byte("11000"),
		[]byte("00100"),
		[]byte("00011"),
	}
}

func graphsProblems() []Problem {
	return []Problem{
		{
			Slug: "number-of-islands", Title: "Number of Islands",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"iterative DFS (default)", "multi-source BFS", "union-find"},
			Time:       "O(R·C)", Space: "O(R·C)",
			Cases: []Case{
				eq("dfs", 3, func() any { return graphs.NumIslands(islandGrid()) }),
				eq("bfs", 3, func() any { return graphs.NumIslandsBFS(islandGrid()) }),
				eq("union-find", 3, func() any { return graphs.NumIslandsUnionFind(islandGrid()) }),
			},
		},
		{
			Slug: "island-map", Title: "Island Map with Connectivity and Threshold",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"component labelling with 4- or 8-connectivity"},
			Time:       "O(R·C·d)", Space: "O(R·C)",
			Cases: []Case{
				eq("conn4 sizes", []int{2, 1, 1}, func() any {
					m, err := graphs.Islands([][]int{{1, 1, 0}, {0, 0, 1}, {1, 0, 0}}, graphs.DefaultGridOptions())
					if err != nil {
						return err
					}
					return m.Sizes()
				}),
				eq("conn8 sizes", []int{3, 1}, func() any {
					opts := graphs.DefaultGridOptions()
					opts.Conn = graphs.Conn8
					m, err := graphs.Islands([][]int{{1, 1, 0}, {0, 0, 1}, {1, 0, 0}}, opts)
					if err != nil {
						return err
					}
					return m.Sizes()
				}),
				eq("jagged", graphs.ErrNonRectangular, func() any {
					_, err := graphs.Islands([][]int{{1, 1}, {1}}, graphs.DefaultGridOptions())
					return err
				}),
			},
		},
		{
			Slug: "max-area-of-island", Title: "Max Area of Island",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"component sizes from the island map"},
			Time:       "O(R·C)", Space: "O(R·C)",
			Cases: []Case{
				eq("largest 4", 4, func() any {
					return graphs.MaxAreaOfIsland([][]int{{1, 1, 0, 0}, {1, 1, 0, 1}, {0, 0, 0, 1}})
				}),
				eq("water", 0, func() any { return graphs.MaxAreaOfIsland([][]int{{0, 0}}) }),
			},
		},
		{
			Slug: "graph-valid-tree", Title: "Graph Valid Tree",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"union-find (default)", "DFS with parent tracking"},
			Time:       "O(V + E)", Space: "O(V + E)",
			Cases: []Case{
				eq("tree", true, func() any {
					return result(graphs.ValidTree(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}}))
				}),
				eq("cycle dfs", false, func() any {
					return result(graphs.ValidTreeDFS(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 3}, {1, 4}}))
				}),
				eq("edge out of range", graphs.ErrEdgeOutOfRange, func() any {
					return result(graphs.ValidTree(2, [][2]int{{0, 2}}))
				}),
			},
		},
		{
			Slug: "connected-components", Title: "Number of Connected Components",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"union-find"},
			Time:       "O((V + E)·α(V))", Space: "O(V)",
			Cases: []Case{
				eq("two parts", 2, func() any {
					return result(graphs.CountComponents(5, [][2]int{{0, 1}, {1, 2}, {3, 4}}))
				}),
			},
		},
		{
			Slug: "course-schedule", Title: "Course Schedule",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"Kahn's topological sort with a min-heap", "three-colour DFS cycle check"},
			Time:       "O((V + E) log V)", Space: "O(V + E)",
			Cases: []Case{
				eq("order", []int{0, 1, 2, 3}, func() any {
					return result(graphs.FindOrder(4, [][2]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}}))
				}),
				eq("cycle", false, func() any { return result(graphs.CanFinish(2, [][2]int{{1, 0}, {0, 1}})) }),
				eq("dfs cycle", true, func() any {
					return result(graphs.HasCycleDFS(3, [][2]int{{0, 1}, {1, 2}, {2, 0}}))
				}),
			},
		},
		{
			Slug: "network-delay-time", Title: "Network Delay Time",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"Dijkstra with a lazy min-heap"},
			Time:       "O((V + E) log V)", Space: "O(V + E)",
			Cases: []Case{
				eq("from 2", 2, func() any {
					return result(graphs.NetworkDelayTime([][3]int{{2, 1, 1}, {2, 3, 1}, {3, 4, 1}}, 4, 2))
				}),
				eq("unreachable", -1, func() any { return result(graphs.NetworkDelayTime([][3]int{{1, 2, 1}}, 2, 2)) }),
				eq("negative weight", graphs.ErrNegativeWeight, func() any {
					return result(graphs.NetworkDelayTime([][3]int{{1, 2, -1}}, 2, 1))
				}),
			},
		},
		{
			Slug: "rotting-oranges", Title: "Rotting Oranges",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"multi-source BFS"},
			Time:       "O(R·C)", Space: "O(R·C)",
			Cases: []Case{
				eq("four minutes", 4, func() any { return graphs.OrangesRotting([][]int{{2, 1, 1}, {1, 1, 0}, {0, 1, 1}}) }),
				eq("unreachable", -1, func() any { return graphs.OrangesRotting([][]int{{2, 1, 1}, {0, 1, 1}, {1, 0, 1}}) }),
			},
		},
		{
			Slug: "flood-fill", Title: "Flood Fill",
			Category: Graphs, Difficulty: Easy,
			Approaches: []string{"BFS on a copy"},
			Time:       "O(R·C)", Space: "O(R·C)",
			Cases: []Case{
				eq("centre", [][]int{{2, 2, 2}, {2, 2, 0}, {2, 0, 1}}, func() any {
					return graphs.FloodFill([][]int{{1, 1, 1}, {1, 1, 0}, {1, 0, 1}}, 1, 1, 2)
				}),
			},
		},
		{
			Slug: "shortest-path-binary-matrix", Title: "Shortest Path in Binary Matrix",
			Category: Graphs, Difficulty: Medium,
			Approaches: []string{"8-directional BFS"},
			Time:       "O(n²)", Space: "O(n²)",
			Cases: []Case{
				eq("2x2", 2, func() any { return graphs.ShortestPathBinaryMatrix([][]int{{0, 1}, {1, 0}}) }),
				eq("blocked start", -1, func() any {
					return graphs.ShortestPathBinaryMatrix([][]int{{1, 0, 0}, {1, 1, 0}, {1, 1, 0}})
				}),
			},
		},
	}
}

func greedyProblems() []Problem {
	return []Problem{
		{
			Slug: "jump-game", Title: "Jump Game",
			Category: Greedy, Difficulty: Medium,
			Approaches: []string{"furthest reach"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("reachable", true, func() any { return greedy.CanJump([]int{2, 3, 1, 1, 4}) }),
				eq("stuck", false, func() any { return greedy.CanJump([]int{3, 2, 1, 0, 4}) }),
			},
		},
		{
			Slug: "jump-game-ii", Title: "Jump Game II",
			Category: Greedy, Difficulty: Medium,
			Approaches: []string{"implicit BFS levels"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("two jumps", 2, func() any { return greedy.Jump([]int{2, 3, 1, 1, 4}) }),
			},
		},
		{
			Slug: "best-time-to-buy-and-sell-stock", Title: "Best Time to Buy and Sell Stock",
			Category: Greedy, Difficulty: Easy,
			Approaches: []string{"running minimum (one trade)", "sum of rises (unlimited trades)"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("once", 5, func() any { return greedy.MaxProfitOnce([]int{7, 1, 5, 3, 6, 4}) }),
				eq("unlimited", 7, func() any { return greedy.MaxProfit([]int{7, 1, 5, 3, 6, 4}) }),
				eq("falling", 0, func() any { return greedy.MaxProfit([]int{7, 6, 4, 3, 1}) }),
			},
		},
		{
			Slug: "gas-station", Title: "Gas Station",
			Category: Greedy, Difficulty: Medium,
			Approaches: []string{"reset start on negative tank"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("start 3", 3, func() any { return greedy.CanCompleteCircuit([]int{1, 2, 3, 4, 5}, []int{3, 4, 5, 1, 2}) }),
				eq("impossible", -1, func() any { return greedy.CanCompleteCircuit([]int{2, 3, 4}, []int{3, 4, 3}) }),
			},
		},
		{
			Slug: "assign-cookies", Title: "Assign Cookies",
			Category: Greedy, Difficulty: Easy,
			Approaches: []string{"sort both, match smallest"},
			Time:       "O(n log n)", Space: "O(n)",
			Cases: []Case{
				eq("one child", 1, func() any { return greedy.FindContentChildren([]int{1, 2, 3}, []int{1, 1}) }),
				eq("two children", 2, func() any { return greedy.FindContentChildren([]int{1, 2}, []int{1, 2, 3}) }),
			},
		},
		{
			Slug: "partition-labels", Title: "Partition Labels",
			Category: Greedy, Difficulty: Medium,
			Approaches: []string{"last occurrence sweep"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("three parts", []int{9, 7, 8}, func() any { return greedy.PartitionLabels("ababcbacadefegdehijhklij") }),
			},
		},
		{
			Slug: "non-overlapping-intervals", Title: "Non-overlapping Intervals",
			Category: Greedy, Difficulty: Medium,
			Approaches: []string{"sort by end, keep earliest finishing"},
			Time:       "O(n log n)", Space: "O(n)",
			Cases: []Case{
				eq("remove one", 1, func() any {
					return greedy.EraseOverlapIntervals([][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 3}})
				}),
				eq("duplicates", 2, func() any { return greedy.EraseOverlapIntervals([][2]int{{1, 2}, {1, 2}, {1, 2}}) }),
			},
		},
	}
}

func hashingProblems() []Problem {
	return []Problem{
		{
			Slug: "two-sum", Title: "Two Sum",
			Category: Hashing, Difficulty: Easy,
			Approaches: []string{"one-pass hash map (default)", "brute force"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("2 7", []int{0, 1}, func() any { return hashing.TwoSum([]int{2, 7, 11, 15}, 9) }),
				eq("brute", []int{1, 2}, func() any { return hashing.TwoSumBrute([]int{3, 2, 4}, 6) }),
			},
		},
		{
			Slug: "contains-duplicate", Title: "Contains Duplicate",
			Category: Hashing, Difficulty: Easy,
			Approaches: []string{"hash set"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("duplicate", true, func() any { return hashing.ContainsDuplicate([]int{1, 2, 3, 1}) }),
				eq("distinct", false, func() any { return hashing.ContainsDuplicate([]int{1, 2, 3, 4}) }),
			},
		},
		{
			Slug: "valid-anagram", Title: "Valid Anagram",
			Category: Hashing, Difficulty: Easy,
			Approaches: []string{"rune counts"},
			Time:       "O(n)", Space: "O(k)",
			Cases: []Case{
				eq("anagram", true, func() any { return hashing.IsAnagram("anagram", "nagaram") }),
				eq("rat car", false, func() any { return hashing.IsAnagram("rat", "car") }),
			},
		},
		{
			Slug: "group-anagrams", Title: "Group Anagrams",
			Category: Hashing, Difficulty: Medium,
			Approaches: []string{"sorted-rune key"},
			Time:       "O(n·k log k)", Space: "O(n·k)",
			Cases: []Case{
				eq("eat tea", [][]string{{"eat", "tea", "ate"}, {"tan", "nat"}, {"bat"}}, func() any {
					return hashing.GroupAnagrams([]string{"eat", "tea", "tan", "ate", "nat", "bat"})
				}),
			},
		},
		{
			Slug: "longest-consecutive-sequence", Title: "Longest Consecutive Sequence",
			Category: Hashing, Difficulty: Medium,
			Approaches: []string{"hash set, extend from run starts"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("1..4", 4, func() any { return hashing.LongestConsecutive([]int{100, 4, 200, 1, 3, 2}) }),
			},
		},
		{
			Slug: "top-k-frequent-elements", Title: "Top K Frequent Elements",
			Category: Hashing, Difficulty: Medium,
			Approaches: []string{"bucket sort by frequency"},
			Time:       "O(n)", Space: "O(n)",
			Cases: []Case{
				eq("k=2", []int{1, 2}, func() any { return result(hashing.TopKFrequent([]int{1, 1, 1, 2, 2, 3}, 2)) }),
				eq("k too large", hashing.ErrInvalidK, func() any { return result(hashing.TopKFrequent([]int{1}, 2)) }),
			},
		},
		{
			Slug: "first-unique-character", Title: "First Unique Character in a String",
			Category: Hashing, Difficulty: Easy,
			Approaches: []string{"two-pass counts"},
			Time:       "O(n)", Space: "O(k)",
			Cases: []Case{
				eq("loveleetcode", 2, func() any { return hashing.FirstUniqChar("loveleetcode") }),
				eq("none", -1, func() any { return hashing.FirstUniqChar("aabb") }),
			},
		},
		{
			Slug: "majority-element", Title: "Majority Element",
			Category: Hashing, Difficulty: Easy,
			Approaches: []string{"Boyer-Moore vote"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("2", 2, func() any { return hashing.MajorityElement([]int{2, 2, 1, 1, 1, 2, 2}) }),
			},
		},
	}
}
