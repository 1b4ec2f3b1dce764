package catalog

import (
	"github.com/katalvlaran/algokit/ds"
	"github.com/katalvlaran/algokit/linkedlist"
	"github.com/katalvlaran/algokit/numeric"
	"github.com/katalvlaran/algokit/search"
)

// cycleList builds 3 -> 2 -> 0 -> -4 with the tail pointing back at 2.
func cycleList() (head, entry *ds.ListNode) {
	head = ds.NewList(3, 2, 0, -4)
	entry = head.Next
	entry.Next.Next.Next = entry

	return head, entry
}

func linkedListProblems() []Problem {
	return []Problem{
		{
			Slug: "reverse-linked-list", Title: "Reverse Linked List",
			Category: LinkedList, Difficulty: Easy,
			Approaches: []string{"iterative relinking (default)", "recursion"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("iterative", []int{5, 4, 3, 2, 1}, func() any { return linkedlist.Reverse(ds.NewList(1, 2, 3, 4, 5)).Values() }),
				eq("recursive", []int{2, 1}, func() any { return linkedlist.ReverseRecursive(ds.NewList(1, 2)).Values() }),
			},
		},
		{
			Slug: "merge-two-sorted-lists", Title: "Merge Two Sorted Lists",
			Category: LinkedList, Difficulty: Easy,
			Approaches: []string{"dummy head splice"},
			Time:       "O(n + m)", Space: "O(1)",
			Cases: []Case{
				eq("interleaved", []int{1, 1, 2, 3, 4, 4}, func() any {
					return linkedlist.MergeTwo(ds.NewList(1, 2, 4), ds.NewList(1, 3, 4)).Values()
				}),
			},
		},
		{
			Slug: "linked-list-cycle", Title: "Linked List Cycle",
			Category: LinkedList, Difficulty: Medium,
			Approaches: []string{"Floyd's tortoise and hare"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("has cycle", true, func() any {
					head, _ := cycleList()
					return linkedlist.HasCycle(head)
				}),
				eq("cycle start", true, func() any {
					head, entry := cycleList()
					return linkedlist.CycleStart(head) == entry
				}),
				eq("straight", false, func() any { return linkedlist.HasCycle(ds.NewList(1, 2, 3)) }),
			},
		},
		{
			Slug: "middle-of-linked-list", Title: "Middle of the Linked List",
			Category: LinkedList, Difficulty: Easy,
			Approaches: []string{"slow and fast pointers"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("odd", 3, func() any { return linkedlist.Middle(ds.NewList(1, 2, 3, 4, 5)).Val }),
				eq("even", 4, func() any { return linkedlist.Middle(ds.NewList(1, 2, 3, 4, 5, 6)).Val }),
			},
		},
		{
			Slug: "remove-nth-node-from-end", Title: "Remove Nth Node From End of List",
			Category: LinkedList, Difficulty: Medium,
			Approaches: []string{"one pass with an n-node gap"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("n=2", []int{1, 2, 3, 5}, func() any {
					head, err := linkedlist.RemoveNthFromEnd(ds.NewList(1, 2, 3, 4, 5), 2)
					return result(head.Values(), err)
				}),
				eq("n too large", linkedlist.ErrOutOfRange, func() any {
					_, err := linkedlist.RemoveNthFromEnd(ds.NewList(1), 2)
					return err
				}),
			},
		},
		{
			Slug: "palindrome-linked-list", Title: "Palindrome Linked List",
			Category: LinkedList, Difficulty: Easy,
			Approaches: []string{"reverse second half, compare, restore"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("palindrome", true, func() any { return linkedlist.IsPalindrome(ds.NewList(1, 2, 2, 1)) }),
				eq("not palindrome", false, func() any { return linkedlist.IsPalindrome(ds.NewList(1, 2)) }),
			},
		},
	}
}

func numericProblems() []Problem {
	return []Problem{
		{
			Slug: "gcd-lcm", Title: "Greatest Common Divisor and Least Common Multiple",
			Category: Numeric, Difficulty: Easy,
			Approaches: []string{"Euclid's algorithm"},
			Time:       "O(log min(a, b))", Space: "O(1)",
			Cases: []Case{
				eq("gcd", 6, func() any { return numeric.GCD(12, 18) }),
				eq("gcd signs", int64(4), func() any { return numeric.GCD(int64(-8), int64(12)) }),
				eq("lcm", 12, func() any { return numeric.LCM(4, 6) }),
			},
		},
		{
			Slug: "count-primes", Title: "Sieve of Eratosthenes",
			Category: Numeric, Difficulty: Medium,
			Approaches: []string{"sieve (default)", "6k±1 trial division"},
			Time:       "O(n log log n)", Space: "O(n)",
			Cases: []Case{
				eq("primes to 20", []int{2, 3, 5, 7, 11, 13, 17, 19}, func() any { return numeric.Sieve(20) }),
				eq("97 is prime", true, func() any { return numeric.IsPrime(97) }),
				eq("91 is not", false, func() any { return numeric.IsPrime(91) }),
			},
		},
		{
			Slug: "factorial", Title: "Factorial",
			Category: Numeric, Difficulty: Easy,
			Approaches: []string{"iterative product"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("5!", uint64(120), func() any { return result(numeric.Factorial(5)) }),
				eq("20!", uint64(2432902008176640000), func() any { return result(numeric.Factorial(20)) }),
				eq("overflow", numeric.ErrOverflow, func() any { return result(numeric.Factorial(21)) }),
			},
		},
		{
			Slug: "fibonacci-number", Title: "Fibonacci Number",
			Category: Numeric, Difficulty: Easy,
			Approaches: []string{"bottom-up pair (default)", "memoised recursion"},
			Time:       "O(n)", Space: "O(1)",
			Cases: []Case{
				eq("F(10)", uint64(55), func() any { return result(numeric.Fibonacci(10)) }),
				eq("memo F(93)", uint64(12200160415121876738), func() any { return result(numeric.FibonacciMemo(93)) }),
				eq("negative", numeric.ErrNegativeInput, func() any { return result(numeric.Fibonacci(-1)) }),
			},
		},
		{
			Slug: "fast-power", Title: "Pow(x, n)",
			Category: Numeric, Difficulty: Medium,
			Approaches: []string{"exponentiation by squaring"},
			Time:       "O(log n)", Space: "O(1)",
			Cases: []Case{
				eq("2^10", int64(1024), func() any { return result(numeric.Pow(2, 10)) }),
				eq("x^0", int64(1), func() any { return result(numeric.Pow(-7, 0)) }),
				eq("negative exponent", numeric.ErrNegativeExponent, func() any { return result(numeric.Pow(2, -1)) }),
			},
		},
		{
			Slug: "quadratic-equation", Title: "Quadratic Equation",
			Category: Numeric, Difficulty: Easy,
			Approaches: []string{"stable formula with Vieta's product"},
			Time:       "O(1)", Space: "O(1)",
			Cases: []Case{
				eq("two roots", []float64{1, 2}, func() any { return result(numeric.SolveQuadratic(1, -3, 2)) }),
				eq("double root", []float64{-1}, func() any { return result(numeric.SolveQuadratic(1, 2, 1)) }),
				eq("no real roots", []float64{}, func() any { return result(numeric.SolveQuadratic(1, 0, 1)) }),
				eq("degenerate", numeric.ErrDegenerate, func() any { return result(numeric.SolveQuadratic(0, 0, 1)) }),
			},
		},
	}
}

func searchProblems() []Problem {
	sorted := []int{-1, 0, 3, 5, 9, 12}

	return []Problem{
		{
			Slug: "binary-search", Title: "Binary Search",
			Category: Search, Difficulty: Easy,
			Approaches: []string{"closed interval halving"},
			Time:       "O(log n)", Space: "O(1)",
			Cases: []Case{
				eq("found", 4, func() any { return search.BinarySearch(sorted, 9) }),
				eq("absent", -1, func() any { return search.BinarySearch(sorted, 2) }),
				eq("strings", 1, func() any { return search.BinarySearch([]string{"ant", "bee", "cat"}, "bee") }),
			},
		},
		{
			Slug: "search-range", Title: "Find First and Last Position of Element",
			Category: Search, Difficulty: Medium,
			Approaches: []string{"lower and upper bound"},
			Time:       "O(log n)", Space: "O(1)",
			Cases: []Case{
				eq("present", [2]int{3, 4}, func() any { return search.SearchRange([]int{5, 7, 7, 8, 8, 10}, 8) }),
				eq("absent", [2]int{-1, -1}, func() any { return search.SearchRange([]int{5, 7, 7, 8, 8, 10}, 6) }),
				eq("bounds", [2]int{1, 3}, func() any {
					xs := []int{5, 7, 7, 8}
					return [2]int{search.LowerBound(xs, 7), search.UpperBound(xs, 7)}
				}),
			},
		},
		{
			Slug: "search-insert-position", Title: "Search Insert Position",
			Category: Search, Difficulty: Easy,
			Approaches: []string{"lower bound"},
			Time:       "O(log n)", Space: "O(1)",
			Cases: []Case{
				eq("present", 2, func() any { return search.SearchInsert([]int{1, 3, 5, 6}, 5) }),
				eq("between", 1, func() any { return search.SearchInsert([]int{1, 3, 5, 6}, 2) }),
				eq("after", 4, func() any { return search.SearchInsert([]int{1, 3, 5, 6}, 7) }),
			},
		},
		{
			Slug: "sqrt-x", Title: "Sqrt(x)",
			Category: Search, Difficulty: Easy,
			Approaches: []string{"binary search on the answer"},
			Time:       "O(log x)", Space: "O(1)",
			Cases: []Case{
				eq("8", 2, func() any { return search.SqrtInt(8) }),
				eq("perfect square", 12, func() any { return search.SqrtInt(144) }),
				eq("first true", 5, func() any { return search.FirstTrue(0, 10, func(i int) bool { return i*i > 20 }) }),
			},
		},
		{
			Slug: "search-rotated-sorted-array", Title: "Search in Rotated Sorted Array",
			Category: Search, Difficulty: Medium,
			Approaches: []string{"binary search on the sorted half"},
			Time:       "O(log n)", Space: "O(1)",
			Cases: []Case{
				eq("found", 4, func() any { return search.SearchRotated([]int{4, 5, 6, 7, 0, 1, 2}, 0) }),
				eq("absent", -1, func() any { return search.SearchRotated([]int{4, 5, 6, 7, 0, 1, 2}, 3) }),
				eq("minimum", 1, func() any { return search.FindMinRotated([]int{3, 4, 5, 1, 2}) }),
			},
		},
	}
}
