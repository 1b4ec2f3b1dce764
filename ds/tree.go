package ds

import (
	"math"
	"strconv"
	"strings"
)

// Null marks a missing child in the level-order input of NewTree.
const Null = math.MinInt

// TreeNode is a binary tree node holding an int.
type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

// NewTree builds a binary tree from a LeetCode-style level-order listing,
// e.g. NewTree(3, 9, 20, Null, Null, 15, 7). Children are only listed for
// present nodes. Returns nil when the listing is empty or starts with Null.
func NewTree(levelOrder ...int) *TreeNode {
	if len(levelOrder) == 0 || levelOrder[0] == Null {
		return nil
	}
	root := &TreeNode{Val: levelOrder[0]}
	queue := []*TreeNode{root}
	i := 1
	for len(queue) > 0 && i < len(levelOrder) {
		n := queue[0]
		queue = queue[1:]
		if v := levelOrder[i]; v != Null {
			n.Left = &TreeNode{Val: v}
			queue = append(queue, n.Left)
		}
		i++
		if i < len(levelOrder) {
			if v := levelOrder[i]; v != Null {
				n.Right = &TreeNode{Val: v}
				queue = append(queue, n.Right)
			}
			i++
		}
	}

	return root
}

// LevelOrder returns the node values grouped by depth, root first.
func (root *TreeNode) LevelOrder() [][]int {
	if root == nil {
		return nil
	}
	var levels [][]int
	queue := []*TreeNode{root}
	for len(queue) > 0 {
		level := make([]int, 0, len(queue))
		next := make([]*TreeNode, 0, 2*len(queue))
		for _, n := range queue {
			level = append(level, n.Val)
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		levels = append(levels, level)
		queue = next
	}

	return levels
}

// Inorder returns the values in left-root-right order, iteratively.
func (root *TreeNode) Inorder() []int {
	var (
		out   []int
		stack []*TreeNode
	)
	for n := root; n != nil || len(stack) > 0; {
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.Val)
		n = n.Right
	}

	return out
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (root *TreeNode) Height() int {
	if root == nil {
		return 0
	}

	return 1 + max(root.Left.Height(), root.Right.Height())
}

// FormatTree renders the tree top-down, one node per line:
//
//	1
//	├── 2
//	│   └── 4
//	└── 3
//
// A missing left sibling of a present right child is printed as "∅" so
// that the two children stay distinguishable. Returns "<empty>" for nil.
func FormatTree(root *TreeNode) string {
	if root == nil {
		return "<empty>"
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(root.Val))
	sb.WriteByte('\n')
	writeChildren(&sb, root, "")

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeChildren(sb *strings.Builder, n *TreeNode, prefix string) {
	if n.Left == nil && n.Right == nil {
		return
	}
	children := []*TreeNode{n.Left, n.Right}
	if n.Right == nil {
		children = children[:1]
	}
	for i, c := range children {
		last := i == len(children)-1
		connector, indent := "├── ", "│   "
		if last {
			connector, indent = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		if c == nil {
			sb.WriteString("∅\n")
			continue
		}
		sb.WriteString(strconv.Itoa(c.Val))
		sb.WriteByte('\n')
		writeChildren(sb, c, prefix+indent)
	}
}
