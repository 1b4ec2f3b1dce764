package ds

import (
	"strconv"
	"strings"
)

// ListNode is a node of a singly-linked list of ints.
type ListNode struct {
	Val  int
	Next *ListNode
}

// NewList builds a list holding vals in order and returns its head,
// or nil when vals is empty.
func NewList(vals ...int) *ListNode {
	dummy := &ListNode{}
	tail := dummy
	for _, v := range vals {
		tail.Next = &ListNode{Val: v}
		tail = tail.Next
	}

	return dummy.Next
}

// Values collects the list values from head onward. A cyclic list is cut
// at the first node seen twice.
func (head *ListNode) Values() []int {
	var out []int
	seen := make(map[*ListNode]struct{})
	for n := head; n != nil; n = n.Next {
		if _, ok := seen[n]; ok {
			break
		}
		seen[n] = struct{}{}
		out = append(out, n.Val)
	}

	return out
}

// Len returns the number of distinct nodes reachable from head.
func (head *ListNode) Len() int {
	return len(head.Values())
}

// FormatList renders a list as "1 -> 2 -> 3", or "<empty>" for nil.
// A cycle is reported with a trailing "(cycle)" marker instead of looping.
func FormatList(head *ListNode) string {
	if head == nil {
		return "<empty>"
	}
	var sb strings.Builder
	seen := make(map[*ListNode]struct{})
	for n := head; n != nil; n = n.Next {
		if _, ok := seen[n]; ok {
			sb.WriteString(" -> (cycle)")
			break
		}
		seen[n] = struct{}{}
		if n != head {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(n.Val))
	}

	return sb.String()
}

// String implements fmt.Stringer via FormatList.
func (head *ListNode) String() string {
	return FormatList(head)
}
