package linkedlist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algokit/ds"
)

// ErrOutOfRange indicates a position outside the list.
var ErrOutOfRange = errors.New("linkedlist: position out of range")

// Reverse reverses the list iteratively and returns the new head.
// Time O(n), memory O(1).
func Reverse(head *ds.ListNode) *ds.ListNode {
	var prev *ds.ListNode
	for cur := head; cur != nil; {
		next := cur.Next
		cur.Next = prev
		prev, cur = cur, next
	}

	return prev
}

// ReverseRecursive reverses the list recursively. Time O(n), memory O(n) stack.
func ReverseRecursive(head *ds.ListNode) *ds.ListNode {
	if head == nil || head.Next == nil {
		return head
	}
	newHead := ReverseRecursive(head.Next)
	head.Next.Next = head
	head.Next = nil

	return newHead
}

// MergeTwo splices two ascending lists into one ascending list. On equal
// values the node from a goes first.
func MergeTwo(a, b *ds.ListNode) *ds.ListNode {
	dummy := &ds.ListNode{}
	tail := dummy
	for a != nil && b != nil {
		if a.Val <= b.Val {
			tail.Next, a = a, a.Next
		} else {
			tail.Next, b = b, b.Next
		}
		tail = tail.Next
	}
	if a != nil {
		tail.Next = a
	} else {
		tail.Next = b
	}

	return dummy.Next
}

// HasCycle reports whether the list loops back on itself (Floyd's
// tortoise and hare).
func HasCycle(head *ds.ListNode) bool {
	return meet(head) != nil
}

// CycleStart returns the node where the cycle begins, or nil. After the
// pointers meet, a pointer from head and one from the meeting point reach
// the cycle entry after the same number of steps.
func CycleStart(head *ds.ListNode) *ds.ListNode {
	m := meet(head)
	if m == nil {
		return nil
	}
	for p := head; ; p, m = p.Next, m.Next {
		if p == m {
			return p
		}
	}
}

func meet(head *ds.ListNode) *ds.ListNode {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
		if slow == fast {
			return slow
		}
	}

	return nil
}

// Middle returns the middle node; for even lengths the second of the two
// middle nodes.
func Middle(head *ds.ListNode) *ds.ListNode {
	slow, fast := head, head
	for fast != nil && fast.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
	}

	return slow
}

// RemoveNthFromEnd unlinks the n-th node from the end in one pass, keeping a
// gap of n nodes between two pointers, and returns the possibly new head.
func RemoveNthFromEnd(head *ds.ListNode, n int) (*ds.ListNode, error) {
	if n < 1 {
		return head, fmt.Errorf("%w: n=%d", ErrOutOfRange, n)
	}
	dummy := &ds.ListNode{Next: head}
	lead := dummy
	for i := 0; i < n; i++ {
		lead = lead.Next
		if lead == nil {
			return head, fmt.Errorf("%w: n=%d exceeds length %d", ErrOutOfRange, n, i)
		}
	}
	trail := dummy
	for lead.Next != nil {
		lead, trail = lead.Next, trail.Next
	}
	trail.Next = trail.Next.Next

	return dummy.Next, nil
}

// IsPalindrome reports whether the values read the same in both directions.
// The second half is reversed for the comparison and restored afterwards,
// so the list is unchanged on return. Memory O(1).
func IsPalindrome(head *ds.ListNode) bool {
	if head == nil || head.Next == nil {
		return true
	}
	// end of the first half: the first middle node for even lengths
	slow, fast := head, head
	for fast.Next != nil && fast.Next.Next != nil {
		slow, fast = slow.Next, fast.Next.Next
	}
	second := Reverse(slow.Next)

	ok := true
	for p, q := head, second; q != nil; p, q = p.Next, q.Next {
		if p.Val != q.Val {
			ok = false
			break
		}
	}
	slow.Next = Reverse(second)

	return ok
}
