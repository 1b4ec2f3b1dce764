package linkedlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/ds"
	"github.com/katalvlaran/algokit/linkedlist"
)

func TestReverse_Approaches(t *testing.T) {
	for name, reverse := range map[string]func(*ds.ListNode) *ds.ListNode{
		"iterative": linkedlist.Reverse,
		"recursive": linkedlist.ReverseRecursive,
	} {
		assert.Equal(t, []int{5, 4, 3, 2, 1}, reverse(ds.NewList(1, 2, 3, 4, 5)).Values(), name)
		assert.Equal(t, []int{1}, reverse(ds.NewList(1)).Values(), name)
		assert.Nil(t, reverse(nil), name)
	}
}

func TestMergeTwo(t *testing.T) {
	got := linkedlist.MergeTwo(ds.NewList(1, 2, 4), ds.NewList(1, 3, 4))
	assert.Equal(t, []int{1, 1, 2, 3, 4, 4}, got.Values())
	assert.Equal(t, []int{0}, linkedlist.MergeTwo(nil, ds.NewList(0)).Values())
	assert.Nil(t, linkedlist.MergeTwo(nil, nil))
}

// cyclic builds 3 -> 2 -> 0 -> -4 with the tail linked back to index pos.
func cyclic(pos int) (*ds.ListNode, *ds.ListNode) {
	head := ds.NewList(3, 2, 0, -4)
	var entry, tail *ds.ListNode
	for i, n := 0, head; n != nil; i, n = i+1, n.Next {
		if i == pos {
			entry = n
		}
		tail = n
	}
	tail.Next = entry

	return head, entry
}

func TestCycle(t *testing.T) {
	head, entry := cyclic(1)
	assert.True(t, linkedlist.HasCycle(head))
	assert.Same(t, entry, linkedlist.CycleStart(head))

	head, entry = cyclic(0)
	assert.Same(t, entry, linkedlist.CycleStart(head))

	straight := ds.NewList(1, 2, 3)
	assert.False(t, linkedlist.HasCycle(straight))
	assert.Nil(t, linkedlist.CycleStart(straight))
	assert.False(t, linkedlist.HasCycle(nil))
}

func TestMiddle(t *testing.T) {
	assert.Equal(t, 3, linkedlist.Middle(ds.NewList(1, 2, 3, 4, 5)).Val)
	assert.Equal(t, 4, linkedlist.Middle(ds.NewList(1, 2, 3, 4, 5, 6)).Val)
	assert.Nil(t, linkedlist.Middle(nil))
}

func TestRemoveNthFromEnd(t *testing.T) {
	head, err := linkedlist.RemoveNthFromEnd(ds.NewList(1, 2, 3, 4, 5), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 5}, head.Values())

	head, err = linkedlist.RemoveNthFromEnd(ds.NewList(1), 1)
	require.NoError(t, err)
	assert.Nil(t, head)

	head, err = linkedlist.RemoveNthFromEnd(ds.NewList(1, 2), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, head.Values())

	_, err = linkedlist.RemoveNthFromEnd(ds.NewList(1, 2), 3)
	assert.ErrorIs(t, err, linkedlist.ErrOutOfRange)
	_, err = linkedlist.RemoveNthFromEnd(ds.NewList(1, 2), 0)
	assert.ErrorIs(t, err, linkedlist.ErrOutOfRange)
}

func TestIsPalindrome(t *testing.T) {
	for _, vals := range [][]int{{1, 2, 2, 1}, {1, 2, 3, 2, 1}, {7}, {}} {
		head := ds.NewList(vals...)
		assert.True(t, linkedlist.IsPalindrome(head), "%v", vals)
		assert.Equal(t, len(vals), head.Len(), "list restored for %v", vals)
	}
	head := ds.NewList(1, 2, 3)
	assert.False(t, linkedlist.IsPalindrome(head))
	assert.Equal(t, []int{1, 2, 3}, head.Values(), "list restored")
}
