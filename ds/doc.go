// Package ds defines the two node types used by the linked-list and tree
// exercises, together with builders and printers that turn them into
// readable test fixtures and diagnostics.
//
//   - ListNode, NewList, Values, FormatList: singly-linked lists.
//   - TreeNode, NewTree, LevelOrder, Inorder, Height, FormatTree: binary trees
//     built from LeetCode-style level-order slices where Null marks a hole.
//
// Nodes are plain values; nothing here is safe for concurrent mutation.
package ds
