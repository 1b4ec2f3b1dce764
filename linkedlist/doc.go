// Package linkedlist solves pointer-rewiring exercises on singly-linked
// lists of ds.ListNode.
//
// Functions that return a list may reuse and relink the input nodes; the
// caller should treat the input head as consumed unless documented otherwise.
//
// Errors:
//
//   - ErrOutOfRange: RemoveNthFromEnd with n < 1 or n greater than the length.
package linkedlist
