package templates

// Window drives a variable-size sliding window over indices [0, n).
//
// For every right index it calls push(right) to extend the window, then
// calls pop(left) and advances left while invalid() reports true, and
// finally calls record(left, right) with the now-valid window [left, right].
//
// Each index is pushed and popped at most once, so the driver is O(n)
// when the callbacks are O(1).
func Window(n int, push func(right int), invalid func() bool, pop func(left int), record func(left, right int)) {
	left := 0
	for right := 0; right < n; right++ {
		push(right)
		for left <= right && invalid() {
			pop(left)
			left++
		}
		if record != nil {
			record(left, right)
		}
	}
}
