package templates

// BacktrackSpec describes a search tree for Backtrack.
//
//   - Candidates returns the choices available after path. Required.
//   - Accept reports whether path is a solution to record. A recorded path
//     is still extended unless Candidates returns nothing for it.
//   - Prune, if non-nil, cuts the subtree below path when it returns true.
//     It is consulted before Accept.
type BacktrackSpec[T any] struct {
	Candidates func(path []T) []T
	Accept     func(path []T) bool
	Prune      func(path []T) bool
}

// Backtrack enumerates the search tree depth-first, starting from the empty
// path, and returns a copy of every accepted path in discovery order.
//
// Time: proportional to the number of explored nodes. Memory: O(depth) plus output.
func Backtrack[T any](spec BacktrackSpec[T]) [][]T {
	var (
		out  [][]T
		path []T
		walk func()
	)
	walk = func() {
		if spec.Prune != nil && spec.Prune(path) {
			return
		}
		if spec.Accept != nil && spec.Accept(path) {
			out = append(out, append([]T(nil), path...))
		}
		for _, c := range spec.Candidates(path) {
			path = append(path, c) // choose
			walk()                 // explore
			path = path[:len(path)-1]
		}
	}
	walk()

	return out
}
