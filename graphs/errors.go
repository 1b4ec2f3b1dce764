package graphs

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("graphs: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("graphs: all grid rows must have the same length")
	// ErrInvalidNodeCount indicates a negative number of nodes.
	ErrInvalidNodeCount = errors.New("graphs: node count must be non-negative")
	// ErrEdgeOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrEdgeOutOfRange = errors.New("graphs: edge endpoint out of range")
	// ErrNegativeWeight indicates a weighted edge with a negative weight.
	ErrNegativeWeight = errors.New("graphs: edge weight must be non-negative")
)
