package dp

import "errors"

var (
	// ErrScriptNeedsMatrix indicates that edit-script recovery requires FullMatrix mode.
	ErrScriptNeedsMatrix = errors.New("dp: ReturnScript requires MemoryMode=FullMatrix")
	// ErrNegativeCost indicates a negative insert, delete or substitute cost.
	ErrNegativeCost = errors.New("dp: operation costs must be non-negative")
	// ErrNegativeInput indicates a negative count or dimension.
	ErrNegativeInput = errors.New("dp: input must be non-negative")
)

// MemoryMode controls how EditDistance stores its DP table.
type MemoryMode int

const (
	// FullMatrix keeps all (n+1)×(m+1) cells and supports script recovery.
	FullMatrix MemoryMode = iota
	// TwoRows keeps only the previous and current rows; distance only.
	TwoRows
)

// EditOptions configures EditDistance.
//
// Fields:
//   - InsertCost, DeleteCost, SubstituteCost: per-operation costs (≥ 0).
//   - MemoryMode:   FullMatrix or TwoRows.
//   - ReturnScript: backtrack and return the operations turning a into b.
type EditOptions struct {
	InsertCost     int
	DeleteCost     int
	SubstituteCost int
	MemoryMode     MemoryMode
	ReturnScript   bool
}

// DefaultEditOptions returns unit costs, FullMatrix mode and no script,
// i.e. classic Levenshtein distance.
func DefaultEditOptions() EditOptions {
	return EditOptions{
		InsertCost:     1,
		DeleteCost:     1,
		SubstituteCost: 1,
		MemoryMode:     FullMatrix,
		ReturnScript:   false,
	}
}

// OpKind names a single edit-script step.
type OpKind int

const (
	// Keep leaves a[I] == b[J] unchanged.
	Keep OpKind = iota
	// Substitute replaces a[I] with b[J].
	Substitute
	// Insert inserts b[J].
	Insert
	// Delete removes a[I].
	Delete
)

// String returns the lower-case operation name.
func (k OpKind) String() string {
	switch k {
	case Keep:
		return "keep"
	case Substitute:
		return "substitute"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// EditOp is one step of an edit script. I indexes a and J indexes b;
// the index that does not apply to the operation is -1 (J for Delete,
// I for Insert).
type EditOp struct {
	Kind OpKind
	I, J int
}
