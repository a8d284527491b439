package wordtree

// TreeError is an error type for the wordtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged whenever a tree or an insertion call is set up
// with an unusable ordering/merge combination.
const ErrInvalidConfig = TreeError("wordtree: invalid configuration")

// ErrMissingMerge signals a comparator ordering without a merge function.
// It is always reported wrapped together with ErrInvalidConfig.
const ErrMissingMerge = TreeError("wordtree: comparator ordering requires a merge function")

// ErrCorrupt is returned by Check if a structural invariant does not hold.
// A tree in this state points to a defect in the balancing code.
const ErrCorrupt = TreeError("wordtree: corrupt tree")

// ErrOutput wraps failures of the output destination during traversal.
const ErrOutput = TreeError("wordtree: output failed")
