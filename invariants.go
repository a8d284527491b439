package wordtree

import "fmt"

// Check validates the structural invariants of the tree under its configured
// ordering: strict search order, balance factors within [-1, 1], correct
// cached heights and a consistent element count.
//
// This checker is intended for tests. A failing check always means a defect
// in the tree code, never a usage error.
func (t *Tree[T]) Check() error {
	return t.CheckOrdering(t.cfg.Ordering)
}

// CheckOrdering is Check with an explicit ordering, for trees filled with
// InsertWith.
func (t *Tree[T]) CheckOrdering(ord Ordering[T]) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrCorrupt)
	}
	if !ord.IsValid() {
		return fmt.Errorf("%w: ordering is required", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrCorrupt, t.size)
		}
		return nil
	}
	count, _, err := checkNode(t.root, ord, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrCorrupt, count, t.size)
	}
	return nil
}

// checkNode checks the subtree at n, whose elements must lie strictly between
// lo and hi (either may be nil for an open bound).
func checkNode[T any](n *node[T], ord Ordering[T], lo, hi *T) (count int, h int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && ord.compare(*lo, n.value) >= 0 {
		return 0, 0, fmt.Errorf("%w: element out of order (left bound)", ErrCorrupt)
	}
	if hi != nil && ord.compare(n.value, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: element out of order (right bound)", ErrCorrupt)
	}
	lcount, lh, err := checkNode(n.left, ord, lo, &n.value)
	if err != nil {
		return 0, 0, err
	}
	rcount, rh, err := checkNode(n.right, ord, &n.value, hi)
	if err != nil {
		return 0, 0, err
	}
	h = 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, fmt.Errorf("%w: cached height %d, actual height %d", ErrCorrupt, n.height, h)
	}
	if bf := rh - lh; bf < -1 || bf > 1 {
		return 0, 0, fmt.Errorf("%w: balance factor %d", ErrCorrupt, bf)
	}
	return lcount + rcount + 1, h, nil
}
