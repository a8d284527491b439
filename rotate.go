package wordtree

// --- Insertion path --------------------------------------------------------

// pathStack records the nodes visited while descending for an insertion,
// root first. It replaces parent links: the parent of the top node is the
// entry below it, its grandparent the one below that.
type pathStack[T any] []*node[T]

func (ps *pathStack[T]) push(n *node[T]) {
	*ps = append(*ps, n)
}

func (ps *pathStack[T]) pop() *node[T] {
	n := (*ps)[len(*ps)-1]
	*ps = (*ps)[:len(*ps)-1]
	return n
}

// peek returns the node i entries below the top, or nil.
func (ps pathStack[T]) peek(i int) *node[T] {
	if i >= len(ps) {
		return nil
	}
	return ps[len(ps)-1-i]
}

// --- Heights and balance factors -------------------------------------------

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// fixHeight recomputes the cached height of n from its children.
func fixHeight[T any](n *node[T]) {
	n.height = 1 + max(height(n.left), height(n.right))
}

// balanceFactor is height(right) - height(left).
func balanceFactor[T any](n *node[T]) int {
	return height(n.right) - height(n.left)
}

// --- Rotations ---------------------------------------------------------------

// rotateLeft turns the right child ch of p into the root of the subtree:
//
//	  p              ch
//	 / \            /  \
//	a   ch   ->    p    c
//	   /  \       / \
//	  b    c     a   b
//
// Heights of p and ch are recomputed, p first. The new subtree root is
// returned; the caller has to link it to p's former parent.
func rotateLeft[T any](p, ch *node[T]) *node[T] {
	p.right = ch.left
	ch.left = p
	fixHeight(p)
	fixHeight(ch)
	return ch
}

// rotateRight is the mirror image of rotateLeft, with ch being p's left child.
func rotateRight[T any](p, ch *node[T]) *node[T] {
	p.left = ch.right
	ch.right = p
	fixHeight(p)
	fixHeight(ch)
	return ch
}

// rotateLeftRight handles a left child ch which is right-heavy.
func rotateLeftRight[T any](p, ch *node[T]) *node[T] {
	p.left = rotateLeft(ch, ch.right)
	return rotateRight(p, p.left)
}

// rotateRightLeft handles a right child ch which is left-heavy.
func rotateRightLeft[T any](p, ch *node[T]) *node[T] {
	p.right = rotateRight(ch, ch.left)
	return rotateLeft(p, p.right)
}

// --- Balance pass ------------------------------------------------------------

// rebalance walks the insertion path upwards, starting at the innermost node.
// Heights are recomputed on the way. The first ancestor with a balance factor
// of ±2 is rotated, and the rotated subtree is linked to the grandparent (or
// becomes the new root). A rotation after an insertion restores the height
// the subtree had before the insertion, so the pass ends there.
func (t *Tree[T]) rebalance(path pathStack[T]) {
	for len(path) > 0 {
		cur := path.pop()
		fixHeight(cur)
		par := path.peek(0)
		if par == nil {
			return
		}
		parBF, curBF := balanceFactor(par), balanceFactor(cur)
		var sub *node[T]
		switch {
		case parBF > 1:
			assert(par.right == cur, "right-heavy parent not on insertion path")
			if curBF >= 0 {
				sub = rotateLeft(par, cur)
			} else {
				sub = rotateRightLeft(par, cur)
			}
		case parBF < -1:
			assert(par.left == cur, "left-heavy parent not on insertion path")
			if curBF <= 0 {
				sub = rotateRight(par, cur)
			} else {
				sub = rotateLeftRight(par, cur)
			}
		default:
			continue
		}
		t.relink(path.peek(1), par, sub)
		tracer().Debugf("wordtree: rotated at height %d (bf=%d/%d)", sub.height, parBF, curBF)
		return
	}
}

// relink makes gr point to sub instead of old. A nil gr means old was the root.
func (t *Tree[T]) relink(gr, old, sub *node[T]) {
	switch {
	case gr == nil:
		t.root = sub
	case gr.left == old:
		gr.left = sub
	default:
		assert(gr.right == old, "grandparent does not own rotated subtree")
		gr.right = sub
	}
}
