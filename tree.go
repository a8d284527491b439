package wordtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// node holds one element of a tree. A node is owned by exactly one parent
// (or by the tree, for the root). height caches the height of the subtree
// rooted at the node, where a leaf has height 1.
type node[T any] struct {
	value       T
	left, right *node[T]
	height      int
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, height: 1}
}

// Config configures the default insertion behaviour of a tree.
type Config[T any] struct {
	// Ordering is used by Insert, Find and Check. It is required.
	Ordering Ordering[T]
	// Merge is called for duplicates by Insert. If nil, duplicates are dropped
	// silently; comparator orderings require a non-nil Merge.
	Merge MergeFunc[T]
}

func (cfg Config[T]) validate() error {
	return checkOrdering(cfg.Ordering, cfg.Merge)
}

// Tree is a height-balanced binary search tree.
//
// A tree created by New or NewOrdered is empty and ready to use.
// Trees must not be copied after first use.
type Tree[T any] struct {
	cfg  Config[T]
	root *node[T]
	size int
}

// New creates an empty tree with a validated default configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg}, nil
}

// NewOrdered creates an empty tree using the natural order of T, dropping
// duplicates silently.
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{cfg: Config[T]{Ordering: Natural[T]()}}
}

// Config returns a copy of the tree's default configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a single root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

// Clear drops all elements. Nodes are released as a whole; there is no
// removal of single elements.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert inserts value using the tree's configured ordering and merge function.
func (t *Tree[T]) Insert(value T) {
	t.insert(value, t.cfg.Ordering.compare, t.cfg.Merge)
}

// InsertWith inserts value using an ordering and merge function for this call
// only. Comparator orderings require merge to be non-nil; a violation is
// reported as an error wrapping ErrInvalidConfig and leaves the tree untouched.
//
// Mixing orderings on one tree is only meaningful if all of them agree on the
// relative order of the elements involved.
func (t *Tree[T]) InsertWith(value T, ord Ordering[T], merge MergeFunc[T]) error {
	if err := checkOrdering(ord, merge); err != nil {
		return err
	}
	t.insert(value, ord.compare, merge)
	return nil
}

// insert descends from the root, recording the path, and attaches a new leaf.
// An equal element is merged instead. After attaching, the balance pass runs
// over the recorded path unless the attach point already had a child on its
// other side: in that case its height stays the same and no ancestor changes.
func (t *Tree[T]) insert(value T, compare func(a, b T) int, merge MergeFunc[T]) {
	if t.root == nil {
		t.root = newNode(value)
		t.size = 1
		return
	}
	path := make(pathStack[T], 0, t.root.height+1)
	p := t.root
	for {
		path.push(p)
		c := compare(value, p.value)
		if c == 0 {
			if merge != nil {
				merge(&p.value, value)
			}
			return
		}
		if c > 0 {
			if p.right == nil {
				p.right = newNode(value)
				t.size++
				if p.left != nil {
					return
				}
				break
			}
			p = p.right
		} else {
			if p.left == nil {
				p.left = newNode(value)
				t.size++
				if p.right != nil {
					return
				}
				break
			}
			p = p.left
		}
	}
	t.rebalance(path)
}

// Find returns a reference to the element comparing equal to probe under the
// tree's configured ordering.
func (t *Tree[T]) Find(probe T) (*T, bool) {
	if t == nil {
		return nil, false
	}
	for p := t.root; p != nil; {
		c := t.cfg.Ordering.compare(probe, p.value)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return &p.value, true
		}
	}
	return nil, false
}
