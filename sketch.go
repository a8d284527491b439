package wordtree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Sketch renders the tree as indented ASCII art, root first and left child
// before right child. A missing child next to a present sibling is shown as
// "·". label renders an element; if it is nil, elements are printed with %v.
func (t *Tree[T]) Sketch(label func(T) string) string {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	if t.IsEmpty() {
		return treeprint.NewWithRoot("∅").String()
	}
	tp := treeprint.NewWithRoot(label(t.root.value))
	sketchChildren(tp, t.root, label)
	return tp.String()
}

func sketchChildren[T any](branch treeprint.Tree, n *node[T], label func(T) string) {
	if n.left == nil && n.right == nil {
		return
	}
	for _, ch := range [2]*node[T]{n.left, n.right} {
		switch {
		case ch == nil:
			branch.AddNode("·")
		case ch.left == nil && ch.right == nil:
			branch.AddNode(label(ch.value))
		default:
			sketchChildren(branch.AddBranch(label(ch.value)), ch, label)
		}
	}
}
