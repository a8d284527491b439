package wordtree

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
)

// thread performs one step of a Morris in-order traversal, starting at cur.
// It returns the next cursor position and, if this step completes a node,
// the node to visit.
//
// A node with a left subtree is reached twice. On the first arrival its
// in-order predecessor gets a temporary right link back to it (a thread), on
// the second arrival, coming back over that thread, the thread is removed.
func thread[T any](cur *node[T]) (next, visit *node[T]) {
	if cur.left == nil {
		return cur.right, cur
	}
	pred := cur.left
	for pred.right != nil && pred.right != cur {
		pred = pred.right
	}
	if pred.right == nil {
		pred.right = cur
		return cur.left, nil
	}
	pred.right = nil
	return cur.right, cur
}

// walk visits the nodes in order until visit returns false.
//
// If walk is left early, be it by visit returning false or by a panic in
// visit, the remaining steps are run without visiting. This removes every
// thread still in place, so the tree has its original shape whenever walk
// returns.
func (t *Tree[T]) walk(visit func(*node[T]) bool) {
	if t == nil {
		return
	}
	cur := t.root
	defer func() {
		for cur != nil { // deplete the remaining traversal
			cur, _ = thread(cur)
		}
	}()
	var n *node[T]
	for cur != nil {
		cur, n = thread(cur)
		if n != nil && !visit(n) {
			return
		}
	}
}

// InOrder calls visit for every element in ascending order. visit receives a
// reference into the tree and may update the element, as long as its position
// under the tree's ordering does not change. visit must not insert into t.
func (t *Tree[T]) InOrder(visit func(*T)) {
	t.walk(func(n *node[T]) bool {
		visit(&n.value)
		return true
	})
}

// All returns an iterator over references to the elements in ascending order.
// Breaking out of the loop is safe.
func (t *Tree[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		t.walk(func(n *node[T]) bool {
			return yield(&n.value)
		})
	}
}

// Values returns all elements in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.Len())
	t.InOrder(func(v *T) {
		values = append(values, *v)
	})
	return values
}

// InOrderTo calls visit for every element in ascending order, handing it w as
// output destination. The first error returned by visit stops the traversal
// and is returned, wrapped in ErrOutput.
func (t *Tree[T]) InOrderTo(w io.Writer, visit func(*T, io.Writer) error) error {
	var err error
	t.walk(func(n *node[T]) bool {
		err = visit(&n.value, w)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

// WriteFile creates (or truncates) the file at path and runs InOrderTo with
// a buffered writer on it. The file is closed on all paths; the first error
// encountered is returned.
func (t *Tree[T]) WriteFile(path string, visit func(*T, io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrOutput, cerr)
		}
	}()
	bw := bufio.NewWriter(f)
	if err = t.InOrderTo(bw, visit); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	tracer().Debugf("wordtree: wrote %d elements to %s", t.Len(), path)
	return nil
}
