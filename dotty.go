package wordtree

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders an element; if it is nil, elements
// are printed with %v. Missing children of inner nodes are drawn as small
// empty circles, so left and right can be told apart.
func (t *Tree[T]) ToDot(w io.Writer, label func(T) string) error {
	if label == nil {
		label = func(v T) string { return fmt.Sprintf("%v", v) }
	}
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	var nilcnt int
	edge := func(from int, child *node[T]) {
		if child == nil {
			nilcnt++
			nilid := fmt.Sprintf("nil%d", nilcnt)
			nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", from, nilid)
			return
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", from, ids.alloc(child))
	}
	t.preorder(t.root, func(n *node[T]) {
		ID := ids.alloc(n)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\\nh=%d\" %s];\n", ID, dotEscape(label(n.value)),
			n.height, nodeDotStyles(n.left == nil && n.right == nil))
		if n.left != nil || n.right != nil {
			edge(ID, n.left)
			edge(ID, n.right)
		}
	})
	for _, s := range []string{
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist,
		edgelist,
		"}\n",
	} {
		if _, err := io.WriteString(w, s); err != nil {
			return fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}
	return nil
}

// preorder is a recursive helper for debug output only.
func (t *Tree[T]) preorder(n *node[T], f func(*node[T])) {
	if n == nil {
		return
	}
	f(n)
	t.preorder(n.left, f)
	t.preorder(n.right, f)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

func dotEscape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '"' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
