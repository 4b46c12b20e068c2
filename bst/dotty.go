package bst

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
// (for debugging purposes). Sentinels are drawn as small empty circles,
// parent back-references as dashed edges.
func (t *Tree[T]) ToDot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	for _, s := range []*node[T]{t.beginNil, t.endNil} {
		ID := ids.alloc(s)
		nodelist += fmt.Sprintf("\"%d\" %s;\n", ID, sentinelDotStyle(s))
	}
	if t.root != nil {
		stack := []*node[T]{t.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			ID := ids.alloc(n)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%v\" %s];\n", ID, n.data, nodeDotStyles)
			for _, child := range [2]*node[T]{n.left, n.right} {
				if child == nil {
					continue
				}
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
				if !child.isSentinel() {
					stack = append(stack, child)
				}
			}
		}
	}
	for _, s := range []*node[T]{t.beginNil, t.endNil} {
		if s.parent != nil {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n", ids.alloc(s), ids.alloc(s.parent))
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

const nodeDotStyles = ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle"

func sentinelDotStyle[T any](s *node[T]) string {
	label := "end"
	if s.kind == beginSentinel {
		label = "begin"
	}
	return fmt.Sprintf("[label=\"\",xlabel=\"%s\",color=black,shape=circle,fixedsize=true,width=.3]", label)
}
