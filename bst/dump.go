package bst

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var sentinelColor = color.New(color.FgHiBlack, color.Italic)

// Dump writes the tree sideways to w, right subtrees on top, one node per
// line, indented by depth. Sentinels are printed as ⟨begin⟩ and ⟨end⟩, in
// color unless color.NoColor is set.
func (t *Tree[T]) Dump(w io.Writer) {
	if t.root == nil {
		sentinelColor.Fprint(w, "⟨begin⟩ ⟷ ⟨end⟩")
		fmt.Fprintln(w)
		return
	}
	t.dumpNode(w, t.root, 0)
}

func (t *Tree[T]) dumpNode(w io.Writer, n *node[T], depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("    ", depth)
	if n.isSentinel() {
		fmt.Fprint(w, indent)
		sentinelColor.Fprint(w, sentinelName(n))
		fmt.Fprintln(w)
		return
	}
	t.dumpNode(w, n.right, depth+1)
	fmt.Fprintf(w, "%s%v\n", indent, n.data)
	t.dumpNode(w, n.left, depth+1)
}

func sentinelName[T any](n *node[T]) string {
	if n.kind == beginSentinel {
		return "⟨begin⟩"
	}
	return "⟨end⟩"
}
