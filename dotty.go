package segtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Nodes whose slot is contained in highlight are filled with a highlight color.
// highlight may be nil. A common choice is the result of tree.Cover(i, j).
func Tree2Dot[V any](tree *Tree[V], w io.Writer, highlight *bitset.BitSet) error {
	var nodelist, edgelist strings.Builder
	tree.EachNode(func(n Node[V]) bool {
		marked := highlight != nil && highlight.Test(uint(n.Slot))
		label := fmt.Sprintf("%s\\n%s", n.Span, dotEscape(fmt.Sprintf("%v", n.Value)))
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", n.Slot, label, nodeDotStyles(n.IsLeaf(), marked))
		if !n.IsLeaf() {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.Slot, n.Slot<<1)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", n.Slot, n.Slot<<1|1)
		}
		return true
	})
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		T().Errorf("segtree DOT: %s", err.Error())
		return err
	}
	for _, s := range []string{nodelist.String(), edgelist.String(), "}\n"} {
		if _, err := io.WriteString(w, s); err != nil {
			T().Errorf("segtree DOT: %s", err.Error())
			return err
		}
	}
	return nil
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolor)
	} else if !isleaf {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolor)
	}
	return s
}

const (
	hexcolor   = "#a3d7e4"
	hexhlcolor = "#FF9944"
)
