package art

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/art/arena"
)

// each walks the tree in pre-order, visiting children in byte order.
func (t *Tree[V]) each(fn func(ref arena.Ref, n *node[V], depth int) error) error {
	if t == nil || t.root == arena.Nil {
		return nil
	}
	var walk func(ref arena.Ref, depth int) error
	walk = func(ref arena.Ref, depth int) error {
		n := t.node(ref)
		if err := fn(ref, n, depth); err != nil {
			return err
		}
		for _, e := range t.table(n).appendChildren(nil) {
			if err := walk(e.ref, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(t.root, 0)
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func ToDot[V any](tree *Tree[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	var nodelist, edgelist strings.Builder
	err := tree.each(func(ref arena.Ref, n *node[V], depth int) error {
		styles := nodeDotStyles(n.hasValue)
		label := fmt.Sprintf("%s\\n“%s”", n.kind, dotEscape(printable(n.subfix, 24)))
		if n.hasValue {
			label += fmt.Sprintf("\\n= %s", dotEscape(fmt.Sprintf("%v", n.value)))
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ref, label, styles)
		for _, e := range tree.table(n).appendChildren(nil) {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=\"%s\"];\n", ref, e.ref,
				dotEscape(printable([]byte{e.c}, 1)))
		}
		return nil
	})
	if err != nil {
		T().Errorf("tree DOT: %s", err.Error())
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isdata bool) string {
	s := ",style=filled"
	if isdata {
		s += ",fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=white"
		s += ",shape=ellipse"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// printable renders a byte string for diagnostic output, escaping
// non-printable bytes. Output is truncated after max bytes.
func printable(b []byte, max int) string {
	var sb strings.Builder
	for i, c := range b {
		if max > 0 && i >= max {
			sb.WriteString("…")
			break
		}
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	return sb.String()
}
