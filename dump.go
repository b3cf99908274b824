package art

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/art/arena"
	"golang.org/x/term"
)

// dumpPalette holds the colours used by Dump.
type dumpPalette struct {
	data, inner, edge, link *color.Color
}

func newDumpPalette(colored bool) dumpPalette {
	p := dumpPalette{
		data:  color.New(color.FgGreen, color.Bold),
		inner: color.New(color.FgCyan),
		edge:  color.New(color.FgYellow),
		link:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.data, p.inner, p.edge, p.link} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// dumpStyle checks whether w is a terminal. If so, output is coloured and
// edge labels are truncated to fit the terminal's width.
func dumpStyle(w io.Writer) (colored bool, width int) {
	width = 80
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		colored = true
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 20 {
			width = tw
		}
	}
	return
}

// Dump writes a human readable rendering of the internal structure of a tree
// to w (for debugging purposes). Nodes are listed in pre-order, followed by a
// forward and a backward walk of the ordered list.
func Dump[V any](tree *Tree[V], w io.Writer) {
	colored, width := dumpStyle(w)
	pal := newDumpPalette(colored)
	maxLabel := width / 3
	fmt.Fprintf(w, "size: %d, node count: %d\n", tree.Len(), tree.NodeCount())
	err := tree.each(func(ref arena.Ref, n *node[V], depth int) error {
		indent := strings.Repeat("    ", depth)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s[%d] %s", indent, ref, n.kind)
		if n.parent != arena.Nil {
			sb.WriteString(pal.edge.Sprintf(" %s→", printable([]byte{n.pbyte}, 1)))
		}
		fmt.Fprintf(&sb, " subfix “%s”", printable(n.subfix, maxLabel))
		if n.hasValue {
			sb.WriteString(pal.data.Sprintf(" {%s: %v}", printable(n.key, maxLabel), n.value))
			sb.WriteString(pal.link.Sprintf(" prev=%d next=%d", n.prev, n.next))
		}
		tab := tree.table(n)
		if tab.count() > 0 {
			fmt.Fprintf(&sb, " children(%d/%d){", tab.count(), tab.capacity())
			for i, e := range tab.appendChildren(nil) {
				if i > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "%s: %d", pal.edge.Sprint(printable([]byte{e.c}, 1)), e.ref)
			}
			sb.WriteString("}")
		}
		line := sb.String()
		if !n.hasValue {
			line = pal.inner.Sprint(line)
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
	if err != nil {
		T().Errorf("tree dump: %s", err.Error())
		return
	}
	if tree.sentinel == arena.Nil {
		return
	}
	dumpList(tree, w, pal, "forward", func(n *node[V]) arena.Ref { return n.next })
	dumpList(tree, w, pal, "backward", func(n *node[V]) arena.Ref { return n.prev })
}

func dumpList[V any](tree *Tree[V], w io.Writer, pal dumpPalette, dir string,
	step func(*node[V]) arena.Ref) {
	//
	fmt.Fprintf(w, "%s: [%d]", dir, tree.sentinel)
	for ref := step(tree.node(tree.sentinel)); ref != tree.sentinel; {
		n := tree.node(ref)
		fmt.Fprintf(w, " %s [%d]%s", pal.link.Sprint("-->"), ref,
			pal.data.Sprintf("{%s, %v}", printable(n.key, 0), n.value))
		ref = step(n)
	}
	fmt.Fprintln(w)
}
