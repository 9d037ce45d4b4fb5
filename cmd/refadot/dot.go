package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/refaengine/refa/dfa"
	"github.com/refaengine/refa/nfa"
	"github.com/refaengine/refa/re"
)

// byteLabel renders a byte for a DOT edge label, following the
// print-if-printable / hex-escape-otherwise convention every graph
// renderer in the example pack uses for non-ASCII bytes.
func byteLabel(b byte) string {
	if strconv.IsPrint(rune(b)) && b < 0x80 {
		return string(rune(b))
	}
	return fmt.Sprintf("\\\\x%02X", b)
}

// writeDotAST renders an AST as a DOT digraph. In verbose mode, once
// re.Annotate has run, every node's label is annotated with its nullable
// bit, firstpos and lastpos.
func writeDotAST(out io.Writer, root *re.Node, verbose bool) {
	fmt.Fprintln(out, "digraph ast {")
	next := 0
	var walk func(n *re.Node) int
	walk = func(n *re.Node) int {
		id := next
		next++
		label := n.Kind.String()
		switch n.Kind {
		case re.KindChar:
			label = fmt.Sprintf("Char '%s'", byteLabel(n.Byte))
		}
		if verbose && n.FirstPos != nil {
			label = fmt.Sprintf("%s\\nnullable=%v\\nfirst=%v\\nlast=%v",
				label, n.Nullable, n.FirstPos.Sorted(), n.LastPos.Sorted())
		}
		fmt.Fprintf(out, "  %d [label=%q];\n", id, label)
		if n.Child != nil {
			childID := walk(n.Child)
			fmt.Fprintf(out, "  %d -> %d;\n", id, childID)
		}
		for _, c := range n.Children {
			childID := walk(c)
			fmt.Fprintf(out, "  %d -> %d;\n", id, childID)
		}
		return id
	}
	walk(root)
	fmt.Fprintln(out, "}")
}

// writeDotNFA renders a Thompson NFA as a DOT digraph: accepting states
// (those with a set terminal id) are drawn as double circles.
func writeDotNFA(out io.Writer, n *nfa.NFA) {
	fmt.Fprintln(out, "digraph nfa {")
	fmt.Fprintln(out, "  rankdir=LR;")
	for i, node := range n.Nodes {
		if node.Terminal != nfa.NoTerminal {
			fmt.Fprintf(out, "  %d [shape=doublecircle,label=\"%d\\nid=%d\"];\n", i, i, node.Terminal)
		} else {
			fmt.Fprintf(out, "  %d [shape=circle];\n", i)
		}
	}
	for i, node := range n.Nodes {
		for _, target := range node.EpsEdges {
			fmt.Fprintf(out, "  %d -> %d [label=\"\xce\xb5\"];\n", i, target)
		}
		for b, targets := range node.Edges {
			for _, target := range targets {
				fmt.Fprintf(out, "  %d -> %d [label=%q];\n", i, target, byteLabel(b))
			}
		}
	}
	fmt.Fprintln(out, "}")
}

// writeDotDFA renders a DFA as a DOT digraph. Edges sharing a source and
// destination across many bytes are collapsed into one labeled edge (a
// dense byte class like [0-9] would otherwise draw 10 parallel edges).
func writeDotDFA(out io.Writer, d *dfa.DFA) {
	fmt.Fprintln(out, "digraph dfa {")
	fmt.Fprintln(out, "  rankdir=LR;")
	for i, node := range d.Nodes {
		if node.IsAccepting() {
			fmt.Fprintf(out, "  %d [shape=doublecircle,label=\"%d\\nid=%d\"];\n", i, i, node.Terminal)
		} else {
			fmt.Fprintf(out, "  %d [shape=circle];\n", i)
		}
	}
	for i, node := range d.Nodes {
		byTarget := make(map[dfa.StateID][]byte)
		for b := 0; b < 256; b++ {
			if target, ok := node.Edges[byte(b)]; ok {
				byTarget[target] = append(byTarget[target], byte(b))
			}
		}
		for target, bytes := range byTarget {
			fmt.Fprintf(out, "  %d -> %d [label=%q];\n", i, target, classLabel(bytes))
		}
	}
	fmt.Fprintln(out, "}")
}

// classLabel renders a set of bytes sharing one DFA edge as a compact
// bracket-class label, collapsing contiguous runs into a-b ranges.
func classLabel(bytes []byte) string {
	if len(bytes) == 256 {
		return "."
	}
	label := "["
	i := 0
	for i < len(bytes) {
		start := bytes[i]
		end := start
		for i+1 < len(bytes) && bytes[i+1] == end+1 {
			i++
			end = bytes[i]
		}
		if start == end {
			label += byteLabel(start)
		} else {
			label += byteLabel(start) + "-" + byteLabel(end)
		}
		i++
	}
	return label + "]"
}
