package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable, indented representation of a node
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(w, list[i], level+1)
		}

	case NodeTypeNumber, NodeTypeSymbol:
		fmt.Fprintf(w, "%#v (%v)\n", n.v, n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its text representation. Parsing the
// result yields a tree with the same shape.
func Encode(n *Node) []byte {
	var b strings.Builder
	encodeNode(&b, n)
	return []byte(b.String())
}

func encodeNode(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	switch n.Type() {
	case NodeTypeList:
		b.WriteByte('(')
		for i, child := range n.List() {
			if i > 0 {
				b.WriteByte(' ')
			}
			encodeNode(b, child)
		}
		b.WriteByte(')')

	case NodeTypeNumber:
		fmt.Fprintf(b, "%d", n.Int())

	case NodeTypeSymbol:
		b.WriteString(n.Name())

	default:
		panic("unknown node type")
	}
}
