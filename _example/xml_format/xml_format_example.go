package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/miischeme/ast"
	"github.com/xiam/miischeme/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if node.IsList() {
		fmt.Printf("%s<%s>\n", indent, node.Type())
		children := node.List()
		for i := range children {
			printIndentedTree(children[i], indentationLevel+1)
		}
		fmt.Printf("%s</%s>\n", indent, node.Type())
		return
	}
	fmt.Printf("%s<%s>%s</%s>\n", indent, node.Type(), ast.Encode(node), node.Type())
}

func main() {
	input := `(define fact (lambda (n) (if (<= n 1) 1 (* n (fact (- n 1))))))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	printTree(root)
}
