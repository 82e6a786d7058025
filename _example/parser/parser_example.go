package main

import (
	"log"
	"os"

	"github.com/xiam/miischeme/ast"
	"github.com/xiam/miischeme/parser"
)

func main() {
	input := `(let ((a 1) (b (+ a 2))) (nimba (bingana a b) a (* a b)))`

	root, err := parser.ParseString(input)
	if err != nil {
		log.Fatal("parser.ParseString:", err)
	}

	ast.Print(os.Stdout, root)
}
