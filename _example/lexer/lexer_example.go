package main

import (
	"fmt"
	"log"

	"github.com/xiam/miischeme/lexer"
)

func main() {
	input := `
		(define square # comment
			(lambda (x) (* x x)))
		(square -12)
	`

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
