package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt     TokenType
	lexeme string
	num    int64

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, lexeme string, line int, col int) *Token {
	return &Token{
		tt:     tt,
		lexeme: lexeme,
		line:   line,
		col:    col,
	}
}

// Number creates a number token with no position.
func Number(n int64) Token {
	return Token{tt: TokenNumber, lexeme: fmt.Sprintf("%d", n), num: n}
}

// Symbol creates a symbol token with no position.
func Symbol(name string) Token {
	return Token{tt: TokenSymbol, lexeme: name}
}

// OpenParen creates an open parenthesis token with no position.
func OpenParen() Token {
	return Token{tt: TokenOpenParen, lexeme: string(runeOpenParen)}
}

// CloseParen creates a close parenthesis token with no position.
func CloseParen() Token {
	return Token{tt: TokenCloseParen, lexeme: string(runeCloseParen)}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.lexeme
}

// Int returns the value of a number token.
func (t Token) Int() int64 {
	return t.num
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Equal compares two tokens ignoring their position. Numbers are compared by
// value, so "+5" equals "5".
func (t Token) Equal(o Token) bool {
	if t.tt != o.tt {
		return false
	}
	if t.tt == TokenNumber {
		return t.num == o.num
	}
	return t.lexeme == o.lexeme
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v %q [%d %d])", t.tt, t.lexeme, t.line, t.col)
}
