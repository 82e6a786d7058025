// Package lexer turns source text into a flat sequence of tokens: numbers,
// symbols and parentheses.
package lexer

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/xiam/miischeme/errs"
)

type lexState func(*Lexer) lexState

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}
	s.Init(r)
	s.Error = func(*scanner.Scanner, string) {}

	return &Lexer{
		in:     s,
		tokens: []Token{},
		buf:    []rune{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens  []Token
	lastErr error

	buf []rune

	line, col           int
	startLine, startCol int
}

// Tokens returns the tokens found by Scan.
func (lx *Lexer) Tokens() []Token {
	return lx.tokens
}

// Scan reads the whole input and splits it into tokens. It stops at the
// first lexical error.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.lastErr
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tok Token) {
	tok.line, tok.col = lx.startLine, lx.startCol
	lx.tokens = append(lx.tokens, tok)
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)

	if r == runeNewLine {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isSeparator(r):
		return lexDefaultState
	case r == runeOpenParen:
		return lexEmit(OpenParen())
	case r == runeCloseParen:
		return lexEmit(CloseParen())
	case r == runeComment:
		return lexComment
	default:
		return lexWord
	}
}

func lexComment(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || p == runeNewLine {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	return lexDefaultState
}

func lexWord(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isWordBreak(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	if !looksNumeric(lx.buf) {
		return lexEmit(Symbol(string(lx.buf)))
	}

	text := string(lx.buf)
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		// only a range error is possible once the word looks numeric
		return lexStateError(errs.Lex(errs.MsgIntegerOutOfRange, text, lx.startLine, lx.startCol))
	}

	tok := Number(n)
	tok.lexeme = text
	return lexEmit(tok)
}

func lexEmit(tok Token) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tok)
		return lexDefaultState
	}
}

func lexStateError(err error) lexState {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize splits text into tokens, or fails with a lexical error if a
// numeric literal does not fit into an int64.
func Tokenize(text string) ([]Token, error) {
	lx := New(strings.NewReader(text))
	if err := lx.Scan(); err != nil {
		return nil, err
	}
	return lx.Tokens(), nil
}

// TokenizeBytes is like Tokenize for a slice of bytes.
func TokenizeBytes(in []byte) ([]Token, error) {
	return Tokenize(string(in))
}
