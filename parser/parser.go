// Package parser builds expression trees out of tokens.
package parser

import (
	"github.com/xiam/miischeme/ast"
	"github.com/xiam/miischeme/errs"
	"github.com/xiam/miischeme/lexer"
)

// DefaultMaxDepth bounds the nesting of lists.
const DefaultMaxDepth = 10000

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting of lists. Zero disables the bound.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// Parser is a recursive descent parser with one token of lookahead.
type Parser struct {
	tokens []lexer.Token
	offset int

	depth    int
	maxDepth int
}

// New creates a parser over the given tokens.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// peek returns the next token without consuming it, or nil at the end of
// the input.
func (p *Parser) peek() *lexer.Token {
	if p.offset >= len(p.tokens) {
		return nil
	}
	return &p.tokens[p.offset]
}

func (p *Parser) next() *lexer.Token {
	tok := p.peek()
	if tok != nil {
		p.offset++
	}
	return tok
}

// More reports whether there are tokens left to parse.
func (p *Parser) More() bool {
	return p.peek() != nil
}

// Next parses one complete expression.
func (p *Parser) Next() (*ast.Node, error) {
	tok := p.next()
	if tok == nil {
		return nil, errs.Syntax(errs.MsgEmptyInput, "", 0, 0)
	}

	switch tok.Type() {
	case lexer.TokenNumber:
		return ast.NewNumber(tok, tok.Int()), nil

	case lexer.TokenSymbol:
		return ast.NewSymbol(tok, tok.Text()), nil

	case lexer.TokenOpenParen:
		return p.parseList(tok)

	case lexer.TokenCloseParen:
		return nil, tokenError(errs.MsgUnexpectedClose, tok)
	}

	panic("unreachable")
}

func (p *Parser) parseList(open *lexer.Token) (*ast.Node, error) {
	p.depth++
	defer func() {
		p.depth--
	}()
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		line, col := open.Pos()
		return nil, errs.Syntax(errs.MsgTooDeep, open.Text(), line, col).WithArgs(p.maxDepth)
	}

	list := ast.NewList(open)

	for {
		tok := p.peek()
		if tok == nil {
			line, col := open.Pos()
			return nil, errs.Syntax(errs.MsgMissingClose, open.Text(), line, col)
		}

		if tok.Is(lexer.TokenCloseParen) {
			p.next()
			return list, nil
		}

		child, err := p.Next()
		if err != nil {
			return nil, err
		}
		if err := list.Push(child); err != nil {
			return nil, err
		}
	}
}

func tokenError(msg errs.Message, tok *lexer.Token) error {
	line, col := tok.Pos()
	return errs.Syntax(msg, tok.Text(), line, col)
}

// Parse requires the tokens to hold exactly one complete expression and
// returns its tree.
func Parse(tokens []lexer.Token, opts ...Option) (*ast.Node, error) {
	p := New(tokens, opts...)

	node, err := p.Next()
	if err != nil {
		return nil, err
	}

	if p.More() {
		return nil, tokenError(errs.MsgTrailingTokens, p.peek())
	}

	return node, nil
}

// ParseAll parses a sequence of top-level expressions. An empty token
// sequence yields no expressions.
func ParseAll(tokens []lexer.Token, opts ...Option) ([]*ast.Node, error) {
	p := New(tokens, opts...)

	nodes := []*ast.Node{}
	for p.More() {
		node, err := p.Next()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	return nodes, nil
}

// ParseString tokenizes and parses a single expression.
func ParseString(text string, opts ...Option) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, opts...)
}

// ParseAllString tokenizes and parses a sequence of expressions.
func ParseAllString(text string, opts ...Option) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ParseAll(tokens, opts...)
}
