// Package ast defines the expression tree built by the parser: numbers,
// symbols and parenthesized lists.
package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/miischeme/lexer"
)

var errNotAList = errors.New("nodes of type value can't accept children")

// Node represents leaf of the AST
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNumber creates and returns a node of type "number"
func NewNumber(tok *lexer.Token, n int64) *Node {
	return newNode(NodeTypeNumber, tok, n)
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewList creates and returns a node of type "list" holding the given
// children.
func NewList(tok *lexer.Token, children ...*Node) *Node {
	list := make([]*Node, 0, len(children))
	list = append(list, children...)
	return newNode(NodeTypeList, tok, list)
}

// Number is a shortcut for a number node with no token.
func Number(n int64) *Node {
	return NewNumber(nil, n)
}

// Symbol is a shortcut for a symbol node with no token.
func Symbol(name string) *Node {
	return NewSymbol(nil, name)
}

// List is a shortcut for a list node with no token.
func List(children ...*Node) *Node {
	return NewList(nil, children...)
}

// Push appends a child node to a node of type "list".
func (n *Node) Push(node *Node) error {
	if !n.IsList() {
		return errNotAList
	}
	n.v = append(n.v.([]*Node), node)
	return nil
}

// Token returns the token associated to the node, nil for nodes built by
// hand.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the position of the node in the source, or zeros.
func (n *Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Int returns the value of a number node.
func (n *Node) Int() int64 {
	return n.v.(int64)
}

// Name returns the name of a symbol node.
func (n *Node) Name() string {
	return n.v.(string)
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// IsValue returns true if the node is a number or a symbol
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// IsSymbol returns true if the node is a symbol.
func (n *Node) IsSymbol() bool {
	return n.nt == NodeTypeSymbol
}

func (n *Node) String() string {
	if n.IsList() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}
