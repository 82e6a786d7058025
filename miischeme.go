// Package miischeme is an interpreter for a small Lisp-family expression
// language. Source text goes through the lexer and the parser and the
// resulting tree is evaluated against a chain of lexically scoped
// environments.
//
//	ip := miischeme.NewInterpreter()
//	ip.EvalString("(define x 10)")
//	v, err := ip.EvalString("(+ x 1)") // 11
package miischeme

import (
	"github.com/xiam/miischeme/ast"
	"github.com/xiam/miischeme/parser"
)

// Version of the interpreter.
const Version = "0.1.0"

// Interpreter evaluates source text against one persistent global
// environment, so later inputs see the definitions of earlier ones. A
// failed evaluation leaves the environment usable.
type Interpreter struct {
	global *Environment
	ev     *Evaluator
}

// NewInterpreter creates an interpreter with an empty global environment.
func NewInterpreter(opts ...Option) *Interpreter {
	return &Interpreter{
		global: NewEnvironment().Name("global"),
		ev:     NewEvaluator(opts...),
	}
}

// Global returns the global environment.
func (ip *Interpreter) Global() *Environment {
	return ip.global
}

// Eval evaluates a tree against the global environment.
func (ip *Interpreter) Eval(node *ast.Node) (*Value, error) {
	return ip.ev.Eval(node, ip.global)
}

// Parse parses source text holding exactly one expression. Lists may nest
// as deep as the evaluation depth bound allows.
func (ip *Interpreter) Parse(src string) (*ast.Node, error) {
	return parser.ParseString(src, ip.parserOptions()...)
}

func (ip *Interpreter) parserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(ip.ev.maxDepth)}
}

// EvalString evaluates source text holding exactly one expression.
func (ip *Interpreter) EvalString(src string) (*Value, error) {
	node, err := ip.Parse(src)
	if err != nil {
		return nil, err
	}
	return ip.Eval(node)
}

// EvalProgram evaluates every expression in src in order and returns the
// value of the last one. It stops at the first error.
func (ip *Interpreter) EvalProgram(src string) (*Value, error) {
	nodes, err := parser.ParseAllString(src, ip.parserOptions()...)
	if err != nil {
		return nil, err
	}

	value := Nil
	for _, node := range nodes {
		if value, err = ip.Eval(node); err != nil {
			return nil, err
		}
	}
	return value, nil
}
