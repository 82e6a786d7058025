package miischeme

import (
	"errors"

	"github.com/xiam/miischeme/ast"
	"github.com/xiam/miischeme/errs"
)

// DefaultMaxDepth bounds the nesting of list evaluation, including nested
// function calls.
const DefaultMaxDepth = 10000

type specialForm uint8

const (
	formInvalid specialForm = iota
	formDefine
	formUndefine
	formQuote
	formIf
	formBegin
	formLet
	formLambda
)

// specialForms maps the head symbols evaluated with their own rules. The
// Kirundi names are aliases.
var specialForms = map[string]specialForm{
	"define":   formDefine,
	"shiraho":  formDefine,
	"undefine": formUndefine,
	"quote":    formQuote,
	"if":       formIf,
	"nimba":    formIf,
	"begin":    formBegin,
	"let":      formLet,
	"lambda":   formLambda,
}

// elseKeyword may precede the alternative of an if form.
const elseKeyword = "kiretse"

// IsSpecialForm reports whether name is the head of a special form.
func IsSpecialForm(name string) bool {
	_, ok := specialForms[name]
	return ok
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth sets the maximum nesting of list evaluation. Zero disables
// the bound.
func WithMaxDepth(n int) Option {
	return func(e *Evaluator) {
		e.maxDepth = n
	}
}

// Evaluator walks expression trees. It is not safe for concurrent use.
type Evaluator struct {
	maxDepth int
	depth    int
}

// NewEvaluator creates an evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval evaluates node against env with a default evaluator.
func Eval(node *ast.Node, env *Environment) (*Value, error) {
	return NewEvaluator().Eval(node, env)
}

// Eval evaluates node against env. A nil env is an empty environment that
// is discarded afterwards.
func (e *Evaluator) Eval(node *ast.Node, env *Environment) (*Value, error) {
	if node == nil {
		return Nil, nil
	}
	if env == nil {
		env = NewEnvironment()
	}

	switch node.Type() {
	case ast.NodeTypeNumber:
		return NewInt(node.Int()), nil

	case ast.NodeTypeSymbol:
		return e.evalSymbol(node, env)

	case ast.NodeTypeList:
		e.depth++
		defer func() {
			e.depth--
		}()
		if e.maxDepth > 0 && e.depth > e.maxDepth {
			return nil, locate(errs.Runtime(errs.MsgMaxDepth, e.maxDepth), node)
		}
		return e.evalList(node, env)
	}

	panic("unreachable")
}

func (e *Evaluator) evalSymbol(node *ast.Node, env *Environment) (*Value, error) {
	name := node.Name()

	value, err := env.Lookup(name)
	if err == nil {
		return value, nil
	}

	if value, ok := universe[name]; ok {
		return value, nil
	}

	return nil, locate(err, node)
}

func (e *Evaluator) evalList(node *ast.Node, env *Environment) (*Value, error) {
	list := node.List()
	if len(list) == 0 {
		return Nil, nil
	}

	head := list[0]
	if head.IsSymbol() {
		if form, ok := specialForms[head.Name()]; ok {
			value, err := e.evalSpecial(form, head.Name(), list[1:], env)
			if err != nil {
				return nil, locate(err, node)
			}
			return value, nil
		}
	}

	fn, err := e.Eval(head, env)
	if err != nil {
		return nil, err
	}
	if !fn.IsOperator() {
		return nil, locate(errs.Runtime(errs.MsgNotAnOperator, string(ast.Encode(head))), node)
	}

	args := make([]*Value, 0, len(list)-1)
	for _, operand := range list[1:] {
		arg, err := e.Eval(operand, env)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	name := fn.Name()
	if name == "" {
		name = string(ast.Encode(head))
	}

	value, err := e.apply(name, fn, args)
	if err != nil {
		return nil, locate(err, node)
	}
	return value, nil
}

func (e *Evaluator) apply(name string, fn *Value, args []*Value) (*Value, error) {
	switch fn.Type {
	case ValueTypeBuiltin:
		logger.Printf("apply: %s %v", name, args)
		return fn.Builtin()(args)

	case ValueTypeFunction:
		c := fn.Closure()
		if len(args) != len(c.Params) {
			return nil, errs.Runtime(errs.MsgArity, name, len(c.Params), len(args))
		}

		callEnv := NewChildEnvironment(c.Env).Name(name)
		for i := range c.Params {
			callEnv.Define(c.Params[i], args[i])
		}
		return e.evalBody(c.Body, callEnv)
	}

	return nil, errs.Runtime(errs.MsgNotAnOperator, fn.String())
}

// evalBody evaluates a sequence of expressions in order and returns the
// value of the last one, or nil when there are none.
func (e *Evaluator) evalBody(body []*ast.Node, env *Environment) (*Value, error) {
	value := Nil
	for _, node := range body {
		var err error
		if value, err = e.Eval(node, env); err != nil {
			return nil, err
		}
	}
	return value, nil
}

func (e *Evaluator) evalSpecial(form specialForm, head string, operands []*ast.Node, env *Environment) (*Value, error) {
	switch form {
	case formDefine:
		return e.evalDefine(head, operands, env)
	case formUndefine:
		return e.evalUndefine(head, operands, env)
	case formQuote:
		return e.evalQuote(head, operands)
	case formIf:
		return e.evalIf(head, operands, env)
	case formBegin:
		return e.evalBody(operands, env)
	case formLet:
		return e.evalLet(head, operands, env)
	case formLambda:
		return e.evalLambda(head, operands, env)
	}

	panic("unreachable")
}

func symbolName(head string, node *ast.Node) (string, error) {
	if !node.IsSymbol() {
		return "", errs.Runtime(errs.MsgBadName, head, string(ast.Encode(node)))
	}
	return node.Name(), nil
}

// (define name expr)
func (e *Evaluator) evalDefine(head string, operands []*ast.Node, env *Environment) (*Value, error) {
	if len(operands) != 2 {
		return nil, errs.Runtime(errs.MsgArity, head, 2, len(operands))
	}

	name, err := symbolName(head, operands[0])
	if err != nil {
		return nil, err
	}

	value, err := e.Eval(operands[1], env)
	if err != nil {
		return nil, err
	}

	value = value.Named(name)
	env.Define(name, value)
	return value, nil
}

// (undefine name)
func (e *Evaluator) evalUndefine(head string, operands []*ast.Node, env *Environment) (*Value, error) {
	if len(operands) != 1 {
		return nil, errs.Runtime(errs.MsgArity, head, 1, len(operands))
	}

	name, err := symbolName(head, operands[0])
	if err != nil {
		return nil, err
	}

	env.Remove(name)
	return Nil, nil
}

// (quote x)
func (e *Evaluator) evalQuote(head string, operands []*ast.Node) (*Value, error) {
	if len(operands) != 1 {
		return nil, errs.Runtime(errs.MsgArity, head, 1, len(operands))
	}

	operand := operands[0]
	switch operand.Type() {
	case ast.NodeTypeNumber:
		return NewInt(operand.Int()), nil
	case ast.NodeTypeSymbol:
		return NewSymbol(operand.Name()), nil
	}

	return nil, errs.Runtime(errs.MsgCannotQuote)
}

// (if cond then [else])
// (nimba cond then [kiretse else])
func (e *Evaluator) evalIf(head string, operands []*ast.Node, env *Environment) (*Value, error) {
	if len(operands) == 4 {
		if !operands[2].IsSymbol() || operands[2].Name() != elseKeyword {
			return nil, errs.Runtime(errs.MsgBadForm, head)
		}
		operands = []*ast.Node{operands[0], operands[1], operands[3]}
	}
	if len(operands) == 3 && operands[2].IsSymbol() && operands[2].Name() == elseKeyword {
		return nil, errs.Runtime(errs.MsgBadForm, head)
	}
	if len(operands) != 2 && len(operands) != 3 {
		return nil, errs.Runtime(errs.MsgBadForm, head)
	}

	cond, err := e.Eval(operands[0], env)
	if err != nil {
		return nil, err
	}

	if cond.Truthy() {
		return e.Eval(operands[1], env)
	}
	if len(operands) == 3 {
		return e.Eval(operands[2], env)
	}
	return Nil, nil
}

// (let ((name expr) ...) body...)
func (e *Evaluator) evalLet(head string, operands []*ast.Node, env *Environment) (*Value, error) {
	if len(operands) < 1 || !operands[0].IsList() {
		return nil, errs.Runtime(errs.MsgBadForm, head)
	}

	scope := NewChildEnvironment(env).Name(head)

	for _, binding := range operands[0].List() {
		if !binding.IsList() || len(binding.List()) != 2 {
			return nil, errs.Runtime(errs.MsgBadForm, head)
		}

		pair := binding.List()
		name, err := symbolName(head, pair[0])
		if err != nil {
			return nil, err
		}

		value, err := e.Eval(pair[1], scope)
		if err != nil {
			return nil, err
		}
		scope.Define(name, value.Named(name))
	}

	return e.evalBody(operands[1:], scope)
}

// (lambda (params...) body...)
func (e *Evaluator) evalLambda(head string, operands []*ast.Node, env *Environment) (*Value, error) {
	if len(operands) < 1 || !operands[0].IsList() {
		return nil, errs.Runtime(errs.MsgBadForm, head)
	}

	params := make([]string, 0, len(operands[0].List()))
	for _, param := range operands[0].List() {
		name, err := symbolName(head, param)
		if err != nil {
			return nil, err
		}
		params = append(params, name)
	}

	return NewFunction(&Closure{
		Params: params,
		Body:   operands[1:],
		Env:    env,
	}), nil
}

// locate attaches the position of node to err, unless err already has one.
func locate(err error, node *ast.Node) error {
	var e *errs.Error
	if !errors.As(err, &e) || e.Line > 0 {
		return err
	}
	line, col := node.Pos()
	if line == 0 {
		return err
	}
	return e.At(line, col)
}
