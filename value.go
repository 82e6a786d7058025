package miischeme

import (
	"fmt"

	"github.com/xiam/miischeme/ast"
)

// Builtin is an operator implemented in Go. It receives its operands
// already evaluated, left to right.
type Builtin func(args []*Value) (*Value, error)

// Closure is a function created by lambda. It keeps the environment it was
// created in; every call runs in a fresh child of that environment.
type Closure struct {
	Params []string
	Body   []*ast.Node
	Env    *Environment
}

type ValueType uint8

const (
	ValueTypeNil ValueType = iota
	ValueTypeInt
	ValueTypeBool
	ValueTypeSymbol
	ValueTypeBuiltin
	ValueTypeFunction
)

var valueTypes = map[ValueType]string{
	ValueTypeNil:      "nil",
	ValueTypeInt:      "int",
	ValueTypeBool:     "bool",
	ValueTypeSymbol:   "symbol",
	ValueTypeBuiltin:  "builtin",
	ValueTypeFunction: "function",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is the result of evaluating an expression. Values are never
// modified after they are created.
type Value struct {
	v    interface{}
	name string

	Type ValueType
}

var (
	Nil   = &Value{Type: ValueTypeNil}
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

func NewInt(n int64) *Value {
	return &Value{v: n, Type: ValueTypeInt}
}

func NewBool(b bool) *Value {
	if b {
		return True
	}
	return False
}

func NewSymbol(name string) *Value {
	return &Value{v: name, Type: ValueTypeSymbol}
}

func NewBuiltin(name string, fn Builtin) *Value {
	return &Value{v: fn, name: name, Type: ValueTypeBuiltin}
}

func NewFunction(c *Closure) *Value {
	return &Value{v: c, Type: ValueTypeFunction}
}

// NewValue wraps a Go value.
func NewValue(value interface{}) (*Value, error) {
	switch v := value.(type) {
	case nil:
		return Nil, nil
	case *Value:
		return v, nil
	case int:
		return NewInt(int64(v)), nil
	case int64:
		return NewInt(v), nil
	case bool:
		return NewBool(v), nil
	case Builtin:
		return NewBuiltin("", v), nil
	case func(args []*Value) (*Value, error):
		return NewBuiltin("", v), nil
	case *Closure:
		return NewFunction(v), nil
	}
	return Nil, fmt.Errorf("invalid value %v", value)
}

// Named returns a copy of a builtin or function value carrying a name. Other
// values, and values that already have a name, are returned as they are.
func (v *Value) Named(name string) *Value {
	if v.name != "" {
		return v
	}
	if v.Type != ValueTypeFunction && v.Type != ValueTypeBuiltin {
		return v
	}
	c := *v
	c.name = name
	return &c
}

// Name returns the name of a builtin or function value.
func (v *Value) Name() string {
	return v.name
}

func (v *Value) String() string {
	switch v.Type {
	case ValueTypeNil:
		return ":nil"
	case ValueTypeBool:
		if v.Bool() {
			return ":true"
		}
		return ":false"
	case ValueTypeInt:
		return fmt.Sprintf("%d", v.Int())
	case ValueTypeSymbol:
		return v.Symbol()
	case ValueTypeBuiltin:
		return fmt.Sprintf("<builtin %s>", v.name)
	case ValueTypeFunction:
		if v.name == "" {
			return fmt.Sprintf("<function/%d>", len(v.Closure().Params))
		}
		return fmt.Sprintf("<function %s/%d>", v.name, len(v.Closure().Params))
	}
	return fmt.Sprintf("%v", v.v)
}

func (v *Value) Int() int64 {
	return v.v.(int64)
}

func (v *Value) Bool() bool {
	return v.v.(bool)
}

func (v *Value) Symbol() string {
	return v.v.(string)
}

func (v *Value) Builtin() Builtin {
	return v.v.(Builtin)
}

func (v *Value) Closure() *Closure {
	return v.v.(*Closure)
}

// IsOperator reports whether the value can be applied to operands.
func (v *Value) IsOperator() bool {
	return v.Type == ValueTypeBuiltin || v.Type == ValueTypeFunction
}

// Truthy reports whether the value counts as true in a condition. Only nil
// and false are false.
func (v *Value) Truthy() bool {
	switch v.Type {
	case ValueTypeNil:
		return false
	case ValueTypeBool:
		return v.Bool()
	}
	return true
}

// Equal compares values of the same type. Operators are equal only to
// themselves.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || v.Type != o.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNil:
		return true
	case ValueTypeInt:
		return v.Int() == o.Int()
	case ValueTypeBool:
		return v.Bool() == o.Bool()
	case ValueTypeSymbol:
		return v.Symbol() == o.Symbol()
	case ValueTypeFunction:
		return v.Closure() == o.Closure()
	}
	return false
}
