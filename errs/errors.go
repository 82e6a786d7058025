// Package errs defines the closed set of failures produced by the lexer,
// the parser and the evaluator, and renders them as localized text.
package errs

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Kind identifies a class of failure.
type Kind uint8

// List of error kinds
const (
	KindInvalid Kind = iota
	KindLex
	KindSyntax
	KindUndefinedVariable
	KindRuntime
)

var kindNames = map[Kind]string{
	KindInvalid:           "invalid",
	KindLex:               "lex",
	KindSyntax:            "syntax",
	KindUndefinedVariable: "undefined_variable",
	KindRuntime:           "runtime",
}

func (k Kind) String() string {
	if v, ok := kindNames[k]; ok {
		return v
	}
	return kindNames[KindInvalid]
}

// Error is a failure raised by any stage of the pipeline. It carries enough
// structure (offending name, fragment, position) to be rendered in any
// supported language without looking at the source again.
type Error struct {
	Kind Kind

	// Name is the offending symbol of an undefined variable.
	Name string

	// Fragment is the piece of source text the error refers to, if any.
	Fragment string

	// Line and Col point at the fragment, 1-based. Zero means unknown.
	Line int
	Col  int

	msg  Message
	args []interface{}
}

// Sentinels that match any error of the given kind with errors.Is.
var (
	ErrLex               = &Error{Kind: KindLex}
	ErrSyntax            = &Error{Kind: KindSyntax}
	ErrUndefinedVariable = &Error{Kind: KindUndefinedVariable}
	ErrRuntime           = &Error{Kind: KindRuntime}
)

// Sentinel returns an error that matches, with errors.Is, errors of the
// given kind carrying the given message.
func Sentinel(kind Kind, msg Message) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Lex creates a lexical error about the given fragment.
func Lex(msg Message, fragment string, line, col int) *Error {
	return &Error{
		Kind:     KindLex,
		Fragment: fragment,
		Line:     line,
		Col:      col,
		msg:      msg,
		args:     fragmentArgs(msg, fragment),
	}
}

// Syntax creates a syntax error. The fragment is the text of the token that
// triggered it, if any.
func Syntax(msg Message, fragment string, line, col int) *Error {
	return &Error{
		Kind:     KindSyntax,
		Fragment: fragment,
		Line:     line,
		Col:      col,
		msg:      msg,
		args:     fragmentArgs(msg, fragment),
	}
}

// fragmentArgs passes the fragment to messages that have a verb for it.
func fragmentArgs(msg Message, fragment string) []interface{} {
	if !strings.Contains(string(msg), "%") {
		return nil
	}
	return []interface{}{fragment}
}

// Undefined creates an error for a symbol with no binding.
func Undefined(name string) *Error {
	return &Error{
		Kind: KindUndefinedVariable,
		Name: name,
		msg:  MsgUndefinedVariable,
		args: []interface{}{name},
	}
}

// Runtime creates a runtime error. Args are the message arguments, in the
// order the message expects them.
func Runtime(msg Message, args ...interface{}) *Error {
	return &Error{
		Kind: KindRuntime,
		msg:  msg,
		args: args,
	}
}

// At returns a copy of the error pointing at the given position.
func (e *Error) At(line, col int) *Error {
	c := *e
	c.Line, c.Col = line, col
	return &c
}

// WithArgs returns a copy of the error with the given message arguments.
func (e *Error) WithArgs(args ...interface{}) *Error {
	c := *e
	c.args = args
	return &c
}

// Message returns the key of the detail message.
func (e *Error) Message() Message {
	return e.msg
}

// Args returns the arguments of the detail message.
func (e *Error) Args() []interface{} {
	return e.args
}

// Error renders the error in English.
func (e *Error) Error() string {
	return e.Localize(language.English)
}

// Localize renders the error in the language closest to tag.
func (e *Error) Localize(tag language.Tag) string {
	p := printer(tag)

	detail := p.Sprintf(string(e.msg), e.args...)

	var s string
	switch e.Kind {
	case KindUndefinedVariable:
		s = detail
	case KindLex:
		s = p.Sprintf(string(MsgLexError), detail)
	case KindSyntax:
		s = p.Sprintf(string(MsgSyntaxError), detail)
	case KindRuntime:
		s = p.Sprintf(string(MsgRuntimeError), detail)
	default:
		s = detail
	}

	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, s)
	}
	return s
}

// Is reports whether target is a sentinel matching this error: same kind,
// and same message when the sentinel has one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.msg == "" || t.msg == e.msg
}
