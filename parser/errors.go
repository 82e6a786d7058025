package parser

import (
	"errors"

	"github.com/xiam/miischeme/errs"
)

// Syntax errors returned by the parser. They match with errors.Is.
var (
	ErrEmptyInput      = errs.Sentinel(errs.KindSyntax, errs.MsgEmptyInput)
	ErrUnexpectedEOF   = errs.Sentinel(errs.KindSyntax, errs.MsgMissingClose)
	ErrUnexpectedClose = errs.Sentinel(errs.KindSyntax, errs.MsgUnexpectedClose)
	ErrTrailingTokens  = errs.Sentinel(errs.KindSyntax, errs.MsgTrailingTokens)
	ErrTooDeep         = errs.Sentinel(errs.KindSyntax, errs.MsgTooDeep)
)

// IsIncomplete reports whether err means the input ended in the middle of
// an expression, so that more input could complete it.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF)
}
