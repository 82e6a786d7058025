package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestErrorIs(t *testing.T) {
	testCases := []struct {
		Err    error
		Target error
		Is     bool
	}{
		{Undefined("x"), ErrUndefinedVariable, true},
		{Undefined("x"), ErrRuntime, false},
		{Runtime(MsgDivisionByZero), ErrRuntime, true},
		{Syntax(MsgMissingClose, "", 0, 0), ErrSyntax, true},
		{Syntax(MsgMissingClose, "", 0, 0), Sentinel(KindSyntax, MsgMissingClose), true},
		{Syntax(MsgEmptyInput, "", 0, 0), Sentinel(KindSyntax, MsgMissingClose), false},
		{Lex(MsgIntegerOutOfRange, "99999999999999999999", 1, 1), ErrLex, true},
		{fmt.Errorf("wrapped: %w", Undefined("y")), ErrUndefinedVariable, true},
		{errors.New("plain"), ErrRuntime, false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Is, errors.Is(testCases[i].Err, testCases[i].Target), "case %d", i)
	}
}

func TestErrorEnglish(t *testing.T) {
	testCases := []struct {
		Err *Error
		Out string
	}{
		{Undefined("x"), `undefined variable "x"`},
		{Syntax(MsgMissingClose, "", 0, 0), "syntax error: missing closing parenthesis"},
		{Syntax(MsgUnexpectedClose, ")", 1, 5), `1:5: syntax error: unexpected ")"`},
		{Lex(MsgIntegerOutOfRange, "99999999999999999999", 2, 3), `2:3: lex error: integer literal "99999999999999999999" is out of range`},
		{Runtime(MsgNotANumber, "+", ":true"), "runtime error: + expects numbers, got :true"},
		{Runtime(MsgArity, "not", 1, 2), "runtime error: not expects 1 arguments, got 2"},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, testCases[i].Err.Error())
	}
}

func TestErrorKirundi(t *testing.T) {
	{
		s := Undefined("x").Localize(Kirundi)
		assert.Equal(t, "Ndababariwe, ariko sinzi ico ‘x’ bivuga. Woba wibagiye kuyishiraho?", s)
	}

	{
		s := Syntax(MsgMissingClose, "", 0, 0).Localize(Kirundi)
		assert.Equal(t, "Hari ikosa mu nyandiko: harabuze ')' yugara", s)
	}

	{
		s := Syntax(MsgTooDeep, "(", 1, 4).WithArgs(3).Localize(Kirundi)
		assert.Equal(t, "1:4: Hari ikosa mu nyandiko: imvugo irenze inzego 3", s)
	}

	{
		s := Runtime(MsgDivisionByZero).Localize(Kirundi)
		assert.Equal(t, "Ikibazo igihe ushitseko: ntibishoboka kugabanya na zero", s)
	}
}

func TestLocalizeFallback(t *testing.T) {
	err := Undefined("x")

	assert.Equal(t, err.Error(), Localize(err, language.French))
	assert.Equal(t, err.Localize(Kirundi), Localize(fmt.Errorf("line 3: %w", err), Kirundi))
	assert.Equal(t, "plain", Localize(errors.New("plain"), Kirundi))
	assert.Equal(t, "", Localize(nil, Kirundi))
}

func TestMatchLanguage(t *testing.T) {
	testCases := []struct {
		In  string
		Out language.Tag
	}{
		{"rn", Kirundi},
		{"rn-BI", Kirundi},
		{"Kirundi", Kirundi},
		{"en", language.English},
		{"en-US", language.English},
		{"fr", language.English},
		{"", language.English},
		{"not a tag", language.English},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, MatchLanguage(testCases[i].In), "input %q", testCases[i].In)
	}
}

func TestErrorAt(t *testing.T) {
	err := Undefined("x")
	moved := err.At(3, 4)

	assert.Equal(t, 0, err.Line)
	assert.Equal(t, 3, moved.Line)
	assert.Equal(t, 4, moved.Col)
	assert.True(t, errors.Is(moved, ErrUndefinedVariable))
}

func TestEveryMessageTranslated(t *testing.T) {
	for msg := range translations {
		en := printer(language.English).Sprintf(string(msg), "a", "b", "c")
		rn := printer(Kirundi).Sprintf(string(msg), "a", "b", "c")
		assert.NotEqual(t, en, rn, "message %q", msg)
	}
}
