package errs

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message is the key of a localizable message. Keys are the English
// format strings.
type Message string

// Kind wrappers
const (
	MsgLexError     Message = "lex error: %s"
	MsgSyntaxError  Message = "syntax error: %s"
	MsgRuntimeError Message = "runtime error: %s"
)

// Lexer
const (
	MsgIntegerOutOfRange Message = "integer literal %q is out of range"
)

// Parser
const (
	MsgEmptyInput      Message = "empty input"
	MsgMissingClose    Message = "missing closing parenthesis"
	MsgUnexpectedClose Message = "unexpected %q"
	MsgTrailingTokens  Message = "unexpected %q after a complete expression"
	MsgTooDeep         Message = "expression nested deeper than %d levels"
)

// Evaluator
const (
	MsgUndefinedVariable Message = "undefined variable %q"
	MsgNotAnOperator     Message = "%s is not an operator"
	MsgNotANumber        Message = "%s expects numbers, got %s"
	MsgArity             Message = "%s expects %d arguments, got %d"
	MsgMinArity          Message = "%s expects at least %d arguments, got %d"
	MsgDivisionByZero    Message = "division by zero"
	MsgOverflow          Message = "integer overflow in %s"
	MsgBadName           Message = "%s expects a symbol name, got %s"
	MsgBadForm           Message = "malformed %s form"
	MsgCannotQuote       Message = "cannot quote a list"
	MsgMaxDepth          Message = "maximum evaluation depth %d exceeded"
)

// Kirundi is the language the interpreter speaks by default.
var Kirundi = language.MustParse("rn")

// Supported lists the languages with a complete translation. The first one
// is the fallback.
var Supported = []language.Tag{
	language.English,
	Kirundi,
}

var translations = map[Message]string{
	MsgLexError:     "Hari ikosa mu gusoma inyandiko: %s",
	MsgSyntaxError:  "Hari ikosa mu nyandiko: %s",
	MsgRuntimeError: "Ikibazo igihe ushitseko: %s",

	MsgIntegerOutOfRange: "igitigiri %q kirarenze urugero",

	MsgEmptyInput:      "nta kintu canditswe",
	MsgMissingClose:    "harabuze ')' yugara",
	MsgUnexpectedClose: "%q ntiyari yitezwe",
	MsgTrailingTokens:  "%q ntiyari yitezwe inyuma y'imvugo yuzuye",
	MsgTooDeep:         "imvugo irenze inzego %d",

	MsgUndefinedVariable: "Ndababariwe, ariko sinzi ico ‘%s’ bivuga. Woba wibagiye kuyishiraho?",
	MsgNotAnOperator:     "%s si igikorwa",
	MsgNotANumber:        "%s isaba ibitigiri, yahawe %s",
	MsgArity:             "%s isaba ibintu %d, yahawe %d",
	MsgMinArity:          "%s isaba nibura ibintu %d, yahawe %d",
	MsgDivisionByZero:    "ntibishoboka kugabanya na zero",
	MsgOverflow:          "igitigiri kirarenze urugero muri %s",
	MsgBadName:           "%s isaba izina, yahawe %s",
	MsgBadForm:           "%s yanditswe nabi",
	MsgCannotQuote:       "urutonde ntirushobora gusubirwamwo",
	MsgMaxDepth:          "uburebure ntarengwa %d bwarenzwe",
}

var (
	cat      *catalog.Builder
	matcher  language.Matcher
	printers map[language.Tag]*message.Printer
)

var languageNames = map[string]language.Tag{
	"english": language.English,
	"kirundi": Kirundi,
	"rundi":   Kirundi,
}

func init() {
	cat = catalog.NewBuilder(catalog.Fallback(language.English))

	for msg, rn := range translations {
		if err := cat.SetString(language.English, string(msg), string(msg)); err != nil {
			panic(err)
		}
		if err := cat.SetString(Kirundi, string(msg), rn); err != nil {
			panic(err)
		}
	}

	matcher = language.NewMatcher(Supported)

	printers = make(map[language.Tag]*message.Printer, len(Supported))
	for _, tag := range Supported {
		printers[tag] = message.NewPrinter(tag, message.Catalog(cat))
	}
}

// MatchLanguage maps a user supplied language (a BCP 47 tag such as "rn" or
// "en-US", or a plain name such as "kirundi") to the closest supported
// language. Unknown input maps to English.
func MatchLanguage(s string) language.Tag {
	s = strings.ToLower(strings.TrimSpace(s))
	if tag, ok := languageNames[s]; ok {
		return tag
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Supported[0]
	}
	return match(tag)
}

func match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

func printer(tag language.Tag) *message.Printer {
	if p, ok := printers[tag]; ok {
		return p
	}
	return printers[match(tag)]
}

// Localize renders err in the language closest to tag. Errors that are not
// part of the taxonomy are rendered with their own Error method.
func Localize(err error, tag language.Tag) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Localize(tag)
	}
	return err.Error()
}
