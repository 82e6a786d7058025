package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenNumber               // Signed decimal integer: "42", "-7"
	TokenSymbol               // Any other word: "+", "define", "x"
	TokenOpenParen            // Open parenthesis: "("
	TokenCloseParen           // Close parenthesis: ")"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:    "invalid",
	TokenNumber:     "number",
	TokenSymbol:     "symbol",
	TokenOpenParen:  "open_paren",
	TokenCloseParen: "close_paren",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// character classes
const (
	runeOpenParen  = '('
	runeCloseParen = ')'
	runeComment    = '#'
	runeNewLine    = '\n'
)

var (
	separators = []rune(" \f\t\r\n")
	digits     = []rune("0123456789")
	signs      = []rune("+-")
)

func isAnyOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

var (
	isSeparator = isAnyOf(separators)
	isDigit     = isAnyOf(digits)
	isSign      = isAnyOf(signs)
)

func isWordBreak(r rune) bool {
	return isSeparator(r) || r == runeOpenParen || r == runeCloseParen || r == runeComment
}

// looksNumeric reports whether a word is an optional sign followed by one or
// more digits.
func looksNumeric(word []rune) bool {
	if len(word) > 0 && isSign(word[0]) {
		word = word[1:]
	}
	if len(word) == 0 {
		return false
	}
	for _, r := range word {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
