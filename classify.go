package jsonrepair

import "regexp"

// Character code constants used throughout the parser. Named the way the
// reference grammar names them, so a reader can match a classifier here
// back to the byte it tests without decoding a rune literal each time.
const (
	codeBackslash               = 0x5c // "\"
	codeSlash                   = 0x2f // "/"
	codeAsterisk                = 0x2a // "*"
	codeOpeningBrace            = 0x7b // "{"
	codeClosingBrace             = 0x7d // "}"
	codeOpeningBracket          = 0x5b // "["
	codeClosingBracket          = 0x5d // "]"
	codeOpenParenthesis         = 0x28 // "("
	codeCloseParenthesis        = 0x29 // ")"
	codeSpace                   = 0x20 // " "
	codeNewline                 = 0xa  // "\n"
	codeTab                     = 0x9  // "\t"
	codeReturn                  = 0xd  // "\r"
	codeBackspace               = 0x08 // "\b"
	codeFormFeed                = 0x0c // "\f"
	codeDoubleQuote             = 0x22 // "
	codePlus                    = 0x2b // "+"
	codeMinus                   = 0x2d // "-"
	codeQuote                   = 0x27 // "'"
	codeZero                    = 0x30 // "0"
	codeNine                    = 0x39 // "9"
	codeComma                   = 0x2c // ","
	codeDot                     = 0x2e // "."
	codeColon                   = 0x3a // ":"
	codeSemicolon               = 0x3b // ";"
	codeUppercaseA              = 0x41 // "A"
	codeLowercaseA              = 0x61 // "a"
	codeUppercaseE              = 0x45 // "E"
	codeLowercaseE              = 0x65 // "e"
	codeUppercaseF              = 0x46 // "F"
	codeLowercaseF              = 0x66 // "f"
	codeNonBreakingSpace        = 0xa0
	codeEnQuad                  = 0x2000
	codeHairSpace                = 0x200a
	codeNarrowNoBreakSpace      = 0x202f
	codeMediumMathematicalSpace = 0x205f
	codeIdeographicSpace        = 0x3000
	codeDoubleQuoteLeft         = 0x201c // “
	codeDoubleQuoteRight        = 0x201d // ”
	codeQuoteLeft               = 0x2018 // ‘
	codeQuoteRight              = 0x2019 // ’
	codeGraveAccent             = 0x60   // `
	codeAcuteAccent             = 0xb4   // ´
)

// controlCharacters maps a raw control code point to its JSON escape.
var controlCharacters = map[rune]string{
	codeBackspace: `\b`,
	codeFormFeed:  `\f`,
	codeNewline:   `\n`,
	codeReturn:    `\r`,
	codeTab:       `\t`,
}

// escapeCharacters lists which letters may validly follow a backslash
// inside a JSON string (the 'u' case is handled separately since it takes
// four trailing hex digits rather than being a fixed single-char escape).
var escapeCharacters = map[rune]string{
	'"':  "\"",
	'\\': "\\",
	'/':  "/",
	'b':  "\b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
}

var (
	regexDelimiter           = regexp.MustCompile(`^[,:\[\]/{}()\n\+]$`)
	regexUnquotedStringDelim = regexp.MustCompile(`^[,\[\]/{}\n\+]$`)
	regexStartOfValue        = regexp.MustCompile(`^[{[\w-]$`)
	regexURLStart            = regexp.MustCompile(`^(https?|ftp|mailto|file|data|irc)://`)
	regexURLChar             = regexp.MustCompile(`^[A-Za-z0-9\-._~:/?#@!$&'()*+;=]$`)
)

func isHex(c rune) bool {
	return (c >= codeZero && c <= codeNine) ||
		(c >= codeUppercaseA && c <= codeUppercaseF) ||
		(c >= codeLowercaseA && c <= codeLowercaseF)
}

func isDigit(c rune) bool {
	return c >= codeZero && c <= codeNine
}

// isValidStringCharacter reports whether c may appear unescaped in a JSON
// string; control codes below U+0020 must use an escape instead.
func isValidStringCharacter(c rune) bool {
	return c >= 0x0020
}

func isDelimiter(c rune) bool {
	return regexDelimiter.MatchString(string(c))
}

func isUnquotedStringDelimiter(c rune) bool {
	return regexUnquotedStringDelim.MatchString(string(c))
}

func isStartOfValue(c rune) bool {
	return regexStartOfValue.MatchString(string(c)) || isQuote(c)
}

func isControlCharacter(c rune) bool {
	return c == codeNewline || c == codeReturn || c == codeTab ||
		c == codeBackspace || c == codeFormFeed
}

func isWhitespace(c rune) bool {
	return c == codeSpace || c == codeNewline || c == codeTab || c == codeReturn
}

func isWhitespaceExceptNewline(c rune) bool {
	return c == codeSpace || c == codeTab || c == codeReturn
}

// isSpecialWhitespace reports the "exotic" Unicode space variants that get
// normalized to a plain ASCII space in the repaired output.
func isSpecialWhitespace(c rune) bool {
	return c == codeNonBreakingSpace ||
		(c >= codeEnQuad && c <= codeHairSpace) ||
		c == codeNarrowNoBreakSpace ||
		c == codeMediumMathematicalSpace ||
		c == codeIdeographicSpace
}

func isQuote(c rune) bool {
	return isDoubleQuoteLike(c) || isSingleQuoteLike(c)
}

func isDoubleQuoteLike(c rune) bool {
	return c == codeDoubleQuote || c == codeDoubleQuoteLeft || c == codeDoubleQuoteRight
}

func isDoubleQuote(c rune) bool {
	return c == codeDoubleQuote
}

// isSingleQuoteLike matches any single-quote variant. parseString uses it
// as the end-quote test for strings opened with a typographic quote, a
// backtick or an acute accent, so mismatched closers are accepted (opening
// with ` and closing with ', for example); a string opened with a plain '
// is closed only by '.
func isSingleQuoteLike(c rune) bool {
	return c == codeQuote || c == codeQuoteLeft || c == codeQuoteRight ||
		c == codeGraveAccent || c == codeAcuteAccent
}

func isSingleQuote(c rune) bool {
	return c == codeQuote
}

func isFunctionNameCharStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

func isFunctionNameChar(c rune) bool {
	return isFunctionNameCharStart(c) || isDigit(c)
}

func isURLChar(c rune) bool {
	return regexURLChar.MatchString(string(c))
}
