package jsonrepair

import (
	"regexp"
	"strings"
)

// prevNonWhitespaceIndex walks backward from startIndex and returns the
// index of the nearest non-whitespace rune, or -1 if none remains.
func prevNonWhitespaceIndex(text []rune, startIndex int) int {
	prev := startIndex
	for prev >= 0 && isWhitespace(text[prev]) {
		prev--
	}
	return prev
}

// atEndOfNumber reports whether the cursor has reached a delimiter,
// whitespace, or the end of input — any of which terminates a number.
func atEndOfNumber(text []rune, i int) bool {
	return i >= len(text) || isDelimiter(text[i]) || isWhitespace(text[i])
}

// repairNumberEndingWithNumericSymbol appends a trailing zero to a number
// that was cut off right after a sign, decimal point, or exponent marker
// (e.g. "1." or "2e").
func repairNumberEndingWithNumericSymbol(text []rune, start, i int, output *strings.Builder) {
	output.WriteString(string(text[start:i]) + "0")
}

// stripLastOccurrence removes the last occurrence of textToStrip from
// text. When stripRemainingText is true everything from that occurrence
// onward is dropped instead of just the occurrence itself.
func stripLastOccurrence(text, textToStrip string, stripRemainingText bool) string {
	index := strings.LastIndex(text, textToStrip)
	if index == -1 {
		return text
	}
	if stripRemainingText {
		return text[:index]
	}
	return text[:index] + text[index+len(textToStrip):]
}

// insertBeforeLastWhitespace inserts textToInsert just before any run of
// trailing whitespace in s, so a repaired comma or bracket lands right
// after the last real value rather than after its trailing indentation.
func insertBeforeLastWhitespace(s, textToInsert string) string {
	if len(s) == 0 || !isWhitespace(rune(s[len(s)-1])) {
		return s + textToInsert
	}

	index := len(s) - 1
	for index >= 0 && isWhitespace(rune(s[index])) {
		index--
	}

	return s[:index+1] + textToInsert + s[index+1:]
}

// removeAtIndex removes count characters from text starting at start.
func removeAtIndex(text string, start, count int) string {
	return text[:start] + text[start+count:]
}

var commaOrNewlineTailRe = regexp.MustCompile(`"[ \t\r]*[,\n][ \t\r]*$`)

// endsWithCommaOrNewline reports whether text, ignoring trailing
// whitespace, ends with a comma or newline that sits outside of a quoted
// string.
func endsWithCommaOrNewline(text string) bool {
	if len(text) == 0 {
		return false
	}

	runes := []rune(text)
	i := len(runes) - 1
	for i >= 0 && (runes[i] == ' ' || runes[i] == '\t' || runes[i] == '\r') {
		i--
	}
	if i < 0 {
		return false
	}

	if runes[i] == ',' || runes[i] == '\n' {
		trimmed := strings.TrimSpace(text)
		if len(trimmed) > 0 && trimmed[len(trimmed)-1] == '"' {
			return commaOrNewlineTailRe.MatchString(text)
		}
		return true
	}

	return false
}
