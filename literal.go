package jsonrepair

import (
	"regexp"

	"github.com/go-json-experiment/json"
)

// leadingZeroRe matches a number with a disallowed leading zero (e.g.
// "0789"); such numbers are repaired by quoting them as strings instead
// of silently dropping information a human likely meant literally.
var leadingZeroRe = regexp.MustCompile(`^-?0\d`)

// parseNumber parses a JSON number, repairing a lone trailing sign,
// decimal point, or exponent marker by appending a "0", and quoting
// numbers with a disallowed leading zero as strings.
func (p *parser) parseNumber() bool {
	start := p.i
	if p.i < len(p.text) && p.text[p.i] == codeMinus {
		p.i++
		if atEndOfNumber(p.text, p.i) {
			repairNumberEndingWithNumericSymbol(p.text, start, p.i, &p.output)
			return true
		}
		if !isDigit(p.text[p.i]) {
			p.i = start
			return false
		}
	}

	// JSON disallows leading zeros like "00789"; we accept them here and
	// decide below whether to repair by quoting, since a leading zero can
	// carry meaning (e.g. a zip code) that truncation would destroy.
	for p.i < len(p.text) && isDigit(p.text[p.i]) {
		p.i++
	}

	if p.i < len(p.text) && p.text[p.i] == codeDot {
		p.i++
		if atEndOfNumber(p.text, p.i) {
			repairNumberEndingWithNumericSymbol(p.text, start, p.i, &p.output)
			return true
		}
		if !isDigit(p.text[p.i]) {
			p.i = start
			return false
		}
		for p.i < len(p.text) && isDigit(p.text[p.i]) {
			p.i++
		}
	}

	if p.i < len(p.text) && (p.text[p.i] == codeLowercaseE || p.text[p.i] == codeUppercaseE) {
		p.i++
		if p.i < len(p.text) && (p.text[p.i] == codeMinus || p.text[p.i] == codePlus) {
			p.i++
		}
		if atEndOfNumber(p.text, p.i) {
			repairNumberEndingWithNumericSymbol(p.text, start, p.i, &p.output)
			return true
		}
		if !isDigit(p.text[p.i]) {
			p.i = start
			return false
		}
		for p.i < len(p.text) && isDigit(p.text[p.i]) {
			p.i++
		}
	}

	if !atEndOfNumber(p.text, p.i) {
		p.i = start
		return false
	}

	if p.i > start {
		num := string(p.text[start:p.i])
		if leadingZeroRe.MatchString(num) {
			p.output.WriteByte('"')
			p.output.WriteString(num)
			p.output.WriteByte('"')
		} else {
			p.output.WriteString(num)
		}
		return true
	}
	return false
}

// parseKeywords recognizes JSON keywords (true/false/null) and their
// Python-casing equivalents (True/False/None), normalizing to JSON.
func (p *parser) parseKeywords() bool {
	return p.parseKeyword("true", "true") ||
		p.parseKeyword("false", "false") ||
		p.parseKeyword("null", "null") ||
		p.parseKeyword("True", "true") ||
		p.parseKeyword("False", "false") ||
		p.parseKeyword("None", "null")
}

func (p *parser) parseKeyword(name, value string) bool {
	if len(p.text)-p.i >= len(name) && string(p.text[p.i:p.i+len(name)]) == name {
		p.output.WriteString(value)
		p.i += len(name)
		return true
	}
	return false
}

// parseUnquotedString parses an unquoted key or value, a MongoDB-style
// function call (NumberLong("2")), or a JSONP callback wrapper, quoting
// bare text and stripping the call syntax down to its argument. isKey
// narrows the scan so a colon always terminates an unquoted key.
func (p *parser) parseUnquotedString(isKey bool) bool {
	start := p.i

	if p.i >= len(p.text) {
		return false
	}

	if isFunctionNameCharStart(p.text[p.i]) {
		for p.i < len(p.text) && isFunctionNameChar(p.text[p.i]) {
			p.i++
		}

		j := p.i
		for j < len(p.text) && isWhitespace(p.text[j]) {
			j++
		}

		if j < len(p.text) && p.text[j] == codeOpenParenthesis {
			// repair a MongoDB function call like NumberLong("2"), or a
			// JSONP function call like callback({...});
			p.i = j + 1

			// Errors inside the call's argument are not fatal: the outer
			// call syntax is being stripped regardless, so a partially
			// parsed argument is acceptable.
			_, _ = p.parseValue()

			if p.i < len(p.text) && p.text[p.i] == codeCloseParenthesis {
				p.i++
				if p.i < len(p.text) && p.text[p.i] == codeSemicolon {
					p.i++
				}
			}

			return true
		}
	}

	isURL := false
	if !isKey {
		switch {
		case start+8 <= len(p.text) && string(p.text[start:start+8]) == "https://":
			isURL = true
		case start+7 <= len(p.text) && string(p.text[start:start+7]) == "http://":
			isURL = true
		case start+6 <= len(p.text) && string(p.text[start:start+6]) == "ftp://":
			isURL = true
		}
	}

	if isURL {
		for p.i < len(p.text) && isURLChar(p.text[p.i]) {
			p.i++
		}
	} else {
		for p.i < len(p.text) && !isUnquotedStringDelimiter(p.text[p.i]) && !isQuote(p.text[p.i]) {
			if isKey && p.text[p.i] == codeColon {
				break
			}
			p.i++
		}
	}

	if p.i <= start {
		return false
	}

	// back up over trailing whitespace so it doesn't end up inside the
	// quoted string
	for p.i > start && isWhitespace(p.text[p.i-1]) {
		p.i--
	}

	symbol := string(p.text[start:p.i])

	if symbol == "undefined" {
		p.output.WriteString("null")
	} else {
		repairedSymbol := make([]rune, 0, len(symbol))
		for _, char := range symbol {
			if isSingleQuoteLike(char) || isDoubleQuoteLike(char) {
				repairedSymbol = append(repairedSymbol, '"')
			} else {
				repairedSymbol = append(repairedSymbol, char)
			}
		}
		p.output.WriteByte('"')
		p.output.WriteString(string(repairedSymbol))
		p.output.WriteByte('"')
	}

	if p.i < len(p.text) && p.text[p.i] == codeDoubleQuote {
		p.i++
	}

	return true
}

// parseRegex wraps a /pattern/ regular expression literal, slashes
// included, in a JSON string; flags after the closing slash are not
// consumed as part of it. Marshaling through encoding escapes quotes, backslashes, and
// other special characters, which also prevents the repaired text from
// enabling script injection if later fed to something like eval.
func (p *parser) parseRegex() bool {
	if p.i >= len(p.text) || p.text[p.i] != codeSlash {
		return false
	}

	start := p.i
	p.i++

	for p.i < len(p.text) && (p.text[p.i] != codeSlash || p.text[p.i-1] == codeBackslash) {
		p.i++
	}

	if p.i < len(p.text) && p.text[p.i] == codeSlash {
		p.i++
	}

	regexContent := string(p.text[start:p.i])
	jsonBytes, _ := json.Marshal(regexContent)
	p.output.Write(jsonBytes)
	return true
}
