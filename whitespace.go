package jsonrepair

import "strings"

// parseWhitespaceAndSkipComments consumes whitespace and, alternating
// with it, any number of line or block comments — a malformed document
// might interleave "/* note */\n  " several times before the next token.
func (p *parser) parseWhitespaceAndSkipComments(skipNewline bool) bool {
	start := p.i
	p.parseWhitespace(skipNewline)
	for {
		changed := p.parseComment()
		if changed {
			changed = p.parseWhitespace(skipNewline)
		}
		if !changed {
			break
		}
	}
	return p.i > start
}

// parseWhitespace consumes a run of whitespace, normalizing the "special"
// Unicode space variants (non-breaking space, ideographic space, etc.) to
// a plain ASCII space as it copies them to the output.
func (p *parser) parseWhitespace(skipNewline bool) bool {
	start := p.i
	var whitespace strings.Builder

	isW := isWhitespace
	if !skipNewline {
		isW = isWhitespaceExceptNewline
	}

	for p.i < len(p.text) && (isW(p.text[p.i]) || isSpecialWhitespace(p.text[p.i])) {
		if !isSpecialWhitespace(p.text[p.i]) {
			whitespace.WriteRune(p.text[p.i])
		} else {
			whitespace.WriteRune(' ')
		}
		p.i++
	}

	if whitespace.Len() > 0 {
		p.output.WriteString(whitespace.String())
		return true
	}
	return p.i > start
}

func (p *parser) atEndOfBlockComment() bool {
	return p.i+1 < len(p.text) && p.text[p.i] == codeAsterisk && p.text[p.i+1] == codeSlash
}

// parseComment skips (without emitting) a "//" line comment or a "/* */"
// block comment starting at the cursor.
func (p *parser) parseComment() bool {
	if p.i+1 >= len(p.text) {
		return false
	}

	switch {
	case p.text[p.i] == codeSlash && p.text[p.i+1] == codeAsterisk:
		for p.i < len(p.text) && !p.atEndOfBlockComment() {
			p.i++
		}
		if p.i+2 <= len(p.text) {
			p.i += 2
		}
		return true
	case p.text[p.i] == codeSlash && p.text[p.i+1] == codeSlash:
		for p.i < len(p.text) && p.text[p.i] != codeNewline {
			p.i++
		}
		return true
	}
	return false
}

// parseCharacter consumes and emits the rune at the cursor if it equals
// code.
func (p *parser) parseCharacter(code rune) bool {
	if p.i < len(p.text) && p.text[p.i] == code {
		p.output.WriteRune(p.text[p.i])
		p.i++
		return true
	}
	return false
}

// skipCharacter consumes, without emitting, the rune at the cursor if it
// equals code.
func (p *parser) skipCharacter(code rune) bool {
	if p.i < len(p.text) && p.text[p.i] == code {
		p.i++
		return true
	}
	return false
}

func (p *parser) skipEscapeCharacter() bool {
	return p.skipCharacter(codeBackslash)
}

// skipEllipsis drops a "..." placeholder (and an optional trailing comma)
// sometimes left by LLMs to mean "more items here".
func (p *parser) skipEllipsis() bool {
	p.parseWhitespaceAndSkipComments(true)

	if p.i+2 < len(p.text) &&
		p.text[p.i] == codeDot &&
		p.text[p.i+1] == codeDot &&
		p.text[p.i+2] == codeDot {
		p.i += 3
		p.parseWhitespaceAndSkipComments(true)
		p.skipCharacter(codeComma)
		return true
	}
	return false
}
