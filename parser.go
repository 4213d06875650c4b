// Package jsonrepair repairs malformed JSON text — the kind commonly
// produced by LLMs, hand-edited config files, or machine-garbled
// transport — into strictly valid JSON that preserves the author's
// intent wherever the input leaves room to infer it.
//
// Repair covers missing/extra quotes and commas, single and typographic
// quotes, JavaScript-style comments, Python keywords (True/False/None),
// unquoted keys and values, string concatenation, regex literals,
// Markdown code fences, newline-delimited JSON, and truncated input. When
// the input cannot be recovered, Repair returns a [*JSONRepairError]
// carrying the exact point of failure.
package jsonrepair

import (
	"fmt"
	"strings"
)

// parser holds the single mutable cursor, output buffer, and recursion
// depth shared by every recognizer. It is created fresh for each call to
// Repair/RepairUnits and never shared across goroutines.
type parser struct {
	text     []rune
	i        int
	output   strings.Builder
	depth    int
	maxDepth int
}

// Repair attempts to repair text into strictly valid JSON. Options such
// as [WithMaxDepth] configure recovery limits; the zero-value options
// match the reference parser's defaults.
func Repair(text string, opts ...Option) (string, error) {
	if len(text) == 0 {
		return "", newUnexpectedEndError(0)
	}

	cfg := newConfig(opts)
	p := &parser{text: []rune(text), maxDepth: cfg.maxDepth}

	p.parseMarkdownCodeBlock([]string{"```", "[```", "{```"})

	success, err := p.parseValue()
	if err != nil {
		return "", err
	}
	if !success {
		return "", newUnexpectedEndError(len(p.text))
	}

	p.parseMarkdownCodeBlock([]string{"```", "```]", "```}"})

	processedComma := p.parseCharacter(codeComma)
	if processedComma {
		p.parseWhitespaceAndSkipComments(true)
	}

	if p.i < len(p.text) && isStartOfValue(p.text[p.i]) && endsWithCommaOrNewline(p.output.String()) {
		if !processedComma {
			p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), ","))
		}
		p.parseNewlineDelimitedJSON()
	} else if processedComma {
		p.replaceOutput(stripLastOccurrence(p.output.String(), ",", false))
	}

	// repair redundant end brackets
	for p.i < len(p.text) && (p.text[p.i] == codeClosingBrace || p.text[p.i] == codeClosingBracket) {
		p.i++
		p.parseWhitespaceAndSkipComments(true)
	}

	p.parseWhitespaceAndSkipComments(true)

	if p.i >= len(p.text) {
		return p.output.String(), nil
	}

	message := "Unexpected character " + quoteChar(p.text[p.i])
	return "", newUnexpectedCharacterError(message, p.i)
}

// JSONRepair is a deprecated alias for [Repair].
//
// Deprecated: Use [Repair] instead.
func JSONRepair(text string) (string, error) {
	return Repair(text)
}

// replaceOutput swaps the whole output buffer for s. The recognizers
// occasionally need to rewrite already-written output (moving a comma
// before trailing whitespace, stripping a trailing comma); strings.Builder
// has no in-place edit, so a reset-and-rewrite is the idiomatic way to do
// that in Go.
func (p *parser) replaceOutput(s string) {
	p.output.Reset()
	p.output.WriteString(s)
}

func (p *parser) truncateOutput(n int) {
	p.replaceOutput(p.output.String()[:n])
}

// quoteChar renders r the way %q would (Go-syntax quoting, escaping
// control and non-printable runes), matching the format the reference
// parsers use for the offending character in an error message.
func quoteChar(r rune) string {
	return fmt.Sprintf("%q", string(r))
}

// parseValue dispatches to the recognizer for whichever value kind starts
// at the cursor. Returns (matched, error); error is non-nil only for
// irrecoverable input.
func (p *parser) parseValue() (bool, error) {
	p.parseWhitespaceAndSkipComments(true)

	processedObj, err := p.parseObject()
	if err != nil {
		return false, err
	}
	if processedObj {
		p.parseWhitespaceAndSkipComments(true)
		return true, nil
	}

	processed, err := p.parseArray()
	if err != nil {
		return false, err
	}
	if !processed {
		stringProcessed, err := p.parseString(false, -1)
		if err != nil {
			return false, err
		}
		processed = stringProcessed ||
			p.parseNumber() ||
			p.parseKeywords() ||
			p.parseUnquotedString(false) ||
			p.parseRegex()
	}
	p.parseWhitespaceAndSkipComments(true)

	return processed, nil
}

// parseMarkdownCodeBlock strips a leading or trailing Markdown fence
// (``` or ```json, etc.) along with any language tag that follows it. The
// whitespace after the fence is copied to the output, with the special
// Unicode spaces written as a plain space.
func (p *parser) parseMarkdownCodeBlock(blocks []string) bool {
	if !p.skipMarkdownCodeBlock(blocks) {
		return false
	}

	if p.i < len(p.text) && isFunctionNameCharStart(p.text[p.i]) {
		for p.i < len(p.text) && isFunctionNameChar(p.text[p.i]) {
			p.i++
		}
	}

	for p.i < len(p.text) && (isWhitespace(p.text[p.i]) || isSpecialWhitespace(p.text[p.i])) {
		if isWhitespace(p.text[p.i]) {
			p.output.WriteRune(p.text[p.i])
		} else {
			p.output.WriteRune(' ')
		}
		p.i++
	}

	return true
}

func (p *parser) skipMarkdownCodeBlock(blocks []string) bool {
	p.parseWhitespace(true)

	for _, block := range blocks {
		blockRunes := []rune(block)
		end := p.i + len(blockRunes)
		if end > len(p.text) {
			continue
		}
		match := true
		for j := range blockRunes {
			if p.text[p.i+j] != blockRunes[j] {
				match = false
				break
			}
		}
		if match {
			p.i = end
			return true
		}
	}
	return false
}
