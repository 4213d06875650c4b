package jsonrepair

import "strings"

// parseArray parses a JSON array, repairing missing/extra commas and a
// missing closing bracket. Returns (matched, error); error is non-nil
// when the nesting limit is exceeded or a nested value fails
// irrecoverably.
func (p *parser) parseArray() (bool, error) {
	if p.i >= len(p.text) || p.text[p.i] != codeOpeningBracket {
		return false, nil
	}

	p.depth++
	if p.depth > p.maxDepth {
		return false, newDepthExceededError(p.i)
	}
	defer func() { p.depth-- }()

	p.output.WriteRune(p.text[p.i])
	p.i++
	p.parseWhitespaceAndSkipComments(true)

	if p.skipCharacter(codeComma) {
		p.parseWhitespaceAndSkipComments(true)
	}

	initial := true
	for p.i < len(p.text) && p.text[p.i] != codeClosingBracket {
		if !initial {
			iBefore := p.i
			oBefore := p.output.Len()
			p.parseWhitespaceAndSkipComments(true)

			processedComma := p.parseCharacter(codeComma)
			if !processedComma {
				p.i = iBefore
				p.truncateOutput(oBefore)
				// repair missing comma
				p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), ","))
			}
		} else {
			initial = false
		}

		p.skipEllipsis()

		processedValue, err := p.parseValue()
		if err != nil {
			return false, err
		}

		// Clean up a trailing comma that ended up *inside* a JSON string
		// directly before its closing quote, e.g. an input like
		// "hello,world,"2 where the comma belongs between array items
		// but was swallowed into the first string. A bare "," value must
		// survive this cleanup, hence the length check below.
		if processedValue {
			outputStr := p.output.String()
			if strings.HasSuffix(outputStr, ",\"") {
				lastQuote := strings.LastIndex(outputStr[:len(outputStr)-2], "\"")
				if lastQuote != -1 && len(outputStr)-2-lastQuote > 2 {
					p.replaceOutput(outputStr[:len(outputStr)-2] + "\"")
				}
			}
		}

		if !processedValue {
			// repair trailing comma
			p.replaceOutput(stripLastOccurrence(p.output.String(), ",", false))
			break
		}
	}

	if p.i < len(p.text) && p.text[p.i] == codeClosingBracket {
		p.output.WriteRune(p.text[p.i])
		p.i++
	} else {
		// repair missing closing array bracket
		p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), "]"))
	}
	return true, nil
}

// parseNewlineDelimitedJSON repairs a stream of newline- or
// whitespace-separated JSON values into a single array by inserting the
// missing commas and wrapping the result in brackets.
func (p *parser) parseNewlineDelimitedJSON() {
	initial := true
	processedValue := true

	for processedValue {
		if !initial {
			processedComma := p.parseCharacter(codeComma)
			if !processedComma {
				p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), ","))
			}
		} else {
			initial = false
		}

		var err error
		processedValue, err = p.parseValue()
		if err != nil {
			processedValue = false
		}
	}

	if !processedValue {
		p.replaceOutput(stripLastOccurrence(p.output.String(), ",", false))
	}

	p.replaceOutput("[\n" + p.output.String() + "\n]")
}
