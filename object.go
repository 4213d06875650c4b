package jsonrepair

import "strings"

// parseObject parses a JSON object, repairing missing/extra commas,
// missing colons, unquoted keys, trailing commas, and a missing closing
// brace. Returns (matched, error); error is non-nil when a key or colon is
// unambiguously required but absent, when the nesting limit is exceeded,
// or when a nested key or value fails irrecoverably.
func (p *parser) parseObject() (bool, error) {
	if p.i >= len(p.text) || p.text[p.i] != codeOpeningBrace {
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

	// repair: skip leading comma like in {, message: "hi"}
	if p.skipCharacter(codeComma) {
		p.parseWhitespaceAndSkipComments(true)
	}

	initial := true
	for p.i < len(p.text) && p.text[p.i] != codeClosingBrace {
		if !initial {
			iBefore := p.i
			oBefore := p.output.Len()
			processedComma := p.parseCharacter(codeComma)
			if processedComma {
				// The comma we just wrote may sit after previously
				// written whitespace (a newline plus indentation); move
				// it before that whitespace so the repaired output
				// matches what a human would have typed.
				temp := p.output.String()
				if strings.HasSuffix(temp, ",") {
					temp = temp[:len(temp)-1]
					temp = insertBeforeLastWhitespace(temp, ",")

					if idx := strings.LastIndex(temp, "\n"); idx != -1 {
						j := idx + 1
						for j < len(temp) && (temp[j] == ' ' || temp[j] == '\t') {
							j++
						}
						if j == len(temp) {
							temp = temp[:idx+1]
						}
					}
					p.replaceOutput(temp)
				}
			} else {
				// repair missing comma
				p.i = iBefore
				p.truncateOutput(oBefore)
				p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), ","))
			}
		} else {
			initial = false
		}

		p.skipEllipsis()

		stringProcessed, err := p.parseString(false, -1)
		if err != nil {
			return false, err
		}
		processedKey := stringProcessed || p.parseUnquotedString(true)
		if !processedKey {
			if p.i >= len(p.text) ||
				p.text[p.i] == codeClosingBrace ||
				p.text[p.i] == codeOpeningBrace ||
				p.text[p.i] == codeClosingBracket ||
				p.text[p.i] == codeOpeningBracket ||
				p.text[p.i] == 0 {
				// repair trailing comma
				p.replaceOutput(stripLastOccurrence(p.output.String(), ",", false))
			} else {
				return false, newObjectKeyExpectedError(p.i)
			}
			break
		}

		p.parseWhitespaceAndSkipComments(true)
		processedColon := p.parseCharacter(codeColon)
		truncatedText := p.i >= len(p.text)
		if !processedColon {
			if (p.i < len(p.text) && isStartOfValue(p.text[p.i])) || truncatedText {
				// repair missing colon
				p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), ":"))
			} else {
				return false, newColonExpectedError(p.i)
			}
		}

		processedValue, err := p.parseValue()
		if err != nil {
			return false, err
		}
		if !processedValue {
			if processedColon || truncatedText {
				// repair missing object value
				p.output.WriteString("null")
			} else {
				return false, nil
			}
		}
	}

	if p.i < len(p.text) && p.text[p.i] == codeClosingBrace {
		p.output.WriteRune(p.text[p.i])
		p.i++
	} else {
		// repair missing end bracket
		p.replaceOutput(insertBeforeLastWhitespace(p.output.String(), "}"))
	}
	return true, nil
}
