package yesparser

// ReadLine classifies one logical line and parses it into an element.
// Exactly one of the returns is non-nil: an element, or the line's error.
// literals may be nil, in which case only the built-in quote span applies.
func ReadLine(lineNumber int, line string, literals *LiteralSet) (ElementKind, *LineError) {
	if literals == nil {
		literals = NewLiteralSet()
	}

	s := Trim(line)
	n := len(s)
	if n == 0 {
		return nil, NewLineError(lineNumber, EolNoData)
	}

	type prefix int
	const (
		standard prefix = iota
		attribute
		global
	)
	kind := standard

	// Classify by the first non-space byte; a prefix byte tags the element
	// and the name starts after it.
	pos := 0
scan:
	for pos < n {
		switch s[pos] {
		case GlyphSpace:
			pos++
		case GlyphAt:
			if kind == attribute {
				return nil, NewLineError(lineNumber, BadTokenPosAttribute)
			}
			if kind == global {
				return nil, NewLineError(lineNumber, BadTokenPosBang)
			}
			kind = attribute
			pos++
		case GlyphBang:
			if kind == attribute {
				return nil, NewLineError(lineNumber, BadTokenPosAttribute)
			}
			if kind == global {
				return nil, NewLineError(lineNumber, BadTokenPosBang)
			}
			kind = global
			pos++
		case GlyphHash:
			if kind == standard {
				return NewComment(s[pos+1:]), nil
			}
			// A hash after a prefix byte is ordinary name material.
			break scan
		default:
			break scan
		}
	}

	// The name runs to the first space byte or end-of-line.
	end := n
	for i := pos; i < n; i++ {
		if s[i] == GlyphSpace {
			end = i
			break
		}
	}

	name := Unquote(Trim(s[pos:end]))
	if name == "" {
		switch kind {
		case attribute:
			return nil, NewLineError(lineNumber, EolMissingAttribute)
		case global:
			return nil, NewLineError(lineNumber, EolMissingGlobal)
		default:
			return nil, NewLineError(lineNumber, EolMissingElement)
		}
	}

	var el ElementKind
	switch kind {
	case attribute:
		el = NewAttribute(name)
	case global:
		el = NewGlobal(name)
	default:
		el = NewStandard(name)
	}

	tokens, _, unterminated := scanTokens(s, end, literals)
	if unterminated {
		return nil, NewLineError(lineNumber, UnterminatedQuote)
	}
	evaluateKeyvals(el, tokens)

	return el, nil
}
