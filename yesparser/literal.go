package yesparser

import "fmt"

// Literal is a pair of span marker bytes. Between a Begin byte and its
// paired End byte, reserved bytes lose their lexical meaning, so values
// can carry delimiters, equal signs and spaces verbatim. Self-paired
// literals (Begin == End, like the built-in double quote) toggle.
type Literal struct {
	Begin byte
	End   byte
}

// NewLiteral validates that neither marker byte is reserved by the grammar.
func NewLiteral(begin, end byte) (Literal, error) {
	if IsReserved(begin) {
		return Literal{}, fmt.Errorf("literal begin %q cannot be a reserved character", begin)
	}
	if IsReserved(end) {
		return Literal{}, fmt.Errorf("literal end %q cannot be a reserved character", end)
	}
	return Literal{Begin: begin, End: end}, nil
}

// QuoteLiteral is the built-in double-quote span, implicitly present in
// every parse.
func QuoteLiteral() Literal {
	return Literal{Begin: GlyphQuote, End: GlyphQuote}
}

// LiteralSet answers "does this byte open a span, and what closes it?"
// in O(1) via a table over all 256 byte values. Registering two literals
// with the same begin byte keeps the last one.
type LiteralSet struct {
	end  [256]byte
	open [256]bool
}

// NewLiteralSet builds a set from the given literals plus the implicit
// quote literal.
func NewLiteralSet(literals ...Literal) *LiteralSet {
	s := &LiteralSet{}
	s.Add(QuoteLiteral())
	for _, l := range literals {
		s.Add(l)
	}
	return s
}

// Add registers a literal pair.
func (s *LiteralSet) Add(l Literal) {
	s.open[l.Begin] = true
	s.end[l.Begin] = l.End
}

// BeginsSpan reports whether b opens a span, and the byte that closes it.
func (s *LiteralSet) BeginsSpan(b byte) (end byte, ok bool) {
	if s == nil || !s.open[b] {
		return 0, false
	}
	return s.end[b], true
}
