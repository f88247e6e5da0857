// Package yes parses YES documents: line-oriented configuration and
// script files where each non-empty line is one element. The parser core
// lives in the yesparser package; this package drives it over a byte
// source, fusing backslash-continued lines, attaching attribute elements
// to the standard element that follows them, and hoisting globals to the
// front of the results.
package yes

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

// ParseLines parses lines already split from their terminators, in source
// order. Custom literal pairs extend the lexical layer; the built-in quote
// literal is always present.
func ParseLines(lines []string, literals ...yesparser.Literal) *Document {
	set := yesparser.NewLiteralSet(literals...)
	doc := newDocument()
	for _, line := range lines {
		doc.processLine(line, set)
	}
	doc.finish()
	return doc
}

// ParseString parses a whole document body.
func ParseString(body string, literals ...yesparser.Literal) *Document {
	return ParseLines(strings.Split(body, "\n"), literals...)
}

// ParseReader parses line by line from r.
func ParseReader(r io.Reader, literals ...yesparser.Literal) (*Document, error) {
	set := yesparser.NewLiteralSet(literals...)
	doc := newDocument()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		doc.processLine(scanner.Text(), set)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	doc.finish()
	return doc, nil
}

// ParseFile opens path and parses its contents.
func ParseFile(path string, literals ...yesparser.Literal) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, literals...)
}
