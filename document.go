package yes

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

// Result is one entry of a parsed document: a successful element or a
// line error, never both. Line is the 1-based number of the last physical
// line the record occupied.
type Result struct {
	Line int
	Data yesparser.ElementKind
	Err  *yesparser.LineError
}

// Ok reports whether the result carries an element.
func (r Result) Ok() bool {
	return r.Err == nil
}

func (r Result) isGlobal() bool {
	if r.Err != nil {
		return false
	}
	_, ok := r.Data.(*yesparser.Global)
	return ok
}

type headerComment struct {
	line int
	text string
}

// Document accumulates results line by line and owns the transient state
// of a parse: the pending continuation buffer and the attribute queue.
// A Document is built by the Parse functions and read-only afterwards.
type Document struct {
	// TotalLines is the number of physical lines read.
	TotalLines int

	results []Result

	pending     strings.Builder
	building    bool
	attrs       []yesparser.Element
	headerDone  bool
	headerLines []headerComment
}

func newDocument() *Document {
	return &Document{}
}

// processLine feeds one physical line through the assembly state machine
// and, once a logical line is complete, dispatches it.
func (d *Document) processLine(line string, literals *yesparser.LiteralSet) {
	d.TotalLines++

	if strings.HasSuffix(line, "\\") {
		d.pending.WriteString(strings.TrimSuffix(line, "\\"))
		d.building = true
		return
	}
	if d.building {
		line = d.pending.String() + line
		d.pending.Reset()
		d.building = false
	}

	el, lerr := yesparser.ReadLine(d.TotalLines, line, literals)
	if lerr != nil {
		d.headerDone = true
		d.results = append(d.results, Result{Line: d.TotalLines, Err: lerr})
		return
	}

	switch t := el.(type) {
	case *yesparser.Attribute:
		d.headerDone = true
		d.attrs = append(d.attrs, t.Data.Clone())
		return
	case *yesparser.Standard:
		d.headerDone = true
		t.Attrs = append(t.Attrs, d.attrs...)
		d.attrs = nil
	case *yesparser.Comment:
		if !d.headerDone {
			d.headerLines = append(d.headerLines, headerComment{line: d.TotalLines, text: t.Data.Text})
		}
	default:
		d.headerDone = true
	}

	d.results = append(d.results, Result{Line: d.TotalLines, Data: el})
}

// finish runs the post-pass: hoist successful globals to the front while
// keeping relative source order within both groups. A pending continuation
// buffer and any unconsumed attributes are discarded.
func (d *Document) finish() {
	d.pending.Reset()
	d.building = false
	d.attrs = nil

	sort.SliceStable(d.results, func(i, j int) bool {
		return d.results[i].isGlobal() && !d.results[j].isGlobal()
	})
}

// Results returns every entry in final order: globals first in source
// order, then all other entries (errors included) in source order.
func (d *Document) Results() []Result {
	return d.results
}

// Elements returns the successful elements in final order.
func (d *Document) Elements() []yesparser.ElementKind {
	var out []yesparser.ElementKind
	for _, r := range d.results {
		if r.Ok() {
			out = append(out, r.Data)
		}
	}
	return out
}

// Errors returns the line errors in source order.
func (d *Document) Errors() []yesparser.LineError {
	var out []yesparser.LineError
	for _, r := range d.results {
		if r.Err != nil {
			out = append(out, *r.Err)
		}
	}
	return out
}

// HasErrors reports whether any line failed to parse. Blank lines count;
// use ErrorsIgnoring to filter them out.
func (d *Document) HasErrors() bool {
	for _, r := range d.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// ErrorsIgnoring returns the line errors whose code is not in codes.
// Passing yesparser.EolNoData skips the blank-line noise most callers
// do not care about.
func (d *Document) ErrorsIgnoring(codes ...yesparser.ErrorCode) []yesparser.LineError {
	skip := make(map[yesparser.ErrorCode]bool, len(codes))
	for _, c := range codes {
		skip[c] = true
	}
	var out []yesparser.LineError
	for _, r := range d.results {
		if r.Err != nil && !skip[r.Err.Code] {
			out = append(out, *r.Err)
		}
	}
	return out
}

// YamlHeader extracts the embedded YAML document from the leading comment
// block. Comment lines written `#! key: value` before the first
// non-comment line accumulate into one YAML document; once started, the
// `#!` lines must continue to the end of the leading block.
func (d *Document) YamlHeader() (string, error) {
	var lines []string
	parsing := false
	for _, c := range d.headerLines {
		if strings.HasPrefix(c.text, "!") {
			parsing = true
			if !strings.HasPrefix(c.text, "! ") {
				return "", fmt.Errorf("line %d: YAML document in header; missing space after `#!`", c.line)
			}
			lines = append(lines, c.text[2:])
		} else if parsing {
			return "", fmt.Errorf("line %d: once an embedded yaml header is started (lines prefixed with `#!`), it must continue until the first element", c.line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// ParseYamlHeader unmarshals the YAML header into out.
func (d *Document) ParseYamlHeader(out any) error {
	header, err := d.YamlHeader()
	if err != nil {
		return err
	}
	return yaml.Unmarshal([]byte(header), out)
}
