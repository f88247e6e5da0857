package yesparser

import "strings"

// ElementKind is the closed set of element variants a line can parse to.
// Callers type-switch over *Standard, *Attribute, *Global and *Comment.
type ElementKind interface {
	// Inner returns the element carrying the name and arguments. For
	// Standard this is the element itself, not its attached attributes.
	Inner() *Element
	// UpsertKeyval forwards to the inner element.
	UpsertKeyval(kv KeyVal)
	String() string

	isElementKind()
}

// Standard is a user-defined element. Attrs holds the attribute elements
// that preceded it in the document, in source order.
type Standard struct {
	Attrs []Element
	Data  Element
}

// Attribute decorates the next standard element in the document.
type Attribute struct {
	Data Element
}

// Global is a document-wide directive, hoisted to the front of results.
type Global struct {
	Data Element
}

// Comment is free text; Data.Text holds everything after the hash byte.
type Comment struct {
	Data Element
}

func NewStandard(name string) *Standard {
	return &Standard{Data: NewElement(name)}
}

func NewAttribute(name string) *Attribute {
	return &Attribute{Data: NewElement(name)}
}

func NewGlobal(name string) *Global {
	return &Global{Data: NewElement(name)}
}

func NewComment(text string) *Comment {
	return &Comment{Data: NewElement(text)}
}

func (s *Standard) Inner() *Element  { return &s.Data }
func (a *Attribute) Inner() *Element { return &a.Data }
func (g *Global) Inner() *Element    { return &g.Data }
func (c *Comment) Inner() *Element   { return &c.Data }

func (s *Standard) UpsertKeyval(kv KeyVal)  { s.Data.Upsert(kv) }
func (a *Attribute) UpsertKeyval(kv KeyVal) { a.Data.Upsert(kv) }
func (g *Global) UpsertKeyval(kv KeyVal)    { g.Data.Upsert(kv) }
func (c *Comment) UpsertKeyval(kv KeyVal)   { c.Data.Upsert(kv) }

func (s *Standard) String() string  { return formatElement(0, &s.Data) }
func (a *Attribute) String() string { return formatElement(GlyphAt, &a.Data) }
func (g *Global) String() string    { return formatElement(GlyphBang, &g.Data) }
func (c *Comment) String() string   { return string(GlyphHash) + c.Data.Text }

func (s *Standard) isElementKind()  {}
func (a *Attribute) isElementKind() {}
func (g *Global) isElementKind()    {}
func (c *Comment) isElementKind()   {}

func formatElement(prefix byte, e *Element) string {
	var sb strings.Builder
	if prefix != 0 {
		sb.WriteByte(prefix)
	}
	sb.WriteString(e.Text)
	for i := range e.Args {
		if i == 0 {
			sb.WriteByte(GlyphSpace)
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Args[i].String())
	}
	return sb.String()
}
