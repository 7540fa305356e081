// Package model defines the data structures shared by the splice editor,
// its adapters and its presentation layer.
package model

// Path represents a file system path.
type Path string

// File identifies a source file on disk together with its content hash.
type File struct {
	Path Path   `yaml:"path"`
	Hash string `yaml:"hash"`
}

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Shift returns the span moved right by offset bytes.
func (s Span) Shift(offset int) Span {
	return Span{Start: s.Start + offset, End: s.End + offset}
}

// BlockMatch is one self-closing component invocation found in a source text.
// Span is absolute in the scanned text; Ordinal is the 0-based index of the
// match among all invocations of the same tag, in document order.
type BlockMatch struct {
	Text    string
	Span    Span
	Ordinal int
}

// ArrayField is the decomposition of a prop whose value is an array literal.
// BodySpan covers the text between '[' and the matching ']' and is relative
// to the owning BlockMatch text.
type ArrayField struct {
	Name     string
	Body     string
	BodySpan Span
	Elements []Element
}

// Element is one top-level object literal inside an ArrayField body.
// Span is relative to the ArrayField body.
type Element struct {
	Text string
	Span Span
}

// Texts returns the element texts in order.
func (f ArrayField) Texts() []string {
	texts := make([]string, 0, len(f.Elements))
	for _, el := range f.Elements {
		texts = append(texts, el.Text)
	}

	return texts
}
