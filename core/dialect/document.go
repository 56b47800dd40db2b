package dialect

// Directive is one Key = Value line.
type Directive struct {
	// Key is the directive key as written.
	Key string
	// Value is the trimmed text after the first '='.
	Value string
	// Comment is the trailing comment text, without the '#'.
	Comment string
	// HasComment reports whether the line carried a comment, possibly empty.
	HasComment bool
	// Line is the 1-based source line.
	Line int
}

// CanonicalKey returns the key as it appears in canonical form.
func (d Directive) CanonicalKey() string {
	return CanonicalKey(d.Key)
}

// Section is a bracketed header and the directives that follow it.
type Section struct {
	// Name is the text between the brackets.
	Name string
	// Comment is the trailing comment on the header line.
	Comment string
	// HasComment reports whether the header line carried a comment.
	HasComment bool
	// Line is the 1-based line of the header.
	Line int
	// Directives are the section's directives in source order.
	Directives []Directive
}

// Document is a parsed dialect file.
type Document struct {
	// File names the source, used in diagnostics only.
	File string
	// Preamble holds directives that appear before the first header.
	Preamble []Directive
	// Sections are the document's sections in source order.
	Sections []Section
}
