package dialect

import (
	"fmt"
	"strings"
)

// MaxNumericLen is the longest value, in bytes, still emitted as a bare number.
const MaxNumericLen = 19

// Options controls rendering.
type Options struct {
	// Comments re-emits trailing comments after each line.
	Comments bool
}

// IsNumericLiteral reports whether a directive value is emitted as a bare number.
//
// "0" is numeric. Otherwise the value must not start with '0', must be 1 to MaxNumericLen
// bytes long, and may only contain ASCII digits and '-'. Values with a leading zero stay
// strings so padded codes keep their digits.
func IsNumericLiteral(v string) bool {
	if v == "0" {
		return true
	}
	if v == "" || len(v) > MaxNumericLen || v[0] == '0' {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '-' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// CanonicalKey replaces every '.' with '_'.
func CanonicalKey(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}

// Render writes doc as canonical TOML. Elements carrying a line number are placed on that
// line; elements without one follow the previous element.
func Render(doc *Document, opts Options) string {
	r := renderer{opts: opts, line: 1}
	for _, d := range doc.Preamble {
		r.directive(d)
	}
	for _, s := range doc.Sections {
		r.seek(s.Line)
		r.b.WriteString(`[[`)
		r.b.WriteString(quote(s.Name))
		r.b.WriteString(`]]`)
		r.comment(s.Comment, s.HasComment)
		r.newline()
		for _, d := range s.Directives {
			r.directive(d)
		}
	}
	return r.b.String()
}

// Translate parses text and renders it as canonical TOML.
func Translate(text, file string, opts Options) (string, error) {
	doc, err := Parse(text, file)
	if err != nil {
		return "", err
	}
	return Render(doc, opts), nil
}

type renderer struct {
	b    strings.Builder
	opts Options
	line int
}

func (r *renderer) seek(line int) {
	for r.line < line {
		r.newline()
	}
}

func (r *renderer) newline() {
	r.b.WriteByte('\n')
	r.line++
}

func (r *renderer) directive(d Directive) {
	r.seek(d.Line)
	r.b.WriteString(renderKey(d.CanonicalKey()))
	r.b.WriteByte('=')
	if IsNumericLiteral(d.Value) {
		r.b.WriteString(d.Value)
	} else {
		r.b.WriteString(quote(d.Value))
	}
	r.comment(d.Comment, d.HasComment)
	r.newline()
}

func (r *renderer) comment(text string, ok bool) {
	if !r.opts.Comments || !ok {
		return
	}
	r.b.WriteString(" #")
	r.b.WriteString(stripControl(text))
}

// renderKey leaves keys that are valid TOML bare keys untouched and quotes the rest.
func renderKey(key string) string {
	if key == "" {
		return quote(key)
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return quote(key)
		}
	}
	return key
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '"':
			b.WriteString(`\"`)
		case r == '\t':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\u%04X`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r != '\t' && (r < 0x20 || r == 0x7f) {
			return -1
		}
		return r
	}, s)
}
