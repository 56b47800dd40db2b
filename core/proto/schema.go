package proto

import (
	"slices"
)

// Field declares a record field and the other names it may be written as.
type Field struct {
	// Name is the canonical key, matching the record's mapstructure tag.
	Name string
	// Aliases are alternative keys decoding to the same field.
	Aliases []string
	// Required marks fields that must be present in every section.
	Required bool
}

func (f Field) names() []string {
	return append([]string{f.Name}, f.Aliases...)
}

// Schema describes how canonical entries map onto a record type.
type Schema struct {
	// Category names the kind of record, used in messages and reports.
	Category string
	// Sections lists the header names holding records of this shape.
	Sections []string
	// Identifier is the mandatory numeric prototype id.
	Identifier Field
	// Discriminant is the mandatory type field.
	Discriminant Field
	// Fields are the other declared fields.
	Fields []Field
}

// Accepts reports whether a section with this header name holds records of the shape.
func (s Schema) Accepts(section string) bool {
	return slices.Contains(s.Sections, section)
}

// Canonical resolves a canonical-document key to the declared field name it stands for.
// Undeclared keys are returned unchanged with ok set to false.
func (s Schema) Canonical(key string) (name string, ok bool) {
	for _, f := range s.fields() {
		if slices.Contains(f.names(), key) {
			return f.Name, true
		}
	}
	return key, false
}

func (s Schema) fields() []Field {
	out := make([]Field, 0, len(s.Fields)+2)
	out = append(out, s.Identifier, s.Discriminant)
	return append(out, s.Fields...)
}

func (s Schema) required() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
