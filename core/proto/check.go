package proto

import (
	"strconv"

	"proto-manager/core/dialect"
	"proto-manager/core/protoerr"
)

// accumulator is the state of one open section.
type accumulator struct {
	schema       Schema
	file         string
	section      *dialect.Section
	identifier   *ID
	discriminant *string
	seen         map[string]dialect.Directive
}

// Check validates the section structure of doc against the schema: every section must be
// one the schema accepts, no field may be assigned twice, and every section must close with
// a non-zero identifier and a discriminant.
func (s Schema) Check(doc *dialect.Document) error {
	var used *dialect.Section
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		if !s.Accepts(sec.Name) {
			return protoerr.New(protoerr.DecodeMismatch, "unexpected section %q for %s", sec.Name, s.Category).
				At(doc.File, sec.Line)
		}
		if used != nil && used.Name != sec.Name {
			return protoerr.New(protoerr.DecodeMismatch, "section %q mixed with %q from line %d", sec.Name, used.Name, used.Line).
				At(doc.File, sec.Line)
		}
		used = sec

		acc := s.open(doc.File, sec)
		for _, d := range sec.Directives {
			if err := acc.assign(d); err != nil {
				return err
			}
		}
		if err := acc.close(); err != nil {
			return err
		}
	}
	return nil
}

func (s Schema) open(file string, sec *dialect.Section) *accumulator {
	return &accumulator{
		schema:  s,
		file:    file,
		section: sec,
		seen:    make(map[string]dialect.Directive, len(sec.Directives)),
	}
}

func (a *accumulator) assign(d dialect.Directive) error {
	key := d.CanonicalKey()
	name, _ := a.schema.Canonical(key)
	if prev, dup := a.seen[name]; dup {
		return protoerr.New(protoerr.DuplicateField, "%s already set by %q on line %d", name, prev.Key, prev.Line).
			At(a.file, d.Line)
	}
	a.seen[name] = d

	switch name {
	case a.schema.Identifier.Name:
		if !dialect.IsNumericLiteral(d.Value) {
			return protoerr.New(protoerr.DecodeMismatch, "%s %q is not a number", name, d.Value).At(a.file, d.Line)
		}
		id, err := strconv.ParseUint(d.Value, 10, 16)
		if err != nil {
			return protoerr.Wrap(protoerr.DecodeMismatch, err, "%s %q out of range", name, d.Value).At(a.file, d.Line)
		}
		v := ID(id)
		a.identifier = &v
	case a.schema.Discriminant.Name:
		v := d.Value
		a.discriminant = &v
	}
	return nil
}

func (a *accumulator) close() error {
	switch {
	case a.identifier == nil:
		return protoerr.New(protoerr.IncompleteRecord, "[%s] without %s", a.section.Name, a.schema.Identifier.Name).
			At(a.file, a.section.Line)
	case *a.identifier == 0:
		return protoerr.New(protoerr.IncompleteRecord, "[%s] with %s 0", a.section.Name, a.schema.Identifier.Name).
			At(a.file, a.section.Line)
	case a.discriminant == nil:
		return protoerr.New(protoerr.IncompleteRecord, "[%s] %s %d without %s", a.section.Name, a.schema.Identifier.Name, *a.identifier, a.schema.Discriminant.Name).
			At(a.file, a.section.Line).WithID(*a.identifier)
	}
	return nil
}
