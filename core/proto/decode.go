package proto

import (
	"errors"
	"reflect"
	"slices"
	"sort"

	"proto-manager/core/dialect"
	"proto-manager/core/protoerr"
	"proto-manager/core/utils"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
)

// DecodeSource decodes one dialect document into records of type T.
// file is used for diagnostics only.
func DecodeSource[T Record](text, file string) ([]T, error) {
	var zero T
	schema := zero.Schema()

	doc, err := dialect.Parse(text, file)
	if err != nil {
		return nil, err
	}
	if err := schema.Check(doc); err != nil {
		return nil, err
	}

	lines := make([]int, len(doc.Sections))
	for i, s := range doc.Sections {
		lines[i] = s.Line
	}

	records, err := decode[T](dialect.Render(doc, dialect.Options{}), lines)
	if err != nil {
		return nil, protoerr.InFile(err, file)
	}
	return records, nil
}

// DecodeCanonical decodes canonical TOML text into records of type T, in document order.
func DecodeCanonical[T Record](canonical string) ([]T, error) {
	return decode[T](canonical, nil)
}

// decode maps each array-of-tables entry onto T. lines, when set, holds the source line
// of each entry.
func decode[T Record](canonical string, lines []int) ([]T, error) {
	var zero T
	schema := zero.Schema()

	var root map[string]any
	if err := toml.Unmarshal([]byte(canonical), &root); err != nil {
		pe := protoerr.Wrap(protoerr.DecodeMismatch, err, "canonical %s document", schema.Category)
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, _ := de.Position()
			pe.Line = row
		}
		return nil, pe
	}

	entries, err := schema.entries(root)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(entries))
	for i, entry := range entries {
		rec, err := decodeEntry[T](schema, entry)
		if err != nil {
			var pe *protoerr.Error
			if errors.As(err, &pe) && i < len(lines) {
				pe.Line = lines[i]
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// entries collects the tables of the single accepted section name present in root.
func (s Schema) entries(root map[string]any) ([]map[string]any, error) {
	var (
		found string
		out   []map[string]any
	)
	for _, name := range s.Sections {
		v, ok := root[name]
		if !ok {
			continue
		}
		if found != "" {
			return nil, protoerr.New(protoerr.DecodeMismatch, "sections %q and %q mixed", found, name)
		}
		found = name

		list, ok := v.([]any)
		if !ok {
			return nil, protoerr.New(protoerr.DecodeMismatch, "%q is not an array of tables", name)
		}
		for _, item := range list {
			table, ok := item.(map[string]any)
			if !ok {
				return nil, protoerr.New(protoerr.DecodeMismatch, "%q holds a non-table entry", name)
			}
			out = append(out, table)
		}
	}
	return out, nil
}

// normalize renames aliased keys to their declared names.
func (s Schema) normalize(entry map[string]any) (map[string]any, error) {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]any, len(entry))
	origin := make(map[string]string, len(entry))
	for _, k := range keys {
		name, _ := s.Canonical(k)
		if prev, dup := origin[name]; dup {
			return nil, protoerr.New(protoerr.DuplicateField, "%s set as both %q and %q", name, prev, k)
		}
		origin[name] = k
		out[name] = entry[k]
	}
	return out, nil
}

func decodeEntry[T Record](s Schema, entry map[string]any) (T, error) {
	var rec T

	fields, err := s.normalize(entry)
	if err != nil {
		return rec, err
	}

	id, ok := fields[s.Identifier.Name]
	if !ok {
		return rec, protoerr.New(protoerr.IncompleteRecord, "entry without %s", s.Identifier.Name)
	}
	if n, isInt := id.(int64); !isInt {
		return rec, protoerr.New(protoerr.DecodeMismatch, "%s %q is not a number", s.Identifier.Name, utils.ToString(id))
	} else if n == 0 {
		return rec, protoerr.New(protoerr.IncompleteRecord, "entry with %s 0", s.Identifier.Name)
	}
	if _, ok := fields[s.Discriminant.Name]; !ok {
		return rec, protoerr.New(protoerr.IncompleteRecord, "%s %v without %s", s.Identifier.Name, id, s.Discriminant.Name)
	}
	for _, name := range s.required() {
		if _, ok := fields[name]; !ok {
			return rec, protoerr.New(protoerr.DecodeMismatch, "%s %v: missing field %s", s.Identifier.Name, id, name)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(checkIntRange, intToString),
		MatchName:  func(mapKey, fieldName string) bool { return mapKey == fieldName },
		Result:     &rec,
	})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(fields); err != nil {
		return rec, protoerr.Wrap(protoerr.DecodeMismatch, err, "%s %v", s.Identifier.Name, id)
	}
	return rec, nil
}

var intKinds = []reflect.Kind{reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64}
var uintKinds = []reflect.Kind{reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64}

// checkIntRange rejects integers that do not fit the target field.
func checkIntRange(from, to reflect.Type, data any) (any, error) {
	n, ok := data.(int64)
	if !ok {
		return data, nil
	}
	switch {
	case slices.Contains(uintKinds, to.Kind()):
		if n < 0 || reflect.Zero(to).OverflowUint(uint64(n)) {
			return nil, &rangeError{value: n, kind: to.Kind()}
		}
	case slices.Contains(intKinds, to.Kind()):
		if reflect.Zero(to).OverflowInt(n) {
			return nil, &rangeError{value: n, kind: to.Kind()}
		}
	}
	return data, nil
}

// intToString lets string fields accept values the translator typed as numbers.
func intToString(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.Int64 && to.Kind() == reflect.String {
		return utils.ToString(data), nil
	}
	return data, nil
}

type rangeError struct {
	value int64
	kind  reflect.Kind
}

func (e *rangeError) Error() string {
	return utils.ToString(e.value) + " does not fit " + e.kind.String()
}
