package dialect

import (
	"strings"

	"proto-manager/core/protoerr"
)

const bom = "\ufeff"

// Parse splits text into sections and directives. file is only used for diagnostics.
func Parse(text, file string) (*Document, error) {
	doc := &Document{File: file}
	var current *Section

	for i, raw := range strings.Split(text, "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(strings.TrimLeft(raw, bom))
		line, comment, hasComment := splitComment(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") || len(line) < 3 {
				return nil, protoerr.New(protoerr.MalformedSection, "%q", line).At(file, lineNum)
			}
			doc.Sections = append(doc.Sections, Section{
				Name:       line[1 : len(line)-1],
				Comment:    comment,
				HasComment: hasComment,
				Line:       lineNum,
			})
			current = &doc.Sections[len(doc.Sections)-1]
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, protoerr.New(protoerr.MissingSeparator, "%q", line).At(file, lineNum)
		}
		d := Directive{
			Key:        strings.TrimSpace(key),
			Value:      strings.TrimSpace(value),
			Comment:    comment,
			HasComment: hasComment,
			Line:       lineNum,
		}
		if current == nil {
			doc.Preamble = append(doc.Preamble, d)
		} else {
			current.Directives = append(current.Directives, d)
		}
	}

	return doc, nil
}

// splitComment cuts line at the first '#' that is not preceded by a backslash.
// The escaping backslash is kept in the content.
func splitComment(line string) (content, comment string, ok bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if i > 0 && line[i-1] == '\\' {
			continue
		}
		return strings.TrimRight(line[:i], " \t"), strings.TrimLeft(line[i+1:], " \t"), true
	}
	return line, "", false
}
