// Package dialect reads the prototype ("fopro") configuration dialect and rewrites it into
// canonical TOML.
//
// The dialect is line oriented:
//
//	# comment
//	[Proto]
//	ProtoId = 2007      # trailing comment
//	PicMap = art/items/tirs.frm
//
// A bracketed header opens a section; every other non-blank line is a Key = Value directive.
// Each section becomes one entry of a TOML array of tables named by the header text, each
// directive one assignment. Keys have '.' replaced with '_'. Values are typed by a heuristic
// because the dialect carries no type information: see IsNumericLiteral.
//
// Rendering keeps every element on the line it came from, so positions reported by the TOML
// parser point at the original source line.
//
// # Usage
//
//	canonical, err := dialect.Translate(text, "generic.fopro", dialect.Options{})
package dialect
