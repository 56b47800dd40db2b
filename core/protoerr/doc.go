// Package protoerr defines the error taxonomy shared by the proto pipeline.
//
// Every fatal condition raised while translating, decoding or collecting prototype
// definitions is reported as an *Error carrying a Kind. The Kind is what callers branch on;
// the file, line and identifier fields only enrich the diagnostic.
//
// # Kinds
//
//   - MalformedSection: bracket header without a closing bracket or with empty content.
//   - MissingSeparator: directive line without '='.
//   - DuplicateField: a field assigned twice inside one section.
//   - IncompleteRecord: a section closed without identifier or type discriminant.
//   - DecodeMismatch: canonical text does not fit the record shape.
//   - InvalidManifestEntry: manifest line naming a missing, non-regular or foreign file.
//   - IdentifierCollision: two records share an identifier.
//   - IO: read or write failure.
//
// # Usage
//
//	if protoerr.Is(err, protoerr.IdentifierCollision) {
//	    // ...
//	}
package protoerr
