// Package proto decodes prototype definitions into typed records.
//
// A record shape (Item, Critter) implements Record. Its Schema declares the identifier field,
// the type discriminant, the other typed fields and their alias names. Keys that the schema
// does not declare are kept in the record's Extra map rather than rejected.
//
// # Decoding
//
// DecodeSource runs the whole per-file pipeline:
//
//  1. dialect.Parse splits the source into sections.
//  2. Schema.Check folds every section through an accumulator that tracks the identifier and
//     discriminant, rejecting duplicated fields and incomplete records with their line number.
//  3. dialect.Render produces canonical TOML.
//  4. DecodeCanonical parses the TOML (go-toml) and maps each array-of-tables entry onto the
//     record type (mapstructure), resolving aliases first.
//
// DecodeCanonical can also be used on its own for text that is already canonical.
//
// # Usage
//
//	items, err := proto.DecodeSource[proto.Item](text, "generic.fopro")
package proto
