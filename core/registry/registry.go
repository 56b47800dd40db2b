package registry

import (
	"slices"

	"proto-manager/core/proto"
	"proto-manager/core/protoerr"
)

// File holds the records decoded from one source file, in source order.
type File[T proto.Record] struct {
	Path    string
	Records []T
}

// Registry maps identifiers to records. It is filled by a Builder and read-only afterwards.
type Registry[T proto.Record] struct {
	records map[proto.ID]T
	origin  map[proto.ID]string
	files   []File[T]
}

func newRegistry[T proto.Record]() *Registry[T] {
	return &Registry[T]{
		records: make(map[proto.ID]T),
		origin:  make(map[proto.ID]string),
	}
}

// add merges the records of one file. It stops at the first identifier already present.
func (r *Registry[T]) add(file string, records []T) error {
	for _, rec := range records {
		id := rec.ProtoID()
		if prev, ok := r.origin[id]; ok {
			return protoerr.New(protoerr.IdentifierCollision, "%s %d already defined in %s", rec.Schema().Identifier.Name, id, prev).
				At(file, 0).WithID(id)
		}
		r.records[id] = rec
		r.origin[id] = file
	}
	r.files = append(r.files, File[T]{Path: file, Records: records})
	return nil
}

// Len returns the number of records.
func (r *Registry[T]) Len() int {
	return len(r.records)
}

// Get returns the record with the given identifier.
func (r *Registry[T]) Get(id proto.ID) (T, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// Source returns the file the identifier was defined in.
func (r *Registry[T]) Source(id proto.ID) (string, bool) {
	file, ok := r.origin[id]
	return file, ok
}

// Keys returns all identifiers in ascending order.
func (r *Registry[T]) Keys() []proto.ID {
	keys := make([]proto.ID, 0, len(r.records))
	for id := range r.records {
		keys = append(keys, id)
	}
	slices.Sort(keys)
	return keys
}

// Records returns all records ordered by identifier.
func (r *Registry[T]) Records() []T {
	keys := r.Keys()
	out := make([]T, len(keys))
	for i, id := range keys {
		out[i] = r.records[id]
	}
	return out
}

// Files returns the per-file record lists in manifest order.
func (r *Registry[T]) Files() []File[T] {
	return r.files
}
