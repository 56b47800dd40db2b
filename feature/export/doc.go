// Package export writes validated prototypes as JSON documents.
//
// Both categories are built into registries first, so an export only ever contains data
// that passed every check, including global identifier uniqueness. One pretty-printed
// JSON array is then produced per source file, holding that file's records ordered by
// identifier, and named after the file:
//
//	items/generic.json
//	critters/animals.json
//
// # Sinks
//
//   - DirSink: writes below a local directory (output.dir).
//   - BucketSink: uploads to an S3/MinIO bucket through core/storage.
package export
