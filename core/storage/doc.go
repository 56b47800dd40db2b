// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so exported prototype documents can be published to an
// S3-compatible bucket instead of the local output directory. This supports both AWS S3
// and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - MakeBucket: Creates a new bucket if needed.
//   - PutObject: Uploads content (with size and options).
//   - EnsureBucket: BucketExists followed by MakeBucket when missing.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, "protos", "")
package storage
