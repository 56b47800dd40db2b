package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"proto-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// Sink stores rendered documents.
type Sink interface {
	// Write stores data under a slash separated name.
	Write(ctx context.Context, name string, data []byte) error
}

// DirSink writes documents below a local directory.
type DirSink struct {
	Dir string
}

// Write stores data at Dir/name, creating parent directories.
func (s DirSink) Write(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// BucketSink uploads documents to an object storage bucket.
type BucketSink struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketSink creates a sink uploading to bucket, with prefix prepended to each name.
func NewBucketSink(client storage.Client, bucket, prefix string) *BucketSink {
	return &BucketSink{client: client, bucket: bucket, prefix: prefix}
}

// Write uploads data as prefix+name.
func (s *BucketSink) Write(ctx context.Context, name string, data []byte) error {
	object := s.prefix + name
	_, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", object, err)
	}
	return nil
}
