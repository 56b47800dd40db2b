package registry

import (
	"os"
	"path/filepath"
	"strings"

	"proto-manager/core/proto"
	"proto-manager/core/protoerr"
	"proto-manager/core/textenc"

	"go.uber.org/zap"
)

// DefaultExtension is the source dialect file extension.
const DefaultExtension = ".fopro"

// Builder builds registries of one record type.
type Builder[T proto.Record] struct {
	decoder   *textenc.Decoder
	extension string
	logger    *zap.Logger
}

// NewBuilder creates a Builder. extension is the required source file extension, with or
// without the leading dot; empty selects DefaultExtension.
func NewBuilder[T proto.Record](decoder *textenc.Decoder, extension string, logger *zap.Logger) *Builder[T] {
	extension = strings.TrimSpace(extension)
	if extension == "" {
		extension = DefaultExtension
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return &Builder[T]{decoder: decoder, extension: extension, logger: logger}
}

// Build reads the manifest at manifestPath and decodes every listed file into one registry.
func (b *Builder[T]) Build(manifestPath string) (*Registry[T], error) {
	m, err := ReadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return b.BuildManifest(m)
}

// BuildManifest decodes every file of m into one registry.
func (b *Builder[T]) BuildManifest(m *Manifest) (*Registry[T], error) {
	var zero T
	category := zero.Schema().Category

	reg := newRegistry[T]()
	for _, path := range m.Files() {
		records, err := b.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := reg.add(path, records); err != nil {
			return nil, err
		}
		b.logger.Debug("Loaded prototypes", zap.String("category", category), zap.String("file", path), zap.Int("records", len(records)))
	}

	b.logger.Info("Registry built",
		zap.String("category", category),
		zap.String("manifest", m.Path),
		zap.Int("files", len(reg.files)),
		zap.Int("records", reg.Len()),
	)
	return reg, nil
}

// LoadFile validates and decodes a single source file.
func (b *Builder[T]) LoadFile(path string) ([]T, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || filepath.Ext(path) != b.extension {
		return nil, protoerr.Wrap(protoerr.InvalidManifestEntry, err, "%s", path)
	}

	text, err := b.decoder.ReadFile(path)
	if err != nil {
		return nil, protoerr.Wrap(protoerr.IO, err, "read").At(path, 0)
	}

	records, err := proto.DecodeSource[T](text, path)
	if err != nil {
		return nil, err
	}
	return records, nil
}
