package export

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"proto-manager/core/proto"
	"proto-manager/core/protodir"
	"proto-manager/core/registry"
	"proto-manager/core/textenc"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// uploadLimit bounds concurrent sink writes.
const uploadLimit = 4

// Document is one rendered export file.
type Document struct {
	// Name is the slash separated output name, e.g. "items/generic.json".
	Name string
	// Source is the prototype file the records come from.
	Source string
	// Records is the number of records in the document.
	Records int
	// Data is the JSON content.
	Data []byte
}

// Service exports prototype registries.
type Service struct {
	cfg     protodir.Config
	decoder *textenc.Decoder
	sink    Sink
	logger  *zap.Logger
}

// NewService creates a new export service.
func NewService(cfg protodir.Config, sink Sink, logger *zap.Logger) (*Service, error) {
	dec, err := textenc.New(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return &Service{cfg: cfg, decoder: dec, sink: sink, logger: logger}, nil
}

// Export builds both registries under root and writes one document per source file.
// Nothing is written unless both registries build.
func (s *Service) Export(ctx context.Context, root string) ([]Document, error) {
	items, err := documentsFor[proto.Item](s, root, s.cfg.ItemsList)
	if err != nil {
		return nil, err
	}
	critters, err := documentsFor[proto.Critter](s, root, s.cfg.CrittersList)
	if err != nil {
		return nil, err
	}

	docs := append(items, critters...)
	if err := s.publish(ctx, docs); err != nil {
		return nil, err
	}

	s.logger.Info("Export completed", zap.Int("documents", len(docs)))
	return docs, nil
}

func (s *Service) publish(ctx context.Context, docs []Document) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadLimit)
	for _, doc := range docs {
		g.Go(func() error {
			if err := s.sink.Write(ctx, doc.Name, doc.Data); err != nil {
				return err
			}
			s.logger.Debug("Document written", zap.String("name", doc.Name), zap.Int("records", doc.Records))
			return nil
		})
	}
	return g.Wait()
}

func documentsFor[T proto.Record](s *Service, root, list string) ([]Document, error) {
	manifest, err := protodir.Join(root, list)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", list, err)
	}
	reg, err := registry.NewBuilder[T](s.decoder, s.cfg.Extension, s.logger).Build(manifest)
	if err != nil {
		return nil, err
	}
	var zero T
	return Documents(zero.Schema().Category, reg)
}

// Documents renders one JSON document per file of reg, placed under the category name.
func Documents[T proto.Record](category string, reg *registry.Registry[T]) ([]Document, error) {
	files := reg.Files()
	docs := make([]Document, 0, len(files))
	seen := make(map[string]string, len(files))

	for _, f := range files {
		base := filepath.Base(f.Path)
		name := path.Join(category, strings.TrimSuffix(base, filepath.Ext(base))+".json")
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("export name %s used by both %s and %s", name, prev, f.Path)
		}
		seen[name] = f.Path

		records := slices.Clone(f.Records)
		slices.SortFunc(records, func(a, b T) int {
			return int(a.ProtoID()) - int(b.ProtoID())
		})
		if records == nil {
			records = []T{}
		}

		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", f.Path, err)
		}
		docs = append(docs, Document{Name: name, Source: f.Path, Records: len(records), Data: data})
	}
	return docs, nil
}
