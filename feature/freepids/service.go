package freepids

import (
	"fmt"
	"os"
	"strings"

	"proto-manager/core/idrange"
	"proto-manager/core/proto"
	"proto-manager/core/protodir"
	"proto-manager/core/registry"
	"proto-manager/core/textenc"

	"go.uber.org/zap"
)

// Service produces free identifier reports.
type Service struct {
	cfg     protodir.Config
	decoder *textenc.Decoder
	bound   proto.ID
	logger  *zap.Logger
}

// NewService creates a new report service.
func NewService(cfg protodir.Config, logger *zap.Logger) (*Service, error) {
	if cfg.MaxPID < 1 || cfg.MaxPID > int(^proto.ID(0)) {
		return nil, fmt.Errorf("max pid %d outside 1..%d", cfg.MaxPID, ^proto.ID(0))
	}
	dec, err := textenc.New(cfg.Encoding)
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:     cfg,
		decoder: dec,
		bound:   proto.ID(cfg.MaxPID),
		logger:  logger,
	}, nil
}

// Report renders the report for the prototype tree at root.
func (s *Service) Report(root string) (string, error) {
	var b strings.Builder

	items, err := freeRanges[proto.Item](s, root, s.cfg.ItemsList)
	if err != nil {
		return "", err
	}
	if err := writeSection(&b, proto.Item{}.Schema().Category, items); err != nil {
		return "", err
	}

	b.WriteByte('\n')

	critters, err := freeRanges[proto.Critter](s, root, s.cfg.CrittersList)
	if err != nil {
		return "", err
	}
	if err := writeSection(&b, proto.Critter{}.Schema().Category, critters); err != nil {
		return "", err
	}

	return b.String(), nil
}

// WriteReport renders the report and writes it to path. On failure the error text is
// written to path instead and the error is returned.
func (s *Service) WriteReport(root, path string) error {
	report, err := s.Report(root)
	if err != nil {
		if writeErr := os.WriteFile(path, []byte("Error: "+err.Error()), 0644); writeErr != nil {
			s.logger.Error("Failed to write error report", zap.String("file", path), zap.Error(writeErr))
		}
		return err
	}
	if err := os.WriteFile(path, []byte(report), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	s.logger.Info("Free identifier report saved", zap.String("file", path))
	return nil
}

func freeRanges[T proto.Record](s *Service, root, list string) ([]idrange.Range, error) {
	manifest, err := protodir.Join(root, list)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", list, err)
	}

	reg, err := registry.NewBuilder[T](s.decoder, s.cfg.Extension, s.logger).Build(manifest)
	if err != nil {
		return nil, err
	}

	keys := reg.Keys()
	if n := countFrom(keys, s.bound); n > 0 {
		s.logger.Warn("Identifiers beyond report bound",
			zap.String("manifest", manifest),
			zap.Int("count", n),
			zap.Uint16("bound", s.bound),
		)
	}

	ranges := idrange.Free(keys, s.bound)
	free := 0
	for _, r := range ranges {
		free += r.Len()
	}
	s.logger.Info("Free identifiers computed",
		zap.String("manifest", manifest),
		zap.Int("used", len(keys)),
		zap.Int("free", free),
		zap.Int("ranges", len(ranges)),
	)
	return ranges, nil
}

// countFrom counts sorted keys at or above bound.
func countFrom(keys []proto.ID, bound proto.ID) int {
	n := 0
	for i := len(keys) - 1; i >= 0 && keys[i] >= bound; i-- {
		n++
	}
	return n
}

func writeSection(b *strings.Builder, category string, ranges []idrange.Range) error {
	if err := idrange.WriteBanner(b, "Free identifiers for "+category); err != nil {
		return err
	}
	return idrange.WriteRanges(b, ranges)
}
