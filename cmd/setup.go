package cmd

import (
	"fmt"

	"proto-manager/core/config"
	"proto-manager/core/logger"
	"proto-manager/core/protodir"

	"go.uber.org/zap"
)

// environment is what every prototype command starts from.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	root   string
}

// setup loads the configuration, builds the run logger and resolves the prototype root.
// A non-empty protoPath overrides the configured lookup.
func setup(protoPath string) (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if protoPath != "" {
		cfg.Proto.Path = protoPath
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg, _ = logger.WithRunID(logg)

	root, err := protodir.Resolve(cfg.Proto)
	if err != nil {
		return nil, err
	}
	logg.Info("Using prototype directory", zap.String("path", root))

	return &environment{cfg: cfg, logger: logg, root: root}, nil
}
