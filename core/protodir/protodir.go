package protodir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no candidate resolves to a directory.
var ErrNotFound = errors.New("proto directory not found")

// Resolve returns the canonical prototype root for cfg.
func Resolve(cfg Config) (string, error) {
	if p := strings.TrimSpace(cfg.Path); p != "" {
		if dir, err := canonicalDir(p); err == nil {
			return dir, nil
		}
	}

	if cfg.PathFile != "" {
		if data, err := os.ReadFile(cfg.PathFile); err == nil {
			first, _, _ := strings.Cut(string(data), "\n")
			if p := strings.TrimSpace(first); p != "" {
				if dir, err := canonicalDir(p); err == nil {
					return dir, nil
				}
			}
		}
	}

	if cfg.Fallback != "" {
		dir, err := canonicalDir(cfg.Fallback)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return dir, nil
	}
	return "", ErrNotFound
}

// Join resolves rel against root and canonicalises the result. The target must exist.
func Join(root, rel string) (string, error) {
	return canonical(filepath.Join(root, filepath.FromSlash(rel)))
}

func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func canonicalDir(path string) (string, error) {
	dir, err := canonical(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", dir)
	}
	return dir, nil
}
