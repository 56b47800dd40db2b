package registry

import (
	"os"
	"path/filepath"
	"strings"

	"proto-manager/core/protoerr"
)

// Manifest is the ordered list of source files of one category.
type Manifest struct {
	// Path is the manifest file location.
	Path string
	// Entries are the listed paths, trimmed, in file order.
	Entries []string
}

// ReadManifest reads and parses the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, protoerr.Wrap(protoerr.IO, err, "read manifest").At(path, 0)
	}
	return ParseManifest(path, string(data)), nil
}

// ParseManifest parses manifest text. path is the manifest location entries are relative to.
func ParseManifest(path, text string) *Manifest {
	m := &Manifest{Path: path}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m.Entries = append(m.Entries, line)
	}
	return m
}

// Resolve returns the location of an entry relative to the manifest's directory.
func (m *Manifest) Resolve(entry string) string {
	return filepath.Join(filepath.Dir(m.Path), entry)
}

// Files returns every entry resolved.
func (m *Manifest) Files() []string {
	out := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = m.Resolve(e)
	}
	return out
}
