package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"proto-manager/core/protoerr"
	"proto-manager/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	m := registry.ParseManifest("/proto/items/items.lst", "generic.fopro\n\n  food.fopro  \r\nsub/armor.fopro\n")

	assert.Equal(t, []string{"generic.fopro", "food.fopro", "sub/armor.fopro"}, m.Entries)
	assert.Equal(t, filepath.Join("/proto/items", "food.fopro"), m.Resolve("food.fopro"))
	assert.Equal(t, []string{
		filepath.Join("/proto/items", "generic.fopro"),
		filepath.Join("/proto/items", "food.fopro"),
		filepath.Join("/proto/items", "sub", "armor.fopro"),
	}, m.Files())
}

func TestReadManifest(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "critters.lst")
		require.NoError(t, os.WriteFile(path, []byte("a.fopro\nb.fopro"), 0644))

		m, err := registry.ReadManifest(path)
		require.NoError(t, err)
		assert.Equal(t, path, m.Path)
		assert.Equal(t, []string{"a.fopro", "b.fopro"}, m.Entries)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := registry.ReadManifest(filepath.Join(t.TempDir(), "none.lst"))
		require.Error(t, err)
		assert.True(t, protoerr.Is(err, protoerr.IO))
	})
}
