package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.yaml", "nested/c.hcl", "nested/deeper/d.yml", "notes.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	t.Run("directory walk", func(t *testing.T) {
		files, err := FindFiles([]string{dir}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.hcl"),
			filepath.Join(dir, "nested", "c.hcl"),
		}, files)
	})

	t.Run("several extensions", func(t *testing.T) {
		files, err := FindFiles([]string{dir}, ".yaml", ".yml")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.yaml"),
			filepath.Join(dir, "nested", "deeper", "d.yml"),
		}, files)
	})

	t.Run("explicit files are de-duplicated", func(t *testing.T) {
		b := filepath.Join(dir, "b.hcl")
		files, err := FindFiles([]string{b, dir, b, filepath.Join(dir, "notes.txt")}, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindFiles([]string{filepath.Join(dir, "nope")}, ".hcl")
		require.Error(t, err)
		assert.ErrorContains(t, err, "error accessing path")
	})

	t.Run("no extension panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = FindFiles([]string{dir}) })
	})
}
