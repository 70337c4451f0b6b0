package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.bin")
	require.NoError(t, os.WriteFile(existing, nil, 0o644))

	assert.True(t, Exists(existing))
	assert.True(t, Exists(dir))
	assert.False(t, Exists(filepath.Join(dir, "nope.bin")))
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "app.zip")
	require.NoError(t, os.WriteFile(file, []byte("PK"), 0o644))

	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir), "directories are not files")
	assert.False(t, IsFile(filepath.Join(dir, "nope.zip")))

	link := filepath.Join(dir, "link.zip")
	if err := os.Symlink(file, link); err == nil {
		assert.True(t, IsFile(link))
	}
}
