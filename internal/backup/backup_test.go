package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_CopiesTree(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "voicenotes_202501010000_a")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "notes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "index.html"), []byte("<html/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes", "a.html"), []byte("note a"), 0o644))

	dst, err := Create(src)
	require.NoError(t, err)

	assert.Equal(t, parent, filepath.Dir(dst))
	assert.True(t, strings.HasPrefix(filepath.Base(dst), "voicenotes_202501010000_a_backup_"))

	b, err := os.ReadFile(filepath.Join(dst, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html/>", string(b))

	b, err = os.ReadFile(filepath.Join(dst, "notes", "a.html"))
	require.NoError(t, err)
	assert.Equal(t, "note a", string(b))
}

func TestCreate_PreservesModTime(t *testing.T) {
	parent := t.TempDir()
	src := filepath.Join(parent, "snap")
	require.NoError(t, os.MkdirAll(src, 0o755))
	file := filepath.Join(src, "f.html")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	srcInfo, err := os.Stat(file)
	require.NoError(t, err)

	dst, err := Create(src)
	require.NoError(t, err)

	dstInfo, err := os.Stat(filepath.Join(dst, "f.html"))
	require.NoError(t, err)
	assert.True(t, srcInfo.ModTime().Equal(dstInfo.ModTime()))
}

func TestCreate_MissingSource(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
