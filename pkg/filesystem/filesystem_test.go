package filesystem

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/civixgo/civix/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseFS(t *testing.T, fsys types.FS, root string) {
	t.Helper()

	testFile := filepath.Join(root, "tests", "phpunit", "bootstrap.php")
	content := []byte("<?php\n")

	require.NoError(t, fsys.MkdirAll(filepath.Dir(testFile), 0755))
	require.NoError(t, fsys.WriteFile(testFile, content, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "bootstrap.php", info.Name())
	assert.Equal(t, int64(len(content)), info.Size())

	got, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	dirInfo, err := fsys.Stat(filepath.Dir(testFile))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())

	// MkdirAll on an existing directory is a no-op
	require.NoError(t, fsys.MkdirAll(filepath.Dir(testFile), 0755))

	_, err = fsys.Stat(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewOS(t *testing.T) {
	exerciseFS(t, NewOS(), t.TempDir())
}

func TestNewAferoFS(t *testing.T) {
	exerciseFS(t, NewAferoFS(afero.NewMemMapFs()), "/ext")
}

func TestAferoFS_ReadDirectoryFails(t *testing.T) {
	fsys := NewMemory()
	require.NoError(t, fsys.MkdirAll("/ext/tests", 0755))

	_, err := fsys.ReadFile("/ext/tests")
	assert.ErrorIs(t, err, fs.ErrInvalid)
}
