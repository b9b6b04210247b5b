package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDirNonRecursive(t *testing.T) {
	t.Parallel()

	files, err := scanDir(filepath.Join("testdata", "python"), false)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, "calculator", files[0].name)
	assert.Equal(t, filepath.Join("testdata", "python", "calculator.py"), files[0].path)
}

func TestScanDirRecursive(t *testing.T) {
	t.Parallel()

	files, err := scanDir(filepath.Join("testdata", "python"), true)
	require.NoError(t, err)

	require.Len(t, files, 2)
	assert.Equal(t, "calculator", files[0].name)
	assert.Equal(t, "geometry.shapes", files[1].name)
	assert.Equal(t, filepath.Join("testdata", "python", "geometry", "shapes.py"), files[1].path)
}

func TestScanDirDottedPrefixAtDepth(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "mod.py"), []byte("x = 1\n"), 0o644))

	files, err := scanDir(root, true)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.b.mod", files[0].name)
}

func TestScanDirRejectsFile(t *testing.T) {
	t.Parallel()

	_, err := scanDir(filepath.Join("testdata", "python", "calculator.py"), false)
	assert.Error(t, err)
}

func TestScanFile(t *testing.T) {
	t.Parallel()

	files, err := scanFile(filepath.Join("testdata", "python", "calculator.py"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "calculator", files[0].name)
}

func TestScanFileErrors(t *testing.T) {
	t.Parallel()

	_, err := scanFile(filepath.Join("testdata", "python", "missing.py"))
	assert.Error(t, err)

	_, err = scanFile(filepath.Join("testdata", "python"))
	assert.Error(t, err)
}
