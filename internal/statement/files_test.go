package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDir_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	imp := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(imp, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(imp, "statement.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(imp, "notes.txt"), []byte("data"), 0o644))

	files, err := ScanDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "statement.csv", files[0].Name)
	assert.Equal(t, filepath.Join(imp, "statement.csv"), files[0].Path)
}

func TestScanDir_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	imp := filepath.Join(dir, "import")
	processed := filepath.Join(imp, "processed")
	require.NoError(t, os.MkdirAll(processed, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(imp, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "old.csv"), []byte("data"), 0o644))

	files, err := ScanDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScanDir_NoImportDir(t *testing.T) {
	files, err := ScanDir(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	imp := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(imp, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(imp, "statement.csv"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "statement.csv"))

	_, err := os.Stat(filepath.Join(imp, "statement.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "import", "processed", "statement.csv"))
	assert.NoError(t, err)
}
