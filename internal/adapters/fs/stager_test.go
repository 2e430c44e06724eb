package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintsync/internal/adapters/fs"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path) //nolint:gosec // test path
	require.NoError(t, err)
	return string(b)
}

func TestStager_StageIsUnique(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := fs.NewStager(filepath.Join(root, ".tmp"))

	a, err := s.Stage()
	require.NoError(t, err)
	b, err := s.Stage()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.DirExists(t, a)
	assert.DirExists(t, b)
	assert.Equal(t, filepath.Join(root, ".tmp"), filepath.Dir(a))
}

func TestStager_InstallFresh(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := fs.NewStager(filepath.Join(root, ".tmp"))

	staged, err := s.Stage()
	require.NoError(t, err)
	writeFile(t, filepath.Join(staged, "status"), "new")

	dest := filepath.Join(root, "modules", "mod")
	require.NoError(t, s.Install(staged, dest))

	assert.Equal(t, "new", readFile(t, filepath.Join(dest, "status")))
	assert.NoDirExists(t, staged)
}

func TestStager_InstallReplaces(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := fs.NewStager(filepath.Join(root, ".tmp"))
	dest := filepath.Join(root, "modules", "mod")
	writeFile(t, filepath.Join(dest, "status"), "old")
	writeFile(t, filepath.Join(dest, "only-old"), "old")

	staged, err := s.Stage()
	require.NoError(t, err)
	writeFile(t, filepath.Join(staged, "status"), "new")

	require.NoError(t, s.Install(staged, dest))

	assert.Equal(t, "new", readFile(t, filepath.Join(dest, "status")))
	assert.NoFileExists(t, filepath.Join(dest, "only-old"))

	entries, err := os.ReadDir(filepath.Join(root, ".tmp"))
	require.NoError(t, err)
	assert.Empty(t, entries, "retired snapshot is removed")
}

func TestStager_InstallFailureKeepsPrevious(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := fs.NewStager(filepath.Join(root, ".tmp"))
	dest := filepath.Join(root, "modules", "mod")
	writeFile(t, filepath.Join(dest, "status"), "old")

	// The staged directory does not exist so the final rename fails.
	err := s.Install(filepath.Join(root, ".tmp", "missing"), dest)
	require.Error(t, err)

	assert.Equal(t, "old", readFile(t, filepath.Join(dest, "status")))

	entries, err := os.ReadDir(filepath.Join(root, ".tmp"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStager_Discard(t *testing.T) {
	t.Parallel()

	s := fs.NewStager(filepath.Join(t.TempDir(), ".tmp"))
	staged, err := s.Stage()
	require.NoError(t, err)
	writeFile(t, filepath.Join(staged, "a", "b"), "x")

	require.NoError(t, s.Discard(staged))
	assert.NoDirExists(t, staged)
}
