package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionFromFilename(t *testing.T) {
	assert.Equal(t, "001", VersionFromFilename("001_catalog.sql"))
	assert.Equal(t, "010", VersionFromFilename("/tmp/migrations/010_add_index_on_x.sql"))
}

func TestPendingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_subjects.sql", "001_catalog.sql", "003_people.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "004_dir.sql"), 0o700))

	pending, err := PendingFiles(dir, []string{"002"})
	require.NoError(t, err)
	assert.Equal(t, []string{"001_catalog.sql", "003_people.sql"}, pending)
}

func TestPendingFiles_MissingDirectory(t *testing.T) {
	_, err := PendingFiles(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}

func TestRepositoryMigrationsAreOrdered(t *testing.T) {
	pending, err := PendingFiles(filepath.Join("..", "..", "..", "migrations"), nil)
	require.NoError(t, err)
	require.NotEmpty(t, pending)
	assert.Equal(t, "001_catalog.sql", pending[0])
}
