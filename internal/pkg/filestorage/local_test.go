package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	ls, err := NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	stored, err := ls.Save(strings.NewReader("payload"), "Subjects.XLSX", "imports/subjects")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stored, "imports/subjects/"))
	assert.True(t, strings.HasSuffix(stored, ".xlsx"))

	content, err := os.ReadFile(ls.FullPath(stored))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	require.NoError(t, ls.Delete(stored))
	_, err = os.Stat(ls.FullPath(stored))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, ls.Delete(stored))
}

func TestLocalStorage_PathsStayUnderRoot(t *testing.T) {
	root := t.TempDir()
	ls, err := NewLocalStorage(root)
	require.NoError(t, err)

	stored, err := ls.Save(strings.NewReader("x"), "a.xlsx", "../../etc")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ls.FullPath(stored), root))
	assert.True(t, strings.HasPrefix(ls.FullPath("../../passwd"), root))
	assert.Equal(t, "", ls.FullPath(""))
}
