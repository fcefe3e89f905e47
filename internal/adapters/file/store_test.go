package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/curvedit/internal/adapters/file"
	"github.com/aretw0/curvedit/pkg/ports"
)

// Ensure Store implements TableStore
var _ ports.TableStore = (*file.Store)(nil)

func TestStore_Contract(t *testing.T) {
	ports.RunTableStoreContract(t, file.New(t.TempDir()))
}

func TestStore_ListFiltersTableFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"curves.tbl", "intro-crv.tbm", "README.md", "OLD.TBL"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.tbl"), 0755))

	names, err := file.New(dir).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"OLD.TBL", "curves.tbl", "intro-crv.tbm"}, names)
}

func TestStore_ListMissingDirectory(t *testing.T) {
	names, err := file.New(filepath.Join(t.TempDir(), "absent")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_RejectsPaths(t *testing.T) {
	s := file.New(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"", "..", "../escape.tbl", "sub/dir.tbl"} {
		assert.Error(t, s.Save(ctx, name, []byte("x")), "name %q", name)
		_, err := s.Load(ctx, name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s := file.New(dir)
	require.NoError(t, s.Save(context.Background(), "curves.tbl", []byte("one")))
	require.NoError(t, s.Save(context.Background(), "curves.tbl", []byte("two")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "curves.tbl"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}
