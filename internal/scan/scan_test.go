package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("export {}\n"), 0o644))
}

func TestList(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "FollowupStage.tsx"))
	touch(t, filepath.Join(dir, "DispatchPlanStage.tsx"))
	touch(t, filepath.Join(dir, "index.ts"))
	touch(t, filepath.Join(dir, "README.md"))
	touch(t, filepath.Join(dir, "Stage.tsx.bak"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "legacy.tsx"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	touch(t, filepath.Join(dir, "nested", "Deep.tsx"))

	entries, err := List(dir, DefaultPattern)
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{Name: "DispatchPlanStage.tsx", Path: filepath.Join(dir, "DispatchPlanStage.tsx")},
		{Name: "FollowupStage.tsx", Path: filepath.Join(dir, "FollowupStage.tsx")},
	}, entries)
}

func TestList_CustomPattern(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "A.tsx"))
	touch(t, filepath.Join(dir, "B.jsx"))
	touch(t, filepath.Join(dir, "c.ts"))

	entries, err := List(dir, "*.{tsx,jsx}")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A.tsx", entries[0].Name)
	assert.Equal(t, "B.jsx", entries[1].Name)
}

func TestList_Empty(t *testing.T) {
	entries, err := List(t.TempDir(), DefaultPattern)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestList_MissingDirectory(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"), DefaultPattern)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "reading directory")
}

func TestList_BadPattern(t *testing.T) {
	_, err := List(t.TempDir(), "[*.tsx")
	require.ErrorIs(t, err, doublestar.ErrBadPattern)
}
