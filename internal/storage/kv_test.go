package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kegeltoday/internal/core/model"
)

func openTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	store, err := OpenSQLiteKV(filepath.Join(t.TempDir(), "data", DatabaseFileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteKVLastWriteWins(t *testing.T) {
	store := openTestKV(t)

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("k", "first"))
	require.NoError(t, store.Set("k", "second"))

	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestSQLiteKVPersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), DatabaseFileName)

	first, err := OpenSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, NewProgressStore(first).RecordCompletion("2026-10-14"))
	require.NoError(t, first.Close())

	second, err := OpenSQLiteKV(path)
	require.NoError(t, err)
	defer second.Close()
	assert.Equal(t, []string{"2026-10-14"}, NewProgressStore(second).ListCompletions())
}

func TestMemoryKV(t *testing.T) {
	store := NewMemoryKV()
	_, err := store.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("k", "v"))
	value, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestThemeMode(t *testing.T) {
	store := NewMemoryKV()
	assert.Equal(t, model.ThemeAuto, LoadThemeMode(store))

	require.NoError(t, SaveThemeMode(store, model.ThemeDark))
	assert.Equal(t, model.ThemeDark, LoadThemeMode(store))

	require.NoError(t, store.Set(ThemeModeKey, "sepia"))
	assert.Equal(t, model.ThemeAuto, LoadThemeMode(store))
}
