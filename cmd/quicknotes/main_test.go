package main

import (
	"path/filepath"
	"testing"

	"github.com/marcus/quicknotes/internal/kv"
	"github.com/marcus/quicknotes/internal/notes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", effectiveVersion("v1.2.3"))
	assert.NotEmpty(t, effectiveVersion(""))
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func readNotes(t *testing.T, path string) []notes.Note {
	t.Helper()
	backing, err := kv.OpenFile(path)
	require.NoError(t, err)
	defer backing.Close()
	return notes.NewPersister(backing, nil).Load()
}

func TestAddEditRm(t *testing.T) {
	for _, k := range []string{"QUICKNOTES_STORE", "QUICKNOTES_BACKEND", "QUICKNOTES_ADDR"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	store := filepath.Join(dir, "notes.json")
	base := []string{"--config", filepath.Join(dir, "missing.json"), "--store", store, "--backend", "file"}

	require.NoError(t, run(t, append(base, "add", "--title", "Groceries", "--body", "Milk")...))

	got := readNotes(t, store)
	require.Len(t, got, 1)
	assert.Equal(t, "Groceries", got[0].Title)
	id := got[0].ID

	require.NoError(t, run(t, append(base, "edit", id, "--body", "Eggs")...))
	got = readNotes(t, store)
	require.Len(t, got, 1)
	assert.Equal(t, "Groceries", got[0].Title, "title flag not given, title kept")
	assert.Equal(t, "Eggs", got[0].Body)

	err := run(t, append(base, "rm", "nope")...)
	assert.ErrorIs(t, err, notes.ErrNotFound)

	require.NoError(t, run(t, append(base, "rm", id)...))
	assert.Empty(t, readNotes(t, store))
}

func TestAddEmptyNoteFails(t *testing.T) {
	for _, k := range []string{"QUICKNOTES_STORE", "QUICKNOTES_BACKEND", "QUICKNOTES_ADDR"} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	store := filepath.Join(dir, "notes.json")

	err := run(t, "--config", filepath.Join(dir, "missing.json"), "--store", store,
		"add", "--title", " ", "--body", "")
	assert.ErrorIs(t, err, notes.ErrEmptyNote)
}
