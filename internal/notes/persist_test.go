package notes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/quicknotes/internal/kv"
)

type failingKV struct{ err error }

func (f failingKV) Get(string) (string, bool, error) { return "", false, f.err }
func (f failingKV) Set(string, string) error         { return f.err }
func (f failingKV) Close() error                     { return nil }

func TestLoad_FailsOpen(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
	}{
		{"absent", "", false},
		{"empty string", "", true},
		{"not json", "{definitely not", true},
		{"json object", `{"id":"1"}`, true},
		{"null", "null", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := kv.NewMemory()
			if tt.set {
				require.NoError(t, store.Set(StorageKey, tt.value))
			}
			got := NewPersister(store, nil).Load()
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestLoad_ReadErrorYieldsEmpty(t *testing.T) {
	got := NewPersister(failingKV{err: errors.New("boom")}, nil).Load()
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_BrowserExport(t *testing.T) {
	store := kv.NewMemory()
	raw := `[{"id":"1760000000000","title":"Groceries","body":"Milk, eggs","date":"Oct 9, 2025"}]`
	require.NoError(t, store.Set(StorageKey, raw))

	got := NewPersister(store, nil).Load()
	assert.Equal(t, []Note{{ID: "1760000000000", Title: "Groceries", Body: "Milk, eggs", Date: "Oct 9, 2025"}}, got)
}

func TestLoad_DropsBlankAndDuplicateIDs(t *testing.T) {
	store := kv.NewMemory()
	raw := `[{"id":"a","title":"first"},{"id":"","title":"blank"},{"id":"a","title":"dup"},{"id":"b","title":"second"}]`
	require.NoError(t, store.Set(StorageKey, raw))

	got := NewPersister(store, nil).Load()
	assert.Equal(t, []Note{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}}, got)
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, NewPersister(store, nil).Save(nil))

	v, ok, err := store.Get(StorageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestSave_WrapsBackendError(t *testing.T) {
	cause := errors.New("read-only filesystem")
	err := NewPersister(failingKV{err: cause}, nil).Save([]Note{{ID: "1"}})
	assert.True(t, errors.Is(err, cause))
}
