package kv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("tabshelf.user-tabs")
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should not contain the key")

	require.NoError(t, s.Set("tabshelf.user-tabs", []byte(`[{"id":"a"}]`)))
	got, ok, err := s.Get("tabshelf.user-tabs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(got))

	require.NoError(t, s.Set("tabshelf.user-tabs", []byte(`[]`)))
	got, ok, err = s.Get("tabshelf.user-tabs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got), "Set must overwrite")

	_, ok, err = s.Get("other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "data"))
	require.NoError(t, err)
	exerciseStore(t, s)

	// Values survive a new store over the same directory.
	again, err := NewFileStore(s.Dir())
	require.NoError(t, err)
	got, ok, err := again.Get("tabshelf.user-tabs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".kv-", "temp files must not be left behind")
	}
}

func TestFileStore_EmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestKeyFilename(t *testing.T) {
	tests := map[string]string{
		"tabshelf.user-tabs": "tabshelf.user-tabs.json",
		"../../etc/passwd":   "_.._etc_passwd.json",
		"":                   "_.json",
		"a b/c":              "a_b_c.json",
	}
	for key, want := range tests {
		assert.Equal(t, want, keyFilename(key), "key %q", key)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, ok, err := reopened.Get("tabshelf.user-tabs")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLiteStore_InMemory(t *testing.T) {
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestUnavailable(t *testing.T) {
	var s Store = Unavailable{}
	require.NoError(t, s.Set("k", []byte("v")))
	_, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, IsUnavailable(s))
	assert.True(t, IsUnavailable(nil))
	assert.False(t, IsUnavailable(NewMemoryStore()))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, backend := range []string{"", "file", "FILE", "sqlite", "memory", "none"} {
		s, closeFn, err := Open(backend, dir)
		require.NoError(t, err, "backend %q", backend)
		require.NotNil(t, s)
		require.NoError(t, closeFn())
	}

	_, closeFn, err := Open("redis", dir)
	require.NotNil(t, closeFn)
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}
