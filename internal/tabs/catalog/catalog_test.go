package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestBuiltin(t *testing.T) {
	tabs := Builtin()
	require.Len(t, tabs, 3)

	ids := []string{tabs[0].ID, tabs[1].ID, tabs[2].ID}
	assert.Equal(t, []string{"sunrise-groove", "midnight-bassline", "coastline-ukulele"}, ids)

	// Callers get copies; mutating them must not leak into the next call.
	tabs[0].Tags[0] = "mutated"
	tabs[0].Title = "mutated"
	again := Builtin()
	assert.Equal(t, "acoustique", again[0].Tags[0])
	assert.Equal(t, "Sunrise Groove", again[0].Title)
}

func TestAssemble_NoFiles(t *testing.T) {
	assert.Len(t, Assemble(nil), 3)
}

func TestAssemble_WithFiles(t *testing.T) {
	dir := t.TempDir()
	single := writeFile(t, dir, "single.json", `{
		"id": "extra-one", "title": "Extra", "artist": "Someone", "instrument": "Guitare",
		"tuning": "Standard", "capo": 0, "difficulty": "Facile", "tags": ["a"], "content": "E|--|"
	}`)
	many := writeFile(t, dir, "many.json", `[
		{"id": "extra-two", "title": "Two", "artist": "X", "instrument": "Basse",
		 "tuning": "Standard", "capo": "Aucun", "difficulty": "Facile", "tags": [], "content": "G|--|"},
		{"id": "sunrise-groove", "title": "Dup", "artist": "X", "instrument": "Basse",
		 "tuning": "Standard", "capo": "1", "difficulty": "Facile", "tags": [], "content": "G|--|"},
		{"id": "broken", "title": ""}
	]`)
	corrupt := writeFile(t, dir, "corrupt.json", `{nope`)
	missing := filepath.Join(dir, "missing.json")

	tabs := Assemble([]string{single, missing, many, corrupt})
	require.Len(t, tabs, 5)
	assert.Equal(t, "extra-one", tabs[3].ID)
	assert.Equal(t, "0", tabs[3].Capo)
	assert.Equal(t, "extra-two", tabs[4].ID)
	assert.Equal(t, "Sunrise Groove", tabs[0].Title, "built-in wins over a duplicate file record")
}

func TestReadFile_Errors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "bad.json", `[`)
	_, err = ReadFile(bad)
	assert.Error(t, err)

	trailing := writeFile(t, t.TempDir(), "trailing.json", `{"id":"x","title":"T","artist":"A","instrument":"I","tuning":"T","capo":0,"difficulty":"D","tags":[],"content":"C"} junk`)
	_, err = ReadFile(trailing)
	assert.Error(t, err, "trailing bytes are rejected like the importer does")
}
