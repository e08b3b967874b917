package service

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"tabshelf/internal/kv"
	"tabshelf/internal/tabs/catalog"
	"tabshelf/internal/tabs/library"
	"tabshelf/internal/tabs/persist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) (TabService, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	lib := library.New(catalog.Builtin(), persist.NewAdapter(store, ""))
	lib.Load()
	return NewTabService(lib), store
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func sheetContent(title string) string {
	return "---\nartist: Someone\ninstrument: Guitare\ntuning: Standard\ncapo: 0\ndifficulty: Facile\ntags: [x]\n---\n# " + title + "\n\n```\nE|--|\n```\n"
}

func TestGet(t *testing.T) {
	svc, _ := setupService(t)

	tab, err := svc.Get("coastline-ukulele")
	require.NoError(t, err)
	assert.Equal(t, "Ukulele", tab.Instrument)

	_, err = svc.Get("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestImportAndList(t *testing.T) {
	svc, _ := setupService(t)

	res := svc.Import(`{"id":"svc-tab","title":"T","artist":"A","instrument":"I","tuning":"T","capo":"0","difficulty":"D","tags":[],"content":"C"}`)
	require.Equal(t, 1, res.Added)

	tabs := svc.List()
	require.Len(t, tabs, 4)
	assert.Equal(t, "svc-tab", tabs[3].ID)

	base, user := svc.Counts()
	assert.Equal(t, 3, base)
	assert.Equal(t, 1, user)
	assert.True(t, svc.IsBase("sunrise-groove"))
	assert.False(t, svc.IsBase("svc-tab"))
	assert.True(t, svc.Persistent())
}

func TestImportFiles(t *testing.T) {
	svc, _ := setupService(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "batch.json"), `[
		{"id":"json-1","title":"J1","artist":"A","instrument":"I","tuning":"T","capo":1,"difficulty":"D","tags":["a"],"content":"C"},
		{"id":"sunrise-groove","title":"Dup","artist":"A","instrument":"I","tuning":"T","capo":1,"difficulty":"D","tags":[],"content":"C"}
	]`)
	writeFile(t, filepath.Join(dir, "broken.json"), `{oops`)
	writeFile(t, filepath.Join(dir, "sheets", "Blue Moon.md"), sheetContent("Blue Moon"))
	writeFile(t, filepath.Join(dir, "sheets", "Red Sky.md"), sheetContent("Red Sky"))

	results, err := svc.ImportFiles([]string{
		filepath.Join(dir, "batch.json"),
		filepath.Join(dir, "broken.json"),
		filepath.Join(dir, "sheets"),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "batch.json", results[0].Source)
	assert.Equal(t, 1, results[0].Added)
	assert.Equal(t, []string{"Tab 2: id 'sunrise-groove' already in use."}, results[0].Errors)

	assert.Equal(t, "broken.json", results[1].Source)
	assert.Equal(t, library.OutcomeInvalidJSON, results[1].Outcome)

	assert.Equal(t, "Blue Moon.md (+1 sheets)", results[2].Source)
	assert.Equal(t, 2, results[2].Added)
	assert.Empty(t, results[2].Errors)

	tab, err := svc.Get("blue-moon")
	require.NoError(t, err)
	assert.Equal(t, "Blue Moon", tab.Title)
	assert.Equal(t, "0", tab.Capo)
	assert.Equal(t, "E|--|", tab.Content)
}

func TestImportFiles_MissingPath(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.ImportFiles([]string{filepath.Join(t.TempDir(), "nope.json")})
	assert.Error(t, err)
}

func TestImportFiles_SheetCollidesWithinBatch(t *testing.T) {
	svc, _ := setupService(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "---\nid: same\n"+sheetContent("A")[4:])
	writeFile(t, filepath.Join(dir, "b.md"), "---\nid: same\n"+sheetContent("B")[4:])

	results, err := svc.ImportFiles([]string{filepath.Join(dir, "a.md"), filepath.Join(dir, "b.md")})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Added)
	assert.Equal(t, []string{"Tab 2: id 'same' already in use."}, results[0].Errors)
}

func TestExport(t *testing.T) {
	svc, _ := setupService(t)
	dir := t.TempDir()

	path, err := svc.Export("sunrise-groove", dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = svc.Export("missing", dir)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestExportThenImportElsewhere(t *testing.T) {
	svc, _ := setupService(t)
	res := svc.Import(`{"id":"travels","title":"Travels","artist":"A","instrument":"I","tuning":"T","capo":"0","difficulty":"D","tags":["t"],"content":"C"}`)
	require.Equal(t, 1, res.Added)

	path, err := svc.Export("travels", t.TempDir())
	require.NoError(t, err)

	other, _ := setupService(t)
	results, err := other.ImportFiles([]string{path})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Added)

	want, _ := svc.Get("travels")
	got, err := other.Get("travels")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSuggest(t *testing.T) {
	svc, _ := setupService(t)

	got := svc.Suggest("sunrse", 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "sunrise-groove", got[0])

	assert.Len(t, svc.Suggest("e", 2), 2)
	assert.Empty(t, svc.Suggest("zzzz", 3))
	assert.Empty(t, svc.Suggest("sunrise", 0))
}

func TestJSONSafe(t *testing.T) {
	in := map[string]any{
		"capo":   math.Inf(1),
		"nested": map[any]any{1: math.NaN(), "ok": 2.0},
		"tags":   []any{"a", math.NaN()},
	}
	out := jsonSafe(in).(map[string]any)

	assert.Nil(t, out["capo"])
	assert.Equal(t, map[string]any{"1": nil, "ok": 2.0}, out["nested"])
	assert.Equal(t, []any{"a", nil}, out["tags"])
}
