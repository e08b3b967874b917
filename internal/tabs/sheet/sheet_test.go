package sheet

import (
	"os"
	"path/filepath"
	"testing"

	"tabshelf/internal/tabs/catalog"
	"tabshelf/internal/tabs/data"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSheet = "---\n" +
	"id: night-drive\n" +
	"artist: Neon Roads\n" +
	"instrument: Guitare\n" +
	"tuning: Drop D\n" +
	"capo: 2\n" +
	"difficulty: Facile\n" +
	"tags: [synth, ' retro ']\n" +
	"---\n" +
	"\n" +
	"# Night Drive\n" +
	"\n" +
	"Some notes about the song.\n" +
	"\n" +
	"```text\n" +
	"e|---0---|\n" +
	"B|---1---|\n" +
	"```\n"

func TestParseSheet_Full(t *testing.T) {
	c := ParseSheet([]byte(fullSheet), "whatever.md")

	assert.Equal(t, "night-drive", c["id"])
	assert.Equal(t, "Night Drive", c["title"])
	assert.Equal(t, 2, c["capo"])
	assert.Equal(t, "e|---0---|\nB|---1---|", c["content"])

	tab, errs := data.Normalize(c)
	require.Empty(t, errs)
	assert.Equal(t, "2", tab.Capo)
	assert.Equal(t, []string{"synth", "retro"}, tab.Tags)
}

func TestParseSheet_Defaults(t *testing.T) {
	content := "---\nartist: Nobody\n---\n# Loose Tab\n\nE|--0--|\nB|--1--|\n"
	c := ParseSheet([]byte(content), "Loose Tab (v2).md")

	assert.Equal(t, "loose-tab-v2", c["id"], "id falls back to the filename slug")
	assert.Equal(t, "Loose Tab", c["title"])
	assert.Equal(t, "E|--0--|\nB|--1--|", c["content"], "body without the heading is the content")
}

func TestParseSheet_FrontmatterWins(t *testing.T) {
	content := "---\nid: keep\ntitle: From Frontmatter\ncontent: inline\n---\n# Heading\n\n```\nignored\n```\n"
	c := ParseSheet([]byte(content), "other.md")

	assert.Equal(t, "keep", c["id"])
	assert.Equal(t, "From Frontmatter", c["title"])
	assert.Equal(t, "inline", c["content"])
}

func TestParseSheet_NoFrontmatter(t *testing.T) {
	c := ParseSheet([]byte("just text"), "plain.md")
	assert.Equal(t, "plain", c["id"])
	assert.Equal(t, "just text", c["content"])
	assert.NotContains(t, c, "title")

	_, errs := data.Normalize(c)
	assert.NotEmpty(t, errs, "a bare text file is not a complete tab")
}

func TestRenderRoundTrip(t *testing.T) {
	for _, tab := range catalog.Builtin() {
		tab.Source = "https://example.com/" + tab.ID
		raw, err := Render(tab)
		require.NoError(t, err)

		got, errs := data.Normalize(ParseSheet(raw, "ignored.md"))
		require.Empty(t, errs, "sheet for %s", tab.ID)
		if diff := cmp.Diff(tab, got); diff != "" {
			t.Errorf("round trip for %s (-want +got):\n%s", tab.ID, diff)
		}
	}
}

func TestRenderRoundTrip_MarkdownInTitle(t *testing.T) {
	titles := []string{"Song #", "*Intro* Riff", "C# Blues ##", "Line one\nLine two", "`code` & <b>"}
	for _, title := range titles {
		tab := catalog.Builtin()[0]
		tab.Title = title
		raw, err := Render(tab)
		require.NoError(t, err)

		got, errs := data.Normalize(ParseSheet(raw, "ignored.md"))
		require.Empty(t, errs, "title %q", title)
		assert.Equal(t, title, got.Title)
	}
}

func TestRender_ContentWithBackticks(t *testing.T) {
	tab := catalog.Builtin()[0]
	tab.Content = "```\ninner fence\n```"
	raw, err := Render(tab)
	require.NoError(t, err)

	got, errs := data.Normalize(ParseSheet(raw, "x.md"))
	require.Empty(t, errs)
	assert.Equal(t, tab.Content, got.Content)
}

func TestWriteAndReadSheet(t *testing.T) {
	dir := t.TempDir()
	tab := catalog.Builtin()[1]

	path, err := WriteSheet(tab, filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "midnight-bassline.md"), path)

	c, err := ReadSheet(path)
	require.NoError(t, err)
	got, errs := data.Normalize(c)
	require.Empty(t, errs)
	if diff := cmp.Diff(tab, got); diff != "" {
		t.Errorf("read back mismatch (-want +got):\n%s", diff)
	}

	_, err = ReadSheet(filepath.Join(dir, "missing.md"))
	assert.Error(t, err)
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"b.md",
		"a.json",
		"notes.txt",
		".hidden.md",
		"nested/c.MD",
		"node_modules/skip.md",
		".git/skip.json",
	} {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}

	files, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.md"),
		filepath.Join(dir, "nested", "c.MD"),
	}, files)

	_, err = ScanDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestSlugFromFilename(t *testing.T) {
	tests := map[string]string{
		"Sunrise Groove.md":   "sunrise-groove",
		"already-slugged.md":  "already-slugged",
		"  Spaces  .markdown": "spaces",
		"Ünïcode.md":          "n-code",
		"!!!.md":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, slugFromFilename(in), in)
	}
}
