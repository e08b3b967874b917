package shared

import (
	"path/filepath"
	"strings"
	"testing"

	"tabshelf/internal/tabs/data"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name                 string
		cursor, offset, n, h int
		start, end           int
	}{
		{"fits", 2, 0, 5, 10, 0, 5},
		{"scroll down", 12, 0, 20, 10, 3, 13},
		{"scroll up", 1, 5, 20, 10, 1, 11},
		{"keeps offset", 7, 5, 20, 10, 5, 15},
		{"no height", 0, 0, 5, 0, 0, 0},
		{"empty", 0, 0, 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.cursor, tt.offset, tt.n, tt.h)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestSplitPaths(t *testing.T) {
	t.Setenv("HOME", "/home/player")
	assert.Equal(t, []string{"/a.json", "/home/player/tabs"}, SplitPaths(" /a.json , ~/tabs ,"))
	assert.Empty(t, SplitPaths("  "))
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, ValidatePaths(dir))
	assert.Error(t, ValidatePaths(""))
	assert.Error(t, ValidatePaths(dir+","+filepath.Join(dir, "missing.json")))
}

func TestStyledTabLine(t *testing.T) {
	tab := data.Tab{Title: "Coastline", Artist: "Sea Breeze", Instrument: "Ukulele", Difficulty: "Facile", Tags: []string{"ukulele", "island"}}

	line := StyledTabLine(tab, true)
	assert.True(t, strings.HasPrefix(line, "[base]"))
	assert.Contains(t, line, "#ukulele #island")

	assert.True(t, strings.HasPrefix(StyledTabLine(tab, false), "[mine]"))
}

func TestCenterWithBottomHints(t *testing.T) {
	out := CenterWithBottomHints("body", "hints", 6)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 6)
	assert.Equal(t, "body", lines[2])
	assert.Equal(t, "hints", lines[5])
}
