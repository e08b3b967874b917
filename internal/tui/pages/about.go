package pages

import (
	"strings"

	"tabshelf/internal/tui/shared"
	"tabshelf/internal/tui/theme"
)

// AboutModel explains how the library is put together.
type AboutModel struct {
	dataDir string
	backend string
	width   int
	height  int
}

func NewAboutModel(dataDir, backend string) AboutModel {
	return AboutModel{dataDir: dataDir, backend: backend}
}

func (m *AboutModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m AboutModel) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("About tabshelf") + "\n\n")
	b.WriteString("The library combines a built-in catalog with the tabs you import.\n")
	b.WriteString("Built-in tabs are always listed first and their ids cannot be reused.\n\n")
	b.WriteString(theme.Subtitle.Render("Importing") + "\n")
	b.WriteString("  JSON: one tab object, or an array of them.\n")
	b.WriteString("  Sheets: markdown files with YAML frontmatter and a fenced tab block.\n")
	b.WriteString("  Each tab needs id, title, artist, instrument, tuning, capo,\n")
	b.WriteString("  difficulty, tags and content; source is optional.\n\n")
	b.WriteString(theme.Subtitle.Render("Storage") + "\n")
	b.WriteString("  Backend:  " + m.backend + "\n")
	b.WriteString("  Data dir: " + m.dataDir + "\n")

	hints := theme.HelpHint.Render("esc: home · q: quit")
	return shared.CenterWithBottomHints(b.String(), hints, m.height)
}
