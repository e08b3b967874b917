package reader

import (
	"fmt"
	"strings"

	"tabshelf/internal/tabs/data"
	"tabshelf/internal/tui/messages"
	"tabshelf/internal/tui/shared"
	"tabshelf/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// headerHeight covers title, artist/meta lines, tags and a blank spacer.
const headerHeight = 5

// Model shows one tab with its content in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	tab      data.Tab
	builtin  bool
	missing  string
	width    int
	height   int
}

func New() Model {
	vp := viewport.New(80, 20)
	vp.SetContent("")
	return Model{viewport: vp}
}

// SetTab loads tab into the reader and scrolls to the top.
func (m *Model) SetTab(tab data.Tab, builtin bool) {
	m.tab = tab
	m.builtin = builtin
	m.missing = ""
	m.viewport.SetContent(theme.Sheet.Render(tab.Content))
	m.viewport.GotoTop()
}

// SetMissing shows a not-found notice for id.
func (m *Model) SetMissing(id string) {
	m.tab = data.Tab{}
	m.missing = id
	m.viewport.SetContent("")
}

// Tab returns the tab currently shown.
func (m Model) Tab() data.Tab {
	return m.tab
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-headerHeight-1, 1)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "h", "backspace":
			return m, messages.SwitchView(messages.ViewLibrary)
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.missing != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			theme.Error.Render("Tab not found: "+m.missing),
			theme.Muted.Render("esc: back to library"),
		)
	}

	var b strings.Builder

	origin := theme.BaseBadge.Render("[base]")
	if !m.builtin {
		origin = theme.UserBadge.Render("[mine]")
	}
	b.WriteString(theme.Title.Render(m.tab.Title) + " " + origin + "\n")
	b.WriteString(theme.Artist.Render(m.tab.Artist) + " · " + theme.Instrument.Render(m.tab.Instrument) + "\n")
	b.WriteString(theme.Muted.Render(shared.MetaLine(m.tab)))
	if m.tab.HasSource() {
		b.WriteString(theme.Muted.Render(" · " + m.tab.Source))
	}
	b.WriteString("\n")

	var tags []string
	for _, t := range m.tab.Tags {
		tags = append(tags, theme.Tag.Render("#"+t))
	}
	b.WriteString(strings.Join(tags, " ") + "\n")

	footer := theme.Muted.Render(fmt.Sprintf("%3.f%%  j/k scroll · g/G top/bottom · esc back", m.viewport.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left, b.String(), m.viewport.View(), footer)
}
