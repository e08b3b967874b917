package shelf

import (
	"fmt"
	"strings"

	"tabshelf/internal/tabs/data"
	"tabshelf/internal/tabs/service"
	"tabshelf/internal/tui/messages"
	"tabshelf/internal/tui/shared"
	"tabshelf/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxStatusErrors caps how many per-tab import errors are listed under the list.
const maxStatusErrors = 5

// Model lists every tab in the library and hosts the import prompt.
type Model struct {
	svc    service.TabService
	tabs   []data.Tab
	cursor int
	offset int
	width  int
	height int

	input     *shared.TextInputModel
	importing bool

	status      string
	statusLines []string
	statusErr   bool
}

// New creates the library list, loaded from svc.
func New(svc service.TabService) Model {
	m := Model{svc: svc}
	m.Refresh()
	return m
}

// Refresh reloads the tab list, keeping the cursor in range.
func (m *Model) Refresh() {
	m.tabs = m.svc.List()
	if m.cursor >= len(m.tabs) {
		m.cursor = len(m.tabs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	if m.input != nil {
		m.input.SetWidth(min(w, 80))
	}
}

// IsInModalState reports whether the import prompt owns the keyboard.
func (m Model) IsInModalState() bool {
	return m.input != nil
}

// Selected returns the tab under the cursor.
func (m Model) Selected() (data.Tab, bool) {
	if len(m.tabs) == 0 {
		return data.Tab{}, false
	}
	return m.tabs[m.cursor], true
}

// OpenImport shows the import prompt.
func (m *Model) OpenImport() tea.Cmd {
	m.input = shared.NewPathInput("Import from")
	m.input.SetWidth(min(m.width, 80))
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shared.TextInputResultMsg:
		m.input = nil
		if msg.Cancelled {
			return m, nil
		}
		m.importing = true
		m.status = "Importing..."
		m.statusLines = nil
		m.statusErr = false
		return m, runImport(m.svc, shared.SplitPaths(msg.Value))

	case messages.ImportDoneMsg:
		m.importing = false
		m.applyImportResult(msg)
		m.Refresh()
		return m, nil

	case tea.KeyMsg:
		if m.input != nil {
			_, cmd := m.input.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		m.offset, _ = shared.Window(m.cursor, m.offset, len(m.tabs), m.listHeight())
		return m, cmd
	}

	if m.input != nil {
		_, cmd := m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.tabs)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.tabs) > 0 {
			m.cursor = len(m.tabs) - 1
		}
	case "enter", "l":
		if tab, ok := m.Selected(); ok {
			return m, messages.OpenTab(tab.ID)
		}
	case "i":
		if !m.importing {
			return m, m.OpenImport()
		}
	case "esc":
		return m, messages.SwitchView(messages.ViewHome)
	}
	return m, nil
}

// runImport reads paths off the update loop and reports back with ImportDoneMsg.
func runImport(svc service.TabService, paths []string) tea.Cmd {
	return func() tea.Msg {
		results, err := svc.ImportFiles(paths)
		return messages.ImportDoneMsg{Results: results, Err: err}
	}
}

func (m *Model) applyImportResult(msg messages.ImportDoneMsg) {
	m.statusLines = nil
	if msg.Err != nil {
		m.status = "Import failed: " + msg.Err.Error()
		m.statusErr = true
		return
	}

	added, failed := 0, 0
	var lines []string
	for _, r := range msg.Results {
		added += r.Added
		failed += len(r.Errors)
		for _, e := range r.Errors {
			lines = append(lines, r.Source+": "+e)
		}
		if r.SaveErr != nil {
			lines = append(lines, r.Source+": not saved: "+r.SaveErr.Error())
		}
	}

	m.status = fmt.Sprintf("Imported %d tab(s)", added)
	if failed > 0 {
		m.status += fmt.Sprintf(", %d error(s)", failed)
	}
	m.statusErr = added == 0 && len(lines) > 0

	if len(lines) > maxStatusErrors {
		extra := len(lines) - maxStatusErrors
		lines = append(lines[:maxStatusErrors], fmt.Sprintf("... and %d more", extra))
	}
	m.statusLines = lines

	if added > 0 {
		// Jump to the first newly added tab (user tabs are listed last).
		m.tabs = m.svc.List()
		m.cursor = len(m.tabs) - added
	}
}

func (m Model) View() string {
	var lines []string

	base, user := m.svc.Counts()
	header := theme.Title.Render("Library") + "  " +
		theme.Muted.Render(fmt.Sprintf("%d built-in · %d imported", base, user))
	lines = append(lines, header, "")

	footer := m.renderStatus()
	listHeight := m.listHeight()

	if len(m.tabs) == 0 {
		lines = append(lines, theme.Muted.Render("  No tabs yet. Press i to import."))
	} else {
		start, end := shared.Window(m.cursor, m.offset, len(m.tabs), listHeight)
		for i := start; i < end; i++ {
			t := m.tabs[i]
			row := shared.StyledTabLine(t, m.svc.IsBase(t.ID))
			if i == m.cursor {
				row = theme.Cursor.Render("► ") + theme.SelectedBg.Render(row)
			} else {
				row = "  " + row
			}
			lines = append(lines, row)
		}
	}

	if len(footer) > 0 {
		lines = append(lines, "")
		lines = append(lines, footer...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	if m.input != nil {
		modal := m.input.View()
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
	}

	return content
}

// listHeight is the number of rows left for tabs after header and status.
func (m Model) listHeight() int {
	return m.height - 4 - len(m.renderStatus())
}

func (m Model) renderStatus() []string {
	if m.status == "" {
		return nil
	}
	style := theme.Ok
	if m.statusErr {
		style = theme.Error
	} else if len(m.statusLines) > 0 {
		style = theme.Warn
	}
	out := []string{style.Render(m.status)}
	for _, l := range m.statusLines {
		out = append(out, theme.Muted.Render("  "+strings.TrimSpace(l)))
	}
	return out
}
