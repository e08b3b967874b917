package pages

import (
	"fmt"
	"strings"

	"tabshelf/internal/tabs/service"
	"tabshelf/internal/tui/messages"
	"tabshelf/internal/tui/shared"
	"tabshelf/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel is the landing page: what is on the shelf and where to go next.
type HomeModel struct {
	svc    service.TabService
	width  int
	height int
}

func NewHomeModel(svc service.TabService) HomeModel {
	return HomeModel{svc: svc}
}

func (m *HomeModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return m, messages.SwitchView(messages.ViewLibrary)
	}
	return m, nil
}

func (m HomeModel) View() string {
	base, user := m.svc.Counts()

	var b strings.Builder
	b.WriteString(theme.Title.Render("tabshelf") + "\n")
	b.WriteString(theme.Muted.Render("Guitar, bass and ukulele tabs, kept close at hand.") + "\n\n")
	b.WriteString(fmt.Sprintf("%s built-in tabs\n", theme.Bold.Render(fmt.Sprint(base))))
	b.WriteString(fmt.Sprintf("%s imported tabs\n", theme.Bold.Render(fmt.Sprint(user))))

	if !m.svc.Persistent() {
		b.WriteString("\n" + theme.Warn.Render("Storage unavailable: imports last for this session only.") + "\n")
	}

	hints := theme.HelpHint.Render("enter: open library · i: import · a: about · ?: help · q: quit")
	return shared.CenterWithBottomHints(b.String(), hints, m.height)
}
