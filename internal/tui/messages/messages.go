package messages

import (
	"tabshelf/internal/tabs/service"

	tea "github.com/charmbracelet/bubbletea"
)

// ViewType represents the different views in the application
type ViewType int

const (
	ViewHome ViewType = iota
	ViewLibrary
	ViewReader
	ViewAbout
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenTabMsg asks the app to show a tab in the reader
type OpenTabMsg struct {
	ID string
}

// ImportDoneMsg carries the outcome of an import started from the TUI
type ImportDoneMsg struct {
	Results []service.FileResult
	Err     error
}

// DataRefreshMsg signals that data should be reloaded
type DataRefreshMsg struct{}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}

func OpenTab(id string) tea.Cmd {
	return func() tea.Msg {
		return OpenTabMsg{ID: id}
	}
}
