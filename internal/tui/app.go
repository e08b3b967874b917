package tui

import (
	"tabshelf/internal/config"
	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/service"
	"tabshelf/internal/tui/pages"
	"tabshelf/internal/tui/reader"
	"tabshelf/internal/tui/shared"
	"tabshelf/internal/tui/shelf"
	"tabshelf/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg         *config.Config
	svc         service.TabService
	currentView ViewType
	homeView    pages.HomeModel
	aboutView   pages.AboutModel
	shelfView   shelf.Model
	readerView  reader.Model
	showHelp    bool
	width       int
	height      int
	ready       bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, svc service.TabService) AppModel {
	return AppModel{
		cfg:         cfg,
		svc:         svc,
		currentView: viewFromName(cfg.DefaultView),
		homeView:    pages.NewHomeModel(svc),
		aboutView:   pages.NewAboutModel(cfg.DataDir, cfg.Backend),
		shelfView:   shelf.New(svc),
		readerView:  reader.New(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.homeView.SetSize(msg.Width, contentHeight)
		m.aboutView.SetSize(msg.Width, contentHeight)
		m.shelfView.SetSize(msg.Width, contentHeight)
		m.readerView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewLibrary {
			m.shelfView.Refresh()
		}
		return m, nil

	case OpenTabMsg:
		tab, err := m.svc.Get(msg.ID)
		if err != nil {
			logs.Logger.Warn("open tab", zap.String("id", msg.ID), zap.Error(err))
			m.readerView.SetMissing(msg.ID)
		} else {
			m.readerView.SetTab(tab, m.svc.IsBase(tab.ID))
		}
		m.currentView = ViewReader
		return m, nil

	case ImportDoneMsg:
		// Imports can be started from any view; the library shows the outcome.
		var cmd tea.Cmd
		m.shelfView, cmd = m.shelfView.Update(msg)
		m.currentView = ViewLibrary
		return m, cmd

	case DataRefreshMsg:
		m.shelfView.Refresh()
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// The import prompt takes every key until it closes.
		if m.currentView == ViewLibrary && m.shelfView.IsInModalState() {
			break
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1":
			m.currentView = ViewHome
			return m, nil
		case "2":
			m.currentView = ViewLibrary
			m.shelfView.Refresh()
			return m, nil
		case "a":
			m.currentView = ViewAbout
			return m, nil
		case "i":
			m.currentView = ViewLibrary
			return m, m.shelfView.OpenImport()
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			if m.currentView == ViewAbout {
				m.currentView = ViewHome
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case ViewLibrary:
		m.shelfView, cmd = m.shelfView.Update(msg)
	case ViewReader:
		m.readerView, cmd = m.readerView.Update(msg)
	}

	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return shared.RenderHelpPopup("tabshelf - Keyboard Shortcuts", helpSections, m.width, m.height)
	}

	var content string
	switch m.currentView {
	case ViewHome:
		content = m.homeView.View()
	case ViewLibrary:
		content = m.shelfView.View()
	case ViewReader:
		content = m.readerView.View()
	case ViewAbout:
		content = m.aboutView.View()
	}

	statusBar := theme.StatusBar.Width(m.width).Render(m.renderNav())

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderNav() string {
	item := func(key, label string, active bool) string {
		if active {
			return theme.NavActive.Render(key + ":" + label)
		}
		return theme.NavInactive.Render(key + ":" + label)
	}

	nav := item("1", "home", m.currentView == ViewHome) + " " +
		item("2", "library", m.currentView == ViewLibrary || m.currentView == ViewReader) + " " +
		item("a", "about", m.currentView == ViewAbout)

	return nav + theme.HelpHint.Render(" | i:import | ?:help | q:quit")
}

var helpSections = []shared.HelpSection{
	{
		Title: "Global Navigation",
		Binds: []shared.HelpBind{
			{Key: "1", Desc: "Home"},
			{Key: "2", Desc: "Library"},
			{Key: "a", Desc: "About"},
			{Key: "i", Desc: "Import tabs from files"},
			{Key: "?", Desc: "Show this help"},
			{Key: "q", Desc: "Quit"},
			{Key: "ctrl+c", Desc: "Force quit"},
		},
	},
	{
		Title: "Library",
		Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Navigate tabs"},
			{Key: "g / G", Desc: "First / last tab"},
			{Key: "enter", Desc: "Open in reader"},
			{Key: "esc", Desc: "Back to home"},
		},
	},
	{
		Title: "Reader",
		Binds: []shared.HelpBind{
			{Key: "j / k", Desc: "Scroll"},
			{Key: "pgup / pgdn", Desc: "Page"},
			{Key: "g / G", Desc: "Top / bottom"},
			{Key: "esc", Desc: "Back to library"},
		},
	},
}
