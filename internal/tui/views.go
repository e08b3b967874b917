package tui

import (
	"strings"

	"tabshelf/internal/tui/messages"
)

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewHome    = messages.ViewHome
	ViewLibrary = messages.ViewLibrary
	ViewReader  = messages.ViewReader
	ViewAbout   = messages.ViewAbout
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenTabMsg = messages.OpenTabMsg
type ImportDoneMsg = messages.ImportDoneMsg
type DataRefreshMsg = messages.DataRefreshMsg

// viewFromName maps a configured view name to a view. Unknown names,
// including "reader" which needs a tab, land on home.
func viewFromName(name string) ViewType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "library":
		return ViewLibrary
	case "about":
		return ViewAbout
	default:
		return ViewHome
	}
}
