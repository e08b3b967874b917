package shared

import (
	"strings"

	"tabshelf/internal/tabs/data"
	"tabshelf/internal/tui/theme"
)

// StyledTabLine renders a tab as one list row.
// Format: [base] Title  Artist  Instrument  difficulty #tag #tag
func StyledTabLine(t data.Tab, builtin bool) string {
	var parts []string

	if builtin {
		parts = append(parts, theme.BaseBadge.Render("[base]"))
	} else {
		parts = append(parts, theme.UserBadge.Render("[mine]"))
	}

	parts = append(parts, theme.Bold.Render(t.Title))
	parts = append(parts, theme.Artist.Render(t.Artist))
	parts = append(parts, theme.Instrument.Render(t.Instrument))

	if t.Difficulty != "" {
		parts = append(parts, theme.Difficulty.Render(t.Difficulty))
	}

	for _, tag := range t.Tags {
		parts = append(parts, theme.Tag.Render("#"+tag))
	}

	return strings.Join(parts, " ")
}

// MetaLine summarises the playing setup of a tab, e.g. "Standard (EADGBE) · capo 2".
func MetaLine(t data.Tab) string {
	meta := []string{t.Tuning, "capo " + t.Capo}
	if t.Difficulty != "" {
		meta = append(meta, t.Difficulty)
	}
	return strings.Join(meta, " · ")
}
