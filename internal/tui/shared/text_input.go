package shared

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tabshelf/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TextInputModel wraps bubbles/textinput with validation
type TextInputModel struct {
	Input     textinput.Model
	Prompt    string
	Validator func(string) error
	Error     string
	Width     int
}

// TextInputResultMsg is sent when input is confirmed or cancelled
type TextInputResultMsg struct {
	Value     string
	Cancelled bool
}

// NewTextInput creates a new text input component
func NewTextInput(prompt, placeholder string, validator func(string) error) *TextInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 1024
	return &TextInputModel{
		Input:     ti,
		Prompt:    prompt,
		Validator: validator,
	}
}

// NewPathInput creates a text input for one or more comma-separated paths
func NewPathInput(prompt string) *TextInputModel {
	return NewTextInput(prompt, "~/tabs/new.json, ~/tabs/sheets", ValidatePaths)
}

// Init implements tea.Model
func (m *TextInputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *TextInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			if m.Validator != nil {
				if err := m.Validator(m.Input.Value()); err != nil {
					m.Error = err.Error()
					return m, nil
				}
			}
			value := m.Input.Value()
			return m, func() tea.Msg {
				return TextInputResultMsg{Value: value}
			}

		case "esc":
			return m, func() tea.Msg {
				return TextInputResultMsg{Cancelled: true}
			}
		}
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	// Clear error when user types
	m.Error = ""

	return m, cmd
}

// View implements tea.Model
func (m *TextInputModel) View() string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(m.Prompt+": ") + m.Input.View() + "\n")

	if m.Error != "" {
		b.WriteString(theme.Error.Render("Error: "+m.Error) + "\n")
	}

	b.WriteString(theme.ModalHelp.Render("[enter] confirm  [esc] cancel"))

	return theme.ModalBox.Width(m.Width).Render(b.String())
}

// Value returns the current input value
func (m *TextInputModel) Value() string {
	return m.Input.Value()
}

// SetWidth sets both the outer box and inner input widths
func (m *TextInputModel) SetWidth(w int) {
	// Border (2) and padding (4)
	m.Width = w - 6
	m.Input.Width = m.Width - lipgloss.Width(m.Prompt+": ") - 1
}

// SplitPaths splits a comma-separated path list, expanding a leading ~/.
func SplitPaths(s string) []string {
	var paths []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if strings.HasPrefix(p, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				p = home + p[1:]
			}
		}
		paths = append(paths, p)
	}
	return paths
}

// ValidatePaths requires at least one path and that every path exists
func ValidatePaths(s string) error {
	paths := SplitPaths(s)
	if len(paths) == 0 {
		return errors.New("enter at least one file or directory")
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("cannot read %s", p)
		}
	}
	return nil
}
