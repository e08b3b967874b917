package sheet

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tabshelf/internal/tabs/data"

	"gopkg.in/yaml.v3"
)

// Render formats tab as a sheet.
func Render(tab data.Tab) ([]byte, error) {
	var buf bytes.Buffer

	frontmatter := struct {
		ID         string   `yaml:"id"`
		Title      string   `yaml:"title"`
		Artist     string   `yaml:"artist"`
		Instrument string   `yaml:"instrument"`
		Tuning     string   `yaml:"tuning"`
		Capo       string   `yaml:"capo"`
		Difficulty string   `yaml:"difficulty"`
		Tags       []string `yaml:"tags"`
		Source     string   `yaml:"source,omitempty"`
	}{
		ID:         tab.ID,
		Title:      tab.Title,
		Artist:     tab.Artist,
		Instrument: tab.Instrument,
		Tuning:     tab.Tuning,
		Capo:       tab.Capo,
		Difficulty: tab.Difficulty,
		Tags:       tab.Tags,
		Source:     tab.Source,
	}
	if frontmatter.Tags == nil {
		frontmatter.Tags = []string{}
	}

	yamlBytes, err := yaml.Marshal(frontmatter)
	if err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n\n")
	// The heading is for readers; the frontmatter title is what gets imported.
	fmt.Fprintf(&buf, "# %s\n\n", strings.ReplaceAll(tab.Title, "\n", " "))

	fence := fenceFor(tab.Content)
	buf.WriteString(fence + "text\n")
	buf.WriteString(tab.Content)
	buf.WriteString("\n" + fence + "\n")

	return buf.Bytes(), nil
}

// WriteSheet writes tab into dir as <id>.md and returns the file path.
func WriteSheet(tab data.Tab, dir string) (string, error) {
	content, err := Render(tab)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating directory: %w", err)
	}

	name := slugify(tab.ID)
	if name == "" {
		name = "tab"
	}
	path := filepath.Join(dir, name+".md")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("error writing %s: %w", path, err)
	}
	return path, nil
}

// fenceFor picks a backtick fence longer than any run inside content.
func fenceFor(content string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}
