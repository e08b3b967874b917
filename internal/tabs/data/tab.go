package data

import (
	"fmt"
	"strings"
)

// Tab is a single piece of tablature.
type Tab struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Artist     string   `json:"artist"`
	Instrument string   `json:"instrument"`
	Tuning     string   `json:"tuning"`
	Capo       string   `json:"capo"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"tags"`
	Content    string   `json:"content"`
	Source     string   `json:"source,omitempty"`
}

// HasSource reports whether the tab carries a source reference.
func (t Tab) HasSource() bool {
	return t.Source != ""
}

// HasTag reports whether the tab is tagged with tag (case-insensitive).
func (t Tab) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if strings.EqualFold(existing, tag) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with t.
func (t Tab) Clone() Tab {
	c := t
	c.Tags = append([]string{}, t.Tags...)
	return c
}

// String renders a one-line summary, e.g. "Sunrise Groove - The Morning Lines (Guitare)".
func (t Tab) String() string {
	return fmt.Sprintf("%s - %s (%s)", t.Title, t.Artist, t.Instrument)
}

// CloneAll copies every tab in tabs.
func CloneAll(tabs []Tab) []Tab {
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		out[i] = t.Clone()
	}
	return out
}
