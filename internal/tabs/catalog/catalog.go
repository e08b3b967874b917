// Package catalog assembles the read-only base catalog: the built-in tabs
// followed by any catalog files named in the configuration.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/data"

	"go.uber.org/zap"
)

// Assemble returns the built-in tabs followed by the valid, non-duplicate
// records of each catalog file. Bad files and bad records are skipped.
func Assemble(files []string) []data.Tab {
	base := Builtin()
	seen := make(map[string]bool, len(base))
	for _, t := range base {
		seen[t.ID] = true
	}

	for _, path := range files {
		tabs, err := ReadFile(path)
		if err != nil {
			logs.Logger.Warn("skipping catalog file", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, t := range tabs {
			if seen[t.ID] {
				logs.Logger.Warn("skipping duplicate catalog tab", zap.String("path", path), zap.String("id", t.ID))
				continue
			}
			seen[t.ID] = true
			base = append(base, t)
		}
	}

	return base
}

// ReadFile reads a JSON catalog file holding one tab object or an array of
// them. Records that fail validation are logged and dropped.
func ReadFile(path string) ([]data.Tab, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	value, err := data.DecodeJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var tabs []data.Tab
	for i, c := range data.Elements(value) {
		tab, errs := data.Normalize(data.Candidate(c))
		if len(errs) > 0 {
			logs.Logger.Warn("skipping invalid catalog tab",
				zap.String("path", path),
				zap.Int("position", i+1),
				zap.String("errors", strings.Join(errs, ", ")))
			continue
		}
		tabs = append(tabs, tab)
	}
	return tabs, nil
}
