package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/data"
	"tabshelf/internal/tabs/library"
	"tabshelf/internal/tabs/sheet"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("tab not found")

// TabService defines the operations the CLI and TUI use.
type TabService interface {
	List() []data.Tab
	Get(id string) (data.Tab, error)
	Import(raw string) library.ImportResult
	ImportFiles(paths []string) ([]FileResult, error)
	Export(id, dir string) (string, error)
	Suggest(id string, n int) []string
	Counts() (base, user int)
	IsBase(id string) bool
	Persistent() bool
}

// FileResult is the outcome of importing one batch read from disk.
type FileResult struct {
	Source string // file name, or several names joined for a sheet batch
	library.ImportResult
}

type tabServiceImpl struct {
	lib *library.Library
}

// NewTabService wraps a loaded library.
func NewTabService(lib *library.Library) TabService {
	return &tabServiceImpl{lib: lib}
}

func (s *tabServiceImpl) List() []data.Tab {
	return s.lib.ListAll()
}

func (s *tabServiceImpl) Get(id string) (data.Tab, error) {
	tab, ok := s.lib.FindByID(id)
	if !ok {
		return data.Tab{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return tab, nil
}

func (s *tabServiceImpl) Import(raw string) library.ImportResult {
	return s.lib.ImportFromText(raw)
}

// ImportFiles imports every JSON file as its own batch and all sheets
// together as one batch, after the JSON files. Directories are scanned.
func (s *tabServiceImpl) ImportFiles(paths []string) ([]FileResult, error) {
	var jsonFiles, sheetFiles []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			found, err := sheet.ScanDir(p)
			if err != nil {
				return nil, fmt.Errorf("scanning %s: %w", p, err)
			}
			for _, f := range found {
				if sheet.IsSheet(f) {
					sheetFiles = append(sheetFiles, f)
				} else {
					jsonFiles = append(jsonFiles, f)
				}
			}
			continue
		}
		if sheet.IsSheet(p) {
			sheetFiles = append(sheetFiles, p)
		} else {
			jsonFiles = append(jsonFiles, p)
		}
	}

	var results []FileResult
	for _, f := range jsonFiles {
		raw, err := os.ReadFile(f)
		if err != nil {
			return results, fmt.Errorf("error reading %s: %w", f, err)
		}
		logs.Logger.Debug("importing json file", zap.String("path", f))
		results = append(results, FileResult{
			Source:       filepath.Base(f),
			ImportResult: s.lib.ImportFromText(string(raw)),
		})
	}

	if len(sheetFiles) > 0 {
		res, err := s.importSheets(sheetFiles)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// importSheets bundles sheet candidates into one JSON array so they go
// through the same pipeline as pasted JSON.
func (s *tabServiceImpl) importSheets(files []string) (FileResult, error) {
	candidates := make([]any, 0, len(files))
	names := make([]string, 0, len(files))
	for _, f := range files {
		c, err := sheet.ReadSheet(f)
		if err != nil {
			return FileResult{}, fmt.Errorf("error reading %s: %w", f, err)
		}
		candidates = append(candidates, jsonSafe(c))
		names = append(names, filepath.Base(f))
	}

	raw, err := json.Marshal(candidates)
	if err != nil {
		return FileResult{}, fmt.Errorf("encoding sheets: %w", err)
	}

	source := names[0]
	if len(names) > 1 {
		source = fmt.Sprintf("%s (+%d sheets)", names[0], len(names)-1)
	}
	logs.Logger.Debug("importing sheets", zap.Strings("files", names))
	return FileResult{Source: source, ImportResult: s.lib.ImportFromText(string(raw))}, nil
}

// jsonSafe replaces values JSON cannot carry (NaN, ±Inf) with nil. The
// validator rejects both the same way.
func jsonSafe(v any) any {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonSafe(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = jsonSafe(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonSafe(item)
		}
		return out
	}
	return v
}

func (s *tabServiceImpl) Export(id, dir string) (string, error) {
	tab, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return sheet.WriteSheet(tab, dir)
}

// Suggest returns up to n ids that fuzzily match id, best first.
func (s *tabServiceImpl) Suggest(id string, n int) []string {
	tabs := s.lib.ListAll()
	ids := make([]string, len(tabs))
	for i, t := range tabs {
		ids[i] = t.ID
	}

	matches := fuzzy.Find(id, ids)
	var out []string
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, ids[m.Index])
	}
	return out
}

func (s *tabServiceImpl) Counts() (int, int) {
	return s.lib.Counts()
}

func (s *tabServiceImpl) IsBase(id string) bool {
	return s.lib.IsBase(id)
}

func (s *tabServiceImpl) Persistent() bool {
	return s.lib.Persistent()
}
