package library

import (
	"fmt"
	"strings"

	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/data"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ErrInvalidJSON  = "invalid JSON: could not parse."
	ErrInvalidShape = "JSON must contain an object or an array of objects."
)

// Outcome tells a parse failure apart from a batch that was processed.
type Outcome int

const (
	// OutcomeProcessed means every candidate went through validation. Added
	// and Errors describe the per-tab results.
	OutcomeProcessed Outcome = iota
	// OutcomeInvalidJSON means the text was not JSON.
	OutcomeInvalidJSON
	// OutcomeInvalidShape means the JSON held no object to import.
	OutcomeInvalidShape
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeInvalidJSON:
		return "invalid-json"
	case OutcomeInvalidShape:
		return "invalid-shape"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// ImportResult reports what one ImportFromText call did.
type ImportResult struct {
	Outcome Outcome
	Added   int
	Errors  []string
	// SaveErr is set when accepted tabs could not be written to storage.
	// They are still part of the library for this session.
	SaveErr error
}

// OK reports whether the batch was processed with no rejected tabs.
func (r ImportResult) OK() bool {
	return r.Outcome == OutcomeProcessed && len(r.Errors) == 0 && r.SaveErr == nil
}

// ImportFromText parses raw as one tab object or an array of them, validates
// every candidate, rejects ids already in use (including earlier candidates
// of the same batch) and persists the accepted tabs.
func (l *Library) ImportFromText(raw string) ImportResult {
	l.importMu.Lock()
	defer l.importMu.Unlock()

	batch := uuid.NewString()
	log := logs.Logger.With(zap.String("batch", batch))

	candidates, outcome := parseCandidates(raw)
	switch outcome {
	case OutcomeInvalidJSON:
		log.Info("import rejected: invalid JSON", zap.Int("bytes", len(raw)))
		return ImportResult{Outcome: outcome, Errors: []string{ErrInvalidJSON}}
	case OutcomeInvalidShape:
		log.Info("import rejected: no objects")
		return ImportResult{Outcome: outcome, Errors: []string{ErrInvalidShape}}
	}

	taken := make(map[string]bool)
	for _, t := range l.ListAll() {
		taken[t.ID] = true
	}

	result := ImportResult{Outcome: OutcomeProcessed, Errors: []string{}}
	var accepted []data.Tab

	for i, candidate := range candidates {
		pos := i + 1
		tab, errs := data.Normalize(candidate)
		if len(errs) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Tab %d: %s", pos, strings.Join(errs, ", ")))
			continue
		}
		if taken[tab.ID] {
			result.Errors = append(result.Errors, fmt.Sprintf("Tab %d: id '%s' already in use.", pos, tab.ID))
			continue
		}
		taken[tab.ID] = true
		accepted = append(accepted, tab)
	}

	result.Added = len(accepted)
	if len(accepted) > 0 {
		if err := l.appendUserTabs(accepted); err != nil {
			log.Error("imported tabs were not persisted", zap.Error(err))
			result.SaveErr = err
		}
	}

	log.Info("import finished",
		zap.Int("candidates", len(candidates)),
		zap.Int("added", result.Added),
		zap.Int("rejected", len(result.Errors)))
	return result
}

// parseCandidates turns raw text into the list of decoded candidate values.
func parseCandidates(raw string) ([]any, Outcome) {
	value, err := data.DecodeJSON([]byte(raw))
	if err != nil {
		return nil, OutcomeInvalidJSON
	}

	values := data.Elements(value)
	if len(values) == 0 || !data.IsObject(values[0]) {
		return nil, OutcomeInvalidShape
	}

	candidates := make([]any, len(values))
	for i, v := range values {
		candidates[i] = data.Candidate(v)
	}
	return candidates, OutcomeProcessed
}
