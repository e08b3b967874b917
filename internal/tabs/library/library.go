// Package library combines the read-only base catalog with the user-imported
// tabs and owns the import pipeline that grows the user set.
package library

import (
	"sync"

	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/data"
	"tabshelf/internal/tabs/persist"

	"go.uber.org/zap"
)

// Library is the in-memory view of base and user tabs. The user list is the
// source of truth for the session and is written through to the adapter
// after every import batch that accepts at least one tab.
type Library struct {
	importMu sync.Mutex // one import batch at a time

	mu      sync.RWMutex
	base    []data.Tab
	user    []data.Tab
	adapter *persist.Adapter
}

// New creates a library over base. Call Load before use to pull in the
// persisted user tabs.
func New(base []data.Tab, adapter *persist.Adapter) *Library {
	if adapter == nil {
		adapter = persist.NewAdapter(nil, "")
	}
	return &Library{
		base:    data.CloneAll(base),
		user:    []data.Tab{},
		adapter: adapter,
	}
}

// Load replaces the in-memory user tabs with whatever the adapter holds.
func (l *Library) Load() {
	stored := l.adapter.Load()

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, t := range stored {
		if l.baseIndex(t.ID) >= 0 {
			logs.Logger.Warn("stored tab shadows a base tab", zap.String("id", t.ID))
		}
	}
	l.user = stored
	logs.Logger.Info("library loaded",
		zap.Int("base", len(l.base)),
		zap.Int("user", len(l.user)),
		zap.Bool("persistent", l.adapter.Available()))
}

// ListAll returns base tabs followed by user tabs, each in insertion order.
func (l *Library) ListAll() []data.Tab {
	l.mu.RLock()
	defer l.mu.RUnlock()

	all := make([]data.Tab, 0, len(l.base)+len(l.user))
	for _, t := range l.base {
		all = append(all, t.Clone())
	}
	for _, t := range l.user {
		all = append(all, t.Clone())
	}
	return all
}

// FindByID returns the first tab with id, scanning base before user tabs.
func (l *Library) FindByID(id string) (data.Tab, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.baseIndex(id); i >= 0 {
		return l.base[i].Clone(), true
	}
	for _, t := range l.user {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return data.Tab{}, false
}

// IsBase reports whether id belongs to the base catalog.
func (l *Library) IsBase(id string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.baseIndex(id) >= 0
}

// Counts returns the number of base and user tabs.
func (l *Library) Counts() (base, user int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.base), len(l.user)
}

// Persistent reports whether imports survive a restart.
func (l *Library) Persistent() bool {
	return l.adapter.Available()
}

func (l *Library) baseIndex(id string) int {
	for i, t := range l.base {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// appendUserTabs adds accepted tabs and persists the whole user set. Only the
// importer calls it. The in-memory append stands even if the save fails.
func (l *Library) appendUserTabs(tabs []data.Tab) error {
	l.mu.Lock()
	l.user = append(l.user, tabs...)
	snapshot := data.CloneAll(l.user)
	l.mu.Unlock()

	return l.adapter.Save(snapshot)
}
