package persist

import (
	"encoding/json"
	"fmt"

	"tabshelf/internal/kv"
	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/data"

	"go.uber.org/zap"
)

// DefaultKey is the reserved key the user-added tabs live under.
const DefaultKey = "tabshelf.user-tabs"

// Adapter reads and writes the complete set of user-added tabs.
type Adapter struct {
	store kv.Store
	key   string
}

// NewAdapter wraps store. A nil store behaves like kv.Unavailable.
func NewAdapter(store kv.Store, key string) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if store == nil {
		store = kv.Unavailable{}
	}
	return &Adapter{store: store, key: key}
}

// Key returns the reserved storage key.
func (a *Adapter) Key() string {
	return a.key
}

// Available reports whether writes reach durable storage.
func (a *Adapter) Available() bool {
	return !kv.IsUnavailable(a.store)
}

// Load returns the persisted tabs. Missing, unreadable or corrupt state
// yields an empty list and is never an error.
func (a *Adapter) Load() []data.Tab {
	if !a.Available() {
		return []data.Tab{}
	}

	raw, ok, err := a.store.Get(a.key)
	if err != nil {
		logs.Logger.Warn("could not read stored tabs", zap.String("key", a.key), zap.Error(err))
		return []data.Tab{}
	}
	if !ok {
		return []data.Tab{}
	}

	var tabs []data.Tab
	if err := json.Unmarshal(raw, &tabs); err != nil || tabs == nil {
		logs.Logger.Warn("discarding corrupt stored tabs", zap.String("key", a.key), zap.Error(err))
		return []data.Tab{}
	}

	for i := range tabs {
		if tabs[i].Tags == nil {
			tabs[i].Tags = []string{}
		}
	}
	return tabs
}

// Save overwrites the stored set with tabs. Without a backend it does nothing.
func (a *Adapter) Save(tabs []data.Tab) error {
	if !a.Available() {
		return nil
	}
	if tabs == nil {
		tabs = []data.Tab{}
	}

	raw, err := json.Marshal(tabs)
	if err != nil {
		return fmt.Errorf("encoding tabs: %w", err)
	}
	if err := a.store.Set(a.key, raw); err != nil {
		return fmt.Errorf("saving tabs: %w", err)
	}
	logs.Logger.Debug("saved user tabs", zap.String("key", a.key), zap.Int("count", len(tabs)))
	return nil
}
