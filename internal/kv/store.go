// Package kv provides the durable key-value backends the tab library persists
// into. A Store is injected wherever persistence is needed, so callers never
// probe the environment for a storage backend themselves.
package kv

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Store is a minimal durable key-value capability.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the value for key.
	Set(key string, value []byte) error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendNone   = "none"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open builds the store named by backend, rooted at dataDir where relevant.
// The returned close func is never nil.
func Open(backend, dataDir string) (Store, func() error, error) {
	noClose := func() error { return nil }

	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendFile:
		s, err := NewFileStore(dataDir)
		if err != nil {
			return nil, noClose, err
		}
		return s, noClose, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(filepath.Join(dataDir, "tabshelf.db"))
		if err != nil {
			return nil, noClose, err
		}
		return s, s.Close, nil
	case BackendMemory:
		return NewMemoryStore(), noClose, nil
	case BackendNone:
		return Unavailable{}, noClose, nil
	default:
		return nil, noClose, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Unavailable models an environment with no durable storage: nothing is ever
// found and writes are dropped.
type Unavailable struct{}

func (Unavailable) Get(string) ([]byte, bool, error) { return nil, false, nil }

func (Unavailable) Set(string, []byte) error { return nil }

// IsUnavailable reports whether s provides no durable storage at all.
func IsUnavailable(s Store) bool {
	if s == nil {
		return true
	}
	switch s.(type) {
	case Unavailable, *Unavailable:
		return true
	}
	return false
}
