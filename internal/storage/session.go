// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package storage

import (
	"sync"

	"github.com/goccy/go-json"

	"github.com/anand880441-source/meal-explorer/internal/logging"
)

// SessionStore is the session-scoped Store implementation. Its contents live
// exactly as long as the process: nothing is written to disk, so session
// state (the trending map, the grocery checked-set) can never leak into the
// durable namespace.
//
// Values round-trip through JSON like the durable store so the two scopes
// stay behaviorally interchangeable behind the Store interface.
type SessionStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{values: make(map[string][]byte)}
}

// Read unmarshals the value under key into v, reporting absent for missing
// or malformed values.
func (s *SessionStore) Read(key string, v any) bool {
	s.mu.RLock()
	raw, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("session value malformed, treating as absent")
		return false
	}
	return true
}

// Write marshals v under key. Best-effort: serialization failures are
// logged and swallowed.
func (s *SessionStore) Write(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("session write skipped, value not serializable")
		return
	}
	s.mu.Lock()
	s.values[key] = raw
	s.mu.Unlock()
}

// Remove deletes the key.
func (s *SessionStore) Remove(key string) {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
}
