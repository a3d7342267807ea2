// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

import (
	"sync"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/metrics"
	"github.com/anand880441-source/meal-explorer/internal/storage"
)

// NoteStore owns the recipe-id to free-text note map. Consumers read both a
// missing key and an empty string as "no note"; the two differ only in
// whether the key occupies storage (Clear removes it, Set(id, "") keeps it).
type NoteStore struct {
	mu    sync.Mutex
	store storage.Store
	bus   *bus.Bus
}

// NewNoteStore creates the notes map over the given durable store.
func NewNoteStore(store storage.Store, b *bus.Bus) *NoteStore {
	return &NoteStore{store: store, bus: b}
}

// All returns the full notes map. Never nil.
func (s *NoteStore) All() map[string]string {
	notes := map[string]string{}
	s.store.Read(keyNotes, &notes)
	return notes
}

// Get returns the note for id, "" when none.
func (s *NoteStore) Get(id string) string {
	return s.All()[id]
}

// Count returns the number of note keys present.
func (s *NoteStore) Count() int {
	return len(s.All())
}

// Set stores text as the note for id.
func (s *NoteStore) Set(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.All()
	notes[id] = text
	s.store.Write(keyNotes, notes)
	metrics.RecordStoreMutation("notes", "set")
	s.bus.Publish(bus.TopicNotesChanged, nil)
}

// Clear removes id's note key entirely.
func (s *NoteStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.All()
	delete(notes, id)
	s.store.Write(keyNotes, notes)
	metrics.RecordStoreMutation("notes", "clear")
	s.bus.Publish(bus.TopicNotesChanged, nil)
}
