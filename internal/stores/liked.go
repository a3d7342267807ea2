// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

import (
	"slices"
	"sync"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/metrics"
	"github.com/anand880441-source/meal-explorer/internal/storage"
)

// LikedStore owns the set of liked recipe ids. Insertion order is preserved
// for display; membership is what matters for correctness.
type LikedStore struct {
	mu    sync.Mutex
	store storage.Store
	bus   *bus.Bus
}

// NewLikedStore creates the liked set over the given durable store.
func NewLikedStore(store storage.Store, b *bus.Bus) *LikedStore {
	return &LikedStore{store: store, bus: b}
}

// IDs returns the liked recipe ids in insertion order. Never nil.
func (s *LikedStore) IDs() []string {
	var ids []string
	s.store.Read(keyLiked, &ids)
	if ids == nil {
		ids = []string{}
	}
	return ids
}

// IsLiked reports whether id is in the liked set.
func (s *LikedStore) IsLiked(id string) bool {
	return slices.Contains(s.IDs(), id)
}

// Count returns the number of liked recipes.
func (s *LikedStore) Count() int {
	return len(s.IDs())
}

// Add inserts id into the liked set. Adding an id that is already a member
// is a no-op: nothing is written and no event fires.
func (s *LikedStore) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.IDs()
	if slices.Contains(ids, id) {
		return
	}
	s.store.Write(keyLiked, append(ids, id))
	metrics.RecordStoreMutation("liked", "add")
	s.bus.Publish(bus.TopicLikedChanged, nil)
}

// Remove deletes id from the liked set. Idempotent in observable state;
// the write and notification happen whether or not id was a member.
func (s *LikedStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := slices.DeleteFunc(s.IDs(), func(x string) bool { return x == id })
	s.store.Write(keyLiked, ids)
	metrics.RecordStoreMutation("liked", "remove")
	s.bus.Publish(bus.TopicLikedChanged, nil)
}

// Clear empties the liked set ("clear collection").
func (s *LikedStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Remove(keyLiked)
	metrics.RecordStoreMutation("liked", "clear")
	s.bus.Publish(bus.TopicLikedChanged, nil)
}
