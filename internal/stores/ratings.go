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

// RatingStore owns the recipe-id to star-rating map. Absence means unrated
// (0). Setting 0 keeps the key: a zeroed rating still counts toward the
// "has rated" badge thresholds, which derive from the key count. Use Clear
// to drop the key entirely.
//
// The store does not validate the star range; callers constrain input to
// 0..5 at the edge.
type RatingStore struct {
	mu    sync.Mutex
	store storage.Store
	bus   *bus.Bus
}

// NewRatingStore creates the ratings map over the given durable store.
func NewRatingStore(store storage.Store, b *bus.Bus) *RatingStore {
	return &RatingStore{store: store, bus: b}
}

// All returns the full ratings map. Never nil.
func (s *RatingStore) All() map[string]int {
	ratings := map[string]int{}
	s.store.Read(keyRatings, &ratings)
	return ratings
}

// Get returns the rating for id, 0 when unrated.
func (s *RatingStore) Get(id string) int {
	return s.All()[id]
}

// Count returns the number of rated recipes, counting keys rather than
// values: a rating explicitly set to 0 is still "rated".
func (s *RatingStore) Count() int {
	return len(s.All())
}

// Set stores stars for id. Always writes and notifies, even when the value
// is unchanged; dedup is a UI concern, not a store concern.
func (s *RatingStore) Set(id string, stars int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings := s.All()
	ratings[id] = stars
	s.store.Write(keyRatings, ratings)
	metrics.RecordStoreMutation("ratings", "set")
	s.bus.Publish(bus.TopicRatingsChanged, nil)
}

// Clear removes id's rating key entirely, unlike Set(id, 0) which keeps it.
func (s *RatingStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ratings := s.All()
	delete(ratings, id)
	s.store.Write(keyRatings, ratings)
	metrics.RecordStoreMutation("ratings", "clear")
	s.bus.Publish(bus.TopicRatingsChanged, nil)
}
