// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

import (
	"sort"
	"sync"

	"github.com/anand880441-source/meal-explorer/internal/storage"
)

// trendingState is the session-persisted view-frequency record. Order holds
// ids in first-view order so TopN tie-breaking is deterministic.
type trendingState struct {
	Counts map[string]int `json:"counts"`
	Order  []string       `json:"order"`
}

// TrendingStore owns the session-scoped view-frequency map. Nothing here is
// durable: the ranking exists for one browsing session and dies with the
// process. RecordView is best-effort and never fails; no event is published
// since trending consumers poll rather than react.
type TrendingStore struct {
	mu    sync.Mutex
	store storage.Store
}

// NewTrendingStore creates the trending map over the given session store.
func NewTrendingStore(store storage.Store) *TrendingStore {
	return &TrendingStore{store: store}
}

// RecordView increments the view count for id.
func (s *TrendingStore) RecordView(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state()
	if _, seen := state.Counts[id]; !seen {
		state.Order = append(state.Order, id)
	}
	state.Counts[id]++
	s.store.Write(keyTrending, state)
}

// TopN returns up to n recipe ids by descending view count, ties broken by
// first-view order.
func (s *TrendingStore) TopN(n int) []string {
	s.mu.Lock()
	state := s.state()
	s.mu.Unlock()

	ids := make([]string, len(state.Order))
	copy(ids, state.Order)
	sort.SliceStable(ids, func(i, j int) bool {
		return state.Counts[ids[i]] > state.Counts[ids[j]]
	})

	if n < len(ids) {
		ids = ids[:n]
	}
	return ids
}

// state reads the session record, normalizing absent to empty.
func (s *TrendingStore) state() trendingState {
	var state trendingState
	s.store.Read(keyTrending, &state)
	if state.Counts == nil {
		state.Counts = map[string]int{}
	}
	return state
}
