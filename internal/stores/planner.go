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

// Weekdays lists the plan's day keys in display order.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// PlanEntry is one planned meal: enough catalog detail to render a card
// without a lookup.
type PlanEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Thumb string `json:"thumb"`
}

// PlannerStore owns the weekly meal plan, a weekday-name to entry-list map.
// A day may hold any number of entries, duplicates included.
type PlannerStore struct {
	mu    sync.Mutex
	store storage.Store
	bus   *bus.Bus
}

// NewPlannerStore creates the weekly plan over the given durable store.
func NewPlannerStore(store storage.Store, b *bus.Bus) *PlannerStore {
	return &PlannerStore{store: store, bus: b}
}

// Plan returns the full weekly plan. Never nil; days without entries are
// absent from the map.
func (s *PlannerStore) Plan() map[string][]PlanEntry {
	plan := map[string][]PlanEntry{}
	s.store.Read(keyPlan, &plan)
	return plan
}

// Add appends entry to day's list.
func (s *PlannerStore) Add(day string, entry PlanEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := s.Plan()
	plan[day] = append(plan[day], entry)
	s.store.Write(keyPlan, plan)
	metrics.RecordStoreMutation("planner", "add")
	s.bus.Publish(bus.TopicPlanChanged, nil)
}

// Remove deletes the entry at index from day's list. Out-of-range indexes
// are a no-op.
func (s *PlannerStore) Remove(day string, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan := s.Plan()
	entries := plan[day]
	if index < 0 || index >= len(entries) {
		return
	}
	plan[day] = append(entries[:index], entries[index+1:]...)
	s.store.Write(keyPlan, plan)
	metrics.RecordStoreMutation("planner", "remove")
	s.bus.Publish(bus.TopicPlanChanged, nil)
}

// Clear empties the entire week.
func (s *PlannerStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Remove(keyPlan)
	metrics.RecordStoreMutation("planner", "clear")
	s.bus.Publish(bus.TopicPlanChanged, nil)
}
