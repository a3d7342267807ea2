// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

import (
	"sync"
	"time"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/metrics"
	"github.com/anand880441-source/meal-explorer/internal/storage"
)

// dateLayout is the calendar-date-only format stored in the streak record.
const dateLayout = "2006-01-02"

// Streak is the consecutive-day counter record. LastDate is empty when the
// user has never marked a day.
type Streak struct {
	LastDate string `json:"lastDate"`
	Count    int    `json:"count"`
}

// StreakStore owns the cooking streak counter. Calendar days are evaluated
// in the process's local timezone, date-only.
//
// The count only grows when LastDate advances by exactly one calendar day;
// marking the same day twice is a no-op, and a gap of two or more days
// resets the count to 1 on the next mark.
type StreakStore struct {
	mu    sync.Mutex
	store storage.Store
	bus   *bus.Bus
	now   func() time.Time
}

// NewStreakStore creates the streak counter over the given durable store.
func NewStreakStore(store storage.Store, b *bus.Bus) *StreakStore {
	return NewStreakStoreWithClock(store, b, time.Now)
}

// NewStreakStoreWithClock creates a streak counter with an injected clock.
// Intended for tests that need to step through calendar days.
func NewStreakStoreWithClock(store storage.Store, b *bus.Bus, now func() time.Time) *StreakStore {
	return &StreakStore{store: store, bus: b, now: now}
}

// Get returns the current streak record, zero-valued when never marked.
func (s *StreakStore) Get() Streak {
	var st Streak
	s.store.Read(keyStreak, &st)
	return st
}

// MarkToday records a qualifying action for the current calendar day and
// returns the resulting record.
func (s *StreakStore) MarkToday() Streak {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.Get()
	today := s.now().Format(dateLayout)
	if cur.LastDate == today {
		// Already marked today; nothing to persist, nothing to publish.
		return cur
	}

	next := Streak{LastDate: today, Count: 1}
	if cur.LastDate == s.now().AddDate(0, 0, -1).Format(dateLayout) {
		next.Count = cur.Count + 1
	}

	s.store.Write(keyStreak, next)
	metrics.RecordStoreMutation("streak", "mark")
	s.bus.Publish(bus.TopicStreakChanged, nil)
	return next
}
