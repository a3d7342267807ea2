// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

import (
	"testing"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/storage"
)

func TestRatingStore_SetAndGet(t *testing.T) {
	b := newTestBus(t)
	ratings := NewRatingStore(storage.NewSessionStore(), b)

	ratings.Set("52772", 4)

	if got := ratings.Get("52772"); got != 4 {
		t.Errorf("expected rating 4, got %d", got)
	}
	if got := ratings.Get("missing"); got != 0 {
		t.Errorf("expected 0 for unrated id, got %d", got)
	}
}

func TestRatingStore_ZeroKeepsKey(t *testing.T) {
	b := newTestBus(t)
	ratings := NewRatingStore(storage.NewSessionStore(), b)

	ratings.Set("52772", 0)

	if _, ok := ratings.All()["52772"]; !ok {
		t.Error("expected explicit 0 rating to keep its key")
	}
	if got := ratings.Count(); got != 1 {
		t.Errorf("expected Count 1 with a zeroed rating, got %d", got)
	}
}

func TestRatingStore_ClearRemovesKey(t *testing.T) {
	b := newTestBus(t)
	ratings := NewRatingStore(storage.NewSessionStore(), b)

	ratings.Set("52772", 3)
	ratings.Clear("52772")

	if _, ok := ratings.All()["52772"]; ok {
		t.Error("expected Clear to drop the key")
	}
	if got := ratings.Count(); got != 0 {
		t.Errorf("expected Count 0 after Clear, got %d", got)
	}
}

func TestRatingStore_SetAlwaysNotifies(t *testing.T) {
	b := newTestBus(t)
	ratings := NewRatingStore(storage.NewSessionStore(), b)
	events := countEvents(t, b, bus.TopicRatingsChanged)

	ratings.Set("52772", 5)
	ratings.Set("52772", 5)

	if got := events.count(); got != 2 {
		t.Errorf("expected an event per Set even when unchanged, got %d", got)
	}
}
