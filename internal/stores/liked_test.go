// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

import (
	"sync"
	"testing"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/storage"
)

// eventCounter counts deliveries on one topic. The bus blocks publishes
// until the handler acks, so counts are settled once a mutator returns.
type eventCounter struct {
	mu sync.Mutex
	n  int
}

func (c *eventCounter) handle([]byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

func (c *eventCounter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func newTestBus(t *testing.T) *bus.Bus {
	t.Helper()
	b := bus.New()
	t.Cleanup(func() { b.Close() })
	return b
}

func countEvents(t *testing.T, b *bus.Bus, topic string) *eventCounter {
	t.Helper()
	c := &eventCounter{}
	cancel, err := b.Subscribe(topic, c.handle)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	t.Cleanup(cancel)
	return c
}

func TestLikedStore_AddRemove(t *testing.T) {
	b := newTestBus(t)
	liked := NewLikedStore(storage.NewSessionStore(), b)

	liked.Add("52772")
	if !liked.IsLiked("52772") {
		t.Error("expected 52772 to be liked after Add")
	}

	liked.Remove("52772")
	if liked.IsLiked("52772") {
		t.Error("expected 52772 not liked after Remove")
	}

	// Repeating the sequence behaves identically.
	liked.Add("52772")
	liked.Remove("52772")
	if liked.IsLiked("52772") {
		t.Error("expected add/remove to be idempotent under repetition")
	}
}

func TestLikedStore_AddIsGuarded(t *testing.T) {
	b := newTestBus(t)
	liked := NewLikedStore(storage.NewSessionStore(), b)
	events := countEvents(t, b, bus.TopicLikedChanged)

	liked.Add("52772")
	liked.Add("52772")

	if got := liked.Count(); got != 1 {
		t.Errorf("expected 1 liked id, got %d", got)
	}
	if got := events.count(); got != 1 {
		t.Errorf("expected exactly 1 liked-changed event for duplicate add, got %d", got)
	}
}

func TestLikedStore_PreservesInsertionOrder(t *testing.T) {
	b := newTestBus(t)
	liked := NewLikedStore(storage.NewSessionStore(), b)

	for _, id := range []string{"3", "1", "2"} {
		liked.Add(id)
	}

	got := liked.IDs()
	want := []string{"3", "1", "2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLikedStore_RemoveMissingStillNotifies(t *testing.T) {
	b := newTestBus(t)
	liked := NewLikedStore(storage.NewSessionStore(), b)
	events := countEvents(t, b, bus.TopicLikedChanged)

	liked.Remove("never_added")

	if got := events.count(); got != 1 {
		t.Errorf("expected remove to notify regardless of membership, got %d events", got)
	}
}

func TestLikedStore_Clear(t *testing.T) {
	b := newTestBus(t)
	liked := NewLikedStore(storage.NewSessionStore(), b)

	liked.Add("1")
	liked.Add("2")
	liked.Clear()

	if got := liked.Count(); got != 0 {
		t.Errorf("expected empty set after Clear, got %d", got)
	}
}
