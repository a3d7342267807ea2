// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package bus

import (
	"sync"
	"testing"
	"time"
)

// recorder collects payloads delivered to a subscription. The bus blocks
// publishes until handlers ack, but the handler runs on a subscription
// goroutine, so access is still guarded.
type recorder struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (r *recorder) handle(payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

func newTestBus(t *testing.T) *Bus {
	t.Helper()
	b := New()
	t.Cleanup(func() {
		if err := b.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return b
}

func TestBus_PublishDeliversToSubscriber(t *testing.T) {
	b := newTestBus(t)

	rec := &recorder{}
	cancel, err := b.Subscribe(TopicLikedChanged, rec.handle)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer cancel()

	b.Publish(TopicLikedChanged, nil)
	b.Publish(TopicLikedChanged, nil)

	// Publish blocks until the handler acks, so both deliveries have
	// happened by now.
	if got := rec.count(); got != 2 {
		t.Errorf("expected 2 deliveries, got %d", got)
	}
}

func TestBus_PublishCarriesPayload(t *testing.T) {
	b := newTestBus(t)

	rec := &recorder{}
	cancel, err := b.Subscribe(TopicBadgeUnlocked, rec.handle)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer cancel()

	b.Publish(TopicBadgeUnlocked, BadgeUnlocked{Key: "first_save"})

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.payloads) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(rec.payloads))
	}
	ev, err := DecodeBadgeUnlocked(rec.payloads[0])
	if err != nil {
		t.Fatalf("DecodeBadgeUnlocked failed: %v", err)
	}
	if ev.Key != "first_save" {
		t.Errorf("expected key first_save, got %q", ev.Key)
	}
}

func TestBus_TopicsAreIndependent(t *testing.T) {
	b := newTestBus(t)

	rec := &recorder{}
	cancel, err := b.Subscribe(TopicRatingsChanged, rec.handle)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer cancel()

	b.Publish(TopicLikedChanged, nil)

	if got := rec.count(); got != 0 {
		t.Errorf("expected no deliveries on other topic, got %d", got)
	}
}

func TestBus_NoDeliveryToLateSubscriber(t *testing.T) {
	b := newTestBus(t)

	b.Publish(TopicLikedChanged, nil)

	rec := &recorder{}
	cancel, err := b.Subscribe(TopicLikedChanged, rec.handle)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer cancel()

	if got := rec.count(); got != 0 {
		t.Errorf("expected no replay to late subscriber, got %d", got)
	}
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	b := newTestBus(t)

	rec := &recorder{}
	cancel, err := b.Subscribe(TopicLikedChanged, rec.handle)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	b.Publish(TopicLikedChanged, nil)
	cancel()
	// Subscriber teardown is asynchronous after cancel; give it a moment
	// before publishing again.
	time.Sleep(50 * time.Millisecond)
	b.Publish(TopicLikedChanged, nil)

	if got := rec.count(); got != 1 {
		t.Errorf("expected exactly 1 delivery before cancel, got %d", got)
	}
}
