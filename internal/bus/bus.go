// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package bus provides the process-wide change notification bus.
//
// Independent consumers (the HTTP handlers, the websocket fan-out, tests)
// stay consistent with shared store state by subscribing to named topics
// instead of holding references to each other. The transport is Watermill's
// in-process gochannel pub/sub configured to block each Publish until every
// currently subscribed handler has acknowledged, so a store mutator's
// write-then-notify sequence completes before the mutator returns.
//
// There is no queuing for late subscribers and no cross-topic ordering
// guarantee. Subscribers must release their subscription via the returned
// cancel function on teardown.
package bus

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/anand880441-source/meal-explorer/internal/logging"
)

// Bus is the process-wide publish/subscribe mechanism.
type Bus struct {
	pubsub *gochannel.GoChannel
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a bus. Close it when the process shuts down.
func New() *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 64,
		// Publish returns only after all current subscribers ack, which
		// gives mutators the synchronous notify the stores rely on.
		BlockPublishUntilSubscriberAck: true,
	}, newWatermillLogger())

	return &Bus{pubsub: pubsub, ctx: ctx, cancel: cancel}
}

// Publish delivers payload to every current subscriber of topic and returns
// once they have all run. A nil payload publishes an empty message, which is
// the normal case for topics whose subscribers re-read the stores.
//
// Publish failures are logged and swallowed: notification is best-effort
// and a mutator's write has already happened by the time it publishes.
func (b *Bus) Publish(topic string, payload any) {
	var raw []byte
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			logging.Warn().Err(err).Str("topic", topic).Msg("event payload not serializable, publish skipped")
			return
		}
	}

	msg := message.NewMessage(uuid.New().String(), raw)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		logging.Warn().Err(err).Str("topic", topic).Msg("event publish failed")
	}
}

// Subscribe registers fn for topic and returns a cancel function that
// releases the subscription. fn receives the raw payload (possibly empty)
// and runs on a dedicated goroutine in per-subscription publish order.
func (b *Bus) Subscribe(topic string, fn func(payload []byte)) (func(), error) {
	ctx, cancel := context.WithCancel(b.ctx)
	ch, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("subscribe to %q: %w", topic, err)
	}

	go func() {
		for msg := range ch {
			fn(msg.Payload)
			msg.Ack()
		}
	}()

	return cancel, nil
}

// Close shuts the bus down. Pending subscriptions are released.
func (b *Bus) Close() error {
	b.cancel()
	return b.pubsub.Close()
}
