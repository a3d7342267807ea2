// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/logging"
)

// wsTopics lists every bus topic forwarded to connected UIs.
var wsTopics = []string{
	bus.TopicLikedChanged,
	bus.TopicRatingsChanged,
	bus.TopicNotesChanged,
	bus.TopicStreakChanged,
	bus.TopicPlanChanged,
	bus.TopicBadgeUnlocked,
}

// wsFrame is one event pushed to the browser. Payload is the raw bus
// payload and may be empty; the UI re-reads the stores on receipt and only
// trusts the badge key.
type wsFrame struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin enforcement happens in the CORS layer; the local UI is the
	// only intended caller.
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// WebSocket streams change notifications to the browser so UI surfaces
// (badge toast, navbar counter, gallery) can re-render without polling.
// Subscriptions are released when the connection drops.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	frames := make(chan wsFrame, 64)
	cancels := make([]func(), 0, len(wsTopics))
	for _, topic := range wsTopics {
		topic := topic
		cancel, err := h.Bus.Subscribe(topic, func(payload []byte) {
			select {
			case frames <- wsFrame{Topic: topic, Payload: payload}:
			default:
				// Slow consumer; drop rather than stall the bus.
			}
		})
		if err != nil {
			logging.Warn().Err(err).Str("topic", topic).Msg("websocket subscription failed")
			continue
		}
		cancels = append(cancels, cancel)
	}

	unsubscribe := func() {
		for _, cancel := range cancels {
			cancel()
		}
	}

	// Reader: discard inbound frames, detect disconnect.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Writer: single goroutine owns all writes to the connection.
	go func() {
		defer unsubscribe()
		defer conn.Close()
		for {
			select {
			case frame := <-frames:
				if err := conn.WriteJSON(frame); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()
}
