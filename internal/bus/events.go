// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package bus

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Topics the domain stores and badge engine publish on. Subscribers must
// re-derive their view from the stores on receipt; except for the badge key,
// no payload shape is part of the contract.
const (
	TopicLikedChanged   = "liked-changed"
	TopicRatingsChanged = "ratings-changed"
	TopicNotesChanged   = "notes-changed"
	TopicStreakChanged  = "streak-changed"
	TopicPlanChanged    = "plan-changed"
	TopicBadgeUnlocked  = "badge-unlocked"
)

// BadgeUnlocked is the payload carried on TopicBadgeUnlocked.
type BadgeUnlocked struct {
	// Key identifies the unlocked badge in the badge catalog.
	Key string `json:"key"`
}

// DecodeBadgeUnlocked parses a TopicBadgeUnlocked payload.
func DecodeBadgeUnlocked(payload []byte) (BadgeUnlocked, error) {
	var ev BadgeUnlocked
	if err := json.Unmarshal(payload, &ev); err != nil {
		return BadgeUnlocked{}, fmt.Errorf("unmarshal badge-unlocked event: %w", err)
	}
	return ev, nil
}
