// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package stores

// Fixed storage keys. No two stores share a key, and no store touches
// another's key. The mep_ prefix namespaces this application's slice of the
// storage medium.
const (
	keyLiked    = "mep_liked_ids"
	keyRatings  = "mep_ratings"
	keyNotes    = "mep_notes"
	keyStreak   = "mep_streak"
	keyPlan     = "mep_meal_plan"
	keyTrending = "mep_trending" // session scope
)
