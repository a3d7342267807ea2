// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package badges implements the achievement catalog and the engine that
// derives badge unlocks from domain store state.
package badges

// Definition describes one badge in the fixed catalog. The catalog itself
// is static configuration; only the unlock set is persisted.
type Definition struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Badge keys.
const (
	KeyFirstSave    = "first_save"
	KeyFiveSaves    = "five_saves"
	KeyTenSaves     = "ten_saves"
	KeyFirstRate    = "first_rate"
	KeyFiveRatings  = "five_ratings"
	KeyFirstNote    = "first_note"
	KeyThreeStreak  = "three_streak"
	KeySevenStreak  = "seven_streak"
	KeyGlobetrotter = "globetrotter"
)

// Catalog is the fixed, versionless set of 9 badge definitions.
var Catalog = []Definition{
	{Key: KeyFirstSave, Label: "First Save", Icon: "❤️", Description: "Saved your first recipe"},
	{Key: KeyFiveSaves, Label: "Collector", Icon: "📚", Description: "Saved 5 recipes"},
	{Key: KeyTenSaves, Label: "Archivist", Icon: "🗄️", Description: "Saved 10 recipes"},
	{Key: KeyFirstRate, Label: "Critic", Icon: "⭐", Description: "Rated your first recipe"},
	{Key: KeyFiveRatings, Label: "Expert Critic", Icon: "🏆", Description: "Rated 5 recipes"},
	{Key: KeyFirstNote, Label: "Annotator", Icon: "📝", Description: "Added your first note"},
	{Key: KeyThreeStreak, Label: "Consistent Chef", Icon: "🔥", Description: "3-day cooking streak"},
	{Key: KeySevenStreak, Label: "Iron Chef", Icon: "👨‍🍳", Description: "7-day cooking streak"},
	{Key: KeyGlobetrotter, Label: "Globetrotter", Icon: "🌍", Description: "Saved meals from 3 cuisines"},
}

// Find returns the definition for key, or false when the key is not in the
// catalog.
func Find(key string) (Definition, bool) {
	for _, def := range Catalog {
		if def.Key == key {
			return def, true
		}
	}
	return Definition{}, false
}
