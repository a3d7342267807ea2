// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package stores implements the domain stores of the collection core: the
// liked set, ratings map, notes map, streak counter, trending frequency map,
// and weekly meal plan.
//
// Each store exclusively owns one fixed key in its storage scope and exposes
// a derived-value getter plus mutators. Mutators are mutex-guarded
// read-modify-write sequences that persist through the storage adapter and
// then publish on the notification bus, so a subscriber that re-reads on
// receipt always observes the new state. Mutators never return errors; a
// failed write degrades to a lost preference per the adapter contract.
//
// Stores never read each other's keys. Cross-store derived reads happen only
// in the badge engine, which consumes the getters.
package stores
