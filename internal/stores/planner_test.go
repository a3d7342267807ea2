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

func TestPlannerStore_AddAndRemove(t *testing.T) {
	b := newTestBus(t)
	planner := NewPlannerStore(storage.NewSessionStore(), b)

	planner.Add("Monday", PlanEntry{ID: "1", Name: "Arrabiata"})
	planner.Add("Monday", PlanEntry{ID: "2", Name: "Katsu Curry"})
	planner.Add("Friday", PlanEntry{ID: "1", Name: "Arrabiata"})

	plan := planner.Plan()
	if len(plan["Monday"]) != 2 {
		t.Fatalf("expected 2 Monday entries, got %d", len(plan["Monday"]))
	}

	planner.Remove("Monday", 0)
	plan = planner.Plan()
	if len(plan["Monday"]) != 1 || plan["Monday"][0].ID != "2" {
		t.Errorf("expected remaining Monday entry 2, got %+v", plan["Monday"])
	}
	if len(plan["Friday"]) != 1 {
		t.Errorf("expected Friday untouched, got %+v", plan["Friday"])
	}
}

func TestPlannerStore_DuplicatesAllowed(t *testing.T) {
	b := newTestBus(t)
	planner := NewPlannerStore(storage.NewSessionStore(), b)

	planner.Add("Sunday", PlanEntry{ID: "1"})
	planner.Add("Sunday", PlanEntry{ID: "1"})

	if got := len(planner.Plan()["Sunday"]); got != 2 {
		t.Errorf("expected duplicate entries to stack, got %d", got)
	}
}

func TestPlannerStore_RemoveOutOfRangeIsNoOp(t *testing.T) {
	b := newTestBus(t)
	planner := NewPlannerStore(storage.NewSessionStore(), b)
	events := countEvents(t, b, bus.TopicPlanChanged)

	planner.Add("Tuesday", PlanEntry{ID: "1"})
	planner.Remove("Tuesday", 5)
	planner.Remove("Tuesday", -1)
	planner.Remove("Wednesday", 0)

	if got := len(planner.Plan()["Tuesday"]); got != 1 {
		t.Errorf("expected entry to survive out-of-range removes, got %d", got)
	}
	if got := events.count(); got != 1 {
		t.Errorf("expected only the Add to notify, got %d events", got)
	}
}

func TestPlannerStore_Clear(t *testing.T) {
	b := newTestBus(t)
	planner := NewPlannerStore(storage.NewSessionStore(), b)

	planner.Add("Monday", PlanEntry{ID: "1"})
	planner.Clear()

	if got := len(planner.Plan()); got != 0 {
		t.Errorf("expected empty plan after Clear, got %d days", got)
	}
}
