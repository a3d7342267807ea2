// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package storage

import (
	"testing"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := Open(Config{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return store
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	in := map[string]int{"52772": 5, "52893": 3}
	store.Write("test_ratings", in)

	out := map[string]int{}
	if !store.Read("test_ratings", &out) {
		t.Fatal("expected value to be present")
	}
	if len(out) != 2 || out["52772"] != 5 || out["52893"] != 3 {
		t.Errorf("round trip mismatch: got %v", out)
	}
}

func TestBadgerStore_MissingKeyIsAbsent(t *testing.T) {
	store := openTestStore(t)

	var out []string
	if store.Read("never_written", &out) {
		t.Error("expected absent for missing key")
	}
	if out != nil {
		t.Errorf("expected target untouched, got %v", out)
	}
}

func TestBadgerStore_MalformedValueIsAbsent(t *testing.T) {
	store := openTestStore(t)

	// A stored string cannot decode into a map; the read must normalize
	// to absent rather than fail.
	store.Write("test_key", "not a map")

	out := map[string]int{}
	if store.Read("test_key", &out) {
		t.Error("expected absent for malformed value")
	}
}

func TestBadgerStore_Remove(t *testing.T) {
	store := openTestStore(t)

	store.Write("test_key", []string{"a"})
	store.Remove("test_key")

	var out []string
	if store.Read("test_key", &out) {
		t.Error("expected absent after remove")
	}

	// Removing a missing key is a no-op.
	store.Remove("test_key")
}

func TestBadgerStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(Config{Path: dir})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Write("test_liked", []string{"52772"})
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(Config{Path: dir})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	var out []string
	if !reopened.Read("test_liked", &out) {
		t.Fatal("expected value to survive reopen")
	}
	if len(out) != 1 || out[0] != "52772" {
		t.Errorf("unexpected value after reopen: %v", out)
	}
}

func TestSessionStore_RoundTripAndRemove(t *testing.T) {
	store := NewSessionStore()

	store.Write("test_counts", map[string]int{"a": 2})

	out := map[string]int{}
	if !store.Read("test_counts", &out) {
		t.Fatal("expected value to be present")
	}
	if out["a"] != 2 {
		t.Errorf("unexpected value: %v", out)
	}

	store.Remove("test_counts")
	if store.Read("test_counts", &out) {
		t.Error("expected absent after remove")
	}
}

func TestSessionStore_MissingKeyIsAbsent(t *testing.T) {
	store := NewSessionStore()

	var out []string
	if store.Read("never_written", &out) {
		t.Error("expected absent for missing key")
	}
}
