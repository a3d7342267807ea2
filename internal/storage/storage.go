// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package storage provides the typed key-value persistence adapter backing
// the domain stores.
//
// Two scopes exist: durable (BadgerDB on disk, survives restarts) and
// session (in-memory, cleared when the process exits). Both present the same
// Store interface so a store's scope can be swapped without touching its
// logic.
//
// Failure semantics follow the adapter contract rather than the usual Go
// error idiom: Read reports absent (false) for missing or malformed data and
// never fails, and Write/Remove are best-effort with failures logged and
// swallowed. Callers normalize absent to their own zero values. The worst
// case anywhere in this package is the silent loss of a preference.
package storage

// Store is a typed key-value adapter for one storage scope.
//
// Read unmarshals the value stored under key into v and reports whether a
// well-formed value was present. Write marshals v under key. Remove deletes
// the key; removing a missing key is a no-op.
type Store interface {
	Read(key string, v any) bool
	Write(key string, v any)
	Remove(key string)
}
