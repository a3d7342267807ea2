// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/anand880441-source/meal-explorer/internal/logging"
)

// Config holds durable store configuration.
type Config struct {
	// Path is the BadgerDB directory. Created if it does not exist.
	Path string

	// SyncWrites enables fsync on every write. Slower but crash-safe.
	SyncWrites bool
}

// BadgerStore is the durable Store implementation.
//
// It owns an exclusive directory lock for the lifetime of the process, which
// is what makes the per-store read-modify-write sequences in
// internal/stores safe without cross-process coordination: no second process
// can open the same collection.
type BadgerStore struct {
	db *badger.DB
}

// Open creates or opens the durable store at cfg.Path.
func Open(cfg Config) (*BadgerStore, error) {
	if cfg.Path == "" {
		return nil, errors.New("storage path must not be empty")
	}

	opts := badger.DefaultOptions(cfg.Path)
	opts.SyncWrites = cfg.SyncWrites
	// Badger's own logger is noisy at startup; everything relevant is
	// surfaced through our adapter logging instead.
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Bool("sync_writes", cfg.SyncWrites).
		Msg("durable store opened")

	return &BadgerStore{db: db}, nil
}

// Read unmarshals the value under key into v. Missing keys and values that
// fail to decode both report absent; a malformed value is also logged since
// it means a previous write was corrupted.
func (s *BadgerStore) Read(key string, v any) bool {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("durable read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("stored value malformed, treating as absent")
		return false
	}
	return true
}

// Write marshals v under key. Failures are logged and swallowed; the
// operation is best-effort by contract.
func (s *BadgerStore) Write(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("durable write skipped, value not serializable")
		return
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("durable write failed")
	}
}

// Remove deletes the key. Removing a missing key is a no-op.
func (s *BadgerStore) Remove(key string) {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("durable remove failed")
	}
}

// Close releases the database and its directory lock.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
