// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/ordinal-app/ordinal/internal/metrics"
)

// Key prefixes for BadgerDB storage. Secondary index keys point at the
// primary record's ID.
const (
	userKeyPrefix      = "user:"
	userEmailKeyPrefix = "user_email:"
	userNameKeyPrefix  = "user_name:"
	cardKeyPrefix      = "card:"
	cardUserKeyPrefix  = "card_user:"
	txnKeyPrefix       = "txn:"
	txnCardKeyPrefix   = "txn_card:"
	rewardKeyPrefix    = "reward:"
)

// Sentinel errors returned by store operations. Callers branch on these to
// map persistence failures onto API status codes.
var (
	ErrNotFound      = errors.New("store: record not found")
	ErrEmailTaken    = errors.New("store: email already registered")
	ErrUsernameTaken = errors.New("store: username already registered")
)

// Store is the BadgerDB-backed persistence layer. It is safe for concurrent
// use; Badger serializes conflicting writes internally.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// badgerLogger adapts badger's Logger interface onto zerolog. Badger's info
// output is chatty (compaction, value log GC), so it maps one level down.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(strings.TrimSuffix(format, "\n"), args...)
}

func (l badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn().Msgf(strings.TrimSuffix(format, "\n"), args...)
}

func (l badgerLogger) Infof(format string, args ...any) {
	l.logger.Debug().Msgf(strings.TrimSuffix(format, "\n"), args...)
}

func (l badgerLogger) Debugf(format string, args ...any) {
	l.logger.Trace().Msgf(strings.TrimSuffix(format, "\n"), args...)
}

// Open opens (creating if needed) the database at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	log := logger.With().Str("component", "store").Logger()
	opts := badger.DefaultOptions(path).WithLogger(badgerLogger{logger: log})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", path, err)
	}
	return &Store{db: db, logger: log}, nil
}

// OpenInMemory opens an ephemeral in-memory database, used by tests and by
// deployments that opt out of persistence.
func OpenInMemory(logger zerolog.Logger) (*Store, error) {
	log := logger.With().Str("component", "store").Logger()
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(badgerLogger{logger: log})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return &Store{db: db, logger: log}, nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying Badger handle for components that share the
// database file, such as the session-less JWT revocation list.
func (s *Store) DB() *badger.DB {
	return s.db
}

// update runs fn in a read-write transaction, recording the operation's
// duration and outcome.
func (s *Store) update(operation, record string, fn func(txn *badger.Txn) error) error {
	start := time.Now()
	err := s.db.Update(fn)
	metrics.RecordStoreOp(operation, record, time.Since(start), err)
	return err
}

// view is the read-only counterpart of update.
func (s *Store) view(operation, record string, fn func(txn *badger.Txn) error) error {
	start := time.Now()
	err := s.db.View(fn)
	metrics.RecordStoreOp(operation, record, time.Since(start), err)
	return err
}

// getJSON reads and unmarshals one record inside a view transaction.
func getJSON(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

// setJSON marshals and writes one record inside an update transaction.
func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// keyExists reports whether a key is present, without reading its value.
func keyExists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
