// Ordinal - Credit Card Rewards Recommendation Backend
// Copyright 2026 The Ordinal Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ordinal-app/ordinal

package store

import (
	"context"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ordinal-app/ordinal/internal/models"
)

// CreateTransaction persists a new transaction against its card. The card
// must exist; a zero Date defaults to the current time.
func (s *Store) CreateTransaction(ctx context.Context, txnRec *models.Transaction) error {
	if txnRec.ID == "" {
		txnRec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	txnRec.CreatedAt = now
	if txnRec.Date.IsZero() {
		txnRec.Date = now
	}

	err := s.update("create", "transaction", func(txn *badger.Txn) error {
		if exists, err := keyExists(txn, cardKeyPrefix+txnRec.CardID); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		if err := setJSON(txn, txnKeyPrefix+txnRec.ID, txnRec); err != nil {
			return err
		}
		indexKey := txnCardKeyPrefix + txnRec.CardID + ":" + txnRec.ID
		return txn.Set([]byte(indexKey), []byte(txnRec.ID))
	})
	if err != nil {
		return err
	}

	s.logger.Debug().
		Str("transaction_id", txnRec.ID).
		Str("card_id", txnRec.CardID).
		Msg("transaction created")
	return nil
}

// GetTransaction fetches a transaction by ID.
func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var rec models.Transaction
	err := s.view("get", "transaction", func(txn *badger.Txn) error {
		return getJSON(txn, txnKeyPrefix+id, &rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListTransactions returns a card's transactions sorted by date descending.
// A positive limit truncates the result to the most recent entries.
func (s *Store) ListTransactions(ctx context.Context, cardID string, limit int) ([]models.Transaction, error) {
	txns := []models.Transaction{}

	err := s.view("list", "transaction", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(txnCardKeyPrefix + cardID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var id string
			if err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get([]byte(txnKeyPrefix + id))
			if err != nil {
				continue
			}
			var rec models.Transaction
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			txns = append(txns, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date.After(txns[j].Date)
	})
	if limit > 0 && len(txns) > limit {
		txns = txns[:limit]
	}
	return txns, nil
}

// DeleteTransaction removes one transaction from a card.
func (s *Store) DeleteTransaction(ctx context.Context, cardID, txnID string) error {
	return s.update("delete", "transaction", func(txn *badger.Txn) error {
		indexKey := txnCardKeyPrefix + cardID + ":" + txnID
		if exists, err := keyExists(txn, indexKey); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		if err := txn.Delete([]byte(indexKey)); err != nil {
			return err
		}
		return txn.Delete([]byte(txnKeyPrefix + txnID))
	})
}

// transactionIDsForCard collects the IDs of every transaction on a card.
func (s *Store) transactionIDsForCard(cardID string) ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(txnCardKeyPrefix + cardID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := it.Item().Value(func(val []byte) error {
				ids = append(ids, string(val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
