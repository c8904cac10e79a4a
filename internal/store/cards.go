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

// CreateCard persists a new card for its owning user.
func (s *Store) CreateCard(ctx context.Context, card *models.Card) error {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	card.CreatedAt = now
	card.UpdatedAt = now

	err := s.update("create", "card", func(txn *badger.Txn) error {
		if exists, err := keyExists(txn, userKeyPrefix+card.UserID); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		if err := setJSON(txn, cardKeyPrefix+card.ID, card); err != nil {
			return err
		}
		indexKey := cardUserKeyPrefix + card.UserID + ":" + card.ID
		return txn.Set([]byte(indexKey), []byte(card.ID))
	})
	if err != nil {
		return err
	}

	s.logger.Debug().Str("card_id", card.ID).Str("user_id", card.UserID).Msg("card created")
	return nil
}

// GetCard fetches a card by ID.
func (s *Store) GetCard(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	err := s.view("get", "card", func(txn *badger.Txn) error {
		return getJSON(txn, cardKeyPrefix+id, &card)
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// GetUserCard fetches a card and verifies it belongs to the user. Cards owned
// by someone else come back as ErrNotFound, never as a permission hint.
func (s *Store) GetUserCard(ctx context.Context, userID, cardID string) (*models.Card, error) {
	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, ErrNotFound
	}
	return card, nil
}

// ListCards returns all cards belonging to a user, newest first.
func (s *Store) ListCards(ctx context.Context, userID string) ([]models.Card, error) {
	cards := []models.Card{}

	err := s.view("list", "card", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(cardUserKeyPrefix + userID + ":")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var cardID string
			if err := it.Item().Value(func(val []byte) error {
				cardID = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get([]byte(cardKeyPrefix + cardID))
			if err != nil {
				continue // index entry outlived the record
			}
			var card models.Card
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &card)
			}); err != nil {
				return err
			}
			cards = append(cards, card)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(cards, func(i, j int) bool {
		if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		}
		return cards[i].ID < cards[j].ID
	})
	return cards, nil
}

// UpdateCard rewrites an existing card record.
func (s *Store) UpdateCard(ctx context.Context, card *models.Card) error {
	card.UpdatedAt = time.Now().UTC()
	return s.update("update", "card", func(txn *badger.Txn) error {
		if exists, err := keyExists(txn, cardKeyPrefix+card.ID); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		return setJSON(txn, cardKeyPrefix+card.ID, card)
	})
}

// DeleteCard removes a card, its ownership index entry and all of its
// transactions.
func (s *Store) DeleteCard(ctx context.Context, userID, cardID string) error {
	card, err := s.GetUserCard(ctx, userID, cardID)
	if err != nil {
		return err
	}

	txnIDs, err := s.transactionIDsForCard(cardID)
	if err != nil {
		return err
	}

	return s.update("delete", "card", func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(cardKeyPrefix + cardID)); err != nil {
			return err
		}
		if err := txn.Delete([]byte(cardUserKeyPrefix + card.UserID + ":" + cardID)); err != nil {
			return err
		}
		for _, id := range txnIDs {
			if err := txn.Delete([]byte(txnCardKeyPrefix + cardID + ":" + id)); err != nil {
				return err
			}
			if err := txn.Delete([]byte(txnKeyPrefix + id)); err != nil {
				return err
			}
		}
		return nil
	})
}
