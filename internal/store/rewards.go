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

// CreateReward persists a new catalog reward.
func (s *Store) CreateReward(ctx context.Context, reward *models.Reward) error {
	if reward.ID == "" {
		reward.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	reward.CreatedAt = now
	reward.UpdatedAt = now

	err := s.update("create", "reward", func(txn *badger.Txn) error {
		return setJSON(txn, rewardKeyPrefix+reward.ID, reward)
	})
	if err != nil {
		return err
	}

	s.logger.Debug().Str("reward_id", reward.ID).Str("title", reward.Title).Msg("reward created")
	return nil
}

// GetReward fetches a reward by ID.
func (s *Store) GetReward(ctx context.Context, id string) (*models.Reward, error) {
	var reward models.Reward
	err := s.view("get", "reward", func(txn *badger.Txn) error {
		return getJSON(txn, rewardKeyPrefix+id, &reward)
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// ListRewards returns the catalog sorted by points cost ascending. With
// activeOnly set, inactive rewards are filtered out.
func (s *Store) ListRewards(ctx context.Context, activeOnly bool) ([]models.Reward, error) {
	rewards := []models.Reward{}

	err := s.view("list", "reward", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(rewardKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var reward models.Reward
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &reward)
			}); err != nil {
				return err
			}
			if activeOnly && !reward.IsActive {
				continue
			}
			rewards = append(rewards, reward)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(rewards, func(i, j int) bool {
		if rewards[i].PointsCost != rewards[j].PointsCost {
			return rewards[i].PointsCost < rewards[j].PointsCost
		}
		return rewards[i].Title < rewards[j].Title
	})
	return rewards, nil
}

// UpdateReward rewrites an existing reward record.
func (s *Store) UpdateReward(ctx context.Context, reward *models.Reward) error {
	reward.UpdatedAt = time.Now().UTC()
	return s.update("update", "reward", func(txn *badger.Txn) error {
		if exists, err := keyExists(txn, rewardKeyPrefix+reward.ID); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		return setJSON(txn, rewardKeyPrefix+reward.ID, reward)
	})
}

// DeleteReward removes a reward from the catalog.
func (s *Store) DeleteReward(ctx context.Context, id string) error {
	return s.update("delete", "reward", func(txn *badger.Txn) error {
		if exists, err := keyExists(txn, rewardKeyPrefix+id); err != nil {
			return err
		} else if !exists {
			return ErrNotFound
		}
		return txn.Delete([]byte(rewardKeyPrefix + id))
	})
}

// CountRewards returns the catalog size, used to decide whether seeding is
// needed at startup.
func (s *Store) CountRewards(ctx context.Context) (int, error) {
	count := 0
	err := s.view("count", "reward", func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(rewardKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
